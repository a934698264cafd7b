// Command flightsrv runs the read-only telemetry/rendering HTTP boundary
// (spec.md §6.6) against a live simulation, mirroring the teacher's
// cmd/server entrypoint (gin engine with recovery and request-logging
// middleware, viper config, logf logger).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/stratobyte/flightcore/internal/config"
	"github.com/stratobyte/flightcore/internal/logging"
	"github.com/stratobyte/flightcore/internal/telemetry"
	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/stratobyte/flightcore/pkg/input"
	"github.com/stratobyte/flightcore/pkg/sim"
)

const tickRate = 60.0

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Printf("flightsrv: failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logging.GetLogger(cfg.Logging.Level)

	ring := input.NewRingBuffer(256)
	w, sched, actions := sim.NewWorld(cfg.Sim.WorldCapacity, ring)

	if err := config.LoadBindings(cfg, actions, log); err != nil {
		log.Fatal("failed to load action bindings", "error", err)
	}

	if _, err := sim.Spawn(w, sim.Descriptor{Name: "player", Preset: sim.PresetCruiser.Name}); err != nil {
		log.Fatal("failed to spawn starter entity", "error", err)
	}

	if !cfg.Telemetry.Enabled {
		log.Info("telemetry server disabled, running sim loop only")
		runSimLoop(w, sched)
		return
	}

	go runSimLoop(w, sched)

	srv := telemetry.NewServer(w, sched, log)
	log.Info("starting telemetry server", "addr", cfg.Telemetry.Addr)
	if err := srv.Run(cfg.Telemetry.Addr); err != nil {
		log.Error("telemetry server stopped", "error", err)
	}
}

// runSimLoop drives the scheduler at a fixed tick rate, standing in for a
// renderer's frame loop in headless server mode.
func runSimLoop(w *ecs.World, sched *ecs.Scheduler) {
	period := time.Second / time.Duration(tickRate)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	dt := 1.0 / tickRate
	for range ticker.C {
		sched.Tick(w, dt)
	}
}
