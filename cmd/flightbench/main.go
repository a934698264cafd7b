// Command flightbench headlessly ticks the flight sim for a fixed number
// of frames across every ship preset and prints a tablewriter summary,
// mirroring the teacher's cmd/benchmark harness (same olekukonko/
// tablewriter + golang.org/x/text stack, traded gin/config wiring for a
// bare sim loop since benchmarking needs no HTTP surface).
package main

import (
	"fmt"
	"os"

	"github.com/stratobyte/flightcore/internal/logging"
	"github.com/stratobyte/flightcore/internal/report"
	"github.com/stratobyte/flightcore/pkg/ecs/core"
	"github.com/stratobyte/flightcore/pkg/input"
	"github.com/stratobyte/flightcore/pkg/sim"
)

const (
	tickCount = 600
	dt        = 1.0 / 60.0
)

func main() {
	log := logging.GetLogger("info")

	w, sched, _ := sim.NewWorld(1024, input.NewRingBuffer(64))

	type bench struct {
		id core.EntityID
		r  *report.Recorder
	}
	benches := make(map[string]bench)

	for name, preset := range sim.Presets {
		id, err := sim.Spawn(w, sim.Descriptor{Name: name, Preset: preset.Name})
		if err != nil {
			log.Error("failed to spawn bench ship", "preset", name, "error", err)
			continue
		}
		if phys, ok := w.Physics(id); ok {
			phys.LinearVelocity.Z = 5
		}
		benches[name] = bench{id: id, r: report.NewRecorder(name)}
	}

	elapsed := 0.0
	for t := 0; t < tickCount; t++ {
		sched.Tick(w, dt)
		elapsed += dt

		for _, b := range benches {
			tr, ok := w.Transform(b.id)
			if !ok {
				continue
			}
			phys, _ := w.Physics(b.id)
			speed := 0.0
			if phys != nil {
				speed = phys.LinearVelocity.Length()
			}
			b.r.Record(elapsed, tr.Position, speed)
		}
	}
	log.Info("bench run complete", "ticks", report.FormatCount(int64(tickCount)))

	recorders := make([]*report.Recorder, 0, len(benches))
	for _, b := range benches {
		recorders = append(recorders, b.r)
	}
	report.WriteSummaryTable(os.Stdout, recorders)

	for name, b := range benches {
		path := fmt.Sprintf("%s_altitude.svg", name)
		if err := b.r.SaveAltitudePlot(path); err != nil {
			log.Warn("failed to save altitude plot", "preset", name, "error", err)
		}
	}
}
