package telemetry

import (
	"github.com/stratobyte/flightcore/pkg/ecs"
)

// StatsSnapshot bundles the §7 observability counters and §4.2 scheduler
// timing statistics for the /stats endpoint.
type StatsSnapshot struct {
	DroppedEvents     int64             `json:"dropped_events"`
	SkippedEntities   int64             `json:"skipped_entities"`
	ClampedVelocities int64             `json:"clamped_velocities"`
	DroppedBindings   int64             `json:"dropped_bindings"`
	EntityCount       int               `json:"entity_count"`
	Systems           []ecs.SystemStats `json:"systems"`
}

// Stats reads the current world/scheduler counters.
func Stats(w *ecs.World, sched *ecs.Scheduler) StatsSnapshot {
	s := w.Stats()
	return StatsSnapshot{
		DroppedEvents:     s.DroppedEvents,
		SkippedEntities:   s.SkippedEntities,
		ClampedVelocities: s.ClampedVelocities,
		DroppedBindings:   s.DroppedBindings,
		EntityCount:       w.EntityCount(),
		Systems:           sched.Stats(),
	}
}
