package sim

import (
	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/stratobyte/flightcore/pkg/input"
	"github.com/stratobyte/flightcore/pkg/systems"
)

// Frequencies is spec.md §4.2's recommended per-system rate table.
var Frequencies = map[string]float64{
	"InputService":         60,
	"Control":              60,
	"ScriptedFlight":       30,
	"Thrusters":            60,
	"Physics":              60,
	"Camera":               60,
	"LOD":                  10,
	"RenderableVisibility": 2,
}

// NewWorld builds a World and a Scheduler with every pipeline system
// registered in the declared static order of spec.md §4.2: InputService →
// Control → ScriptedFlight → Thrusters → Physics → Camera → LOD →
// Renderable visibility.
func NewWorld(capacity int, ring *input.RingBuffer) (*ecs.World, *ecs.Scheduler, *input.ActionService) {
	w := ecs.NewWorld(capacity)
	actions := input.NewActionService(ring)
	sched := ecs.NewScheduler()

	sched.Register(&systems.InputServiceSystem{Actions: actions}, Frequencies["InputService"])
	sched.Register(&systems.ControlSystem{Actions: actions}, Frequencies["Control"])
	sched.Register(&systems.ScriptedFlightSystem{}, Frequencies["ScriptedFlight"])
	sched.Register(&systems.ThrusterSystem{}, Frequencies["Thrusters"])
	sched.Register(&systems.PhysicsSystem{}, Frequencies["Physics"])
	sched.Register(&systems.CameraSystem{}, Frequencies["Camera"])
	sched.Register(&systems.LODSystem{}, Frequencies["LOD"])
	sched.Register(&systems.RenderableVisibilitySystem{}, Frequencies["RenderableVisibility"])

	return w, sched, actions
}
