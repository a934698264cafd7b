package systems

import (
	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/stratobyte/flightcore/pkg/input"
)

// InputServiceSystem drains the HAL ring buffer and recomputes action
// values each tick (spec.md §4.3), running first in the declared static
// order so Control sees this frame's input (spec.md §4.2). It touches no
// ECS component; it exists only to slot input.ActionService.Tick into
// the Scheduler.
type InputServiceSystem struct {
	Actions *input.ActionService
}

// Name implements pkg/ecs.System.
func (s *InputServiceSystem) Name() string { return "InputService" }

// Tick implements pkg/ecs.System.
func (s *InputServiceSystem) Tick(_ *ecs.World, _ float64) {
	s.Actions.Tick()
}
