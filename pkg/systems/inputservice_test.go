package systems_test

import (
	"testing"

	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/stratobyte/flightcore/pkg/input"
	"github.com/stratobyte/flightcore/pkg/systems"
	"github.com/stretchr/testify/assert"
)

// TEST: GIVEN a queued key-press event WHEN InputServiceSystem ticks THEN the bound action's value is resolved and queryable
func TestInputServiceSystem_DrainsAndResolves(t *testing.T) {
	ring := input.NewRingBuffer(input.DefaultRingCapacity)
	actions := input.NewActionService(ring)
	actions.PushContext(testContext)
	bindKey(actions, 7, input.ActionBrake, 1.0)
	ring.Push(input.Event{Kind: input.EventKey, Key: input.KeyPayload{KeyCode: 7, Pressed: true}})

	sys := &systems.InputServiceSystem{Actions: actions}
	w := ecs.NewWorld(1)
	sys.Tick(w, 1.0/60.0)

	assert.Equal(t, 1.0, actions.GetActionValue(input.ActionBrake))
}
