package config_test

import (
	"testing"

	"github.com/stratobyte/flightcore/internal/config"
	"github.com/stratobyte/flightcore/internal/logging"
	"github.com/stratobyte/flightcore/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TEST: GIVEN a binding table with an unknown action name WHEN LoadBindings runs THEN it returns a loader error (spec.md §6.4)
func TestLoadBindings_UnknownActionErrors(t *testing.T) {
	logging.Reset()
	log := logging.GetLogger("error")
	ring := input.NewRingBuffer(input.DefaultRingCapacity)
	actions := input.NewActionService(ring)

	cfg := &config.Config{Bindings: map[string][]config.BindingEntry{
		"flight": {{Device: "keyboard", KeyCode: 1, Action: "not_a_real_action", Scale: 1}},
	}}

	err := config.LoadBindings(cfg, actions, log)
	assert.Error(t, err)
}

// TEST: GIVEN a binding table with an unknown device WHEN LoadBindings runs THEN the binding is skipped without error and not counted as a dropped duplicate
func TestLoadBindings_UnknownDeviceSkips(t *testing.T) {
	logging.Reset()
	log := logging.GetLogger("error")
	ring := input.NewRingBuffer(input.DefaultRingCapacity)
	actions := input.NewActionService(ring)

	cfg := &config.Config{Bindings: map[string][]config.BindingEntry{
		"flight": {{Device: "joystick-of-the-future", KeyCode: 1, Action: "thrust_forward", Scale: 1}},
	}}

	require.NoError(t, config.LoadBindings(cfg, actions, log))
	assert.Equal(t, int64(0), actions.DroppedBindings())
}

// TEST: GIVEN a valid keyboard binding WHEN LoadBindings runs THEN the action resolves through a pressed key (spec.md §6.4 happy path)
func TestLoadBindings_ValidKeyboardBindingResolves(t *testing.T) {
	logging.Reset()
	log := logging.GetLogger("error")
	ring := input.NewRingBuffer(input.DefaultRingCapacity)
	actions := input.NewActionService(ring)
	actions.PushContext("flight")

	cfg := &config.Config{Bindings: map[string][]config.BindingEntry{
		"flight": {{Device: "keyboard", KeyCode: 9, Action: "thrust_forward", Scale: 1}},
	}}
	require.NoError(t, config.LoadBindings(cfg, actions, log))

	ring.Push(input.Event{Kind: input.EventKey, Key: input.KeyPayload{KeyCode: 9, Pressed: true}})
	actions.Tick()

	assert.Equal(t, 1.0, actions.GetActionValue(input.ActionThrustForward))
}
