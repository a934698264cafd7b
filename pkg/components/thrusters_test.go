package components_test

import (
	"testing"

	"github.com/stratobyte/flightcore/pkg/components"
	"github.com/stratobyte/flightcore/pkg/math3"
	"github.com/stretchr/testify/assert"
)

// TEST: GIVEN an out-of-range command WHEN ClampCommands is called THEN each axis is clamped to [-1, 1]
func TestThrusters_ClampCommands(t *testing.T) {
	th := components.DefaultThrusters()
	th.LinearCommand = math3.Vector3{X: 2, Y: -3, Z: 0.5}
	th.AngularCommand = math3.Vector3{X: -5, Y: 1, Z: 0}

	th.ClampCommands()

	assert.Equal(t, 1.0, th.LinearCommand.X)
	assert.Equal(t, -1.0, th.LinearCommand.Y)
	assert.Equal(t, 0.5, th.LinearCommand.Z)
	assert.Equal(t, -1.0, th.AngularCommand.X)
	assert.Equal(t, 1.0, th.AngularCommand.Y)
}
