package components

import "github.com/stratobyte/flightcore/pkg/math3"

// Thrusters holds per-axis thrust/torque capability and the current
// normalized command (spec.md §3/§4.6).
type Thrusters struct {
	MaxLinearThrust math3.Vector3
	MaxTorque       math3.Vector3

	LinearCommand  math3.Vector3 // each component in [-1, 1]
	AngularCommand math3.Vector3 // each component in [-1, 1]

	Enabled bool
}

// DefaultThrusters returns a disabled Thrusters component with zero
// capability; callers set real maxima at construction.
func DefaultThrusters() Thrusters {
	return Thrusters{}
}

// ClampCommands enforces spec.md §4.6 step 1: "clamp each component to
// [-1, 1] (defensive)."
func (t *Thrusters) ClampCommands() {
	t.LinearCommand = t.LinearCommand.Clamp01()
	t.AngularCommand = t.AngularCommand.Clamp01()
}
