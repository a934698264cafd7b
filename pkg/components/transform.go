// Package components defines the eight pure-data component kinds of
// spec.md §3. None of them contain game logic — systems in pkg/systems are
// the sole mutators of each component's fields during a tick (spec.md §5).
package components

import (
	"fmt"

	"github.com/stratobyte/flightcore/pkg/math3"
)

// Transform holds an entity's pose: world-space position, unit-quaternion
// rotation, and non-uniform scale (spec.md §3).
type Transform struct {
	Position math3.Vector3
	Rotation math3.Quaternion
	Scale    math3.Vector3
}

// DefaultTransform returns the spec.md §4.1 default initial value:
// identity rotation, unit scale, origin position.
func DefaultTransform() Transform {
	return Transform{
		Position: math3.Vector3{},
		Rotation: math3.IdentityQuaternion(),
		Scale:    math3.Vector3{X: 1, Y: 1, Z: 1},
	}
}

// Validate checks the invariant from spec.md §3: "rotation is unit-length
// within 1e-4 after each integration step." This is also checked here at
// component-add time so a caller cannot seed a non-unit rotation.
func (t Transform) Validate() error {
	l := t.Rotation.Length()
	if l < 1-1e-4 || l > 1+1e-4 {
		return fmt.Errorf("transform: rotation quaternion not unit length (|q|=%.6f)", l)
	}
	return nil
}

// WorldPose is the 4x4 world transform rendering consumes
// (spec.md §6.2), returned as translation, rotation matrix, and scale
// rather than a packed matrix — the renderer composes the final 4x4 from
// these, since the core never depends on a rendering-specific matrix
// layout.
type WorldPose struct {
	Position math3.Vector3
	Rotation math3.Matrix3
	Scale    math3.Vector3
}

// Pose returns the renderer-facing pose snapshot for this transform.
func (t Transform) Pose() WorldPose {
	return WorldPose{
		Position: t.Position,
		Rotation: math3.RotationFromQuaternion(t.Rotation),
		Scale:    t.Scale,
	}
}
