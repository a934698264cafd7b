package components

import (
	"fmt"

	"github.com/stratobyte/flightcore/pkg/math3"
)

// Physics holds 6DOF rigid-body state (spec.md §3/§4.7): velocities, mass
// properties, accumulated force/torque, and the per-ship drag and
// kinematic/6dof flags.
type Physics struct {
	LinearVelocity  math3.Vector3
	AngularVelocity math3.Vector3

	Mass        float64
	InverseMass float64 // 1/Mass, or 0 if Kinematic

	CenterOfMass math3.Vector3

	Inertia        math3.Matrix3
	InverseInertia math3.Matrix3

	Force  math3.Vector3
	Torque math3.Vector3

	LinearDrag  float64 // [0,1]
	AngularDrag float64 // [0,1]

	Kinematic bool
	Has6DOF   bool
}

// DefaultPhysics returns the spec.md §4.1 defaults: mass=1, drag_linear=0.99.
func DefaultPhysics() Physics {
	inertia := math3.DiagonalMatrix3(1, 1, 1)
	invInertia, _ := inertia.Inverse()
	return Physics{
		Mass:           1,
		InverseMass:    1,
		Inertia:        inertia,
		InverseInertia: invInertia,
		LinearDrag:     0.99,
		AngularDrag:    0.99,
		Has6DOF:        true,
	}
}

// Validate enforces spec.md §3's Physics invariant: positive mass unless
// kinematic, a consistent inverse mass, and (for non-kinematic bodies) an
// invertible inertia tensor.
func (p Physics) Validate() error {
	if p.LinearDrag < 0 || p.LinearDrag > 1 {
		return fmt.Errorf("physics: linear drag %.4f out of [0,1]", p.LinearDrag)
	}
	if p.AngularDrag < 0 || p.AngularDrag > 1 {
		return fmt.Errorf("physics: angular drag %.4f out of [0,1]", p.AngularDrag)
	}
	if p.Kinematic {
		if p.InverseMass != 0 {
			return fmt.Errorf("physics: kinematic body must have inverse mass 0, got %.6f", p.InverseMass)
		}
		return nil
	}
	if p.Mass <= 0 {
		return fmt.Errorf("physics: mass must be > 0, got %.6f", p.Mass)
	}
	if _, ok := p.Inertia.Inverse(); !ok {
		return fmt.Errorf("physics: inertia tensor is singular, not invertible")
	}
	return nil
}

// NewPhysics builds a non-kinematic Physics component with the given mass
// and a diagonal inertia tensor, computing InverseMass/InverseInertia.
func NewPhysics(mass float64, inertiaDiag math3.Vector3, linearDrag, angularDrag float64) (Physics, error) {
	if mass <= 0 {
		return Physics{}, fmt.Errorf("physics: mass must be > 0, got %.6f", mass)
	}
	inertia := math3.DiagonalMatrix3(inertiaDiag.X, inertiaDiag.Y, inertiaDiag.Z)
	invInertia, ok := inertia.Inverse()
	if !ok {
		return Physics{}, fmt.Errorf("physics: inertia tensor %v is singular", inertiaDiag)
	}
	return Physics{
		Mass:           mass,
		InverseMass:    1 / mass,
		Inertia:        inertia,
		InverseInertia: invInertia,
		LinearDrag:     linearDrag,
		AngularDrag:    angularDrag,
		Has6DOF:        true,
	}, nil
}

// NewKinematicPhysics builds a Physics component that Physics integration
// never moves (spec.md §3: "if kinematic, inverse mass = 0 and integration
// skipped").
func NewKinematicPhysics() Physics {
	return Physics{
		Kinematic:   true,
		InverseMass: 0,
		Has6DOF:     true,
	}
}

// ClampVelocities enforces the numerical-bounds sanity limit of spec.md
// §4.7: "if any velocity magnitude exceeds a configured sanity limit, log
// and clamp to the limit without zeroing." Returns whether a clamp
// occurred, so the caller can bump the observability counter and log.
func (p *Physics) ClampVelocities(sanityLimit float64) bool {
	clamped := false
	if l := p.LinearVelocity.Length(); l > sanityLimit {
		p.LinearVelocity = p.LinearVelocity.ClampLength(sanityLimit)
		clamped = true
	}
	if l := p.AngularVelocity.Length(); l > sanityLimit {
		p.AngularVelocity = p.AngularVelocity.ClampLength(sanityLimit)
		clamped = true
	}
	return clamped
}
