package systems

import (
	"math"

	"github.com/stratobyte/flightcore/pkg/components"
	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/stratobyte/flightcore/pkg/ecs/core"
	"github.com/stratobyte/flightcore/pkg/math3"
)

// SanityVelocityLimit is spec.md §4.7's recommended numerical-bounds
// sanity limit, in units/s.
const SanityVelocityLimit = 1e4

var physicsMask = core.MaskOf(core.ComponentPhysics, core.ComponentTransform)

// PhysicsSystem integrates rigid-body pose and velocity from accumulated
// force and torque using semi-implicit Euler (spec.md §4.7). It is the
// sole mutator of Physics.LinearVelocity/AngularVelocity/Force/Torque and
// Transform.Position/Rotation during its tick (spec.md §5).
type PhysicsSystem struct{}

// Name implements pkg/ecs.System.
func (s *PhysicsSystem) Name() string { return "Physics" }

// Tick implements pkg/ecs.System.
func (s *PhysicsSystem) Tick(w *ecs.World, dt float64) {
	w.ForEach(physicsMask, func(id core.EntityID) {
		phys, _ := w.Physics(id)
		tr, _ := w.Transform(id)

		if phys.Kinematic {
			phys.Force = math3.Zero
			phys.Torque = math3.Zero
			return
		}

		integrateLinear(phys, tr, dt)
		integrateAngular(phys, tr, dt)

		if phys.ClampVelocities(SanityVelocityLimit) {
			w.IncClampedVelocities()
		}

		phys.Force = math3.Zero
		phys.Torque = math3.Zero
	})
}

// integrateLinear applies spec.md §4.7 step 1's linear half: accelerate,
// apply post-integration exponential drag (§9: drag is applied once per
// unit of simulated time, never once per tick regardless of dt), then
// advance position.
func integrateLinear(phys *components.Physics, tr *components.Transform, dt float64) {
	linearAccel := phys.Force.Scale(phys.InverseMass)
	phys.LinearVelocity = phys.LinearVelocity.Add(linearAccel.Scale(dt))
	phys.LinearVelocity = phys.LinearVelocity.Scale(math.Pow(phys.LinearDrag, dt))
	tr.Position = tr.Position.Add(phys.LinearVelocity.Scale(dt))
}

// integrateAngular applies spec.md §4.7 step 1's angular half: accelerate
// via the inverse inertia tensor (body frame), drag, then integrate and
// renormalize the orientation quaternion.
func integrateAngular(phys *components.Physics, tr *components.Transform, dt float64) {
	angularAccel := phys.InverseInertia.MultiplyVector(phys.Torque)
	phys.AngularVelocity = phys.AngularVelocity.Add(angularAccel.Scale(dt))
	phys.AngularVelocity = phys.AngularVelocity.Scale(math.Pow(phys.AngularDrag, dt))
	tr.Rotation = tr.Rotation.Integrate(phys.AngularVelocity, dt)
}
