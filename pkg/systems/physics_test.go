package systems_test

import (
	"testing"

	"github.com/stratobyte/flightcore/pkg/components"
	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/stratobyte/flightcore/pkg/ecs/core"
	"github.com/stratobyte/flightcore/pkg/math3"
	"github.com/stratobyte/flightcore/pkg/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawnPhysicsEntity(t *testing.T, w *ecs.World, tr components.Transform, phys components.Physics) core.EntityID {
	t.Helper()
	id, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddTransform(id, tr))
	require.NoError(t, w.AddPhysics(id, phys))
	return id
}

// TEST: GIVEN S1 (linear thrust already applied as force) WHEN Physics ticks once at dt=0.1 THEN velocity and position match the spec example and force clears
func TestPhysicsSystem_S1_LinearThrust(t *testing.T) {
	w := ecs.NewWorld(4)
	tr := components.DefaultTransform()
	phys := components.DefaultPhysics()
	phys.LinearDrag = 1.0
	phys.AngularDrag = 1.0
	phys.Force = math3.Vector3{Z: 10}
	id := spawnPhysicsEntity(t, w, tr, phys)

	ps := &systems.PhysicsSystem{}
	ps.Tick(w, 0.1)

	gotPhys, ok := w.Physics(id)
	require.True(t, ok)
	assert.InDelta(t, 1.0, gotPhys.LinearVelocity.Z, 1e-9)
	assert.Equal(t, math3.Zero, gotPhys.Force)

	gotTr, ok := w.Transform(id)
	require.True(t, ok)
	assert.InDelta(t, 0.1, gotTr.Position.Z, 1e-9)
}

// TEST: GIVEN S2 (quaternion stays unit) WHEN Physics integrates 1000 ticks of constant angular velocity at dt=1/60 THEN the rotation quaternion length stays within [1-1e-3, 1+1e-3] every tick
func TestPhysicsSystem_S2_QuaternionStaysUnit(t *testing.T) {
	w := ecs.NewWorld(4)
	tr := components.DefaultTransform()
	phys := components.DefaultPhysics()
	phys.LinearDrag = 1.0
	phys.AngularDrag = 1.0
	id := spawnPhysicsEntity(t, w, tr, phys)

	ps := &systems.PhysicsSystem{}
	const dt = 1.0 / 60.0
	for i := 0; i < 1000; i++ {
		gotPhys, _ := w.Physics(id)
		gotPhys.Torque = math3.Vector3{X: 5}
		ps.Tick(w, dt)

		gotTr, _ := w.Transform(id)
		l := gotTr.Rotation.Length()
		require.InDelta(t, 1.0, l, 1e-3, "tick %d: |q|=%f", i, l)
	}
}

// TEST: GIVEN S6 (kinematic body) WHEN Physics ticks with an applied force THEN velocity and position are unchanged and force clears (invariant #8)
func TestPhysicsSystem_S6_KinematicIgnoresForce(t *testing.T) {
	w := ecs.NewWorld(4)
	tr := components.DefaultTransform()
	phys := components.NewKinematicPhysics()
	phys.Force = math3.Vector3{X: 100}
	id := spawnPhysicsEntity(t, w, tr, phys)

	ps := &systems.PhysicsSystem{}
	ps.Tick(w, 1.0)

	gotPhys, _ := w.Physics(id)
	assert.Equal(t, math3.Zero, gotPhys.LinearVelocity)
	assert.Equal(t, math3.Zero, gotPhys.Force)

	gotTr, _ := w.Transform(id)
	assert.Equal(t, math3.Zero, gotTr.Position)
}

// TEST: GIVEN round-trip law #7: zero command/force/torque and unit drag WHEN Physics ticks with any dt THEN velocity and pose are unchanged
func TestPhysicsSystem_ZeroForceUnitDragIsNoop(t *testing.T) {
	w := ecs.NewWorld(4)
	tr := components.DefaultTransform()
	tr.Position = math3.Vector3{X: 3, Y: 4, Z: 5}
	phys := components.DefaultPhysics()
	phys.LinearDrag = 1.0
	phys.AngularDrag = 1.0
	id := spawnPhysicsEntity(t, w, tr, phys)

	ps := &systems.PhysicsSystem{}
	ps.Tick(w, 0.337)

	gotPhys, _ := w.Physics(id)
	assert.Equal(t, math3.Zero, gotPhys.LinearVelocity)
	assert.Equal(t, math3.Zero, gotPhys.AngularVelocity)

	gotTr, _ := w.Transform(id)
	assert.Equal(t, tr.Position, gotTr.Position)
}

// TEST: GIVEN a velocity far beyond the sanity limit WHEN Physics ticks THEN it is clamped without zeroing and the clamp counter increments
func TestPhysicsSystem_ClampsInsaneVelocity(t *testing.T) {
	w := ecs.NewWorld(4)
	tr := components.DefaultTransform()
	phys := components.DefaultPhysics()
	phys.LinearDrag = 1.0
	phys.AngularDrag = 1.0
	phys.LinearVelocity = math3.Vector3{X: 1e6}
	id := spawnPhysicsEntity(t, w, tr, phys)

	ps := &systems.PhysicsSystem{}
	ps.Tick(w, 0.01)

	gotPhys, _ := w.Physics(id)
	assert.InDelta(t, systems.SanityVelocityLimit, gotPhys.LinearVelocity.Length(), 1)
	assert.Equal(t, int64(1), w.Stats().ClampedVelocities)
}
