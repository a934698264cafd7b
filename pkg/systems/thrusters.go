package systems

import (
	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/stratobyte/flightcore/pkg/ecs/core"
)

var thrusterMask = core.MaskOf(core.ComponentThrusters, core.ComponentFlightControl, core.ComponentTransform, core.ComponentPhysics)

// ThrusterSystem converts FlightControl commands into world-frame force
// and torque on Physics, within per-axis capability limits (spec.md §4.6).
// It is the sole writer of Physics.Force/Torque accumulation during its
// tick (spec.md §5); Physics clears them at the end of its own tick.
type ThrusterSystem struct{}

// Name implements pkg/ecs.System.
func (s *ThrusterSystem) Name() string { return "Thrusters" }

// Tick implements pkg/ecs.System.
func (s *ThrusterSystem) Tick(w *ecs.World, _ float64) {
	w.ForEach(thrusterMask, func(id core.EntityID) {
		th, _ := w.Thrusters(id)
		if !th.Enabled {
			return
		}
		fc, _ := w.FlightControl(id)
		tr, _ := w.Transform(id)
		phys, _ := w.Physics(id)

		th.LinearCommand = fc.LinearCommand.Clamp01()
		th.AngularCommand = fc.AngularCommand.Clamp01()

		bodyForce := th.LinearCommand.ComponentMul(th.MaxLinearThrust)
		bodyTorque := th.AngularCommand.ComponentMul(th.MaxTorque)

		worldForce := tr.Rotation.RotateVector(bodyForce)

		phys.Force = phys.Force.Add(worldForce)
		phys.Torque = phys.Torque.Add(bodyTorque)
	})
}
