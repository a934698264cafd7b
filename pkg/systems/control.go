// Package systems implements the eight stages of spec.md §4.2's tick
// pipeline: InputService, Control, ScriptedFlight, Thrusters, Physics,
// Camera, LOD, and Renderable visibility. Each type here
// implements pkg/ecs.System and is the sole mutator of its declared
// component fields during its tick (spec.md §5).
package systems

import (
	"math"

	"github.com/stratobyte/flightcore/pkg/components"
	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/stratobyte/flightcore/pkg/ecs/core"
	"github.com/stratobyte/flightcore/pkg/input"
	"github.com/stratobyte/flightcore/pkg/math3"
)

// ControlSystem converts per-tick action values into each entity's
// FlightControl command (spec.md §4.4). It is the sole mutator of
// FlightControl.LinearCommand/AngularCommand/CurrentBankingAngle.
type ControlSystem struct {
	Actions *input.ActionService
}

// Name implements pkg/ecs.System.
func (s *ControlSystem) Name() string { return "Control" }

var controlMask = core.MaskOf(core.ComponentFlightControl, core.ComponentTransform, core.ComponentPhysics)

// Tick implements pkg/ecs.System. ScriptedFlight-driven entities are
// skipped here; ScriptedFlightSystem writes their command directly,
// running immediately after Control in the declared static order
// (spec.md §4.2).
func (s *ControlSystem) Tick(w *ecs.World, dt float64) {
	w.ForEach(controlMask, func(id core.EntityID) {
		if sf, ok := w.ScriptedFlight(id); ok && sf.Active {
			return
		}
		fc, _ := w.FlightControl(id)
		transform, _ := w.Transform(id)
		phys, _ := w.Physics(id)
		s.apply(fc, transform, phys, dt)
	})
}

func (s *ControlSystem) apply(fc *components.FlightControl, tr *components.Transform, phys *components.Physics, dt float64) {
	linear, angular := s.rawAssembly()

	boost := s.Actions.GetActionValue(input.ActionBoost)
	if boost > 0 {
		boostMul := math.Min(1+2*boost, 3)
		linear = linear.Scale(boostMul)
	}

	if fc.FlightAssistEnabled {
		linear = s.flightAssistLinear(fc, tr, phys, linear)
	}

	if fc.BankingEnabled && math.Abs(angular.Y) > 0.01 {
		angular.Z += -angular.Y * fc.BankingRatio
	}

	localAngularVel := tr.Rotation.InverseRotateVector(phys.AngularVelocity)
	angular = angular.Sub(localAngularVel.Scale(fc.StabilityAssist))

	localLinearVel := tr.Rotation.InverseRotateVector(phys.LinearVelocity)
	linear = linear.Sub(localLinearVel.Scale(fc.InertiaDampening))

	fc.LinearCommand = linear.Clamp01()
	fc.AngularCommand = angular.Clamp01()
	fc.CurrentBankingAngle = fc.AngularCommand.Z
}

// rawAssembly builds the unmodified linear/angular command from raw action
// values, shared by all modes (spec.md §4.4 "Raw assembly").
func (s *ControlSystem) rawAssembly() (math3.Vector3, math3.Vector3) {
	a := s.Actions
	linear := math3.Vector3{
		X: a.GetActionValue(input.ActionStrafeRight) - a.GetActionValue(input.ActionStrafeLeft),
		Y: a.GetActionValue(input.ActionVerticalUp) - a.GetActionValue(input.ActionVerticalDown),
		Z: a.GetActionValue(input.ActionThrustForward) - a.GetActionValue(input.ActionThrustBack),
	}
	angular := math3.Vector3{
		X: a.GetActionValue(input.ActionPitchUp) - a.GetActionValue(input.ActionPitchDown),
		Y: a.GetActionValue(input.ActionYawRight) - a.GetActionValue(input.ActionYawLeft),
		Z: a.GetActionValue(input.ActionRollRight) - a.GetActionValue(input.ActionRollLeft),
	}
	return linear, angular
}

// flightAssistLinear implements spec.md §4.4's PD flight-assist mode: the
// raw linear input is treated as a direction projected onto a sphere of
// radius TargetSphereRadius around the ship, and a PD controller steers
// toward that point. It replaces only the linear command (§9 Open
// Questions: "PD mode replaces the linear command only; angular command
// and banking behave as Assisted").
func (s *ControlSystem) flightAssistLinear(fc *components.FlightControl, tr *components.Transform, phys *components.Physics, rawLinear math3.Vector3) math3.Vector3 {
	direction := rawLinear
	if direction.Length() < 1e-9 {
		direction = math3.Vector3{Z: 1}
	}
	direction = direction.Normalized()
	worldDir := tr.Rotation.RotateVector(direction)
	target := tr.Position.Add(worldDir.Scale(fc.TargetSphereRadius))
	fc.FlightAssistTarget = target

	toTarget := target.Sub(tr.Position)
	desiredAccelWorld := toTarget.Scale(fc.Kp).Sub(phys.LinearVelocity.Scale(fc.Kd))
	desiredAccelLocal := tr.Rotation.InverseRotateVector(desiredAccelWorld)

	return normalizeAgainstMax(desiredAccelLocal, maxAccelPerAxis(phys))
}

// maxAccelPerAxis returns the per-axis linear acceleration used to
// normalize a desired acceleration into a [-1,1] command: zero when mass is
// not positive, otherwise DefaultFlightAssistMaxAccel on every axis.
func maxAccelPerAxis(phys *components.Physics) math3.Vector3 {
	if phys.Mass <= 0 {
		return math3.Vector3{}
	}
	// Without a Thrusters reference here, flight-assist normalizes against
	// the recommended default (spec.md §4.4: "max acceleration 30 m/s^2").
	return math3.Vector3{X: components.DefaultFlightAssistMaxAccel, Y: components.DefaultFlightAssistMaxAccel, Z: components.DefaultFlightAssistMaxAccel}
}

// normalizeAgainstMax divides each component of v by the corresponding
// component of max (treating zero max as "no capability") and clamps the
// result to [-1,1].
func normalizeAgainstMax(v, max math3.Vector3) math3.Vector3 {
	return math3.Vector3{
		X: safeDiv(v.X, max.X),
		Y: safeDiv(v.Y, max.Y),
		Z: safeDiv(v.Z, max.Z),
	}.Clamp01()
}

func safeDiv(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}
