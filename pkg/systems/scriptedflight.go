package systems

import (
	"math"

	"github.com/stratobyte/flightcore/pkg/components"
	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/stratobyte/flightcore/pkg/ecs/core"
	"github.com/stratobyte/flightcore/pkg/math3"
)

// facingGain is spec.md §4.5 step 7's recommended gain mapping quaternion
// error to angular command.
const facingGain = 2.0

// upAxisParallelThreshold is spec.md §4.5's tie-break threshold: "if d is
// near-parallel to the ship's up axis (|dot| > 0.999)".
const upAxisParallelThreshold = 0.999

var scriptedFlightMask = core.MaskOf(core.ComponentScriptedFlight, core.ComponentFlightControl, core.ComponentTransform, core.ComponentPhysics)

// ScriptedFlightSystem synthesizes FlightControl commands along a
// waypoint path, overriding human input while active (spec.md §4.5). It
// is the sole mutator of ScriptedFlight's state and FlightControl's
// command fields for entities it drives.
type ScriptedFlightSystem struct{}

// Name implements pkg/ecs.System.
func (s *ScriptedFlightSystem) Name() string { return "ScriptedFlight" }

// Tick implements pkg/ecs.System.
func (s *ScriptedFlightSystem) Tick(w *ecs.World, dt float64) {
	w.ForEach(scriptedFlightMask, func(id core.EntityID) {
		sf, _ := w.ScriptedFlight(id)
		if !sf.Active {
			return
		}
		fc, _ := w.FlightControl(id)
		tr, _ := w.Transform(id)
		phys, _ := w.Physics(id)
		s.drive(sf, fc, tr, phys, dt)
	})
}

func (s *ScriptedFlightSystem) drive(sf *components.ScriptedFlight, fc *components.FlightControl, tr *components.Transform, phys *components.Physics, dt float64) {
	waypoint, ok := sf.CurrentWaypoint()
	if !ok {
		_ = sf.QueueExhausted()
		sf.Active = false
		fc.LinearCommand = math3.Zero
		fc.AngularCommand = math3.Zero
		return
	}

	displacement := waypoint.Sub(tr.Position)
	distance := displacement.Length()

	if distance < sf.ArrivalTolerance {
		if sf.State() == components.WaypointIdle {
			_ = sf.Depart()
		}
		_ = sf.Arrive()
		sf.AdvanceIndex()
		if !sf.Active {
			_ = sf.QueueExhausted()
		}
		fc.LinearCommand = math3.Zero
		fc.AngularCommand = math3.Zero
		return
	}

	_ = sf.Depart()

	desiredSpeed := math.Min(sf.CruiseSpeed, math.Sqrt(2*sf.MaxAcceleration*distance))
	desiredVelocity := displacement.Normalized().Scale(desiredSpeed)

	requiredAccel := desiredVelocity.Sub(phys.LinearVelocity)
	if dt > 0 {
		requiredAccel = requiredAccel.Scale(1 / dt)
	}
	requiredAccel = requiredAccel.ClampLength(sf.MaxAcceleration)

	localAccel := tr.Rotation.InverseRotateVector(requiredAccel)
	fc.LinearCommand = normalizeAgainstMax(localAccel, maxAccelPerAxis(phys))

	facing := desiredFacing(sf, displacement)
	sf.SetLastFacing(facing)

	errorQuat := tr.Rotation.Error(facing)
	fc.AngularCommand = math3.Vector3{X: errorQuat.X, Y: errorQuat.Y, Z: errorQuat.Z}.Scale(facingGain).Clamp01()
}

// desiredFacing computes spec.md §4.5 step 7's target orientation: the
// ship's forward axis (+Z, matching Transform's identity convention)
// aligned with displacement. Near-parallel-to-up cases fall back to the
// previous tick's facing to avoid a gimbal flip (step "Tie-breaks").
func desiredFacing(sf *components.ScriptedFlight, displacement math3.Vector3) math3.Quaternion {
	up := math3.Vector3{Y: 1}
	dir := displacement.Normalized()
	if math.Abs(dir.Dot(up)) > upAxisParallelThreshold {
		return sf.LastFacing()
	}
	return math3.FromToRotation(math3.Vector3{Z: 1}, dir)
}
