package systems

import (
	"math"

	"github.com/stratobyte/flightcore/pkg/components"
	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/stratobyte/flightcore/pkg/ecs/core"
	"github.com/stratobyte/flightcore/pkg/math3"
)

var cameraMask = core.MaskOf(core.ComponentCamera, core.ComponentTransform)

// cockpitOffset is the fixed target-local offset applied in FirstPerson
// mode (spec.md §4.8: "apply a fixed cockpit offset in target-local
// frame").
var cockpitOffset = math3.Vector3{Y: 0.4, Z: 0.2}

// CameraSystem derives each camera entity's Transform from its behavior
// (spec.md §4.8). It is the sole mutator of Transform.Position/Rotation
// for camera entities during its tick, running after Physics so it reads
// the settled pose of the current frame (spec.md §4.2).
type CameraSystem struct{}

// Name implements pkg/ecs.System.
func (s *CameraSystem) Name() string { return "Camera" }

// Tick implements pkg/ecs.System.
func (s *CameraSystem) Tick(w *ecs.World, dt float64) {
	w.ForEach(cameraMask, func(id core.EntityID) {
		cam, _ := w.Camera(id)
		tr, _ := w.Transform(id)

		switch cam.Behavior {
		case components.CameraStatic:
			return
		case components.CameraFirstPerson:
			s.firstPerson(w, cam, tr)
		case components.CameraThirdPerson:
			s.thirdPerson(w, cam, tr, dt)
		}
	})
}

// firstPerson implements spec.md §4.8: "copy target Transform exactly;
// apply a fixed cockpit offset in target-local frame." A weak follow
// reference that fails to resolve leaves the camera inert (spec.md §3).
func (s *CameraSystem) firstPerson(w *ecs.World, cam *components.Camera, tr *components.Transform) {
	target, ok := w.Transform(cam.FollowTarget)
	if !ok {
		return
	}
	tr.Rotation = target.Rotation
	tr.Position = target.Position.Add(target.Rotation.RotateVector(cockpitOffset))
}

// thirdPerson implements spec.md §4.8: "target Transform + offset (world
// frame) smoothed by exponential lerp with rate follow_smoothing;
// look-at target position." A weak follow reference that fails to
// resolve holds the camera's last pose.
func (s *CameraSystem) thirdPerson(w *ecs.World, cam *components.Camera, tr *components.Transform, dt float64) {
	target, ok := w.Transform(cam.FollowTarget)
	if !ok {
		return
	}
	desired := target.Position.Add(cam.FollowOffset)
	lerpFactor := 1 - math.Pow(1-cam.FollowSmoothing, dt)
	tr.Position = tr.Position.Lerp(desired, lerpFactor)
	tr.Rotation = math3.FromToRotation(math3.Vector3{Z: 1}, target.Position.Sub(tr.Position).Normalized())
}
