package systems

import (
	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/stratobyte/flightcore/pkg/ecs/core"
	"github.com/stratobyte/flightcore/pkg/math3"
)

var lodMask = core.MaskOf(core.ComponentRenderable, core.ComponentTransform)

// CullDistance is the distance (from the camera nearestCameraPosition picks) beyond
// which a Renderable entity is marked invisible, the minimal form of
// spec.md §4.2's "LOD" stage: a coarse, low-frequency visibility cull
// rather than a mesh detail ladder, since no per-entity LOD data is part
// of the data model (spec.md §3).
const CullDistance = 20000.0

var cameraLookupMask = core.MaskOf(core.ComponentCamera, core.ComponentTransform)

// LODSystem runs at low frequency (recommended 10 Hz, spec.md §4.2) and
// toggles Renderable.Visible by distance from the first camera the pool
// visits (see nearestCameraPosition). It is
// the sole mutator of Renderable.Visible among the declared pipeline
// systems; RenderableVisibilitySystem, immediately downstream, only
// applies per-entity overrides (spec.md §4.2's final "Renderable
// visibility" stage).
type LODSystem struct{}

// Name implements pkg/ecs.System.
func (s *LODSystem) Name() string { return "LOD" }

// Tick implements pkg/ecs.System.
func (s *LODSystem) Tick(w *ecs.World, _ float64) {
	camPos, ok := nearestCameraPosition(w)
	if !ok {
		return
	}
	w.ForEach(lodMask, func(id core.EntityID) {
		r, _ := w.Renderable(id)
		tr, _ := w.Transform(id)
		r.Visible = tr.Position.Sub(camPos).Length() <= CullDistance
	})
}

// nearestCameraPosition returns the position of any camera entity. With a
// single active camera (the common case, spec.md §4.8) this is exact;
// with several it picks whichever the component pool visits first.
func nearestCameraPosition(w *ecs.World) (math3.Vector3, bool) {
	var pos math3.Vector3
	found := false
	w.ForEach(cameraLookupMask, func(id core.EntityID) {
		if found {
			return
		}
		tr, _ := w.Transform(id)
		pos = tr.Position
		found = true
	})
	return pos, found
}
