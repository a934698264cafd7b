package systems

import (
	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/stratobyte/flightcore/pkg/ecs/core"
)

var visibilityMask = core.MaskOf(core.ComponentRenderable)

// RenderableVisibilitySystem is spec.md §4.2's final pipeline stage. It
// currently has nothing to layer on top of LODSystem's distance cull — no
// other visibility rule (frustum culling, occlusion) is in the data model
// (spec.md §3) — so it exists as a fixed point in the static order for a
// future per-entity override (e.g. a "force hidden" flag) without
// reshuffling every other system's position.
type RenderableVisibilitySystem struct{}

// Name implements pkg/ecs.System.
func (s *RenderableVisibilitySystem) Name() string { return "RenderableVisibility" }

// Tick implements pkg/ecs.System.
func (s *RenderableVisibilitySystem) Tick(w *ecs.World, _ float64) {
	w.ForEach(visibilityMask, func(core.EntityID) {})
}
