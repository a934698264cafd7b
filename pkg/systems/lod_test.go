package systems_test

import (
	"testing"

	"github.com/stratobyte/flightcore/pkg/components"
	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/stratobyte/flightcore/pkg/math3"
	"github.com/stratobyte/flightcore/pkg/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TEST: GIVEN a renderable far beyond CullDistance from the only camera WHEN LOD ticks THEN it is marked invisible, and a nearby one stays visible
func TestLODSystem_CullsByDistance(t *testing.T) {
	w := ecs.NewWorld(4)

	camID, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddTransform(camID, components.DefaultTransform()))
	require.NoError(t, w.AddCamera(camID, components.Camera{Behavior: components.CameraStatic, FOV: 1, Near: 0.1, Far: 100}))

	near, err := w.CreateEntity()
	require.NoError(t, err)
	nearTr := components.DefaultTransform()
	nearTr.Position = math3.Vector3{Z: 10}
	require.NoError(t, w.AddTransform(near, nearTr))
	require.NoError(t, w.AddRenderable(near, components.DefaultRenderable()))

	far, err := w.CreateEntity()
	require.NoError(t, err)
	farTr := components.DefaultTransform()
	farTr.Position = math3.Vector3{Z: systems.CullDistance * 2}
	require.NoError(t, w.AddTransform(far, farTr))
	require.NoError(t, w.AddRenderable(far, components.DefaultRenderable()))

	lod := &systems.LODSystem{}
	lod.Tick(w, 0)

	nearR, _ := w.Renderable(near)
	farR, _ := w.Renderable(far)
	assert.True(t, nearR.Visible)
	assert.False(t, farR.Visible)
}

// TEST: GIVEN no camera entity in the world WHEN LOD ticks THEN it leaves every Renderable untouched
func TestLODSystem_NoCameraIsNoop(t *testing.T) {
	w := ecs.NewWorld(4)
	id, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddTransform(id, components.DefaultTransform()))
	require.NoError(t, w.AddRenderable(id, components.DefaultRenderable()))

	lod := &systems.LODSystem{}
	lod.Tick(w, 0)

	r, _ := w.Renderable(id)
	assert.False(t, r.Visible)
}
