// Package telemetry runs a read-only gin-gonic/gin HTTP server exposing
// the rendering snapshot and observability counters (spec.md §6.2, §6.6).
// It mirrors the teacher's cmd/server: a thin gin.Engine wrapper with
// JSON and templ-rendered handlers.
package telemetry

import (
	"github.com/stratobyte/flightcore/pkg/components"
	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/stratobyte/flightcore/pkg/ecs/core"
	"github.com/stratobyte/flightcore/pkg/math3"
)

// EntitySnapshot is one Renderable entity's rendering-boundary payload
// (spec.md §6.2): "world-space 4x4 transform (composed from Transform),
// mesh handle and material handle, visibility flag."
type EntitySnapshot struct {
	Entity    uint32      `json:"entity"`
	Transform [16]float64 `json:"transform"`
	Mesh      uint32      `json:"mesh"`
	Material  uint32      `json:"material"`
	Visible   bool        `json:"visible"`
}

// Snapshot composes the rendering snapshot for every Transform+Renderable
// entity in w.
func Snapshot(w *ecs.World) []EntitySnapshot {
	var out []EntitySnapshot
	mask := core.MaskOf(core.ComponentTransform, core.ComponentRenderable)
	w.ForEach(mask, func(id core.EntityID) {
		tr, _ := w.Transform(id)
		r, _ := w.Renderable(id)
		out = append(out, EntitySnapshot{
			Entity:    uint32(id),
			Transform: worldMatrix(tr),
			Mesh:      uint32(r.Mesh),
			Material:  uint32(r.Material),
			Visible:   r.Visible,
		})
	})
	return out
}

// worldMatrix composes a column-major 4x4 transform from a Transform's
// scale, rotation, and position, the layout spec.md §6.2 expects the
// renderer to consume.
func worldMatrix(tr *components.Transform) [16]float64 {
	rot := tr.Rotation.Normalized()
	r := math3.RotationFromQuaternion(rot)
	s := tr.Scale

	var m [16]float64
	m[0] = r.M11 * s.X
	m[1] = r.M21 * s.X
	m[2] = r.M31 * s.X
	m[3] = 0

	m[4] = r.M12 * s.Y
	m[5] = r.M22 * s.Y
	m[6] = r.M32 * s.Y
	m[7] = 0

	m[8] = r.M13 * s.Z
	m[9] = r.M23 * s.Z
	m[10] = r.M33 * s.Z
	m[11] = 0

	m[12] = tr.Position.X
	m[13] = tr.Position.Y
	m[14] = tr.Position.Z
	m[15] = 1
	return m
}
