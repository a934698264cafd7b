package sim

import (
	"fmt"

	"github.com/stratobyte/flightcore/pkg/components"
	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/stratobyte/flightcore/pkg/ecs/core"
	"github.com/stratobyte/flightcore/pkg/math3"
)

// Descriptor is the already-parsed entity record the core accepts
// (spec.md §6.1): "name, description, optional parent, component presence
// set, and per-component initial values." The on-disk YAML format is an
// external loader's concern; Descriptor is the structured record the core
// actually consumes.
type Descriptor struct {
	Name        string
	Description string
	Parent      string // name of another descriptor in the same batch, or ""

	Preset string // optional Presets key; "" means build from explicit fields

	Transform *components.Transform

	Physics         *components.Physics
	PhysicsInertia  math3.Vector3 // used only when Physics is nil and Preset is ""
	PhysicsMass     float64
	PhysicsDrag     float64
	PhysicsAngDrag  float64
	PhysicsKinematic bool

	Collider *components.Collider

	Thrusters *components.Thrusters

	FlightControl *components.FlightControl

	ScriptedFlight *components.ScriptedFlight

	Camera *components.Camera

	Renderable *components.Renderable
}

// Spawn creates one entity in w from d, resolving a preset when named and
// falling back to explicit fields or spec.md §4.1 defaults. It returns the
// new entity's ID, the name-to-ID mapping is the caller's responsibility
// (needed to resolve Parent/Camera.FollowTarget across a batch).
func Spawn(w *ecs.World, d Descriptor) (core.EntityID, error) {
	id, err := w.CreateEntity()
	if err != nil {
		return core.InvalidEntityID, fmt.Errorf("sim: spawn %q: %w", d.Name, err)
	}

	tr := components.DefaultTransform()
	if d.Transform != nil {
		tr = *d.Transform
	}
	if err := w.AddTransform(id, tr); err != nil {
		return id, fmt.Errorf("sim: spawn %q: transform: %w", d.Name, err)
	}

	if err := spawnPhysics(w, id, d); err != nil {
		return id, err
	}

	if d.Collider != nil {
		if err := w.AddCollider(id, *d.Collider); err != nil {
			return id, fmt.Errorf("sim: spawn %q: collider: %w", d.Name, err)
		}
	}

	if err := spawnThrusters(w, id, d); err != nil {
		return id, err
	}

	if err := spawnFlightControl(w, id, d); err != nil {
		return id, err
	}

	if d.ScriptedFlight != nil {
		if err := w.AddScriptedFlight(id, *d.ScriptedFlight); err != nil {
			return id, fmt.Errorf("sim: spawn %q: scripted flight: %w", d.Name, err)
		}
	}

	if d.Camera != nil {
		if err := w.AddCamera(id, *d.Camera); err != nil {
			return id, fmt.Errorf("sim: spawn %q: camera: %w", d.Name, err)
		}
	}

	renderable := components.DefaultRenderable()
	if d.Renderable != nil {
		renderable = *d.Renderable
	}
	if err := w.AddRenderable(id, renderable); err != nil {
		return id, fmt.Errorf("sim: spawn %q: renderable: %w", d.Name, err)
	}

	return id, nil
}

func spawnPhysics(w *ecs.World, id core.EntityID, d Descriptor) error {
	switch {
	case d.Physics != nil:
		return w.AddPhysics(id, *d.Physics)
	case d.Preset != "":
		preset, ok := Presets[d.Preset]
		if !ok {
			return fmt.Errorf("sim: spawn %q: unknown preset %q", d.Name, d.Preset)
		}
		phys, err := preset.Physics()
		if err != nil {
			return fmt.Errorf("sim: spawn %q: preset physics: %w", d.Name, err)
		}
		return w.AddPhysics(id, phys)
	case d.PhysicsKinematic:
		return w.AddPhysics(id, components.NewKinematicPhysics())
	case d.PhysicsMass > 0:
		phys, err := components.NewPhysics(d.PhysicsMass, d.PhysicsInertia, d.PhysicsDrag, d.PhysicsAngDrag)
		if err != nil {
			return fmt.Errorf("sim: spawn %q: physics: %w", d.Name, err)
		}
		return w.AddPhysics(id, phys)
	default:
		return w.AddPhysics(id, components.DefaultPhysics())
	}
}

func spawnThrusters(w *ecs.World, id core.EntityID, d Descriptor) error {
	switch {
	case d.Thrusters != nil:
		return w.AddThrusters(id, *d.Thrusters)
	case d.Preset != "":
		preset, ok := Presets[d.Preset]
		if !ok {
			return fmt.Errorf("sim: spawn %q: unknown preset %q", d.Name, d.Preset)
		}
		return w.AddThrusters(id, preset.Thrusters())
	default:
		return nil
	}
}

func spawnFlightControl(w *ecs.World, id core.EntityID, d Descriptor) error {
	switch {
	case d.FlightControl != nil:
		return w.AddFlightControl(id, *d.FlightControl)
	case d.Preset != "":
		preset, ok := Presets[d.Preset]
		if !ok {
			return fmt.Errorf("sim: spawn %q: unknown preset %q", d.Name, d.Preset)
		}
		return w.AddFlightControl(id, preset.FlightControl())
	default:
		return nil
	}
}

// SpawnBatch spawns every descriptor in order and returns each name's
// assigned EntityID, for callers that need a name→ID map to resolve
// Parent names or wire Camera.FollowTarget after the batch (spec.md §6.1:
// "optional parent"). It does not read Parent itself.
func SpawnBatch(w *ecs.World, descriptors []Descriptor) (map[string]core.EntityID, error) {
	ids := make(map[string]core.EntityID, len(descriptors))
	for _, d := range descriptors {
		id, err := Spawn(w, d)
		if err != nil {
			return ids, err
		}
		ids[d.Name] = id
	}
	return ids, nil
}
