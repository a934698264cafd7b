// Package ecs is the World: the single owner of every component pool and
// the entity table described by spec.md §3–§4.1. Systems in pkg/systems
// borrow component references for the scope of one tick; the World is the
// only place that allocates, releases, or iterates pool slots.
package ecs

import (
	"fmt"

	"github.com/stratobyte/flightcore/pkg/components"
	"github.com/stratobyte/flightcore/pkg/ecs/core"
)

// MaxEntities is the compile-time entity capacity (spec.md §3: "recommended
// 4096").
const MaxEntities = 4096

// World owns exclusive storage for all components and the entity table
// (spec.md §3).
type World struct {
	entities *core.EntityTable
	stats    core.Stats

	transforms      *core.Pool[components.Transform]
	physics         *core.Pool[components.Physics]
	colliders       *core.Pool[components.Collider]
	thrusters       *core.Pool[components.Thrusters]
	flightControls  *core.Pool[components.FlightControl]
	scriptedFlights *core.Pool[components.ScriptedFlight]
	cameras         *core.Pool[components.Camera]
	renderables     *core.Pool[components.Renderable]

	tickInProgress bool
}

// NewWorld preallocates every component pool and the entity table at
// capacity (spec.md §5: "all component pools are preallocated at startup").
func NewWorld(capacity int) *World {
	return &World{
		entities:        core.NewEntityTable(capacity),
		transforms:      core.NewPool[components.Transform](capacity),
		physics:         core.NewPool[components.Physics](capacity),
		colliders:       core.NewPool[components.Collider](capacity),
		thrusters:       core.NewPool[components.Thrusters](capacity),
		flightControls:  core.NewPool[components.FlightControl](capacity),
		scriptedFlights: core.NewPool[components.ScriptedFlight](capacity),
		cameras:         core.NewPool[components.Camera](capacity),
		renderables:     core.NewPool[components.Renderable](capacity),
	}
}

// Stats returns a snapshot of the observability counters (spec.md §7).
func (w *World) Stats() core.Stats {
	return w.stats.Snapshot()
}

// EntityCount returns the number of currently-alive entities.
func (w *World) EntityCount() int {
	return w.entities.Count()
}

// CreateEntity returns a fresh EntityID, or the invalid sentinel if the
// entity table is saturated (spec.md §4.1).
func (w *World) CreateEntity() (core.EntityID, error) {
	id, ok := w.entities.Create()
	if !ok {
		return core.InvalidEntityID, core.ErrEntityTableFull
	}
	return id, nil
}

// DestroyEntity marks id for deferred removal (spec.md §4.1, §3: "systems
// request destruction; the world reclaims slots between frames").
func (w *World) DestroyEntity(id core.EntityID) {
	w.entities.RequestDestroy(id)
}

// IsValid reports whether id refers to a currently-alive entity.
func (w *World) IsValid(id core.EntityID) bool {
	return w.entities.IsValid(id)
}

// Mask returns id's current component bitmask.
func (w *World) Mask(id core.EntityID) core.ComponentMask {
	return w.entities.Mask(id)
}

// beginTick and endTick bracket a scheduler pass so component add/remove
// correctly reports core.ErrTickInProgress (spec.md §3: "Components may be
// added or removed only ... outside a system tick").
func (w *World) beginTick() { w.tickInProgress = true }
func (w *World) endTick()   { w.tickInProgress = false }

// EndFrame applies every destruction requested during the tick just
// completed, releasing component pool slots back to their pools (spec.md
// §3, §5: "additions and destructions requested during a tick are applied
// after the tick completes").
func (w *World) EndFrame() {
	w.entities.ApplyPendingDestroys(func(id core.EntityID, c core.ComponentType, slot int) {
		w.releaseSlot(c, slot)
	})
}

func (w *World) releaseSlot(kind core.ComponentType, slot int) {
	switch kind {
	case core.ComponentTransform:
		w.transforms.Release(slot)
	case core.ComponentPhysics:
		w.physics.Release(slot)
	case core.ComponentCollider:
		w.colliders.Release(slot)
	case core.ComponentThrusters:
		w.thrusters.Release(slot)
	case core.ComponentFlightControl:
		w.flightControls.Release(slot)
	case core.ComponentScriptedFlight:
		w.scriptedFlights.Release(slot)
	case core.ComponentCamera:
		w.cameras.Release(slot)
	case core.ComponentRenderable:
		w.renderables.Release(slot)
	}
}

// addComponent is the shared allocate-and-register path for every typed
// Add* method below (spec.md §4.1 component_add).
func addComponent[T any](w *World, pool *core.Pool[T], id core.EntityID, kind core.ComponentType, value T) error {
	if w.tickInProgress {
		return core.ErrTickInProgress
	}
	if !w.entities.IsValid(id) {
		return core.ErrUnknownEntity
	}
	if w.entities.HasComponent(id, kind) {
		return core.ErrComponentAlreadyPresent
	}
	slot, ok := pool.Alloc(id, value)
	if !ok {
		return fmt.Errorf("ecs: %s pool exhausted: %w", kind, core.ErrEntityTableFull)
	}
	w.entities.SetSlot(id, kind, slot)
	return nil
}

// getComponent is the shared O(1) lookup path for every typed accessor
// below (spec.md §4.1 component_get).
func getComponent[T any](w *World, pool *core.Pool[T], id core.EntityID, kind core.ComponentType) (*T, bool) {
	slot, ok := w.entities.Slot(id, kind)
	if !ok {
		return nil, false
	}
	return pool.Get(slot), true
}

// removeComponent is the shared release path for every typed Remove*
// method below.
func removeComponent[T any](w *World, pool *core.Pool[T], id core.EntityID, kind core.ComponentType) error {
	if w.tickInProgress {
		return core.ErrTickInProgress
	}
	if !w.entities.IsValid(id) {
		return core.ErrUnknownEntity
	}
	if !w.entities.HasComponent(id, kind) {
		return core.ErrComponentNotPresent
	}
	slot := w.entities.ClearSlot(id, kind)
	pool.Release(slot)
	return nil
}

// AddTransform attaches a Transform to id, rejecting a non-unit rotation
// at the boundary (spec.md §7: "Invalid argument ... rejected at the
// boundary").
func (w *World) AddTransform(id core.EntityID, t components.Transform) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidArgument, err)
	}
	return addComponent(w, w.transforms, id, core.ComponentTransform, t)
}

// Transform returns a borrowed pointer to id's Transform, valid for the
// scope of the current tick.
func (w *World) Transform(id core.EntityID) (*components.Transform, bool) {
	return getComponent(w, w.transforms, id, core.ComponentTransform)
}

// RemoveTransform detaches id's Transform.
func (w *World) RemoveTransform(id core.EntityID) error {
	return removeComponent(w, w.transforms, id, core.ComponentTransform)
}

// AddPhysics attaches a Physics component to id.
func (w *World) AddPhysics(id core.EntityID, p components.Physics) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidArgument, err)
	}
	return addComponent(w, w.physics, id, core.ComponentPhysics, p)
}

// Physics returns a borrowed pointer to id's Physics.
func (w *World) Physics(id core.EntityID) (*components.Physics, bool) {
	return getComponent(w, w.physics, id, core.ComponentPhysics)
}

// RemovePhysics detaches id's Physics.
func (w *World) RemovePhysics(id core.EntityID) error {
	return removeComponent(w, w.physics, id, core.ComponentPhysics)
}

// AddCollider attaches a Collider to id.
func (w *World) AddCollider(id core.EntityID, c components.Collider) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidArgument, err)
	}
	return addComponent(w, w.colliders, id, core.ComponentCollider, c)
}

// Collider returns a borrowed pointer to id's Collider.
func (w *World) Collider(id core.EntityID) (*components.Collider, bool) {
	return getComponent(w, w.colliders, id, core.ComponentCollider)
}

// RemoveCollider detaches id's Collider.
func (w *World) RemoveCollider(id core.EntityID) error {
	return removeComponent(w, w.colliders, id, core.ComponentCollider)
}

// AddThrusters attaches a Thrusters component to id.
func (w *World) AddThrusters(id core.EntityID, th components.Thrusters) error {
	return addComponent(w, w.thrusters, id, core.ComponentThrusters, th)
}

// Thrusters returns a borrowed pointer to id's Thrusters.
func (w *World) Thrusters(id core.EntityID) (*components.Thrusters, bool) {
	return getComponent(w, w.thrusters, id, core.ComponentThrusters)
}

// RemoveThrusters detaches id's Thrusters.
func (w *World) RemoveThrusters(id core.EntityID) error {
	return removeComponent(w, w.thrusters, id, core.ComponentThrusters)
}

// AddFlightControl attaches a FlightControl component to id.
func (w *World) AddFlightControl(id core.EntityID, fc components.FlightControl) error {
	return addComponent(w, w.flightControls, id, core.ComponentFlightControl, fc)
}

// FlightControl returns a borrowed pointer to id's FlightControl.
func (w *World) FlightControl(id core.EntityID) (*components.FlightControl, bool) {
	return getComponent(w, w.flightControls, id, core.ComponentFlightControl)
}

// RemoveFlightControl detaches id's FlightControl.
func (w *World) RemoveFlightControl(id core.EntityID) error {
	return removeComponent(w, w.flightControls, id, core.ComponentFlightControl)
}

// AddScriptedFlight attaches a ScriptedFlight component to id.
func (w *World) AddScriptedFlight(id core.EntityID, sf components.ScriptedFlight) error {
	if err := sf.Validate(); err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidArgument, err)
	}
	return addComponent(w, w.scriptedFlights, id, core.ComponentScriptedFlight, sf)
}

// ScriptedFlight returns a borrowed pointer to id's ScriptedFlight.
func (w *World) ScriptedFlight(id core.EntityID) (*components.ScriptedFlight, bool) {
	return getComponent(w, w.scriptedFlights, id, core.ComponentScriptedFlight)
}

// RemoveScriptedFlight detaches id's ScriptedFlight.
func (w *World) RemoveScriptedFlight(id core.EntityID) error {
	return removeComponent(w, w.scriptedFlights, id, core.ComponentScriptedFlight)
}

// AddCamera attaches a Camera component to id.
func (w *World) AddCamera(id core.EntityID, c components.Camera) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidArgument, err)
	}
	return addComponent(w, w.cameras, id, core.ComponentCamera, c)
}

// Camera returns a borrowed pointer to id's Camera.
func (w *World) Camera(id core.EntityID) (*components.Camera, bool) {
	return getComponent(w, w.cameras, id, core.ComponentCamera)
}

// RemoveCamera detaches id's Camera.
func (w *World) RemoveCamera(id core.EntityID) error {
	return removeComponent(w, w.cameras, id, core.ComponentCamera)
}

// AddRenderable attaches a Renderable component to id.
func (w *World) AddRenderable(id core.EntityID, r components.Renderable) error {
	return addComponent(w, w.renderables, id, core.ComponentRenderable, r)
}

// Renderable returns a borrowed pointer to id's Renderable.
func (w *World) Renderable(id core.EntityID) (*components.Renderable, bool) {
	return getComponent(w, w.renderables, id, core.ComponentRenderable)
}

// RemoveRenderable detaches id's Renderable.
func (w *World) RemoveRenderable(id core.EntityID) error {
	return removeComponent(w, w.renderables, id, core.ComponentRenderable)
}

// ForEach visits every entity whose mask contains required, in the
// insertion order of the pool for required's lowest-numbered component
// kind (spec.md §4.1: "iteration order is insertion order within each
// component pool"). No new entities become visible mid-iteration, and
// destructions requested from fn take effect only after EndFrame.
func (w *World) ForEach(required core.ComponentMask, fn func(id core.EntityID)) {
	driving := drivingComponent(required)
	w.forEachInPool(driving, func(id core.EntityID) {
		if w.entities.Mask(id).Contains(required) {
			fn(id)
		}
	})
}

// drivingComponent returns the lowest-numbered component kind set in mask,
// used to pick which pool's insertion order drives a ForEach traversal.
func drivingComponent(mask core.ComponentMask) core.ComponentType {
	for c := core.ComponentType(0); c < core.ComponentRenderable+1; c++ {
		if mask.Has(c) {
			return c
		}
	}
	return core.ComponentTransform
}

func (w *World) forEachInPool(kind core.ComponentType, visit func(id core.EntityID)) {
	switch kind {
	case core.ComponentTransform:
		w.transforms.ForEach(func(_ int, id core.EntityID) { visit(id) })
	case core.ComponentPhysics:
		w.physics.ForEach(func(_ int, id core.EntityID) { visit(id) })
	case core.ComponentCollider:
		w.colliders.ForEach(func(_ int, id core.EntityID) { visit(id) })
	case core.ComponentThrusters:
		w.thrusters.ForEach(func(_ int, id core.EntityID) { visit(id) })
	case core.ComponentFlightControl:
		w.flightControls.ForEach(func(_ int, id core.EntityID) { visit(id) })
	case core.ComponentScriptedFlight:
		w.scriptedFlights.ForEach(func(_ int, id core.EntityID) { visit(id) })
	case core.ComponentCamera:
		w.cameras.ForEach(func(_ int, id core.EntityID) { visit(id) })
	case core.ComponentRenderable:
		w.renderables.ForEach(func(_ int, id core.EntityID) { visit(id) })
	}
}

// IncDroppedEvents increments the dropped-input-event counter (spec.md §7).
func (w *World) IncDroppedEvents() { w.stats.DroppedEvents++ }

// IncSkippedEntities increments the missing-component-skip counter.
func (w *World) IncSkippedEntities() { w.stats.SkippedEntities++ }

// IncClampedVelocities increments the numerical-instability-clamp counter.
func (w *World) IncClampedVelocities() { w.stats.ClampedVelocities++ }

// IncDroppedBindings increments the dropped-binding counter.
func (w *World) IncDroppedBindings() { w.stats.DroppedBindings++ }
