package core

import "errors"

// Sentinel errors for the capacity-exhaustion, missing-component, and
// invalid-argument taxonomy of spec.md §7. Callers match with errors.Is;
// none of these ever propagate out of the per-tick hot path — they are
// setup-time-only (entity/component creation), exactly as §7 specifies.
var (
	// ErrEntityTableFull is returned by CreateEntity when MaxEntities has
	// been reached.
	ErrEntityTableFull = errors.New("ecs: entity table full")

	// ErrUnknownEntity is returned when an operation names an entity that
	// was never created, or was destroyed and reclaimed.
	ErrUnknownEntity = errors.New("ecs: unknown entity")

	// ErrComponentAlreadyPresent is returned by AddComponent when the
	// entity already carries that component kind.
	ErrComponentAlreadyPresent = errors.New("ecs: component already present")

	// ErrComponentNotPresent is returned by the World's typed Remove*
	// methods when the entity lacks the requested component.
	ErrComponentNotPresent = errors.New("ecs: component not present")

	// ErrInvalidArgument is returned when a component's initial value
	// fails validation (non-finite numbers, non-positive mass, etc).
	ErrInvalidArgument = errors.New("ecs: invalid argument")

	// ErrTickInProgress is returned by component add/remove calls made
	// while a system tick is executing — spec.md §3 restricts structural
	// changes to outside a tick, on the main thread.
	ErrTickInProgress = errors.New("ecs: components may not be added or removed during a system tick")
)
