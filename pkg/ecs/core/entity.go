package core

import (
	engoecs "github.com/EngoEngine/ecs"
)

// slotSet holds, for one entity slot, the pool slot index for every
// component kind the entity currently carries. -1 means absent.
type slotSet [numComponentTypes]int

func newSlotSet() slotSet {
	var s slotSet
	for i := range s {
		s[i] = -1
	}
	return s
}

// EntityTable is the entity half of spec.md §3/§4.1: identity, the
// per-entity component bitmask, and the deferred-destroy lifecycle. It
// knows nothing about component data — that lives in per-kind Pools owned
// by the World.
type EntityTable struct {
	capacity    int
	generations []uint32
	masks       []ComponentMask
	slots       []slotSet
	alive       []bool
	free        []uint32 // free slot indices, LIFO
	pendingKill []EntityID
	insertOrder []uint32 // insertion order of currently-alive slots

	// idSalt folds a process-unique base identifier, minted once from a
	// real ECS identity allocator (EngoEngine/ecs.BasicEntity), into the
	// generation counter's starting point. This keeps EntityIDs minted by
	// independent EntityTable instances in the same process from
	// colliding on generation 0 of slot 0 — a real concern in tests that
	// spin up many worlds — without weakening the spec's 32-bit,
	// generational-index contract.
	idSalt uint32
}

// NewEntityTable preallocates a table for exactly capacity entities
// (spec.md §3: "Maximum entity count is a compile-time constant").
func NewEntityTable(capacity int) *EntityTable {
	t := &EntityTable{
		capacity:    capacity,
		generations: make([]uint32, capacity),
		masks:       make([]ComponentMask, capacity),
		slots:       make([]slotSet, capacity),
		alive:       make([]bool, capacity),
		free:        make([]uint32, 0, capacity),
		idSalt:      uint32(engoecs.NewBasic().ID()) & maxGeneration,
	}
	for i := capacity - 1; i >= 0; i-- {
		t.free = append(t.free, uint32(i))
		t.slots[i] = newSlotSet()
		t.generations[i] = t.idSalt
	}
	return t
}

// Create returns a fresh EntityID, or (InvalidEntityID, false) if the table
// is saturated (spec.md §4.1: "returns ... the invalid sentinel if the
// entity table is saturated").
func (t *EntityTable) Create() (EntityID, bool) {
	if len(t.free) == 0 {
		return InvalidEntityID, false
	}
	index := t.free[len(t.free)-1]
	t.free = t.free[:len(t.free)-1]
	t.alive[index] = true
	t.masks[index] = 0
	t.slots[index] = newSlotSet()
	t.insertOrder = append(t.insertOrder, index)
	return makeEntityID(index, t.generations[index]), true
}

// IsValid reports whether id refers to a currently-alive entity (not
// destroyed, not reclaimed, not stale).
func (t *EntityTable) IsValid(id EntityID) bool {
	if id == InvalidEntityID {
		return false
	}
	idx := id.index()
	if int(idx) >= t.capacity {
		return false
	}
	return t.alive[idx] && t.generations[idx] == id.generation()
}

// RequestDestroy marks id for removal at the next ApplyPendingDestroys call
// (spec.md §3: "Destruction is deferred"). Returns false if id is already
// invalid. Subsequent component lookups for id return "absent" immediately
// per spec.md §4.1, even though the slot is not reclaimed until the deferred
// pass runs.
func (t *EntityTable) RequestDestroy(id EntityID) bool {
	if !t.IsValid(id) {
		return false
	}
	idx := id.index()
	if t.alive[idx] {
		// A repeated destroy request for the same id is a no-op, not a
		// duplicate queue entry.
		for _, pending := range t.pendingKill {
			if pending == id {
				return true
			}
		}
	}
	t.pendingKill = append(t.pendingKill, id)
	return true
}

// Mask returns the entity's current component bitmask, or 0 if unknown.
func (t *EntityTable) Mask(id EntityID) ComponentMask {
	if !t.IsValid(id) {
		return 0
	}
	return t.masks[id.index()]
}

// HasComponent reports whether id currently carries component kind c.
func (t *EntityTable) HasComponent(id EntityID, c ComponentType) bool {
	return t.Mask(id).Has(c)
}

// Slot returns the pool slot index for component kind c on id, and whether
// it is present.
func (t *EntityTable) Slot(id EntityID, c ComponentType) (int, bool) {
	if !t.IsValid(id) {
		return -1, false
	}
	s := t.slots[id.index()][c]
	return s, s >= 0
}

// SetSlot records the pool slot index for component kind c on id and sets
// the corresponding bitmask bit.
func (t *EntityTable) SetSlot(id EntityID, c ComponentType, slot int) {
	idx := id.index()
	t.slots[idx][c] = slot
	t.masks[idx] = t.masks[idx].Set(c)
}

// ClearSlot removes the pool slot index for component kind c on id and
// clears the bitmask bit. Returns the previous slot index, or -1 if it was
// already absent.
func (t *EntityTable) ClearSlot(id EntityID, c ComponentType) int {
	idx := id.index()
	prev := t.slots[idx][c]
	t.slots[idx][c] = -1
	t.masks[idx] = t.masks[idx].Clear(c)
	return prev
}

// ApplyPendingDestroys reclaims every entity destroyed since the last call,
// bumping its generation so stale EntityIDs never alias the reused slot,
// and invokes onRelease for every component slot still attached so the
// World can return it to the owning Pool. This runs between frames, after
// all systems have completed iteration (spec.md §3, §5).
func (t *EntityTable) ApplyPendingDestroys(onRelease func(id EntityID, c ComponentType, slot int)) []EntityID {
	if len(t.pendingKill) == 0 {
		return nil
	}
	killed := t.pendingKill
	t.pendingKill = nil

	for _, id := range killed {
		idx := id.index()
		if !t.alive[idx] || t.generations[idx] != id.generation() {
			continue // already reclaimed by an earlier duplicate request
		}
		mask := t.masks[idx]
		for c := ComponentType(0); c < numComponentTypes; c++ {
			if mask.Has(c) {
				onRelease(id, c, t.slots[idx][c])
			}
		}
		t.alive[idx] = false
		t.masks[idx] = 0
		t.slots[idx] = newSlotSet()
		if t.generations[idx] == maxGeneration {
			t.generations[idx] = 0
		} else {
			t.generations[idx]++
		}
		t.free = append(t.free, idx)
		for i, live := range t.insertOrder {
			if live == idx {
				t.insertOrder = append(t.insertOrder[:i], t.insertOrder[i+1:]...)
				break
			}
		}
	}
	return killed
}

// Count returns the number of currently-alive entities.
func (t *EntityTable) Count() int {
	return len(t.insertOrder)
}

// Capacity returns the table's fixed entity capacity.
func (t *EntityTable) Capacity() int {
	return t.capacity
}

// Active returns every currently-alive EntityID in creation order.
func (t *EntityTable) Active() []EntityID {
	result := make([]EntityID, 0, len(t.insertOrder))
	for _, idx := range t.insertOrder {
		result = append(result, makeEntityID(idx, t.generations[idx]))
	}
	return result
}
