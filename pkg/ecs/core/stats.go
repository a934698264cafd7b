package core

// Stats holds the named observability counters spec.md §7 requires:
// "every dropped event, skipped entity, clamped velocity, and dropped
// binding increments a named counter exposed through a statistics query."
// Plain int64 fields, not atomics — the scheduling model is single
// threaded (spec.md §5), so no synchronization is needed in the hot path.
type Stats struct {
	DroppedEvents    int64
	SkippedEntities  int64
	ClampedVelocities int64
	DroppedBindings  int64
}

// Snapshot returns a copy of the current counters, safe to hand to a
// read-only caller (e.g. the telemetry HTTP boundary).
func (s *Stats) Snapshot() Stats {
	return *s
}
