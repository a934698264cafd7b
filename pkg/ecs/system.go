package ecs

// System is a single simulation stage invoked by the Scheduler at its own
// nominal frequency (spec.md §4.2). Tick receives the actual elapsed
// interval since this system last ran, not a fixed step.
type System interface {
	// Name identifies the system for statistics and enable/disable calls.
	Name() string
	// Tick advances the system's state by dt seconds.
	Tick(w *World, dt float64)
}
