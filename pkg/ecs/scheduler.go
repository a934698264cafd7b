package ecs

import "time"

// movingAverageAlpha weights each new sample against the running average
// for the per-system timing statistics of spec.md §4.2.
const movingAverageAlpha = 0.1

// SystemStats is the per-system observability record spec.md §4.2 requires
// ("per-system moving-average execution time is recorded for
// observability; the scheduler does not act on it").
type SystemStats struct {
	Name           string
	Enabled        bool
	FrequencyHz    float64
	Invocations    int64
	AvgExecMicros  float64
	LastExecMicros float64
}

type registeredSystem struct {
	system      System
	frequencyHz float64
	enabled     bool
	accumulator float64
	stats       SystemStats
}

// Scheduler holds a fixed, ordered enumeration of registered systems and
// drives each at its own nominal frequency (spec.md §4.2). Systems run in
// the order they were registered — spec.md §4.2's declared static order,
// InputService → Control → ScriptedFlight → Thrusters → Physics → Camera →
// LOD → Renderable visibility, is expressed by the caller's registration
// order in pkg/sim's world setup, not by anything in this type.
type Scheduler struct {
	systems   []*registeredSystem
	totalTime float64
}

// NewScheduler returns an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Register adds a system to the static execution order at the given
// nominal frequency, enabled by default.
func (s *Scheduler) Register(system System, frequencyHz float64) {
	s.systems = append(s.systems, &registeredSystem{
		system:      system,
		frequencyHz: frequencyHz,
		enabled:     true,
		stats: SystemStats{
			Name:        system.Name(),
			Enabled:     true,
			FrequencyHz: frequencyHz,
		},
	})
}

// SetEnabled toggles a registered system by name; unknown names are a
// no-op.
func (s *Scheduler) SetEnabled(name string, enabled bool) {
	for _, rs := range s.systems {
		if rs.system.Name() == name {
			rs.enabled = enabled
			rs.stats.Enabled = enabled
			return
		}
	}
}

// Tick advances total simulation time by frameDelta and invokes every
// enabled system whose accumulator has reached 1/frequency, passing the
// actual elapsed interval (spec.md §4.2). Systems run in static
// registration order, sequentially, on this goroutine (spec.md §5). After
// every system has run, pending entity destructions are applied.
func (s *Scheduler) Tick(w *World, frameDelta float64) {
	s.totalTime += frameDelta

	w.beginTick()
	for _, rs := range s.systems {
		if !rs.enabled {
			continue
		}
		rs.accumulator += frameDelta
		period := 1.0 / rs.frequencyHz
		if rs.accumulator < period {
			continue
		}
		elapsed := rs.accumulator
		rs.accumulator -= elapsed

		start := time.Now()
		rs.system.Tick(w, elapsed)
		s.recordExec(rs, time.Since(start))
	}
	w.endTick()

	w.EndFrame()
}

func (s *Scheduler) recordExec(rs *registeredSystem, d time.Duration) {
	micros := float64(d.Microseconds())
	rs.stats.Invocations++
	rs.stats.LastExecMicros = micros
	if rs.stats.Invocations == 1 {
		rs.stats.AvgExecMicros = micros
		return
	}
	rs.stats.AvgExecMicros = rs.stats.AvgExecMicros*(1-movingAverageAlpha) + micros*movingAverageAlpha
}

// Stats returns a snapshot of every registered system's statistics, in
// registration order.
func (s *Scheduler) Stats() []SystemStats {
	out := make([]SystemStats, len(s.systems))
	for i, rs := range s.systems {
		out[i] = rs.stats
	}
	return out
}

// TotalTime returns the cumulative simulated time since the Scheduler was
// created.
func (s *Scheduler) TotalTime() float64 {
	return s.totalTime
}
