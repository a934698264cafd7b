// Package report accumulates per-tick flight samples and renders them as
// a trajectory plot, a tablewriter summary, and formatted text, grounded
// on the teacher's internal/reporting package (same gonum/plot,
// olekukonko/tablewriter, and golang.org/x/text stack).
package report

import "github.com/stratobyte/flightcore/pkg/math3"

// Sample is one tick's recorded flight state for a single tracked entity.
type Sample struct {
	TimeSeconds float64
	Position    math3.Vector3
	Speed       float64
}

// Recorder accumulates Samples across a run for later plotting/reporting.
type Recorder struct {
	Name    string
	Samples []Sample
}

// NewRecorder returns an empty Recorder for the named entity.
func NewRecorder(name string) *Recorder {
	return &Recorder{Name: name}
}

// Record appends one tick's sample.
func (r *Recorder) Record(t float64, pos math3.Vector3, speed float64) {
	r.Samples = append(r.Samples, Sample{TimeSeconds: t, Position: pos, Speed: speed})
}

// MaxSpeed returns the fastest recorded speed, or 0 if empty.
func (r *Recorder) MaxSpeed() float64 {
	max := 0.0
	for _, s := range r.Samples {
		if s.Speed > max {
			max = s.Speed
		}
	}
	return max
}

// MaxAltitude returns the highest recorded Y position, or 0 if empty.
func (r *Recorder) MaxAltitude() float64 {
	max := 0.0
	for _, s := range r.Samples {
		if s.Position.Y > max {
			max = s.Position.Y
		}
	}
	return max
}
