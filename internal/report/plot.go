package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveAltitudePlot renders altitude (position.Y) against time as an SVG,
// grounded on the teacher's GenerateAltitudeVsTimePlot.
func (r *Recorder) SaveAltitudePlot(path string) error {
	if len(r.Samples) == 0 {
		return fmt.Errorf("report: cannot plot %q: no samples recorded", r.Name)
	}

	pts := make(plotter.XYs, len(r.Samples))
	for i, s := range r.Samples {
		pts[i].X = s.TimeSeconds
		pts[i].Y = s.Position.Y
	}

	p := plot.New()
	p.Title.Text = r.Name + " altitude vs time"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Altitude (m)"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("report: build line plotter: %w", err)
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save plot %q: %w", path, err)
	}
	return nil
}

// SaveSpeedPlot renders speed against time as an SVG.
func (r *Recorder) SaveSpeedPlot(path string) error {
	if len(r.Samples) == 0 {
		return fmt.Errorf("report: cannot plot %q: no samples recorded", r.Name)
	}

	pts := make(plotter.XYs, len(r.Samples))
	for i, s := range r.Samples {
		pts[i].X = s.TimeSeconds
		pts[i].Y = s.Speed
	}

	p := plot.New()
	p.Title.Text = r.Name + " speed vs time"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Speed (units/s)"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("report: build line plotter: %w", err)
	}
	line.Color = color.RGBA{R: 255, A: 255}
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save plot %q: %w", path, err)
	}
	return nil
}
