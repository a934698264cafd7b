// Package sim wires entity descriptors into concrete worlds: tuning
// presets (§4.9), descriptor ingestion (§6.1), and scheduler setup
// (§4.2's recommended system frequencies).
package sim

import (
	"github.com/stratobyte/flightcore/pkg/components"
	"github.com/stratobyte/flightcore/pkg/math3"
)

// Preset bundles the initial FlightControl/Thrusters/Physics values a
// descriptor can reference by name (SPEC_FULL.md §4.9: "data, not runtime
// modes"). A preset never touches control flow; it only seeds component
// values at construction time.
type Preset struct {
	Name string

	Mass        float64
	InertiaDiag math3.Vector3
	LinearDrag  float64
	AngularDrag float64

	MaxLinearThrust math3.Vector3
	MaxTorque       math3.Vector3

	Mode components.FlightMode
}

// PresetRacer favors low mass and high thrust-to-mass for sharp handling.
var PresetRacer = Preset{
	Name:            "racer",
	Mass:            800,
	InertiaDiag:     math3.Vector3{X: 600, Y: 700, Z: 500},
	LinearDrag:      0.995,
	AngularDrag:     0.96,
	MaxLinearThrust: math3.Vector3{X: 4000, Y: 4000, Z: 12000},
	MaxTorque:       math3.Vector3{X: 3000, Y: 3000, Z: 1500},
	Mode:            components.ModeManual,
}

// PresetCruiser favors heavy mass and gentle stability-assisted handling.
var PresetCruiser = Preset{
	Name:            "cruiser",
	Mass:            50000,
	InertiaDiag:     math3.Vector3{X: 400000, Y: 450000, Z: 300000},
	LinearDrag:      0.999,
	AngularDrag:     0.99,
	MaxLinearThrust: math3.Vector3{X: 60000, Y: 60000, Z: 180000},
	MaxTorque:       math3.Vector3{X: 80000, Y: 80000, Z: 40000},
	Mode:            components.ModeAssisted,
}

// PresetFighter balances mass and thrust for agile assisted flight.
var PresetFighter = Preset{
	Name:            "fighter",
	Mass:            6000,
	InertiaDiag:     math3.Vector3{X: 8000, Y: 9000, Z: 6000},
	LinearDrag:      0.997,
	AngularDrag:     0.97,
	MaxLinearThrust: math3.Vector3{X: 20000, Y: 20000, Z: 60000},
	MaxTorque:       math3.Vector3{X: 15000, Y: 15000, Z: 8000},
	Mode:            components.ModeAssisted,
}

// Presets indexes the three named tuning bundles for descriptor lookup
// by name (§6.1).
var Presets = map[string]Preset{
	PresetRacer.Name:   PresetRacer,
	PresetCruiser.Name: PresetCruiser,
	PresetFighter.Name: PresetFighter,
}

// Physics builds the Physics component this preset describes.
func (p Preset) Physics() (components.Physics, error) {
	return components.NewPhysics(p.Mass, p.InertiaDiag, p.LinearDrag, p.AngularDrag)
}

// Thrusters builds the Thrusters component this preset describes.
func (p Preset) Thrusters() components.Thrusters {
	return components.Thrusters{
		MaxLinearThrust: p.MaxLinearThrust,
		MaxTorque:       p.MaxTorque,
		Enabled:         true,
	}
}

// FlightControl builds a FlightControl seeded with this preset's default
// mode.
func (p Preset) FlightControl() components.FlightControl {
	fc := components.DefaultFlightControl()
	_ = fc.SetMode(p.Mode)
	return fc
}
