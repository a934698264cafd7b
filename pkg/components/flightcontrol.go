package components

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/stratobyte/flightcore/pkg/math3"
)

// FlightMode is the closed enumeration of spec.md §4.4: Manual, Assisted,
// or Autonomous.
type FlightMode string

const (
	ModeManual     FlightMode = "manual"
	ModeAssisted   FlightMode = "assisted"
	ModeAutonomous FlightMode = "autonomous"
)

// ModeTuning bundles the per-mode constants of spec.md §4.4's table.
type ModeTuning struct {
	StabilityAssist  float64
	InertiaDampening float64
	BankingEnabled   bool
	BankingRatio     float64
}

// modeTunings is spec.md §4.4's table, keyed by mode.
var modeTunings = map[FlightMode]ModeTuning{
	ModeManual:     {StabilityAssist: 0.02, InertiaDampening: 0.0, BankingEnabled: false, BankingRatio: 0},
	ModeAssisted:   {StabilityAssist: 0.15, InertiaDampening: 0.10, BankingEnabled: true, BankingRatio: 1.8},
	ModeAutonomous: {StabilityAssist: 1.0, InertiaDampening: 0.8, BankingEnabled: true, BankingRatio: 1.2},
}

// Tuning returns the mode constants for m.
func (m FlightMode) Tuning() ModeTuning {
	return modeTunings[m]
}

// newModeFSM builds the looplab/fsm state machine backing FlightControl's
// mode, grounded on the teacher's MotorFSM pattern
// (pkg/components/motor_fsm.go): an auditable, named-event transition table
// instead of a bare field assignment, so a mode switch can be logged,
// rejected, or hooked without touching call sites.
func newModeFSM(initial FlightMode) *fsm.FSM {
	return fsm.NewFSM(
		string(initial),
		fsm.Events{
			{Name: "engage_manual", Src: []string{string(ModeManual), string(ModeAssisted), string(ModeAutonomous)}, Dst: string(ModeManual)},
			{Name: "engage_assisted", Src: []string{string(ModeManual), string(ModeAssisted), string(ModeAutonomous)}, Dst: string(ModeAssisted)},
			{Name: "engage_autonomous", Src: []string{string(ModeManual), string(ModeAssisted), string(ModeAutonomous)}, Dst: string(ModeAutonomous)},
		},
		fsm.Callbacks{},
	)
}

var modeEngageEvent = map[FlightMode]string{
	ModeManual:     "engage_manual",
	ModeAssisted:   "engage_assisted",
	ModeAutonomous: "engage_autonomous",
}

// FlightControl converts per-tick action values into a linear/angular
// command (spec.md §4.4). Mode transitions go through an fsm.FSM; the
// current mode is also cached as a plain field so FlightControl remains
// copyable pure data like every other component (spec.md §3) — the FSM is
// rebuilt from that field on first use after a copy, see Mode()/SetMode().
type FlightControl struct {
	mode FlightMode
	fsm  *fsm.FSM

	Sensitivity float64
	Damping     float64

	StabilityAssist     float64
	InertiaDampening    float64
	BankingEnabled      bool
	BankingRatio        float64
	CurrentBankingAngle float64

	FlightAssistEnabled bool
	FlightAssistTarget  math3.Vector3
	TargetSphereRadius  float64
	Kp, Kd              float64

	// LinearCommand/AngularCommand hold the most recently computed
	// command, in ship-local frame, each component in [-1, 1].
	LinearCommand  math3.Vector3
	AngularCommand math3.Vector3
}

// Recommended flight-assist defaults (spec.md §4.4).
const (
	DefaultFlightAssistKp           = 2.0
	DefaultFlightAssistKd           = 0.5
	DefaultFlightAssistSphereRadius = 50.0
	DefaultFlightAssistMaxAccel     = 30.0
)

// DefaultFlightControl returns an Assisted-mode FlightControl with the
// spec.md §4.4 Assisted tuning (the documented default mode).
func DefaultFlightControl() FlightControl {
	fc := FlightControl{
		mode:               ModeAssisted,
		TargetSphereRadius: DefaultFlightAssistSphereRadius,
		Kp:                 DefaultFlightAssistKp,
		Kd:                 DefaultFlightAssistKd,
	}
	fc.applyModeTuning()
	fc.fsm = newModeFSM(fc.mode)
	return fc
}

func (fc *FlightControl) applyModeTuning() {
	t := fc.mode.Tuning()
	fc.StabilityAssist = t.StabilityAssist
	fc.InertiaDampening = t.InertiaDampening
	fc.BankingEnabled = t.BankingEnabled
	fc.BankingRatio = t.BankingRatio
}

// Mode returns the current flight mode.
func (fc *FlightControl) Mode() FlightMode {
	if fc.mode == "" {
		fc.mode = ModeAssisted
	}
	return fc.mode
}

// SetMode transitions to the given mode through the FSM, applying that
// mode's tuning table (spec.md §4.4) on success. Invalid target modes are
// rejected.
func (fc *FlightControl) SetMode(target FlightMode) error {
	event, ok := modeEngageEvent[target]
	if !ok {
		return fmt.Errorf("flightcontrol: unknown mode %q", target)
	}
	if fc.fsm == nil {
		fc.fsm = newModeFSM(fc.Mode())
	}
	if err := fc.fsm.Event(context.Background(), event); err != nil {
		return fmt.Errorf("flightcontrol: mode transition to %q failed: %w", target, err)
	}
	fc.mode = target
	fc.applyModeTuning()
	return nil
}
