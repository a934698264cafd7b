package components

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/stratobyte/flightcore/pkg/math3"
)

// WaypointState is the closed enumeration of spec.md §3/§4.5's arrival
// state machine: Idle (inactive or queue exhausted without looping),
// Approaching (en route to Waypoints[CurrentIndex]), Arrived (within
// ArrivalTolerance this tick, about to advance).
type WaypointState string

const (
	WaypointIdle        WaypointState = "idle"
	WaypointApproaching WaypointState = "approaching"
	WaypointArrived     WaypointState = "arrived"
)

// newWaypointFSM builds the state machine for ScriptedFlight, grounded on
// the same MotorFSM pattern as FlightControl's mode machine
// (pkg/components/motor_fsm.go): named events instead of direct field
// writes keep arrival transitions auditable and reject illegal jumps
// (e.g. Idle straight to Arrived).
func newWaypointFSM(initial WaypointState) *fsm.FSM {
	return fsm.NewFSM(
		string(initial),
		fsm.Events{
			{Name: "depart", Src: []string{string(WaypointIdle), string(WaypointArrived)}, Dst: string(WaypointApproaching)},
			{Name: "arrive", Src: []string{string(WaypointApproaching)}, Dst: string(WaypointArrived)},
			{Name: "queue_exhausted", Src: []string{string(WaypointArrived), string(WaypointApproaching)}, Dst: string(WaypointIdle)},
		},
		fsm.Callbacks{},
	)
}

var waypointEventFor = map[WaypointState]string{
	WaypointApproaching: "depart",
	WaypointArrived:     "arrive",
	WaypointIdle:        "queue_exhausted",
}

// ScriptedFlight synthesizes FlightControl commands along a waypoint path,
// overriding human input while Active (spec.md §3/§4.5).
type ScriptedFlight struct {
	state WaypointState
	fsm   *fsm.FSM

	// Waypoints holds the ordered sequence of target positions, world
	// frame (spec.md §3).
	Waypoints []math3.Vector3

	// CurrentIndex is the waypoint currently being approached. Invariant
	// (spec.md §8 #5): CurrentIndex ∈ [0, len(Waypoints)) whenever Active.
	CurrentIndex int

	ArrivalTolerance float64
	CruiseSpeed      float64
	MaxAcceleration  float64

	Loop   bool
	Active bool

	// lastFacing caches the previous tick's desired facing quaternion for
	// the near-parallel-to-up tie-break of spec.md §4.5.
	lastFacing math3.Quaternion
}

// DefaultScriptedFlight returns an inactive ScriptedFlight with an empty
// queue, matching spec.md §4.1's implicit default of "present but inert."
func DefaultScriptedFlight() ScriptedFlight {
	sf := ScriptedFlight{
		state:      WaypointIdle,
		lastFacing: math3.IdentityQuaternion(),
	}
	sf.fsm = newWaypointFSM(sf.state)
	return sf
}

// State returns the current arrival state.
func (sf *ScriptedFlight) State() WaypointState {
	if sf.state == "" {
		sf.state = WaypointIdle
	}
	return sf.state
}

func (sf *ScriptedFlight) ensureFSM() {
	if sf.fsm == nil {
		sf.fsm = newWaypointFSM(sf.State())
	}
}

// transition drives the FSM to target, rejecting illegal source states.
func (sf *ScriptedFlight) transition(target WaypointState) error {
	sf.ensureFSM()
	event := waypointEventFor[target]
	if err := sf.fsm.Event(context.Background(), event); err != nil {
		return fmt.Errorf("scriptedflight: %s failed from %q: %w", event, sf.state, err)
	}
	sf.state = target
	return nil
}

// Depart transitions Idle/Arrived -> Approaching (spec.md §4.5 step 4).
func (sf *ScriptedFlight) Depart() error {
	return sf.transition(WaypointApproaching)
}

// Arrive transitions Approaching -> Arrived (spec.md §4.5 step 3: "If r <
// arrival_tolerance: mark state Arrived").
func (sf *ScriptedFlight) Arrive() error {
	return sf.transition(WaypointArrived)
}

// QueueExhausted transitions Arrived/Approaching -> Idle (spec.md §4.5
// step 3: "if past the end ... deactivate").
func (sf *ScriptedFlight) QueueExhausted() error {
	return sf.transition(WaypointIdle)
}

// LastFacing returns the previous tick's desired facing quaternion, used
// by the ScriptedFlight system's near-parallel-to-up tie-break (spec.md
// §4.5 "Tie-breaks").
func (sf *ScriptedFlight) LastFacing() math3.Quaternion {
	if sf.lastFacing == (math3.Quaternion{}) {
		return math3.IdentityQuaternion()
	}
	return sf.lastFacing
}

// SetLastFacing records this tick's desired facing quaternion for the next
// tick's tie-break.
func (sf *ScriptedFlight) SetLastFacing(q math3.Quaternion) {
	sf.lastFacing = q
}

// AdvanceIndex moves CurrentIndex to the next waypoint, looping to 0 or
// deactivating at the end of the queue per spec.md §4.5 step 3.
func (sf *ScriptedFlight) AdvanceIndex() {
	sf.CurrentIndex++
	if sf.CurrentIndex >= len(sf.Waypoints) {
		if sf.Loop && len(sf.Waypoints) > 0 {
			sf.CurrentIndex = 0
		} else {
			sf.Active = false
			sf.CurrentIndex = len(sf.Waypoints) - 1
			if sf.CurrentIndex < 0 {
				sf.CurrentIndex = 0
			}
		}
	}
}

// CurrentWaypoint returns Waypoints[CurrentIndex] and whether it exists.
func (sf *ScriptedFlight) CurrentWaypoint() (math3.Vector3, bool) {
	if sf.CurrentIndex < 0 || sf.CurrentIndex >= len(sf.Waypoints) {
		return math3.Vector3{}, false
	}
	return sf.Waypoints[sf.CurrentIndex], true
}

// Validate enforces spec.md §3: "current_index ∈ [0, waypoint_count) when
// active."
func (sf ScriptedFlight) Validate() error {
	if !sf.Active {
		return nil
	}
	if sf.CurrentIndex < 0 || sf.CurrentIndex >= len(sf.Waypoints) {
		return errInvalid("scriptedflight: current index %d out of range [0,%d) while active", sf.CurrentIndex, len(sf.Waypoints))
	}
	return nil
}
