package input

import "math"

// Action is the closed enumeration of spec.md §4.3: "thrust forward/back,
// strafe left/right, vertical up/down, pitch up/down, yaw left/right,
// roll left/right, boost, brake, and UI navigation actions."
type Action int

const (
	ActionThrustForward Action = iota
	ActionThrustBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionVerticalUp
	ActionVerticalDown
	ActionPitchUp
	ActionPitchDown
	ActionYawLeft
	ActionYawRight
	ActionRollLeft
	ActionRollRight
	ActionBoost
	ActionBrake
	ActionUIUp
	ActionUIDown
	ActionUILeft
	ActionUIRight
	ActionUIConfirm
	ActionUICancel

	numActions
)

var actionNames = [numActions]string{
	ActionThrustForward: "thrust_forward",
	ActionThrustBack:    "thrust_back",
	ActionStrafeLeft:    "strafe_left",
	ActionStrafeRight:   "strafe_right",
	ActionVerticalUp:    "vertical_up",
	ActionVerticalDown:  "vertical_down",
	ActionPitchUp:       "pitch_up",
	ActionPitchDown:     "pitch_down",
	ActionYawLeft:       "yaw_left",
	ActionYawRight:      "yaw_right",
	ActionRollLeft:      "roll_left",
	ActionRollRight:     "roll_right",
	ActionBoost:         "boost",
	ActionBrake:         "brake",
	ActionUIUp:          "ui_up",
	ActionUIDown:        "ui_down",
	ActionUILeft:        "ui_left",
	ActionUIRight:       "ui_right",
	ActionUIConfirm:     "ui_confirm",
	ActionUICancel:      "ui_cancel",
}

// String renders the action's configuration-file name.
func (a Action) String() string {
	if a < 0 || a >= numActions {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction resolves a configuration-file action name to an Action,
// the "unknown action name yields a loader error" path of spec.md §6.4.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// InputLocator names a specific physical input: a keyboard key code, or a
// gamepad's axis/button index (spec.md §4.3).
type InputLocator struct {
	Device    DeviceKind
	KeyCode   uint16
	GamepadID uint8
	Index     uint8 // axis index (IsAxis) or button bit index
	IsAxis    bool
}

// Binding maps one physical input to an Action within a context (spec.md
// §4.3/§6.4).
type Binding struct {
	Locator   InputLocator
	Modifiers uint8 // required modifier mask; 0 means "any"
	Action    Action
	Scale     float64
	DeadZone  float64
}

// Context is a named layer of bindings; only the top of the stack is
// active (spec.md §4.3).
type Context string

// ActionService drains the HAL ring buffer each tick and resolves the
// active context's bindings into per-action scalar values (spec.md §4.3).
type ActionService struct {
	ring *RingBuffer

	bindings     map[Context][]Binding
	contextStack []Context

	digitalState map[InputLocator]bool
	modifierSeen map[InputLocator]uint8
	analogState  map[InputLocator]float64

	values      [numActions]float64
	prevNonZero [numActions]bool
	pressedEdge [numActions]bool

	droppedBindings int64
}

// NewActionService wires an ActionService to the given HAL ring buffer.
func NewActionService(ring *RingBuffer) *ActionService {
	return &ActionService{
		ring:         ring,
		bindings:     make(map[Context][]Binding),
		digitalState: make(map[InputLocator]bool),
		modifierSeen: make(map[InputLocator]uint8),
		analogState:  make(map[InputLocator]float64),
	}
}

// PushContext makes ctx the active context; only its bindings resolve to
// action values until it is popped.
func (a *ActionService) PushContext(ctx Context) {
	a.contextStack = append(a.contextStack, ctx)
}

// PopContext removes the top context, if any.
func (a *ActionService) PopContext() {
	if len(a.contextStack) == 0 {
		return
	}
	a.contextStack = a.contextStack[:len(a.contextStack)-1]
}

func (a *ActionService) activeContext() Context {
	if len(a.contextStack) == 0 {
		return ""
	}
	return a.contextStack[len(a.contextStack)-1]
}

// AddBinding registers b under ctx. Returns false if an identical locator
// is already bound in ctx (spec.md §7: "duplicate binding in same
// context"); the caller is expected to drop the offending binding and log
// a warning.
func (a *ActionService) AddBinding(ctx Context, b Binding) bool {
	for _, existing := range a.bindings[ctx] {
		if existing.Locator == b.Locator {
			a.droppedBindings++
			return false
		}
	}
	a.bindings[ctx] = append(a.bindings[ctx], b)
	return true
}

// DroppedBindings returns the cumulative count of bindings rejected by
// AddBinding.
func (a *ActionService) DroppedBindings() int64 {
	return a.droppedBindings
}

// Tick drains every buffered event, updates raw device state, and
// recomputes every action's value from the active context's bindings
// (spec.md §4.3 "per-tick behavior").
func (a *ActionService) Tick() {
	var buf [64]Event
	for {
		n := a.ring.Drain(buf[:])
		for i := 0; i < n; i++ {
			a.applyEvent(buf[i])
		}
		if n < len(buf) {
			break
		}
	}
	a.recompute()
}

func (a *ActionService) applyEvent(e Event) {
	switch e.Kind {
	case EventKey:
		loc := InputLocator{Device: DeviceKeyboard, KeyCode: e.Key.KeyCode}
		a.digitalState[loc] = e.Key.Pressed
		a.modifierSeen[loc] = e.Key.Modifiers
	case EventGamepadAxis:
		loc := InputLocator{Device: DeviceGamepad, GamepadID: e.Axis.GamepadID, Index: e.Axis.AxisIndex, IsAxis: true}
		a.analogState[loc] = e.Axis.Value
	case EventGamepadButton:
		for bit := 0; bit < 32; bit++ {
			loc := InputLocator{Device: DeviceGamepad, GamepadID: e.Button.GamepadID, Index: uint8(bit)}
			a.digitalState[loc] = e.Button.ButtonMask&(1<<uint(bit)) != 0
		}
	}
}

func (a *ActionService) recompute() {
	var sums [numActions]float64
	for _, b := range a.bindings[a.activeContext()] {
		if b.Locator.IsAxis {
			sums[b.Action] += resolveAnalog(a.analogState[b.Locator], b.Scale, b.DeadZone)
			continue
		}
		if b.Modifiers != 0 && a.modifierSeen[b.Locator]&b.Modifiers != b.Modifiers {
			continue
		}
		if a.digitalState[b.Locator] {
			sums[b.Action] += b.Scale
		}
	}

	for i := range sums {
		v := clampFloat(sums[i], -1, 1)
		a.values[i] = v
		isNonZero := v != 0
		a.pressedEdge[i] = isNonZero && !a.prevNonZero[i]
		a.prevNonZero[i] = isNonZero
	}
}

// resolveAnalog applies spec.md §4.3's dead-zone/scale formula: "value =
// (raw − sign(raw) · dead_zone) / (1 − dead_zone), clamped to [−1, 1],
// multiplied by scale; inputs below dead-zone yield 0."
func resolveAnalog(raw, scale, deadZone float64) float64 {
	if math.Abs(raw) < deadZone {
		return 0
	}
	sign := 1.0
	if raw < 0 {
		sign = -1.0
	}
	adjusted := (raw - sign*deadZone) / (1 - deadZone)
	adjusted = clampFloat(adjusted, -1, 1)
	return adjusted * scale
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GetActionValue returns the most recently computed scalar for action
// (spec.md §4.3 query contract). Never blocks.
func (a *ActionService) GetActionValue(action Action) float64 {
	if action < 0 || action >= numActions {
		return 0
	}
	return a.values[action]
}

// IsActionPressed reports whether action transitioned from zero to
// nonzero on the most recently processed tick.
func (a *ActionService) IsActionPressed(action Action) bool {
	if action < 0 || action >= numActions {
		return false
	}
	return a.pressedEdge[action]
}
