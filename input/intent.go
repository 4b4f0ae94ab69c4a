package input

// Action is a semantic input bound to one or more keys
type Action uint8

const (
	ActionNone Action = iota

	// Movement, held
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
	ActionRise
	ActionSink

	// Keyboard look, held
	ActionTurnLeft
	ActionTurnRight
	ActionLookUp
	ActionLookDown

	// Discrete
	ActionFire  // Space, one press and release per key event
	ActionPause // p
	ActionMute  // m
	ActionQuit  // q, Esc, Ctrl+C

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:      "none",
	ActionForward:   "forward",
	ActionBack:      "back",
	ActionLeft:      "left",
	ActionRight:     "right",
	ActionRise:      "rise",
	ActionSink:      "sink",
	ActionTurnLeft:  "turn_left",
	ActionTurnRight: "turn_right",
	ActionLookUp:    "look_up",
	ActionLookDown:  "look_down",
	ActionFire:      "fire",
	ActionPause:     "pause",
	ActionMute:      "mute",
	ActionQuit:      "quit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// held reports whether the action is a continuous movement or look control
func (a Action) held() bool {
	return a >= ActionForward && a <= ActionLookDown
}
