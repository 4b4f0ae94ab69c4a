package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ufo-shooter/camera"
)

// Snapshot is the input of one frame
type Snapshot struct {
	Controls    camera.Controls
	FirePressed bool // Level state of the trigger
	TogglePause bool
	ToggleMute  bool
	Quit        bool
}

// State accumulates terminal events between frames
// Terminals report key presses but no releases, so a held action stays
// active for holdFrames frames after its last repeat
type State struct {
	keys       *KeyTable
	holdFrames int
	held       [actionCount]int // Remaining frames per held action

	mouseDown  bool // Button1 level from the last mouse event
	fireQueued int  // Space presses not yet played back
	fireLatch  bool // Space press occupying the current frame

	lastX, lastY int
	haveMouse    bool
	dragX, dragY int // Accumulated pointer motion while Button2 is down

	pause, mute, quit bool
}

// NewState creates an accumulator; holdFrames below 1 is treated as 1
func NewState(keys *KeyTable, holdFrames int) *State {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &State{
		keys:       keys,
		holdFrames: max(1, holdFrames),
	}
}

// HandleEvent routes a tcell event, returning false for events it ignores
func (s *State) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.HandleKey(ev)
	case *tcell.EventMouse:
		s.HandleMouse(ev)
		return true
	}
	return false
}

// HandleKey applies a key press
func (s *State) HandleKey(ev *tcell.EventKey) bool {
	a := s.keys.Lookup(ev)
	switch {
	case a == ActionNone:
		return false
	case a.held():
		s.held[a] = s.holdFrames
	case a == ActionFire:
		s.fireQueued++
	case a == ActionPause:
		s.pause = true
	case a == ActionMute:
		s.mute = true
	case a == ActionQuit:
		s.quit = true
	}
	return true
}

// HandleMouse applies button state and right-drag look
func (s *State) HandleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	s.mouseDown = buttons&tcell.Button1 != 0

	x, y := ev.Position()
	if buttons&tcell.Button2 != 0 && s.haveMouse {
		s.dragX += x - s.lastX
		s.dragY += y - s.lastY
	}
	s.lastX, s.lastY = x, y
	s.haveMouse = true
}

// Frame consumes the accumulated events into one frame of input
// Each queued Space press yields one pressed frame followed by one released frame
func (s *State) Frame(cellW, cellH float32) Snapshot {
	var snap Snapshot

	if s.fireLatch {
		s.fireLatch = false
	} else if s.fireQueued > 0 {
		s.fireQueued--
		s.fireLatch = true
	}
	snap.FirePressed = s.mouseDown || s.fireLatch

	c := &snap.Controls
	c.Forward = s.held[ActionForward] > 0
	c.Back = s.held[ActionBack] > 0
	c.Left = s.held[ActionLeft] > 0
	c.Right = s.held[ActionRight] > 0
	c.Rise = s.held[ActionRise] > 0
	c.Sink = s.held[ActionSink] > 0
	c.TurnLeft = s.held[ActionTurnLeft] > 0
	c.TurnRight = s.held[ActionTurnRight] > 0
	c.LookUp = s.held[ActionLookUp] > 0
	c.LookDown = s.held[ActionLookDown] > 0
	c.MouseDX = float32(s.dragX) * cellW
	c.MouseDY = float32(s.dragY) * cellH
	s.dragX, s.dragY = 0, 0

	for i := range s.held {
		if s.held[i] > 0 {
			s.held[i]--
		}
	}

	snap.TogglePause, snap.ToggleMute, snap.Quit = s.pause, s.mute, s.quit
	s.pause, s.mute = false, false
	return snap
}
