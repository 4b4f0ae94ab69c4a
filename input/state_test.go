package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// TestKeyTableLookup verifies rune, uppercase and special key bindings
func TestKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"w forward", runeKey('w'), ActionForward},
		{"uppercase W", runeKey('W'), ActionForward},
		{"space fire", runeKey(' '), ActionFire},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"arrow look", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionLookUp},
		{"unbound rune", runeKey('z'), ActionNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Lookup(tt.ev); got != tt.want {
				t.Errorf("Lookup = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSpacePressReleaseCycle verifies each Space press becomes one pressed then one released frame
func TestSpacePressReleaseCycle(t *testing.T) {
	s := NewState(nil, 4)
	s.HandleKey(runeKey(' '))
	s.HandleKey(runeKey(' '))

	want := []bool{true, false, true, false, false}
	for i, w := range want {
		if got := s.Frame(1, 1).FirePressed; got != w {
			t.Errorf("Frame %d: FirePressed = %v, want %v", i, got, w)
		}
	}
}

// TestMouseButtonLevel verifies the mouse trigger follows button state across frames
func TestMouseButtonLevel(t *testing.T) {
	s := NewState(nil, 4)

	s.HandleMouse(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	for i := 0; i < 3; i++ {
		if !s.Frame(1, 1).FirePressed {
			t.Fatalf("Frame %d: expected trigger held", i)
		}
	}

	s.HandleMouse(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	if s.Frame(1, 1).FirePressed {
		t.Error("Expected trigger released after button up")
	}
}

// TestHeldKeyDecay verifies a held action expires after the hold window without repeats
func TestHeldKeyDecay(t *testing.T) {
	s := NewState(nil, 3)
	s.HandleKey(runeKey('w'))

	for i := 0; i < 3; i++ {
		if !s.Frame(1, 1).Controls.Forward {
			t.Fatalf("Frame %d: expected forward held", i)
		}
	}
	if s.Frame(1, 1).Controls.Forward {
		t.Error("Expected forward released after hold window")
	}
}

// TestKeyRepeatExtendsHold verifies repeats refresh the hold window
func TestKeyRepeatExtendsHold(t *testing.T) {
	s := NewState(nil, 2)
	s.HandleKey(runeKey('a'))
	s.Frame(1, 1)
	s.HandleKey(runeKey('a'))
	s.Frame(1, 1)

	if !s.Frame(1, 1).Controls.Left {
		t.Error("Expected repeat to keep left held")
	}
}

// TestTogglesAreOneShot verifies pause and mute fire once while quit latches
func TestTogglesAreOneShot(t *testing.T) {
	s := NewState(nil, 1)
	s.HandleKey(runeKey('p'))
	s.HandleKey(runeKey('m'))
	s.HandleKey(runeKey('q'))

	first := s.Frame(1, 1)
	if !first.TogglePause || !first.ToggleMute || !first.Quit {
		t.Fatalf("First frame missing toggles: %+v", first)
	}

	second := s.Frame(1, 1)
	if second.TogglePause || second.ToggleMute {
		t.Errorf("Toggles repeated: %+v", second)
	}
	if !second.Quit {
		t.Error("Quit should stay latched")
	}
}

// TestRightDragLook verifies pointer motion with Button2 becomes scaled look delta
func TestRightDragLook(t *testing.T) {
	s := NewState(nil, 1)
	s.HandleMouse(tcell.NewEventMouse(10, 10, tcell.Button2, tcell.ModNone))
	s.HandleMouse(tcell.NewEventMouse(13, 8, tcell.Button2, tcell.ModNone))
	// Motion without the button does not look
	s.HandleMouse(tcell.NewEventMouse(20, 20, tcell.ButtonNone, tcell.ModNone))

	c := s.Frame(8, 16).Controls
	if c.MouseDX != 24 || c.MouseDY != -32 {
		t.Errorf("Look delta = (%.0f, %.0f), want (24, -32)", c.MouseDX, c.MouseDY)
	}

	c = s.Frame(8, 16).Controls
	if c.MouseDX != 0 || c.MouseDY != 0 {
		t.Error("Look delta should reset each frame")
	}
}

// TestHandleEventIgnoresOthers verifies unrelated events are reported unhandled
func TestHandleEventIgnoresOthers(t *testing.T) {
	s := NewState(nil, 1)
	if s.HandleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("Resize should not be handled by input state")
	}
	if !s.HandleEvent(runeKey('w')) {
		t.Error("Bound key should be handled")
	}
	if s.HandleEvent(runeKey('z')) {
		t.Error("Unbound key should not be handled")
	}
}

// TestActionString verifies names and the out-of-range fallback
func TestActionString(t *testing.T) {
	if ActionTurnLeft.String() != "turn_left" {
		t.Errorf("Got %q", ActionTurnLeft.String())
	}
	if Action(200).String() != "unknown" {
		t.Errorf("Got %q", Action(200).String())
	}
}
