package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyLeft:   ActionTurnLeft,
			tcell.KeyRight:  ActionTurnRight,
			tcell.KeyUp:     ActionLookUp,
			tcell.KeyDown:   ActionLookDown,
		},
		Runes: map[rune]Action{
			'w': ActionForward,
			's': ActionBack,
			'a': ActionLeft,
			'd': ActionRight,
			'r': ActionRise,
			'f': ActionSink,
			' ': ActionFire,
			'p': ActionPause,
			'm': ActionMute,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event, ActionNone if unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
