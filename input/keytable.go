package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
// Runes are matched case-insensitively; special keys by tcell key code
type KeyTable struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyTab:    ActionCycleWeapon,
			tcell.KeyF5:     ActionQuickSave,
			tcell.KeyF9:     ActionQuickLoad,
			tcell.KeyF12:    ActionToggleDebug,
			tcell.KeyEscape: ActionPause,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
		Runes: map[rune]Action{
			'a': ActionMoveLeft,
			'd': ActionMoveRight,
			' ': ActionFire,
			'e': ActionInteract,
			'q': ActionCycleWeapon,
			'1': ActionSlot1,
			'2': ActionSlot2,
			'3': ActionSlot3,
			'4': ActionSlot4,
			'5': ActionSlot5,
			'6': ActionSlot6,
			'7': ActionSlot7,
			'8': ActionSlot8,
			'9': ActionSlot9,
			'p': ActionPause,
			'm': ActionToggleMute,
		},
	}
}

// Lookup resolves a key event to an action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if a, ok := kt.Runes[r]; ok {
			return a
		}
		if r >= 'A' && r <= 'Z' {
			return kt.Runes[r+('a'-'A')]
		}
		return ActionNone
	}
	return kt.Keys[ev.Key()]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:  make(map[tcell.Key]Action, len(kt.Keys)),
		Runes: make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	for r, v := range kt.Runes {
		c.Runes[r] = v
	}
	return c
}
