package input

// Action is a bindable player action
type Action uint8

const (
	ActionNone Action = iota

	// Held
	ActionMoveLeft
	ActionMoveRight
	ActionFire

	// Edges
	ActionInteract
	ActionCycleWeapon
	ActionSlot1
	ActionSlot2
	ActionSlot3
	ActionSlot4
	ActionSlot5
	ActionSlot6
	ActionSlot7
	ActionSlot8
	ActionSlot9

	// Session, handled outside the simulation step
	ActionPause
	ActionQuickSave
	ActionQuickLoad
	ActionToggleMute
	ActionToggleDebug
	ActionQuit

	ActionCount
)

// actionNames maps canonical config names to actions
// "none" unbinds a key
var actionNames = map[string]Action{
	"none":         ActionNone,
	"move_left":    ActionMoveLeft,
	"move_right":   ActionMoveRight,
	"fire":         ActionFire,
	"interact":     ActionInteract,
	"cycle_weapon": ActionCycleWeapon,
	"slot_1":       ActionSlot1,
	"slot_2":       ActionSlot2,
	"slot_3":       ActionSlot3,
	"slot_4":       ActionSlot4,
	"slot_5":       ActionSlot5,
	"slot_6":       ActionSlot6,
	"slot_7":       ActionSlot7,
	"slot_8":       ActionSlot8,
	"slot_9":       ActionSlot9,
	"pause":        ActionPause,
	"quick_save":   ActionQuickSave,
	"quick_load":   ActionQuickLoad,
	"toggle_mute":  ActionToggleMute,
	"toggle_debug": ActionToggleDebug,
	"quit":         ActionQuit,
}

// ParseAction resolves a canonical action name
func ParseAction(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}

func (a Action) String() string {
	for name, v := range actionNames {
		if v == a && name != "none" {
			return name
		}
	}
	return "none"
}

// Slot returns the 1-based purchase slot for a slot action, 0 otherwise
func (a Action) Slot() int {
	if a >= ActionSlot1 && a <= ActionSlot9 {
		return int(a-ActionSlot1) + 1
	}
	return 0
}

// Held reports whether the action is level-triggered
func (a Action) Held() bool {
	return a == ActionMoveLeft || a == ActionMoveRight || a == ActionFire
}
