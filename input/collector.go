package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/vmath"
)

// Projector maps a screen cell to a world position
type Projector interface {
	ScreenToWorld(x, y int) vmath.Vec2
}

// Collector folds terminal events into per-tick frames
//
// Terminals report key presses and repeats but never releases, so a held key is
// one whose last press or repeat is within the hold window. Mouse buttons report
// releases, so mouse fire is tracked exactly.
// Edges accumulate between frames and are consumed by Frame. Purchase slots
// queue in press order and are released one per frame.
type Collector struct {
	table *KeyTable
	proj  Projector
	hold  time.Duration

	lastPress [ActionCount]time.Time
	edges     [ActionCount]bool
	slots     []int

	mouseDown bool
	aimX      int
	aimY      int
	aimValid  bool
}

// NewCollector creates a collector; a nil table uses the defaults
func NewCollector(table *KeyTable, proj Projector) *Collector {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Collector{
		table: table,
		proj:  proj,
		hold:  parameter.InputHoldWindow,
	}
}

// Handle records one terminal event at now
func (c *Collector) Handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a := c.table.Lookup(ev)
		if a == ActionNone {
			return
		}
		if n := a.Slot(); n > 0 {
			if len(c.slots) < parameter.InputSlotQueue {
				c.slots = append(c.slots, n)
			}
			return
		}
		// Repeats of a held action extend the hold without a new edge
		if !a.Held() || !c.held(a, now) {
			c.edges[a] = true
		}
		c.lastPress[a] = now

	case *tcell.EventMouse:
		c.aimX, c.aimY = ev.Position()
		c.aimValid = true

		down := ev.Buttons()&(tcell.Button1|tcell.Button2) != 0
		if down && !c.mouseDown {
			c.edges[ActionFire] = true
		}
		c.mouseDown = down
	}
}

func (c *Collector) held(a Action, now time.Time) bool {
	last := c.lastPress[a]
	return !last.IsZero() && now.Sub(last) <= c.hold
}

// Frame builds the intent for the tick at now and clears pending edges
func (c *Collector) Frame(now time.Time) Frame {
	var f Frame

	if c.held(ActionMoveLeft, now) || c.edges[ActionMoveLeft] {
		f.Horizontal--
	}
	if c.held(ActionMoveRight, now) || c.edges[ActionMoveRight] {
		f.Horizontal++
	}

	f.FirePressed = c.edges[ActionFire]
	f.FireHeld = c.mouseDown || c.held(ActionFire, now) || f.FirePressed

	if c.aimValid && c.proj != nil {
		f.Aim = c.proj.ScreenToWorld(c.aimX, c.aimY)
		f.AimValid = true
	}

	f.Interact = c.edges[ActionInteract]
	f.CycleWeapon = c.edges[ActionCycleWeapon]
	if len(c.slots) > 0 {
		f.PurchaseSlot = c.slots[0]
		c.slots = c.slots[1:]
	}

	f.TogglePause = c.edges[ActionPause]
	f.QuickSave = c.edges[ActionQuickSave]
	f.QuickLoad = c.edges[ActionQuickLoad]
	f.ToggleMute = c.edges[ActionToggleMute]
	f.ToggleDebug = c.edges[ActionToggleDebug]
	f.Quit = c.edges[ActionQuit]

	c.edges = [ActionCount]bool{}
	return f
}

// Reset drops held keys, pending edges and the mouse state
func (c *Collector) Reset() {
	*c = Collector{table: c.table, proj: c.proj, hold: c.hold}
}
