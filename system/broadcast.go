package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/DanBellman/Wandern-to-kill-a-Box/economy"
	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/event"
	"github.com/DanBellman/Wandern-to-kill-a-Box/network"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
)

// BroadcastSystem publishes throttled HUD snapshots and gameplay notices to the HUD feed
// Silent when no feed is bridged
type BroadcastSystem struct {
	world *engine.World

	// sinceLast accumulates game time toward the next snapshot
	sinceLast time.Duration

	enabled bool
}

func NewBroadcastSystem(world *engine.World) engine.System {
	s := &BroadcastSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *BroadcastSystem) Init() {
	// First tick after a reset publishes immediately
	s.sinceLast = parameter.HUDBroadcastInterval
	s.enabled = true
}

func (s *BroadcastSystem) Name() string {
	return "broadcast"
}

func (s *BroadcastSystem) Priority() int {
	return parameter.PriorityBroadcast
}

func (s *BroadcastSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPurchaseCompleted,
		event.EventPurchaseRejected,
		event.EventProximityChanged,
		event.EventWeaponChanged,
		event.EventPauseToggle,
		event.EventSessionRestored,
		event.EventSessionSaved,
		event.EventGameReset,
	}
}

func (s *BroadcastSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	feed := s.world.Resources.Network.Feed
	if feed == nil {
		return
	}

	feed.PublishEvent(network.EventNotice{Name: ev.Type.String(), Detail: noticeDetail(ev)})

	// Pause freezes Update; push the frozen state now
	if ev.Type == event.EventPauseToggle {
		feed.PublishHUD(BuildHUD(s.world))
	}
}

func (s *BroadcastSystem) Update() {
	if !s.enabled {
		return
	}

	feed := s.world.Resources.Network.Feed
	if feed == nil {
		return
	}

	s.sinceLast += s.world.Resources.Time.DeltaTime
	if s.sinceLast < parameter.HUDBroadcastInterval {
		return
	}
	s.sinceLast = 0
	feed.PublishHUD(BuildHUD(s.world))
}

func noticeDetail(ev event.GameEvent) string {
	switch p := ev.Payload.(type) {
	case *event.PurchasePayload:
		return fmt.Sprintf("%s for %d (level %d)", p.Receipt.Item, p.Receipt.Cost, p.Receipt.Level)
	case *event.PurchaseRejectedPayload:
		if p.Reason == nil {
			return ""
		}
		return RejectionText(p.Reason)
	case *event.ProximityPayload:
		return p.Proximity.String()
	case *event.WeaponChangedPayload:
		return p.Weapon.String()
	case *event.SessionPayload:
		return p.Slot
	default:
		return ""
	}
}

// RejectionText maps a purchase rejection to player-facing text
func RejectionText(err error) string {
	switch {
	case errors.Is(err, economy.ErrInsufficientFunds):
		return "Not enough money"
	case errors.Is(err, economy.ErrAlreadyOwnedOrMaxed):
		return "Already owned"
	case errors.Is(err, economy.ErrNotInProximity):
		return "Not near a shop"
	case errors.Is(err, economy.ErrUnknownItem):
		return "No such item"
	default:
		return err.Error()
	}
}
