package system

import (
	"sync/atomic"

	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/economy"
	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/event"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
)

// ShopSystem drives shop proximity from player/zone contacts and runs purchases
// Purchases are handled one event at a time, so check and commit never interleave
type ShopSystem struct {
	world *engine.World

	// Telemetry
	statPurchases *atomic.Int64
	statRejected  *atomic.Int64

	enabled bool
}

func NewShopSystem(world *engine.World) engine.System {
	s := &ShopSystem{
		world: world,
	}

	s.statPurchases = world.Resources.Status.Ints.Get("shop.purchases")
	s.statRejected = world.Resources.Status.Ints.Get("shop.rejected")

	s.Init()
	return s
}

func (s *ShopSystem) Init() {
	s.statPurchases.Store(0)
	s.statRejected.Store(0)
	s.enabled = true
}

func (s *ShopSystem) Name() string {
	return "shop"
}

func (s *ShopSystem) Priority() int {
	return parameter.PriorityShop
}

func (s *ShopSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCollisionBegin,
		event.EventCollisionEnd,
		event.EventShopToggleRequest,
		event.EventPurchaseRequest,
		event.EventGameReset,
	}
}

func (s *ShopSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	switch ev.Type {
	case event.EventCollisionBegin:
		if payload, ok := ev.Payload.(*event.CollisionPayload); ok {
			if zone, ok := s.zoneContact(payload); ok {
				s.world.Resources.Economy.Shop.Enter(zone)
				s.notifyProximity()
			}
		}

	case event.EventCollisionEnd:
		if payload, ok := ev.Payload.(*event.CollisionPayload); ok {
			if zone, ok := s.zoneContact(payload); ok {
				shop := s.world.Resources.Economy.Shop
				before := *shop
				shop.Exit(zone)
				if *shop != before {
					s.notifyProximity()
				}
			}
		}

	case event.EventShopToggleRequest:
		if !s.world.Resources.Economy.Shop.ToggleUI() {
			s.reject(0, economy.ErrNotInProximity)
			return
		}
		s.notifyProximity()

	case event.EventPurchaseRequest:
		if payload, ok := ev.Payload.(*event.PurchaseRequestPayload); ok {
			s.purchase(payload.Slot)
		}
	}
}

// Update implements System interface; shop state changes only on events
func (s *ShopSystem) Update() {}

// zoneContact resolves a player/shop contact to the zone's shop kind
func (s *ShopSystem) zoneContact(p *event.CollisionPayload) (component.ShopKind, bool) {
	_, zone, ok := p.Pair(component.LayerPlayer, component.LayerShop)
	if !ok {
		return 0, false
	}
	return s.zoneKind(zone)
}

func (s *ShopSystem) zoneKind(e core.Entity) (component.ShopKind, bool) {
	z, ok := s.world.Components.Shop.GetComponent(e)
	if !ok {
		return 0, false
	}
	return z.Kind, true
}

func (s *ShopSystem) notifyProximity() {
	shop := s.world.Resources.Economy.Shop
	s.world.PushEvent(event.EventProximityChanged, &event.ProximityPayload{
		Proximity: shop.Proximity,
		UIOpen:    shop.UIOpen,
	})
}

func (s *ShopSystem) purchase(slot int) {
	receipt, err := s.world.Resources.Economy.PurchaseSlot(slot)
	if err != nil {
		s.reject(slot, err)
		return
	}

	s.statPurchases.Add(1)
	s.world.Resources.Log.Info().
		Str("item", receipt.Item.String()).
		Int("cost", receipt.Cost).
		Int("level", receipt.Level).
		Int("balance", s.world.Resources.Economy.Wallet.Balance()).
		Msg("purchase")

	s.world.PushEvent(event.EventPurchaseCompleted, &event.PurchasePayload{Receipt: receipt})
}

func (s *ShopSystem) reject(slot int, reason error) {
	s.statRejected.Add(1)
	s.world.Resources.Log.Debug().
		Int("slot", slot).
		Err(reason).
		Msg("purchase rejected")
	s.world.PushEvent(event.EventPurchaseRejected, &event.PurchaseRejectedPayload{Slot: slot, Reason: reason})
}
