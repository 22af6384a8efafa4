package event

import (
	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/economy"
)

// CollisionPayload identifies the two entities of a collision episode
// A is always the collider with the lower layer
type CollisionPayload struct {
	A, B           core.Entity
	LayerA, LayerB component.ColliderLayer
}

// Pair returns the entities ordered as (first, second) when the layers match in either order
func (p *CollisionPayload) Pair(first, second component.ColliderLayer) (core.Entity, core.Entity, bool) {
	switch {
	case p.LayerA == first && p.LayerB == second:
		return p.A, p.B, true
	case p.LayerA == second && p.LayerB == first:
		return p.B, p.A, true
	}
	return 0, 0, false
}

// PurchaseRequestPayload carries the 1-based shop slot
type PurchaseRequestPayload struct {
	Slot int
}

// PurchasePayload describes a committed purchase
type PurchasePayload struct {
	Receipt economy.Receipt
}

// PurchaseRejectedPayload carries the rejection sentinel
type PurchaseRejectedPayload struct {
	Slot   int
	Reason error
}

type ProximityPayload struct {
	Proximity economy.Proximity
	UIOpen    bool
}

type WeaponChangedPayload struct {
	Weapon component.WeaponKind
}

type CoinPayload struct {
	Coin  core.Entity
	Value int
}

type ShotPayload struct {
	Weapon      component.WeaponKind
	Projectiles int
}

type TargetHitPayload struct {
	Target     core.Entity
	Weapon     component.WeaponKind
	Continuous bool
	Coins      int
	Value      int // Total value spawned, remainder excluded
}

type SessionPayload struct {
	Slot  string
	RunID string
}
