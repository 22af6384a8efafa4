package economy

import "github.com/DanBellman/Wandern-to-kill-a-Box/component"

// Proximity is which shop zone the player currently overlaps
type Proximity uint8

const (
	ProximityNone Proximity = iota
	ProximityWeapon
	ProximityUpgrade
)

func (p Proximity) String() string {
	switch p {
	case ProximityWeapon:
		return "NearWeaponShop"
	case ProximityUpgrade:
		return "NearUpgradeShop"
	default:
		return "None"
	}
}

// Shop returns the shop for a non-None proximity
func (p Proximity) Shop() (component.ShopKind, bool) {
	switch p {
	case ProximityWeapon:
		return component.ShopWeapon, true
	case ProximityUpgrade:
		return component.ShopUpgrade, true
	default:
		return 0, false
	}
}

func proximityOf(k component.ShopKind) Proximity {
	if k == component.ShopWeapon {
		return ProximityWeapon
	}
	return ProximityUpgrade
}

// ShopSession tracks shop proximity and whether the shop panel is open
type ShopSession struct {
	Proximity Proximity
	UIOpen    bool
}

// Enter moves proximity to the entered zone; an open panel stays open
func (s *ShopSession) Enter(k component.ShopKind) {
	s.Proximity = proximityOf(k)
}

// Exit clears proximity and force-closes the panel when leaving the current zone
// Exiting a zone the player is not attributed to is ignored
func (s *ShopSession) Exit(k component.ShopKind) {
	if s.Proximity != proximityOf(k) {
		return
	}
	s.Proximity = ProximityNone
	s.UIOpen = false
}

// ToggleUI flips the panel while near a shop; returns false when not near any
func (s *ShopSession) ToggleUI() bool {
	if s.Proximity == ProximityNone {
		return false
	}
	s.UIOpen = !s.UIOpen
	return true
}
