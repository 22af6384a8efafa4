package economy

import (
	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/config"
)

// Ledger records owned weapons, upgrade levels and the equipped weapon
// Normal is always owned and the equipped weapon is always owned
type Ledger struct {
	weapons  [component.WeaponCount]bool
	levels   [component.UpgradeCount]int
	maxLevel [component.UpgradeCount]int
	current  component.WeaponKind
}

// NewLedger creates a fresh ledger: Normal equipped, buffer at its start level
func NewLedger(b config.Balance) *Ledger {
	l := &Ledger{current: component.WeaponNormal}
	l.weapons[component.WeaponNormal] = true
	for k := component.UpgradeKind(0); k < component.UpgradeCount; k++ {
		l.maxLevel[k] = b.MaxLevel(k)
	}
	l.levels[component.UpgradeBuffer] = min(b.Buffer.StartLevel, l.maxLevel[component.UpgradeBuffer])
	return l
}

// OwnsWeapon reports whether the weapon is unlocked
func (l *Ledger) OwnsWeapon(k component.WeaponKind) bool {
	return k.Valid() && l.weapons[k]
}

// OwnsUpgrade reports whether the upgrade has at least one level
func (l *Ledger) OwnsUpgrade(k component.UpgradeKind) bool {
	return k < component.UpgradeCount && l.levels[k] > 0
}

// Owns reports item ownership; leveled upgrades count as owned from level 1
func (l *Ledger) Owns(it Item) bool {
	if it.Class == ItemWeapon {
		return l.OwnsWeapon(it.Weapon)
	}
	return l.OwnsUpgrade(it.Upgrade)
}

// LevelOf returns the level of an upgrade, 0 or 1 for boolean kinds
func (l *Ledger) LevelOf(k component.UpgradeKind) int {
	if k >= component.UpgradeCount {
		return 0
	}
	return l.levels[k]
}

// MaxLevel returns the level cap of an upgrade
func (l *Ledger) MaxLevel(k component.UpgradeKind) int {
	if k >= component.UpgradeCount {
		return 0
	}
	return l.maxLevel[k]
}

// Maxed reports whether the item can no longer be bought
func (l *Ledger) Maxed(it Item) bool {
	if it.Class == ItemWeapon {
		return l.OwnsWeapon(it.Weapon)
	}
	return l.LevelOf(it.Upgrade) >= l.MaxLevel(it.Upgrade)
}

// Grant unlocks a weapon or raises an upgrade by one level, capped at its max
// Never removes or downgrades; granting an owned boolean item is a no-op
func (l *Ledger) Grant(it Item) {
	switch it.Class {
	case ItemWeapon:
		if it.Weapon.Valid() {
			l.weapons[it.Weapon] = true
		}
	case ItemUpgrade:
		if it.Upgrade >= component.UpgradeCount {
			return
		}
		if l.levels[it.Upgrade] < l.maxLevel[it.Upgrade] {
			l.levels[it.Upgrade]++
		}
	}
}

// CurrentWeapon returns the equipped weapon
func (l *Ledger) CurrentWeapon() component.WeaponKind {
	return l.current
}

// OwnedWeapons returns owned weapons in canonical order
func (l *Ledger) OwnedWeapons() []component.WeaponKind {
	owned := make([]component.WeaponKind, 0, component.WeaponCount)
	for k := component.WeaponKind(0); k < component.WeaponCount; k++ {
		if l.weapons[k] {
			owned = append(owned, k)
		}
	}
	return owned
}

// CycleWeapon equips the next owned weapon in canonical order, wrapping to the first
func (l *Ledger) CycleWeapon() component.WeaponKind {
	owned := l.OwnedWeapons()

	next := 0
	for i, k := range owned {
		if k == l.current {
			next = (i + 1) % len(owned)
			break
		}
	}
	l.current = owned[next]
	return l.current
}

// equip sets the current weapon if owned, otherwise falls back to Normal
func (l *Ledger) equip(k component.WeaponKind) {
	if l.OwnsWeapon(k) {
		l.current = k
		return
	}
	l.current = component.WeaponNormal
}
