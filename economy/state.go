package economy

import (
	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
)

// State is the flat persisted record of an economy
type State struct {
	Currency      int            `json:"money"`
	OwnedWeapons  []string       `json:"owned_weapons"`
	Upgrades      map[string]int `json:"upgrades"`
	CurrentWeapon string         `json:"current_weapon"`
}

// Snapshot captures the persistable state
func (e *Economy) Snapshot() State {
	s := State{
		Currency: e.Wallet.Balance(),
		Upgrades: make(map[string]int, component.UpgradeCount),

		CurrentWeapon: e.Ledger.CurrentWeapon().String(),
	}
	for _, k := range e.Ledger.OwnedWeapons() {
		s.OwnedWeapons = append(s.OwnedWeapons, k.String())
	}
	for k := component.UpgradeKind(0); k < component.UpgradeCount; k++ {
		s.Upgrades[k.String()] = e.Ledger.LevelOf(k)
	}
	return s
}

// Restore replaces economy state from a snapshot
// Unknown names are skipped, levels clamp to their caps, an unowned current weapon falls back to Normal
// The buffer restarts empty and the shop session resets
func (e *Economy) Restore(s State) {
	ledger := NewLedger(e.Balance)
	for _, name := range s.OwnedWeapons {
		if k, ok := component.ParseWeaponKind(name); ok {
			ledger.weapons[k] = true
		}
	}
	for name, level := range s.Upgrades {
		k, ok := component.ParseUpgradeKind(name)
		if !ok {
			continue
		}
		ledger.levels[k] = max(0, min(level, ledger.maxLevel[k]))
	}
	if k, ok := component.ParseWeaponKind(s.CurrentWeapon); ok {
		ledger.equip(k)
	}

	e.Ledger = ledger
	e.Wallet.currency = max(0, s.Currency)
	e.Buffer = NewBuffer(e.Balance.Buffer, ledger.LevelOf(component.UpgradeBuffer))
	*e.Shop = ShopSession{}
}

// LedgerView is the read model of the ledger for display collaborators
type LedgerView struct {
	Weapons  []component.WeaponKind
	Upgrades [component.UpgradeCount]int
	Current  component.WeaponKind
}

func (e *Economy) LedgerView() LedgerView {
	v := LedgerView{
		Weapons: e.Ledger.OwnedWeapons(),
		Current: e.Ledger.CurrentWeapon(),
	}
	for k := component.UpgradeKind(0); k < component.UpgradeCount; k++ {
		v.Upgrades[k] = e.Ledger.LevelOf(k)
	}
	return v
}
