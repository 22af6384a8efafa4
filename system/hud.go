package system

import (
	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/network"
)

// BuildHUD captures the display read model of a world
func BuildHUD(w *engine.World) network.HUDState {
	econ := w.Resources.Economy
	view := econ.LedgerView()

	state := network.HUDState{
		Frame: w.Resources.Time.FrameNumber,

		Currency:      econ.Wallet.Balance(),
		BufferCurrent: econ.Buffer.Current(),
		BufferMax:     econ.Buffer.Capacity(),
		BufferPercent: econ.Buffer.Percentage(),

		Weapon:   view.Current.String(),
		Weapons:  make([]string, 0, len(view.Weapons)),
		Upgrades: make(map[string]int, component.UpgradeCount),

		Proximity: econ.Shop.Proximity.String(),
		ShopOpen:  econ.Shop.UIOpen,

		Elapsed: FormatElapsed(w.Resources.Time.GameTime),
		Paused:  w.Resources.Time.Paused,

		Coins: w.Components.Coin.CountEntities(),
	}
	for _, k := range view.Weapons {
		state.Weapons = append(state.Weapons, k.String())
	}
	for k := component.UpgradeKind(0); k < component.UpgradeCount; k++ {
		state.Upgrades[k.String()] = view.Upgrades[k]
	}
	return state
}
