package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/economy"
	"github.com/DanBellman/Wandern-to-kill-a-Box/input"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/vmath"
)

func TestShop_ProximityFollowsZones(t *testing.T) {
	w := newTestWorld(t)
	shop := w.Resources.Economy.Shop

	movePlayer(w, parameter.WeaponShopX)
	step(w, input.Frame{}, 1)
	assert.Equal(t, economy.ProximityWeapon, shop.Proximity)

	step(w, input.Frame{Interact: true}, 1)
	assert.True(t, shop.UIOpen)

	movePlayer(w, parameter.UpgradeShopX)
	step(w, input.Frame{}, 1)
	assert.Equal(t, economy.ProximityUpgrade, shop.Proximity)
	assert.False(t, shop.UIOpen, "leaving the zone force-closes the panel")

	movePlayer(w, 0)
	step(w, input.Frame{}, 1)
	assert.Equal(t, economy.ProximityNone, shop.Proximity)
}

func TestShop_ToggleOutsideZoneIsRejected(t *testing.T) {
	w := newTestWorld(t)

	step(w, input.Frame{Interact: true}, 1)
	assert.False(t, w.Resources.Economy.Shop.UIOpen)
	assert.EqualValues(t, 1, counter(w, "shop.rejected"))
}

func TestShop_BufferUpgradeEscalates(t *testing.T) {
	w := newTestWorld(t)
	econ := w.Resources.Economy
	econ.Restore(economy.State{Currency: 1000})

	movePlayer(w, parameter.UpgradeShopX)
	step(w, input.Frame{}, 1)
	require.Equal(t, economy.ProximityUpgrade, econ.Shop.Proximity)

	step(w, input.Frame{PurchaseSlot: 3}, 1)
	assert.Equal(t, 400, econ.Wallet.Balance())
	assert.Equal(t, 2, econ.Ledger.LevelOf(component.UpgradeBuffer))
	assert.Equal(t, 40.0, econ.Buffer.Capacity())

	step(w, input.Frame{PurchaseSlot: 3}, 1)
	assert.Equal(t, 400, econ.Wallet.Balance(), "800 is not affordable")
	assert.Equal(t, 2, econ.Ledger.LevelOf(component.UpgradeBuffer))
	assert.EqualValues(t, 1, counter(w, "shop.purchases"))
	assert.EqualValues(t, 1, counter(w, "shop.rejected"))
}

func TestShop_WeaponPurchaseNeedsMatchingZone(t *testing.T) {
	w := newTestWorld(t)
	econ := w.Resources.Economy
	econ.Restore(economy.State{Currency: 600})

	step(w, input.Frame{PurchaseSlot: 1}, 1)
	assert.Equal(t, 600, econ.Wallet.Balance(), "not near any shop")

	movePlayer(w, parameter.WeaponShopX)
	step(w, input.Frame{}, 1)
	step(w, input.Frame{PurchaseSlot: 1}, 1)
	assert.Equal(t, 100, econ.Wallet.Balance())
	assert.True(t, econ.Ledger.OwnsWeapon(component.WeaponRapidFire))
	assert.Equal(t, component.WeaponNormal, econ.Ledger.CurrentWeapon(), "buying does not equip")

	step(w, input.Frame{PurchaseSlot: 1}, 1)
	assert.Equal(t, 100, econ.Wallet.Balance(), "owned weapons cannot be bought twice")
}

func TestMovement_SpeedBoostScalesVelocity(t *testing.T) {
	w := newTestWorld(t)
	w.Resources.Economy.Ledger.Grant(economy.UpgradeItem(component.UpgradeSpeedBoost))

	step(w, input.Frame{Horizontal: 1}, 10)
	pos, ok := w.PlayerPosition()
	require.True(t, ok)
	assert.InDelta(t, 10*parameter.PlayerBaseSpeed*1.3*tick.Seconds(), pos.X, 1e-6)
	assert.Equal(t, parameter.PlayerSpawnY, pos.Y, "vertical movement is suppressed")
}

func TestMovement_IntentIsClamped(t *testing.T) {
	w := newTestWorld(t)

	step(w, input.Frame{Horizontal: -5}, 1)
	pos, _ := w.PlayerPosition()
	assert.InDelta(t, -parameter.PlayerBaseSpeed*tick.Seconds(), pos.X, 1e-6)
}

func TestMovement_ClampedToViewport(t *testing.T) {
	w := newTestWorld(t)
	w.Resources.Viewport.SetAspect(1)

	step(w, input.Frame{Horizontal: 1}, 200)
	pos, _ := w.PlayerPosition()
	assert.Equal(t, 300-parameter.PlayerBoundsMargin, pos.X)
}

func TestMovement_MagnetBiasesNearbyCoins(t *testing.T) {
	w := newTestWorld(t)
	coin := spawnCoin(w, vmath.V2(40, -180), 10)

	step(w, input.Frame{}, 1)
	k, _ := w.Components.Kinetic.GetComponent(coin)
	assert.Zero(t, k.Vel.X, "no magnet, no pull")

	w.Resources.Economy.Ledger.Grant(economy.UpgradeItem(component.UpgradeCoinMagnet))
	step(w, input.Frame{}, 1)
	k, _ = w.Components.Kinetic.GetComponent(coin)
	assert.Less(t, k.Vel.X, 0.0, "pulled toward the player")

	far := spawnCoin(w, vmath.V2(300, -100), 10)
	step(w, input.Frame{}, 1)
	kf, _ := w.Components.Kinetic.GetComponent(far)
	assert.Zero(t, kf.Vel.X, "outside magnet range")
}

func TestMissingPlayerIsNoOp(t *testing.T) {
	w := newTestWorld(t)
	w.DestroyEntity(w.Resources.Player.Entity)

	fire := aimAtTarget()
	fire.FirePressed = true
	fire.Horizontal = 1
	assert.NotPanics(t, func() { step(w, fire, 3) })
	assert.Zero(t, w.Components.Projectile.CountEntities())
}

func TestSpawnLevel_Layout(t *testing.T) {
	w := newTestWorld(t)

	assert.Equal(t, 1, w.Components.Player.CountEntities())
	assert.Equal(t, 1, w.Components.Target.CountEntities())
	assert.Equal(t, 2, w.Components.Shop.CountEntities())

	kinds := map[component.ShopKind]float64{}
	for _, e := range w.Components.Shop.GetAllEntities() {
		z, _ := w.Components.Shop.GetComponent(e)
		p, _ := w.Components.Position.GetComponent(e)
		kinds[z.Kind] = p.X
	}
	assert.Equal(t, parameter.WeaponShopX, kinds[component.ShopWeapon])
	assert.Equal(t, parameter.UpgradeShopX, kinds[component.ShopUpgrade])
}

func TestBuildHUD(t *testing.T) {
	w := newTestWorld(t)
	w.Resources.Economy.Restore(economy.State{
		Currency:      1234,
		OwnedWeapons:  []string{"Normal", "Sword"},
		Upgrades:      map[string]int{"SpeedBoost": 2},
		CurrentWeapon: "Sword",
	})
	step(w, input.Frame{}, 1)

	hud := BuildHUD(w)
	assert.Equal(t, 1234, hud.Currency)
	assert.Equal(t, "Sword", hud.Weapon)
	assert.Equal(t, []string{"Normal", "Sword"}, hud.Weapons)
	assert.Equal(t, 2, hud.Upgrades["SpeedBoost"])
	assert.Equal(t, 1, hud.Upgrades["BufferUpgrade"])
	assert.Equal(t, 30.0, hud.BufferMax)
	assert.Equal(t, "None", hud.Proximity)
	assert.EqualValues(t, 1, hud.Frame)
}
