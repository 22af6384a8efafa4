package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/config"
)

func newEconomy(currency int) *Economy {
	e := New(config.Default())
	e.Wallet.currency = currency
	return e
}

func TestPurchaseDebitsExactCost(t *testing.T) {
	e := newEconomy(800)
	e.Shop.Enter(component.ShopWeapon)

	r, err := e.PurchaseSlot(1)
	require.NoError(t, err)

	assert.Equal(t, component.WeaponRapidFire, r.Item.Weapon)
	assert.Equal(t, 500, r.Cost)
	assert.Equal(t, 300, e.Wallet.Balance())
	assert.True(t, e.Ledger.OwnsWeapon(component.WeaponRapidFire))
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	e := newEconomy(499)
	e.Shop.Enter(component.ShopWeapon)

	_, err := e.PurchaseSlot(1)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 499, e.Wallet.Balance())
	assert.False(t, e.Ledger.OwnsWeapon(component.WeaponRapidFire))
}

func TestPurchaseAlreadyOwned(t *testing.T) {
	e := newEconomy(2000)
	e.Shop.Enter(component.ShopWeapon)

	_, err := e.PurchaseSlot(1)
	require.NoError(t, err)

	_, err = e.PurchaseSlot(1)
	assert.ErrorIs(t, err, ErrAlreadyOwnedOrMaxed)
	assert.Equal(t, 1500, e.Wallet.Balance())
}

func TestPurchaseRequiresMatchingProximity(t *testing.T) {
	e := newEconomy(10000)

	_, err := e.PurchaseSlot(1)
	assert.ErrorIs(t, err, ErrNotInProximity)

	e.Shop.Enter(component.ShopUpgrade)
	_, err = e.Purchase(WeaponItem(component.WeaponSniper))
	assert.ErrorIs(t, err, ErrNotInProximity)
	assert.Equal(t, 10000, e.Wallet.Balance())
}

func TestPurchaseUnknownSlot(t *testing.T) {
	e := newEconomy(10000)
	e.Shop.Enter(component.ShopUpgrade)

	_, err := e.PurchaseSlot(4)
	assert.ErrorIs(t, err, ErrUnknownItem)

	_, err = e.PurchaseSlot(0)
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestBufferUpgradeCostEscalates(t *testing.T) {
	e := newEconomy(100000)
	e.Shop.Enter(component.ShopUpgrade)

	prev := 0
	for level := 1; level < 10; level++ {
		before := e.Wallet.Balance()
		r, err := e.PurchaseSlot(3)
		require.NoError(t, err)

		assert.Equal(t, 400+level*200, r.Cost, "cost uses pre-purchase level %d", level)
		assert.Equal(t, before-r.Cost, e.Wallet.Balance())
		assert.Greater(t, r.Cost, prev)
		assert.Equal(t, level+1, r.Level)
		assert.Equal(t, 20+float64(level+1)*10, e.Buffer.Capacity())
		prev = r.Cost
	}

	_, err := e.PurchaseSlot(3)
	assert.ErrorIs(t, err, ErrAlreadyOwnedOrMaxed)
}

func TestBufferUpgradeScenario(t *testing.T) {
	e := newEconomy(1000)
	e.Shop.Enter(component.ShopUpgrade)

	r, err := e.Purchase(UpgradeItem(component.UpgradeBuffer))
	require.NoError(t, err)
	assert.Equal(t, 600, r.Cost)
	assert.Equal(t, 400, e.Wallet.Balance())
	assert.Equal(t, 2, e.Ledger.LevelOf(component.UpgradeBuffer))

	_, err = e.Purchase(UpgradeItem(component.UpgradeBuffer))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 400, e.Wallet.Balance())
	assert.Equal(t, 2, e.Ledger.LevelOf(component.UpgradeBuffer))
}

func TestSpeedBoostPurchases(t *testing.T) {
	e := newEconomy(1000)
	e.Shop.Enter(component.ShopUpgrade)

	for i := 0; i < 3; i++ {
		_, err := e.PurchaseSlot(1)
		require.NoError(t, err)
	}
	assert.Equal(t, 100, e.Wallet.Balance())
	assert.InDelta(t, 1.9, e.SpeedMultiplier(), 1e-9)

	_, err := e.PurchaseSlot(1)
	assert.ErrorIs(t, err, ErrAlreadyOwnedOrMaxed, "maxed check precedes funds")
}

func TestSequentialPurchasesCannotDoubleSpend(t *testing.T) {
	e := newEconomy(1000)
	e.Shop.Enter(component.ShopWeapon)

	_, err1 := e.Purchase(WeaponItem(component.WeaponLaserBeam))
	_, err2 := e.Purchase(WeaponItem(component.WeaponSpreadShot))

	require.NoError(t, err1)
	assert.ErrorIs(t, err2, ErrInsufficientFunds)
	assert.Equal(t, 0, e.Wallet.Balance())
}

func TestOffers(t *testing.T) {
	e := newEconomy(500)
	e.Ledger.Grant(UpgradeItem(component.UpgradeCoinMagnet))

	offers := e.Offers(component.ShopUpgrade)
	require.Len(t, offers, 3)

	assert.Equal(t, OfferAffordable, offers[0].State)
	assert.Equal(t, 300, offers[0].Cost)
	assert.Equal(t, OfferMaxed, offers[1].State)
	assert.Equal(t, OfferTooExpensive, offers[2].State)
	assert.Equal(t, 600, offers[2].Cost)
	assert.Equal(t, 1, offers[2].Level)
	assert.Equal(t, 10, offers[2].Max)

	weapons := e.Offers(component.ShopWeapon)
	assert.Len(t, weapons, 8)
}

func TestShopSessionTransitions(t *testing.T) {
	s := &ShopSession{}

	assert.False(t, s.ToggleUI(), "toggle needs proximity")
	assert.False(t, s.UIOpen)

	s.Enter(component.ShopWeapon)
	assert.Equal(t, ProximityWeapon, s.Proximity)
	assert.True(t, s.ToggleUI())
	assert.True(t, s.UIOpen)

	s.Enter(component.ShopUpgrade)
	assert.Equal(t, ProximityUpgrade, s.Proximity)
	assert.True(t, s.UIOpen, "entering another zone keeps the panel open")

	s.Exit(component.ShopWeapon)
	assert.Equal(t, ProximityUpgrade, s.Proximity, "stale exit ignored")
	assert.True(t, s.UIOpen)

	s.Exit(component.ShopUpgrade)
	assert.Equal(t, ProximityNone, s.Proximity)
	assert.False(t, s.UIOpen, "leaving force-closes the panel")
}

func TestSnapshotRestore(t *testing.T) {
	e := newEconomy(5000)
	e.Shop.Enter(component.ShopWeapon)
	_, err := e.PurchaseSlot(4)
	require.NoError(t, err)
	e.Ledger.CycleWeapon()
	e.Ledger.Grant(UpgradeItem(component.UpgradeBuffer))

	snap := e.Snapshot()
	assert.Equal(t, 3000, snap.Currency)
	assert.Equal(t, []string{"Normal", "Sniper"}, snap.OwnedWeapons)
	assert.Equal(t, "Sniper", snap.CurrentWeapon)
	assert.Equal(t, 2, snap.Upgrades["BufferUpgrade"])

	other := New(config.Default())
	other.Restore(snap)
	assert.Equal(t, 3000, other.Wallet.Balance())
	assert.Equal(t, component.WeaponSniper, other.Ledger.CurrentWeapon())
	assert.Equal(t, 40.0, other.Buffer.Capacity())
	assert.Equal(t, ProximityNone, other.Shop.Proximity)
}

func TestRestoreSanitizes(t *testing.T) {
	e := New(config.Default())
	e.Restore(State{
		Currency:      -50,
		OwnedWeapons:  []string{"Railgun", "Hammer"},
		Upgrades:      map[string]int{"SpeedBoost": 99, "BufferUpgrade": -3, "Jetpack": 1},
		CurrentWeapon: "Bazooka",
	})

	assert.Equal(t, 0, e.Wallet.Balance())
	assert.Equal(t, []component.WeaponKind{component.WeaponNormal, component.WeaponHammer}, e.Ledger.OwnedWeapons())
	assert.Equal(t, 3, e.Ledger.LevelOf(component.UpgradeSpeedBoost))
	assert.Equal(t, 0, e.Ledger.LevelOf(component.UpgradeBuffer))
	assert.Equal(t, component.WeaponNormal, e.Ledger.CurrentWeapon())
}
