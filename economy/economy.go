package economy

import (
	"fmt"

	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/config"
)

// Economy is the single owner of ledger, wallet, buffer and shop state for a session
// Single writer per tick; not safe for concurrent use
type Economy struct {
	Balance config.Balance
	Ledger  *Ledger
	Wallet  *Wallet
	Buffer  *Buffer
	Shop    *ShopSession
	Catalog *Catalog
}

// New creates the start-of-game economy
func New(b config.Balance) *Economy {
	ledger := NewLedger(b)
	return &Economy{
		Balance: b,
		Ledger:  ledger,
		Wallet:  &Wallet{currency: b.StartingCurrency},
		Buffer:  NewBuffer(b.Buffer, ledger.LevelOf(component.UpgradeBuffer)),
		Shop:    &ShopSession{},
		Catalog: NewCatalog(b),
	}
}

// Receipt describes a committed purchase
type Receipt struct {
	Item  Item
	Cost  int
	Level int // Upgrade level after the purchase, 1 for weapons
}

// PurchaseSlot buys the item in a slot of the shop the player is near
func (e *Economy) PurchaseSlot(slot int) (Receipt, error) {
	shop, ok := e.Shop.Proximity.Shop()
	if !ok {
		return Receipt{}, ErrNotInProximity
	}
	it, ok := e.Catalog.ItemAt(shop, slot)
	if !ok {
		return Receipt{}, fmt.Errorf("%s slot %d: %w", shop, slot, ErrUnknownItem)
	}
	return e.Purchase(it)
}

// Purchase validates and commits one purchase as a single step
// Cost is taken from the pre-purchase level; on error nothing changes
func (e *Economy) Purchase(it Item) (Receipt, error) {
	shop, ok := e.Shop.Proximity.Shop()
	if !ok || shop != it.Shop() {
		return Receipt{}, ErrNotInProximity
	}
	if it.Class == ItemWeapon {
		if _, sold := e.Balance.WeaponPrice(it.Weapon); !sold {
			return Receipt{}, ErrUnknownItem
		}
	}
	if e.Ledger.Maxed(it) {
		return Receipt{}, ErrAlreadyOwnedOrMaxed
	}

	cost := e.Catalog.Cost(it, e.Ledger)
	if !e.Wallet.trySpend(cost) {
		return Receipt{}, ErrInsufficientFunds
	}

	e.Ledger.Grant(it)

	r := Receipt{Item: it, Cost: cost, Level: 1}
	if it.Class == ItemUpgrade {
		r.Level = e.Ledger.LevelOf(it.Upgrade)
		if it.Upgrade == component.UpgradeBuffer {
			e.Buffer.SetLevel(r.Level)
		}
	}
	return r, nil
}

// OfferState classifies a shop slot for display
type OfferState uint8

const (
	OfferAffordable OfferState = iota
	OfferTooExpensive
	OfferMaxed
)

// Offer is one shop slot as shown to the player
type Offer struct {
	Slot  int
	Item  Item
	Cost  int
	Level int
	Max   int
	State OfferState
}

// Offers lists a shop's shelf priced against the current state
func (e *Economy) Offers(shop component.ShopKind) []Offer {
	offers := make([]Offer, 0, e.Catalog.Slots(shop))
	for slot := 1; slot <= e.Catalog.Slots(shop); slot++ {
		it, ok := e.Catalog.ItemAt(shop, slot)
		if !ok {
			continue
		}
		o := Offer{Slot: slot, Item: it, Cost: e.Catalog.Cost(it, e.Ledger), Max: 1}
		if it.Class == ItemUpgrade {
			o.Level = e.Ledger.LevelOf(it.Upgrade)
			o.Max = e.Ledger.MaxLevel(it.Upgrade)
		} else if e.Ledger.OwnsWeapon(it.Weapon) {
			o.Level = 1
		}
		switch {
		case e.Ledger.Maxed(it):
			o.State = OfferMaxed
		case e.Wallet.Balance() < o.Cost:
			o.State = OfferTooExpensive
		default:
			o.State = OfferAffordable
		}
		offers = append(offers, o)
	}
	return offers
}

// SpeedMultiplier returns the SpeedBoost movement multiplier
func (e *Economy) SpeedMultiplier() float64 {
	return 1 + float64(e.Ledger.LevelOf(component.UpgradeSpeedBoost))*e.Balance.SpeedBoost.PerLevel
}

// MagnetActive reports whether the coin magnet is owned
func (e *Economy) MagnetActive() bool {
	return e.Ledger.OwnsUpgrade(component.UpgradeCoinMagnet)
}
