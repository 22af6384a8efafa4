package economy

import (
	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/config"
)

// Shelf order, slot N is index N-1
var (
	weaponShelf = []component.WeaponKind{
		component.WeaponRapidFire,
		component.WeaponSpreadShot,
		component.WeaponLaserBeam,
		component.WeaponSniper,
		component.WeaponHammer,
		component.WeaponSword,
		component.WeaponBazooka,
		component.WeaponUzi,
	}
	upgradeShelf = []component.UpgradeKind{
		component.UpgradeSpeedBoost,
		component.UpgradeCoinMagnet,
		component.UpgradeBuffer,
	}
)

// Catalog maps shop slots to items and prices them
type Catalog struct {
	balance config.Balance
}

func NewCatalog(b config.Balance) *Catalog {
	return &Catalog{balance: b}
}

// ItemAt resolves a 1-based slot in a shop
// Weapons without a configured price are not on sale
func (c *Catalog) ItemAt(shop component.ShopKind, slot int) (Item, bool) {
	switch shop {
	case component.ShopWeapon:
		if slot < 1 || slot > len(weaponShelf) {
			return Item{}, false
		}
		kind := weaponShelf[slot-1]
		if _, ok := c.balance.WeaponPrice(kind); !ok {
			return Item{}, false
		}
		return WeaponItem(kind), true
	case component.ShopUpgrade:
		if slot < 1 || slot > len(upgradeShelf) {
			return Item{}, false
		}
		return UpgradeItem(upgradeShelf[slot-1]), true
	}
	return Item{}, false
}

// Slots returns the number of slots on a shop's shelf
func (c *Catalog) Slots(shop component.ShopKind) int {
	if shop == component.ShopWeapon {
		return len(weaponShelf)
	}
	return len(upgradeShelf)
}

// Cost prices an item from the ledger's current, pre-purchase level
func (c *Catalog) Cost(it Item, l *Ledger) int {
	if it.Class == ItemWeapon {
		price, _ := c.balance.WeaponPrice(it.Weapon)
		return price
	}

	level := l.LevelOf(it.Upgrade)
	switch it.Upgrade {
	case component.UpgradeSpeedBoost:
		sb := c.balance.SpeedBoost
		return sb.BaseCost + level*sb.CostStep
	case component.UpgradeCoinMagnet:
		return c.balance.CoinMagnet.Cost
	case component.UpgradeBuffer:
		bb := c.balance.Buffer
		return bb.BaseCost + level*bb.CostStep
	}
	return 0
}
