package economy

import "github.com/DanBellman/Wandern-to-kill-a-Box/component"

// ItemClass discriminates shop items
type ItemClass uint8

const (
	ItemWeapon ItemClass = iota
	ItemUpgrade
)

// Item is a purchasable weapon or upgrade
// Tagged union: only the field matching Class is valid
type Item struct {
	Class   ItemClass
	Weapon  component.WeaponKind
	Upgrade component.UpgradeKind
}

func WeaponItem(k component.WeaponKind) Item {
	return Item{Class: ItemWeapon, Weapon: k}
}

func UpgradeItem(k component.UpgradeKind) Item {
	return Item{Class: ItemUpgrade, Upgrade: k}
}

func (it Item) String() string {
	if it.Class == ItemWeapon {
		return it.Weapon.String()
	}
	return it.Upgrade.String()
}

// Shop returns the shop that sells this item
func (it Item) Shop() component.ShopKind {
	if it.Class == ItemWeapon {
		return component.ShopWeapon
	}
	return component.ShopUpgrade
}
