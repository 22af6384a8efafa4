package component

// ShopKind identifies one of the two fixed shops
type ShopKind uint8

const (
	ShopWeapon ShopKind = iota
	ShopUpgrade
)

func (k ShopKind) String() string {
	switch k {
	case ShopWeapon:
		return "Weapon Shop"
	case ShopUpgrade:
		return "Upgrade Shop"
	default:
		return "Shop"
	}
}

// ShopZoneComponent marks a sensor zone that drives shop proximity
type ShopZoneComponent struct {
	Kind ShopKind
}
