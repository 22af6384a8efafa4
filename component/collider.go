package component

// ColliderLayer groups colliders for pair filtering
type ColliderLayer uint8

const (
	LayerPlayer ColliderLayer = iota
	LayerTarget
	LayerProjectile
	LayerCoin
	LayerGround
	LayerShop
	LayerCount
)

func (l ColliderLayer) String() string {
	switch l {
	case LayerPlayer:
		return "player"
	case LayerTarget:
		return "target"
	case LayerProjectile:
		return "projectile"
	case LayerCoin:
		return "coin"
	case LayerGround:
		return "ground"
	case LayerShop:
		return "shop"
	default:
		return "unknown"
	}
}

// ColliderComponent is an axis-aligned box centred on the entity position
type ColliderComponent struct {
	HalfW, HalfH float64
	Layer        ColliderLayer
}
