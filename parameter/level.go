package parameter

// Level layout in world units, origin at screen centre, Y up
const (
	GroundY      = -250.0
	GroundWidth  = 2000.0
	GroundHeight = 20.0
	// GroundTop is the surface coins land on
	GroundTop = GroundY + GroundHeight/2

	TargetX    = 0.0
	TargetY    = -130.0
	TargetSize = 70.0

	ShopZoneSize = 50.0

	WeaponShopX  = -300.0
	WeaponShopY  = -250.0
	UpgradeShopX = -190.0
	UpgradeShopY = -250.0
)
