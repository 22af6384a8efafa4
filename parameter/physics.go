package parameter

// World gravity applied to airborne coins, units/s²
const Gravity = -980.0

// Player
const (
	PlayerBaseSpeed = 400.0
	PlayerWidth     = 32.0
	PlayerHeight    = 48.0
	PlayerSpawnX    = 0.0
	PlayerSpawnY    = -240.0

	// PlayerBoundsMargin keeps the player sprite fully inside the viewport
	PlayerBoundsMargin = 16.0

	// SpeedBoostPerLevel is the multiplicative speed gain per SpeedBoost level
	SpeedBoostPerLevel = 0.3
)

// Viewport
const (
	// ViewportHeight is the fixed vertical extent in world units; width follows aspect ratio
	ViewportHeight = 600.0

	// DefaultAspect is used until the presentation layer reports a real size
	DefaultAspect = 16.0 / 9.0
)

// Coin magnet
const (
	MagnetRange    = 100.0
	MagnetStrength = 300.0

	// MagnetFalloff scales distance in the inverse falloff: force = strength / (d*falloff + 1)
	MagnetFalloff = 0.1
)

// Coin body
const (
	CoinSize = 8.0

	// CoinInitialLift is the upward launch speed of freshly spawned coins
	CoinInitialLift = 120.0
)

// Collision space
const (
	// CollisionOrigin offsets world coordinates into the positive collision space
	CollisionOrigin = 2048.0

	// CollisionSpaceSize is the collision space extent on both axes
	CollisionSpaceSize = 4096

	// CollisionCellSize is the broadphase cell edge
	CollisionCellSize = 32

	// CollisionDispatchChunk is the number of contact events queued before a flush;
	// a burst of contacts (after a reset) must not overflow the event queue
	CollisionDispatchChunk = 256
)
