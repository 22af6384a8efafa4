package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityInput      = 10
	PriorityShop       = 20 // After input, purchases settle before firing
	PriorityWeapon     = 30
	PriorityMovement   = 40
	PriorityProjectile = 50
	PriorityCoin       = 60
	PriorityCollision  = 70 // After all motion, emits contact episodes
	PriorityCombat     = 80 // Consumes contact episodes from the same tick
	PriorityEconomy    = 90 // Buffer drain after absorption
	PriorityTimer      = 100
	PriorityBroadcast  = 110 // After game logic, publishes HUD state
	PriorityAudio      = 120 // Event handler only
)
