package system

import "github.com/DanBellman/Wandern-to-kill-a-Box/registry"

// Systems self-register; registry.Build instantiates them per world
func init() {
	registry.RegisterSystem("input", NewInputSystem)
	registry.RegisterSystem("shop", NewShopSystem)
	registry.RegisterSystem("weapon", NewWeaponSystem)
	registry.RegisterSystem("movement", NewMovementSystem)
	registry.RegisterSystem("projectile", NewProjectileSystem)
	registry.RegisterSystem("coin", NewCoinSystem)
	registry.RegisterSystem("collision", NewCollisionSystem)
	registry.RegisterSystem("combat", NewCombatSystem)
	registry.RegisterSystem("economy", NewEconomySystem)
	registry.RegisterSystem("timer", NewTimerSystem)
	registry.RegisterSystem("broadcast", NewBroadcastSystem)
	registry.RegisterSystem("audio", NewAudioSystem)
}
