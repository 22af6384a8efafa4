package component

import "time"

// ProjectileComponent is a live discrete shot; removed on hit or when Remaining runs out
type ProjectileComponent struct {
	Weapon    WeaponKind
	Remaining time.Duration
}
