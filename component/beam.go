package component

import "github.com/DanBellman/Wandern-to-kill-a-Box/vmath"

// BeamComponent is the single continuous beam owned by the player while fire is held
type BeamComponent struct {
	Weapon WeaponKind
	Dir    vmath.Vec2 // Unit aim direction
	Center vmath.Vec2 // Player position + Dir * length/2
	Length float64
}
