package physics

import (
	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/vmath"
)

// Integrate performs semi-implicit Euler: v = v + g*dt; p = p + v*dt
func Integrate(pos *vmath.Vec2, k *component.KineticComponent, dt float64) {
	if k.Gravity {
		k.Vel.Y += parameter.Gravity * dt
	}
	pos.X += k.Vel.X * dt
	pos.Y += k.Vel.Y * dt
}

// ApplyImpulse adds a velocity delta
func ApplyImpulse(k *component.KineticComponent, dv vmath.Vec2) {
	k.Vel = vmath.V2Add(k.Vel, dv)
}
