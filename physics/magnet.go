package physics

import (
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/vmath"
)

// MagnetProfile tunes an attraction field
type MagnetProfile struct {
	Range    float64
	Strength float64
	Falloff  float64
}

// CoinMagnet is the CoinMagnet upgrade field
var CoinMagnet = MagnetProfile{
	Range:    parameter.MagnetRange,
	Strength: parameter.MagnetStrength,
	Falloff:  parameter.MagnetFalloff,
}

// MagnetPull returns the velocity bias pulling body toward source for one tick
// Force falls off as strength / (distance*falloff + 1); zero outside range
func MagnetPull(body, source vmath.Vec2, p *MagnetProfile, dt float64) (vmath.Vec2, bool) {
	delta := vmath.V2Sub(source, body)
	dist := vmath.V2Mag(delta)
	if dist >= p.Range || dist == 0 {
		return vmath.Vec2{}, false
	}
	force := p.Strength / (dist*p.Falloff + 1)
	return vmath.V2Scale(vmath.V2Normalize(delta), force*dt), true
}
