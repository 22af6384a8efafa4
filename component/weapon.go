package component

import (
	"time"
)

// WeaponKind identifies a weapon; declaration order is the canonical cycle order
type WeaponKind uint8

const (
	WeaponNormal WeaponKind = iota
	WeaponRapidFire
	WeaponUzi
	WeaponSpreadShot
	WeaponLaserBeam
	WeaponSniper
	WeaponBazooka
	WeaponHammer
	WeaponSword
	WeaponCount // Sentinel for array sizing
)

// FireMode discriminates how a fire intent turns into world objects
type FireMode uint8

const (
	FireSingle FireMode = iota // One projectile per press
	FireSpread                 // Fan of projectiles per press
	FireBeam                   // Continuous beam while held
)

// Reward is the total value distributed over a coin burst
type Reward struct {
	Value     int
	CoinCount int
}

// PerCoin returns the value of one coin, remainder dropped
func (r Reward) PerCoin() int {
	if r.CoinCount <= 0 {
		return 0
	}
	return r.Value / r.CoinCount
}

// WeaponProfile holds the fixed base attributes of a weapon kind
type WeaponProfile struct {
	Name  string
	Mode  FireMode
	Speed float64 // Projectile speed, units/s
	Life  time.Duration
	HalfW float64 // Projectile collider half extents
	HalfH float64
	Glyph rune
}

// WeaponProfiles maps kind to base attributes
var WeaponProfiles = [WeaponCount]WeaponProfile{
	WeaponNormal:     {Name: "Normal", Mode: FireSingle, Speed: 800, Life: 3 * time.Second, HalfW: 4, HalfH: 4, Glyph: '•'},
	WeaponRapidFire:  {Name: "RapidFire", Mode: FireSingle, Speed: 800, Life: 3 * time.Second, HalfW: 4, HalfH: 4, Glyph: '·'},
	WeaponUzi:        {Name: "Uzi", Mode: FireSingle, Speed: 800, Life: 3 * time.Second, HalfW: 4, HalfH: 4, Glyph: '∙'},
	WeaponSpreadShot: {Name: "SpreadShot", Mode: FireSpread, Speed: 800, Life: 3 * time.Second, HalfW: 4, HalfH: 4, Glyph: '*'},
	WeaponLaserBeam:  {Name: "LaserBeam", Mode: FireBeam, Speed: 1200, Life: 5 * time.Second, HalfW: 1.5, HalfH: 10, Glyph: '|'},
	WeaponSniper:     {Name: "Sniper", Mode: FireSingle, Speed: 2000, Life: 6 * time.Second, HalfW: 1, HalfH: 6, Glyph: '-'},
	WeaponBazooka:    {Name: "Bazooka", Mode: FireSingle, Speed: 800, Life: 3 * time.Second, HalfW: 4, HalfH: 4, Glyph: '@'},
	WeaponHammer:     {Name: "Hammer", Mode: FireSingle, Speed: 800, Life: 3 * time.Second, HalfW: 4, HalfH: 4, Glyph: 'T'},
	WeaponSword:      {Name: "Sword", Mode: FireSingle, Speed: 800, Life: 3 * time.Second, HalfW: 4, HalfH: 4, Glyph: '/'},
}

// HitRewards is the per discrete hit reward table
var HitRewards = [WeaponCount]Reward{
	WeaponNormal:     {Value: 100, CoinCount: 4},
	WeaponRapidFire:  {Value: 75, CoinCount: 3},
	WeaponUzi:        {Value: 50, CoinCount: 2},
	WeaponSpreadShot: {Value: 50, CoinCount: 2},
	WeaponLaserBeam:  {Value: 150, CoinCount: 5},
	WeaponSniper:     {Value: 200, CoinCount: 20},
	WeaponBazooka:    {Value: 400, CoinCount: 40},
	WeaponHammer:     {Value: 300, CoinCount: 7},
	WeaponSword:      {Value: 250, CoinCount: 6},
}

// TickRewards is the per continuous damage tick reward table, zero for discrete-only kinds
var TickRewards = [WeaponCount]Reward{
	WeaponLaserBeam: {Value: 120, CoinCount: 5},
}

func (k WeaponKind) String() string {
	if k >= WeaponCount {
		return "Unknown"
	}
	return WeaponProfiles[k].Name
}

// Valid reports whether k names a weapon
func (k WeaponKind) Valid() bool {
	return k < WeaponCount
}

// ParseWeaponKind resolves a weapon by its name
func ParseWeaponKind(name string) (WeaponKind, bool) {
	for k := WeaponKind(0); k < WeaponCount; k++ {
		if WeaponProfiles[k].Name == name {
			return k, true
		}
	}
	return WeaponNormal, false
}
