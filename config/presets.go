package config

import "github.com/DanBellman/Wandern-to-kill-a-Box/parameter"

const (
	PresetClassic = "classic"
	PresetWide    = "wide"
)

// Default returns the classic balance: capacity 20 + level*10, buffer max level 10
func Default() Balance {
	return Balance{
		Preset:           PresetClassic,
		StartingCurrency: 0,
		Buffer: BufferBalance{
			BaseCapacity: 20,
			PerLevel:     10,
			DrainRate:    2,
			StartLevel:   1,
			MaxLevel:     10,
			BaseCost:     400,
			CostStep:     200,
		},
		SpeedBoost: SpeedBoostBalance{
			PerLevel: parameter.SpeedBoostPerLevel,
			MaxLevel: 3,
			BaseCost: 300,
			CostStep: 0,
		},
		CoinMagnet: MagnetBalance{
			Cost: 600,
		},
		WeaponPrices: map[string]int{
			"RapidFire":  500,
			"SpreadShot": 750,
			"LaserBeam":  1000,
			"Sniper":     2000,
			"Hammer":     3000,
			"Sword":      4000,
			"Bazooka":    5000,
			"Uzi":        350,
		},
	}
}

// Wide returns the wide-buffer balance: capacity 20 + level*50, buffer max level 5
func Wide() Balance {
	b := Default()
	b.Preset = PresetWide
	b.Buffer.PerLevel = 50
	b.Buffer.MaxLevel = 5
	return b
}

// Preset returns the named balance preset
func Preset(name string) (Balance, bool) {
	switch name {
	case PresetClassic, "":
		return Default(), true
	case PresetWide:
		return Wide(), true
	default:
		return Balance{}, false
	}
}
