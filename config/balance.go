package config

import (
	"errors"
	"fmt"

	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
)

// Balance holds the economy tunables of a session
type Balance struct {
	Preset           string `yaml:"preset" json:"preset"`
	StartingCurrency int    `yaml:"starting_currency" json:"starting_currency"`

	Buffer     BufferBalance     `yaml:"buffer" json:"buffer"`
	SpeedBoost SpeedBoostBalance `yaml:"speed_boost" json:"speed_boost"`
	CoinMagnet MagnetBalance     `yaml:"coin_magnet" json:"coin_magnet"`

	// WeaponPrices is keyed by weapon name; weapons absent here are not sold
	WeaponPrices map[string]int `yaml:"weapon_prices" json:"weapon_prices"`
}

// BufferBalance tunes the collection buffer and its upgrade
type BufferBalance struct {
	// Capacity = BaseCapacity + level * PerLevel
	BaseCapacity float64 `yaml:"base_capacity" json:"base_capacity"`
	PerLevel     float64 `yaml:"per_level" json:"per_level"`
	DrainRate    float64 `yaml:"drain_rate" json:"drain_rate"` // units/s

	StartLevel int `yaml:"start_level" json:"start_level"`
	MaxLevel   int `yaml:"max_level" json:"max_level"`

	// Upgrade cost = BaseCost + level * CostStep, level taken before the purchase
	BaseCost int `yaml:"base_cost" json:"base_cost"`
	CostStep int `yaml:"cost_step" json:"cost_step"`
}

// SpeedBoostBalance tunes the movement speed upgrade
type SpeedBoostBalance struct {
	PerLevel float64 `yaml:"per_level" json:"per_level"` // Speed multiplier gain per level
	MaxLevel int     `yaml:"max_level" json:"max_level"`
	BaseCost int     `yaml:"base_cost" json:"base_cost"`
	CostStep int     `yaml:"cost_step" json:"cost_step"`
}

// MagnetBalance tunes the coin magnet upgrade
type MagnetBalance struct {
	Cost int `yaml:"cost" json:"cost"`
}

// Capacity returns buffer capacity at the given upgrade level
func (b BufferBalance) Capacity(level int) float64 {
	return b.BaseCapacity + float64(level)*b.PerLevel
}

// WeaponPrice returns the shop price of a weapon and whether it is sold
func (b Balance) WeaponPrice(kind component.WeaponKind) (int, bool) {
	price, ok := b.WeaponPrices[kind.String()]
	return price, ok
}

// MaxLevel returns the level cap for an upgrade kind
func (b Balance) MaxLevel(kind component.UpgradeKind) int {
	switch kind {
	case component.UpgradeSpeedBoost:
		return b.SpeedBoost.MaxLevel
	case component.UpgradeBuffer:
		return b.Buffer.MaxLevel
	default:
		return 1
	}
}

var (
	ErrInvalidCapacity = errors.New("buffer capacity must be positive")
	ErrInvalidLevel    = errors.New("level bounds are invalid")
	ErrNegativeCost    = errors.New("costs must not be negative")
	ErrInvalidRate     = errors.New("drain rate must not be negative")
)

// Validate rejects balance values that would break economy invariants
func (b Balance) Validate() error {
	if b.Buffer.BaseCapacity <= 0 || b.Buffer.PerLevel < 0 {
		return ErrInvalidCapacity
	}
	if b.Buffer.DrainRate < 0 {
		return ErrInvalidRate
	}
	if b.Buffer.MaxLevel <= 0 || b.Buffer.StartLevel < 0 || b.Buffer.StartLevel > b.Buffer.MaxLevel {
		return fmt.Errorf("buffer: %w", ErrInvalidLevel)
	}
	if b.SpeedBoost.MaxLevel <= 0 {
		return fmt.Errorf("speed boost: %w", ErrInvalidLevel)
	}
	if b.StartingCurrency < 0 || b.Buffer.BaseCost < 0 || b.Buffer.CostStep < 0 ||
		b.SpeedBoost.BaseCost < 0 || b.SpeedBoost.CostStep < 0 || b.CoinMagnet.Cost < 0 {
		return ErrNegativeCost
	}
	for name, price := range b.WeaponPrices {
		if _, ok := component.ParseWeaponKind(name); !ok {
			return fmt.Errorf("weapon_prices: unknown weapon %q", name)
		}
		if price < 0 {
			return fmt.Errorf("weapon_prices %s: %w", name, ErrNegativeCost)
		}
	}
	return nil
}
