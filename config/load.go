package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML balance file layered over its preset
// Fields absent from the file keep the preset value
func Load(path string) (Balance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Balance{}, fmt.Errorf("read balance: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML balance data layered over its preset
// A weapon_prices key replaces the preset list rather than merging into it
func Parse(data []byte) (Balance, error) {
	var head struct {
		Preset       string    `yaml:"preset"`
		WeaponPrices yaml.Node `yaml:"weapon_prices"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Balance{}, fmt.Errorf("parse balance: %w", err)
	}

	cfg, ok := Preset(head.Preset)
	if !ok {
		return Balance{}, fmt.Errorf("parse balance: unknown preset %q", head.Preset)
	}
	if head.WeaponPrices.Kind != 0 {
		cfg.WeaponPrices = nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Balance{}, fmt.Errorf("parse balance: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Balance{}, fmt.Errorf("invalid balance: %w", err)
	}
	return cfg, nil
}
