package config

import (
	"os"
	"strconv"
)

const envPrefix = "BOXSLAYER_"

// FromEnv applies environment overrides on top of base
// BOXSLAYER_PRESET replaces base with the named preset before other overrides apply
func FromEnv(base Balance) Balance {
	cfg := base

	if name := os.Getenv(envPrefix + "PRESET"); name != "" {
		if preset, ok := Preset(name); ok {
			cfg = preset
		}
	}

	if val := getEnvFloat("BUFFER_BASE_CAPACITY"); val > 0 {
		cfg.Buffer.BaseCapacity = val
	}
	if val := getEnvFloat("BUFFER_PER_LEVEL"); val > 0 {
		cfg.Buffer.PerLevel = val
	}
	if val := getEnvFloat("BUFFER_DRAIN_RATE"); val > 0 {
		cfg.Buffer.DrainRate = val
	}
	if val := getEnvInt("BUFFER_MAX_LEVEL"); val > 0 {
		cfg.Buffer.MaxLevel = val
	}
	if val := getEnvInt("BUFFER_COST_STEP"); val > 0 {
		cfg.Buffer.CostStep = val
	}
	if val := getEnvInt("STARTING_CURRENCY"); val > 0 {
		cfg.StartingCurrency = val
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(envPrefix + key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(envPrefix + key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return num
}
