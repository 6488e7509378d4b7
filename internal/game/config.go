package game

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible random fleet placement.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// AutoPlace places both fleets at random instead of prompting for each vessel.
	AutoPlace bool
}

// ConfigFromEnv reads BATTLESHIP_SEED and BATTLESHIP_AUTOPLACE.
func ConfigFromEnv() (Config, error) {
	var cfg Config

	if v := os.Getenv("BATTLESHIP_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid BATTLESHIP_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv("BATTLESHIP_AUTOPLACE"); v != "" {
		auto, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid BATTLESHIP_AUTOPLACE %q: %w", v, err)
		}
		cfg.AutoPlace = auto
	}

	return cfg, nil
}

// newRand returns the random source for this configuration.
func (c Config) newRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
