// Package arena registers a seeded random map with a solid border.
package arena

import (
	"strconv"

	"gridcast/internal/core"
	gridcore "gridcast/pkg/core"
	"gridcast/pkg/raycast"
)

// Config controls the generated arena.
type Config struct {
	Width     int
	Height    int
	Density   float64
	Materials int
	Seed      int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 24, Height: 24, Density: 0.15, Materials: 4, Seed: 1337}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["arena_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 3 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["arena_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 3 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["materials"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed < 256 {
			c.Materials = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// New generates the arena. The spawn cell (1,1) is always open.
func New(c Config) (core.Layout, error) {
	m, err := gridcore.BorderedArena(gridcore.NewRNG(c.Seed), c.Width, c.Height, c.Density, uint8(c.Materials), 1, 1)
	if err != nil {
		return core.Layout{}, err
	}
	return core.Layout{Name: "arena", Map: m, Spawn: raycast.NewPlayer(1.5, 1.5, 45, 60)}, nil
}

func init() {
	core.Register("arena", func(cfg map[string]string) (core.Layout, error) {
		return New(FromMap(cfg))
	})
}
