// Package pillars registers a hall lined with pillars of different materials.
package pillars

import (
	"strconv"

	"gridcast/internal/core"
	gridcore "gridcast/pkg/core"
	"gridcast/pkg/raycast"
)

var rows = []string{
	"1111111111111111",
	"1000000000000001",
	"1020030040050001",
	"1000000000000001",
	"1000000000000001",
	"1020030040050001",
	"1000000000000001",
	"1000000000000001",
	"1020030040050001",
	"1000000000000001",
	"1000000000000001",
	"1111111111111111",
}

// Config controls the start pose in the hall.
type Config struct {
	Angle int
	FOV   int
}

// DefaultConfig returns the default pose settings.
func DefaultConfig() Config {
	return Config{Angle: 0, FOV: 60}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["angle"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Angle = parsed
		}
	}
	if v, ok := cfg["fov"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed < 180 {
			c.FOV = parsed
		}
	}
	return c
}

// New returns the hall with the player at its west end.
func New(c Config) (core.Layout, error) {
	m, err := gridcore.ParseLayout(rows)
	if err != nil {
		return core.Layout{}, err
	}
	return core.Layout{Name: "pillars", Map: m, Spawn: raycast.NewPlayer(1.5, 6.5, c.Angle, c.FOV)}, nil
}

func init() {
	core.Register("pillars", func(cfg map[string]string) (core.Layout, error) {
		return New(FromMap(cfg))
	})
}
