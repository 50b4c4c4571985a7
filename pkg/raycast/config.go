package raycast

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrBadConfig reports a renderer configuration that cannot produce a frame.
var ErrBadConfig = errors.New("invalid raycaster config")

// Config controls screen geometry, ray count and tracing.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	Rays         int

	Strategy     Strategy
	MarchDivisor int
	// MaxDistance places the stand-in hit for rays that escape the map.
	MaxDistance float64

	TurnStep int
	Speed    float64

	Palette Palette
}

// DefaultConfig returns the 240x240 panel setup with 60 rays.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  240,
		ScreenHeight: 240,
		Rays:         60,
		Strategy:     StrategyDDA,
		MarchDivisor: DefaultMarchDivisor,
		MaxDistance:  64,
		TurnStep:     1,
		Speed:        0.05,
		Palette:      DefaultPalette(),
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ScreenWidth = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ScreenHeight = parsed
		}
	}
	if v, ok := cfg["rays"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rays = parsed
		}
	}
	if v, ok := cfg["strategy"]; ok {
		if parsed, err := ParseStrategy(v); err == nil {
			c.Strategy = parsed
		}
	}
	if v, ok := cfg["march_divisor"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MarchDivisor = parsed
		}
	}
	if v, ok := cfg["max_distance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.MaxDistance = parsed
		}
	}
	if v, ok := cfg["turn_step"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TurnStep = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Speed = parsed
		}
	}
	return c
}

// Validate checks the fields a sweep depends on.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen %dx%d", ErrBadConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.Rays <= 0 {
		return fmt.Errorf("%w: %d rays", ErrBadConfig, c.Rays)
	}
	if c.Rays > c.ScreenWidth {
		return fmt.Errorf("%w: %d rays wider than %d pixels", ErrBadConfig, c.Rays, c.ScreenWidth)
	}
	if c.MaxDistance <= 0 {
		return fmt.Errorf("%w: max distance %g", ErrBadConfig, c.MaxDistance)
	}
	return nil
}
