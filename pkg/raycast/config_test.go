package raycast

import (
	"errors"
	"testing"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":             "320",
		"h":             "200",
		"rays":          "80",
		"strategy":      "march",
		"march_divisor": "8",
		"max_distance":  "20.5",
		"turn_step":     "3",
		"speed":         "0.2",
	})
	if c.ScreenWidth != 320 || c.ScreenHeight != 200 || c.Rays != 80 {
		t.Fatalf("screen = %dx%d rays %d", c.ScreenWidth, c.ScreenHeight, c.Rays)
	}
	if c.Strategy != StrategyMarch || c.MarchDivisor != 8 {
		t.Fatalf("strategy = %s/%d", c.Strategy, c.MarchDivisor)
	}
	if c.MaxDistance != 20.5 || c.TurnStep != 3 || c.Speed != 0.2 {
		t.Fatalf("unexpected tuning %+v", c)
	}
}

func TestFromMapKeepsDefaultsOnBadValues(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"w":        "-4",
		"rays":     "many",
		"strategy": "bsp",
		"speed":    "0",
	})
	if c.ScreenWidth != def.ScreenWidth || c.Rays != def.Rays || c.Strategy != def.Strategy || c.Speed != def.Speed {
		t.Fatalf("bad values should keep defaults, got %+v", c)
	}
	if got := FromMap(nil); got != def {
		t.Fatalf("nil map should give defaults, got %+v", got)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bad := []func(*Config){
		func(c *Config) { c.Rays = 0 },
		func(c *Config) { c.ScreenWidth = 0 },
		func(c *Config) { c.Rays = c.ScreenWidth + 1 },
		func(c *Config) { c.MaxDistance = 0 },
	}
	for i, mutate := range bad {
		c := DefaultConfig()
		mutate(&c)
		if err := c.Validate(); !errors.Is(err, ErrBadConfig) {
			t.Fatalf("case %d: expected ErrBadConfig, got %v", i, err)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	cases := map[string]Strategy{"dda": StrategyDDA, " DDA ": StrategyDDA, "march": StrategyMarch, "fast": StrategyMarch}
	for in, want := range cases {
		got, err := ParseStrategy(in)
		if err != nil || got != want {
			t.Fatalf("ParseStrategy(%q) = %s, %v", in, got, err)
		}
	}
	if _, err := ParseStrategy("bsp"); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
	if StrategyDDA.Next() != StrategyMarch || StrategyMarch.Next() != StrategyDDA {
		t.Fatal("Next should cycle between the two strategies")
	}
}
