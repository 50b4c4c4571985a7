package app

import (
	"flag"
	"strings"
)

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map parses the collected pairs. Entries without '=' are skipped.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// Config represents the command-line parameters for the frontends.
type Config struct {
	Map      string
	Strategy string
	Scale    int
	TPS      int
	HUDWidth int
	Set      KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Map: "reference", Scale: 3, TPS: 60, HUDWidth: 200}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Map, "map", c.Map, "map layout to render")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "wall tracing strategy (dda or march)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "input ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.Var(&c.Set, "set", "renderer or map override in key=value form (repeatable)")
}

// Overrides merges -set pairs with the -strategy shortcut.
func (c *Config) Overrides() map[string]string {
	out := c.Set.Map()
	if c.Strategy != "" {
		out["strategy"] = c.Strategy
	}
	return out
}
