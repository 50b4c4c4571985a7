package core

import (
	"fmt"
	"math"
	"sort"

	gridcore "gridcast/pkg/core"
	"gridcast/pkg/raycast"
)

// Layout is a map ready to render together with its start pose.
type Layout struct {
	Name  string
	Map   *gridcore.TileMap
	Spawn raycast.Player
}

// Factory constructs a Layout using an optional configuration map.
type Factory func(cfg map[string]string) (Layout, error)

var layouts = map[string]Factory{}

// Register adds a layout factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	layouts[name] = f
}

// Layouts exposes the registry of available layout factories.
func Layouts() map[string]Factory {
	return layouts
}

// Names returns the registered layout names in sorted order.
func Names() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named layout and checks that it can be rendered: the
// border must be solid, the spawn tile open and the spawn field of view
// inside (0, 180).
func Build(name string, cfg map[string]string) (Layout, error) {
	f, ok := layouts[name]
	if !ok {
		return Layout{}, fmt.Errorf("unknown layout %q", name)
	}
	l, err := f(cfg)
	if err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", name, err)
	}
	if l.Name == "" {
		l.Name = name
	}
	if err := l.Map.ValidateBorder(); err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", name, err)
	}
	if err := l.Spawn.Validate(); err != nil {
		return Layout{}, fmt.Errorf("layout %s spawn: %w", name, err)
	}
	sx, sy := int(math.Floor(l.Spawn.X)), int(math.Floor(l.Spawn.Y))
	tile, err := l.Map.Tile(sx, sy)
	if err != nil {
		return Layout{}, fmt.Errorf("layout %s spawn: %w", name, err)
	}
	if tile != 0 {
		return Layout{}, fmt.Errorf("layout %s: spawn (%d,%d) is inside wall %d", name, sx, sy, tile)
	}
	return l, nil
}
