// Package reference registers the 10x10 map the renderer was first built
// against: a bordered room with two short pillars.
package reference

import (
	"gridcast/internal/core"
	gridcore "gridcast/pkg/core"
	"gridcast/pkg/raycast"
)

// Rows is the reference layout, row 0 at the top.
var Rows = []string{
	"1111111111",
	"1000000001",
	"1000000001",
	"1001001001",
	"1001001001",
	"1001001001",
	"1001001001",
	"1000000001",
	"1000000001",
	"1111111111",
}

// New returns the reference layout with the default start pose.
func New() (core.Layout, error) {
	m, err := gridcore.ParseLayout(Rows)
	if err != nil {
		return core.Layout{}, err
	}
	return core.Layout{Name: "reference", Map: m, Spawn: raycast.DefaultPlayer()}, nil
}

func init() {
	core.Register("reference", func(map[string]string) (core.Layout, error) {
		return New()
	})
}
