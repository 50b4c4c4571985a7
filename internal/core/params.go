package core

import (
	"fmt"
	"strconv"
	"time"

	"gridcast/pkg/raycast"
)

// Parameter is a single labeled value shown on the HUD.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures what the HUD shows for one frame.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the value stored under key, if present.
func (s ParameterSnapshot) Lookup(key string) (string, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p.Value, true
			}
		}
	}
	return "", false
}

// Describe builds the HUD snapshot for a rendered frame.
func Describe(rc *raycast.Raycaster, p raycast.Player, stats raycast.FrameStats, frame time.Duration) ParameterSnapshot {
	cfg := rc.Config()
	return ParameterSnapshot{Groups: []ParameterGroup{
		{
			Name: "Player",
			Params: []Parameter{
				{Key: "pos", Label: "Position", Value: fmt.Sprintf("%.2f, %.2f", p.X, p.Y)},
				{Key: "heading", Label: "Heading", Value: strconv.Itoa(p.Heading())},
				{Key: "fov", Label: "FOV", Value: strconv.Itoa(p.FOV)},
			},
		},
		{
			Name: "Frame",
			Params: []Parameter{
				{Key: "strategy", Label: "Strategy", Value: rc.Strategy().String()},
				{Key: "rays", Label: "Rays", Value: strconv.Itoa(stats.Rays)},
				{Key: "escaped", Label: "Escaped", Value: strconv.Itoa(stats.Escaped)},
				{Key: "sweep", Label: "Sweep", Value: frame.Round(time.Microsecond).String()},
				{Key: "screen", Label: "Screen", Value: fmt.Sprintf("%dx%d", cfg.ScreenWidth, cfg.ScreenHeight)},
			},
		},
	}}
}
