package app

import (
	"fmt"

	"gridcast/internal/core"
	"gridcast/pkg/raycast"
	"gridcast/pkg/trig"

	"github.com/rs/zerolog"
)

// Session owns the player and renderer for one run. Frontends feed it input
// each tick and hand it a sink each frame.
type Session struct {
	layout core.Layout
	rc     *raycast.Raycaster
	player raycast.Player
	timer  *core.FrameTimer
	stats  raycast.FrameStats
	log    zerolog.Logger

	escaping bool
}

// NewSession builds the named layout and a raycaster for it.
func NewSession(mapName string, overrides map[string]string, log zerolog.Logger) (*Session, error) {
	layout, err := core.Build(mapName, overrides)
	if err != nil {
		return nil, err
	}
	cfg := raycast.FromMap(overrides)
	if v, ok := overrides["strategy"]; ok {
		if _, err := raycast.ParseStrategy(v); err != nil {
			return nil, err
		}
	}
	rc, err := raycast.New(layout.Map, trig.New(), cfg)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", layout.Name, err)
	}
	size := layout.Map.Size()
	log.Info().
		Str("map", layout.Name).
		Int("w", size.W).
		Int("h", size.H).
		Int("cells", size.Area()).
		Str("strategy", cfg.Strategy.String()).
		Int("rays", cfg.Rays).
		Msg("session ready")
	return &Session{
		layout: layout,
		rc:     rc,
		player: layout.Spawn,
		timer:  core.NewFrameTimer(),
		log:    log,
	}, nil
}

// Tick applies one tick of input to the player.
func (s *Session) Tick(c raycast.Controls) {
	cfg := s.rc.Config()
	if c.Apply(&s.player, s.layout.Map, s.rc.Tables(), cfg.TurnStep, cfg.Speed) {
		s.log.Debug().Float64("x", s.player.X).Float64("y", s.player.Y).Int("heading", s.player.Heading()).Msg("move blocked")
	}
}

// Render sweeps one frame into sink and records its timing.
func (s *Session) Render(sink raycast.Sink) raycast.FrameStats {
	s.timer.Start()
	s.stats = s.rc.Sweep(s.player, sink)
	s.timer.Stop()

	// Log only on transitions so a bad map does not flood the log every frame.
	switch {
	case s.stats.Escaped > 0 && !s.escaping:
		s.escaping = true
		s.log.Warn().
			Int("escaped", s.stats.Escaped).
			Float64("x", s.player.X).
			Float64("y", s.player.Y).
			Int("heading", s.player.Heading()).
			Msg("rays escaped the map")
	case s.stats.Escaped == 0 && s.escaping:
		s.escaping = false
	}
	return s.stats
}

// ToggleStrategy switches between grid stepping and marching.
func (s *Session) ToggleStrategy() error {
	next, err := s.rc.WithStrategy(s.rc.Strategy().Next())
	if err != nil {
		return err
	}
	s.rc = next
	s.log.Info().Str("strategy", next.Strategy().String()).Msg("strategy switched")
	return nil
}

// Reset returns the player to the layout's spawn pose.
func (s *Session) Reset() { s.player = s.layout.Spawn }

// Player returns the current pose.
func (s *Session) Player() raycast.Player { return s.player }

// Raycaster returns the active renderer.
func (s *Session) Raycaster() *raycast.Raycaster { return s.rc }

// Layout returns the loaded layout.
func (s *Session) Layout() core.Layout { return s.layout }

// Stats returns the stats of the last rendered frame.
func (s *Session) Stats() raycast.FrameStats { return s.stats }

// Timer exposes frame timing.
func (s *Session) Timer() *core.FrameTimer { return s.timer }

// Snapshot returns the HUD readout for the last frame.
func (s *Session) Snapshot() core.ParameterSnapshot {
	return core.Describe(s.rc, s.player, s.stats, s.timer.Average())
}
