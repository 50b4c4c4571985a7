package app

import (
	"bytes"
	"math"
	"strings"
	"testing"

	_ "gridcast/internal/maps/reference"
	"gridcast/pkg/raycast"

	"github.com/rs/zerolog"
)

func newTestSession(t *testing.T, overrides map[string]string) (*Session, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	s, err := NewSession("reference", overrides, zerolog.New(&buf))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, &buf
}

func TestNewSessionLogsReady(t *testing.T) {
	_, buf := newTestSession(t, nil)
	out := buf.String()
	if !strings.Contains(out, `"message":"session ready"`) || !strings.Contains(out, `"map":"reference"`) || !strings.Contains(out, `"cells":100`) {
		t.Fatalf("missing ready log, got %s", out)
	}
}

func TestNewSessionRejectsBadInput(t *testing.T) {
	if _, err := NewSession("nowhere", nil, zerolog.Nop()); err == nil {
		t.Fatal("expected unknown layout error")
	}
	if _, err := NewSession("reference", map[string]string{"strategy": "bsp"}, zerolog.Nop()); err == nil {
		t.Fatal("expected unknown strategy error")
	}
	if _, err := NewSession("reference", map[string]string{"w": "10", "rays": "20"}, zerolog.Nop()); err == nil {
		t.Fatal("expected config error for more rays than columns")
	}
}

func TestSessionTickAndReset(t *testing.T) {
	s, _ := newTestSession(t, map[string]string{"speed": "0.5"})
	s.Tick(raycast.Controls{Forward: true})
	if p := s.Player(); math.Abs(p.X-2) > 1e-9 || math.Abs(p.Y-1.5) > 1e-9 {
		t.Fatalf("player = (%f,%f), want (2,1.5)", p.X, p.Y)
	}
	s.Tick(raycast.Controls{RotateLeft: true})
	if got := s.Player().Heading(); got != 359 {
		t.Fatalf("heading = %d, want 359", got)
	}
	s.Reset()
	if s.Player() != raycast.DefaultPlayer() {
		t.Fatalf("reset pose = %+v", s.Player())
	}
}

func TestSessionRenderCountsBands(t *testing.T) {
	s, _ := newTestSession(t, nil)
	bands := 0
	stats := s.Render(raycast.SinkFunc(func(raycast.Band) { bands++ }))
	if stats.Rays != 60 || stats.Escaped != 0 {
		t.Fatalf("stats = %+v", stats)
	}
	if bands != 3*60 {
		t.Fatalf("bands = %d, want %d", bands, 3*60)
	}
	if s.Timer().Frames() != 1 {
		t.Fatalf("frames = %d, want 1", s.Timer().Frames())
	}
	if v, ok := s.Snapshot().Lookup("rays"); !ok || v != "60" {
		t.Fatalf("snapshot rays = %q, %v", v, ok)
	}
}

func TestToggleStrategy(t *testing.T) {
	s, buf := newTestSession(t, nil)
	if s.Raycaster().Strategy() != raycast.StrategyDDA {
		t.Fatalf("default strategy = %s", s.Raycaster().Strategy())
	}
	if err := s.ToggleStrategy(); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if s.Raycaster().Strategy() != raycast.StrategyMarch {
		t.Fatalf("strategy = %s, want march", s.Raycaster().Strategy())
	}
	if !strings.Contains(buf.String(), `"message":"strategy switched"`) {
		t.Fatalf("missing switch log, got %s", buf.String())
	}
	if v, _ := s.Snapshot().Lookup("strategy"); v != raycast.StrategyMarch.String() {
		t.Fatalf("snapshot strategy = %q", v)
	}
}
