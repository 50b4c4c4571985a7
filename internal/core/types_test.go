package core

import (
	"errors"
	"slices"
	"strings"
	"testing"

	gridcore "gridcast/pkg/core"
	"gridcast/pkg/raycast"
)

func layoutFrom(rows []string, spawn raycast.Player) Factory {
	return func(map[string]string) (Layout, error) {
		m, err := gridcore.ParseLayout(rows)
		if err != nil {
			return Layout{}, err
		}
		return Layout{Map: m, Spawn: spawn}, nil
	}
}

func TestBuildValidatesLayouts(t *testing.T) {
	solid := []string{"111", "101", "111"}
	Register("test-ok", layoutFrom(solid, raycast.NewPlayer(1.5, 1.5, 0, 60)))
	Register("test-open", layoutFrom([]string{"111", "100", "111"}, raycast.NewPlayer(1.5, 1.5, 0, 60)))
	Register("test-wall", layoutFrom(solid, raycast.NewPlayer(0.5, 0.5, 0, 60)))
	Register("test-off", layoutFrom(solid, raycast.NewPlayer(7.5, 1.5, 0, 60)))
	t.Cleanup(func() {
		for _, n := range []string{"test-ok", "test-open", "test-wall", "test-off"} {
			delete(layouts, n)
		}
	})

	l, err := Build("test-ok", nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if l.Name != "test-ok" {
		t.Fatalf("name = %q, want test-ok", l.Name)
	}

	if _, err := Build("test-open", nil); !errors.Is(err, gridcore.ErrRayEscaped) {
		t.Fatalf("open border should fail with ErrRayEscaped, got %v", err)
	}
	if _, err := Build("test-wall", nil); err == nil || !strings.Contains(err.Error(), "inside wall") {
		t.Fatalf("spawn in wall should fail, got %v", err)
	}
	if _, err := Build("test-off", nil); !errors.Is(err, gridcore.ErrOutOfBounds) {
		t.Fatalf("spawn off map should fail with ErrOutOfBounds, got %v", err)
	}
	for _, fov := range []int{0, -10, raycast.MaxFOV, 360} {
		name := "test-fov"
		Register(name, layoutFrom(solid, raycast.NewPlayer(1.5, 1.5, 0, fov)))
		if _, err := Build(name, nil); !errors.Is(err, raycast.ErrBadConfig) {
			t.Fatalf("fov %d should fail with ErrBadConfig, got %v", fov, err)
		}
		delete(layouts, name)
	}
	if _, err := Build("missing", nil); err == nil {
		t.Fatal("unknown layout should fail")
	}
	if !slices.Contains(Names(), "test-ok") {
		t.Fatalf("Names() = %v, missing test-ok", Names())
	}
}

func TestRegisterIgnoresEmpty(t *testing.T) {
	before := len(Layouts())
	Register("", layoutFrom(nil, raycast.Player{}))
	Register("nil-factory", nil)
	if len(Layouts()) != before {
		t.Fatal("empty registrations should be ignored")
	}
}
