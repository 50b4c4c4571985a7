package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-map", "pillars", "-scale", "2", "-strategy", "march", "-set", "rays=30", "-set", "speed = 0.1", "-set", "junk"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Map != "pillars" || cfg.Scale != 2 || cfg.TPS != 60 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	got := cfg.Overrides()
	want := map[string]string{"rays": "30", "speed": "0.1", "strategy": "march"}
	if len(got) != len(want) {
		t.Fatalf("overrides = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("overrides[%s] = %q, want %q", k, got[k], v)
		}
	}
}
