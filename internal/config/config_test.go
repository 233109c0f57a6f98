package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/1broseidon/arbortile/internal/move"
	"github.com/1broseidon/arbortile/internal/tree"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Boundaries != string(move.BoundariesWorkspace) {
		t.Fatalf("expected workspace boundaries default, got %q", cfg.Boundaries)
	}
	if cfg.OnBoundary != string(move.ActionStop) {
		t.Fatalf("expected stop default, got %q", cfg.OnBoundary)
	}
	if !cfg.FocusFollowsWindow {
		t.Fatalf("expected focus_follows_window default true")
	}
	if cfg.Gap != 8 {
		t.Fatalf("expected gap default 8, got %d", cfg.Gap)
	}
}

func TestLoadFromPath_FullConfig(t *testing.T) {
	path := writeConfig(t, `
boundaries: all-monitors
on_boundary: create-container
focus_follows_window: false
gap: 12
default_orientation: vertical
display: ":1"
`)
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Boundaries != string(move.BoundariesAllMonitors) {
		t.Fatalf("boundaries = %q", cfg.Boundaries)
	}
	if cfg.OnBoundary != string(move.ActionCreateContainer) {
		t.Fatalf("on_boundary = %q", cfg.OnBoundary)
	}
	if cfg.FocusFollowsWindow {
		t.Fatalf("expected focus_follows_window false")
	}
	if cfg.Gap != 12 {
		t.Fatalf("gap = %d", cfg.Gap)
	}
	if cfg.Orientation() != tree.Vertical {
		t.Fatalf("expected vertical orientation")
	}
	if cfg.Display != ":1" {
		t.Fatalf("display = %q", cfg.Display)
	}
}

func TestLoadFromPath_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "gap: 0\n")
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gap != 0 {
		t.Fatalf("gap = %d, want 0", cfg.Gap)
	}
	if cfg.OnBoundary != string(move.ActionStop) {
		t.Fatalf("expected on_boundary default to survive, got %q", cfg.OnBoundary)
	}
}

func TestLoadFromPath_UnknownKeyFails(t *testing.T) {
	path := writeConfig(t, "on_bounary: stop\n")
	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"bad boundaries", func(c *Config) { c.Boundaries = "monitor" }, "boundaries"},
		{"bad on_boundary", func(c *Config) { c.OnBoundary = "wrap" }, "on_boundary"},
		{"negative gap", func(c *Config) { c.Gap = -1 }, "gap"},
		{"bad orientation", func(c *Config) { c.DefaultOrientation = "diagonal" }, "default_orientation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Path != tt.path {
				t.Fatalf("error path = %q, want %q", verr.Path, tt.path)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.OnBoundary = string(move.ActionFail)
	cfg.Gap = 4
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.OnBoundary != string(move.ActionFail) || loaded.Gap != 4 {
		t.Fatalf("round trip lost fields: %+v", loaded)
	}
}

func TestPolicyConversion(t *testing.T) {
	cfg := Default()
	cfg.Boundaries = string(move.BoundariesAllMonitors)
	cfg.OnBoundary = string(move.ActionCreateContainer)
	p := cfg.Policy()
	if p.Boundaries != move.BoundariesAllMonitors || p.OnBoundary != move.ActionCreateContainer || !p.FocusFollowsWindow {
		t.Fatalf("policy = %+v", p)
	}
}
