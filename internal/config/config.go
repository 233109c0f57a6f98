// Package config loads and validates the daemon configuration from
// ~/.config/arbortile/config.yaml. Unknown keys are rejected so typos fail
// loudly instead of silently reverting to defaults.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/arbortile/internal/move"
	"github.com/1broseidon/arbortile/internal/tree"
)

// Config is the effective daemon configuration.
type Config struct {
	// Boundaries selects the outer edge for directional moves: "workspace"
	// or "all-monitors".
	Boundaries string `yaml:"boundaries"`
	// OnBoundary decides what a move against the outer edge does: "stop",
	// "fail" or "create-container".
	OnBoundary string `yaml:"on_boundary"`
	// FocusFollowsWindow keeps focus on a window that crosses to another
	// monitor.
	FocusFollowsWindow bool `yaml:"focus_follows_window"`
	// Gap is the pixel spacing between tiled windows and around the
	// workspace edge.
	Gap int `yaml:"gap"`
	// DefaultOrientation is the split direction of a fresh workspace root:
	// "horizontal" or "vertical".
	DefaultOrientation string `yaml:"default_orientation"`
	// Display overrides the X display to connect to (defaults to $DISPLAY).
	Display string `yaml:"display"`
}

// ValidationError reports a config field that failed validation.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Path, e.Message)
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Boundaries:         string(move.BoundariesWorkspace),
		OnBoundary:         string(move.ActionStop),
		FocusFollowsWindow: true,
		Gap:                8,
		DefaultOrientation: "horizontal",
	}
}

// DefaultConfigPath returns ~/.config/arbortile/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "arbortile", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file is
// not an error: defaults apply.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates the configuration at path, applying
// defaults for absent fields.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("%s: failed to read: %w", path, err)
	}

	if err := decodeStrictYAML(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("failed to parse yaml: %w", err)
	}
	return nil
}

// Validate checks every field against its accepted values.
func (c *Config) Validate() error {
	switch move.Boundaries(c.Boundaries) {
	case move.BoundariesWorkspace, move.BoundariesAllMonitors:
	default:
		return &ValidationError{
			Path:    "boundaries",
			Message: fmt.Sprintf("%q is not one of %q, %q", c.Boundaries, move.BoundariesWorkspace, move.BoundariesAllMonitors),
		}
	}

	switch move.BoundaryAction(c.OnBoundary) {
	case move.ActionStop, move.ActionFail, move.ActionCreateContainer:
	default:
		return &ValidationError{
			Path:    "on_boundary",
			Message: fmt.Sprintf("%q is not one of %q, %q, %q", c.OnBoundary, move.ActionStop, move.ActionFail, move.ActionCreateContainer),
		}
	}

	if c.Gap < 0 {
		return &ValidationError{Path: "gap", Message: fmt.Sprintf("%d is negative", c.Gap)}
	}

	switch c.DefaultOrientation {
	case "horizontal", "vertical":
	default:
		return &ValidationError{
			Path:    "default_orientation",
			Message: fmt.Sprintf("%q is not one of %q, %q", c.DefaultOrientation, "horizontal", "vertical"),
		}
	}

	return nil
}

// Policy converts the boundary settings into the move engine's policy.
func (c *Config) Policy() move.Policy {
	return move.Policy{
		Boundaries:         move.Boundaries(c.Boundaries),
		OnBoundary:         move.BoundaryAction(c.OnBoundary),
		FocusFollowsWindow: c.FocusFollowsWindow,
	}
}

// Orientation returns the configured default root orientation.
func (c *Config) Orientation() tree.Orientation {
	if c.DefaultOrientation == "vertical" {
		return tree.Vertical
	}
	return tree.Horizontal
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
