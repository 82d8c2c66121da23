package pinchzoom

import (
	"errors"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("pinchzoom: invalid config")

// defaultMinAnchorDistance is the contact separation (pixels) at or below
// which a gesture start is treated as coincident and produces no zoom.
const defaultMinAnchorDistance = 1e-6

// Config tunes an Interpreter.
//
// DefaultConfig bounds zoom to [MinZoom, MaxZoom], the package constants
// 0.1 and 3.0. Setting MinZoom or MaxZoom replaces those limits for every
// viewport the Interpreter produces, so sinks must not assume the package
// constants hold when a custom Config is in use.
type Config struct {
	// MinZoom and MaxZoom bound every produced viewport zoom. A zero value
	// takes the package constant of the same name.
	MinZoom float64 `yaml:"min_zoom"`
	MaxZoom float64 `yaml:"max_zoom"`

	// MinAnchorDistance is the anchor separation at or below which the
	// scale factor is pinned to 1.
	MinAnchorDistance float64 `yaml:"min_anchor_distance"`

	// CommitOnRelease emits a single committed Update when a pinch that
	// changed the viewport ends.
	CommitOnRelease bool `yaml:"commit_on_release"`

	// ReanchorOnContactChange re-establishes the anchor when a move reports
	// two contacts that are not the two the anchor was taken from. When
	// false only the contact count is checked.
	ReanchorOnContactChange bool `yaml:"reanchor_on_contact_change"`
}

// DefaultConfig returns the default interpreter configuration.
func DefaultConfig() Config {
	return Config{
		MinZoom:                 MinZoom,
		MaxZoom:                 MaxZoom,
		MinAnchorDistance:       defaultMinAnchorDistance,
		CommitOnRelease:         true,
		ReanchorOnContactChange: true,
	}
}

// ParseConfig decodes a YAML config. Keys absent from data keep their
// DefaultConfig values. The result is validated.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the config can drive an Interpreter.
func (c Config) Validate() error {
	if !(c.MinZoom > 0) {
		return fmt.Errorf("%w: min_zoom must be positive, got %v", ErrInvalidConfig, c.MinZoom)
	}
	if !(c.MaxZoom >= c.MinZoom) {
		return fmt.Errorf("%w: max_zoom %v is below min_zoom %v", ErrInvalidConfig, c.MaxZoom, c.MinZoom)
	}
	if !(c.MinAnchorDistance >= 0) {
		return fmt.Errorf("%w: min_anchor_distance must not be negative, got %v", ErrInvalidConfig, c.MinAnchorDistance)
	}
	return nil
}

// resolve fills unset zoom limits from DefaultConfig. A zero Config resolves
// to DefaultConfig, and a config that still fails Validate is replaced by
// DefaultConfig with a warning.
func (c Config) resolve() Config {
	if c == (Config{}) {
		return DefaultConfig()
	}
	if c.MinZoom == 0 {
		c.MinZoom = MinZoom
	}
	if c.MaxZoom == 0 {
		c.MaxZoom = MaxZoom
	}
	if err := c.Validate(); err != nil {
		Logger().Warn("pinchzoom: falling back to default config", slog.Any("err", err))
		return DefaultConfig()
	}
	return c
}
