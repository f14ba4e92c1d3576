// Package config decodes the editor's numeric defaults — artboard
// size, grid spacing, stroke, and the grid-line budget — from YAML.
//
// The package never touches the file system or the environment; the
// caller reads the bytes and hands them to Load. Zero or omitted
// fields fall back to defaults before validation, so a partial config
// is always usable.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pxkit/artboard"
)

// ErrInvalidConfig reports a configuration that decoded but carries
// unusable values. Detectable with errors.Is.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ArtboardConfig is the default artboard pixel size.
type ArtboardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GridConfig configures the ruler/snap grid: spacing per axis, stroke
// width and color, and the hard budget on emitted line descriptors.
type GridConfig struct {
	SpacingX  float64 `yaml:"spacing_x"`
	SpacingY  float64 `yaml:"spacing_y"`
	LineWidth float64 `yaml:"line_width"`
	Stroke    string  `yaml:"stroke"`
	MaxLines  int     `yaml:"max_lines"`
}

// Config is the editor's numeric defaults.
type Config struct {
	Artboard ArtboardConfig `yaml:"artboard"`
	Grid     GridConfig     `yaml:"grid"`
}

// Default returns the built-in defaults: a 1024x768 artboard with a
// 10px light-gray grid capped at 600 lines.
func Default() Config {
	return Config{
		Artboard: ArtboardConfig{Width: 1024, Height: 768},
		Grid: GridConfig{
			SpacingX:  10,
			SpacingY:  10,
			LineWidth: 1,
			Stroke:    "lightgray",
			MaxLines:  600,
		},
	}
}

// Load decodes YAML over the defaults and validates the result.
// Omitted and zero fields keep their default values; negative values
// and unresolvable stroke colors fail with an error wrapping
// ErrInvalidConfig.
func Load(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDefaults refills fields an explicit zero (or empty) value left
// behind. Negative values are left alone for Validate to reject.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Artboard.Width == 0 {
		c.Artboard.Width = d.Artboard.Width
	}
	if c.Artboard.Height == 0 {
		c.Artboard.Height = d.Artboard.Height
	}
	if c.Grid.SpacingX == 0 {
		c.Grid.SpacingX = d.Grid.SpacingX
	}
	if c.Grid.SpacingY == 0 {
		c.Grid.SpacingY = d.Grid.SpacingY
	}
	if c.Grid.LineWidth == 0 {
		c.Grid.LineWidth = d.Grid.LineWidth
	}
	if c.Grid.Stroke == "" {
		c.Grid.Stroke = d.Grid.Stroke
	}
	if c.Grid.MaxLines == 0 {
		c.Grid.MaxLines = d.Grid.MaxLines
	}
}

// Validate checks the configuration after defaulting.
func (c Config) Validate() error {
	if c.Artboard.Width < 0 || c.Artboard.Height < 0 {
		return fmt.Errorf("%w: negative artboard size %gx%g",
			ErrInvalidConfig, c.Artboard.Width, c.Artboard.Height)
	}
	if c.Grid.SpacingX < 0 || c.Grid.SpacingY < 0 {
		return fmt.Errorf("%w: negative grid spacing %gx%g",
			ErrInvalidConfig, c.Grid.SpacingX, c.Grid.SpacingY)
	}
	if c.Grid.LineWidth < 0 {
		return fmt.Errorf("%w: negative grid line width %g",
			ErrInvalidConfig, c.Grid.LineWidth)
	}
	if c.Grid.MaxLines < 0 {
		return fmt.Errorf("%w: negative grid line budget %d",
			ErrInvalidConfig, c.Grid.MaxLines)
	}
	if _, err := c.Grid.StrokeColor(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// StrokeColor resolves the configured stroke string (hex or SVG color
// name) to a render color.
func (g GridConfig) StrokeColor() (artboard.RGBA, error) {
	return artboard.ParseColor(g.Stroke)
}

// GridLines computes the grid for the configured artboard. A nil
// result means "draw no grid", exactly as with
// artboard.ComputeGridLines; an unresolvable stroke color is reported
// as an error (Load-validated configs never hit it).
func (c Config) GridLines() (*artboard.GridLineSet, error) {
	stroke, err := c.Grid.StrokeColor()
	if err != nil {
		return nil, err
	}
	return artboard.ComputeGridLines(
		c.Artboard.Width, c.Artboard.Height,
		c.Grid.SpacingX, c.Grid.SpacingY,
		c.Grid.LineWidth, stroke, c.Grid.MaxLines,
	), nil
}
