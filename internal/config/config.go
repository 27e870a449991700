// Package config loads text box appearance settings from a TOML file
// and watches the file for live reload.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/textbox/internal/render"
)

// Errors returned by configuration loading.
var (
	ErrInvalidFontSize = errors.New("font size must be positive")
	ErrInvalidPadding  = errors.New("padding must not be negative")
)

// Config holds the text box appearance settings.
type Config struct {
	FontSize    float64 `toml:"font_size"`
	LineSpacing float64 `toml:"line_spacing"`
	Wrap        string  `toml:"wrap"`
	XAlign      string  `toml:"x_align"`
	YAlign      string  `toml:"y_align"`
	Padding     float64 `toml:"padding"`
	TextColor   string  `toml:"text_color"`
	Color       string  `toml:"color"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		FontSize:    24,
		LineSpacing: 1.0,
		Wrap:        "whitespace",
		XAlign:      "start",
		YAlign:      "end",
		Padding:     5,
		TextColor:   "#000000",
		Color:       "#FFFFFF",
	}
}

// Load reads a configuration file. A missing file is not an error: the
// defaults are returned unchanged. Fields absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values no style can use.
func (c Config) Validate() error {
	if c.FontSize <= 0 {
		return ErrInvalidFontSize
	}
	if c.Padding < 0 {
		return ErrInvalidPadding
	}
	if _, err := render.ColorFromHex(c.TextColor); err != nil {
		return fmt.Errorf("text_color: %w", err)
	}
	if _, err := render.ColorFromHex(c.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	return nil
}
