// Package config loads the TOML configuration file and merges command-line
// overrides into it.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/editor"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/logger"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger LoggerConfig `toml:"logger"`
	Canvas CanvasConfig `toml:"canvas"`
	Tool   ToolConfig   `toml:"tool"`
}

// LoggerConfig selects the log level and destination.
type LoggerConfig struct {
	Level string `toml:"level"`
	// File is the log file path; empty or "-" means stderr.
	File string `toml:"file"`
}

// CanvasConfig sizes the canvas and its undo log.
type CanvasConfig struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	HistoryLimit int    `toml:"history_limit"` // 0 = unbounded
	Background   string `toml:"background"`
}

// ToolConfig is the tool selected at startup.
type ToolConfig struct {
	Kind        string  `toml:"kind"`
	Color       string  `toml:"color"`
	StrokeWidth float64 `toml:"stroke_width"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: LoggerConfig{Level: "info"},
		Canvas: CanvasConfig{
			Width:        DefaultWidth,
			Height:       DefaultHeight,
			HistoryLimit: DefaultHistoryLimit,
			Background:   DefaultBackground,
		},
		Tool: ToolConfig{
			Kind:        DefaultTool,
			Color:       DefaultColor,
			StrokeWidth: DefaultStrokeWidth,
		},
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName), nil
}

// Source describes where the configuration came from. Load runs before the
// logger is set up, so the caller logs it afterwards.
type Source struct {
	Path string
	// Found is false when no file existed at Path.
	Found bool
	// Undecoded lists keys in the file that matched no setting.
	Undecoded []string
}

// Log reports the source through the logger.
func (s Source) Log() {
	switch {
	case s.Path == "":
		logger.Debugf("Config: no config path, using defaults")
	case !s.Found:
		logger.Debugf("Config: file not found: %s", s.Path)
	default:
		logger.Infof("Config: loaded %s", s.Path)
	}
	if len(s.Undecoded) > 0 {
		logger.Warnf("Config: file '%s': unrecognized keys: %v", s.Path, s.Undecoded)
	}
}

// loadFromFile decodes path over cfg. A missing file leaves cfg untouched.
func loadFromFile(path string, cfg *Config) (Source, error) {
	src := Source{Path: path}
	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, os.ErrNotExist) {
		return src, nil
	}
	src.Found = true
	if err != nil {
		return src, fmt.Errorf("parse config file '%s': %w", path, err)
	}
	for _, key := range md.Undecoded() {
		src.Undecoded = append(src.Undecoded, key.String())
	}
	return src, nil
}

// Load builds the configuration from defaults, the file at path (or the
// default location when path is empty) and the flags that were set.
// Invalid values fall back to defaults.
func Load(path string, flags *Flags) (*Config, Source, error) {
	cfg := NewDefaultConfig()
	if path == "" {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}
	var (
		src     Source
		loadErr error
	)
	if path != "" {
		src, loadErr = loadFromFile(path, cfg)
	}
	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, src, loadErr
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		c.Logger.Level = defaults.Logger.Level
	}

	if c.Canvas.Width <= 0 {
		c.Canvas.Width = defaults.Canvas.Width
	}
	if c.Canvas.Height <= 0 {
		c.Canvas.Height = defaults.Canvas.Height
	}
	if c.Canvas.HistoryLimit < 0 {
		c.Canvas.HistoryLimit = defaults.Canvas.HistoryLimit
	}
	if _, err := ParseColor(c.Canvas.Background); err != nil {
		c.Canvas.Background = defaults.Canvas.Background
	}

	if _, err := state.ParseTool(c.Tool.Kind); err != nil {
		c.Tool.Kind = defaults.Tool.Kind
	}
	if _, err := ParseColor(c.Tool.Color); err != nil {
		c.Tool.Color = defaults.Tool.Color
	}
	if c.Tool.StrokeWidth <= 0 {
		c.Tool.StrokeWidth = defaults.Tool.StrokeWidth
	}
}

// ParseColor parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("color %q: bad length", s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return color.NRGBA{}, fmt.Errorf("color %q: bad digit %q", s, r)
		}
	}
	return gg.Hex(hex).Color().(color.NRGBA), nil
}

// EditorOptions converts the validated config into session options.
func (c *Config) EditorOptions() (editor.Options, error) {
	bg, err := ParseColor(c.Canvas.Background)
	if err != nil {
		return editor.Options{}, err
	}
	kind, err := state.ParseTool(c.Tool.Kind)
	if err != nil {
		return editor.Options{}, err
	}
	ink, err := ParseColor(c.Tool.Color)
	if err != nil {
		return editor.Options{}, err
	}
	tool := state.ToolConfig{Tool: kind, Color: ink, StrokeWidth: c.Tool.StrokeWidth}
	if !tool.Valid() {
		return editor.Options{}, fmt.Errorf("tool %s: %w", kind, state.ErrInvalidOperation)
	}
	return editor.Options{
		Width:        c.Canvas.Width,
		Height:       c.Canvas.Height,
		HistoryLimit: c.Canvas.HistoryLimit,
		Background:   bg,
		Tool:         tool,
	}, nil
}
