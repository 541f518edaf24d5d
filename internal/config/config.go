// Package config loads inspector settings: built-in defaults, then an
// optional TOML file, then the environment. Command-line flags are applied
// on top by cmd/app.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	LogFormatAuto = ""
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	Debug     bool          `toml:"debug"`
	LogFormat string        `toml:"log_format"`
	Window    WindowConfig  `toml:"window"`
	View      ViewConfig    `toml:"view"`
	History   HistoryConfig `toml:"history"`
}

type WindowConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// ViewConfig sizes the image plots. PlotSize caps the longest side of the
// composite view; channel previews are scaled to ThumbnailWidth.
type ViewConfig struct {
	PlotSize       int `toml:"plot_size"`
	ThumbnailWidth int `toml:"thumbnail_width"`
}

// HistoryConfig bounds the undo stack for isolate and conversion actions.
// Zero disables undo.
type HistoryConfig struct {
	Depth int `toml:"depth"`
}

func Default() Config {
	return Config{
		Debug:     false,
		LogFormat: LogFormatAuto,
		Window:    WindowConfig{Width: 1280, Height: 720},
		View:      ViewConfig{PlotSize: 720, ThumbnailWidth: 240},
		History:   HistoryConfig{Depth: 16},
	}
}

// Load returns the defaults overlaid with the TOML file at path, if any.
// Unknown keys are reported as an error so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// ApplyEnv honors DEBUG: when set, anything other than "false" enables
// debug mode.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup("DEBUG"); ok {
		c.Debug = strings.ToLower(strings.TrimSpace(v)) != "false"
	}
}

func (c Config) Validate() error {
	switch c.LogFormat {
	case LogFormatAuto, LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("log_format must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	if c.View.PlotSize < 64 {
		return fmt.Errorf("view.plot_size must be at least 64, got %d", c.View.PlotSize)
	}
	if c.View.ThumbnailWidth < 16 {
		return fmt.Errorf("view.thumbnail_width must be at least 16, got %d", c.View.ThumbnailWidth)
	}
	if c.History.Depth < 0 {
		return fmt.Errorf("history.depth must not be negative, got %d", c.History.Depth)
	}
	return nil
}
