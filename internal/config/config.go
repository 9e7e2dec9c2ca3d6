package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/vocal/internal/playback"
)

const (
	appName  = "vocal"
	fileName = "config.toml"
)

// Limits applied by the getters.
const (
	MinBarWidth = 1
	MaxBarWidth = 16
	MaxBarGap   = 16
)

// Config holds the user settings read from config.toml.
type Config struct {
	AudioDirectory string `koanf:"audio_directory"` // listed on the selection screen
	BarWidth       int    `koanf:"bar_width"`       // chart bar width in cells
	BarGap         int    `koanf:"bar_gap"`         // cells between bars
	Color          string `koanf:"color"`           // named color, ANSI number or #rrggbb
	HighlightColor string `koanf:"highlight_color"`
	ShowHotkeys    bool   `koanf:"show_hotkeys"`  // footer shows key hints
	CustomFooter   string `koanf:"custom_footer"` // footer text when hotkeys are hidden
	Volume         int    `koanf:"volume"`        // initial volume, 0-100
	Speed          int    `koanf:"speed"`         // initial speed in percent
	DebugLog       string `koanf:"debug_log"`     // log file, empty disables logging
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AudioDirectory: "~/Music",
		BarWidth:       1,
		BarGap:         1,
		Color:          "cyan",
		HighlightColor: "magenta",
		ShowHotkeys:    true,
		Volume:         50,
		Speed:          100,
	}
}

// Load reads the config files in order of priority (last wins).
// Missing files are skipped; with none, the defaults are returned.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files in order (last wins).
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.AudioDirectory = expandPath(cfg.AudioDirectory)
	cfg.DebugLog = expandPath(cfg.DebugLog)

	return cfg, nil
}

// UserPath returns the per-user config file location.
func UserPath() string {
	return filepath.Join(xdg.ConfigHome, appName, fileName)
}

// EnsureDefault writes the default config to the per-user location when no
// file exists there yet. It returns the path and whether a file was written.
func EnsureDefault() (string, bool, error) {
	path := UserPath()
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}
	path, err := xdg.ConfigFile(filepath.Join(appName, fileName))
	if err != nil {
		return "", false, err
	}
	if err := WriteDefault(path); err != nil {
		return path, false, err
	}
	return path, true, nil
}

// WriteDefault writes the default configuration as TOML to path.
func WriteDefault(path string) error {
	d := Default()
	k := koanf.New(".")
	for key, val := range map[string]any{
		"audio_directory": d.AudioDirectory,
		"bar_width":       d.BarWidth,
		"bar_gap":         d.BarGap,
		"color":           d.Color,
		"highlight_color": d.HighlightColor,
		"show_hotkeys":    d.ShowHotkeys,
		"custom_footer":   d.CustomFooter,
		"volume":          d.Volume,
		"speed":           d.Speed,
		"debug_log":       d.DebugLog,
	} {
		if err := k.Set(key, val); err != nil {
			return err
		}
	}

	data, err := k.Marshal(toml.Parser())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/vocal/config.toml
		UserPath(),
		// 2. ./config.toml (pwd, highest priority)
		fileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetBarWidth returns the bar width clamped to [MinBarWidth, MaxBarWidth].
func (c *Config) GetBarWidth() int {
	return min(max(c.BarWidth, MinBarWidth), MaxBarWidth)
}

// GetBarGap returns the bar gap clamped to [0, MaxBarGap].
func (c *Config) GetBarGap() int {
	return min(max(c.BarGap, 0), MaxBarGap)
}

// GetVolume returns the initial volume clamped to the playback limits.
func (c *Config) GetVolume() int {
	return min(max(c.Volume, playback.MinVolume), playback.MaxVolume)
}

// GetSpeed returns the initial speed clamped to the playback limits.
func (c *Config) GetSpeed() int {
	return min(max(c.Speed, playback.MinSpeed), playback.MaxSpeed)
}

// Footer returns the custom footer text, or "" when hotkeys are shown.
func (c *Config) Footer() string {
	if c.ShowHotkeys {
		return ""
	}
	return c.CustomFooter
}
