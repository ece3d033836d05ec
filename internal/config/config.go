package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/scroller/internal/scroller"
)

const (
	appName = "scroller"

	defaultCount = 50
)

// Item is the size of a single list item in terminal cells.
type Item struct {
	Width  int `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Height int `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty"`
}

// Options holds settings that are not about the list itself.
type Options struct {
	Debug         bool   `json:"debug,omitempty" yaml:"debug,omitempty" toml:"debug,omitempty"`
	LogFile       string `json:"log_file,omitempty" yaml:"log_file,omitempty" toml:"log_file,omitempty"`
	DataDirectory string `json:"data_directory,omitempty" yaml:"data_directory,omitempty" toml:"data_directory,omitempty"`
}

// Config is the user configuration of the scroller.
type Config struct {
	Direction scroller.Direction `json:"direction" yaml:"direction" toml:"direction"`
	Movement  scroller.Movement  `json:"movement" yaml:"movement" toml:"movement"`
	Loop      bool               `json:"loop" yaml:"loop" toml:"loop"`
	Count     int                `json:"count" yaml:"count" toml:"count"`
	Spacing   float64            `json:"spacing" yaml:"spacing" toml:"spacing"`

	StartIndex          int  `json:"start_index" yaml:"start_index" toml:"start_index"`
	InitializeOnStart   bool `json:"initialize_on_start" yaml:"initialize_on_start" toml:"initialize_on_start"`
	InitializeStaggered bool `json:"initialize_staggered" yaml:"initialize_staggered" toml:"initialize_staggered"`

	Item    Item    `json:"item" yaml:"item" toml:"item"`
	Options Options `json:"options" yaml:"options" toml:"options"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Direction:         scroller.Vertical,
		Movement:          scroller.Elastic,
		Count:             defaultCount,
		InitializeOnStart: true,
		Item: Item{
			Width:  16,
			Height: 3,
		},
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Count < 0 {
		errs = append(errs, fmt.Errorf("count must not be negative, got %d", c.Count))
	}
	if c.Spacing < 0 {
		errs = append(errs, fmt.Errorf("spacing must not be negative, got %v", c.Spacing))
	}
	if c.Item.Width < 0 || c.Item.Height < 0 {
		errs = append(errs, fmt.Errorf("item size must not be negative, got %dx%d", c.Item.Width, c.Item.Height))
	}
	if !c.Loop && c.Count > 0 && (c.StartIndex < 0 || c.StartIndex >= c.Count) {
		errs = append(errs, fmt.Errorf("start index %d is out of range [0, %d)", c.StartIndex, c.Count))
	}
	return errors.Join(errs...)
}

// Scroller returns the controller configuration.
func (c *Config) Scroller() scroller.Config {
	return scroller.Config{
		Direction: c.Direction,
		Loop:      c.Loop,
		Count:     c.Count,
		Spacing:   c.Spacing,
		Staggered: c.InitializeStaggered,
	}
}

// DataDirectory returns the directory holding logs and the global config.
func (c *Config) DataDirectory() string {
	if c.Options.DataDirectory != "" {
		return c.Options.DataDirectory
	}
	return defaultDataDirectory()
}

// LogFile returns the path of the log file.
func (c *Config) LogFile() string {
	if c.Options.LogFile != "" {
		return c.Options.LogFile
	}
	return filepath.Join(c.DataDirectory(), "logs", appName+".log")
}

// defaultDataDirectory follows the XDG layout, with the usual fallbacks.
func defaultDataDirectory() string {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, appName)
	}

	// for windows, it should be in `%LOCALAPPDATA%/scroller/`
	// for linux and macOS, it should be in `$HOME/.local/share/scroller/`
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Local")
		}
		return filepath.Join(localAppData, appName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, ".local", "share", appName)
}
