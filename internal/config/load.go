package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const envPrefix = "SCROLLER_"

// configNames are the file names looked up in the global and working
// directories, in order.
var configNames = []string{
	appName + ".json",
	appName + ".yaml",
	appName + ".yml",
	appName + ".toml",
}

// Load reads the configuration. When path is empty, the global data
// directory and then workingDir are searched for a config file; later files
// override earlier ones. A .env file in workingDir and SCROLLER_* variables
// are applied last.
func Load(workingDir, path string) (*Config, error) {
	if err := loadDotEnv(filepath.Join(workingDir, ".env")); err != nil {
		return nil, err
	}

	var paths []string
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		paths = []string{path}
	} else {
		paths = lookupConfigs(workingDir)
	}

	cfg, err := loadFromConfigPaths(paths)
	if err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func lookupConfigs(workingDir string) []string {
	var paths []string
	for _, dir := range []string{defaultDataDirectory(), workingDir} {
		for _, name := range configNames {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths
}

// loadFromConfigPaths decodes every existing file of paths over the defaults.
// Missing files are skipped.
func loadFromConfigPaths(paths []string) (*Config, error) {
	cfg := Default()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := decode(path, data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		slog.Debug("Loaded config file", "path", path)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg with SCROLLER_* environment variables.
func applyEnv(cfg *Config) error {
	var errs []error
	lookup := func(name string, apply func(string) error) {
		v, ok := os.LookupEnv(envPrefix + name)
		if !ok || v == "" {
			return
		}
		if err := apply(v); err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, name, err))
		}
	}

	lookup("DIRECTION", func(v string) error { return cfg.Direction.UnmarshalText([]byte(v)) })
	lookup("MOVEMENT", func(v string) error { return cfg.Movement.UnmarshalText([]byte(v)) })
	lookup("LOOP", parseBool(&cfg.Loop))
	lookup("COUNT", parseInt(&cfg.Count))
	lookup("SPACING", func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			cfg.Spacing = f
		}
		return err
	})
	lookup("START_INDEX", parseInt(&cfg.StartIndex))
	lookup("INITIALIZE_ON_START", parseBool(&cfg.InitializeOnStart))
	lookup("INITIALIZE_STAGGERED", parseBool(&cfg.InitializeStaggered))
	lookup("DEBUG", parseBool(&cfg.Options.Debug))
	lookup("LOG_FILE", func(v string) error { cfg.Options.LogFile = v; return nil })
	lookup("DATA_DIRECTORY", func(v string) error { cfg.Options.DataDirectory = v; return nil })

	return errors.Join(errs...)
}

func parseBool(dst *bool) func(string) error {
	return func(v string) error {
		b, err := strconv.ParseBool(v)
		if err == nil {
			*dst = b
		}
		return err
	}
}

func parseInt(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err == nil {
			*dst = n
		}
		return err
	}
}
