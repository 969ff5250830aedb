// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all agenda configuration.
type Config struct {
	UI   UI   `yaml:"ui"`
	Seed Seed `yaml:"seed"`
	Log  Log  `yaml:"log"`
}

// UI holds terminal presentation settings.
type UI struct {
	AltScreen bool `yaml:"alt_screen"` // Run in the terminal's alternate screen buffer
}

// Seed holds the read-only contact fixture loaded at startup.
type Seed struct {
	Path string `yaml:"path"` // YAML file of contacts; empty loads nothing
	Demo bool   `yaml:"demo"` // Load the embedded demo contacts when Path is empty
}

// Log holds diagnostic logging settings.
type Log struct {
	File  string `yaml:"file"`  // Log file path; empty discards logs
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UI{
			AltScreen: true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	if c.Seed.Demo && c.Seed.Path != "" {
		return errors.New("config: seed.demo and seed.path are mutually exclusive")
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: AGENDA_SEED, AGENDA_LOG_FILE, AGENDA_LOG_LEVEL, AGENDA_ALT_SCREEN.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("AGENDA_SEED"); v != "" {
		c.Seed.Path = v
	}
	if v := os.Getenv("AGENDA_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("AGENDA_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("AGENDA_ALT_SCREEN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid AGENDA_ALT_SCREEN %q: %w", v, err)
		}
		c.UI.AltScreen = b
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	UI   *rawUI   `yaml:"ui"`
	Seed *rawSeed `yaml:"seed"`
	Log  *rawLog  `yaml:"log"`
}

type rawUI struct {
	AltScreen *bool `yaml:"alt_screen"`
}

type rawSeed struct {
	Path *string `yaml:"path"`
	Demo *bool   `yaml:"demo"`
}

type rawLog struct {
	File  *string `yaml:"file"`
	Level *string `yaml:"level"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.UI != nil {
		if layer.UI.AltScreen != nil {
			c.UI.AltScreen = *layer.UI.AltScreen
		}
	}
	if layer.Seed != nil {
		if layer.Seed.Path != nil {
			c.Seed.Path = *layer.Seed.Path
		}
		if layer.Seed.Demo != nil {
			c.Seed.Demo = *layer.Seed.Demo
		}
	}
	if layer.Log != nil {
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
	}
}
