package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jaco/ouilookup/internal/vendor"
)

const (
	// DefaultTablePath is used in relative mode, resolved against the
	// working directory.
	DefaultTablePath = "assets/IEEE_OUI.csv"

	// HomeTableSubpath is joined to $HOME in home mode.
	HomeTableSubpath = ".local/share/ouilookup/IEEE_OUI.csv"

	// DefaultConfigPath is tried when no --config flag is given.
	DefaultConfigPath = "~/.config/ouilookup/config.yaml"
)

// Location selects how the reference table path is derived when no
// explicit path is configured.
type Location string

const (
	LocationRelative Location = "relative"
	LocationHome     Location = "home"
)

var (
	ErrHomeUnset = errors.New("HOME is not set")
	ErrConfig    = errors.New("invalid configuration")
)

// Config represents the main configuration
type Config struct {
	Table  Table  `yaml:"table"`
	Lookup Lookup `yaml:"lookup"`
	Log    Log    `yaml:"log"`
	Stats  Stats  `yaml:"stats"`
}

// Table describes where the reference table lives and how to read it.
type Table struct {
	Path       string   `yaml:"path,omitempty"`
	Location   Location `yaml:"location,omitempty"`
	Format     string   `yaml:"format,omitempty"` // "csv" (default) or "ieee"
	SkipHeader bool     `yaml:"skip_header,omitempty"`
}

// Lookup tunes the lookup pipeline.
type Lookup struct {
	StrictHex       bool `yaml:"strict_hex,omitempty"`
	BuiltinFallback bool `yaml:"builtin_fallback,omitempty"`
}

// Log configures the stderr logger.
type Log struct {
	Level string `yaml:"level,omitempty"`
}

// Stats toggles the persisted lookup counters.
type Stats struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Path    string `yaml:"path,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Table.Location == "" {
		c.Table.Location = LocationRelative
	}
	if c.Table.Format == "" {
		c.Table.Format = string(vendor.FormatCSV)
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// StatsEnabled reports whether lookups should be counted. Counting is
// opt-in; a plain lookup leaves nothing on disk.
func (c *Config) StatsEnabled() bool {
	return c.Stats.Enabled
}

// Load loads configuration from a YAML file
func Load(path string) (*Config, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrConfig, path, err)
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDefault reads DefaultConfigPath, falling back to Default when the
// file does not exist.
func LoadDefault() (*Config, error) {
	path, err := ExpandHome(DefaultConfigPath)
	if err != nil {
		// No home directory means no default file either.
		return Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Validate rejects values the lookup pipeline cannot act on.
func (c *Config) Validate() error {
	switch c.Table.Location {
	case LocationRelative, LocationHome:
	default:
		return fmt.Errorf("%w: unknown table location %q (want relative or home)", ErrConfig, c.Table.Location)
	}
	if _, err := vendor.ParseFormat(c.Table.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}

// ResolveTablePath picks the reference table path. An explicit override
// (the --table flag) wins, then table.path, then the location mode.
func (c *Config) ResolveTablePath(override string) (string, error) {
	if override != "" {
		return ExpandHome(override)
	}
	if c.Table.Path != "" {
		return ExpandHome(c.Table.Path)
	}

	switch c.Table.Location {
	case LocationHome:
		home, ok := os.LookupEnv("HOME")
		if !ok || home == "" {
			return "", fmt.Errorf("%w: cannot locate %s", ErrHomeUnset, HomeTableSubpath)
		}
		return filepath.Join(home, HomeTableSubpath), nil
	case LocationRelative, "":
		return DefaultTablePath, nil
	default:
		return "", fmt.Errorf("%w: unknown table location %q", ErrConfig, c.Table.Location)
	}
}

// VendorTable builds the lookup table described by the configuration.
func (c *Config) VendorTable(override string) (vendor.Table, error) {
	path, err := c.ResolveTablePath(override)
	if err != nil {
		return vendor.Table{}, err
	}
	format, err := vendor.ParseFormat(c.Table.Format)
	if err != nil {
		return vendor.Table{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return vendor.Table{
		Path:       path,
		Format:     format,
		SkipHeader: c.Table.SkipHeader,
	}, nil
}

// ExpandHome replaces a leading "~" with the HOME directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, ok := os.LookupEnv("HOME")
	if !ok || home == "" {
		return "", fmt.Errorf("%w: cannot expand %s", ErrHomeUnset, path)
	}
	return filepath.Join(home, path[1:]), nil
}
