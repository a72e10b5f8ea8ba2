package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"palette/internal/domain"
)

const (
	DefaultProjectRoot = "."
	DefaultSortMode    = "unsorted"

	// Environment overrides
	EnvProject    = "PALETTE_PROJECT"
	EnvCollection = "PALETTE_COLLECTION"
	EnvConfig     = "PALETTE_CONFIG"
)

// Config holds user settings from config.toml
type Config struct {
	ProjectRoot string `toml:"project_root"`
	Collection  string `toml:"collection"`
	SortMode    string `toml:"sort_mode"` // initial mode for a new collection
	Verbosity   int    `toml:"verbosity"`
	Editor      string `toml:"editor"`
	Index       string `toml:"index,omitempty"` // resource index database, derived from the project when empty
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		ProjectRoot: DefaultProjectRoot,
		Collection:  DefaultCollectionPath(),
		SortMode:    DefaultSortMode,
	}
}

// DefaultCollectionPath returns where the collection lives unless configured
func DefaultCollectionPath() string {
	return filepath.Join(xdg.DataHome, "palette", "collection.json")
}

// Path returns the config file location: $PALETTE_CONFIG, or config.toml
// under the XDG config directory
func Path() string {
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	return filepath.Join(xdg.ConfigHome, "palette", "config.toml")
}

// Load reads the config file at Path
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads a config file over the defaults, then applies environment
// overrides. A missing file is not an error.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if env := os.Getenv(EnvProject); env != "" {
		cfg.ProjectRoot = env
	}
	if env := os.Getenv(EnvCollection); env != "" {
		cfg.Collection = env
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted
func (c Config) Validate() error {
	if c.SortMode != "" {
		if _, err := domain.ParseSortMode(c.SortMode); err != nil {
			return err
		}
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must not be negative")
	}
	return nil
}

// InitialSortMode returns the configured mode for new collections
func (c Config) InitialSortMode() domain.SortMode {
	mode, err := domain.ParseSortMode(c.SortMode)
	if err != nil {
		return domain.SortUnsorted
	}
	return mode
}

// Write stores the config as TOML, creating parent directories
func (c Config) Write(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
