// Package config handles loading the rtodo config.toml file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/rtodo/todo"
)

// Config represents the config.toml file.
type Config struct {
	Store    Store    `toml:"store"`
	Defaults Defaults `toml:"defaults"`
	Log      Log      `toml:"log"`
}

// Store contains store-related configuration.
type Store struct {
	// Path is the todo file. "~" is expanded.
	Path string `toml:"path"`
}

// Defaults contains values used by "rtodo new" when flags are omitted.
type Defaults struct {
	// Lifespan is a lifespan such as "1d" or "2 weeks".
	Lifespan string `toml:"lifespan"`
	// Lifecycle is one of once, daily, weekly, monthly, yearly.
	Lifecycle string `toml:"lifecycle"`
}

// Log contains logging configuration.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// Format is one of text, json, logfmt.
	Format string `toml:"format"`
}

// Load loads configuration from path.
// Returns an empty config if the file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("parse config file %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	cfg.Store.Path = strings.TrimSpace(cfg.Store.Path)
	cfg.Defaults.Lifespan = strings.TrimSpace(cfg.Defaults.Lifespan)
	cfg.Defaults.Lifecycle = strings.TrimSpace(cfg.Defaults.Lifecycle)
	cfg.Log.Level = strings.TrimSpace(cfg.Log.Level)
	cfg.Log.Format = strings.TrimSpace(cfg.Log.Format)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := c.DefaultLifespan(); err != nil {
		return fmt.Errorf("defaults.lifespan: %w", err)
	}
	if _, err := c.DefaultLifecycle(); err != nil {
		return fmt.Errorf("defaults.lifecycle: %w", err)
	}
	return nil
}

// DefaultLifespan returns the configured default lifespan, or one day.
func (c *Config) DefaultLifespan() (todo.Lifespan, error) {
	if c.Defaults.Lifespan == "" {
		return todo.DefaultLifespan, nil
	}
	return todo.ParseLifespan(c.Defaults.Lifespan)
}

// DefaultLifecycle returns the configured default lifecycle, or once.
func (c *Config) DefaultLifecycle() (todo.Lifecycle, error) {
	if c.Defaults.Lifecycle == "" {
		return todo.LifecycleOnce, nil
	}
	return todo.ParseLifecycle(c.Defaults.Lifecycle)
}
