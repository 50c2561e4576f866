package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Logging  LoggingConfig  `toml:"logging"`
	Registry RegistryConfig `toml:"registry"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type RegistryConfig struct {
	RootName       string `toml:"root_name"`       // topmost class of every chain
	MaxDepth       int    `toml:"max_depth"`       // longest ancestor chain, root included
	AllowShadowing bool   `toml:"allow_shadowing"` // field names repeating an ancestor's
	Manifest       string `toml:"manifest"`        // optional YAML class manifest
}

const (
	DefaultRootName = "Object"
	DefaultMaxDepth = 16
	maxDepthLimit   = 256
)

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Validate()
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Registry: RegistryConfig{
			RootName:       DefaultRootName,
			MaxDepth:       DefaultMaxDepth,
			AllowShadowing: true,
		},
	}
}

// Validate normalizes out-of-range values instead of rejecting them.
func (c *Config) Validate() {
	if c.Logging.Format != "json" {
		c.Logging.Format = "console"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.Registry.Validate()
}

func (r *RegistryConfig) Validate() {
	if r.RootName == "" {
		r.RootName = DefaultRootName
	}
	if r.MaxDepth < 1 {
		r.MaxDepth = DefaultMaxDepth
	}
	if r.MaxDepth > maxDepthLimit {
		r.MaxDepth = maxDepthLimit
	}
}
