// File: config.go
// Title: CLI Configuration Management
// Description: Implements loading, defaulting, and environment override of
//              the opendigger-cli configuration from TOML or YAML files.
//              The format is auto-detected from the file extension; fields
//              absent from the file fall back to built-in defaults.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	GitHub  GitHubConfig  `toml:"github" yaml:"github"`
	Cache   CacheConfig   `toml:"cache" yaml:"cache"`
	Log     LogConfig     `toml:"log" yaml:"log"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	DataDir string `toml:"data_dir" yaml:"data_dir"`
}

// GitHubConfig holds the existence-check collaborator settings
type GitHubConfig struct {
	APIBase string   `toml:"api_base" yaml:"api_base"`
	Token   string   `toml:"token" yaml:"token"`
	Timeout Duration `toml:"timeout" yaml:"timeout"`
}

// CacheConfig holds the existence-check cache settings
type CacheConfig struct {
	Enabled bool     `toml:"enabled" yaml:"enabled"`
	Path    string   `toml:"path" yaml:"path"`
	TTL     Duration `toml:"ttl" yaml:"ttl"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	File   string `toml:"file" yaml:"file"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration string from YAML
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	var err error
	d.Duration, err = time.ParseDuration(s)
	return err
}

// Default returns the built-in default configuration
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads configuration from a TOML or YAML file, detected by extension.
// Fields absent from the file keep their defaults; OPENDIGGER_* environment
// variables override file values afterwards.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, oderror.Newf("config file not found: %s", path).
			WithCode(oderror.CodeMissingConfig).
			WithDetail("path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oderror.Wrap(err, "reading config file").
			WithCode(oderror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, oderror.Wrap(err, "parsing TOML config").
				WithCode(oderror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, oderror.Wrap(err, "parsing YAML config").
				WithCode(oderror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	default:
		return nil, oderror.Newf("unsupported config format: %s", filepath.Ext(path)).
			WithCode(oderror.CodeInvalidConfig).
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()
	return cfg, nil
}

// LoadOrDefault loads the given config file if path is non-empty and the
// file exists; otherwise returns defaults with environment overrides applied.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	cfg := Default()
	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyDefaults fills in zero-valued fields with built-in defaults
func (c *Config) applyDefaults() {
	if c.General.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		c.General.DataDir = filepath.Join(home, ".opendigger")
	}
	if c.GitHub.APIBase == "" {
		c.GitHub.APIBase = "https://api.github.com"
	}
	if c.GitHub.Timeout.Duration <= 0 {
		c.GitHub.Timeout.Duration = 10 * time.Second
	}
	if c.Cache.Path == "" {
		c.Cache.Path = filepath.Join(c.General.DataDir, "checks.db")
	}
	if c.Cache.TTL.Duration <= 0 {
		c.Cache.TTL.Duration = 24 * time.Hour
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// applyEnvOverrides applies OPENDIGGER_* environment variable overrides
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("OPENDIGGER_GITHUB_API_BASE"); v != "" {
		c.GitHub.APIBase = v
	}
	if v := os.Getenv("OPENDIGGER_GITHUB_TOKEN"); v != "" {
		c.GitHub.Token = v
	}
	if v := os.Getenv("OPENDIGGER_CACHE_PATH"); v != "" {
		c.Cache.Path = v
	}
	if v := os.Getenv("OPENDIGGER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("OPENDIGGER_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
}

// Validate checks the configuration for structural problems
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.GitHub.APIBase, "http://") && !strings.HasPrefix(c.GitHub.APIBase, "https://") {
		return oderror.Newf("github api_base must be an http(s) URL: %s", c.GitHub.APIBase).
			WithCode(oderror.CodeInvalidConfig).
			WithDetail("api_base", c.GitHub.APIBase)
	}
	if c.Cache.Enabled && c.Cache.Path == "" {
		return oderror.New("cache enabled but cache path is empty").
			WithCode(oderror.CodeInvalidConfig)
	}
	return nil
}
