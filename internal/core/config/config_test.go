// File: config_test.go
// Title: Configuration Unit Tests
// Description: Tests for TOML/YAML loading, defaulting, environment
//              overrides, and validation.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.GitHub.APIBase != "https://api.github.com" {
		t.Errorf("Unexpected default API base: %s", cfg.GitHub.APIBase)
	}
	if cfg.GitHub.Timeout.Duration != 10*time.Second {
		t.Errorf("Unexpected default timeout: %v", cfg.GitHub.Timeout.Duration)
	}
	if cfg.Cache.TTL.Duration != 24*time.Hour {
		t.Errorf("Unexpected default cache TTL: %v", cfg.Cache.TTL.Duration)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Unexpected default log settings: %+v", cfg.Log)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[github]
api_base = "https://ghe.example.com/api/v3"
token = "tok"
timeout = "5s"

[cache]
enabled = true
ttl = "1h"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GitHub.APIBase != "https://ghe.example.com/api/v3" {
		t.Errorf("Unexpected API base: %s", cfg.GitHub.APIBase)
	}
	if cfg.GitHub.Timeout.Duration != 5*time.Second {
		t.Errorf("Unexpected timeout: %v", cfg.GitHub.Timeout.Duration)
	}
	if !cfg.Cache.Enabled || cfg.Cache.TTL.Duration != time.Hour {
		t.Errorf("Unexpected cache config: %+v", cfg.Cache)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Unexpected log level: %s", cfg.Log.Level)
	}
	// Defaults still applied for absent fields
	if cfg.Log.Format != "text" {
		t.Errorf("Expected default format, got %s", cfg.Log.Format)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
github:
  api_base: "https://api.github.com"
  timeout: "3s"
log:
  format: "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GitHub.Timeout.Duration != 3*time.Second {
		t.Errorf("Unexpected timeout: %v", cfg.GitHub.Timeout.Duration)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Unexpected format: %s", cfg.Log.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !oderror.HasCode(err, oderror.CodeMissingConfig) {
		t.Errorf("Expected CodeMissingConfig, got %v", err)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "config.ini", "[github]\n")
	_, err := Load(path)
	if !oderror.HasCode(err, oderror.CodeInvalidConfig) {
		t.Errorf("Expected CodeInvalidConfig, got %v", err)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := writeFile(t, "config.toml", "[github\napi_base=")
	_, err := Load(path)
	if !oderror.HasCode(err, oderror.CodeInvalidConfig) {
		t.Errorf("Expected CodeInvalidConfig, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OPENDIGGER_GITHUB_TOKEN", "env-token")
	t.Setenv("OPENDIGGER_LOG_LEVEL", "debug")

	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if cfg.GitHub.Token != "env-token" {
		t.Errorf("Expected env token override, got %q", cfg.GitHub.Token)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected env level override, got %q", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}

	cfg.GitHub.APIBase = "ftp://example.com"
	if err := cfg.Validate(); !oderror.HasCode(err, oderror.CodeInvalidConfig) {
		t.Errorf("Expected CodeInvalidConfig for bad scheme, got %v", err)
	}
}
