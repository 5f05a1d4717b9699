// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty directory and clears LINKZIP_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "LINKZIP_") {
			name, _, _ := strings.Cut(kv, "=")
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestConfig_Default(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, "http://localhost:8000", cfg.API.PublicURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout.Duration)
	assert.False(t, cfg.Debug)

	require.Len(t, cfg.Widgets, 3)
	assert.Equal(t, "🔗 Shorten a Web Page", cfg.Widgets[0].Title)
	assert.Equal(t, "Enter a long URL here", cfg.Widgets[0].Placeholder)
	assert.Equal(t, "Enter an image URL here", cfg.Widgets[1].Placeholder)
	assert.Equal(t, "Enter a video URL here", cfg.Widgets[2].Placeholder)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad scheme", func(c *Config) { c.API.BaseURL = "ftp://host" }, "api.base_url"},
		{"no host", func(c *Config) { c.API.PublicURL = "http://" }, "api.public_url"},
		{"zero timeout", func(c *Config) { c.API.Timeout = Duration{} }, "api.timeout"},
		{"negative rate", func(c *Config) { c.API.RateLimit = -1 }, "api.rate_limit"},
		{"no widgets", func(c *Config) { c.Widgets = nil }, "widgets"},
		{"blank title", func(c *Config) { c.Widgets[1].Title = "  " }, "widgets[1].title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = "nope"
	cfg.API.RateLimit = -2

	err := cfg.Validate()
	var errs ValidateErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().API, cfg.API)
	assert.Len(t, cfg.Widgets, 3)
}

func TestLoad_TOML(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".linkzip", "config.toml"), `
[api]
base_url = "http://api.internal:9000/"
public_url = "https://lz.example"
timeout = "3s"
rate_limit = 0.0

[[widgets]]
title = "Docs"
placeholder = "Paste a docs link"
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://api.internal:9000/", cfg.API.BaseURL)
	assert.Equal(t, "https://lz.example", cfg.API.PublicURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout.Duration)
	assert.Zero(t, cfg.API.RateLimit)
	require.Len(t, cfg.Widgets, 1)
	assert.Equal(t, "Docs", cfg.Widgets[0].Title)

	cc := cfg.ClientConfig()
	assert.Equal(t, "http://api.internal:9000/", cc.BaseURL)
	assert.Equal(t, 3*time.Second, cc.Timeout)
}

func TestLoad_JSONFallback(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".linkzip", "config.json"),
		`{"api":{"base_url":"https://short.example","timeout":"750ms"}}`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://short.example", cfg.API.BaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.API.Timeout.Duration)
	assert.Len(t, cfg.Widgets, 3)
}

func TestLoad_BrokenFileFallsBackToDefaults(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".linkzip", "config.toml"), "[api\nbase_url =")

	cfg, err := Load()
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Contains(t, err.Error(), "TOML")
	assert.Equal(t, Default().API.BaseURL, cfg.API.BaseURL)
}

func TestLoad_InvalidConfigIsFatal(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".linkzip", "config.toml"), "[api]\nrate_limit = -5.0\n")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, IsValidationError(err))
}

func TestLoadFromPath(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "lz.toml")
	writeFile(t, tomlPath, "debug = true\n[api]\nbase_url = \"http://127.0.0.1:8080\"\n")
	cfg, err := LoadFromPath(tomlPath)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.API.PublicURL, "public_url follows base_url when unset")

	jsonPath := filepath.Join(dir, "lz.JSON")
	writeFile(t, jsonPath, `{"widgets":[{"title":"One","placeholder":"p"}]}`)
	cfg, err = LoadFromPath(jsonPath)
	require.NoError(t, err)
	require.Len(t, cfg.Widgets, 1)

	_, err = LoadFromPath(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	unknown := filepath.Join(dir, "unknown.toml")
	writeFile(t, unknown, "[api]\nbase_uri = \"http://x\"\n")
	_, err = LoadFromPath(unknown)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.base_uri")
}

func TestApplyEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("LINKZIP_BASE_URL", "https://env.example")
	t.Setenv("LINKZIP_TIMEOUT", "2s")
	t.Setenv("LINKZIP_RATE_LIMIT", "0.5")
	t.Setenv("LINKZIP_DEBUG", "true")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnvOverrides())
	assert.Equal(t, "https://env.example", cfg.API.BaseURL)
	assert.Equal(t, "http://localhost:8000", cfg.API.PublicURL, "unset variables keep their value")
	assert.Equal(t, 2*time.Second, cfg.API.Timeout.Duration)
	assert.Equal(t, 0.5, cfg.API.RateLimit)
	assert.True(t, cfg.Debug)
}

func TestApplyEnvOverrides_BadValue(t *testing.T) {
	isolate(t)
	t.Setenv("LINKZIP_TIMEOUT", "soon")

	err := Default().ApplyEnvOverrides()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestConfig_String(t *testing.T) {
	out := Default().String()
	assert.Contains(t, out, `base_url = "http://localhost:8000"`)
	assert.Contains(t, out, `timeout = "10s"`)
	assert.Contains(t, out, "[[widgets]]")
}
