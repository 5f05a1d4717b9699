// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/jeranaias/linkzip/internal/shortener"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete linkzip configuration.
type Config struct {
	// API configuration
	API APIConfig `toml:"api" json:"api"`

	// Widgets mounted on the page, top to bottom
	Widgets []WidgetConfig `toml:"widgets" json:"widgets"`

	// Debug writes diagnostics to linkzip-debug.log (TUI) or stderr (CLI)
	Debug bool `toml:"debug" json:"debug"`
}

// APIConfig contains the shortening service configuration.
type APIConfig struct {
	// BaseURL is where requests are sent
	BaseURL string `toml:"base_url" json:"base_url"`
	// PublicURL prefixes short keys in displayed links
	PublicURL string `toml:"public_url" json:"public_url"`
	// Timeout bounds one request, e.g. "10s"
	Timeout Duration `toml:"timeout" json:"timeout"`
	// RateLimit is requests per second across all widgets; 0 disables it
	RateLimit float64 `toml:"rate_limit" json:"rate_limit"`
}

// WidgetConfig describes one submission widget.
type WidgetConfig struct {
	Title       string `toml:"title" json:"title"`
	Placeholder string `toml:"placeholder" json:"placeholder"`
}

// Duration is a time.Duration written as a string ("10s", "1m30s") in
// TOML, JSON and environment variables alike.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultWidgets are the three widgets of the LinkZip page.
func DefaultWidgets() []WidgetConfig {
	return []WidgetConfig{
		{Title: "🔗 Shorten a Web Page", Placeholder: "Enter a long URL here"},
		{Title: "🖼️ Shorten an Image URL", Placeholder: "Enter an image URL here"},
		{Title: "🎬 Shorten a Video URL", Placeholder: "Enter a video URL here"},
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   shortener.DefaultBaseURL,
			PublicURL: shortener.DefaultBaseURL,
			Timeout:   Duration{shortener.DefaultTimeout},
			RateLimit: shortener.DefaultRateLimit,
		},
		Widgets: DefaultWidgets(),
	}
}

// =============================================================================
// FILE PATHS
// =============================================================================

// ConfigDir returns the linkzip configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".linkzip"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load loads configuration from the default locations.
//
// If a config file exists but cannot be decoded, the defaults are returned
// together with the decode error so the caller can warn and carry on. An
// invalid final configuration is always an error.
func Load() (*Config, error) {
	var loadErr error

	candidates := []struct {
		path func() (string, error)
		load func(*Config, string) error
		kind string
	}{
		{ConfigPathTOML, LoadTOML, "TOML"},
		{ConfigPathJSON, LoadJSON, "JSON"},
	}

	for _, c := range candidates {
		path, err := c.path()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		cfg := loadBase()
		if err := c.load(cfg, path); err != nil {
			loadErr = fmt.Errorf("failed to load %s config: %w", c.kind, err)
			continue
		}
		if err := cfg.finish(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg := loadBase()
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// LoadFromPath loads configuration from an explicit file. The format is
// picked by extension; anything but .json is read as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := loadBase()

	if strings.HasSuffix(strings.ToLower(path), ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadBase is what files are decoded over. public_url starts unset so that
// it follows whichever base_url the file or environment ends up choosing.
func loadBase() *Config {
	cfg := Default()
	cfg.API.PublicURL = ""
	return cfg
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// finish applies env overrides, fills defaults and validates.
func (c *Config) finish() error {
	if err := c.ApplyEnvOverrides(); err != nil {
		return err
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ApplyEnvOverrides overrides settings from LINKZIP_* environment variables:
//   - LINKZIP_BASE_URL: api.base_url
//   - LINKZIP_PUBLIC_URL: api.public_url
//   - LINKZIP_TIMEOUT: api.timeout (Go duration, e.g. "5s")
//   - LINKZIP_RATE_LIMIT: api.rate_limit
//   - LINKZIP_DEBUG: debug
//
// Unset variables leave the current value alone.
func (c *Config) ApplyEnvOverrides() error {
	o := envOverrides{
		BaseURL:   c.API.BaseURL,
		PublicURL: c.API.PublicURL,
		Timeout:   c.API.Timeout,
		RateLimit: c.API.RateLimit,
		Debug:     c.Debug,
	}
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	c.API.BaseURL = o.BaseURL
	c.API.PublicURL = o.PublicURL
	c.API.Timeout = o.Timeout
	c.API.RateLimit = o.RateLimit
	c.Debug = o.Debug
	return nil
}

// envOverrides holds the settings that can come from the environment.
// Fields start at the current values; env.Parse only touches set variables.
type envOverrides struct {
	BaseURL   string   `env:"LINKZIP_BASE_URL"`
	PublicURL string   `env:"LINKZIP_PUBLIC_URL"`
	Timeout   Duration `env:"LINKZIP_TIMEOUT"`
	RateLimit float64  `env:"LINKZIP_RATE_LIMIT"`
	Debug     bool     `env:"LINKZIP_DEBUG"`
}

// SetDefaults fills zero values with defaults.
func (c *Config) SetDefaults() {
	def := Default()

	c.API.BaseURL = strings.TrimSpace(c.API.BaseURL)
	if c.API.BaseURL == "" {
		c.API.BaseURL = def.API.BaseURL
	}
	c.API.PublicURL = strings.TrimSpace(c.API.PublicURL)
	if c.API.PublicURL == "" {
		c.API.PublicURL = c.API.BaseURL
	}
	if c.API.Timeout.Duration == 0 {
		c.API.Timeout = def.API.Timeout
	}
	if len(c.Widgets) == 0 {
		c.Widgets = def.Widgets
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if err := validateHTTPURL(c.API.BaseURL); err != nil {
		errs = append(errs, ValidationError{Field: "api.base_url", Message: err.Error()})
	}
	if err := validateHTTPURL(c.API.PublicURL); err != nil {
		errs = append(errs, ValidationError{Field: "api.public_url", Message: err.Error()})
	}
	if c.API.Timeout.Duration <= 0 {
		errs = append(errs, ValidationError{
			Field:   "api.timeout",
			Message: fmt.Sprintf("must be positive, got %s", c.API.Timeout),
		})
	}
	if c.API.RateLimit < 0 {
		errs = append(errs, ValidationError{
			Field:   "api.rate_limit",
			Message: "cannot be negative",
		})
	}

	if len(c.Widgets) == 0 {
		errs = append(errs, ValidationError{Field: "widgets", Message: "at least one widget is required"})
	}
	for i, w := range c.Widgets {
		if strings.TrimSpace(w.Title) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("widgets[%d].title", i),
				Message: "cannot be empty",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", raw)
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

// ClientConfig builds the API client configuration.
func (c *Config) ClientConfig() *shortener.ClientConfig {
	return &shortener.ClientConfig{
		BaseURL:   c.API.BaseURL,
		PublicURL: c.API.PublicURL,
		Timeout:   c.API.Timeout.Duration,
		RateLimit: c.API.RateLimit,
	}
}

// String renders the effective configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return buf.String()
}

// IsValidationError reports whether err came from Validate.
func IsValidationError(err error) bool {
	var errs ValidateErrors
	return errors.As(err, &errs)
}
