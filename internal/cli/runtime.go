// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jeranaias/linkzip/internal/config"
	"github.com/jeranaias/linkzip/internal/shortener"
	"github.com/jeranaias/linkzip/internal/widget"
)

// Runtime bundles what every command needs.
type Runtime struct {
	Config    *config.Config
	Client    *shortener.Client
	Clipboard widget.Clipboard

	Stdout io.Writer
	Stderr io.Writer

	// Interactive is true when stdout is a terminal
	Interactive bool
}

// NewRuntime loads configuration, applies the global flags and builds the
// API client.
func NewRuntime(args Args) (*Runtime, error) {
	cfg, err := LoadConfig(args, os.Stderr)
	if err != nil {
		return nil, err
	}

	return &Runtime{
		Config:      cfg,
		Client:      shortener.NewClientWithConfig(cfg.ClientConfig()),
		Clipboard:   widget.SystemClipboard{},
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: IsStdoutTTY(),
	}, nil
}

// LoadConfig loads --config or the default locations and applies the
// global flag overrides. Warnings go to warn.
func LoadConfig(args Args, warn io.Writer) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
		if err != nil {
			return nil, &ConfigError{Err: err}
		}
	} else {
		cfg, err = config.Load()
		if cfg == nil {
			return nil, &ConfigError{Err: err}
		}
		if err != nil {
			fmt.Fprintf(warn, "Warning: %v (using defaults)\n", err)
		}
	}

	if args.BaseURL != "" {
		// A public URL that only mirrored the old base follows the new one.
		if cfg.API.PublicURL == cfg.API.BaseURL {
			cfg.API.PublicURL = args.BaseURL
		}
		cfg.API.BaseURL = args.BaseURL
		if err := cfg.Validate(); err != nil {
			return nil, &ConfigError{Err: err}
		}
	}
	if args.Debug {
		cfg.Debug = true
	}

	return cfg, nil
}

// ConfigureLogging sends the standard logger to w when debug is on and
// discards it otherwise.
func ConfigureLogging(debug bool, w io.Writer) {
	if !debug {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(w)
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	log.SetPrefix("linkzip ")
}
