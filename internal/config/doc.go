// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for linkzip.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation. Configuration is read once
// at startup and never written back.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - APIConfig: Shortening service address, timeout and rate limit
//   - WidgetConfig: Title and placeholder of one widget
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (LINKZIP_*)
//   - ~/.linkzip/config.toml
//   - ~/.linkzip/config.json
//   - Built-in defaults
//
// # Example
//
//	[api]
//	base_url = "http://localhost:8000"
//	public_url = "https://lz.example"
//	timeout = "10s"
//	rate_limit = 5.0
//
//	[[widgets]]
//	title = "🔗 Shorten a Web Page"
//	placeholder = "Enter a long URL here"
package config
