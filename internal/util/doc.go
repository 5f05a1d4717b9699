// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides display helpers shared by the TUI and the CLI.
//
// # Key Functions
//
//   - TruncateWidth: cut a string to a display width with an ellipsis
//   - TruncateMiddle: keep both ends of a long URL visible
//   - StringWidth: display width of a string (wide runes count as 2)
//
// # Usage
//
//	// Fit a long link into a card
//	display := util.TruncateMiddle(shortURL, 40)
package util
