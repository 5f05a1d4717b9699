// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"github.com/mattn/go-runewidth"
)

// UNICODE: Width-aware truncation keeps multi-byte and double-width
// characters intact.

const ellipsis = "…"

// StringWidth returns the display width of a string.
// Double-width characters (CJK, most emoji) count as 2 columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth truncates a string to a maximum display width.
// If the string is truncated, an ellipsis takes the last column.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, ellipsis)
}

// TruncateMiddle shortens s to maxWidth columns by dropping runes from the
// middle, so a URL keeps its scheme/host and its final path segment.
func TruncateMiddle(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 2 {
		return TruncateWidth(s, maxWidth)
	}

	budget := maxWidth - runewidth.StringWidth(ellipsis)
	headWidth := (budget + 1) / 2
	tailWidth := budget - headWidth

	head := runewidth.Truncate(s, headWidth, "")

	runes := []rune(s)
	tailStart := len(runes)
	width := 0
	for i := len(runes) - 1; i >= 0; i-- {
		w := runewidth.RuneWidth(runes[i])
		if width+w > tailWidth {
			break
		}
		width += w
		tailStart = i
	}

	return head + ellipsis + string(runes[tailStart:])
}
