// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"
	"testing"
)

func TestStringWidth(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"hello", 5},
		{"日本", 4},
		{"a日b", 4},
	}

	for _, tt := range tests {
		if got := StringWidth(tt.input); got != tt.expected {
			t.Errorf("StringWidth(%q) = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 6, "hello…"},
		{"zero", "hello", 0, ""},
		{"negative", "hello", -1, ""},
		{"wide runes", "日本語テキスト", 5, "日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateWidth(tt.input, tt.maxWidth)
			if got != tt.expected {
				t.Errorf("TruncateWidth(%q, %d) = %q, expected %q", tt.input, tt.maxWidth, got, tt.expected)
			}
			if StringWidth(got) > tt.maxWidth && tt.maxWidth > 0 {
				t.Errorf("result %q is wider than %d", got, tt.maxWidth)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	url := "https://example.com/a/very/long/path/to/some/resource.html"

	if got := TruncateMiddle(url, 200); got != url {
		t.Errorf("TruncateMiddle should not change a string that fits, got %q", got)
	}

	got := TruncateMiddle(url, 21)
	if StringWidth(got) > 21 {
		t.Errorf("TruncateMiddle(%q, 21) = %q is %d wide", url, got, StringWidth(got))
	}
	if !strings.HasPrefix(got, "https://ex") {
		t.Errorf("expected the scheme and host to survive, got %q", got)
	}
	if !strings.HasSuffix(got, "e.html") {
		t.Errorf("expected the tail to survive, got %q", got)
	}
	if !strings.Contains(got, "…") {
		t.Errorf("expected an ellipsis, got %q", got)
	}

	if got := TruncateMiddle(url, 0); got != "" {
		t.Errorf("TruncateMiddle with zero width = %q, expected empty", got)
	}
	if got := TruncateMiddle(url, 2); StringWidth(got) > 2 {
		t.Errorf("TruncateMiddle with width 2 = %q", got)
	}
}
