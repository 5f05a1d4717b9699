// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

// =============================================================================
// MESSAGES
// =============================================================================

// Every message carries the ID of the widget that issued it. The page routes
// messages to all widgets and each one ignores IDs that are not its own.

// SubmitResultMsg carries the outcome of one shorten request.
type SubmitResultMsg struct {
	WidgetID   string
	Generation uint64
	ShortURL   string
	Err        error
}

// CopyResultMsg reports whether the clipboard write succeeded.
type CopyResultMsg struct {
	WidgetID string
	Text     string
	Err      error
}

// copyResetMsg closes the copy feedback window opened with seq.
type copyResetMsg struct {
	widgetID string
	seq      uint64
}
