// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package widget implements the URL submission widget.
//
// A widget lets the user type a long URL, submit it to the shortening API,
// see the shortened link or an error, and copy the link to the clipboard.
// Several widgets are mounted side by side; each owns its state and nothing
// is shared between them except the immutable title and placeholder they
// were created with.
//
// # Key Types
//
//   - State: the submission/result/copy state machine, free of any UI code
//   - Widget: a Bubble Tea component that renders one State
//   - Shortener: the subset of the API client a widget needs
//   - Clipboard: the text clipboard a widget writes to
//
// # States
//
// The phase is derived from the fields, never stored:
//
//	Idle          no short URL and no error
//	Success       a short URL is shown
//	Failed        an error message is shown
//	CopyConfirmed Success while the copy feedback window is open
//
// # Stale results
//
// Each submission gets a generation number. A response that arrives after a
// newer submission started (or after the widget unmounted) is dropped, so a
// slow first request can never overwrite a faster second one. The copy
// feedback reset works the same way with its own sequence number.
package widget
