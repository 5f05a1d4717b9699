// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"

	"github.com/jeranaias/linkzip/internal/shortener"
)

// Shortener is the part of the API client a widget depends on.
// *shortener.Client satisfies it.
type Shortener interface {
	Shorten(ctx context.Context, originalURL string) (*shortener.URLInfo, error)
	ShortURL(key string) string
}

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// ErrClipboardUnsupported is returned when no clipboard utility is available
// (for example xclip/xsel missing on a headless Linux box).
var ErrClipboardUnsupported = errors.New("clipboard: no supported clipboard utility found")

// SystemClipboard is the operating system clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
