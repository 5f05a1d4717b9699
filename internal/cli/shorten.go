// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// shorten.go - One-shot shortening from the command line.
package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jeranaias/linkzip/internal/ui/styles"
	"github.com/jeranaias/linkzip/internal/widget"
)

// HandleShorten shortens args.Target and prints the short URL.
//
// It drives the same state machine as a TUI widget, so validation, error
// messages and result handling are identical. On success only the URL is
// written to stdout, which keeps the command pipe-friendly.
func HandleShorten(ctx context.Context, rt *Runtime, args Args) error {
	state := widget.NewState()
	state.UpdateInput(args.Target)

	if state.Submit(ctx, rt.Client) != widget.PhaseSuccess {
		return state.Err()
	}
	short := state.ShortURL()

	copied := false
	if args.Copy {
		text, _ := state.BeginCopy()
		if err := rt.Clipboard.WriteAll(text); err != nil {
			log.Printf("Failed to copy: %v", err)
			fmt.Fprintln(rt.Stderr, DimStyle.Render("(could not copy to clipboard)"))
		} else {
			copied = true
		}
	}

	if args.JSON {
		return NewJSONResponse("shorten", ShortenData{
			OriginalURL: strings.TrimSpace(state.OriginalURL()),
			ShortURL:    short,
			Copied:      copied,
		}).Print(rt.Stdout)
	}

	fmt.Fprintln(rt.Stdout, short)
	if copied && rt.Interactive {
		fmt.Fprintln(rt.Stderr, styles.RenderSuccess("Copied!"))
	}
	return nil
}
