// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// info.go - Lookup of what a short key points to.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// HandleInfo prints the original URL behind a short key.
func HandleInfo(ctx context.Context, rt *Runtime, args Args) error {
	key := strings.TrimSpace(args.Target)
	if key == "" {
		return NewUsageError("info needs a short key", "linkzip info Xy12ab")
	}

	info, err := rt.Client.Info(ctx, key)
	if err != nil {
		return err
	}
	data := InfoData{
		ShortKey:    info.ShortKey,
		OriginalURL: info.OriginalURL,
		ShortURL:    rt.Client.ShortURL(info.ShortKey),
	}

	if args.JSON {
		return NewJSONResponse("info", data).Print(rt.Stdout)
	}
	if rt.Interactive {
		fmt.Fprint(rt.Stdout, renderMarkdown(infoMarkdown(data), GetTerminalWidth()))
		return nil
	}

	fmt.Fprintf(rt.Stdout, "%s%s\n", RenderLabel("Short key:"), data.ShortKey)
	fmt.Fprintf(rt.Stdout, "%s%s\n", RenderLabel("Original URL:"), data.OriginalURL)
	fmt.Fprintf(rt.Stdout, "%s%s\n", RenderLabel("Short URL:"), data.ShortURL)
	return nil
}

func infoMarkdown(d InfoData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# `%s`\n\n", d.ShortKey)
	fmt.Fprintf(&b, "- **Original URL:** %s\n", d.OriginalURL)
	fmt.Fprintf(&b, "- **Short URL:** %s\n", d.ShortURL)
	return b.String()
}

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// renderMarkdown renders markdown for terminal display.
// Returns the original content if rendering fails.
func renderMarkdown(content string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return out
}
