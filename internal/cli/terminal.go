// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - What the linkzip CLI may assume about its terminal.
//
// The TUI needs a terminal on stdin and stdout. The info command wraps
// markdown to the stdout width. Colors follow NO_COLOR and FORCE_COLOR.

package cli

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Widths used by info when stdout cannot be measured or is very narrow.
const (
	fallbackWidth = 80
	narrowestWrap = 40
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// IsStdoutTTY reports whether results go to a terminal rather than a pipe.
func IsStdoutTTY() bool {
	return isTerminal(os.Stdout)
}

// GetTerminalWidth is the column count info wraps markdown to.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	switch {
	case err != nil, width <= 0:
		return fallbackWidth
	case width < narrowestWrap:
		return narrowestWrap
	}
	return width
}

var (
	colorsOnce sync.Once
	colorsOn   bool
)

// ColorsEnabled is decided once per process.
func ColorsEnabled() bool {
	colorsOnce.Do(func() {
		colorsOn = decideColors(os.Getenv("NO_COLOR"), os.Getenv("FORCE_COLOR"), IsStdoutTTY())
	})
	return colorsOn
}

// decideColors: NO_COLOR wins over FORCE_COLOR, which wins over the TTY check.
func decideColors(noColor, forceColor string, stdoutTTY bool) bool {
	if noColor != "" {
		return false
	}
	return forceColor != "" || stdoutTTY
}

// GetColorProfile is the lipgloss profile for CLI output; Ascii strips styling.
func GetColorProfile() termenv.Profile {
	if ColorsEnabled() {
		return termenv.ColorProfile()
	}
	return termenv.Ascii
}

// RequiresTTY fails with a *TTYRequiredError unless stdin and stdout are both
// terminals.
func RequiresTTY(operation string) error {
	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		return nil
	}
	return &TTYRequiredError{Operation: operation}
}

// TTYRequiredError points the user at the non-interactive shorten command.
type TTYRequiredError struct {
	Operation string
}

func (e *TTYRequiredError) Error() string {
	if e.Operation == "" {
		return "not a terminal; interactive mode not available"
	}
	return "not a terminal; cannot " + e.Operation + " (try 'linkzip shorten <url>' instead)"
}
