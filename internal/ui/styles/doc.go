// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the linkzip TUI.

# Color System (colors.go)

Accent colors carry meaning and are never used decoratively:

  - Purple - brand, focused card
  - Emerald - a shortened link and the copy confirmation
  - Rose - the error block
  - Amber - a submission in flight

Every status color is paired with an ASCII indicator from StatusIndicators so
that state stays readable on monochrome terminals.

# Theme (theme.go)

NewTheme detects the terminal color profile with termenv and builds the
lipgloss styles for the page header, the widget cards, and their result and
error blocks.
*/
package styles
