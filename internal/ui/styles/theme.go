// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the linkzip TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// PAGE STYLES
	// ==========================================================================

	App            lipgloss.Style
	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	Help           lipgloss.Style

	// ==========================================================================
	// CARD STYLES (one card per widget instance)
	// ==========================================================================

	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardTitle   lipgloss.Style

	// ==========================================================================
	// INPUT STYLES
	// ==========================================================================

	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	InputCursor      lipgloss.Style
	Button           lipgloss.Style
	ButtonFocused    lipgloss.Style

	// ==========================================================================
	// RESULT AND ERROR BLOCKS
	// ==========================================================================

	Result       lipgloss.Style
	Link         lipgloss.Style
	CopyButton   lipgloss.Style
	CopiedButton lipgloss.Style
	ErrorBlock   lipgloss.Style
	Pending      lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle().Padding(1, 2)

	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 2).
		MarginBottom(1).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.Help = lipgloss.NewStyle().
		Foreground(TextMuted).
		MarginTop(1)

	// Cards
	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1).
		MarginBottom(1)

	t.CardFocused = t.Card.
		BorderForeground(Purple)

	t.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		MarginBottom(1)

	// Input
	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.InputCursor = lipgloss.NewStyle().
		Foreground(Cyan)

	t.Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ButtonFocused = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Purple).
		Bold(true).
		Padding(0, 1)

	// Result / error
	t.Result = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Emerald).
		PaddingLeft(1).
		MarginTop(1)

	t.Link = lipgloss.NewStyle().
		Foreground(LinkColor).
		Underline(true)

	t.CopyButton = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.CopiedButton = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ErrorBlock = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Rose).
		Foreground(Rose).
		PaddingLeft(1).
		MarginTop(1)

	t.Pending = lipgloss.NewStyle().
		Foreground(Amber)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// CardWidth returns the outer width available to one card.
func (t *Theme) CardWidth() int {
	w := t.Width - t.App.GetHorizontalFrameSize()
	if w > 96 {
		w = 96
	}
	if w < 30 {
		w = 30
	}
	return w
}
