// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app provides the LinkZip page: a header and a column of
// independent URL submission widgets.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/linkzip/internal/config"
	"github.com/jeranaias/linkzip/internal/shortener"
	"github.com/jeranaias/linkzip/internal/ui/styles"
	"github.com/jeranaias/linkzip/internal/widget"
)

const (
	pageTitle   = "LinkZip"
	pageTagline = "The one-stop solution for your URL shortening needs."
)

// Options configures the page.
type Options struct {
	Theme     *styles.Theme
	Client    widget.Shortener
	Clipboard widget.Clipboard
	// Widgets to mount; config.DefaultWidgets() when empty
	Widgets []config.WidgetConfig
}

// Model is the Bubble Tea model for the whole page.
type Model struct {
	theme   *styles.Theme
	keys    KeyMap
	help    help.Model
	widgets []*widget.Widget

	focus    int
	width    int
	height   int
	quitting bool
}

// New creates the page and mounts its widgets. Widgets share nothing but
// the HTTP transport.
func New(opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme()
	}
	cards := opts.Widgets
	if len(cards) == 0 {
		cards = config.DefaultWidgets()
	}

	widgets := make([]*widget.Widget, 0, len(cards))
	for _, wc := range cards {
		widgets = append(widgets, widget.New(clientFor(opts.Client), widget.Options{
			Title:       wc.Title,
			Placeholder: wc.Placeholder,
			Clipboard:   opts.Clipboard,
			Theme:       opts.Theme,
		}))
	}

	h := help.New()
	h.Styles.ShortKey = opts.Theme.InputPrompt
	h.Styles.FullKey = opts.Theme.InputPrompt
	h.Styles.ShortDesc = opts.Theme.Help
	h.Styles.FullDesc = opts.Theme.Help

	return Model{
		theme:   opts.Theme,
		keys:    DefaultKeyMap(),
		help:    h,
		widgets: widgets,
	}
}

// clientFor gives an API client its own throttle so one widget's requests
// never queue behind another's.
func clientFor(c widget.Shortener) widget.Shortener {
	if sc, ok := c.(*shortener.Client); ok {
		return sc.Clone()
	}
	return c
}

// Widgets returns the mounted widgets in page order.
func (m Model) Widgets() []*widget.Widget {
	return m.widgets
}

// Focused returns the index of the focused widget.
func (m Model) Focused() int {
	return m.focus
}

// Init focuses the first widget.
func (m Model) Init() tea.Cmd {
	if len(m.widgets) == 0 {
		return nil
	}
	return tea.Batch(m.widgets[m.focus].Focus(), textinput.Blink)
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles page keys and routes everything else to the widgets.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, m.broadcast(msg)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.theme.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	for _, w := range m.widgets {
		w.SetWidth(m.theme.CardWidth())
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.unmountAll()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if len(m.widgets) == 0 {
		return m, nil
	}
	focused := m.widgets[m.focus]

	switch {
	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.Submit):
		return m, focused.Submit()
	case key.Matches(msg, m.keys.Copy):
		return m, focused.Copy()
	}

	_, cmd := focused.Update(msg)
	return m, cmd
}

// broadcast hands msg to every widget. Each widget drops messages that
// carry another widget's ID, so results always land where they started.
func (m Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.widgets))
	for _, w := range m.widgets {
		_, cmd := w.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	n := len(m.widgets)
	m.widgets[m.focus].Blur()
	m.focus = ((m.focus+delta)%n + n) % n
	return m.widgets[m.focus].Focus()
}

func (m *Model) unmountAll() {
	for _, w := range m.widgets {
		w.Unmount()
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the page.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	t := m.theme
	header := t.Header.Width(t.CardWidth() - t.Header.GetHorizontalBorderSize()).Render(
		t.HeaderTitle.Render(pageTitle) + "\n" + t.HeaderSubtitle.Render(pageTagline),
	)

	parts := make([]string, 0, len(m.widgets)+2)
	parts = append(parts, header)
	for _, w := range m.widgets {
		parts = append(parts, w.View())
	}
	parts = append(parts, t.Help.Render(m.help.View(m.keys)))

	return t.App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
