// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jeranaias/linkzip/internal/ui/styles"
	"github.com/jeranaias/linkzip/internal/util"
)

// CopyFeedbackDuration is how long the copy confirmation stays visible.
const CopyFeedbackDuration = 2000 * time.Millisecond

const (
	submitLabel = "Shorten"
	minWidth    = 30
)

// =============================================================================
// WIDGET COMPONENT
// =============================================================================

// Options configures a new Widget.
type Options struct {
	// Title is shown above the input. Immutable after creation.
	Title string

	// Placeholder is the hint shown in the empty input. Immutable after creation.
	Placeholder string

	// Clipboard receives copied links (default: SystemClipboard)
	Clipboard Clipboard

	// Theme used for rendering (default: styles.NewTheme())
	Theme *styles.Theme
}

// Widget is one URL submission card.
type Widget struct {
	id          string
	title       string
	placeholder string

	state   *State
	input   textinput.Model
	spinner spinner.Model

	client    Shortener
	clipboard Clipboard
	theme     *styles.Theme

	// feedbackDuration is CopyFeedbackDuration outside tests.
	feedbackDuration time.Duration

	// ctx is cancelled on unmount so in-flight requests stop early.
	ctx    context.Context
	cancel context.CancelFunc

	width   int
	focused bool
}

// New creates a widget that submits through client.
func New(client Shortener, opts Options) *Widget {
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard{}
	}
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme()
	}

	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	// Unlimited: a cut-off URL would be shortened to the wrong target.
	ti.CharLimit = 0
	ti.Prompt = "> "
	ti.PromptStyle = opts.Theme.InputPrompt
	ti.TextStyle = opts.Theme.InputText
	ti.PlaceholderStyle = opts.Theme.InputPlaceholder
	ti.Cursor.Style = opts.Theme.InputCursor

	sp := spinner.New(spinner.WithSpinner(styles.PendingSpinner.Spinner()))
	sp.Style = opts.Theme.Pending

	ctx, cancel := context.WithCancel(context.Background())

	w := &Widget{
		id:               uuid.NewString(),
		title:            opts.Title,
		placeholder:      opts.Placeholder,
		state:            NewState(),
		input:            ti,
		spinner:          sp,
		client:           client,
		clipboard:        opts.Clipboard,
		theme:            opts.Theme,
		feedbackDuration: CopyFeedbackDuration,
		ctx:              ctx,
		cancel:           cancel,
	}
	w.SetWidth(opts.Theme.CardWidth())
	return w
}

// ID returns the widget's unique instance ID.
func (w *Widget) ID() string { return w.id }

// Title returns the title the widget was created with.
func (w *Widget) Title() string { return w.title }

// Placeholder returns the placeholder the widget was created with.
func (w *Widget) Placeholder() string { return w.placeholder }

// State exposes the widget's state for reading.
func (w *Widget) State() *State { return w.state }

// Focus focuses the input.
func (w *Widget) Focus() tea.Cmd {
	if !w.state.Mounted() {
		return nil
	}
	w.focused = true
	return w.input.Focus()
}

// Blur removes focus from the input.
func (w *Widget) Blur() {
	w.focused = false
	w.input.Blur()
}

// Focused returns whether the widget has focus.
func (w *Widget) Focused() bool {
	return w.focused
}

// SetWidth sets the card's outer width.
func (w *Widget) SetWidth(width int) {
	if width < minWidth {
		width = minWidth
	}
	w.width = width

	// border + padding, prompt, a gap and the button
	inner := width - w.theme.CardFocused.GetHorizontalFrameSize()
	inputWidth := inner - lipgloss.Width(w.input.Prompt) - 1 - lipgloss.Width(w.renderButton())
	if inputWidth < 10 {
		inputWidth = 10
	}
	w.input.Width = inputWidth
}

// SetValue replaces the input text.
func (w *Widget) SetValue(text string) {
	w.input.SetValue(text)
	w.state.UpdateInput(w.input.Value())
}

// Unmount tears the widget down. Nothing that was in flight may touch it
// afterwards.
func (w *Widget) Unmount() {
	w.state.Unmount()
	w.cancel()
	w.Blur()
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Submit sends the current input for shortening. It returns nil when the
// input is empty, in which case the error is already showing.
func (w *Widget) Submit() tea.Cmd {
	if !w.state.Mounted() {
		return nil
	}
	sub, ok := w.state.BeginSubmit()
	if !ok {
		return nil
	}

	ctx, client, id := w.ctx, w.client, w.id
	request := func() tea.Msg {
		short, err := shorten(ctx, client, sub.URL)
		return SubmitResultMsg{WidgetID: id, Generation: sub.Generation, ShortURL: short, Err: err}
	}
	return tea.Batch(request, w.spinner.Tick)
}

// Copy writes the short URL to the clipboard. It returns nil when there is
// nothing to copy.
func (w *Widget) Copy() tea.Cmd {
	text, ok := w.state.BeginCopy()
	if !ok {
		return nil
	}
	cb, id := w.clipboard, w.id
	return func() tea.Msg {
		return CopyResultMsg{WidgetID: id, Text: text, Err: cb.WriteAll(text)}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages addressed to this widget and key input while
// focused. Submit and copy keys are bound by the page, not here.
func (w *Widget) Update(msg tea.Msg) (*Widget, tea.Cmd) {
	switch msg := msg.(type) {
	case SubmitResultMsg:
		if msg.WidgetID == w.id {
			w.state.ApplyResult(msg.Generation, msg.ShortURL, msg.Err)
		}
		return w, nil

	case CopyResultMsg:
		if msg.WidgetID != w.id {
			return w, nil
		}
		if msg.Err != nil {
			log.Printf("Failed to copy: %v", msg.Err)
			return w, nil
		}
		seq, ok := w.state.CopySucceeded(msg.Text)
		if !ok {
			return w, nil
		}
		id, d := w.id, w.feedbackDuration
		return w, tea.Tick(d, func(time.Time) tea.Msg {
			return copyResetMsg{widgetID: id, seq: seq}
		})

	case copyResetMsg:
		if msg.widgetID == w.id {
			w.state.ResetCopy(msg.seq)
		}
		return w, nil

	case spinner.TickMsg:
		// Let the tick chain die once nothing is pending.
		if !w.state.Pending() {
			return w, nil
		}
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return w, cmd

	case tea.KeyMsg:
		if !w.focused || !w.state.Mounted() {
			return w, nil
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		w.state.UpdateInput(w.input.Value())
		return w, cmd
	}

	if w.focused {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}
	return w, nil
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the card.
func (w *Widget) View() string {
	t := w.theme
	card := t.Card
	if w.focused {
		card = t.CardFocused
	}
	inner := w.width - card.GetHorizontalFrameSize()

	var b strings.Builder
	b.WriteString(t.CardTitle.Render(util.TruncateWidth(w.title, inner)))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, w.input.View(), " ", w.renderButton()))

	switch {
	case w.state.Pending():
		b.WriteString("\n")
		b.WriteString(t.Pending.Render(w.spinner.View() + " Shortening..."))
	case w.state.ShortURL() != "":
		b.WriteString("\n")
		b.WriteString(w.renderResult(inner))
	case w.state.ErrorMessage() != "":
		b.WriteString("\n")
		b.WriteString(w.renderError(inner))
	}

	return card.Width(inner + card.GetHorizontalPadding()).Render(b.String())
}

func (w *Widget) renderButton() string {
	if w.focused {
		return w.theme.ButtonFocused.Render(submitLabel)
	}
	return w.theme.Button.Render(submitLabel)
}

func (w *Widget) renderResult(inner int) string {
	t := w.theme
	copyLabel := t.CopyButton.Render(styles.StatusIndicators.Copy)
	if w.state.CopyFeedbackActive() {
		copyLabel = t.CopiedButton.Render(styles.StatusIndicators.Copied)
	}

	linkWidth := inner - t.Result.GetHorizontalFrameSize() - lipgloss.Width(copyLabel) - 1
	link := t.Link.Render(util.TruncateMiddle(w.state.ShortURL(), linkWidth))
	return t.Result.Render(link + " " + copyLabel)
}

func (w *Widget) renderError(inner int) string {
	t := w.theme
	width := inner - t.ErrorBlock.GetHorizontalBorderSize()
	if width < 1 {
		width = 1
	}
	return t.ErrorBlock.Width(width).Render(styles.StatusIndicators.Error + " " + w.state.ErrorMessage())
}
