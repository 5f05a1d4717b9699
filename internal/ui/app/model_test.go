// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/linkzip/internal/config"
	"github.com/jeranaias/linkzip/internal/shortener"
	"github.com/jeranaias/linkzip/internal/ui/styles"
	"github.com/jeranaias/linkzip/internal/widget"
)

type stubShortener struct {
	calls int
}

func (s *stubShortener) Shorten(_ context.Context, url string) (*shortener.URLInfo, error) {
	s.calls++
	return &shortener.URLInfo{OriginalURL: url, ShortKey: "k1"}, nil
}

func (s *stubShortener) ShortURL(key string) string {
	return "http://localhost:8000/" + key
}

type nopClipboard struct{}

func (nopClipboard) WriteAll(string) error { return nil }

func newTestModel(t *testing.T, client widget.Shortener) Model {
	t.Helper()
	m := New(Options{
		Theme:     styles.NewTheme(),
		Client:    client,
		Clipboard: nopClipboard{},
	})
	m.Init()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

// deliver runs cmd and feeds every resulting message back through Update.
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = deliver(t, m, c)
		}
		return m
	}
	switch msg.(type) {
	case widget.SubmitResultMsg, widget.CopyResultMsg:
		next, _ := m.Update(msg)
		return next.(Model)
	}
	return m
}

func TestNew_DefaultWidgets(t *testing.T) {
	m := newTestModel(t, &stubShortener{})
	require.Len(t, m.Widgets(), 3)

	for i, wc := range config.DefaultWidgets() {
		assert.Equal(t, wc.Title, m.Widgets()[i].Title())
		assert.Equal(t, wc.Placeholder, m.Widgets()[i].Placeholder())
	}
	assert.True(t, m.Widgets()[0].Focused())
	assert.False(t, m.Widgets()[1].Focused())

	view := m.View()
	assert.Contains(t, view, "LinkZip")
	assert.Contains(t, view, "The one-stop solution for your URL shortening needs.")
}

func TestNew_ConfiguredWidgets(t *testing.T) {
	m := New(Options{
		Theme:   styles.NewTheme(),
		Client:  &stubShortener{},
		Widgets: []config.WidgetConfig{{Title: "Only", Placeholder: "here"}},
	})
	require.Len(t, m.Widgets(), 1)
	assert.Equal(t, "Only", m.Widgets()[0].Title())
}

func TestFocusCycling(t *testing.T) {
	m := newTestModel(t, &stubShortener{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.Focused())
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.Focused(), "focus wraps around")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, m.Focused())
	assert.True(t, m.Widgets()[2].Focused())
	assert.False(t, m.Widgets()[0].Focused())
}

func TestWidgetsAreIsolated(t *testing.T) {
	client := &stubShortener{}
	m := newTestModel(t, client)

	// Submit an empty second widget and a filled first one.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = typeText(t, m, "https://example.com")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = deliver(t, m, cmd)

	first, second, third := m.Widgets()[0].State(), m.Widgets()[1].State(), m.Widgets()[2].State()

	assert.Equal(t, "https://example.com", first.OriginalURL())
	assert.Equal(t, "http://localhost:8000/k1", first.ShortURL())
	assert.Empty(t, first.ErrorMessage())

	assert.Empty(t, second.OriginalURL())
	assert.Empty(t, second.ShortURL())
	assert.Equal(t, "Please enter a URL.", second.ErrorMessage())

	assert.Equal(t, widget.PhaseIdle, third.Phase())
	assert.Equal(t, 1, client.calls)
}

func TestCopyKeyOnlyAffectsFocusedWidget(t *testing.T) {
	m := newTestModel(t, &stubShortener{})
	m = typeText(t, m, "https://example.com")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = deliver(t, m, cmd)

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	m = deliver(t, m, cmd)
	assert.True(t, m.Widgets()[0].State().CopyFeedbackActive())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Nil(t, cmd, "nothing to copy in an idle widget")
}

func TestQuitUnmountsAllWidgets(t *testing.T) {
	m := newTestModel(t, &stubShortener{})
	m = typeText(t, m, "https://example.com")
	m, submit := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	for _, w := range m.Widgets() {
		assert.False(t, w.State().Mounted())
	}
	assert.Empty(t, m.View())

	// The in-flight response is dropped after unmount.
	m = deliver(t, m, submit)
	assert.Empty(t, m.Widgets()[0].State().ShortURL())
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, &stubShortener{})
	short := m.View()
	assert.Contains(t, short, "shorten")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF1})
	full := m.View()
	assert.Contains(t, full, "previous widget")
	assert.NotContains(t, short, "previous widget")
}

func TestQuestionMarkIsTypeable(t *testing.T) {
	m := newTestModel(t, &stubShortener{})
	m = typeText(t, m, "https://example.com/?q=1")
	assert.Equal(t, "https://example.com/?q=1", m.Widgets()[0].State().OriginalURL())
}

func TestSimultaneousSubmitsAreNotThrottledTogether(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"short_key":"k1"}`))
	}))
	defer server.Close()

	// One token per widget, refilled every 200ms. A shared throttle would
	// make the third widget wait about 400ms.
	client := shortener.NewClientWithConfig(&shortener.ClientConfig{
		BaseURL:   server.URL,
		RateLimit: 5,
	})
	m := newTestModel(t, client)

	cmds := make([]tea.Cmd, 0, len(m.Widgets()))
	for _, w := range m.Widgets() {
		w.SetValue("https://example.com")
		cmd := w.Submit()
		require.NotNil(t, cmd)
		cmds = append(cmds, cmd)
	}

	var wg sync.WaitGroup
	elapsed := make([]time.Duration, len(cmds))
	results := make([]tea.Msg, len(cmds))
	for i, cmd := range cmds {
		wg.Add(1)
		go func(i int, cmd tea.Cmd) {
			defer wg.Done()
			start := time.Now()
			for _, c := range cmd().(tea.BatchMsg) {
				if msg, ok := c().(widget.SubmitResultMsg); ok {
					results[i] = msg
				}
			}
			elapsed[i] = time.Since(start)
		}(i, cmd)
	}
	wg.Wait()

	for i, d := range elapsed {
		assert.Less(t, d, 150*time.Millisecond, "widget %d waited on the others", i)
		require.NotNil(t, results[i])
		m = deliver(t, m, func() tea.Msg { return results[i] })
	}
	for _, w := range m.Widgets() {
		assert.Equal(t, widget.PhaseSuccess, w.State().Phase())
	}
}
