// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"context"
	"strings"

	"github.com/jeranaias/linkzip/internal/shortener"
)

// Phase is the logical state of a widget, derived from its fields.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSuccess
	PhaseFailed
	PhaseCopyConfirmed
)

func (p Phase) String() string {
	switch p {
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	case PhaseCopyConfirmed:
		return "copy_confirmed"
	default:
		return "idle"
	}
}

// Submission identifies one submit call.
type Submission struct {
	Generation uint64
	URL        string
}

// State is one widget instance's private state.
//
// Invariants:
//   - at most one of shortURL and errorMessage is non-empty
//   - copyFeedback is only true while shortURL is non-empty
//
// State is not safe for concurrent use; it is owned by a single event loop.
type State struct {
	originalURL  string
	shortURL     string
	errorMessage string
	copyFeedback bool

	// err is the failure behind errorMessage.
	err error

	generation uint64
	copySeq    uint64
	pending    bool
	unmounted  bool
}

// NewState returns an Idle state with every field empty.
func NewState() *State {
	return &State{}
}

// OriginalURL returns the text currently in the input.
func (s *State) OriginalURL() string { return s.originalURL }

// ShortURL returns the shortened link, or "".
func (s *State) ShortURL() string { return s.shortURL }

// ErrorMessage returns the user-facing error, or "".
func (s *State) ErrorMessage() string { return s.errorMessage }

// CopyFeedbackActive reports whether the copy confirmation is showing.
func (s *State) CopyFeedbackActive() bool { return s.copyFeedback }

// Err returns the failure behind ErrorMessage, or nil.
func (s *State) Err() error { return s.err }

// Pending reports whether the latest submission is still in flight.
func (s *State) Pending() bool { return s.pending }

// Mounted reports whether the state still accepts updates.
func (s *State) Mounted() bool { return !s.unmounted }

// Phase derives the logical state from the fields.
func (s *State) Phase() Phase {
	switch {
	case s.shortURL != "" && s.copyFeedback:
		return PhaseCopyConfirmed
	case s.shortURL != "":
		return PhaseSuccess
	case s.errorMessage != "":
		return PhaseFailed
	default:
		return PhaseIdle
	}
}

// UpdateInput echoes a keystroke. Nothing is validated here.
func (s *State) UpdateInput(text string) {
	s.originalURL = text
}

// BeginSubmit starts a submission of the current input.
//
// The outcome slots are cleared and a new generation is started either way,
// so nothing still in flight can land afterwards. Whitespace-only input fails
// locally with the empty-input message and ok is false: no request may be
// sent.
func (s *State) BeginSubmit() (sub Submission, ok bool) {
	s.generation++
	s.shortURL = ""
	s.errorMessage = ""
	s.err = nil
	s.copyFeedback = false
	s.pending = false

	url := strings.TrimSpace(s.originalURL)
	if url == "" {
		s.err = shortener.ErrEmptyInput
		s.errorMessage = shortener.Message(s.err)
		return Submission{}, false
	}

	s.pending = true
	return Submission{Generation: s.generation, URL: url}, true
}

// ApplyResult records the outcome of the submission with generation gen.
// It returns false, changing nothing, if that submission was superseded or
// the widget has unmounted.
func (s *State) ApplyResult(gen uint64, shortURL string, err error) bool {
	if s.unmounted || gen != s.generation {
		return false
	}

	s.pending = false
	s.copyFeedback = false
	if err == nil && shortURL == "" {
		err = &shortener.ClientError{Type: shortener.ErrTypeAPIUnspecified, Message: shortener.MsgUnspecified}
	}
	if err != nil {
		s.shortURL = ""
		s.err = err
		s.errorMessage = shortener.Message(err)
		return true
	}
	s.shortURL = shortURL
	s.err = nil
	s.errorMessage = ""
	return true
}

// BeginCopy returns the text to put on the clipboard. ok is false when there
// is no short URL, in which case copy is a no-op.
func (s *State) BeginCopy() (text string, ok bool) {
	if s.unmounted || s.shortURL == "" {
		return "", false
	}
	return s.shortURL, true
}

// CopySucceeded opens the copy feedback window for text and returns the
// sequence number that may close it. Earlier sequence numbers stop being
// able to close it, which restarts the window instead of stacking timers.
//
// ok is false when the shown link changed while the clipboard was being
// written; the feedback would then describe a link that is gone.
func (s *State) CopySucceeded(text string) (seq uint64, ok bool) {
	if s.unmounted || s.shortURL == "" || s.shortURL != text {
		return 0, false
	}
	s.copySeq++
	s.copyFeedback = true
	return s.copySeq, true
}

// ResetCopy closes the copy feedback window if seq is still the latest.
func (s *State) ResetCopy(seq uint64) bool {
	if s.unmounted || seq != s.copySeq {
		return false
	}
	s.copyFeedback = false
	return true
}

// Unmount invalidates every outstanding submission and feedback reset.
// The state is frozen afterwards.
func (s *State) Unmount() {
	s.unmounted = true
	s.generation++
	s.copySeq++
	s.pending = false
}

// Submit runs one full submission synchronously against client.
// It is the headless form of the widget's submit operation.
func (s *State) Submit(ctx context.Context, client Shortener) Phase {
	sub, ok := s.BeginSubmit()
	if !ok {
		return s.Phase()
	}

	short, err := shorten(ctx, client, sub.URL)
	s.ApplyResult(sub.Generation, short, err)
	return s.Phase()
}

// shorten performs one request and returns the link to display. A result
// without a short key comes back as "", which ApplyResult reports as an
// unspecified failure.
func shorten(ctx context.Context, client Shortener, url string) (string, error) {
	info, err := client.Shorten(ctx, url)
	if err != nil {
		return "", err
	}
	if info == nil || info.ShortKey == "" {
		return "", nil
	}
	return client.ShortURL(info.ShortKey), nil
}
