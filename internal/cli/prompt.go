// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// prompt.go - Line-oriented shortening session.
//
// Each entered line is submitted like a widget submission. History is kept
// in memory for the session only; nothing is written to disk.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/linkzip/internal/ui/styles"
	"github.com/jeranaias/linkzip/internal/widget"
)

const promptText = "linkzip> "

// =============================================================================
// LINE INPUT
// =============================================================================

// lineReader reads one line of input for a prompt.
type lineReader interface {
	ReadInput(prompt string) (string, error)
}

// PromptCLI provides history and line editing for the prompt command.
type PromptCLI struct {
	line *liner.State
}

// NewPromptCLI creates a PromptCLI. Call Close to restore the terminal.
func NewPromptCLI() *PromptCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &PromptCLI{line: line}
}

// ReadInput reads a line of input with the given prompt.
func (c *PromptCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// Close restores the terminal.
func (c *PromptCLI) Close() {
	c.line.Close()
}

// =============================================================================
// SESSION
// =============================================================================

// HandlePrompt runs the interactive prompt until EOF, Ctrl+C or /quit.
func HandlePrompt(ctx context.Context, rt *Runtime, args Args) error {
	in := NewPromptCLI()
	defer in.Close()
	return runPrompt(ctx, rt, in)
}

func runPrompt(ctx context.Context, rt *Runtime, in lineReader) error {
	state := widget.NewState()
	out := rt.Stdout

	fmt.Fprintln(out, TitleStyle.Render("LinkZip")+" "+DimStyle.Render("enter a URL to shorten, /help for commands"))

	for {
		if ctx.Err() != nil {
			return nil
		}

		input, err := in.ReadInput(promptText)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		switch input {
		case "":
			continue
		case "/quit", "/exit", "/q":
			return nil
		case "/help":
			printPromptHelp(out)
			continue
		case "/copy":
			copyLast(rt, state)
			continue
		}

		state.UpdateInput(input)
		if state.Submit(ctx, rt.Client) == widget.PhaseSuccess {
			fmt.Fprintln(out, styles.RenderSuccess("Shortened:")+" "+styles.RenderLink(state.ShortURL()))
		} else {
			fmt.Fprintln(out, styles.RenderError(state.ErrorMessage()))
		}
	}
}

var promptCommands = [][2]string{
	{"<url>", "shorten a URL"},
	{"/copy", "copy the last short URL"},
	{"/quit", "leave"},
}

func printPromptHelp(w io.Writer) {
	for _, c := range promptCommands {
		fmt.Fprintf(w, "  %s %s\n", PromptStyle.Width(8).Render(c[0]), DimStyle.Render(c[1]))
	}
}

func copyLast(rt *Runtime, state *widget.State) {
	text, ok := state.BeginCopy()
	if !ok {
		fmt.Fprintln(rt.Stdout, DimStyle.Render("Nothing to copy yet."))
		return
	}
	if err := rt.Clipboard.WriteAll(text); err != nil {
		log.Printf("Failed to copy: %v", err)
		fmt.Fprintln(rt.Stdout, styles.RenderError("Could not copy to the clipboard."))
		return
	}
	fmt.Fprintln(rt.Stdout, SuccessStyle.Render(styles.StatusIndicators.Copied)+" "+text)
}
