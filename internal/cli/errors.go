// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for linkzip commands.
//
// Commands always return errors and let the caller decide how to display
// them and which exit code to use.

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jeranaias/linkzip/internal/config"
	"github.com/jeranaias/linkzip/internal/shortener"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error, including API rejections
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitNetworkError indicates the server could not be reached
	ExitNetworkError = 5
	// ExitNotFoundError indicates a short key does not exist
	ExitNotFoundError = 7
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError represents invalid command usage.
type UsageError struct {
	Reason  string
	Example string // Example of valid usage (optional)
}

func (e *UsageError) Error() string {
	if e.Example != "" {
		return fmt.Sprintf("%s\nExample: %s", e.Reason, e.Example)
	}
	return e.Reason
}

// NewUsageError creates a new usage error.
func NewUsageError(reason, example string) error {
	return &UsageError{Reason: reason, Example: example}
}

// ConfigError wraps a configuration loading failure.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// GetExitCode returns the process exit code for err.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsageError
	}

	var configErr *ConfigError
	if errors.As(err, &configErr) || config.IsValidationError(err) {
		return ExitConfigError
	}

	switch {
	case shortener.IsType(err, shortener.ErrTypeValidation):
		return ExitUsageError
	case shortener.IsType(err, shortener.ErrTypeTransport):
		return ExitNetworkError
	case shortener.IsType(err, shortener.ErrTypeNotFound):
		return ExitNotFoundError
	}

	return ExitGeneralError
}

// DisplayError prints err for a human, or as a JSON error response.
// API failures are shown with the same message the TUI would show.
func DisplayError(w io.Writer, command string, err error, jsonMode bool) {
	if err == nil {
		return
	}
	msg := err.Error()
	var ce *shortener.ClientError
	if errors.As(err, &ce) {
		msg = ce.Message
	}

	if jsonMode {
		NewJSONErrorResponseStr(command, msg).Print(w)
		return
	}
	fmt.Fprintln(w, ErrorStyle.Render("Error:")+" "+msg)
}
