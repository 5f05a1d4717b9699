// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shortener

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// User-facing messages for failures that carry no server-supplied detail.
const (
	MsgEmptyInput  = "Please enter a URL."
	MsgUnspecified = "An error occurred."
	MsgTransport   = "Failed to connect to the server."
	MsgKeyNotFound = "Short URL not found"
	MsgNoRedirect  = "The server did not return a redirect."
)

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	// ErrTypeValidation is an empty input rejected before any request.
	ErrTypeValidation
	// ErrTypeAPI is a non-2xx response with a server-supplied detail.
	ErrTypeAPI
	// ErrTypeAPIUnspecified is a failed or unusable response without a detail.
	ErrTypeAPIUnspecified
	// ErrTypeTransport means no response was obtained at all.
	ErrTypeTransport
	// ErrTypeNotFound is a 404 from the info or resolve endpoints.
	ErrTypeNotFound
)

func (t ErrorType) String() string {
	switch t {
	case ErrTypeValidation:
		return "validation"
	case ErrTypeAPI:
		return "api"
	case ErrTypeAPIUnspecified:
		return "api_unspecified"
	case ErrTypeTransport:
		return "transport"
	case ErrTypeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// ClientError represents a classified failure from the shortening API.
// Message is the text shown to the user.
type ClientError struct {
	Type    ErrorType
	Message string
	Status  int
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrEmptyInput is returned when a submission has nothing to shorten.
var ErrEmptyInput = &ClientError{Type: ErrTypeValidation, Message: MsgEmptyInput}

// IsType reports whether err is a *ClientError of type t.
func IsType(err error, t ErrorType) bool {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Type == t
	}
	return false
}

// Message returns the user-facing text for err. Errors that did not come
// from this package map to the generic message.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ce *ClientError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return MsgUnspecified
}

func transportError(cause error) *ClientError {
	return &ClientError{Type: ErrTypeTransport, Message: MsgTransport, Cause: cause}
}

func unspecifiedError(status int, cause error) *ClientError {
	return &ClientError{Type: ErrTypeAPIUnspecified, Message: MsgUnspecified, Status: status, Cause: cause}
}
