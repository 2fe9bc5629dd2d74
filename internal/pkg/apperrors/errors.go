// Package apperrors carries the error taxonomy of the identity layer.
// Validation and Authorization messages are surfaced verbatim to the
// actor; Network failures map to a generic retry-suggesting message.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for UI recovery purposes
type Kind string

const (
	// KindValidation is a local failure detected before any network call
	KindValidation Kind = "validation"
	// KindAuthorization is an explicit rejection by the authority
	KindAuthorization Kind = "authorization"
	// KindNetwork is a transport or parse failure
	KindNetwork Kind = "network"
	// KindAlreadyExists is a duplicate-registration rejection
	KindAlreadyExists Kind = "already_exists"
	// KindConflict is a client-side state conflict (e.g. a second verify
	// while one is pending)
	KindConflict Kind = "conflict"
)

// Error is a classified application error
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies an underlying error
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation creates a local validation error
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// Authorization creates an authority-rejection error
func Authorization(message string) *Error {
	return New(KindAuthorization, message)
}

// Network wraps a transport or parse failure
func Network(err error) *Error {
	return Wrap(KindNetwork, "network error", err)
}

// AlreadyExists creates a duplicate-registration error
func AlreadyExists(message string) *Error {
	return New(KindAlreadyExists, message)
}

// KindOf returns the classification of err, or an empty Kind for
// unclassified errors
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// IsKind reports whether err is classified as kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// IsNetwork reports whether err is a transport/parse failure. The two
// documented resilience points in the OTP and reset flows key off this.
func IsNetwork(err error) bool {
	return IsKind(err, KindNetwork)
}
