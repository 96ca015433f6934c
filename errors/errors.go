// Package errors provides error handling for QAForge.
//
// This package re-exports github.com/cockroachdb/errors, providing
// stack traces, error wrapping, and sentinel-based classification for
// the generation pipeline and HTTP surface.
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := render(); err != nil {
//	    return errors.Wrap(err, "failed to render test plan")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrInvalidRequest) {
//	    // reject with 400
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithStack   = crdb.WithStack
	WithMessage = crdb.WithMessage
	WithHint    = crdb.WithHint
	WithDetail  = crdb.WithDetail
	Mark        = crdb.Mark
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Sentinel errors for use across QAForge.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidRequest indicates the request was malformed or invalid
	// (e.g. an empty requirement). Maps to HTTP 400.
	ErrInvalidRequest = New("invalid request")

	// ErrNotFound indicates the requested resource does not exist.
	// Maps to HTTP 404.
	ErrNotFound = New("not found")

	// ErrPublishUnavailable indicates the publish adapter has no
	// credentials. This is a normal configuration state, never fatal.
	ErrPublishUnavailable = New("publish unavailable")

	// ErrWriteFault indicates the output writer could not persist an
	// artifact. Fatal for the whole request.
	ErrWriteFault = New("write fault")
)

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsWriteFaultError checks if an error is or is marked with ErrWriteFault
func IsWriteFaultError(err error) bool {
	return err != nil && Is(err, ErrWriteFault)
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidRequest, Newf(format, args...).Error())
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}
