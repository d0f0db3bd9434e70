// File: error.go
// Title: Core Error Implementation
// Description: Implements the tagged Error type used across the VCL engine.
//              Every error crossing a package boundary carries a Kind
//              (grammar defect, user input, internal defect) and a stable
//              Code, while remaining compatible with Go's standard error
//              interface and errors.Is/errors.As unwrapping.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with tagged errors

package error

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an error into one of the three VCL error families
type Kind int

const (
	// KindInput marks errors caused by the tokens the user typed.
	// These are always presentable to the end user.
	KindInput Kind = iota

	// KindGrammar marks defects in a grammar definition supplied by the
	// host application. These abort grammar registration and must never
	// reach end-user-facing code.
	KindGrammar

	// KindInternal marks programming defects inside the engine itself
	KindInternal
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindGrammar:
		return "grammar"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error represents a structured VCL error with kind, code, and details
type Error struct {
	kind    Kind
	code    Code
	message string
	details map[string]interface{}
	cause   error
}

// New creates a new Error with the given kind, code, and message
func New(kind Kind, code Code, message string) *Error {
	return &Error{
		kind:    kind,
		code:    code,
		message: message,
	}
}

// Newf creates a new Error with a formatted message
func Newf(kind Kind, code Code, format string, args ...interface{}) *Error {
	return New(kind, code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context. If err is already
// a VCL Error, its kind and code are preserved on the wrapper.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		kind:    KindInternal,
		code:    CodeUnknown,
		message: message,
		cause:   err,
	}

	var vclErr *Error
	if stderrors.As(err, &vclErr) {
		wrapped.kind = vclErr.kind
		wrapped.code = vclErr.code
	}

	return wrapped
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the error kind
func (e *Error) Kind() Kind {
	return e.kind
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Message returns the error message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// WithDetail attaches a named detail value and returns the error for chaining
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// Detail returns a named detail value if present
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Details returns a copy of all attached details
func (e *Error) Details() map[string]interface{} {
	details := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		details[k] = v
	}
	return details
}

// KindOf returns the kind of err, or KindInternal if err is not a VCL error
func KindOf(err error) Kind {
	var vclErr *Error
	if stderrors.As(err, &vclErr) {
		return vclErr.kind
	}
	return KindInternal
}

// CodeOf returns the code of err, or CodeUnknown if err is not a VCL error
func CodeOf(err error) Code {
	var vclErr *Error
	if stderrors.As(err, &vclErr) {
		return vclErr.code
	}
	return CodeUnknown
}

// IsInput reports whether err is a user input error
func IsInput(err error) bool {
	var vclErr *Error
	return stderrors.As(err, &vclErr) && vclErr.kind == KindInput
}

// IsGrammar reports whether err is a grammar definition error
func IsGrammar(err error) bool {
	var vclErr *Error
	return stderrors.As(err, &vclErr) && vclErr.kind == KindGrammar
}
