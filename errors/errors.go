// Package errors provides error handling for promptforge.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnresolvedVariables) {
//	    // handle missing placeholder values
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll

	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Sentinel errors covering the promptforge error taxonomy.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the kind.
var (
	// ErrMissingTemplate indicates no template text was obtained from
	// any source (file, inline flag, or stdin)
	ErrMissingTemplate = New("no template provided")

	// ErrInvalidAssignment indicates a --var entry is not in KEY=VALUE form
	ErrInvalidAssignment = New("invalid variable assignment")

	// ErrUnresolvedVariables indicates one or more placeholders have no
	// value after all resolution sources were applied
	ErrUnresolvedVariables = New("unresolved template variables")

	// ErrMalformedFile indicates a variables or rules file failed to
	// parse or has the wrong shape
	ErrMalformedFile = New("malformed file")

	// ErrInvalidRulePattern indicates a simulation rule's regex failed
	// to compile
	ErrInvalidRulePattern = New("invalid rule pattern")
)

// IsMissingTemplateError checks if an error is or wraps ErrMissingTemplate
func IsMissingTemplateError(err error) bool {
	return err != nil && Is(err, ErrMissingTemplate)
}

// IsUnresolvedVariablesError checks if an error is or wraps ErrUnresolvedVariables
func IsUnresolvedVariablesError(err error) bool {
	return err != nil && Is(err, ErrUnresolvedVariables)
}

// IsMalformedFileError checks if an error is or wraps ErrMalformedFile
func IsMalformedFileError(err error) bool {
	return err != nil && Is(err, ErrMalformedFile)
}

// NewInvalidAssignmentError creates an invalid-assignment error naming
// the offending token
func NewInvalidAssignmentError(token string) error {
	return WithHint(
		Wrapf(ErrInvalidAssignment, "invalid --var %q", token),
		"use KEY=VALUE form, e.g. --var role=expert",
	)
}

// NewMalformedFileError wraps a parse failure with the file path while
// preserving the ErrMalformedFile kind for errors.Is checks
func NewMalformedFileError(err error, path string) error {
	return Wrapf(crdb.WithSecondaryError(ErrMalformedFile, err), "failed to parse %s", path)
}
