// Package errors defines the typed errors that separate failures of the
// whole invocation from failures of a single file. Per-file failures
// never surface here; they degrade to zero results inside the scanner.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType classifies a fatal search error.
type ErrorType string

const (
	// ErrorTypeConfig covers invalid configuration: unknown file type,
	// bad thread count, empty query.
	ErrorTypeConfig ErrorType = "config"

	// ErrorTypePattern covers a definition pattern that failed to
	// compile, usually a query containing pattern metacharacters.
	ErrorTypePattern ErrorType = "pattern"

	// ErrorTypeTraversal covers file-tree enumeration failures:
	// unreadable directories, non-UTF-8 paths.
	ErrorTypeTraversal ErrorType = "traversal"

	// ErrorTypeInternal covers everything else.
	ErrorTypeInternal ErrorType = "internal"
)

// Exit codes follow the BSD sysexits convention.
const (
	ExitUsage = 64
	ExitIO    = 74
)

// SearchError is a fatal error for an entire invocation.
type SearchError struct {
	Type       ErrorType
	Operation  string
	Path       string
	Underlying error
}

// Error implements the error interface.
func (e *SearchError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s failed for %s: %v", e.Type, e.Operation, e.Path, e.Underlying)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Type, e.Operation, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *SearchError) Unwrap() error {
	return e.Underlying
}

// WithPath adds the affected path to the error.
func (e *SearchError) WithPath(path string) *SearchError {
	e.Path = path
	return e
}

// NewConfigError creates a configuration error.
func NewConfigError(op string, err error) *SearchError {
	return &SearchError{Type: ErrorTypeConfig, Operation: op, Underlying: err}
}

// NewPatternError creates a pattern-compilation error.
func NewPatternError(op string, err error) *SearchError {
	return &SearchError{Type: ErrorTypePattern, Operation: op, Underlying: err}
}

// NewTraversalError creates a file-tree enumeration error.
func NewTraversalError(op string, err error) *SearchError {
	return &SearchError{Type: ErrorTypeTraversal, Operation: op, Underlying: err}
}

// TypeOf classifies any error, defaulting to internal.
func TypeOf(err error) ErrorType {
	var se *SearchError
	if stderrors.As(err, &se) {
		return se.Type
	}
	return ErrorTypeInternal
}

// ExitCode maps an error to the process exit status: configuration and
// pattern problems are usage errors, traversal problems are I/O errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch TypeOf(err) {
	case ErrorTypeConfig, ErrorTypePattern:
		return ExitUsage
	case ErrorTypeTraversal:
		return ExitIO
	}
	return 1
}
