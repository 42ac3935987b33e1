package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchError_Message(t *testing.T) {
	err := NewConfigError("validate threads", stderrors.New("must be positive"))
	assert.Equal(t, "config validate threads failed: must be positive", err.Error())

	err = NewTraversalError("walk", stderrors.New("permission denied")).WithPath("src")
	assert.Equal(t, "traversal walk failed for src: permission denied", err.Error())
}

func TestSearchError_Unwrap(t *testing.T) {
	underlying := stderrors.New("boom")
	err := NewPatternError("compile", underlying)
	assert.ErrorIs(t, err, underlying)
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, ErrorTypeConfig, TypeOf(NewConfigError("op", stderrors.New("x"))))
	assert.Equal(t, ErrorTypePattern, TypeOf(NewPatternError("op", stderrors.New("x"))))
	assert.Equal(t, ErrorTypeTraversal, TypeOf(NewTraversalError("op", stderrors.New("x"))))
	assert.Equal(t, ErrorTypeInternal, TypeOf(stderrors.New("plain")))
}

func TestTypeOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("search failed: %w", NewTraversalError("walk", stderrors.New("x")))
	assert.Equal(t, ErrorTypeTraversal, TypeOf(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, ExitUsage, ExitCode(NewConfigError("op", stderrors.New("x"))))
	assert.Equal(t, ExitUsage, ExitCode(NewPatternError("op", stderrors.New("x"))))
	assert.Equal(t, ExitIO, ExitCode(NewTraversalError("op", stderrors.New("x"))))
	assert.Equal(t, 1, ExitCode(stderrors.New("plain")))
}
