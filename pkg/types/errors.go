// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies pipeline failures so callers branch on kind instead
// of matching message prefixes.
type ErrorKind string

const (
	// KindUnsupportedFormat marks a source file whose extension is not recognized.
	KindUnsupportedFormat ErrorKind = "unsupported_format"

	// KindReadError marks a source document that could not be opened or parsed.
	KindReadError ErrorKind = "read_error"

	// KindInferenceError marks a failed inference service call.
	KindInferenceError ErrorKind = "inference_error"

	// KindEmptyResponse marks an inference call that succeeded but returned
	// no content. Distinct from success with an empty report.
	KindEmptyResponse ErrorKind = "empty_response"

	// KindExportError marks a single report format that failed to render.
	// Export errors never abort the sibling format.
	KindExportError ErrorKind = "export_error"
)

// StageError is a classified pipeline failure. Detail says what went wrong;
// Err, when set, is the underlying cause.
type StageError struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *StageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Unwrap returns the underlying cause, if any.
func (e *StageError) Unwrap() error { return e.Err }

// NewStageError builds a StageError without an underlying cause.
func NewStageError(kind ErrorKind, format string, args ...any) *StageError {
	return &StageError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// WrapStageError builds a StageError around an underlying cause.
func WrapStageError(kind ErrorKind, err error, format string, args ...any) *StageError {
	return &StageError{Kind: kind, Detail: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the ErrorKind carried by err, or "" when err is nil or
// carries no kind.
func KindOf(err error) ErrorKind {
	var se *StageError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
