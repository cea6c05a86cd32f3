// Package errors defines the error taxonomy for the deprivation report
// pipeline.
//
// Three error classes exist:
//
// SourceUnavailable: an input file is missing or unreadable. Fatal, the
// run aborts.
//
// SchemaMismatch: an expected column is absent from an input file. Fatal,
// the run aborts.
//
// EmptyResult: a filter or join produced zero rows. Never fatal, the
// affected chart degrades to a placeholder.
package errors

import (
	"errors"
	"fmt"
)

// Error codes, stable across releases. Logged and surfaced to the user.
const (
	CodeSourceUnavailable = "SOURCE_UNAVAILABLE"
	CodeSchemaMismatch    = "SCHEMA_MISMATCH"
	CodeEmptyResult       = "EMPTY_RESULT"
)

// PipelineError is a classified pipeline failure. It wraps an underlying
// cause when one exists.
type PipelineError struct {
	Code    string
	Message string
	Source  string // offending input file or aggregate name, if known
	Err     error  // underlying cause, may be nil
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Source)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Is matches two PipelineErrors by code, so sentinel comparisons like
// errors.Is(err, ErrSchemaMismatch) work regardless of message details.
func (e *PipelineError) Is(target error) bool {
	var pe *PipelineError
	if errors.As(target, &pe) {
		return e.Code == pe.Code
	}
	return false
}

// Sentinel values for errors.Is comparisons.
var (
	ErrSourceUnavailable = &PipelineError{Code: CodeSourceUnavailable, Message: "input source unavailable"}
	ErrSchemaMismatch    = &PipelineError{Code: CodeSchemaMismatch, Message: "input schema mismatch"}
	ErrEmptyResult       = &PipelineError{Code: CodeEmptyResult, Message: "empty result"}
)

// SourceUnavailable reports a missing or unreadable input file.
func SourceUnavailable(path string, err error) *PipelineError {
	return &PipelineError{
		Code:    CodeSourceUnavailable,
		Message: "input source unavailable",
		Source:  path,
		Err:     err,
	}
}

// SchemaMismatch reports a required column absent from an input file.
func SchemaMismatch(path, column string) *PipelineError {
	return &PipelineError{
		Code:    CodeSchemaMismatch,
		Message: fmt.Sprintf("required column %q not found", column),
		Source:  path,
	}
}

// EmptyResult reports an aggregate that produced zero rows.
func EmptyResult(aggregate string) *PipelineError {
	return &PipelineError{
		Code:    CodeEmptyResult,
		Message: "no rows after filtering",
		Source:  aggregate,
	}
}

// IsFatal reports whether err should abort the run. Loading errors are
// fatal; empty aggregates are not.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrSourceUnavailable) || errors.Is(err, ErrSchemaMismatch)
}
