// Package errors defines the pipeline's failure taxonomy. Parse and export
// operations fail all-or-nothing per file with one of these categories;
// data-completeness problems are never errors — they come back as structured
// validation or compliance results instead.
package errors

import (
	"errors"
	"fmt"
)

// Code partitions failures by what the caller can do about them.
type Code string

const (
	// CodeUnsupportedFormat: the file extension has no reader/writer.
	CodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"
	// CodeMalformedDocument: the file exists but could not be parsed.
	CodeMalformedDocument Code = "MALFORMED_DOCUMENT"
	// CodeNoData: the operation ran against an empty batch or document.
	CodeNoData Code = "NO_DATA"
	// CodeFileSystem: the underlying read/write failed.
	CodeFileSystem Code = "FILESYSTEM_ERROR"
	// CodeConfig: invalid configuration; a programming or deployment
	// mistake, not a data problem.
	CodeConfig Code = "CONFIG_ERROR"
)

// Error carries the failing operation's name, a category, and the underlying
// cause, so the presentation layer can show a meaningful message without the
// core printing anything itself.
type Error struct {
	Op   string
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// E wraps err with the operation name and category.
func E(op string, code Code, err error) *Error {
	return &Error{Op: op, Code: code, Err: err}
}

// Ef is E with a formatted message instead of a wrapped cause.
func Ef(op string, code Code, format string, args ...any) *Error {
	return &Error{Op: op, Code: code, Err: fmt.Errorf(format, args...)}
}

// CodeOf extracts the category from err, or "" when err is not ours.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether err carries the given category.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
