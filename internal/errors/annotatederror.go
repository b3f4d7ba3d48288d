// Package errors provides error annotation with slog attributes and source
// locations. It re-exports the standard library helpers so that callers only
// need a single errors import.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// annotatedError carries a message, an optional cause, slog attributes, and
// the source location where the error was created.
type annotatedError struct {
	msg   string
	cause error
	attrs []slog.Attr
	file  string
	line  int
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// NewSentinel creates an error meant to be declared as a package-level
// sentinel and compared with Is.
func NewSentinel(msg string) error {
	file, line := caller()
	return &annotatedError{
		msg:  msg,
		file: file,
		line: line,
	}
}

// Wrap annotates err with a message and optional slog attributes. The source
// location of the Wrap call is recorded for logging with SlogError.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	file, line := caller()
	return &annotatedError{
		msg:   msg,
		cause: err,
		attrs: attrs,
		file:  file,
		line:  line,
	}
}

// caller returns the file and line of the caller's caller, i.e. the location
// where NewSentinel or Wrap was invoked.
func caller() (string, int) {
	const skip = 2
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", 0
	}
	// Trim to the base name so log lines stay short.
	for i := len(file) - 1; i >= 0; i-- {
		if file[i] == '/' {
			return file[i+1:], line
		}
	}
	return file, line
}

// SlogError converts an error into a slog.Attr for structured logging. The
// attribute groups the error message, the source location of the outermost
// annotated error, and all annotations collected from the error chain under
// the "error" key.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}

	attrs := []slog.Attr{slog.String("message", err.Error())}

	var annotations []slog.Attr
	sourceSet := false
	for e := err; e != nil; e = Unwrap(e) {
		var annotated *annotatedError
		if !errors.As(e, &annotated) {
			break
		}
		if !sourceSet {
			attrs = append(attrs, slog.String("source", fmt.Sprintf("%s:%d", annotated.file, annotated.line)))
			sourceSet = true
		}
		annotations = append(annotations, annotated.attrs...)
		e = annotated
	}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Attr{Key: "annotations", Value: slog.GroupValue(annotations...)})
	}

	return slog.Attr{Key: "error", Value: slog.GroupValue(attrs...)}
}

// New re-exports errors.New.
func New(msg string) error {
	//nolint:err113 // this is a wrapper for the standard library errors.New.
	return errors.New(msg)
}

// Is re-exports errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As re-exports errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap re-exports errors.Unwrap.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join re-exports errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
