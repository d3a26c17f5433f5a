package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
// Finding mismatches is not a failure: a completed comparison exits with
// ExitSuccess regardless of the mismatch count.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorInput    = 2   // Indicates a required input could not be read.
	ExitErrorParse    = 3   // Indicates malformed or wrongly shaped input data.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorLength   = 5   // Indicates the candidate sequence is too short.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InputError reports that a required input file does not exist or cannot be
// read.
type InputError struct {
	// Path is the file that could not be read.
	Path string
	// Err is the underlying I/O error.
	Err error
}

// Error returns a formatted message naming the unreadable file.
func (e InputError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error so that errors.Is(err, fs.ErrNotExist)
// keeps working.
func (e InputError) Unwrap() error { return e.Err }

// ParseError reports input content that is not valid JSON or does not have
// the expected shape.
type ParseError struct {
	// Path is the source document.
	Path string
	// Field is the path of the value inside the document, empty for the root.
	Field string
	// Reason describes what was wrong with the content.
	Reason string
}

// Error returns a formatted message describing the malformed content.
func (e ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("parse %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("parse %s: field %q: %s", e.Path, e.Field, e.Reason)
}

// IndexError reports an access past the end of the candidate sequence.
type IndexError struct {
	// Index is the position that was requested.
	Index int
	// Length is the length of the sequence that was indexed.
	Length int
}

// Error returns a formatted message describing the out-of-range access.
func (e IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for candidate sequence of length %d", e.Index, e.Length)
}

// LengthError reports that the reference and candidate sequences differ in
// length when an upfront length check was requested.
type LengthError struct {
	Reference int
	Candidate int
}

// Error returns a formatted message with both lengths.
func (e LengthError) Error() string {
	return fmt.Sprintf("length mismatch: reference has %d values, candidate has %d", e.Reference, e.Candidate)
}

// DecodeError encapsulates a failure of the external audio decoder while
// preserving the original cause.
type DecodeError struct {
	// Source is the audio file being decoded.
	Source string
	// Cause is the underlying error that triggered this decode error.
	Cause error
}

// Error returns the decoder failure message.
func (e DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Source, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e DecodeError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error to the process exit status. A nil error maps to
// ExitSuccess; unknown errors map to ExitErrorGeneric.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		configErr ConfigError
		inputErr  InputError
		parseErr  ParseError
		indexErr  IndexError
		lengthErr LengthError
	)
	switch {
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &inputErr):
		return ExitErrorInput
	case errors.As(err, &parseErr):
		return ExitErrorParse
	case errors.As(err, &indexErr), errors.As(err, &lengthErr):
		return ExitErrorLength
	default:
		return ExitErrorGeneric
	}
}
