// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid threshold %g for flag %s", -1.0, "--threshold"),
			expected: "invalid threshold -1 for flag --threshold",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestInputError(t *testing.T) {
	t.Parallel()
	err := InputError{Path: "origin.json", Err: fs.ErrNotExist}

	if got, want := err.Error(), "cannot read origin.json: file does not exist"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should find fs.ErrNotExist in the chain")
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      ParseError
		expected string
	}{
		{
			name:     "root level",
			err:      ParseError{Path: "origin.json", Reason: "invalid JSON"},
			expected: "parse origin.json: invalid JSON",
		},
		{
			name:     "named field",
			err:      ParseError{Path: "test.json", Field: "Waves", Reason: "field is missing"},
			expected: `parse test.json: field "Waves": field is missing`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
		})
	}
}

func TestIndexAndLengthErrors(t *testing.T) {
	t.Parallel()

	idx := IndexError{Index: 3, Length: 3}
	if got, want := idx.Error(), "index 3 out of range for candidate sequence of length 3"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	length := LengthError{Reference: 5, Candidate: 3}
	if got, want := length.Error(), "length mismatch: reference has 5 values, candidate has 3"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDecodeError(t *testing.T) {
	t.Parallel()
	cause := errors.New("exit status 2")
	err := DecodeError{Source: "song.mp3", Cause: cause}

	if got, want := err.Error(), "decode song.mp3: exit status 2"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the original cause")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		checkIs     error
		expectNil   bool
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("file not found"),
			format:      "failed to load reference",
			expectedMsg: "failed to load reference: file not found",
		},
		{
			name:        "preserves error chain",
			original:    context.DeadlineExceeded,
			format:      "decoder timed out",
			expectedMsg: "decoder timed out: context deadline exceeded",
			checkIs:     context.DeadlineExceeded,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("permission denied"),
			format:      "failed to open %s at offset %d",
			args:        []any{"peaks.raw", 4096},
			expectedMsg: "failed to open peaks.raw at offset 4096: permission denied",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}

			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}

			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}

			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "operation canceled"), true},
		{"regular error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := IsContextError(tt.err)
			if result != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"input", InputError{Path: "a", Err: fs.ErrNotExist}, ExitErrorInput},
		{"wrapped input", fmt.Errorf("load: %w", InputError{Path: "a", Err: fs.ErrPermission}), ExitErrorInput},
		{"parse", ParseError{Path: "a", Reason: "x"}, ExitErrorParse},
		{"index", IndexError{Index: 1, Length: 1}, ExitErrorLength},
		{"length", LengthError{Reference: 2, Candidate: 1}, ExitErrorLength},
		{"canceled", WrapError(context.Canceled, "run"), ExitErrorCanceled},
		{"decode", DecodeError{Source: "a", Cause: errors.New("boom")}, ExitErrorGeneric},
		{"unknown", errors.New("boom"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	// Verify exit codes are distinct and match expected values
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorInput":    ExitErrorInput,
		"ExitErrorParse":    ExitErrorParse,
		"ExitErrorConfig":   ExitErrorConfig,
		"ExitErrorLength":   ExitErrorLength,
		"ExitErrorCanceled": ExitErrorCanceled,
	}

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
