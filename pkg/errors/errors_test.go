// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/termctl/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "unknown pipe name",
			wantStr: "[INVALID_INPUT] unknown pipe name",
		},
		{
			name:    "mode_set_error",
			code:    errors.ErrModeSetFailed,
			message: "cannot update console mode",
			wantStr: "[MODE_SET_FAILED] cannot update console mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		format  string
		args    []interface{}
		wantMsg string
	}{
		{
			name:    "format_with_string",
			code:    errors.ErrInvalidInput,
			format:  "unknown format: %s",
			args:    []interface{}{"fancy"},
			wantMsg: "unknown format: fancy",
		},
		{
			name:    "format_with_multiple_args",
			code:    errors.ErrModeQueryFailed,
			format:  "cannot query %s (fd %d)",
			args:    []interface{}{"stdout", 1},
			wantMsg: "cannot query stdout (fd 1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.Newf(tt.code, tt.format, tt.args...)

			if err.Message != tt.wantMsg {
				t.Errorf("Newf() message = %q, want %q", err.Message, tt.wantMsg)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrModeQueryFailed, "query console mode")

		if err.Code != errors.ErrModeQueryFailed {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrModeQueryFailed)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[MODE_QUERY_FAILED] query console mode: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrModeQueryFailed, "query console mode")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrHandleUnavailable, "error 1")
	err2 := errors.New(errors.ErrHandleUnavailable, "error 2")
	err3 := errors.New(errors.ErrModeSetFailed, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with TermctlError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrHandleUnavailable, "no console handle"),
			code:     errors.ErrHandleUnavailable,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrHandleUnavailable, "no console handle"),
			code:     errors.ErrModeSetFailed,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrModeSetFailed, "set failed"),
			code:     errors.ErrModeSetFailed,
			expected: true,
		},
		{
			name:     "non_termctl_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrHandleUnavailable,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrHandleUnavailable,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "termctl_error",
			err:      errors.New(errors.ErrModeQueryFailed, "query failed"),
			expected: errors.ErrModeQueryFailed,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	// Create a chain of errors
	rootCause := stderrors.New("root cause")
	queryErr := errors.Wrap(rootCause, errors.ErrModeQueryFailed, "cannot query console mode")
	inputErr := errors.Wrap(queryErr, errors.ErrInvalidInput, "cannot inspect pipe")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(inputErr, errors.ErrInvalidInput) {
			t.Error("Top level should have ErrInvalidInput code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var termctlErr *errors.TermctlError
		if stderrors.As(inputErr.Unwrap(), &termctlErr) {
			if !errors.IsErrorCode(termctlErr, errors.ErrModeQueryFailed) {
				t.Error("Middle error should have ErrModeQueryFailed code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(inputErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
