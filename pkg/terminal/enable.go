package terminal

import (
	"errors"
	"fmt"

	tcerrors "github.com/arthur-debert/termctl/pkg/errors"
)

// EnableANSI asks the operating system to interpret ANSI escape
// sequences written to the pipe. On Windows this turns on virtual
// terminal processing for the console behind the pipe; everywhere else
// terminals interpret escape sequences natively and the call is a
// no-op that always succeeds.
//
// The call is idempotent. Enabling a pipe that is already enabled
// succeeds, and each pipe is enabled independently of the other.
//
// A nil return means escape sequences will be interpreted, not that
// the pipe is interactive. Combine with IsTerminal to decide whether
// to emit formatting at all.
func EnableANSI(p Pipe) error {
	return enableVT(p)
}

// EnableError reports why ANSI support could not be enabled on a pipe.
type EnableError struct {
	// Pipe is the stream the attempt was made on.
	Pipe Pipe
	// Code classifies the stage that failed: ErrHandleUnavailable,
	// ErrModeQueryFailed or ErrModeSetFailed.
	Code tcerrors.ErrorCode
	// Err is the underlying OS error, when the OS reported one.
	Err error
}

// Error implements the error interface
func (e *EnableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] enable ansi on %s: %v", e.Code, e.Pipe, e.Err)
	}
	return fmt.Sprintf("[%s] enable ansi on %s", e.Code, e.Pipe)
}

// Unwrap returns the underlying OS error
func (e *EnableError) Unwrap() error {
	return e.Err
}

// Is matches any EnableError carrying the same failure code. The pipe
// is not compared, so callers can test for a failure class without
// naming a stream.
func (e *EnableError) Is(target error) bool {
	var targetErr *EnableError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// FailureCodeOf returns the failure code carried by err, or ErrUnknown
// when err is not an EnableError
func FailureCodeOf(err error) tcerrors.ErrorCode {
	var enableErr *EnableError
	if errors.As(err, &enableErr) {
		return enableErr.Code
	}
	return tcerrors.ErrUnknown
}
