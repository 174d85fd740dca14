//go:build windows
// +build windows

package terminal

import (
	"errors"

	"golang.org/x/sys/windows"

	tcerrors "github.com/arthur-debert/termctl/pkg/errors"
)

// enableVT turns on ENABLE_VIRTUAL_TERMINAL_PROCESSING for the console
// behind the pipe. Without it Windows consoles print escape sequences
// as literal characters instead of interpreting them.
func enableVT(p Pipe) error {
	f := p.file()
	if f == nil {
		return &EnableError{Pipe: p, Code: tcerrors.ErrHandleUnavailable}
	}

	handle := windows.Handle(f.Fd())
	if handle == windows.InvalidHandle || handle == 0 {
		return &EnableError{Pipe: p, Code: tcerrors.ErrHandleUnavailable}
	}

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		// Redirected output: the handle is a pipe or a file, not a
		// console. There is no console mode to change.
		if errors.Is(err, windows.ERROR_INVALID_HANDLE) {
			return &EnableError{Pipe: p, Code: tcerrors.ErrHandleUnavailable, Err: err}
		}
		return &EnableError{Pipe: p, Code: tcerrors.ErrModeQueryFailed, Err: err}
	}

	// Already enabled, nothing to change.
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return nil
	}

	if err := windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return &EnableError{Pipe: p, Code: tcerrors.ErrModeSetFailed, Err: err}
	}

	return nil
}
