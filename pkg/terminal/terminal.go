// Package terminal answers two questions about the process's standard
// output streams: whether a stream is attached to an interactive
// terminal, and whether the operating system will honor ANSI escape
// sequences written to it.
//
// Both checks are per stream. Stdout and stderr are inspected
// separately and one stream's answer never influences the other's; a
// command whose stdout is piped into a file can still show formatted
// progress on stderr.
package terminal

import (
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether the pipe is currently attached to an
// interactive terminal. It returns false when the stream is redirected
// to a file, piped into another process, or otherwise unavailable.
//
// The stream is inspected fresh on every call; nothing is cached, so
// redirections that happen mid-process are picked up.
func IsTerminal(p Pipe) bool {
	f := p.file()
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ShouldFormat combines a caller's formatting preference with the state
// of the pipe. It returns true only when formatting is wanted and the
// pipe is attached to an interactive terminal, which keeps escape
// sequences out of redirected output.
func ShouldFormat(p Pipe, want bool) bool {
	return want && IsTerminal(p)
}
