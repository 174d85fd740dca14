package terminal

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/termctl/pkg/errors"
)

// Pipe identifies one of the process's standard output streams.
type Pipe int

const (
	// Stdout is the process's standard output stream.
	Stdout Pipe = iota + 1
	// Stderr is the process's standard error stream.
	Stderr
)

// String returns the conventional name of the stream
func (p Pipe) String() string {
	switch p {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return fmt.Sprintf("pipe(%d)", int(p))
	}
}

// ParsePipe parses a string into a Pipe value
func ParsePipe(s string) (Pipe, error) {
	switch strings.ToLower(s) {
	case "stdout", "out":
		return Stdout, nil
	case "stderr", "err":
		return Stderr, nil
	default:
		return 0, errors.Newf(errors.ErrInvalidInput, "unknown pipe: %s", s)
	}
}

// file returns the *os.File currently bound to the pipe. It resolves
// through the os package globals on every call, so callers that swap
// os.Stdout or os.Stderr observe the substitution.
func (p Pipe) file() *os.File {
	switch p {
	case Stdout:
		return os.Stdout
	case Stderr:
		return os.Stderr
	default:
		return nil
	}
}
