// Package ui decides how output bound for a standard stream should be
// rendered. It layers the NO_COLOR convention and the terminal's
// advertised color support on top of the plain interactivity check from
// pkg/terminal, which stays environment-free on purpose.
package ui

import (
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/arthur-debert/termctl/pkg/errors"
	"github.com/arthur-debert/termctl/pkg/terminal"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto resolves to FormatTerminal or FormatText based on the stream
	FormatAuto Format = iota
	// FormatTerminal renders rich terminal output with colors and styling
	FormatTerminal
	// FormatText renders plain text output without any styling
	FormatText
	// FormatJSON renders machine-readable JSON output
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s)
	}
}

// DetectFormat determines the appropriate output format for the pipe
// based on environment and terminal capabilities.
func DetectFormat(p terminal.Pipe) Format {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Check if we're being piped or redirected
	if !terminal.IsTerminal(p) {
		return FormatText
	}

	// Check terminal color support
	colorProfile := termenv.ColorProfile()
	if colorProfile == termenv.Ascii {
		return FormatText
	}

	// Terminal supports colors
	return FormatTerminal
}

// Resolve maps FormatAuto to the detected format for the pipe and
// returns every other format unchanged.
func Resolve(f Format, p terminal.Pipe) Format {
	if f == FormatAuto {
		return DetectFormat(p)
	}
	return f
}
