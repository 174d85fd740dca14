package ansi

import "strconv"

// Cursor and screen control sequences. These are CSI sequences with finals
// other than "m" and are interpreted unconditionally by the terminal, so
// callers should apply the same capability gating as for SGR sequences.
const (
	// ClearScreen erases the entire screen without moving the cursor.
	ClearScreen = "\x1b[2J"
	// ClearToEnd erases from the cursor to the end of the screen.
	ClearToEnd = "\x1b[0J"
	// ClearLine erases the entire current line.
	ClearLine = "\x1b[2K"

	// CursorHome moves the cursor to the top-left cell.
	CursorHome = "\x1b[H"
	// HideCursor and ShowCursor toggle cursor visibility.
	HideCursor = "\x1b[?25l"
	ShowCursor = "\x1b[?25h"
	// SaveCursor and RestoreCursor stash and recall the cursor position.
	SaveCursor    = "\x1b[s"
	RestoreCursor = "\x1b[u"

	// AltScreen switches to the alternate screen buffer; MainScreen switches
	// back. Full-screen programs use the pair to avoid polluting scrollback.
	AltScreen  = "\x1b[?1049h"
	MainScreen = "\x1b[?1049l"
)

// CursorUp moves the cursor up n lines.
func CursorUp(n int) string {
	return Prefix + strconv.Itoa(n) + "A"
}

// CursorDown moves the cursor down n lines.
func CursorDown(n int) string {
	return Prefix + strconv.Itoa(n) + "B"
}

// CursorForward moves the cursor right n columns.
func CursorForward(n int) string {
	return Prefix + strconv.Itoa(n) + "C"
}

// CursorBack moves the cursor left n columns.
func CursorBack(n int) string {
	return Prefix + strconv.Itoa(n) + "D"
}

// CursorTo moves the cursor to the given 1-based row and column.
func CursorTo(row, col int) string {
	return Prefix + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}
