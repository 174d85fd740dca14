// Package style holds ready-to-print ANSI sequence strings for every code
// the catalog names, so callers can splice formatting into output without
// assembling sequences themselves. Emit these only when the target stream
// supports them (see pkg/terminal); always end formatted spans with Reset
// rather than switching to a "default-looking" color.
package style

import "github.com/arthur-debert/termctl/pkg/ansi"

// Reset removes every effect and color currently applied.
var Reset = ansi.Seq(ansi.Reset)

// Effects.
var (
	Bold            = ansi.Seq(ansi.Bold)
	Dim             = ansi.Seq(ansi.Dim)
	Italic          = ansi.Seq(ansi.Italic)
	Underline       = ansi.Seq(ansi.Underline)
	Blink           = ansi.Seq(ansi.Blink)
	RapidBlink      = ansi.Seq(ansi.RapidBlink)
	Reverse         = ansi.Seq(ansi.Reverse)
	Conceal         = ansi.Seq(ansi.Conceal)
	Strike          = ansi.Seq(ansi.Strike)
	Fraktur         = ansi.Seq(ansi.Fraktur)
	DoubleUnderline = ansi.Seq(ansi.DoubleUnderline)
)

// Removals, one per effect group.
var (
	NormalIntensity = ansi.Seq(ansi.NormalIntensity)
	NoItalic        = ansi.Seq(ansi.NoItalic)
	NoUnderline     = ansi.Seq(ansi.NoUnderline)
	NoBlink         = ansi.Seq(ansi.NoBlink)
	NoReverse       = ansi.Seq(ansi.NoReverse)
	NoConceal       = ansi.Seq(ansi.NoConceal)
	NoStrike        = ansi.Seq(ansi.NoStrike)
)

// Foreground colors.
var (
	FgBlack   = ansi.Seq(ansi.FgBlack)
	FgRed     = ansi.Seq(ansi.FgRed)
	FgGreen   = ansi.Seq(ansi.FgGreen)
	FgYellow  = ansi.Seq(ansi.FgYellow)
	FgBlue    = ansi.Seq(ansi.FgBlue)
	FgMagenta = ansi.Seq(ansi.FgMagenta)
	FgCyan    = ansi.Seq(ansi.FgCyan)
	FgWhite   = ansi.Seq(ansi.FgWhite)

	// FgDefault restores the default foreground color only.
	FgDefault = ansi.Seq(ansi.FgDefault)
)

// Bright foreground colors.
var (
	FgHiBlack   = ansi.Seq(ansi.FgHiBlack)
	FgHiRed     = ansi.Seq(ansi.FgHiRed)
	FgHiGreen   = ansi.Seq(ansi.FgHiGreen)
	FgHiYellow  = ansi.Seq(ansi.FgHiYellow)
	FgHiBlue    = ansi.Seq(ansi.FgHiBlue)
	FgHiMagenta = ansi.Seq(ansi.FgHiMagenta)
	FgHiCyan    = ansi.Seq(ansi.FgHiCyan)
	FgHiWhite   = ansi.Seq(ansi.FgHiWhite)
)

// Background colors.
var (
	BgBlack   = ansi.Seq(ansi.BgBlack)
	BgRed     = ansi.Seq(ansi.BgRed)
	BgGreen   = ansi.Seq(ansi.BgGreen)
	BgYellow  = ansi.Seq(ansi.BgYellow)
	BgBlue    = ansi.Seq(ansi.BgBlue)
	BgMagenta = ansi.Seq(ansi.BgMagenta)
	BgCyan    = ansi.Seq(ansi.BgCyan)
	BgWhite   = ansi.Seq(ansi.BgWhite)

	// BgDefault restores the default background color only.
	BgDefault = ansi.Seq(ansi.BgDefault)
)

// Bright background colors.
var (
	BgHiBlack   = ansi.Seq(ansi.BgHiBlack)
	BgHiRed     = ansi.Seq(ansi.BgHiRed)
	BgHiGreen   = ansi.Seq(ansi.BgHiGreen)
	BgHiYellow  = ansi.Seq(ansi.BgHiYellow)
	BgHiBlue    = ansi.Seq(ansi.BgHiBlue)
	BgHiMagenta = ansi.Seq(ansi.BgHiMagenta)
	BgHiCyan    = ansi.Seq(ansi.BgHiCyan)
	BgHiWhite   = ansi.Seq(ansi.BgHiWhite)
)

// ResetColors restores default foreground and background in one sequence.
var ResetColors = ansi.Seq(ansi.FgDefault, ansi.BgDefault)

// Bold foreground combinations, one sequence instead of two.
var (
	BoldBlack   = ansi.Seq(ansi.FgBlack, ansi.Bold)
	BoldRed     = ansi.Seq(ansi.FgRed, ansi.Bold)
	BoldGreen   = ansi.Seq(ansi.FgGreen, ansi.Bold)
	BoldYellow  = ansi.Seq(ansi.FgYellow, ansi.Bold)
	BoldBlue    = ansi.Seq(ansi.FgBlue, ansi.Bold)
	BoldMagenta = ansi.Seq(ansi.FgMagenta, ansi.Bold)
	BoldCyan    = ansi.Seq(ansi.FgCyan, ansi.Bold)
	BoldWhite   = ansi.Seq(ansi.FgWhite, ansi.Bold)
)

// Font selection.
var (
	FontDefault = ansi.Seq(ansi.FontDefault)
	FontAlt1    = ansi.Seq(ansi.FontAlt1)
	FontAlt2    = ansi.Seq(ansi.FontAlt2)
	FontAlt3    = ansi.Seq(ansi.FontAlt3)
	FontAlt4    = ansi.Seq(ansi.FontAlt4)
	FontAlt5    = ansi.Seq(ansi.FontAlt5)
	FontAlt6    = ansi.Seq(ansi.FontAlt6)
	FontAlt7    = ansi.Seq(ansi.FontAlt7)
	FontAlt8    = ansi.Seq(ansi.FontAlt8)
	FontAlt9    = ansi.Seq(ansi.FontAlt9)
)

// Framing effects.
var (
	Framed            = ansi.Seq(ansi.Framed)
	Encircled         = ansi.Seq(ansi.Encircled)
	Overlined         = ansi.Seq(ansi.Overlined)
	NoFramedEncircled = ansi.Seq(ansi.NoFramedEncircled)
	NoOverlined       = ansi.Seq(ansi.NoOverlined)
)

// Ideogram effects.
var (
	IdeogramUnderline       = ansi.Seq(ansi.IdeogramUnderline)
	IdeogramDoubleUnderline = ansi.Seq(ansi.IdeogramDoubleUnderline)
	IdeogramOverline        = ansi.Seq(ansi.IdeogramOverline)
	IdeogramDoubleOverline  = ansi.Seq(ansi.IdeogramDoubleOverline)
	IdeogramStressMarking   = ansi.Seq(ansi.IdeogramStressMarking)
	IdeogramReset           = ansi.Seq(ansi.IdeogramReset)
)
