// Package ansi defines the numeric SGR codes understood by ANSI terminals
// and helpers to assemble them into control sequences.
package ansi

import (
	"strconv"
	"strings"
)

// Prefix and Suffix delimit every SGR control sequence: Prefix, one or more
// semicolon-separated codes, Suffix.
const (
	Prefix = "\x1b["
	Suffix = "m"
)

const sbPadding = 16 // growth headroom for the strings.Builder

// Code is a numeric SGR (Select Graphic Rendition) code.
type Code int

// Effects. Terminals apply codes cumulatively; there is no code to undo a
// single effect except the removal codes below, and Reset clears everything.
const (
	Reset Code = iota
	Bold
	Dim
	Italic
	Underline
	Blink
	RapidBlink
	Reverse
	Conceal
	Strike
)

// Font selection. FontDefault restores the primary font; FontAlt1 through
// FontAlt9 select alternate fonts where the terminal ships any.
const (
	FontDefault Code = iota + 10
	FontAlt1
	FontAlt2
	FontAlt3
	FontAlt4
	FontAlt5
	FontAlt6
	FontAlt7
	FontAlt8
	FontAlt9
)

// Rarely implemented effects.
const (
	Fraktur         Code = 20
	DoubleUnderline Code = 21
)

// Removal codes. Each clears one effect group; 26 is unassigned.
const (
	NormalIntensity Code = iota + 22 // clears Bold and Dim
	NoItalic
	NoUnderline
	NoBlink
	_
	NoReverse
	NoConceal
	NoStrike
)

// Foreground colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite

	fgExtended // 38, leads the 256-color and RGB forms

	// FgDefault restores the terminal's default foreground color.
	FgDefault
)

// Background colors.
const (
	BgBlack Code = iota + 40
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite

	bgExtended // 48

	// BgDefault restores the terminal's default background color.
	BgDefault
)

// Framing effects and their removals.
const (
	Framed Code = iota + 51
	Encircled
	Overlined
	NoFramedEncircled
	NoOverlined
)

// Ideogram effects. IdeogramReset clears the whole group.
const (
	IdeogramUnderline Code = iota + 60
	IdeogramDoubleUnderline
	IdeogramOverline
	IdeogramDoubleOverline
	IdeogramStressMarking
	IdeogramReset
)

// Bright foreground colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

// Bright background colors.
const (
	BgHiBlack Code = iota + 100
	BgHiRed
	BgHiGreen
	BgHiYellow
	BgHiBlue
	BgHiMagenta
	BgHiCyan
	BgHiWhite
)

// Selectors for the extended color forms: 38;5;n / 38;2;r;g;b and the 48
// background equivalents.
const (
	extended256 Code = 5
	extendedRGB Code = 2
)

// Codes joins the given codes with the semicolon separator, without the
// sequence delimiters. With no arguments it returns the empty string.
func Codes(c ...Code) string {
	if len(c) == 0 {
		return ""
	}

	sb := strings.Builder{}
	sb.Grow(sbPadding)

	for i, code := range c {
		if i > 0 {
			sb.WriteString(";")
		}
		sb.WriteString(strconv.Itoa(int(code)))
	}

	return sb.String()
}

// Seq assembles a complete SGR control sequence from the given codes, e.g.
// Seq(FgRed, Bold) == "\x1b[31;1m". With no arguments it returns the empty
// string rather than an empty sequence.
func Seq(c ...Code) string {
	if len(c) == 0 {
		return ""
	}

	sb := strings.Builder{}
	sb.Grow(len(Prefix) + len(Suffix) + sbPadding)
	sb.WriteString(Prefix)

	for i, code := range c {
		if i > 0 {
			sb.WriteString(";")
		}
		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(Suffix)

	return sb.String()
}

// Fg256 returns the sequence selecting color n of the 256-color palette for
// text.
func Fg256(n uint8) string {
	return Seq(fgExtended, extended256, Code(n))
}

// Bg256 returns the sequence selecting color n of the 256-color palette for
// the background.
func Bg256(n uint8) string {
	return Seq(bgExtended, extended256, Code(n))
}

// FgRGB returns the sequence selecting a 24-bit text color.
func FgRGB(r, g, b uint8) string {
	return Seq(fgExtended, extendedRGB, Code(r), Code(g), Code(b))
}

// BgRGB returns the sequence selecting a 24-bit background color.
func BgRGB(r, g, b uint8) string {
	return Seq(bgExtended, extendedRGB, Code(r), Code(g), Code(b))
}
