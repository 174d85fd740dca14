package termctl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/arthur-debert/termctl/pkg/ansi"
	"github.com/arthur-debert/termctl/pkg/style"
)

// demoSampleText is the default line every section renders.
const demoSampleText = "Hello world!"

// demoLabelWidth is the column where the sample output starts.
const demoLabelWidth = 20

// paletteCellWidth is the rendered width of one 256-colour cell: a
// space, the three-digit colour number, a space.
const paletteCellWidth = 5

// fallbackWidth stands in when the terminal width cannot be queried.
const fallbackWidth = 80

// namedSeq pairs a display label with the sequence it demonstrates.
type namedSeq struct {
	name string
	seq  string
}

var demoEffects = []namedSeq{
	{"Bold", style.Bold},
	{"Dim", style.Dim},
	{"Italic", style.Italic},
	{"Underline", style.Underline},
	{"Blink", style.Blink},
	{"Rapid-blink", style.RapidBlink},
	{"Inverse", style.Reverse},
	{"Invisible", style.Conceal},
	{"Strike-through", style.Strike},
	{"Fraktur", style.Fraktur},
	{"Double-underline", style.DoubleUnderline},
}

var demoFgColours = []namedSeq{
	{"Black", style.FgBlack},
	{"Red", style.FgRed},
	{"Green", style.FgGreen},
	{"Yellow", style.FgYellow},
	{"Blue", style.FgBlue},
	{"Magenta", style.FgMagenta},
	{"Cyan", style.FgCyan},
	{"White", style.FgWhite},
}

var demoFgBrightColours = []namedSeq{
	{"Black", style.FgHiBlack},
	{"Red", style.FgHiRed},
	{"Green", style.FgHiGreen},
	{"Yellow", style.FgHiYellow},
	{"Blue", style.FgHiBlue},
	{"Magenta", style.FgHiMagenta},
	{"Cyan", style.FgHiCyan},
	{"White", style.FgHiWhite},
}

var demoBgColours = []namedSeq{
	{"Black", style.BgBlack},
	{"Red", style.BgRed},
	{"Green", style.BgGreen},
	{"Yellow", style.BgYellow},
	{"Blue", style.BgBlue},
	{"Magenta", style.BgMagenta},
	{"Cyan", style.BgCyan},
	{"White", style.BgWhite},
}

var demoBgBrightColours = []namedSeq{
	{"Black", style.BgHiBlack},
	{"Red", style.BgHiRed},
	{"Green", style.BgHiGreen},
	{"Yellow", style.BgHiYellow},
	{"Blue", style.BgHiBlue},
	{"Magenta", style.BgHiMagenta},
	{"Cyan", style.BgHiCyan},
	{"White", style.BgHiWhite},
}

var demoMisc = []namedSeq{
	{"Framed", style.Framed},
	{"Encircled", style.Encircled},
	{"Overlined", style.Overlined},
}

var demoIdeogram = []namedSeq{
	{"Underline", style.IdeogramUnderline},
	{"Double-underline", style.IdeogramDoubleUnderline},
	{"Overline", style.IdeogramOverline},
	{"Double-overline", style.IdeogramDoubleOverline},
	{"Stress-marking", style.IdeogramStressMarking},
}

var demoCombinations = []namedSeq{
	{"Black", style.BoldBlack},
	{"Red", style.BoldRed},
	{"Green", style.BoldGreen},
	{"Yellow", style.BoldYellow},
	{"Blue", style.BoldBlue},
	{"Magenta", style.BoldMagenta},
	{"Cyan", style.BoldCyan},
	{"White", style.BoldWhite},
}

var demoFonts = []namedSeq{
	{"Default", style.FontDefault},
	{"Alt #1", style.FontAlt1},
	{"Alt #2", style.FontAlt2},
	{"Alt #3", style.FontAlt3},
	{"Alt #4", style.FontAlt4},
	{"Alt #5", style.FontAlt5},
	{"Alt #6", style.FontAlt6},
	{"Alt #7", style.FontAlt7},
	{"Alt #8", style.FontAlt8},
	{"Alt #9", style.FontAlt9},
}

// demoRenderer writes the inventory to w, emitting escape sequences
// only when formatted is set. Both renderings share one code path so
// the plain output always mirrors the formatted one line for line.
type demoRenderer struct {
	w         io.Writer
	sample    string
	formatted bool
}

// renderDemo prints a sample line under every effect and colour the
// catalog defines.
func renderDemo(w io.Writer, sample string, formatted bool) {
	d := &demoRenderer{w: w, sample: sample, formatted: formatted}

	fmt.Fprintln(d.w, "Demo text:")
	fmt.Fprintf(d.w, "%s%s\n", strings.Repeat(" ", demoLabelWidth), d.sample)

	fmt.Fprintln(d.w, "With effects:")
	for _, e := range demoEffects {
		d.row(e.name, e.seq)
	}

	d.fgSection("Basic foreground colours:", demoFgColours)
	d.fgSection("Basic foreground colours - bright:", demoFgBrightColours)
	d.bgSection("Basic background colours:", demoBgColours)
	d.bgSection("Basic background colours - bright:", demoBgBrightColours)

	fmt.Fprintln(d.w, "Misc:")
	for _, e := range demoMisc {
		d.row(e.name, e.seq)
	}

	fmt.Fprintln(d.w, "Misc - Ideogram:")
	for _, e := range demoIdeogram {
		d.row(e.name, e.seq)
	}

	fmt.Fprintln(d.w, "Combinations - foreground-color + bold:")
	for _, e := range demoCombinations {
		d.row(e.name, e.seq)
	}

	fmt.Fprintln(d.w, "With font selection:")
	for _, e := range demoFonts {
		d.row(e.name, e.seq)
	}

	// The extended-colour sections are colour swatches with no plain
	// text rendering, so they only appear in the formatted output.
	if d.formatted {
		d.paletteSection()
		d.gradientSection()
	}
}

// seq passes the sequence through in the formatted rendering and
// swallows it in the plain one.
func (d *demoRenderer) seq(s string) string {
	if d.formatted {
		return s
	}
	return ""
}

// label pads the row label so samples line up, counting display cells
// rather than bytes since labels and samples may hold wide runes.
func (d *demoRenderer) label(name string) string {
	return runewidth.FillRight("  "+name+":", demoLabelWidth)
}

// row prints one sample line under a single sequence.
func (d *demoRenderer) row(name, seq string) {
	fmt.Fprintf(d.w, "%s%s%s%s\n", d.label(name), d.seq(seq), d.sample, d.seq(style.Reset))
}

// columnWidth is the width of one sample column in the colour tables.
func (d *demoRenderer) columnWidth() int {
	return runewidth.StringWidth(d.sample) + 4
}

// columnHeader prints the table header aligned with the sample columns.
func (d *demoRenderer) columnHeader(names ...string) {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", demoLabelWidth))
	for i, name := range names {
		if i == len(names)-1 {
			sb.WriteString(name)
			break
		}
		sb.WriteString(runewidth.FillRight(name, d.columnWidth()))
	}
	fmt.Fprintln(d.w, sb.String())
}

// fgSection renders one row per colour: the colour against the default
// background, then against black, then against white.
func (d *demoRenderer) fgSection(title string, colours []namedSeq) {
	fmt.Fprintln(d.w, title)
	d.columnHeader("bg normal", "bg black", "bg white")
	for _, c := range colours {
		fmt.Fprintf(d.w, "%s%s%s    %s%s%s    %s%s%s\n",
			d.label(c.name),
			d.seq(c.seq), d.sample,
			d.seq(style.BgBlack), d.sample, d.seq(style.BgDefault),
			d.seq(style.BgWhite), d.sample, d.seq(style.Reset))
	}
}

// bgSection renders one row per colour: the colour under the default
// text colour, then under black text, then under white text.
func (d *demoRenderer) bgSection(title string, colours []namedSeq) {
	fmt.Fprintln(d.w, title)
	d.columnHeader("fg normal", "fg black", "fg white")
	for _, c := range colours {
		fmt.Fprintf(d.w, "%s%s%s    %s%s    %s%s%s\n",
			d.label(c.name),
			d.seq(c.seq), d.sample,
			d.seq(style.FgBlack), d.sample,
			d.seq(style.FgWhite), d.sample, d.seq(style.Reset))
	}
}

// width reports the terminal width, falling back when stdout is not a
// terminal or the query fails.
func (d *demoRenderer) width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// paletteSection draws the 256-colour palette as numbered background
// cells wrapped to the terminal width, sixteen per row at most so the
// standard colours, the colour cube and the grayscale ramp stay on
// separate rows on a full-width terminal.
func (d *demoRenderer) paletteSection() {
	fmt.Fprintln(d.w, "256-colour palette:")

	perRow := d.width() / paletteCellWidth
	if perRow < 1 {
		perRow = 1
	}
	if perRow > 16 {
		perRow = 16
	}

	for n := 0; n < 256; n++ {
		fmt.Fprintf(d.w, "%s %3d %s", ansi.Bg256(uint8(n)), n, style.Reset)
		if (n+1)%perRow == 0 {
			fmt.Fprintln(d.w)
		}
	}
	if 256%perRow != 0 {
		fmt.Fprintln(d.w)
	}
}

// gradientSection draws one 24-bit colour ramp sized to the terminal.
func (d *demoRenderer) gradientSection() {
	fmt.Fprintln(d.w, "24-bit colour ramp:")

	steps := d.width()
	if steps < 8 {
		steps = 8
	}

	var sb strings.Builder
	for i := 0; i < steps; i++ {
		r := uint8(255 * i / (steps - 1))
		b := uint8(255 - r)
		sb.WriteString(ansi.BgRGB(r, 64, b))
		sb.WriteString(" ")
	}
	sb.WriteString(style.Reset)
	fmt.Fprintln(d.w, sb.String())
}
