package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// defaultWidth is used if output does not go to a terminal.
const defaultWidth = 80

// palette holds the colors used to display different kinds of output.
type palette struct {
	value   *color.Color
	padding *color.Color
	err     *color.Color
	prompt  *color.Color
}

func makeDefaultPalette() palette {
	return palette{
		value:   color.New(color.FgGreen),
		padding: color.New(color.FgHiBlack),
		err:     color.New(color.FgRed, color.Bold),
		prompt:  color.New(color.FgBlue),
	}
}

func (p palette) setEnabled(enabled bool) {
	for _, c := range []*color.Color{p.value, p.padding, p.err, p.prompt} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// TerminalWidth checks whether stdout is a terminal, and if so returns the
// terminal's width. Otherwise it returns a default.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err == nil && w > 20 {
			return w
		}
		tracer().Debugf("cannot read terminal size: %v", err)
	}
	return defaultWidth
}

// formatValue displays a value. For padding nodes the identities of min and
// max are shown as infinities; element values always print as numbers.
func formatValue(op Op, v int64, padding bool) string {
	switch {
	case padding && op == OpMin && v == math.MaxInt64:
		return "+∞"
	case padding && op == OpMax && v == math.MinInt64:
		return "-∞"
	}
	return fmt.Sprint(v)
}

var setupGraphemes sync.Once

// displayWidth returns the number of fixed-width positions s occupies on a
// console.
func displayWidth(s string, context *uax11.Context) int {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// printList outputs "label = [v0 v1 …]", wrapping lines at width. Values
// marked in dim are printed with the padding color. Widths are measured
// in console positions for context.
func printList(w io.Writer, label string, values []string, dim func(int) bool,
	p palette, width int, context *uax11.Context) {
	//
	if context == nil {
		context = uax11.LatinContext
	}
	indent := displayWidth(label, context) + 4
	fmt.Fprintf(w, "%s = [", label)
	col := indent
	for i, v := range values {
		vw := displayWidth(v, context)
		if i > 0 {
			if col+1+vw > width-1 {
				fmt.Fprintf(w, "\n%s", strings.Repeat(" ", indent))
				col = indent
			} else {
				io.WriteString(w, " ")
				col++
			}
		}
		c := p.value
		if dim != nil && dim(i) {
			c = p.padding
		}
		c.Fprint(w, v)
		col += vw
	}
	io.WriteString(w, "]\n")
}
