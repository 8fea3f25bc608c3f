package inspect

import (
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/twounordered"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds parameters for console output.
type Config struct {
	LineWidth int                                  // wrap lines after this many fixed-width positions, 0 = never
	Context   *uax11.Context                       // measures the display width of elements
	Colors    map[twounordered.Region]*color.Color // regions without entry are printed uncolored
}

// Separator is printed between the first and the second region.
const Separator = "‖"

func defaultPalette() map[twounordered.Region]*color.Color {
	return map[twounordered.Region]*color.Color{
		twounordered.First:  color.New(color.FgBlue),
		twounordered.Second: color.New(color.FgRed),
	}
}

var setupGraphemes sync.Once

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 65}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 10 {
			config.LineWidth = w
		}
	}
	config.Context = uax11.ContextFromEnvironment()
	config.Colors = defaultPalette()
	tracer().P("inspect", "console").Debugf("setting line length to %d en", config.LineWidth)
	return config
}

// Print outputs the elements of a container to w, coloring them by region
// and separating the regions by Separator. Lines are wrapped at
// config.LineWidth. If config is nil, ConfigFromTerminal is used.
func Print[E any](v *twounordered.Vecs[E], w io.Writer, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	out := &lineWriter{w: w, width: config.LineWidth}
	separated := false
	for r, x := range v.All() {
		if r == twounordered.Second && !separated {
			out.cell(Separator, 1, nil)
			separated = true
		}
		s := fmt.Sprint(x)
		out.cell(s, displayWidth(s, context), config.Colors[r])
	}
	if !separated {
		out.cell(Separator, 1, nil)
	}
	out.newline()
	return out.err
}

// displayWidth returns the number of fixed-width positions s occupies.
// Printable ASCII is narrow; any other text is measured by uax11.
func displayWidth(s string, context *uax11.Context) int {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] >= utf8.RuneSelf {
			setupGraphemes.Do(grapheme.SetupGraphemeClasses)
			return uax11.StringWidth(grapheme.StringFromString(s), context)
		}
	}
	return len(s)
}

// lineWriter writes space separated cells and wraps lines.
type lineWriter struct {
	w     io.Writer
	width int // 0 means no wrapping
	used  int // positions already used in the current line
	err   error
}

func (lw *lineWriter) cell(s string, width int, c *color.Color) {
	if lw.err != nil {
		return
	}
	if lw.used > 0 {
		if lw.width > 0 && lw.used+1+width > lw.width {
			lw.newline()
		} else {
			lw.write(" ")
			lw.used++
		}
	}
	if c != nil {
		_, lw.err = c.Fprint(lw.w, s)
	} else {
		lw.write(s)
	}
	lw.used += width
}

func (lw *lineWriter) write(s string) {
	if lw.err == nil {
		_, lw.err = io.WriteString(lw.w, s)
	}
}

func (lw *lineWriter) newline() {
	lw.write("\n")
	lw.used = 0
}
