// Package gloss is a styling and layout engine for terminal text. Styles
// render strings into rectangular blocks with padding, borders and margins,
// and blocks are composed with the Join and Place functions.
package gloss

import (
	"fmt"
	"io"

	"golang.org/x/exp/slog"
)

var (
	defaultRenderer = NewRenderer(Options{})
	discard         = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Options configure a Renderer
type Options struct {
	// Logger is an optional slog.Logger that gloss will log to. gloss only
	// logs at the debug level
	Logger *slog.Logger
	// LightBackground resolves adaptive colors to their light variant. The
	// zero value assumes a dark background
	LightBackground bool
	// WidthMethod is the method used to measure graphemes. Default is
	// UnicodeStd
	WidthMethod WidthMethod
	// TabWidth is the number of spaces a tab is expanded to. Zero uses the
	// default of 4, a negative value leaves tabs untouched
	TabWidth int
}

// Renderer carries the terminal-dependent parameters of rendering: whether
// the background is dark and how wide graphemes are. A Renderer is an
// immutable value and is safe to share between goroutines.
type Renderer struct {
	light    bool
	method   WidthMethod
	tabWidth int
	log      *slog.Logger
}

// NewRenderer returns a Renderer configured with opts. It panics if
// opts.WidthMethod is not a known method
func NewRenderer(opts Options) Renderer {
	if !opts.WidthMethod.valid() {
		panic(fmt.Sprintf("gloss: invalid width method %d", opts.WidthMethod))
	}
	r := Renderer{
		light:    opts.LightBackground,
		method:   opts.WidthMethod,
		tabWidth: opts.TabWidth,
		log:      opts.Logger,
	}
	switch {
	case r.tabWidth == 0:
		r.tabWidth = 4
	case r.tabWidth < 0:
		r.tabWidth = noTabConversion
	}
	return r
}

func (r Renderer) logger() *slog.Logger {
	if r.log == nil {
		return discard
	}
	return r.log
}

// DefaultRenderer returns the Renderer used by the package level functions.
// It assumes a dark background and measures graphemes per the unicode
// standard
func DefaultRenderer() Renderer {
	return defaultRenderer
}

// HasDarkBackground reports whether adaptive colors resolve to their dark
// variant
func (r Renderer) HasDarkBackground() bool {
	return !r.light
}

// WidthMethod returns the method used to measure graphemes
func (r Renderer) WidthMethod() WidthMethod {
	return r.method
}

// NewStyle returns an empty Style bound to r
func (r Renderer) NewStyle() Style {
	return Style{r: r}
}

// Resolve returns the concrete color of c for this renderer's background
func (r Renderer) Resolve(c TerminalColor) Color {
	if c == nil {
		return 0
	}
	return c.Resolve(!r.light)
}

// Color parses s. If s is not a valid color the error is logged and the
// terminal default color is returned
func (r Renderer) Color(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		r.logger().Debug("using default color", "error", err)
		return 0
	}
	return c
}

// Adaptive parses a light and dark color pair. Parse errors are logged and
// the invalid variant is the terminal default color
func (r Renderer) Adaptive(light string, dark string) AdaptiveColor {
	ac, err := ParseAdaptive(light, dark)
	if err != nil {
		r.logger().Debug("using default color", "error", err)
	}
	return ac
}
