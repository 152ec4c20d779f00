package gloss

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// TerminalColor is a color which resolves to a concrete Color once the
// background of the terminal is known
type TerminalColor interface {
	Resolve(darkBackground bool) Color
}

// Color is a terminal color. The zero value represents the default foreground
// or background color
type Color uint32

const (
	indexed Color = 1 << 24
	rgb     Color = 1 << 25
)

// NoColor is the terminal's default color
const NoColor Color = 0

// Params returns the SGR parameters for the color, or an empty slice if the
// color is the default color
func (c Color) Params() []uint8 {
	switch {
	case c&indexed != 0:
		return []uint8{uint8(c)}
	case c&rgb != 0:
		r := uint8(c >> 16)
		g := uint8(c >> 8)
		b := uint8(c)
		return []uint8{r, g, b}
	}
	return []uint8{}
}

// RGB returns the red, green and blue components of c. Indexed colors map
// through the xterm palette. ok is false for the default color
func (c Color) RGB() (r uint8, g uint8, b uint8, ok bool) {
	switch {
	case c&indexed != 0:
		r, g, b = paletteRGB(uint8(c))
		return r, g, b, true
	case c&rgb != 0:
		return uint8(c >> 16), uint8(c >> 8), uint8(c), true
	}
	return 0, 0, 0, false
}

// Hex returns c as a lowercase #rrggbb string, or an empty string for the
// default color
func (c Color) Hex() string {
	r, g, b, ok := c.RGB()
	if !ok {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// IsDefault reports whether c is the terminal default color
func (c Color) IsDefault() bool {
	return c&(indexed|rgb) == 0
}

// Resolve returns c
func (c Color) Resolve(bool) Color {
	return c
}

func (c Color) String() string {
	switch {
	case c&indexed != 0:
		return strconv.Itoa(int(uint8(c)))
	case c&rgb != 0:
		return c.Hex()
	}
	return "default"
}

func RGBColor(r uint8, g uint8, b uint8) Color {
	color := Color(int(r)<<16 | int(g)<<8 | int(b))
	return color | rgb
}

func IndexColor(index uint8) Color {
	color := Color(index)
	return color | indexed
}

// HexColor creates an RGB color from a 0xRRGGBB value
func HexColor(v uint32) Color {
	return Color(v&0xFFFFFF) | rgb
}

// AdaptiveColor is a pair of colors, one for light backgrounds and one for
// dark backgrounds
type AdaptiveColor struct {
	Light Color
	Dark  Color
}

// Resolve returns the variant for the background
func (ac AdaptiveColor) Resolve(darkBackground bool) Color {
	if darkBackground {
		return ac.Dark
	}
	return ac.Light
}

var colorNames = map[string]uint8{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// ParseColor parses a color literal. Accepted forms are #rgb and #rrggbb hex
// values, palette indexes from 0 to 255, and the eight ANSI color names
// optionally prefixed with "bright". An empty string is the default color.
func ParseColor(s string) (Color, error) {
	lit := strings.ToLower(strings.TrimSpace(s))
	switch {
	case lit == "":
		return NoColor, nil
	case strings.HasPrefix(lit, "#"):
		if len(lit) != 4 && len(lit) != 7 {
			return NoColor, &ColorParseError{Value: s, Err: errHexLength}
		}
		c, err := colorful.Hex(lit)
		if err != nil {
			return NoColor, &ColorParseError{Value: s, Err: err}
		}
		return fromColorful(c), nil
	case lit[0] >= '0' && lit[0] <= '9':
		idx, err := strconv.ParseUint(lit, 10, 8)
		if err != nil {
			return NoColor, &ColorParseError{Value: s, Err: err}
		}
		return IndexColor(uint8(idx)), nil
	}
	name, bright := strings.CutPrefix(lit, "bright")
	if bright {
		name = strings.TrimPrefix(name, "-")
	}
	idx, ok := colorNames[name]
	if !ok {
		return NoColor, &ColorParseError{Value: s, Err: errUnknownName}
	}
	if bright {
		idx += 8
	}
	return IndexColor(idx), nil
}

// ColorOr parses s, returning fallback if s is not a valid color
func ColorOr(s string, fallback Color) Color {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}

// ParseAdaptive parses a light and dark color pair. An invalid literal
// leaves its variant at the default color, and every parse error is returned
func ParseAdaptive(light string, dark string) (AdaptiveColor, error) {
	l, lerr := ParseColor(light)
	d, derr := ParseColor(dark)
	return AdaptiveColor{Light: l, Dark: d}, errors.Join(lerr, derr)
}

// Adaptive parses a light and dark color pair. Invalid literals become the
// default color; use ParseAdaptive to see the errors
func Adaptive(light string, dark string) AdaptiveColor {
	ac, _ := ParseAdaptive(light, dark)
	return ac
}
