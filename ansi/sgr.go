package ansi

import (
	"strconv"
	"strings"
)

// SGR parameters for the text attributes gloss emits
const (
	Bold          = "1"
	Faint         = "2"
	Italic        = "3"
	Underline     = "4"
	Blink         = "5"
	Reverse       = "7"
	Strikethrough = "9"
)

// Params accumulates SGR parameters. The zero value is ready to use
type Params struct {
	ps []string
}

// Add appends parameters
func (p *Params) Add(params ...string) {
	p.ps = append(p.ps, params...)
}

// Len returns the number of parameters
func (p *Params) Len() int {
	return len(p.ps)
}

// Foreground appends the parameters selecting a foreground color. Indexes
// below 16 use the legacy 30-37 and 90-97 forms.
func (p *Params) Foreground(c ColorParams) {
	p.color(c, 30, 90, "38")
}

// Background appends the parameters selecting a background color
func (p *Params) Background(c ColorParams) {
	p.color(c, 40, 100, "48")
}

func (p *Params) color(c ColorParams, base int, bright int, extended string) {
	switch len(c) {
	case 1:
		switch {
		case c[0] < 8:
			p.ps = append(p.ps, strconv.Itoa(base+int(c[0])))
		case c[0] < 16:
			p.ps = append(p.ps, strconv.Itoa(bright+int(c[0])-8))
		default:
			p.ps = append(p.ps, extended, "5", strconv.Itoa(int(c[0])))
		}
	case 3:
		p.ps = append(p.ps, extended, "2",
			strconv.Itoa(int(c[0])),
			strconv.Itoa(int(c[1])),
			strconv.Itoa(int(c[2])),
		)
	}
}

// Sequence returns the complete SGR sequence, or an empty string if there are
// no parameters
func (p *Params) Sequence() string {
	if len(p.ps) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(p.ps, ";") + "m"
}

// ColorParams are the parameters of a color: one value for an indexed color,
// three for an RGB color, none for the default color
type ColorParams []uint8
