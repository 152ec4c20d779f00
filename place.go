package gloss

import (
	"strings"

	"git.sr.ht/~rockorager/gloss/ansi"
)

// WhitespaceOption configures the whitespace Place fills a canvas with
type WhitespaceOption func(*whitespace)

type whitespace struct {
	chars string
	fg    TerminalColor
	bg    TerminalColor
}

// WithWhitespaceChars fills with a repeating pattern instead of spaces
func WithWhitespaceChars(s string) WhitespaceOption {
	return func(w *whitespace) {
		w.chars = s
	}
}

func WithWhitespaceForeground(c TerminalColor) WhitespaceOption {
	return func(w *whitespace) {
		w.fg = c
	}
}

func WithWhitespaceBackground(c TerminalColor) WhitespaceOption {
	return func(w *whitespace) {
		w.bg = c
	}
}

func newWhitespace(opts []WhitespaceOption) whitespace {
	ws := whitespace{}
	for _, opt := range opts {
		opt(&ws)
	}
	return ws
}

// render returns exactly width columns of fill. The pattern restarts at
// every call; a glyph which would overflow is replaced by spaces
func (ws whitespace) render(r Renderer, width int) string {
	if width <= 0 {
		return ""
	}
	fill := strings.Repeat(" ", width)
	if ws.chars != "" {
		fill = r.method.edge(ws.chars, width)
	}
	p := ansi.Params{}
	if ws.fg != nil {
		p.Foreground(r.Resolve(ws.fg).Params())
	}
	if ws.bg != nil {
		p.Background(r.Resolve(ws.bg).Params())
	}
	return styled(p.Sequence(), fill)
}

// Place places s in a canvas of exactly width by height cells, aligned per
// hPos and vPos. Uncovered cells are filled with whitespace. Content larger
// than the canvas is truncated
func Place(width int, height int, hPos Position, vPos Position, s string, opts ...WhitespaceOption) string {
	return defaultRenderer.Place(width, height, hPos, vPos, s, opts...)
}

// PlaceHorizontal places s in a canvas of exactly width columns
func PlaceHorizontal(width int, pos Position, s string, opts ...WhitespaceOption) string {
	return defaultRenderer.PlaceHorizontal(width, pos, s, opts...)
}

// PlaceVertical places s in a canvas of exactly height lines
func PlaceVertical(height int, pos Position, s string, opts ...WhitespaceOption) string {
	return defaultRenderer.PlaceVertical(height, pos, s, opts...)
}

// Place places s in a canvas of exactly width by height cells
func (r Renderer) Place(width int, height int, hPos Position, vPos Position, s string, opts ...WhitespaceOption) string {
	hPos.mustValid()
	vPos.mustValid()
	if width <= 0 || height <= 0 {
		return ""
	}
	ws := newWhitespace(opts)
	b := r.placeHorizontal(width, hPos, r.NewBlock(s), ws)
	return r.placeVertical(height, vPos, b, ws).String()
}

// PlaceHorizontal places s in a canvas of exactly width columns
func (r Renderer) PlaceHorizontal(width int, pos Position, s string, opts ...WhitespaceOption) string {
	pos.mustValid()
	if width <= 0 {
		return ""
	}
	return r.placeHorizontal(width, pos, r.NewBlock(s), newWhitespace(opts)).String()
}

// PlaceVertical places s in a canvas of exactly height lines
func (r Renderer) PlaceVertical(height int, pos Position, s string, opts ...WhitespaceOption) string {
	pos.mustValid()
	if height <= 0 {
		return ""
	}
	return r.placeVertical(height, pos, r.NewBlock(s), newWhitespace(opts)).String()
}

func (r Renderer) placeHorizontal(width int, pos Position, b Block, ws whitespace) Block {
	lines := make([]string, len(b.lines))
	if b.width >= width {
		if b.width > width {
			r.logger().Debug("truncating content to canvas width", "width", width, "content", b.width)
		}
		for i, line := range b.lines {
			line = r.method.truncateLine(line, width)
			// a wide grapheme cut at the edge leaves a gap
			lines[i] = line + ws.render(r, width-r.method.lineWidth(line))
		}
		return Block{lines: lines, width: width}
	}
	before, after := pos.split(width - b.width)
	left := ws.render(r, before)
	right := ws.render(r, after)
	for i, line := range b.lines {
		lines[i] = left + line + right
	}
	return Block{lines: lines, width: width}
}

func (r Renderer) placeVertical(height int, pos Position, b Block, ws whitespace) Block {
	if len(b.lines) >= height {
		if len(b.lines) > height {
			r.logger().Debug("truncating content to canvas height", "height", height, "content", len(b.lines))
		}
		lines := make([]string, height)
		copy(lines, b.lines)
		return Block{lines: lines, width: b.width}
	}
	before, after := pos.split(height - len(b.lines))
	blank := ws.render(r, b.width)
	lines := make([]string, 0, height)
	for i := 0; i < before; i += 1 {
		lines = append(lines, blank)
	}
	lines = append(lines, b.lines...)
	for i := 0; i < after; i += 1 {
		lines = append(lines, blank)
	}
	return Block{lines: lines, width: b.width}
}
