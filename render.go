package gloss

import (
	"strings"

	"git.sr.ht/~rockorager/gloss/ansi"
)

// Render applies the style to strs, joined with spaces and preceded by any
// content set with SetString. The result is a rectangle: every line has the
// same display width
func (s Style) Render(strs ...string) string {
	return s.RenderBlock(strs...).String()
}

// RenderBlock is like Render but returns the Block. Rendering is a pipeline of
// stages, each taking and returning a rectangle: content, horizontal
// alignment, padding, height, border, margin and finally the maximum size
func (s Style) RenderBlock(strs ...string) Block {
	if s.isSet(valueKey) && s.value != "" {
		strs = append([]string{s.value}, strs...)
	}
	lines := s.normalize(strings.Join(strs, " "))

	if s.GetInline() {
		b := s.r.method.block(s.decorate(lines))
		return s.constrain(b)
	}

	lines, target := s.wrap(lines)
	b := s.alignHorizontal(s.decorate(lines), target)
	b = s.pad(b)
	b = s.fitHeight(b)
	b = s.applyBorder(b)
	b = s.applyMargin(b)
	return s.constrain(b)
}

func (s Style) normalize(str string) []string {
	str = strings.ReplaceAll(str, "\r\n", "\n")
	if tw := s.getTabWidth(); tw != noTabConversion {
		str = strings.ReplaceAll(str, "\t", strings.Repeat(" ", tw))
	}
	if s.GetInline() {
		str = strings.ReplaceAll(str, "\n", "")
	}
	return strings.Split(str, "\n")
}

// wrap word wraps lines to the content width. The content width is returned,
// or 0 if the style has no width
func (s Style) wrap(lines []string) ([]string, int) {
	w := s.GetWidth()
	if w == 0 {
		return reopen(lines), 0
	}
	_, pr, _, pl := s.GetPadding()
	wrapAt := w - pl - pr
	m := s.r.method
	if wrapAt <= 0 {
		// padding leaves no room for content
		return make([]string, len(lines)), 0
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		for _, l := range m.wrap(line, wrapAt) {
			// a wide grapheme can't be broken
			out = append(out, m.truncateLine(l, wrapAt))
		}
	}
	// attributes can span the original lines too
	return reopen(out), wrapAt
}

// textSeq returns the SGR sequence for the text attributes and colors
func (s Style) textSeq() string {
	p := ansi.Params{}
	if s.GetBold() {
		p.Add(ansi.Bold)
	}
	if s.GetFaint() {
		p.Add(ansi.Faint)
	}
	if s.GetItalic() {
		p.Add(ansi.Italic)
	}
	if s.GetUnderline() {
		p.Add(ansi.Underline)
	}
	if s.GetBlink() {
		p.Add(ansi.Blink)
	}
	if s.GetReverse() {
		p.Add(ansi.Reverse)
	}
	if s.GetStrikethrough() {
		p.Add(ansi.Strikethrough)
	}
	if fg := s.GetForeground(); fg != nil {
		p.Foreground(s.r.Resolve(fg).Params())
	}
	if bg := s.GetBackground(); bg != nil {
		p.Background(s.r.Resolve(bg).Params())
	}
	return p.Sequence()
}

// whitespaceSeq returns the SGR sequence for padding and alignment
// whitespace
func (s Style) whitespaceSeq() string {
	if !s.getColorWhitespace() {
		return ""
	}
	p := ansi.Params{}
	if s.GetReverse() {
		p.Add(ansi.Reverse)
	}
	if bg := s.GetBackground(); bg != nil {
		p.Background(s.r.Resolve(bg).Params())
	}
	return p.Sequence()
}

// styled wraps str in seq and a reset
func styled(seq string, str string) string {
	if seq == "" || str == "" {
		return str
	}
	return seq + str + ansi.Reset
}

func spaces(seq string, n int) string {
	if n <= 0 {
		return ""
	}
	return styled(seq, strings.Repeat(" ", n))
}

func blankLines(seq string, width int, n int) []string {
	lines := make([]string, n)
	blank := spaces(seq, width)
	for i := range lines {
		lines[i] = blank
	}
	return lines
}

func (s Style) decorate(lines []string) []string {
	seq := s.textSeq()
	if seq == "" {
		return lines
	}
	for i, line := range lines {
		if line == "" {
			continue
		}
		// Nested resets would end the style early. Restore it after
		// each one
		line = strings.ReplaceAll(line, ansi.Reset, ansi.Reset+seq)
		line = strings.ReplaceAll(line, "\x1b[m", "\x1b[m"+seq)
		lines[i] = seq + line + ansi.Reset
	}
	return lines
}

// alignHorizontal pads every line to target, or to the widest line if that
// is wider
func (s Style) alignHorizontal(lines []string, target int) Block {
	m := s.r.method
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = m.lineWidth(line)
		if widths[i] > target {
			target = widths[i]
		}
	}
	pos, _ := s.GetAlign()
	ws := s.whitespaceSeq()
	for i, line := range lines {
		before, after := pos.split(target - widths[i])
		lines[i] = spaces(ws, before) + line + spaces(ws, after)
	}
	return Block{lines: lines, width: target}
}

func (s Style) pad(b Block) Block {
	t, r, bt, l := s.GetPadding()
	if w := s.GetWidth(); w > 0 && l+r > w {
		// Padding wider than the block gives up columns from the right,
		// then the left
		excess := l + r - w
		cut := min(excess, r)
		r -= cut
		l -= excess - cut
	}
	if t == 0 && r == 0 && bt == 0 && l == 0 {
		return b
	}
	ws := s.whitespaceSeq()
	if l > 0 || r > 0 {
		for i, line := range b.lines {
			b.lines[i] = spaces(ws, l) + line + spaces(ws, r)
		}
		b.width += l + r
	}
	if t > 0 || bt > 0 {
		lines := make([]string, 0, t+len(b.lines)+bt)
		lines = append(lines, blankLines(ws, b.width, t)...)
		lines = append(lines, b.lines...)
		lines = append(lines, blankLines(ws, b.width, bt)...)
		b.lines = lines
	}
	return b
}

// fitHeight pads the block to the style's height per the vertical alignment,
// or truncates it
func (s Style) fitHeight(b Block) Block {
	h := s.GetHeight()
	switch {
	case h == 0 || h == len(b.lines):
		return b
	case h < len(b.lines):
		s.r.logger().Debug("truncating content to height", "height", h, "lines", len(b.lines))
		b.lines = b.lines[:h]
		return b
	}
	_, pos := s.GetAlign()
	before, after := pos.split(h - len(b.lines))
	ws := s.whitespaceSeq()
	lines := make([]string, 0, h)
	lines = append(lines, blankLines(ws, b.width, before)...)
	lines = append(lines, b.lines...)
	lines = append(lines, blankLines(ws, b.width, after)...)
	b.lines = lines
	return b
}

func (s Style) borderSeq(side int) string {
	p := ansi.Params{}
	if fg := s.getBorderColor(side, true); fg != nil {
		p.Foreground(s.r.Resolve(fg).Params())
	}
	if bg := s.getBorderColor(side, false); bg != nil {
		p.Background(s.r.Resolve(bg).Params())
	}
	return p.Sequence()
}

func (s Style) applyBorder(b Block) Block {
	border, hasTop, hasRight, hasBottom, hasLeft := s.GetBorder()
	if !hasTop && !hasRight && !hasBottom && !hasLeft {
		return b
	}
	m := s.r.method

	// Enabled sides and corners are never empty
	fallback := func(enabled bool, glyph *string) {
		if enabled && m.lineWidth(*glyph) == 0 {
			*glyph = " "
		}
	}
	fallback(hasTop, &border.Top)
	fallback(hasBottom, &border.Bottom)
	fallback(hasLeft, &border.Left)
	fallback(hasRight, &border.Right)
	fallback(hasTop && hasLeft, &border.TopLeft)
	fallback(hasTop && hasRight, &border.TopRight)
	fallback(hasBottom && hasLeft, &border.BottomLeft)
	fallback(hasBottom && hasRight, &border.BottomRight)

	var (
		leftGlyphs  []glyph
		rightGlyphs []glyph
		leftW       int
		rightW      int
	)
	if hasLeft {
		leftGlyphs, leftW = m.edgeGlyphs(border.Left)
	}
	if hasRight {
		rightGlyphs, rightW = m.edgeGlyphs(border.Right)
	}

	lines := make([]string, 0, len(b.lines)+2)
	horizontal := func(side int, l string, edge string, r string) string {
		line := ""
		if hasLeft {
			line += m.fit(l, leftW)
		}
		line += m.edge(edge, b.width)
		if hasRight {
			line += m.fit(r, rightW)
		}
		return styled(s.borderSeq(side), line)
	}
	if hasTop {
		lines = append(lines, horizontal(top, border.TopLeft, border.Top, border.TopRight))
	}
	leftSeq := s.borderSeq(left)
	rightSeq := s.borderSeq(right)
	for i, line := range b.lines {
		if hasLeft {
			g := leftGlyphs[i%len(leftGlyphs)]
			line = styled(leftSeq, m.fit(g.String(), leftW)) + line
		}
		if hasRight {
			g := rightGlyphs[i%len(rightGlyphs)]
			line += styled(rightSeq, m.fit(g.String(), rightW))
		}
		lines = append(lines, line)
	}
	if hasBottom {
		lines = append(lines, horizontal(bottom, border.BottomLeft, border.Bottom, border.BottomRight))
	}
	b.lines = lines
	b.width += leftW + rightW
	return b
}

// edgeGlyphs splits a vertical edge into the glyphs drawn on successive lines
// and returns the width of the widest
func (m WidthMethod) edgeGlyphs(edge string) ([]glyph, int) {
	var gs []glyph
	w := 0
	for _, g := range m.glyphs(edge) {
		if g.width == 0 {
			continue
		}
		gs = append(gs, g)
		if g.width > w {
			w = g.width
		}
	}
	if len(gs) == 0 {
		return []glyph{{grapheme: " ", width: 1}}, 1
	}
	return gs, w
}

// edge repeats the glyphs of pattern to fill exactly width columns. A glyph
// which would overflow is replaced by spaces
func (m WidthMethod) edge(pattern string, width int) string {
	gs, _ := m.edgeGlyphs(pattern)
	var sb strings.Builder
	total := 0
	for i := 0; total < width; i += 1 {
		g := gs[i%len(gs)]
		if total+g.width > width {
			sb.WriteString(strings.Repeat(" ", width-total))
			break
		}
		sb.WriteString(g.String())
		total += g.width
	}
	return sb.String()
}

// fit truncates or pads s to exactly w columns
func (m WidthMethod) fit(s string, w int) string {
	s = m.truncateLine(s, w)
	if n := m.lineWidth(s); n < w {
		s += strings.Repeat(" ", w-n)
	}
	return s
}

func (s Style) applyMargin(b Block) Block {
	t, r, bt, l := s.GetMargin()
	if t == 0 && r == 0 && bt == 0 && l == 0 {
		return b
	}
	seq := ""
	if s.isSet(marginBackgroundKey) && s.marginBg != nil {
		p := ansi.Params{}
		p.Background(s.r.Resolve(s.marginBg).Params())
		seq = p.Sequence()
	}
	if l > 0 || r > 0 {
		for i, line := range b.lines {
			b.lines[i] = spaces(seq, l) + line + spaces(seq, r)
		}
		b.width += l + r
	}
	if t > 0 || bt > 0 {
		lines := make([]string, 0, t+len(b.lines)+bt)
		lines = append(lines, blankLines(seq, b.width, t)...)
		lines = append(lines, b.lines...)
		lines = append(lines, blankLines(seq, b.width, bt)...)
		b.lines = lines
	}
	return b
}

// constrain applies the maximum width and height
func (s Style) constrain(b Block) Block {
	m := s.r.method
	if mw := s.GetMaxWidth(); mw > 0 && b.width > mw {
		s.r.logger().Debug("truncating block to max width", "maxWidth", mw, "width", b.width)
		for i, line := range b.lines {
			b.lines[i] = m.truncateLine(line, mw)
		}
		b = m.block(b.lines)
	}
	if mh := s.GetMaxHeight(); mh > 0 && len(b.lines) > mh {
		s.r.logger().Debug("truncating block to max height", "maxHeight", mh, "height", len(b.lines))
		b.lines = b.lines[:mh]
	}
	return b
}
