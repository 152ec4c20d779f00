package gloss

import (
	"strings"

	"github.com/rivo/uniseg"

	"git.sr.ht/~rockorager/gloss/ansi"
)

// glyph is a grapheme cluster and the escape sequences preceding it. A glyph
// with an empty grapheme carries only trailing sequences
type glyph struct {
	seqs     string
	grapheme string
	width    int
}

func (g glyph) String() string {
	return g.seqs + g.grapheme
}

// glyphs splits a single line into glyphs
func (m WidthMethod) glyphs(s string) []glyph {
	gs := make([]glyph, 0, len(s))
	seqs := ""
	state := -1
	cluster := ""
	w := 0
	for s != "" {
		if seq, rest, ok := ansi.Cut(s); ok {
			seqs += seq
			s = rest
			// sequences interrupt grapheme clusters
			state = -1
			continue
		}
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if m != UnicodeStd {
			w = gwidth(cluster, m)
		}
		gs = append(gs, glyph{seqs: seqs, grapheme: cluster, width: w})
		seqs = ""
	}
	if seqs != "" {
		gs = append(gs, glyph{seqs: seqs})
	}
	return gs
}

// lineWidth measures a single line
func (m WidthMethod) lineWidth(s string) int {
	total := 0
	state := -1
	cluster := ""
	w := 0
	for s != "" {
		if _, rest, ok := ansi.Cut(s); ok {
			s = rest
			state = -1
			continue
		}
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if m != UnicodeStd {
			w = gwidth(cluster, m)
		}
		total += w
	}
	return total
}

// width returns the width of the widest line in s
func (m WidthMethod) width(s string) int {
	max := 0
	for _, line := range strings.Split(s, "\n") {
		if w := m.lineWidth(line); w > max {
			max = w
		}
	}
	return max
}

// truncateLine cuts a single line to at most w columns. Escape sequences are
// kept, and a reset is appended if the cut leaves SGR attributes active
func (m WidthMethod) truncateLine(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if m.lineWidth(s) <= w {
		return s
	}
	b := ansi.GetBuilder()
	defer ansi.PutBuilder(b)
	var (
		total int
		full  bool
		open  bool
	)
	for _, g := range m.glyphs(s) {
		b.WriteString(g.seqs)
		if strings.Contains(g.seqs, "\x1b[") {
			open = sgrOpen(g.seqs, open)
		}
		if full || g.grapheme == "" {
			continue
		}
		if total+g.width > w {
			// Keep copying sequences so that anything closed
			// after the cut is still closed
			full = true
			continue
		}
		b.WriteString(g.grapheme)
		total += g.width
	}
	if open {
		b.WriteString(ansi.Reset)
	}
	return b.String()
}

// sgrOpen reports whether SGR attributes are active after seqs, given whether
// they were active before
func sgrOpen(seqs string, open bool) bool {
	for seqs != "" {
		seq, rest, ok := ansi.Cut(seqs)
		if !ok {
			return open
		}
		seqs = rest
		switch {
		case ansi.IsReset(seq):
			open = false
		case ansi.IsSGR(seq):
			open = true
		}
	}
	return open
}

func (m WidthMethod) truncate(s string, w int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = m.truncateLine(line, w)
	}
	return strings.Join(lines, "\n")
}

// Width returns the display width of the widest line in s. Escape sequences
// have no width, wide graphemes are two columns wide
func Width(s string) int {
	return defaultRenderer.Width(s)
}

// Height returns the number of lines in s
func Height(s string) int {
	return strings.Count(s, "\n") + 1
}

// Size returns the width and height of s
func Size(s string) (width int, height int) {
	return Width(s), Height(s)
}

// Truncate cuts every line of s to at most w columns. Lines are cut on
// grapheme boundaries: a wide grapheme which would straddle the limit is
// dropped entirely
func Truncate(s string, w int) string {
	return defaultRenderer.Truncate(s, w)
}

// Width returns the display width of the widest line in s
func (r Renderer) Width(s string) int {
	return r.method.width(s)
}

// Size returns the width and height of s
func (r Renderer) Size(s string) (width int, height int) {
	return r.method.width(s), Height(s)
}

// Truncate cuts every line of s to at most w columns
func (r Renderer) Truncate(s string, w int) string {
	return r.method.truncate(s, w)
}
