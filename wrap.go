package gloss

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"git.sr.ht/~rockorager/gloss/ansi"
)

func isSpace(g glyph) bool {
	if g.grapheme == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(g.grapheme)
	return unicode.IsSpace(r)
}

func joinGlyphs(gs []glyph) string {
	s := ""
	for _, g := range gs {
		s += g.String()
	}
	return s
}

func glyphsWidth(gs []glyph) int {
	w := 0
	for _, g := range gs {
		w += g.width
	}
	return w
}

// seqsOnly returns the escape sequences of gs without their graphemes. Zero
// width sequences must survive whitespace dropped at a break
func seqsOnly(gs []glyph) []glyph {
	var out []glyph
	for _, g := range gs {
		if g.seqs != "" {
			out = append(out, glyph{seqs: g.seqs})
		}
	}
	return out
}

// wrapScanner word-wraps a single line to a width. Lines break at whitespace
// where possible; words longer than the width are broken between graphemes.
// Leading whitespace is kept, whitespace at a break is dropped
type wrapScanner struct {
	rest  []glyph
	width int
	lines []string
}

func (m WidthMethod) wrap(line string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	if m.lineWidth(line) <= width {
		return []string{line}
	}
	s := &wrapScanner{
		rest:  m.glyphs(line),
		width: width,
	}
	return reopen(s.scan())
}

// carrySeqs returns the SGR sequences and the hyperlink active after line,
// given those active before it
func carrySeqs(line string, sgr string, link string) (string, string) {
	for {
		i := strings.IndexByte(line, 0x1b)
		if i < 0 {
			return sgr, link
		}
		seq, rest, ok := ansi.Cut(line[i:])
		if !ok {
			line = line[i+1:]
			continue
		}
		line = rest
		if uri, ok := ansi.Hyperlink(seq); ok {
			link = seq
			if uri == "" {
				link = ""
			}
			continue
		}
		switch {
		case ansi.IsReset(seq):
			sgr = ""
		case ansi.IsSGR(seq):
			sgr += seq
		}
	}
}

// reopen closes the SGR attributes and hyperlink left active at the end of
// each line and opens them again at the start of the next, so that no line
// leaks its style into whatever is drawn after it
func reopen(lines []string) []string {
	sgr, link := "", ""
	for i, line := range lines {
		nextSGR, nextLink := carrySeqs(line, sgr, link)
		line = sgr + link + line
		if nextLink != "" {
			line += ansi.HyperlinkReset
		}
		if nextSGR != "" {
			line += ansi.Reset
		}
		lines[i] = line
		sgr, link = nextSGR, nextLink
	}
	return lines
}

// nextSegment returns the next word and the whitespace trailing it
func (s *wrapScanner) nextSegment() (word []glyph, space []glyph) {
	i := 0
	for i < len(s.rest) && !isSpace(s.rest[i]) {
		i += 1
	}
	j := i
	for j < len(s.rest) && isSpace(s.rest[j]) {
		j += 1
	}
	word, space = s.rest[:i], s.rest[i:j]
	s.rest = s.rest[j:]
	return word, space
}

func (s *wrapScanner) scan() []string {
	var (
		cur     []glyph
		curW    int
		pending []glyph
		first   = true
	)
	flush := func() {
		s.lines = append(s.lines, joinGlyphs(cur))
		cur = nil
		curW = 0
	}

	for len(s.rest) > 0 {
		word, space := s.nextSegment()
		if first && len(word) == 0 {
			// Leading whitespace is content
			word, space = space, nil
			if len(s.rest) > 0 {
				w, sp := s.nextSegment()
				word = append(word[:len(word):len(word)], w...)
				space = sp
			}
		}
		first = false

		wordW := glyphsWidth(word)
		pendingW := glyphsWidth(pending)
		switch {
		case curW+pendingW+wordW <= s.width:
			cur = append(cur, pending...)
			cur = append(cur, word...)
			curW += pendingW + wordW
		case wordW <= s.width:
			cur = append(cur, seqsOnly(pending)...)
			flush()
			cur = append(cur, word...)
			curW = wordW
		default:
			// This word is longer than the line. We have to break on
			// graphemes
			if len(cur) > 0 {
				cur = append(cur, seqsOnly(pending)...)
				flush()
			}
			for _, g := range word {
				if curW+g.width > s.width && len(cur) > 0 {
					flush()
				}
				cur = append(cur, g)
				curW += g.width
			}
		}
		pending = space
	}
	cur = append(cur, seqsOnly(pending)...)
	flush()
	return s.lines
}
