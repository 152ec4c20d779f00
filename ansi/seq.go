// Package ansi lexes the terminal escape sequences embedded in styled strings
// and builds the SGR sequences gloss emits.
package ansi

import "strings"

const (
	esc = 0x1b
	bel = 0x07

	// Reset clears every SGR attribute
	Reset = "\x1b[0m"
	// HyperlinkReset closes an OSC 8 hyperlink
	HyperlinkReset = "\x1b]8;;\x1b\\"
)

// Cut reports whether s begins with a complete escape sequence. If it does,
// the sequence and the remainder of s are returned. An ESC which does not
// start a complete sequence is not a sequence: callers treat it as text.
func Cut(s string) (seq string, rest string, ok bool) {
	if len(s) < 2 || s[0] != esc {
		return "", s, false
	}
	n := seqLen(s)
	if n == 0 {
		return "", s, false
	}
	return s[:n], s[n:], true
}

// seqLen returns the byte length of the sequence at the start of s, or 0 if s
// doesn't start with a complete sequence
func seqLen(s string) int {
	switch b := s[1]; {
	case b == '[':
		// CSI: parameter bytes, intermediate bytes, final byte
		i := 2
		for i < len(s) && s[i] >= 0x30 && s[i] <= 0x3F {
			i += 1
		}
		for i < len(s) && s[i] >= 0x20 && s[i] <= 0x2F {
			i += 1
		}
		if i < len(s) && s[i] >= 0x40 && s[i] <= 0x7E {
			return i + 1
		}
		return 0
	case b == ']' || b == 'P' || b == 'X' || b == '^' || b == '_':
		// OSC, DCS, SOS, PM, APC: terminated by BEL or ST
		for i := 2; i < len(s); i += 1 {
			switch s[i] {
			case bel:
				return i + 1
			case esc:
				if i+1 < len(s) && s[i+1] == '\\' {
					return i + 2
				}
				return 0
			}
		}
		return 0
	case b >= 0x20 && b <= 0x2F:
		// nF: intermediates then a final byte, ie ESC ( B
		i := 1
		for i < len(s) && s[i] >= 0x20 && s[i] <= 0x2F {
			i += 1
		}
		if i < len(s) && s[i] >= 0x30 && s[i] <= 0x7E {
			return i + 1
		}
		return 0
	case b >= 0x30 && b <= 0x7E:
		return 2
	}
	return 0
}

// Strip removes every complete escape sequence from s
func Strip(s string) string {
	if strings.IndexByte(s, esc) < 0 {
		return s
	}
	b := GetBuilder()
	defer PutBuilder(b)
	for len(s) > 0 {
		i := strings.IndexByte(s, esc)
		if i < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:i])
		s = s[i:]
		if _, rest, ok := Cut(s); ok {
			s = rest
			continue
		}
		b.WriteByte(s[0])
		s = s[1:]
	}
	return b.String()
}

// IsSGR reports whether seq is a Select Graphic Rendition sequence
func IsSGR(seq string) bool {
	return len(seq) >= 3 && seq[0] == esc && seq[1] == '[' && seq[len(seq)-1] == 'm'
}

// IsReset reports whether seq resets all SGR attributes
func IsReset(seq string) bool {
	return seq == Reset || seq == "\x1b[m"
}

// Hyperlink reports whether seq is an OSC 8 hyperlink and returns its URI. An
// empty URI closes the link
func Hyperlink(seq string) (uri string, ok bool) {
	body, found := strings.CutPrefix(seq, "\x1b]8;")
	if !found {
		return "", false
	}
	body = strings.TrimSuffix(body, "\x1b\\")
	body = strings.TrimSuffix(body, "\a")
	_, uri, found = strings.Cut(body, ";")
	if !found {
		return "", false
	}
	return uri, true
}
