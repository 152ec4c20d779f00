package gloss

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// WidthMethod selects how the display width of a grapheme is measured.
// Terminals disagree on the width of complex graphemes, so the method should
// match the terminal the output is meant for.
type WidthMethod uint8

const (
	// UnicodeStd measures graphemes per UAX #11 and UTS #51, as modern
	// terminals do. This is the default.
	UnicodeStd WidthMethod = iota
	// WCWidth sums the wcwidth of each codepoint, as most legacy
	// terminals do
	WCWidth
	// NoZWJ measures per the unicode standard but ignores zero width
	// joiners
	NoZWJ
)

func (m WidthMethod) String() string {
	switch m {
	case UnicodeStd:
		return "unicode"
	case WCWidth:
		return "wcwidth"
	case NoZWJ:
		return "no-zwj"
	}
	return fmt.Sprintf("WidthMethod(%d)", uint8(m))
}

func (m WidthMethod) valid() bool {
	return m <= NoZWJ
}

// gwidth measures a single grapheme cluster
func gwidth(s string, method WidthMethod) int {
	switch method {
	case NoZWJ:
		s = strings.ReplaceAll(s, "\u200D", "")
		return uniseg.StringWidth(s)
	case WCWidth:
		total := 0
		for _, r := range s {
			if r >= 0xFE00 && r <= 0xFE0F {
				// Variation Selectors 1 - 16
				continue
			}
			if r >= 0xE0100 && r <= 0xE01EF {
				// Variation Selectors 17-256
				continue
			}
			total += runewidth.RuneWidth(r)
		}
		return total
	default:
		return uniseg.StringWidth(s)
	}
}
