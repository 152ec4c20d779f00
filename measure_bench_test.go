package gloss

import (
	"strings"
	"testing"
)

func BenchmarkWidth(b *testing.B) {
	const testString = "\U0001F600\U0001F52E\U0001F30D\U0001F4CDtest string \x1b[1m猫咪\x1b[0m"

	for _, m := range []WidthMethod{UnicodeStd, WCWidth, NoZWJ} {
		b.Run(m.String(), func(b *testing.B) {
			for i := 0; i < b.N; i += 1 {
				m.lineWidth(testString)
			}
		})
	}
	b.Run("glyphs", func(b *testing.B) {
		for i := 0; i < b.N; i += 1 {
			UnicodeStd.glyphs(testString)
		}
	})
	b.Run("truncate", func(b *testing.B) {
		for i := 0; i < b.N; i += 1 {
			UnicodeStd.truncateLine(testString, 7)
		}
	})
}

func BenchmarkRender(b *testing.B) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 8)
	style := NewStyle().
		Width(40).
		Padding(1, 2).
		Border(RoundedBorder()).
		BorderForeground(HexColor(0x874BFD)).
		Foreground(AdaptiveColor{Light: HexColor(0x333333), Dark: HexColor(0xDDDDDD)})

	b.Run("render", func(b *testing.B) {
		for i := 0; i < b.N; i += 1 {
			style.Render(text)
		}
	})
	b.Run("join", func(b *testing.B) {
		box := style.Render(text)
		for i := 0; i < b.N; i += 1 {
			JoinHorizontal(Center, box, box, box)
		}
	})
}
