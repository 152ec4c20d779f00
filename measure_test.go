package gloss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "empty",
			input:    "",
			expected: 0,
		},
		{
			name:     "ascii",
			input:    "hello",
			expected: 5,
		},
		{
			name:     "wide",
			input:    "猫咪",
			expected: 4,
		},
		{
			name:     "sgr has no width",
			input:    "\x1b[1;38;2;10;20;30mhello\x1b[0m",
			expected: 5,
		},
		{
			name:     "hyperlink has no width",
			input:    "\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\",
			expected: 4,
		},
		{
			name:     "combining mark",
			input:    "e\u0301",
			expected: 1,
		},
		{
			name:     "widest line",
			input:    "ab\nabcd\nabc",
			expected: 4,
		},
		{
			name:     "unterminated sequence is text",
			input:    "\x1b[31",
			expected: 3,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Width(test.input))
		})
	}
}

func TestWidthOfWideGlyphs(t *testing.T) {
	for n := 0; n < 10; n += 1 {
		s := strings.Repeat("世", n)
		assert.Equal(t, 2*n, Width(s))
		assert.Equal(t, 2*n, Width("\x1b[31m"+s+"\x1b[0m"))
	}
}

func TestHeightAndSize(t *testing.T) {
	assert.Equal(t, 1, Height(""))
	assert.Equal(t, 3, Height("a\nb\nc"))
	w, h := Size("ab\n猫猫猫")
	assert.Equal(t, 6, w)
	assert.Equal(t, 2, h)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "fits",
			input:    "hello",
			width:    5,
			expected: "hello",
		},
		{
			name:     "ascii",
			input:    "hello",
			width:    3,
			expected: "hel",
		},
		{
			name:     "wide glyph is not split",
			input:    "猫咪",
			width:    3,
			expected: "猫",
		},
		{
			name:     "wide glyph at the edge is dropped",
			input:    "a猫",
			width:    2,
			expected: "a",
		},
		{
			name:     "closing sequence is kept",
			input:    "\x1b[31mhello\x1b[0m",
			width:    3,
			expected: "\x1b[31mhel\x1b[0m",
		},
		{
			name:     "dangling sequence is reset",
			input:    "\x1b[31mhello",
			width:    2,
			expected: "\x1b[31mhe\x1b[0m",
		},
		{
			name:     "zero width",
			input:    "hello",
			width:    0,
			expected: "",
		},
		{
			name:     "every line",
			input:    "abc\ndefg",
			width:    2,
			expected: "ab\nde",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Truncate(test.input, test.width)
			assert.Equal(t, test.expected, got)
			assert.LessOrEqual(t, Width(got), test.width)
		})
	}
}

func TestRendererWidthMethod(t *testing.T) {
	astronaut := "\U0001F469\u200D\U0001F680"
	assert.Equal(t, 2, NewRenderer(Options{}).Width(astronaut))
	assert.Equal(t, 4, NewRenderer(Options{WidthMethod: WCWidth}).Width(astronaut))
	assert.Equal(t, 4, NewRenderer(Options{WidthMethod: NoZWJ}).Width(astronaut))
}
