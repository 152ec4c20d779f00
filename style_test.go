package gloss

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtend(t *testing.T) {
	base := NewStyle().
		Bold(true).
		Foreground(IndexColor(1)).
		Width(10)
	overrides := NewStyle().
		Foreground(IndexColor(2)).
		Padding(1)

	ext := base.Extend(overrides)

	assert.True(t, ext.GetBold())
	assert.Equal(t, IndexColor(2), ext.GetForeground())
	assert.Equal(t, 10, ext.GetWidth())
	pt, pr, pb, pl := ext.GetPadding()
	assert.Equal(t, []int{1, 1, 1, 1}, []int{pt, pr, pb, pl})

	// base is untouched
	assert.Equal(t, IndexColor(1), base.GetForeground())
	pt, pr, pb, pl = base.GetPadding()
	assert.Equal(t, []int{0, 0, 0, 0}, []int{pt, pr, pb, pl})
}

func TestExtendOverridesWithFalse(t *testing.T) {
	base := NewStyle().Bold(true).Italic(true)
	ext := base.Extend(NewStyle().Bold(false))
	assert.False(t, ext.GetBold())
	assert.True(t, ext.GetItalic())
	assert.True(t, base.GetBold())
}

func TestExtendKeepsRenderer(t *testing.T) {
	light := NewRenderer(Options{LightBackground: true})
	base := light.NewStyle()
	ext := base.Extend(NewStyle().Bold(true))
	assert.False(t, ext.r.HasDarkBackground())
}

func TestSettersReturnCopies(t *testing.T) {
	s := NewStyle()
	_ = s.Bold(true).Padding(2).Border(NormalBorder())
	assert.False(t, s.GetBold())
	assert.Equal(t, "x", s.Render("x"))
}

func TestConcurrentRender(t *testing.T) {
	base := NewStyle().
		Border(RoundedBorder()).
		BorderForeground(HexColor(0x874BFD)).
		Padding(1, 2)

	expected := make([]string, 16)
	for i := range expected {
		expected[i] = base.Extend(NewStyle().Foreground(IndexColor(uint8(i)))).Render(fmt.Sprintf("item %d", i))
	}

	var wg sync.WaitGroup
	results := make([]string, len(expected))
	for i := range expected {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			style := base.Extend(NewStyle().Foreground(IndexColor(uint8(i))))
			results[i] = style.Render(fmt.Sprintf("item %d", i))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, expected, results)
	assert.Nil(t, base.GetForeground())
}

func TestShorthand(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{"one", []int{1}, []int{1, 1, 1, 1}},
		{"two", []int{1, 2}, []int{1, 2, 1, 2}},
		{"three", []int{1, 2, 3}, []int{1, 2, 3, 2}},
		{"four", []int{1, 2, 3, 4}, []int{1, 2, 3, 4}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := NewStyle().Padding(test.input...).Margin(test.input...)
			pt, pr, pb, pl := s.GetPadding()
			assert.Equal(t, test.expected, []int{pt, pr, pb, pl})
			mt, mr, mb, ml := s.GetMargin()
			assert.Equal(t, test.expected, []int{mt, mr, mb, ml})
		})
	}
}

func TestNegativeSizesClamp(t *testing.T) {
	s := NewStyle().Padding(-1).Width(-5).Height(-2)
	pt, _, _, _ := s.GetPadding()
	assert.Equal(t, 0, pt)
	assert.Equal(t, 0, s.GetWidth())
	assert.Equal(t, 0, s.GetHeight())
}

func TestStylePanics(t *testing.T) {
	assert.Panics(t, func() { NewStyle().Align(Position(7)) })
	assert.Panics(t, func() { NewStyle().AlignVertical(Position(3)) })
	assert.Panics(t, func() { NewStyle().Padding() })
	assert.Panics(t, func() { NewStyle().Padding(1, 2, 3, 4, 5) })
	assert.Panics(t, func() { NewStyle().Margin(1, 2, 3, 4, 5) })
	assert.Panics(t, func() { NewStyle().Border(NormalBorder(), true, true, true, true, true) })
	assert.NotPanics(t, func() { NewStyle().Align(Right, Bottom) })
}

func TestGetBorder(t *testing.T) {
	_, top, right, bottom, left := NewStyle().GetBorder()
	assert.Equal(t, []bool{false, false, false, false}, []bool{top, right, bottom, left})

	b, top, right, bottom, left := NewStyle().BorderStyle(DoubleBorder()).GetBorder()
	assert.Equal(t, DoubleBorder(), b)
	assert.Equal(t, []bool{true, true, true, true}, []bool{top, right, bottom, left})

	_, top, right, bottom, left = NewStyle().BorderStyle(DoubleBorder()).BorderTop(true).GetBorder()
	assert.Equal(t, []bool{true, false, false, false}, []bool{top, right, bottom, left})

	_, top, right, bottom, left = NewStyle().Border(NormalBorder(), true, false).GetBorder()
	assert.Equal(t, []bool{true, false, true, false}, []bool{top, right, bottom, left})
}

func TestUnset(t *testing.T) {
	s := NewStyle().
		Bold(true).
		Foreground(IndexColor(1)).
		Width(4).
		Padding(1).
		Border(NormalBorder()).
		SetString("hello")

	u := s.UnsetBold().
		UnsetForeground().
		UnsetWidth().
		UnsetPadding().
		UnsetBorder().
		UnsetString()
	assert.False(t, u.GetBold())
	assert.Nil(t, u.GetForeground())
	assert.Equal(t, 0, u.GetWidth())
	_, top, _, _, _ := u.GetBorder()
	assert.False(t, top)
	assert.Equal(t, "", u.Value())
	assert.Equal(t, "x", u.Render("x"))

	assert.True(t, s.GetBold())
	assert.Equal(t, "hello", s.Value())
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "start", Top.String())
	assert.Equal(t, "center", Center.String())
	assert.Equal(t, "end", Right.String())
	assert.Equal(t, "Position(9)", Position(9).String())
}

func TestPositionSplit(t *testing.T) {
	tests := []struct {
		pos    Position
		gap    int
		before int
		after  int
	}{
		{Start, 5, 0, 5},
		{Center, 5, 2, 3},
		{Center, 4, 2, 2},
		{End, 5, 5, 0},
		{Center, 0, 0, 0},
		{End, -3, 0, 0},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%s/%d", test.pos, test.gap), func(t *testing.T) {
			before, after := test.pos.split(test.gap)
			assert.Equal(t, test.before, before)
			assert.Equal(t, test.after, after)
		})
	}
}

func TestUnsetRestoresDefaults(t *testing.T) {
	tests := []struct {
		name     string
		style    Style
		input    string
		expected string
	}{
		{
			name:     "faint",
			style:    NewStyle().Faint(true).UnsetFaint(),
			input:    "x",
			expected: "x",
		},
		{
			name:     "blink and reverse",
			style:    NewStyle().Blink(true).Reverse(true).UnsetBlink().UnsetReverse(),
			input:    "x",
			expected: "x",
		},
		{
			name:     "max size",
			style:    NewStyle().MaxWidth(1).MaxHeight(1).UnsetMaxWidth().UnsetMaxHeight(),
			input:    "ab\ncd",
			expected: "ab\ncd",
		},
		{
			name:     "inline",
			style:    NewStyle().Inline(true).UnsetInline(),
			input:    "a\nb",
			expected: "a\nb",
		},
		{
			name:     "tab width",
			style:    NewStyle().TabWidth(1).UnsetTabWidth(),
			input:    "\tx",
			expected: "    x",
		},
		{
			name:     "color whitespace",
			style:    NewStyle().Background(IndexColor(4)).PaddingLeft(1).ColorWhitespace(false).UnsetColorWhitespace(),
			input:    "x",
			expected: "\x1b[44m \x1b[0m\x1b[44mx\x1b[0m",
		},
		{
			name:     "margin background",
			style:    NewStyle().MarginLeft(1).MarginBackground(IndexColor(4)).UnsetMarginBackground(),
			input:    "x",
			expected: " x",
		},
		{
			name:     "border colors",
			style:    NewStyle().Border(NormalBorder(), false, false, false, true).BorderForeground(IndexColor(1)).BorderBackground(IndexColor(2)).UnsetBorderForeground().UnsetBorderBackground(),
			input:    "x",
			expected: "│x",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.style.Render(test.input))
		})
	}
}
