package gloss

import "strings"

// propKey marks which properties of a Style have been set
type propKey uint64

const (
	boldKey propKey = 1 << iota
	faintKey
	italicKey
	underlineKey
	blinkKey
	reverseKey
	strikethroughKey
	foregroundKey
	backgroundKey
	widthKey
	heightKey
	maxWidthKey
	maxHeightKey
	alignHorizontalKey
	alignVerticalKey
	paddingTopKey
	paddingRightKey
	paddingBottomKey
	paddingLeftKey
	colorWhitespaceKey
	marginTopKey
	marginRightKey
	marginBottomKey
	marginLeftKey
	marginBackgroundKey
	borderStyleKey
	borderTopKey
	borderRightKey
	borderBottomKey
	borderLeftKey
	borderTopForegroundKey
	borderRightForegroundKey
	borderBottomForegroundKey
	borderLeftForegroundKey
	borderTopBackgroundKey
	borderRightBackgroundKey
	borderBottomBackgroundKey
	borderLeftBackgroundKey
	inlineKey
	tabWidthKey
	valueKey

	lastKey = valueKey
)

// attributeMask represents a bitmask of boolean attributes
type attributeMask uint8

const (
	attrBold attributeMask = 1 << iota
	attrFaint
	attrItalic
	attrUnderline
	attrBlink
	attrReverse
	attrStrikethrough
)

var attrKeys = []struct {
	key  propKey
	attr attributeMask
}{
	{boldKey, attrBold},
	{faintKey, attrFaint},
	{italicKey, attrItalic},
	{underlineKey, attrUnderline},
	{blinkKey, attrBlink},
	{reverseKey, attrReverse},
	{strikethroughKey, attrStrikethrough},
}

const noTabConversion = -1

// Style is a set of rendering properties. Styles are values: every setter
// returns a modified copy and leaves the receiver untouched, so a Style can
// be shared freely and extended into families of related styles.
type Style struct {
	r     Renderer
	props propKey
	value string

	attrs      attributeMask
	fg         TerminalColor
	bg         TerminalColor
	width      int
	height     int
	maxWidth   int
	maxHeight  int
	alignH     Position
	alignV     Position
	padding    [4]int
	colorWS    bool
	margin     [4]int
	marginBg   TerminalColor
	border     Border
	borderSide [4]bool
	borderFg   [4]TerminalColor
	borderBg   [4]TerminalColor
	inline     bool
	tabWidth   int
}

// NewStyle returns an empty Style bound to the default Renderer
func NewStyle() Style {
	return defaultRenderer.NewStyle()
}

func (s Style) isSet(k propKey) bool {
	return s.props&k != 0
}

func (s Style) set(k propKey) Style {
	s.props |= k
	return s
}

func (s Style) unset(k propKey) Style {
	s.props &^= k
	return s
}

func (s Style) setAttr(k propKey, attr attributeMask, v bool) Style {
	if v {
		s.attrs |= attr
	} else {
		s.attrs &^= attr
	}
	return s.set(k)
}

// Copy returns a copy of s. Styles are values, so this is the same as
// assigning s
func (s Style) Copy() Style {
	return s
}

// Extend returns a copy of s with every property set on overrides applied
// over it. s is not modified. The Renderer of s is kept
func (s Style) Extend(overrides Style) Style {
	for k := propKey(1); k <= lastKey; k <<= 1 {
		if overrides.isSet(k) {
			s = s.copyProp(overrides, k)
		}
	}
	return s
}

// copyProp copies property k from o
func (s Style) copyProp(o Style, k propKey) Style {
	for _, a := range attrKeys {
		if a.key == k {
			return s.setAttr(k, a.attr, o.attrs&a.attr != 0)
		}
	}
	switch k {
	case foregroundKey:
		s.fg = o.fg
	case backgroundKey:
		s.bg = o.bg
	case widthKey:
		s.width = o.width
	case heightKey:
		s.height = o.height
	case maxWidthKey:
		s.maxWidth = o.maxWidth
	case maxHeightKey:
		s.maxHeight = o.maxHeight
	case alignHorizontalKey:
		s.alignH = o.alignH
	case alignVerticalKey:
		s.alignV = o.alignV
	case paddingTopKey:
		s.padding[top] = o.padding[top]
	case paddingRightKey:
		s.padding[right] = o.padding[right]
	case paddingBottomKey:
		s.padding[bottom] = o.padding[bottom]
	case paddingLeftKey:
		s.padding[left] = o.padding[left]
	case colorWhitespaceKey:
		s.colorWS = o.colorWS
	case marginTopKey:
		s.margin[top] = o.margin[top]
	case marginRightKey:
		s.margin[right] = o.margin[right]
	case marginBottomKey:
		s.margin[bottom] = o.margin[bottom]
	case marginLeftKey:
		s.margin[left] = o.margin[left]
	case marginBackgroundKey:
		s.marginBg = o.marginBg
	case borderStyleKey:
		s.border = o.border
	case borderTopKey:
		s.borderSide[top] = o.borderSide[top]
	case borderRightKey:
		s.borderSide[right] = o.borderSide[right]
	case borderBottomKey:
		s.borderSide[bottom] = o.borderSide[bottom]
	case borderLeftKey:
		s.borderSide[left] = o.borderSide[left]
	case borderTopForegroundKey:
		s.borderFg[top] = o.borderFg[top]
	case borderRightForegroundKey:
		s.borderFg[right] = o.borderFg[right]
	case borderBottomForegroundKey:
		s.borderFg[bottom] = o.borderFg[bottom]
	case borderLeftForegroundKey:
		s.borderFg[left] = o.borderFg[left]
	case borderTopBackgroundKey:
		s.borderBg[top] = o.borderBg[top]
	case borderRightBackgroundKey:
		s.borderBg[right] = o.borderBg[right]
	case borderBottomBackgroundKey:
		s.borderBg[bottom] = o.borderBg[bottom]
	case borderLeftBackgroundKey:
		s.borderBg[left] = o.borderBg[left]
	case inlineKey:
		s.inline = o.inline
	case tabWidthKey:
		s.tabWidth = o.tabWidth
	case valueKey:
		s.value = o.value
	}
	return s.set(k)
}

// Renderer returns a copy of s bound to r
func (s Style) Renderer(r Renderer) Style {
	s.r = r
	return s
}

// SetString sets content which is rendered before any arguments passed to
// Render
func (s Style) SetString(strs ...string) Style {
	s.value = strings.Join(strs, " ")
	return s.set(valueKey)
}

// Value returns the content set with SetString
func (s Style) Value() string {
	return s.value
}

// String renders the content set with SetString
func (s Style) String() string {
	return s.Render()
}

func (s Style) Bold(v bool) Style {
	return s.setAttr(boldKey, attrBold, v)
}

// Faint renders text with decreased intensity
func (s Style) Faint(v bool) Style {
	return s.setAttr(faintKey, attrFaint, v)
}

func (s Style) Italic(v bool) Style {
	return s.setAttr(italicKey, attrItalic, v)
}

func (s Style) Underline(v bool) Style {
	return s.setAttr(underlineKey, attrUnderline, v)
}

func (s Style) Blink(v bool) Style {
	return s.setAttr(blinkKey, attrBlink, v)
}

// Reverse swaps the foreground and background colors
func (s Style) Reverse(v bool) Style {
	return s.setAttr(reverseKey, attrReverse, v)
}

func (s Style) Strikethrough(v bool) Style {
	return s.setAttr(strikethroughKey, attrStrikethrough, v)
}

func (s Style) Foreground(c TerminalColor) Style {
	s.fg = c
	return s.set(foregroundKey)
}

func (s Style) Background(c TerminalColor) Style {
	s.bg = c
	return s.set(backgroundKey)
}

// Width sets the width of the block, including padding but not borders or
// margins. Content wider than the width is word wrapped
func (s Style) Width(w int) Style {
	s.width = nonNegative(w)
	return s.set(widthKey)
}

// Height sets the height of the block, including padding but not borders or
// margins. Shorter content is padded per the vertical alignment, taller
// content is truncated
func (s Style) Height(h int) Style {
	s.height = nonNegative(h)
	return s.set(heightKey)
}

// MaxWidth truncates the rendered block, borders and margins included, to w
// columns
func (s Style) MaxWidth(w int) Style {
	s.maxWidth = nonNegative(w)
	return s.set(maxWidthKey)
}

// MaxHeight truncates the rendered block, borders and margins included, to h
// lines
func (s Style) MaxHeight(h int) Style {
	s.maxHeight = nonNegative(h)
	return s.set(maxHeightKey)
}

// Align sets the horizontal alignment and, if given, the vertical alignment.
// It panics on an invalid Position
func (s Style) Align(p ...Position) Style {
	if len(p) > 0 {
		s = s.AlignHorizontal(p[0])
	}
	if len(p) > 1 {
		s = s.AlignVertical(p[1])
	}
	return s
}

func (s Style) AlignHorizontal(p Position) Style {
	p.mustValid()
	s.alignH = p
	return s.set(alignHorizontalKey)
}

func (s Style) AlignVertical(p Position) Style {
	p.mustValid()
	s.alignV = p
	return s.set(alignVerticalKey)
}

// Padding sets the padding with CSS shorthand: 1 value for all sides, 2 for
// vertical and horizontal, 3 for top, horizontal and bottom, or 4 for top,
// right, bottom and left
func (s Style) Padding(i ...int) Style {
	p := expandSides("Padding", i)
	return s.PaddingTop(p[top]).
		PaddingRight(p[right]).
		PaddingBottom(p[bottom]).
		PaddingLeft(p[left])
}

func (s Style) PaddingTop(i int) Style {
	s.padding[top] = nonNegative(i)
	return s.set(paddingTopKey)
}

func (s Style) PaddingRight(i int) Style {
	s.padding[right] = nonNegative(i)
	return s.set(paddingRightKey)
}

func (s Style) PaddingBottom(i int) Style {
	s.padding[bottom] = nonNegative(i)
	return s.set(paddingBottomKey)
}

func (s Style) PaddingLeft(i int) Style {
	s.padding[left] = nonNegative(i)
	return s.set(paddingLeftKey)
}

// ColorWhitespace sets whether padding and alignment whitespace is drawn with
// the background color. Default is true
func (s Style) ColorWhitespace(v bool) Style {
	s.colorWS = v
	return s.set(colorWhitespaceKey)
}

// Margin sets the margins with CSS shorthand, like Padding
func (s Style) Margin(i ...int) Style {
	m := expandSides("Margin", i)
	return s.MarginTop(m[top]).
		MarginRight(m[right]).
		MarginBottom(m[bottom]).
		MarginLeft(m[left])
}

func (s Style) MarginTop(i int) Style {
	s.margin[top] = nonNegative(i)
	return s.set(marginTopKey)
}

func (s Style) MarginRight(i int) Style {
	s.margin[right] = nonNegative(i)
	return s.set(marginRightKey)
}

func (s Style) MarginBottom(i int) Style {
	s.margin[bottom] = nonNegative(i)
	return s.set(marginBottomKey)
}

func (s Style) MarginLeft(i int) Style {
	s.margin[left] = nonNegative(i)
	return s.set(marginLeftKey)
}

// MarginBackground sets the color margins are filled with. Margins are not
// colored by default
func (s Style) MarginBackground(c TerminalColor) Style {
	s.marginBg = c
	return s.set(marginBackgroundKey)
}

// Border sets the border glyphs and, optionally, which sides are drawn using
// CSS shorthand. Without sides every side is drawn
func (s Style) Border(b Border, sides ...bool) Style {
	s = s.BorderStyle(b)
	if len(sides) == 0 {
		sides = []bool{true}
	}
	v := expandSides("Border", sides)
	return s.BorderTop(v[top]).
		BorderRight(v[right]).
		BorderBottom(v[bottom]).
		BorderLeft(v[left])
}

// BorderStyle sets the border glyphs. If no side has been set explicitly,
// every side is drawn
func (s Style) BorderStyle(b Border) Style {
	s.border = b
	return s.set(borderStyleKey)
}

func (s Style) BorderTop(v bool) Style {
	s.borderSide[top] = v
	return s.set(borderTopKey)
}

func (s Style) BorderRight(v bool) Style {
	s.borderSide[right] = v
	return s.set(borderRightKey)
}

func (s Style) BorderBottom(v bool) Style {
	s.borderSide[bottom] = v
	return s.set(borderBottomKey)
}

func (s Style) BorderLeft(v bool) Style {
	s.borderSide[left] = v
	return s.set(borderLeftKey)
}

// BorderForeground sets the border foreground with CSS shorthand
func (s Style) BorderForeground(c ...TerminalColor) Style {
	v := expandSides("BorderForeground", c)
	return s.BorderTopForeground(v[top]).
		BorderRightForeground(v[right]).
		BorderBottomForeground(v[bottom]).
		BorderLeftForeground(v[left])
}

func (s Style) BorderTopForeground(c TerminalColor) Style {
	s.borderFg[top] = c
	return s.set(borderTopForegroundKey)
}

func (s Style) BorderRightForeground(c TerminalColor) Style {
	s.borderFg[right] = c
	return s.set(borderRightForegroundKey)
}

func (s Style) BorderBottomForeground(c TerminalColor) Style {
	s.borderFg[bottom] = c
	return s.set(borderBottomForegroundKey)
}

func (s Style) BorderLeftForeground(c TerminalColor) Style {
	s.borderFg[left] = c
	return s.set(borderLeftForegroundKey)
}

// BorderBackground sets the border background with CSS shorthand
func (s Style) BorderBackground(c ...TerminalColor) Style {
	v := expandSides("BorderBackground", c)
	return s.BorderTopBackground(v[top]).
		BorderRightBackground(v[right]).
		BorderBottomBackground(v[bottom]).
		BorderLeftBackground(v[left])
}

func (s Style) BorderTopBackground(c TerminalColor) Style {
	s.borderBg[top] = c
	return s.set(borderTopBackgroundKey)
}

func (s Style) BorderRightBackground(c TerminalColor) Style {
	s.borderBg[right] = c
	return s.set(borderRightBackgroundKey)
}

func (s Style) BorderBottomBackground(c TerminalColor) Style {
	s.borderBg[bottom] = c
	return s.set(borderBottomBackgroundKey)
}

func (s Style) BorderLeftBackground(c TerminalColor) Style {
	s.borderBg[left] = c
	return s.set(borderLeftBackgroundKey)
}

// Inline renders on a single line: newlines are removed and padding, borders,
// margins and sizing are ignored
func (s Style) Inline(v bool) Style {
	s.inline = v
	return s.set(inlineKey)
}

// TabWidth sets the number of spaces a tab is expanded to. 0 removes tabs, -1
// leaves them untouched
func (s Style) TabWidth(n int) Style {
	if n < noTabConversion {
		n = noTabConversion
	}
	s.tabWidth = n
	return s.set(tabWidthKey)
}

func nonNegative(i int) int {
	if i < 0 {
		return 0
	}
	return i
}
