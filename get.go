package gloss

func (s Style) getAttr(k propKey, attr attributeMask) bool {
	return s.isSet(k) && s.attrs&attr != 0
}

func (s Style) GetBold() bool {
	return s.getAttr(boldKey, attrBold)
}

func (s Style) GetFaint() bool {
	return s.getAttr(faintKey, attrFaint)
}

func (s Style) GetItalic() bool {
	return s.getAttr(italicKey, attrItalic)
}

func (s Style) GetUnderline() bool {
	return s.getAttr(underlineKey, attrUnderline)
}

func (s Style) GetBlink() bool {
	return s.getAttr(blinkKey, attrBlink)
}

func (s Style) GetReverse() bool {
	return s.getAttr(reverseKey, attrReverse)
}

func (s Style) GetStrikethrough() bool {
	return s.getAttr(strikethroughKey, attrStrikethrough)
}

// GetForeground returns the foreground color, or nil if it isn't set
func (s Style) GetForeground() TerminalColor {
	if !s.isSet(foregroundKey) {
		return nil
	}
	return s.fg
}

// GetBackground returns the background color, or nil if it isn't set
func (s Style) GetBackground() TerminalColor {
	if !s.isSet(backgroundKey) {
		return nil
	}
	return s.bg
}

func (s Style) GetWidth() int {
	if !s.isSet(widthKey) {
		return 0
	}
	return s.width
}

func (s Style) GetHeight() int {
	if !s.isSet(heightKey) {
		return 0
	}
	return s.height
}

func (s Style) GetMaxWidth() int {
	if !s.isSet(maxWidthKey) {
		return 0
	}
	return s.maxWidth
}

func (s Style) GetMaxHeight() int {
	if !s.isSet(maxHeightKey) {
		return 0
	}
	return s.maxHeight
}

// GetAlign returns the horizontal and vertical alignment
func (s Style) GetAlign() (horizontal Position, vertical Position) {
	if s.isSet(alignHorizontalKey) {
		horizontal = s.alignH
	}
	if s.isSet(alignVerticalKey) {
		vertical = s.alignV
	}
	return horizontal, vertical
}

// GetPadding returns the top, right, bottom and left padding
func (s Style) GetPadding() (t int, r int, b int, l int) {
	p := s.sides(s.padding, paddingTopKey, paddingRightKey, paddingBottomKey, paddingLeftKey)
	return p[top], p[right], p[bottom], p[left]
}

// GetMargin returns the top, right, bottom and left margins
func (s Style) GetMargin() (t int, r int, b int, l int) {
	m := s.sides(s.margin, marginTopKey, marginRightKey, marginBottomKey, marginLeftKey)
	return m[top], m[right], m[bottom], m[left]
}

func (s Style) sides(v [4]int, keys ...propKey) [4]int {
	var out [4]int
	for i, k := range keys {
		if s.isSet(k) {
			out[i] = v[i]
		}
	}
	return out
}

func (s Style) getColorWhitespace() bool {
	if !s.isSet(colorWhitespaceKey) {
		return true
	}
	return s.colorWS
}

// GetBorder returns the border glyphs and which sides are drawn. Setting the
// glyphs without choosing any side draws every side
func (s Style) GetBorder() (b Border, t bool, r bool, bt bool, l bool) {
	sideKeys := [4]propKey{borderTopKey, borderRightKey, borderBottomKey, borderLeftKey}
	var sides [4]bool
	anySide := false
	for i, k := range sideKeys {
		if s.isSet(k) {
			anySide = true
			sides[i] = s.borderSide[i]
		}
	}
	if s.isSet(borderStyleKey) {
		b = s.border
		if !anySide {
			sides = [4]bool{true, true, true, true}
		}
	}
	return b, sides[top], sides[right], sides[bottom], sides[left]
}

func (s Style) GetInline() bool {
	return s.isSet(inlineKey) && s.inline
}

func (s Style) getTabWidth() int {
	if !s.isSet(tabWidthKey) {
		if s.r.tabWidth == 0 {
			// zero Renderer
			return 4
		}
		return s.r.tabWidth
	}
	return s.tabWidth
}

func (s Style) getBorderColor(side int, fg bool) TerminalColor {
	var k propKey
	switch side {
	case top:
		k = borderTopForegroundKey
	case right:
		k = borderRightForegroundKey
	case bottom:
		k = borderBottomForegroundKey
	case left:
		k = borderLeftForegroundKey
	}
	if !fg {
		// background keys follow the four foreground keys
		k <<= 4
	}
	if !s.isSet(k) {
		return nil
	}
	if fg {
		return s.borderFg[side]
	}
	return s.borderBg[side]
}
