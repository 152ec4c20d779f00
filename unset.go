package gloss

func (s Style) UnsetBold() Style {
	return s.unset(boldKey)
}

func (s Style) UnsetFaint() Style {
	return s.unset(faintKey)
}

func (s Style) UnsetItalic() Style {
	return s.unset(italicKey)
}

func (s Style) UnsetUnderline() Style {
	return s.unset(underlineKey)
}

func (s Style) UnsetBlink() Style {
	return s.unset(blinkKey)
}

func (s Style) UnsetReverse() Style {
	return s.unset(reverseKey)
}

func (s Style) UnsetStrikethrough() Style {
	return s.unset(strikethroughKey)
}

func (s Style) UnsetForeground() Style {
	return s.unset(foregroundKey)
}

func (s Style) UnsetBackground() Style {
	return s.unset(backgroundKey)
}

func (s Style) UnsetWidth() Style {
	return s.unset(widthKey)
}

func (s Style) UnsetHeight() Style {
	return s.unset(heightKey)
}

func (s Style) UnsetMaxWidth() Style {
	return s.unset(maxWidthKey)
}

func (s Style) UnsetMaxHeight() Style {
	return s.unset(maxHeightKey)
}

func (s Style) UnsetAlign() Style {
	return s.unset(alignHorizontalKey | alignVerticalKey)
}

func (s Style) UnsetPadding() Style {
	return s.unset(paddingTopKey | paddingRightKey | paddingBottomKey | paddingLeftKey)
}

func (s Style) UnsetMargins() Style {
	return s.unset(marginTopKey | marginRightKey | marginBottomKey | marginLeftKey | marginBackgroundKey)
}

// UnsetColorWhitespace restores the default of coloring whitespace
func (s Style) UnsetColorWhitespace() Style {
	return s.unset(colorWhitespaceKey)
}

func (s Style) UnsetMarginBackground() Style {
	return s.unset(marginBackgroundKey)
}

// UnsetBorder removes the border glyphs, sides and colors
func (s Style) UnsetBorder() Style {
	return s.unset(borderStyleKey |
		borderTopKey | borderRightKey | borderBottomKey | borderLeftKey |
		borderTopForegroundKey | borderRightForegroundKey | borderBottomForegroundKey | borderLeftForegroundKey |
		borderTopBackgroundKey | borderRightBackgroundKey | borderBottomBackgroundKey | borderLeftBackgroundKey)
}

func (s Style) UnsetBorderForeground() Style {
	return s.unset(borderTopForegroundKey | borderRightForegroundKey | borderBottomForegroundKey | borderLeftForegroundKey)
}

func (s Style) UnsetBorderBackground() Style {
	return s.unset(borderTopBackgroundKey | borderRightBackgroundKey | borderBottomBackgroundKey | borderLeftBackgroundKey)
}

func (s Style) UnsetInline() Style {
	return s.unset(inlineKey)
}

// UnsetTabWidth restores the Renderer's tab width
func (s Style) UnsetTabWidth() Style {
	return s.unset(tabWidthKey)
}

func (s Style) UnsetString() Style {
	s.value = ""
	return s.unset(valueKey)
}
