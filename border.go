package gloss

// Border is the set of glyphs drawn around a block. Each field should be a
// single grapheme; an empty field on an enabled side is drawn as a space
type Border struct {
	Top         string
	Bottom      string
	Left        string
	Right       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

func NormalBorder() Border {
	return Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
	}
}

func RoundedBorder() Border {
	return Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}
}

func ThickBorder() Border {
	return Border{
		Top:         "━",
		Bottom:      "━",
		Left:        "┃",
		Right:       "┃",
		TopLeft:     "┏",
		TopRight:    "┓",
		BottomLeft:  "┗",
		BottomRight: "┛",
	}
}

func DoubleBorder() Border {
	return Border{
		Top:         "═",
		Bottom:      "═",
		Left:        "║",
		Right:       "║",
		TopLeft:     "╔",
		TopRight:    "╗",
		BottomLeft:  "╚",
		BottomRight: "╝",
	}
}

func BlockBorder() Border {
	return Border{
		Top:         "█",
		Bottom:      "█",
		Left:        "█",
		Right:       "█",
		TopLeft:     "█",
		TopRight:    "█",
		BottomLeft:  "█",
		BottomRight: "█",
	}
}

// OuterHalfBlockBorder draws half blocks on the outside of the box
func OuterHalfBlockBorder() Border {
	return Border{
		Top:         "▀",
		Bottom:      "▄",
		Left:        "▌",
		Right:       "▐",
		TopLeft:     "▛",
		TopRight:    "▜",
		BottomLeft:  "▙",
		BottomRight: "▟",
	}
}

// InnerHalfBlockBorder draws half blocks on the inside of the box
func InnerHalfBlockBorder() Border {
	return Border{
		Top:         "▄",
		Bottom:      "▀",
		Left:        "▐",
		Right:       "▌",
		TopLeft:     "▗",
		TopRight:    "▖",
		BottomLeft:  "▝",
		BottomRight: "▘",
	}
}

func ASCIIBorder() Border {
	return Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}
}

// HiddenBorder takes up space like a normal border but draws spaces
func HiddenBorder() Border {
	return Border{
		Top:         " ",
		Bottom:      " ",
		Left:        " ",
		Right:       " ",
		TopLeft:     " ",
		TopRight:    " ",
		BottomLeft:  " ",
		BottomRight: " ",
	}
}

// sides of a box, in CSS order
const (
	top = iota
	right
	bottom
	left
)

// expandSides expands CSS style shorthand: one value applies to all sides, two
// are vertical then horizontal, three are top, horizontal and bottom, four
// are top, right, bottom and left
func expandSides[T any](what string, vals []T) [4]T {
	switch len(vals) {
	case 1:
		return [4]T{vals[0], vals[0], vals[0], vals[0]}
	case 2:
		return [4]T{vals[0], vals[1], vals[0], vals[1]}
	case 3:
		return [4]T{vals[0], vals[1], vals[2], vals[1]}
	case 4:
		return [4]T{vals[0], vals[1], vals[2], vals[3]}
	}
	panic("gloss: " + what + " takes 1 to 4 values")
}
