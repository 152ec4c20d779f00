package gloss

import "fmt"

// Position is the alignment of a block along one axis
type Position uint8

const (
	Start Position = iota
	Center
	End
)

// Axis specific names for the positions
const (
	Top    = Start
	Left   = Start
	Bottom = End
	Right  = End
)

func (p Position) String() string {
	switch p {
	case Start:
		return "start"
	case Center:
		return "center"
	case End:
		return "end"
	}
	return fmt.Sprintf("Position(%d)", uint8(p))
}

// mustValid panics if p is not a known position. An unknown position is a
// programming error
func (p Position) mustValid() {
	if p > End {
		panic(fmt.Sprintf("gloss: invalid position %d", uint8(p)))
	}
}

// split divides gap into the space before and after a block aligned at p. The
// odd cell of a centered block goes after it
func (p Position) split(gap int) (before int, after int) {
	if gap <= 0 {
		return 0, 0
	}
	switch p {
	case Center:
		before = gap / 2
	case End:
		before = gap
	}
	return before, gap - before
}
