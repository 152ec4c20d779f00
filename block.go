package gloss

import "strings"

// Block is a rectangle of terminal cells: lines which all share one display
// width. It is the result of rendering a Style and of composing blocks
type Block struct {
	lines []string
	width int
}

// NewBlock splits s into lines and pads every line with spaces to the width
// of the widest
func NewBlock(s string) Block {
	return defaultRenderer.NewBlock(s)
}

// NewBlock splits s into lines and pads every line with spaces to the width
// of the widest
func (r Renderer) NewBlock(s string) Block {
	return r.method.block(strings.Split(s, "\n"))
}

// block builds a Block from lines, padding them into a rectangle
func (m WidthMethod) block(lines []string) Block {
	widths := make([]int, len(lines))
	max := 0
	for i, line := range lines {
		widths[i] = m.lineWidth(line)
		if widths[i] > max {
			max = widths[i]
		}
	}
	for i, line := range lines {
		if widths[i] < max {
			lines[i] = line + strings.Repeat(" ", max-widths[i])
		}
	}
	return Block{lines: lines, width: max}
}

// Width returns the display width of the block
func (b Block) Width() int {
	return b.width
}

// Height returns the number of lines in the block
func (b Block) Height() int {
	return len(b.lines)
}

// Lines returns a copy of the lines of the block
func (b Block) Lines() []string {
	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	return lines
}

// String joins the lines of the block with newlines
func (b Block) String() string {
	return strings.Join(b.lines, "\n")
}
