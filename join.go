package gloss

import "strings"

// JoinHorizontal places blocks side by side. Shorter blocks are padded
// vertically per pos: Top pads below, Bottom pads above and Center splits the
// padding, with the odd row below. The result is as tall as the tallest block
// and as wide as all blocks together
func JoinHorizontal(pos Position, strs ...string) string {
	return defaultRenderer.JoinHorizontal(pos, strs...)
}

// JoinVertical stacks blocks. Narrower blocks are padded horizontally per
// pos to the width of the widest block; a centered block has the odd column on
// its right
func JoinVertical(pos Position, strs ...string) string {
	return defaultRenderer.JoinVertical(pos, strs...)
}

func (r Renderer) blocks(strs []string) []Block {
	blocks := make([]Block, 0, len(strs))
	for _, s := range strs {
		blocks = append(blocks, r.NewBlock(s))
	}
	return blocks
}

// JoinHorizontal places blocks side by side
func (r Renderer) JoinHorizontal(pos Position, strs ...string) string {
	pos.mustValid()
	if len(strs) == 0 {
		return ""
	}
	return joinHorizontal(pos, r.blocks(strs)).String()
}

// JoinVertical stacks blocks
func (r Renderer) JoinVertical(pos Position, strs ...string) string {
	pos.mustValid()
	if len(strs) == 0 {
		return ""
	}
	return joinVertical(pos, r.blocks(strs)).String()
}

func joinHorizontal(pos Position, blocks []Block) Block {
	maxHeight := 0
	for _, b := range blocks {
		if b.Height() > maxHeight {
			maxHeight = b.Height()
		}
	}

	lines := make([]strings.Builder, maxHeight)
	width := 0
	for _, b := range blocks {
		before, _ := pos.split(maxHeight - b.Height())
		blank := strings.Repeat(" ", b.width)
		for row := range lines {
			i := row - before
			if i >= 0 && i < len(b.lines) {
				lines[row].WriteString(b.lines[i])
				continue
			}
			lines[row].WriteString(blank)
		}
		width += b.width
	}

	out := make([]string, maxHeight)
	for i := range lines {
		out[i] = lines[i].String()
	}
	return Block{lines: out, width: width}
}

func joinVertical(pos Position, blocks []Block) Block {
	maxWidth := 0
	height := 0
	for _, b := range blocks {
		if b.width > maxWidth {
			maxWidth = b.width
		}
		height += b.Height()
	}

	out := make([]string, 0, height)
	for _, b := range blocks {
		before, after := pos.split(maxWidth - b.width)
		for _, line := range b.lines {
			out = append(out, spaces("", before)+line+spaces("", after))
		}
	}
	return Block{lines: out, width: maxWidth}
}
