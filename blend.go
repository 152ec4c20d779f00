package gloss

import (
	"github.com/lucasb-eyer/go-colorful"
)

func (c Color) colorful() colorful.Color {
	r, g, b, _ := c.RGB()
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return RGBColor(r, g, b)
}

// Blend interpolates between c1 and c2 in the CIE L*u*v* color space, where
// equal steps of t are perceived as equal changes. t is clamped to [0, 1]: at
// 0 the result is c1 and at 1 it is c2. The default color blends as black
func Blend(c1 Color, c2 Color, t float64) Color {
	switch {
	case t <= 0:
		return c1
	case t >= 1:
		return c2
	}
	return fromColorful(c1.colorful().BlendLuv(c2.colorful(), t))
}

// Gradient returns steps colors evenly spaced from c1 to c2, both endpoints
// included
func Gradient(c1 Color, c2 Color, steps int) []Color {
	switch {
	case steps <= 0:
		return []Color{}
	case steps == 1:
		return []Color{c1}
	}
	colors := make([]Color, steps)
	for i := range colors {
		colors[i] = Blend(c1, c2, float64(i)/float64(steps-1))
	}
	return colors
}

// ColorGrid returns a ySteps by xSteps grid blended between four corner
// colors. Rows run from the top corners towards the bottom corners and
// columns from the left corners towards the right corners. The far edges are
// approached but not reached, so that adjacent grids tile
func ColorGrid(xSteps int, ySteps int, topLeft Color, topRight Color, bottomLeft Color, bottomRight Color) [][]Color {
	if xSteps <= 0 || ySteps <= 0 {
		return [][]Color{}
	}
	grid := make([][]Color, ySteps)
	for y := range grid {
		ty := float64(y) / float64(ySteps)
		left := Blend(topLeft, bottomLeft, ty)
		right := Blend(topRight, bottomRight, ty)
		row := make([]Color, xSteps)
		for x := range row {
			row[x] = Blend(left, right, float64(x)/float64(xSteps))
		}
		grid[y] = row
	}
	return grid
}
