package gloss_test

import (
	"fmt"

	"git.sr.ht/~rockorager/gloss"
)

func ExampleHexColor() {
	// Creates an RGB color from a hex value
	color := gloss.HexColor(0x00AABB)
	fmt.Println(color.Hex())
	// Output: #00aabb
}

func ExampleIndexColor() {
	// Index 1 is usually a red
	color := gloss.IndexColor(1)
	fmt.Println(gloss.NewStyle().Foreground(color).Render("red") == "\x1b[31mred\x1b[0m")
	// Output: true
}

func ExampleAdaptiveColor() {
	subtle := gloss.AdaptiveColor{
		Light: gloss.HexColor(0xD9DCCF),
		Dark:  gloss.HexColor(0x383838),
	}
	light := gloss.NewRenderer(gloss.Options{LightBackground: true})
	fmt.Println(light.Resolve(subtle).Hex())
	fmt.Println(gloss.DefaultRenderer().Resolve(subtle).Hex())
	// Output:
	// #d9dccf
	// #383838
}

func ExampleBlend() {
	c1 := gloss.HexColor(0xF25D94)
	c2 := gloss.HexColor(0x643AFF)
	fmt.Println(gloss.Blend(c1, c2, 0).Hex())
	fmt.Println(gloss.Blend(c1, c2, 1).Hex())
	// Output:
	// #f25d94
	// #643aff
}
