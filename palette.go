package gloss

// The 16 base colors as xterm draws them
var basePalette = [16][3]uint8{
	{0x00, 0x00, 0x00},
	{0xcd, 0x00, 0x00},
	{0x00, 0xcd, 0x00},
	{0xcd, 0xcd, 0x00},
	{0x00, 0x00, 0xee},
	{0xcd, 0x00, 0xcd},
	{0x00, 0xcd, 0xcd},
	{0xe5, 0xe5, 0xe5},
	{0x7f, 0x7f, 0x7f},
	{0xff, 0x00, 0x00},
	{0x00, 0xff, 0x00},
	{0xff, 0xff, 0x00},
	{0x5c, 0x5c, 0xff},
	{0xff, 0x00, 0xff},
	{0x00, 0xff, 0xff},
	{0xff, 0xff, 0xff},
}

// Levels of the 6x6x6 color cube (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

// paletteRGB returns the RGB value of an xterm palette index
func paletteRGB(idx uint8) (r uint8, g uint8, b uint8) {
	switch {
	case idx < 16:
		c := basePalette[idx]
		return c[0], c[1], c[2]
	case idx < grayscaleStart:
		i := idx - 16
		return cubeValues[i/36], cubeValues[(i/6)%6], cubeValues[i%6]
	default:
		v := 8 + 10*(idx-grayscaleStart)
		return v, v, v
	}
}
