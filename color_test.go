package gloss

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected Color
	}{
		{"#FF0000", RGBColor(255, 0, 0)},
		{"#7d56f4", RGBColor(0x7d, 0x56, 0xf4)},
		{"#f00", RGBColor(255, 0, 0)},
		{"1", IndexColor(1)},
		{"255", IndexColor(255)},
		{"red", IndexColor(1)},
		{"Blue", IndexColor(4)},
		{"brightred", IndexColor(9)},
		{"bright-white", IndexColor(15)},
		{"", NoColor},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			c, err := ParseColor(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, c)
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, input := range []string{"#ff", "#12345", "#gggggg", "256", "-1", "chartreuse", "bright"} {
		t.Run(input, func(t *testing.T) {
			c, err := ParseColor(input)
			require.Error(t, err)
			assert.Equal(t, NoColor, c)
			var perr *ColorParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, input, perr.Value)
		})
	}
}

func TestColorOr(t *testing.T) {
	assert.Equal(t, IndexColor(2), ColorOr("nope", IndexColor(2)))
	assert.Equal(t, IndexColor(3), ColorOr("3", IndexColor(2)))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#00aabb", HexColor(0x00AABB).Hex())
	assert.Equal(t, "#cd0000", IndexColor(1).Hex())
	assert.Equal(t, "#000000", IndexColor(16).Hex())
	assert.Equal(t, "#ffffff", IndexColor(231).Hex())
	assert.Equal(t, "#080808", IndexColor(232).Hex())
	assert.Equal(t, "#eeeeee", IndexColor(255).Hex())
	assert.Equal(t, "", NoColor.Hex())
}

func TestHexIsIdempotent(t *testing.T) {
	colors := []Color{
		NoColor,
		RGBColor(1, 2, 3),
		HexColor(0xF25D94),
		HexColor(0xFFFFFF),
	}
	for i := 0; i < 256; i += 1 {
		colors = append(colors, IndexColor(uint8(i)))
	}
	for _, c := range colors {
		hex := c.Hex()
		parsed, err := ParseColor(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, parsed.Hex())
	}
}

func TestResolve(t *testing.T) {
	ac := AdaptiveColor{Light: IndexColor(1), Dark: IndexColor(2)}
	assert.Equal(t, IndexColor(1), ac.Resolve(false))
	assert.Equal(t, IndexColor(2), ac.Resolve(true))
	assert.Equal(t, IndexColor(5), IndexColor(5).Resolve(true))
	assert.Equal(t, IndexColor(5), IndexColor(5).Resolve(false))

	assert.Equal(t, IndexColor(2), DefaultRenderer().Resolve(ac))
	assert.Equal(t, IndexColor(1), NewRenderer(Options{LightBackground: true}).Resolve(ac))
	assert.Equal(t, NoColor, DefaultRenderer().Resolve(nil))
}

func TestAdaptive(t *testing.T) {
	ac := Adaptive("#D9DCCF", "oops")
	assert.Equal(t, HexColor(0xD9DCCF), ac.Light)
	assert.Equal(t, NoColor, ac.Dark)
}

func TestParams(t *testing.T) {
	assert.Equal(t, []uint8{}, NoColor.Params())
	assert.Equal(t, []uint8{7}, IndexColor(7).Params())
	assert.Equal(t, []uint8{1, 2, 3}, RGBColor(1, 2, 3).Params())
}

func TestParseAdaptive(t *testing.T) {
	ac, err := ParseAdaptive("#D9DCCF", "#383838")
	require.NoError(t, err)
	assert.Equal(t, AdaptiveColor{Light: HexColor(0xD9DCCF), Dark: HexColor(0x383838)}, ac)

	ac, err = ParseAdaptive("oops", "2")
	require.Error(t, err)
	assert.Equal(t, AdaptiveColor{Light: NoColor, Dark: IndexColor(2)}, ac)
	var perr *ColorParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "oops", perr.Value)

	_, err = ParseAdaptive("bad", "worse")
	assert.ErrorContains(t, err, `"bad"`)
	assert.ErrorContains(t, err, `"worse"`)
}
