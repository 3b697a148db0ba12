package entity

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_Channels(t *testing.T) {
	c := Color(0x12AB7F)

	assert.Equal(t, uint8(0x12), c.R())
	assert.Equal(t, uint8(0xAB), c.G())
	assert.Equal(t, uint8(0x7F), c.B())
	assert.Equal(t, color.RGBA{0x12, 0xAB, 0x7F, 0xFF}, c.RGBA())
}

func TestColor_IgnoresHighByte(t *testing.T) {
	c := Color(0xFF000000 | 0x010203)

	assert.Equal(t, uint8(1), c.R())
	assert.Equal(t, uint8(2), c.G())
	assert.Equal(t, uint8(3), c.B())
}

func TestRGB(t *testing.T) {
	assert.Equal(t, ColorRed, RGB(255, 0, 0))
	assert.Equal(t, ColorGreen, RGB(0, 255, 0))
	assert.Equal(t, ColorBlue, RGB(0, 0, 255))
	assert.Equal(t, Color(0x102030), RGB(0x10, 0x20, 0x30))
}

func TestParseColor(t *testing.T) {
	t.Run("with hash", func(t *testing.T) {
		c, err := ParseColor("#FF8000")
		require.NoError(t, err)
		assert.Equal(t, Color(0xFF8000), c)
	})

	t.Run("without hash, lowercase", func(t *testing.T) {
		c, err := ParseColor("00ff00")
		require.NoError(t, err)
		assert.Equal(t, ColorGreen, c)
	})

	t.Run("round trips String", func(t *testing.T) {
		c, err := ParseColor(Color(0xABCDEF).String())
		require.NoError(t, err)
		assert.Equal(t, Color(0xABCDEF), c)
	})

	invalid := []string{"", "#FFF", "#GG0000", "#FF00FF00"}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			_, err := ParseColor(s)
			assert.Error(t, err)
		})
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()

	assert.Equal(t, ColorRed, p.Floor)
	assert.Equal(t, ColorBlue, p.Wall)
	assert.Equal(t, ColorGreen, p.Player)
	assert.Equal(t, ColorBlack, p.Background)
}
