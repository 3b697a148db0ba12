package entity

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB value: red in bits 16-23, green 8-15, blue 0-7.
type Color uint32

// Default palette colors
const (
	ColorRed   Color = 0xFF0000
	ColorGreen Color = 0x00FF00
	ColorBlue  Color = 0x0000FF
	ColorBlack Color = 0x000000
)

// RGB composes a color from its three channels
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// R returns the red channel
func (c Color) R() uint8 {
	return uint8(c >> 16 & 0xFF)
}

// G returns the green channel
func (c Color) G() uint8 {
	return uint8(c >> 8 & 0xFF)
}

// B returns the blue channel
func (c Color) B() uint8 {
	return uint8(c & 0xFF)
}

// RGBA converts to an opaque image/color value
func (c Color) RGBA() color.RGBA {
	return color.RGBA{c.R(), c.G(), c.B(), 255}
}

// String returns the color as #RRGGBB
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
}

// ParseColor parses "#RRGGBB" (the leading # is optional)
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(v), nil
}

// Palette holds the fixed colors the map symbols and the player are drawn with.
type Palette struct {
	Floor      Color
	Wall       Color
	Player     Color
	Background Color
}

// DefaultPalette returns red floor, blue walls, a green player on black
func DefaultPalette() Palette {
	return Palette{
		Floor:      ColorRed,
		Wall:       ColorBlue,
		Player:     ColorGreen,
		Background: ColorBlack,
	}
}
