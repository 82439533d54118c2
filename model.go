package colors

import (
	"image/color"

	"github.com/scalablecory/colors/types"
)

// RGBA widens each channel from 8 to 16 bits. RGB8 is always opaque.
func (c RGB8) RGBA() (r, g, b, a uint32) {
	return uint32(c.R) * 0x101, uint32(c.G) * 0x101, uint32(c.B) * 0x101, 0xffff
}

// RGBA converts a copy of c to RGB8, so that a Color in any space can be used
// as a color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return To(c.Value, types.RGB8, 0).(RGB8).RGBA()
}

func rgb8Model(c color.Color) color.Color {
	switch v := c.(type) {
	case RGB8:
		return v
	case Color:
		return To(v.Value, types.RGB8, 0).(RGB8)
	case *Color:
		return To(v.Value, types.RGB8, 0).(RGB8)
	}
	// NRGBA takes care of undoing the alpha premultiplication
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return RGB8{}
	}
	return RGB8{n.R, n.G, n.B}
}

// Model converts any color.Color to RGB8, dropping alpha.
var Model color.Model = color.ModelFunc(rgb8Model)

// FromColor wraps c, converted to RGB8, ready for Convert.
func FromColor(c color.Color) Color {
	return Color{Model.Convert(c).(RGB8)}
}
