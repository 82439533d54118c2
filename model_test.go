package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestModel(t *testing.T) {
	assert.Equal(t, RGB8{255, 0, 0}, Model.Convert(colornames.Red))
	assert.Equal(t, RGB8{0, 0, 128}, FromColor(colornames.Navy).Value)
	assert.Equal(t, RGB8{0, 0, 0}, Model.Convert(color.NRGBA{200, 100, 50, 0}))
	assert.Equal(t, RGB8{7, 8, 9}, Model.Convert(RGB8{7, 8, 9}))

	// alpha is removed from premultiplied input
	c := Model.Convert(color.NRGBA{200, 100, 50, 128}).(RGB8)
	assert.InDelta(t, 200, c.R, 1)
	assert.InDelta(t, 100, c.G, 1)
	assert.InDelta(t, 50, c.B, 1)

	assert.Equal(t, RGB8{199, 99, 49}, Model.Convert(color.RGBA{100, 50, 25, 128}))

	lab := To(RGB8{255, 0, 0}, SpaceLab, 0)
	assert.Equal(t, RGB8{255, 0, 0}, Model.Convert(Color{lab}))
	assert.Equal(t, RGB8{255, 0, 0}, Model.Convert(&Color{lab}))
}

func TestRGBA(t *testing.T) {
	r, g, b, a := RGB8{255, 128, 0}.RGBA()
	assert.Equal(t, []uint32{0xffff, 0x8080, 0, 0xffff}, []uint32{r, g, b, a})
	r, g, b, a = Color{To(RGB8{255, 0, 0}, SpaceXYZ, 0)}.RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})
	assert.Equal(t, "#FF8000", RGB8{255, 128, 0}.AsSharp())
	assert.Equal(t, "RGB8{FF 80 00}", RGB8{255, 128, 0}.String())
}

func TestNamedColorsRoundtrip(t *testing.T) {
	for name, nc := range colornames.Map {
		c := FromColor(nc)
		want := c.Value
		for _, s := range []Space{SpaceHSL, SpaceHSV, SpaceLab, SpaceLuv, SpaceLCHab, SpaceYIQ, SpaceYDbDr} {
			Convert(&c, s, 0)
			require.Equal(t, s, c.Space())
			Convert(&c, SpaceRGB8, 0)
			require.Equal(t, want, c.Value, "%s via %s", name, s)
		}
	}
}
