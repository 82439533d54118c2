package colors

import (
	"testing"

	"github.com/scalablecory/colors/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaceName(t *testing.T) {
	names := []string{
		"RGB8", "RGB", "Linear RGB", "HSL", "HSV", "YUV", "YCbCr", "YDbDr", "YIQ",
		"XYZ", "xyY", "Lab", "Luv", "LCHab", "LCHuv", "LSHuv",
	}
	require.Len(t, types.All(), len(names))
	for i, s := range types.All() {
		assert.Equal(t, names[i], SpaceName(s))
		p, err := ParseSpace(names[i])
		require.NoError(t, err)
		assert.Equal(t, s, p)
	}
	assert.Panics(t, func() { SpaceName(types.Invalid) })
	assert.Panics(t, func() { SpaceName(Space(types.NumSpaces)) })
	assert.Equal(t, "Space(0)", types.Invalid.String())
}

func TestParseSpace(t *testing.T) {
	testCases := []struct {
		name string
		want Space
	}{
		{"lab", SpaceLab},
		{" XYY ", SpaceXyY},
		{"linear", SpaceLinearRGB},
		{"Linear-RGB", SpaceLinearRGB},
		{"CIELab", SpaceLab},
		{"ycc", SpaceYCbCr},
		{"lchuv", SpaceLCHuv},
	}
	for _, tc := range testCases {
		s, err := ParseSpace(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, s, tc.name)
	}
	_, err := ParseSpace("cmyk")
	require.ErrorIs(t, err, ErrUnknownSpace)
	assert.ErrorContains(t, err, `"cmyk"`)
}

func TestFlags(t *testing.T) {
	f := NewFlags(SMPTE240M, true)
	assert.Equal(t, Flags(6), f)
	assert.Equal(t, SMPTE240M, f.Matrix())
	assert.True(t, f.IsFullRange())
	assert.Equal(t, "SMPTE-240M full-range", f.String())
	assert.Equal(t, Flags(2), f.For(SpaceYUV))
	assert.Equal(t, f, f.For(SpaceYCbCr))
	assert.Equal(t, Flags(0), f.For(SpaceLab))
	assert.Equal(t, "Rec.601", Flags(0).String())
	assert.Equal(t, NewFlags(FCC, false), YUV{Matrix: FCC}.Flags())
}

func TestZero(t *testing.T) {
	for _, s := range types.All() {
		for _, f := range allFlags(s) {
			v := Zero(s, f|0xf8)
			assert.Equal(t, s, v.Space())
			assert.Equal(t, f, v.Flags())
			a, b, c := ExtractComponents(v)
			assert.Equal(t, []float64{0, 0, 0}, []float64{a, b, c})
		}
	}
	assert.Panics(t, func() { Zero(types.Invalid, 0) })
}

func TestComponents(t *testing.T) {
	testCases := []struct {
		v    Value
		want [3]float64
	}{
		{RGB8{1, 2, 3}, [3]float64{1, 2, 3}},
		{YCbCr{16, 128, 240, Rec709, true}, [3]float64{16, 128, 240}},
		{XyY{0.3, 0.4, 0.5}, [3]float64{0.3, 0.4, 0.5}},
		{LSHuv{50, 0.5, 1}, [3]float64{50, 0.5, 1}},
	}
	for _, tc := range testCases {
		a, b, c := ExtractComponents(tc.v)
		assert.Equal(t, tc.want, [3]float64{a, b, c}, tc.v.Space().String())
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "Lab(1, 2.5, -3)", Color{Lab{1, 2.5, -3}}.String())
	assert.Equal(t, "YCbCr[Rec.709 full-range](16, 128, 128)", Color{YCbCr{16, 128, 128, Rec709, true}}.String())
	assert.Equal(t, "YUV[FCC](1, 0, 0)", Color{YUV{1, 0, 0, FCC}}.String())
	assert.Equal(t, "Color{}", Color{}.String())
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "1.0.0", Version.String())
	testCases := []struct {
		other PackageVersion
		want  int
	}{
		{PackageVersion{0, 9, 9}, 1},
		{PackageVersion{1, 0, 0}, 0},
		{PackageVersion{1, 0, 1}, -1},
		{PackageVersion{0, 99, 0}, 1},
		{PackageVersion{2, 0, 0}, -1},
	}
	for _, tc := range testCases {
		t.Run(tc.other.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, Version.Compare(tc.other))
			assert.Equal(t, -tc.want, tc.other.Compare(Version))
		})
	}
	assert.True(t, Version.AtLeast(1, 0, 0))
	assert.False(t, Version.AtLeast(1, 1, 0))
}
