package cie

import (
	"math"
	"testing"

	"github.com/scalablecory/colors/mat3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

var tableCases = []struct {
	name    string
	R, G, B float64 // linear sRGB
}{
	{"red", 1, 0, 0},
	{"green", 0, 1, 0},
	{"blue", 0, 0, 1},
	{"white", 1, 1, 1},
	{"mid gray", 0.2, 0.2, 0.2},
	{"near black", 0.002, 0.002, 0.002},
	{"warm", 0.9, 0.4, 0.1},
	{"dark teal", 0.01, 0.05, 0.04},
	{"out of gamut", -0.1, 0.5, 0.2},
}

func TestMatricesAreInverses(t *testing.T) {
	p := mat3.Mul(linearFromXYZ, xyzFromLinear)
	require.True(t, mat3.Equal(&p, &mat3.Identity, 1e-12), "%v", p)
	p = mat3.Mul(linearFromNormalized, normalizedFromLinear)
	require.True(t, mat3.Equal(&p, &mat3.Identity, 1e-12), "%v", p)
}

func TestReferenceWhite(t *testing.T) {
	x, y, z := LinearRGBToXYZ(1, 1, 1)
	assert.InDelta(t, WhiteX, x, 1e-12)
	assert.InDelta(t, WhiteY, y, 1e-12)
	assert.InDelta(t, WhiteZ, z, 1e-12)

	L, a, b := XYZToLab(x, y, z)
	assert.InDeltaSlice(t, []float64{100, 0, 0}, []float64{L, a, b}, 1e-9)
	L, u, v := XYZToLuv(x, y, z)
	assert.InDeltaSlice(t, []float64{100, 0, 0}, []float64{L, u, v}, 1e-9)
}

func TestRedLab(t *testing.T) {
	L, a, b := XYZToLab(LinearRGBToXYZ(1, 0, 0))
	assert.InDelta(t, 53.24, L, 0.5)
	assert.InDelta(t, 80.09, a, 0.5)
	assert.InDelta(t, 67.20, b, 0.5)

	L, u, v := XYZToLuv(LinearRGBToXYZ(1, 0, 0))
	assert.InDelta(t, 53.24, L, 0.5)
	assert.InDelta(t, 175.01, u, 0.5)
	assert.InDelta(t, 37.76, v, 0.5)
}

func TestBlack(t *testing.T) {
	L, a, b := XYZToLab(0, 0, 0)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, []float64{L, a, b}, 1e-12)
	x, y, z := LabToXYZ(0, 0, 0)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, []float64{x, y, z}, 1e-12)

	L, u, v := XYZToLuv(0, 0, 0)
	assert.Equal(t, []float64{0, 0, 0}, []float64{math.Abs(L), math.Abs(u), math.Abs(v)})
	x, y, z = LuvToXYZ(0, 12, -3)
	assert.Equal(t, []float64{0, 0, 0}, []float64{x, y, z})
}

func TestShortcutsAgree(t *testing.T) {
	eps := 1e-9
	for _, tc := range tableCases {
		t.Run(tc.name+"/LinearRGB->Lab", func(t *testing.T) {
			L1, a1, b1 := LinearRGBToLab(tc.R, tc.G, tc.B)
			L2, a2, b2 := XYZToLab(LinearRGBToXYZ(tc.R, tc.G, tc.B))
			if !nearlyEqual(L1, L2, eps) || !nearlyEqual(a1, a2, eps) || !nearlyEqual(b1, b2, eps) {
				t.Fatalf("shortcut=(%.12f,%.12f,%.12f) via XYZ=(%.12f,%.12f,%.12f)", L1, a1, b1, L2, a2, b2)
			}
		})
		t.Run(tc.name+"/Lab->LinearRGB", func(t *testing.T) {
			L, a, b := LinearRGBToLab(tc.R, tc.G, tc.B)
			r1, g1, b1 := LabToLinearRGB(L, a, b)
			r2, g2, b2 := XYZToLinearRGB(LabToXYZ(L, a, b))
			if !nearlyEqual(r1, r2, eps) || !nearlyEqual(g1, g2, eps) || !nearlyEqual(b1, b2, eps) {
				t.Fatalf("shortcut=(%.12f,%.12f,%.12f) via XYZ=(%.12f,%.12f,%.12f)", r1, g1, b1, r2, g2, b2)
			}
		})
	}
}

func TestRoundtrip_TableDriven(t *testing.T) {
	eps := 1e-9
	for _, tc := range tableCases {
		want := []float64{tc.R, tc.G, tc.B}
		t.Run(tc.name+"/XYZ", func(t *testing.T) {
			r, g, b := XYZToLinearRGB(LinearRGBToXYZ(tc.R, tc.G, tc.B))
			assert.InDeltaSlice(t, want, []float64{r, g, b}, eps)
		})
		t.Run(tc.name+"/Lab", func(t *testing.T) {
			r, g, b := LabToLinearRGB(LinearRGBToLab(tc.R, tc.G, tc.B))
			assert.InDeltaSlice(t, want, []float64{r, g, b}, eps)
			r, g, b = XYZToLinearRGB(LabToXYZ(XYZToLab(LinearRGBToXYZ(tc.R, tc.G, tc.B))))
			assert.InDeltaSlice(t, want, []float64{r, g, b}, eps)
		})
		t.Run(tc.name+"/Luv", func(t *testing.T) {
			r, g, b := XYZToLinearRGB(LuvToXYZ(XYZToLuv(LinearRGBToXYZ(tc.R, tc.G, tc.B))))
			assert.InDeltaSlice(t, want, []float64{r, g, b}, eps)
		})
		t.Run(tc.name+"/xyY", func(t *testing.T) {
			r, g, b := XYZToLinearRGB(XyYToXYZ(XYZToXyY(LinearRGBToXYZ(tc.R, tc.G, tc.B))))
			assert.InDeltaSlice(t, want, []float64{r, g, b}, eps)
		})
		t.Run(tc.name+"/LCH", func(t *testing.T) {
			L, a, b := LinearRGBToLab(tc.R, tc.G, tc.B)
			L2, a2, b2 := FromPolar(ToPolar(L, a, b))
			assert.InDeltaSlice(t, []float64{L, a, b}, []float64{L2, a2, b2}, eps)
		})
	}
}

func TestLinearSegment(t *testing.T) {
	// below (6/29)^3 lightness is linear in Y
	y := 0.002
	L, _, _ := XYZToLab(y*WhiteX, y, y*WhiteZ)
	assert.InDelta(t, y*24389.0/27.0, L, 1e-12)
	L2, _, _ := XYZToLuv(y*WhiteX, y, y*WhiteZ)
	assert.InDelta(t, L, L2, 1e-12)
	assert.Less(t, L, 8.0)
	_, y2, _ := LabToXYZ(L, 0, 0)
	assert.InDelta(t, y, y2, 1e-15)
	_, y2, _ = LuvToXYZ(L2, 0, 0)
	assert.InDelta(t, y, y2, 1e-15)
}

func TestXyY(t *testing.T) {
	x, y, Y := XYZToXyY(WhiteX, WhiteY, WhiteZ)
	assert.InDelta(t, 0.3127, x, 1e-4)
	assert.InDelta(t, 0.3290, y, 1e-4)
	assert.Equal(t, 1.0, Y)

	// degenerate inputs
	x, y, Y = XYZToXyY(0, 0, 0)
	assert.Equal(t, []float64{0, 0, 0}, []float64{x, y, Y})
	X, Y2, Z := XyYToXYZ(0.3, 0, 0.5)
	assert.Equal(t, []float64{0, 0, 0}, []float64{X, Y2, Z})
}

func TestPolar(t *testing.T) {
	testCases := []struct {
		a, b float64
		C, h float64
	}{
		{1, 0, 1, 0},
		{0, 2, 2, math.Pi / 2},
		{-3, 0, 3, math.Pi},
		{0, -1, 1, 3 * math.Pi / 2},
		{3, -4, 5, 2*math.Pi - math.Atan2(4, 3)},
		{1, -1e-300, 1, 0},
	}
	for _, tc := range testCases {
		L, C, h := ToPolar(50, tc.a, tc.b)
		assert.Equal(t, 50.0, L)
		assert.InDelta(t, tc.C, C, 1e-12)
		assert.InDelta(t, tc.h, h, 1e-12)
		assert.GreaterOrEqual(t, h, 0.0)
		assert.Less(t, h, 2*math.Pi)
	}
}

func TestLSHuv(t *testing.T) {
	L, S, h := LCHuvToLSHuv(50, 100, 1)
	assert.Equal(t, []float64{50, 2, 1}, []float64{L, S, h})
	L, C, h := LSHuvToLCHuv(L, S, h)
	assert.Equal(t, []float64{50, 100, 1}, []float64{L, C, h})
	_, S, _ = LCHuvToLSHuv(0, 10, 1)
	assert.Equal(t, 0.0, S)
}

func TestLuvOnChromaticityAxes(t *testing.T) {
	// X = 0 puts u' on zero
	L, u, v := XYZToLuv(0, 0.2, 0.3)
	require.Zero(t, L*whiteU13+u)
	x, y, z := LuvToXYZ(L, u, v)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 0.2, y, 1e-12)
	assert.InDelta(t, 0.3, z, 1e-12)

	// products are formed at run time so that they cancel exactly
	L = 50
	for _, tc := range []struct {
		name string
		u, v float64
	}{
		{"u' zero", -L * whiteU13, 0},
		{"v' zero", 0, -L * whiteV13},
		{"both zero", -L * whiteU13, -L * whiteV13},
	} {
		t.Run(tc.name, func(t *testing.T) {
			x, y, z := LuvToXYZ(L, tc.u, tc.v)
			for _, c := range []float64{x, y, z} {
				require.False(t, math.IsNaN(c) || math.IsInf(c, 0), "got: %v %v %v", x, y, z)
			}
			assert.Zero(t, x)
			assert.InDelta(t, 0.18418651851244405, y, 1e-12)
		})
	}
}
