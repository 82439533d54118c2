// Package cie implements the CIE colour spaces relative to the sRGB (D65)
// white point: XYZ, xyY, L*a*b*, L*u*v* and the polar forms derived from
// them.
//
// XYZ is normalised so that the reference white has Y = 1. All matrices are
// exact rationals derived from the sRGB primaries, and the LinearRGB<->Lab
// shortcuts fold the white point normalisation into the matrix so that a
// conversion needs only a single multiply.
package cie

import (
	"math"

	"github.com/scalablecory/colors/mat3"
	"golang.org/x/image/math/f64"
)

// Reference white (D65) and its reciprocals.
const (
	WhiteX = 31271.0 / 32902.0
	WhiteY = 1.0
	WhiteZ = 35827.0 / 32902.0

	whiteXr = 32902.0 / 31271.0
	whiteZr = 32902.0 / 35827.0

	// 13 * u'n and 13 * v'n of the reference white
	whiteU13 = 813046.0 / 316141.0
	whiteV13 = 1924767.0 / 316141.0
)

// (6/29)^3, below which the Lab and Luv transfer is linear
const epsilon = 216.0 / 24389.0

var xyzFromLinear = f64.Mat3{
	5067776.0 / 12288897.0, 4394405.0 / 12288897.0, 4435075.0 / 24577794.0,
	871024.0 / 4096299.0, 8788810.0 / 12288897.0, 887015.0 / 12288897.0,
	79184.0 / 4096299.0, 4394405.0 / 36866691.0, 70074185.0 / 73733382.0,
}

var linearFromXYZ = f64.Mat3{
	641589.0 / 197960.0, -608687.0 / 395920.0, -49353.0 / 98980.0,
	-42591639.0 / 43944050.0, 82435961.0 / 43944050.0, 1826061.0 / 43944050.0,
	49353.0 / 887015.0, -180961.0 / 887015.0, 49353.0 / 46685.0,
}

// xyzFromLinear with each row divided by the reference white, and its
// inverse.
var normalizedFromLinear = f64.Mat3{
	10135552.0 / 23359437.0, 8788810.0 / 23359437.0, 4435075.0 / 23359437.0,
	871024.0 / 4096299.0, 8788810.0 / 12288897.0, 887015.0 / 12288897.0,
	158368.0 / 8920923.0, 8788810.0 / 80288307.0, 70074185.0 / 80288307.0,
}

var linearFromNormalized = f64.Mat3{
	1219569.0 / 395920.0, -608687.0 / 395920.0, -107481.0 / 197960.0,
	-80960619.0 / 87888100.0, 82435961.0 / 43944050.0, 3976797.0 / 87888100.0,
	93813.0 / 1774030.0, -180961.0 / 887015.0, 107481.0 / 93370.0,
}

func LinearRGBToXYZ(r, g, b float64) (x, y, z float64) {
	return mat3.Apply(&xyzFromLinear, r, g, b)
}

func XYZToLinearRGB(x, y, z float64) (r, g, b float64) {
	return mat3.Apply(&linearFromXYZ, x, y, z)
}

// f is the forward Lab transfer on a white-normalised tristimulus value.
func f(t float64) float64 {
	if t > epsilon {
		return math.Cbrt(t)
	}
	return t*(841.0/108.0) + (4.0 / 29.0)
}

// finv is the inverse of f outside the luminance channel.
func finv(t float64) float64 {
	if t > 6.0/29.0 {
		return t * t * t
	}
	return t*(108.0/841.0) - (432.0 / 24389.0)
}

// lightnessToY inverts L* directly, so the linear segment is exact.
func lightnessToY(L, fy float64) float64 {
	if L > 8 {
		return fy * fy * fy
	}
	return L * (27.0 / 24389.0)
}

func lab(fx, fy, fz float64) (L, a, b float64) {
	L = fy*116 - 16
	a = (fx - fy) * 500
	b = (fy - fz) * 200
	return
}

func labInverse(L, a, b float64) (fx, fy, fz float64) {
	fy = L*(1.0/116.0) + (16.0 / 116.0)
	fx = a*(1.0/500.0) + fy
	fz = b*(-1.0/200.0) + fy
	return
}

// LinearRGBToLab converts linear sRGB straight to L*a*b* without
// materialising XYZ.
func LinearRGBToLab(r, g, b float64) (L, A, B float64) {
	x, y, z := mat3.Apply(&normalizedFromLinear, r, g, b)
	return lab(f(x), f(y), f(z))
}

func LabToLinearRGB(L, a, b float64) (R, G, B float64) {
	fx, fy, fz := labInverse(L, a, b)
	return mat3.Apply(&linearFromNormalized, finv(fx), lightnessToY(L, fy), finv(fz))
}

func XYZToLab(x, y, z float64) (L, a, b float64) {
	// the breakpoints and slopes below are those of f with the white point
	// folded in
	if x > 3377268.0/401223439.0 {
		x = math.Cbrt(x * whiteXr)
	} else {
		x = x*(13835291.0/1688634.0) + (4.0 / 29.0)
	}
	y = f(y)
	if z > 3869316.0/401223439.0 {
		z = math.Cbrt(z * whiteZr)
	} else {
		z = z*(13835291.0/1934658.0) + (4.0 / 29.0)
	}
	return lab(x, y, z)
}

func LabToXYZ(L, a, b float64) (x, y, z float64) {
	fx, fy, fz := labInverse(L, a, b)
	if fx > 6.0/29.0 {
		x = fx * fx * fx * WhiteX
	} else {
		x = fx*(1688634.0/13835291.0) - (6754536.0 / 401223439.0)
	}
	y = lightnessToY(L, fy)
	if fz > 6.0/29.0 {
		z = fz * fz * fz * WhiteZ
	} else {
		z = fz*(1934658.0/13835291.0) - (7738632.0 / 401223439.0)
	}
	return
}

// XYZToXyY returns the chromaticity of x, y, z. Black has no chromaticity:
// when the components sum to zero X and Y are passed through unchanged.
func XYZToXyY(X, Y, Z float64) (x, y, Yout float64) {
	sum := X + Y + Z
	if math.Abs(sum) > 0 {
		return X / sum, Y / sum, Y
	}
	return X, Y, Y
}

// XyYToXYZ returns black for a zero y chromaticity.
func XyYToXYZ(x, y, Y float64) (X, Yout, Z float64) {
	if math.Abs(y) > 0 {
		mul := Y / y
		return x * mul, Y, (1 - x - y) * mul
	}
	return 0, 0, 0
}

func XYZToLuv(x, y, z float64) (L, u, v float64) {
	div := x + y*15 + z*3
	if y > epsilon {
		L = math.Cbrt(y)*116 - 16
	} else {
		L = y * (24389.0 / 27.0)
	}
	if math.Abs(div) > 0 {
		div = 1 / div
		x *= div
		y *= div
	}
	u = (x*52 - whiteU13) * L
	v = (y*117 - whiteV13) * L
	return
}

// LuvToXYZ maps any L* of zero to black, whatever its chroma. Chromaticities
// on the u' = 0 and v' = 0 axes give finite results.
func LuvToXYZ(L, u, v float64) (x, y, z float64) {
	if L == 0 {
		return 0, 0, 0
	}
	fy := L*(1.0/116.0) + (16.0 / 116.0)
	y = lightnessToY(L, fy)
	ud, vd := L*whiteU13+u, L*whiteV13+v
	if vd == 0 {
		// v' of zero has no finite XYZ, keep the luminance
		return 0, y, 0
	}
	b := 5 * y
	c := (L/vd*39 - 5) * y
	if ud == 0 {
		// u' of zero is X = 0, the limit of the general case below
		return 0, y, c
	}
	a := L/ud*(52.0/3.0) - (1.0 / 3.0)
	x = (c + b) / (a + (1.0 / 3.0))
	z = x*a - b
	return
}

// ToPolar converts the Cartesian chroma plane of Lab or Luv to chroma and a
// hue angle in radians, normalised to [0, 2π).
func ToPolar(L, a, b float64) (Lout, C, h float64) {
	h = math.Atan2(b, a)
	if h < 0 {
		if h += 2 * math.Pi; h >= 2*math.Pi {
			h = 0
		}
	}
	return L, math.Hypot(a, b), h
}

func FromPolar(L, C, h float64) (Lout, a, b float64) {
	sin, cos := math.Sincos(h)
	return L, cos * C, sin * C
}

// LCHuvToLSHuv replaces chroma with saturation, C/L. Saturation is zero at
// L* = 0.
func LCHuvToLSHuv(L, C, h float64) (Lout, S, hout float64) {
	if L == 0 {
		return L, 0, h
	}
	return L, C / L, h
}

func LSHuvToLCHuv(L, S, h float64) (Lout, C, hout float64) {
	return L, S * L, h
}
