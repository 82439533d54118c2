package colors

import (
	"fmt"

	"github.com/scalablecory/colors/cie"
	"github.com/scalablecory/colors/hsx"
	"github.com/scalablecory/colors/srgb"
	"github.com/scalablecory/colors/video"
)

var _ = fmt.Print

// An edge converts a value of one space directly into another. flags are
// the flags requested by the caller of Convert, already canonicalised for the
// final destination. Only edges that land in YUV or YCbCr look at them.
type edge func(v Value, flags Flags) Value

func rgb8ToRGB(v Value, _ Flags) Value {
	c := v.(RGB8)
	return RGB{srgb.Normalize(c.R), srgb.Normalize(c.G), srgb.Normalize(c.B)}
}

func rgb8ToLinearRGB(v Value, _ Flags) Value {
	c := v.(RGB8)
	return LinearRGB{srgb.From8Bit(c.R), srgb.From8Bit(c.G), srgb.From8Bit(c.B)}
}

func rgbToRGB8(v Value, _ Flags) Value {
	c := v.(RGB)
	return RGB8{srgb.Quantize(c.R), srgb.Quantize(c.G), srgb.Quantize(c.B)}
}

func rgbToLinearRGB(v Value, _ Flags) Value {
	c := v.(RGB)
	return LinearRGB{srgb.ToLinear(c.R), srgb.ToLinear(c.G), srgb.ToLinear(c.B)}
}

func rgbToHSL(v Value, _ Flags) Value {
	c := v.(RGB)
	h, s, l := hsx.RGBToHSL(c.R, c.G, c.B)
	return HSL{h, s, l}
}

func rgbToHSV(v Value, _ Flags) Value {
	c := v.(RGB)
	h, s, val := hsx.RGBToHSV(c.R, c.G, c.B)
	return HSV{h, s, val}
}

func rgbToYUV(v Value, flags Flags) Value {
	c := v.(RGB)
	m := flags.Matrix()
	y, u, val := video.RGBToYUV(m, c.R, c.G, c.B)
	return YUV{y, u, val, m}
}

func rgbToYDbDr(v Value, _ Flags) Value {
	c := v.(RGB)
	y, db, dr := video.RGBToYDbDr(c.R, c.G, c.B)
	return YDbDr{y, db, dr}
}

func rgbToYIQ(v Value, _ Flags) Value {
	c := v.(RGB)
	y, i, q := video.RGBToYIQ(c.R, c.G, c.B)
	return YIQ{y, i, q}
}

func linearRGBToRGB8(v Value, _ Flags) Value {
	c := v.(LinearRGB)
	return RGB8{srgb.To8Bit(c.R), srgb.To8Bit(c.G), srgb.To8Bit(c.B)}
}

func linearRGBToRGB(v Value, _ Flags) Value {
	c := v.(LinearRGB)
	return RGB{srgb.FromLinear(c.R), srgb.FromLinear(c.G), srgb.FromLinear(c.B)}
}

func linearRGBToXYZ(v Value, _ Flags) Value {
	c := v.(LinearRGB)
	x, y, z := cie.LinearRGBToXYZ(c.R, c.G, c.B)
	return XYZ{x, y, z}
}

func linearRGBToLab(v Value, _ Flags) Value {
	c := v.(LinearRGB)
	L, a, b := cie.LinearRGBToLab(c.R, c.G, c.B)
	return Lab{L, a, b}
}

func hslToRGB(v Value, _ Flags) Value {
	c := v.(HSL)
	r, g, b := hsx.HSLToRGB(c.H, c.S, c.L)
	return RGB{r, g, b}
}

func hsvToRGB(v Value, _ Flags) Value {
	c := v.(HSV)
	r, g, b := hsx.HSVToRGB(c.H, c.S, c.V)
	return RGB{r, g, b}
}

func yuvToRGB(v Value, _ Flags) Value {
	c := v.(YUV)
	r, g, b := video.YUVToRGB(c.Matrix, c.Y, c.U, c.V)
	return RGB{r, g, b}
}

// yuvToYUV re-expresses a YUV value in the matrix selected by flags.
func yuvToYUV(v Value, flags Flags) Value {
	c := v.(YUV)
	m := flags.Matrix()
	if c.Matrix == m {
		panic(fmt.Sprintf("colors: YUV re-parameterised without a change of matrix: %s", m))
	}
	y, u, val := video.ChangeMatrix(c.Matrix, m, c.Y, c.U, c.V)
	return YUV{y, u, val, m}
}

func yuvToYCbCr(v Value, flags Flags) Value {
	c := v.(YUV)
	if c.Matrix != flags.Matrix() {
		c = yuvToYUV(c, flags).(YUV)
	}
	full_range := flags.IsFullRange()
	y, cb, cr := video.YUVToYCbCr(full_range, c.Y, c.U, c.V)
	return YCbCr{y, cb, cr, c.Matrix, full_range}
}

// ycbcrToYUV decodes in the matrix of the source and then moves to the
// matrix selected by flags.
func ycbcrToYUV(v Value, flags Flags) Value {
	c := v.(YCbCr)
	y, u, val := video.YCbCrToYUV(c.FullRange, c.Y, c.Cb, c.Cr)
	ans := YUV{y, u, val, c.Matrix}
	if ans.Matrix != flags.Matrix() {
		return yuvToYUV(ans, flags)
	}
	return ans
}

// ycbcrToYCbCr changes the matrix and/or range of a YCbCr value by way of
// YUV.
func ycbcrToYCbCr(v Value, flags Flags) Value {
	c := v.(YCbCr)
	if c.Flags() == flags {
		panic(fmt.Sprintf("colors: YCbCr re-parameterised without a change of flags: %s", flags))
	}
	return yuvToYCbCr(ycbcrToYUV(c, flags), flags)
}

func ydbdrToRGB(v Value, _ Flags) Value {
	c := v.(YDbDr)
	r, g, b := video.YDbDrToRGB(c.Y, c.Db, c.Dr)
	return RGB{r, g, b}
}

func ydbdrToYIQ(v Value, _ Flags) Value {
	c := v.(YDbDr)
	y, i, q := video.YDbDrToYIQ(c.Y, c.Db, c.Dr)
	return YIQ{y, i, q}
}

func yiqToRGB(v Value, _ Flags) Value {
	c := v.(YIQ)
	r, g, b := video.YIQToRGB(c.Y, c.I, c.Q)
	return RGB{r, g, b}
}

func yiqToYDbDr(v Value, _ Flags) Value {
	c := v.(YIQ)
	y, db, dr := video.YIQToYDbDr(c.Y, c.I, c.Q)
	return YDbDr{y, db, dr}
}

func xyzToLinearRGB(v Value, _ Flags) Value {
	c := v.(XYZ)
	r, g, b := cie.XYZToLinearRGB(c.X, c.Y, c.Z)
	return LinearRGB{r, g, b}
}

func xyzToXyY(v Value, _ Flags) Value {
	c := v.(XYZ)
	x, y, Y := cie.XYZToXyY(c.X, c.Y, c.Z)
	return XyY{x, y, Y}
}

func xyzToLab(v Value, _ Flags) Value {
	c := v.(XYZ)
	L, a, b := cie.XYZToLab(c.X, c.Y, c.Z)
	return Lab{L, a, b}
}

func xyzToLuv(v Value, _ Flags) Value {
	c := v.(XYZ)
	L, u, val := cie.XYZToLuv(c.X, c.Y, c.Z)
	return Luv{L, u, val}
}

func xyyToXYZ(v Value, _ Flags) Value {
	c := v.(XyY)
	x, y, z := cie.XyYToXYZ(c.CX, c.CY, c.Y)
	return XYZ{x, y, z}
}

func labToLinearRGB(v Value, _ Flags) Value {
	c := v.(Lab)
	r, g, b := cie.LabToLinearRGB(c.L, c.A, c.B)
	return LinearRGB{r, g, b}
}

func labToXYZ(v Value, _ Flags) Value {
	c := v.(Lab)
	x, y, z := cie.LabToXYZ(c.L, c.A, c.B)
	return XYZ{x, y, z}
}

func labToLCHab(v Value, _ Flags) Value {
	c := v.(Lab)
	L, C, h := cie.ToPolar(c.L, c.A, c.B)
	return LCHab{L, C, h}
}

func lchabToLab(v Value, _ Flags) Value {
	c := v.(LCHab)
	L, a, b := cie.FromPolar(c.L, c.C, c.H)
	return Lab{L, a, b}
}

func luvToXYZ(v Value, _ Flags) Value {
	c := v.(Luv)
	x, y, z := cie.LuvToXYZ(c.L, c.U, c.V)
	return XYZ{x, y, z}
}

func luvToLCHuv(v Value, _ Flags) Value {
	c := v.(Luv)
	L, C, h := cie.ToPolar(c.L, c.U, c.V)
	return LCHuv{L, C, h}
}

func lchuvToLuv(v Value, _ Flags) Value {
	c := v.(LCHuv)
	L, u, val := cie.FromPolar(c.L, c.C, c.H)
	return Luv{L, u, val}
}

func lchuvToLSHuv(v Value, _ Flags) Value {
	c := v.(LCHuv)
	L, s, h := cie.LCHuvToLSHuv(c.L, c.C, c.H)
	return LSHuv{L, s, h}
}

func lshuvToLCHuv(v Value, _ Flags) Value {
	c := v.(LSHuv)
	L, C, h := cie.LSHuvToLCHuv(c.L, c.S, c.H)
	return LCHuv{L, C, h}
}
