package colors

import (
	"fmt"

	"github.com/scalablecory/colors/types"
	"golang.org/x/image/math/f64"
)

var _ = fmt.Print

// Value is a color expressed in one particular space. The set of
// implementations is closed: there is exactly one per Space, and only YUV and
// YCbCr carry flags.
type Value interface {
	Space() Space
	// Flags returns the canonical variant flags of the value, zero outside the
	// video spaces.
	Flags() Flags
	// Components returns the three channels in the order they are declared in
	// the implementing struct.
	Components() f64.Vec3
	value()
}

// RGB8 is gamma encoded sRGB quantised to 8 bits per channel.
type RGB8 struct {
	R, G, B uint8
}

// RGB is gamma encoded sRGB with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// LinearRGB is sRGB before the transfer function is applied.
type LinearRGB struct {
	R, G, B float64
}

// HSL has H in sextants, [0, 6), and S, L in [0, 1].
type HSL struct {
	H, S, L float64
}

// HSV has H in sextants, [0, 6), and S, V in [0, 1].
type HSV struct {
	H, S, V float64
}

// YUV has Y in [0, 1], U in [-0.436, 0.436] and V in [-0.615, 0.615].
type YUV struct {
	Y, U, V float64
	Matrix  Matrix
}

// YCbCr is YUV scaled to 8-bit code values in either the studio range (luma
// [16, 235], chroma [16, 240]) or the full range [0, 255].
type YCbCr struct {
	Y, Cb, Cr uint8
	Matrix    Matrix
	FullRange bool
}

type YDbDr struct {
	Y, Db, Dr float64
}

type YIQ struct {
	Y, I, Q float64
}

// XYZ is CIE 1931 XYZ normalised so that the D65 white has Y = 1.
type XYZ struct {
	X, Y, Z float64
}

// XyY holds the chromaticity coordinates CX, CY and the luminance Y.
type XyY struct {
	CX, CY, Y float64
}

type Lab struct {
	L, A, B float64
}

type Luv struct {
	L, U, V float64
}

// LCHab is Lab in polar form. H is in radians, [0, 2π).
type LCHab struct {
	L, C, H float64
}

// LCHuv is Luv in polar form. H is in radians, [0, 2π).
type LCHuv struct {
	L, C, H float64
}

// LSHuv is LCHuv with chroma replaced by saturation, C/L.
type LSHuv struct {
	L, S, H float64
}

func (RGB8) Space() Space      { return types.RGB8 }
func (RGB) Space() Space       { return types.RGB }
func (LinearRGB) Space() Space { return types.LinearRGB }
func (HSL) Space() Space       { return types.HSL }
func (HSV) Space() Space       { return types.HSV }
func (YUV) Space() Space       { return types.YUV }
func (YCbCr) Space() Space     { return types.YCbCr }
func (YDbDr) Space() Space     { return types.YDbDr }
func (YIQ) Space() Space       { return types.YIQ }
func (XYZ) Space() Space       { return types.XYZ }
func (XyY) Space() Space       { return types.XyY }
func (Lab) Space() Space       { return types.Lab }
func (Luv) Space() Space       { return types.Luv }
func (LCHab) Space() Space     { return types.LCHab }
func (LCHuv) Space() Space     { return types.LCHuv }
func (LSHuv) Space() Space     { return types.LSHuv }

func (RGB8) Flags() Flags      { return 0 }
func (RGB) Flags() Flags       { return 0 }
func (LinearRGB) Flags() Flags { return 0 }
func (HSL) Flags() Flags       { return 0 }
func (HSV) Flags() Flags       { return 0 }
func (v YUV) Flags() Flags     { return types.NewFlags(v.Matrix, false) }
func (v YCbCr) Flags() Flags   { return types.NewFlags(v.Matrix, v.FullRange) }
func (YDbDr) Flags() Flags     { return 0 }
func (YIQ) Flags() Flags       { return 0 }
func (XYZ) Flags() Flags       { return 0 }
func (XyY) Flags() Flags       { return 0 }
func (Lab) Flags() Flags       { return 0 }
func (Luv) Flags() Flags       { return 0 }
func (LCHab) Flags() Flags     { return 0 }
func (LCHuv) Flags() Flags     { return 0 }
func (LSHuv) Flags() Flags     { return 0 }

func (v RGB8) Components() f64.Vec3 {
	return f64.Vec3{float64(v.R), float64(v.G), float64(v.B)}
}
func (v RGB) Components() f64.Vec3       { return f64.Vec3{v.R, v.G, v.B} }
func (v LinearRGB) Components() f64.Vec3 { return f64.Vec3{v.R, v.G, v.B} }
func (v HSL) Components() f64.Vec3       { return f64.Vec3{v.H, v.S, v.L} }
func (v HSV) Components() f64.Vec3       { return f64.Vec3{v.H, v.S, v.V} }
func (v YUV) Components() f64.Vec3       { return f64.Vec3{v.Y, v.U, v.V} }
func (v YCbCr) Components() f64.Vec3 {
	return f64.Vec3{float64(v.Y), float64(v.Cb), float64(v.Cr)}
}
func (v YDbDr) Components() f64.Vec3 { return f64.Vec3{v.Y, v.Db, v.Dr} }
func (v YIQ) Components() f64.Vec3   { return f64.Vec3{v.Y, v.I, v.Q} }
func (v XYZ) Components() f64.Vec3   { return f64.Vec3{v.X, v.Y, v.Z} }
func (v XyY) Components() f64.Vec3   { return f64.Vec3{v.CX, v.CY, v.Y} }
func (v Lab) Components() f64.Vec3   { return f64.Vec3{v.L, v.A, v.B} }
func (v Luv) Components() f64.Vec3   { return f64.Vec3{v.L, v.U, v.V} }
func (v LCHab) Components() f64.Vec3 { return f64.Vec3{v.L, v.C, v.H} }
func (v LCHuv) Components() f64.Vec3 { return f64.Vec3{v.L, v.C, v.H} }
func (v LSHuv) Components() f64.Vec3 { return f64.Vec3{v.L, v.S, v.H} }

func (RGB8) value()      {}
func (RGB) value()       {}
func (LinearRGB) value() {}
func (HSL) value()       {}
func (HSV) value()       {}
func (YUV) value()       {}
func (YCbCr) value()     {}
func (YDbDr) value()     {}
func (YIQ) value()       {}
func (XYZ) value()       {}
func (XyY) value()       {}
func (Lab) value()       {}
func (Luv) value()       {}
func (LCHab) value()     {}
func (LCHuv) value()     {}
func (LSHuv) value()     {}

func (c RGB8) AsSharp() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB8) String() string {
	return fmt.Sprintf("RGB8{%02X %02X %02X}", c.R, c.G, c.B)
}

// Zero returns the zero value of space s with the given flags, canonicalised
// for s. It panics for an invalid space.
func Zero(s Space, flags Flags) Value {
	flags = flags.For(s)
	switch s {
	case types.RGB8:
		return RGB8{}
	case types.RGB:
		return RGB{}
	case types.LinearRGB:
		return LinearRGB{}
	case types.HSL:
		return HSL{}
	case types.HSV:
		return HSV{}
	case types.YUV:
		return YUV{Matrix: flags.Matrix()}
	case types.YCbCr:
		return YCbCr{Matrix: flags.Matrix(), FullRange: flags.IsFullRange()}
	case types.YDbDr:
		return YDbDr{}
	case types.YIQ:
		return YIQ{}
	case types.XYZ:
		return XYZ{}
	case types.XyY:
		return XyY{}
	case types.Lab:
		return Lab{}
	case types.Luv:
		return Luv{}
	case types.LCHab:
		return LCHab{}
	case types.LCHuv:
		return LCHuv{}
	case types.LSHuv:
		return LSHuv{}
	}
	panic(fmt.Sprintf("colors: invalid space: %d", uint8(s)))
}

// ExtractComponents returns the channels of v in its canonical order.
func ExtractComponents(v Value) (float64, float64, float64) {
	c := v.Components()
	return c[0], c[1], c[2]
}

// Color holds a Value that Convert rewrites in place.
type Color struct {
	Value
}

func (c Color) String() string {
	if c.Value == nil {
		return "Color{}"
	}
	v := c.Components()
	s := c.Space().String()
	switch c.Space() {
	case types.YUV, types.YCbCr:
		s += "[" + c.Flags().String() + "]"
	}
	return fmt.Sprintf("%s(%g, %g, %g)", s, v[0], v[1], v[2])
}
