// Package srgb implements the sRGB transfer function and its 8-bit
// quantization.
package srgb

import (
	"math"
	"sync"
)

// Linear light at or below this value is encoded with the linear segment.
const LinearBreakpoint = 0.0031308

// The same breakpoint on the encoded side, 0.04045.
const EncodedBreakpoint = LinearBreakpoint * 12.92

var encoded8ToLinearLUT = sync.OnceValue(func() (ans [256]float64) {
	for i := range ans {
		ans[i] = encoded8ToLinear(uint8(i))
	}
	return
})

// Code values below 11 fall on the linear segment. The rationals are the
// exact forms of 1/(255*1.055), 0.055/1.055 and 1/(255*12.92).
func encoded8ToLinear(c uint8) float64 {
	if c >= 11 {
		return math.Pow(float64(c)*(40.0/10761.0)+(11.0/211.0), 2.4)
	}
	return float64(c) * (5.0 / 16473.0)
}

// From8Bit converts an 8-bit sRGB encoded value to a normalised linear value
// between 0.0 and 1.0.
//
// This implementation uses a look-up table built from the exact formula, so
// it is as accurate as computing the value directly.
func From8Bit(v uint8) float64 {
	return encoded8ToLinearLUT()[v]
}

// To8Bit converts a linear value to an 8-bit sRGB encoded value, clipping to
// [0, 255]. It fuses the transfer function with the scale and rounding steps.
func To8Bit(c float64) uint8 {
	switch {
	case c <= 0:
		return 0
	case c <= LinearBreakpoint:
		return uint8(int(c*3294.6 + 0.5))
	case c < 1:
		return uint8(int(math.Pow(c, 1.0/2.4)*269.025 - (14.025 - 0.5)))
	}
	return 255
}

// ToLinear removes the sRGB gamma from a normalised encoded value.
func ToLinear(c float64) float64 {
	if c > EncodedBreakpoint {
		return math.Pow(c*(1.0/1.055)+(0.055/1.055), 2.4)
	}
	return c * (1.0 / 12.92)
}

// FromLinear applies the sRGB gamma to a normalised linear value.
func FromLinear(c float64) float64 {
	if c > LinearBreakpoint {
		return math.Pow(c, 1.0/2.4)*1.055 - 0.055
	}
	return c * 12.92
}

// Normalize scales an 8-bit code value into [0, 1].
func Normalize(v uint8) float64 {
	return float64(v) * (1.0 / 255.0)
}

// Quantize scales a normalised value to a code value, rounding half up and
// clamping to [0, 255].
func Quantize(c float64) uint8 {
	c = c*255.0 + 0.5
	switch {
	case c < 0:
		return 0
	case c > 255:
		return 255
	}
	return uint8(c)
}
