// Package hsx converts between RGB and its cylindrical forms HSL and HSV.
//
// Hue is expressed in sextants, in [0, 6), with 0 at red, 2 at green and 4
// at blue. Saturation, lightness and value are in [0, 1] for in-gamut input.
package hsx

import (
	"math"
)

// For each hue sextant, the index into (max, min, mid) of the R, G and B
// channels.
var sectors = [6][3]uint8{
	{0, 2, 1},
	{2, 0, 1},
	{1, 0, 2},
	{1, 2, 0},
	{2, 1, 0},
	{0, 1, 2},
}

func minmax(r, g, b float64) (lo, hi float64) {
	lo, hi = min(r, g, b), max(r, g, b)
	return
}

// hue of a chromatic color, in [0, 6)
func hue(r, g, b, hi, delta float64) float64 {
	switch hi {
	case r:
		h := (g - b) / delta
		if h < 0 {
			// blue exceeds green, the sextant below red
			if h += 6; h >= 6 {
				h = 0
			}
		}
		return h
	case g:
		return (b-r)/delta + 2
	}
	return (r-g)/delta + 4
}

func RGBToHSL(r, g, b float64) (h, s, l float64) {
	lo, hi := minmax(r, g, b)
	delta := hi - lo
	l = (hi + lo) * 0.5
	if math.Abs(delta) > 0 {
		if l < 0.5 {
			s = delta / (hi + lo)
		} else {
			s = delta / (2 - hi - lo)
		}
		h = hue(r, g, b, hi, delta)
	}
	return
}

func RGBToHSV(r, g, b float64) (h, s, v float64) {
	lo, hi := minmax(r, g, b)
	delta := hi - lo
	v = hi
	if math.Abs(delta) > 0 {
		s = delta / hi
		h = hue(r, g, b, hi, delta)
	}
	return
}

func HSLToRGB(h, s, l float64) (r, g, b float64) {
	if math.Abs(s) > 0 {
		c := (1 - math.Abs(l*2-1)) * s
		return finish(h, c, c*-0.5+l)
	}
	return l, l, l
}

func HSVToRGB(h, s, v float64) (r, g, b float64) {
	if math.Abs(s) > 0 {
		c := v * s
		return finish(h, c, v-c)
	}
	return v, v, v
}

// wrap brings h into [0, period) for any finite h.
func wrap(h, period float64) float64 {
	switch {
	case math.Abs(h) >= period:
		return h - math.Floor(h/period)*period
	case h < 0:
		return h + period
	}
	return h
}

// Sector returns the hue sextant of h in 0..5 after wrapping h into [0, 6).
func Sector(h float64) int {
	idx := int(wrap(h, 6))
	if idx > 5 || idx < 0 {
		// h was a hair below a multiple of 6 and wrapped up onto 6
		idx = 0
	}
	return idx
}

func finish(h, c, m float64) (r, g, b float64) {
	x := 1 - math.Abs(wrap(h, 2)-1)
	vars := [3]float64{c + m, m, c*x + m}
	p := &sectors[Sector(h)]
	return vars[p[0]], vars[p[1]], vars[p[2]]
}
