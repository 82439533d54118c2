// Package mat3 has the few 3x3 matrix operations the color transforms need.
// Matrices are row major, as in golang.org/x/image/math/f64.
package mat3

import (
	"errors"
	"math"

	"golang.org/x/image/math/f64"
)

var ErrSingular = errors.New("matrix is singular and cannot be inverted")

var Identity = f64.Mat3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// Apply multiplies m by the column vector (x, y, z). Each row is summed left
// to right so that results match the hand written formulas exactly.
func Apply(m *f64.Mat3, x, y, z float64) (a, b, c float64) {
	a = x*m[0] + y*m[1] + z*m[2]
	b = x*m[3] + y*m[4] + z*m[5]
	c = x*m[6] + y*m[7] + z*m[8]
	return
}

// Mul returns a*b, the transform that applies b first and then a.
func Mul(a, b f64.Mat3) (out f64.Mat3) {
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += a[i*3+k] * b[k*3+j]
			}
			out[i*3+j] = sum
		}
	}
	return
}

func Inverted(m f64.Mat3) (ans f64.Mat3, err error) {
	det := m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
	if det == 0 {
		return ans, ErrSingular
	}
	inv_det := 1 / det
	adj := f64.Mat3{
		m[4]*m[8] - m[5]*m[7], m[2]*m[7] - m[1]*m[8], m[1]*m[5] - m[2]*m[4],
		m[5]*m[6] - m[3]*m[8], m[0]*m[8] - m[2]*m[6], m[2]*m[3] - m[0]*m[5],
		m[3]*m[7] - m[4]*m[6], m[1]*m[6] - m[0]*m[7], m[0]*m[4] - m[1]*m[3],
	}
	for i := range adj {
		ans[i] = inv_det * adj[i]
	}
	return
}

// Equal reports whether every element of a and b differs by at most threshold.
func Equal(a, b *f64.Mat3, threshold float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > threshold {
			return false
		}
	}
	return true
}
