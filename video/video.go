// Package video implements the luma/chroma encodings used by broadcast
// television: YUV, YCbCr, YDbDr and YIQ.
//
// Constants are expressed as rationals wherever the defining standard allows.
// YUV has one matrix per standard; U spans [-0.436, 0.436] and V spans
// [-0.615, 0.615] for all of them.
package video

import (
	"github.com/scalablecory/colors/mat3"
	"github.com/scalablecory/colors/types"
	"golang.org/x/image/math/f64"
)

const (
	UMax = 0.436
	VMax = 0.615
)

var yuvFromRGB = [4]f64.Mat3{
	types.Rec601: {
		0.299, 0.587, 0.114,
		-32591.0 / 221500.0, -63983.0 / 221500.0, UMax,
		VMax, -72201.0 / 140200.0, -7011.0 / 70100.0,
	},
	types.Rec709: {
		0.2126, 0.7152, 0.0722,
		-115867.0 / 1159750.0, -194892.0 / 579875.0, UMax,
		VMax, -54981.0 / 98425.0, -44403.0 / 787400.0,
	},
	types.SMPTE240M: {
		0.212, 0.701, 0.087,
		-11554.0 / 114125.0, -76409.0 / 228250.0, UMax,
		VMax, -86223.0 / 157600.0, -10701.0 / 157600.0,
	},
	types.FCC: {
		0.3, 0.59, 0.11,
		-327.0 / 2225.0, -6431.0 / 22250.0, UMax,
		VMax, -7257.0 / 14000.0, -1353.0 / 14000.0,
	},
}

var rgbFromYUV = [4]f64.Mat3{
	types.Rec601: {
		1, 0, 701.0 / 615.0,
		1, -25251.0 / 63983.0, -209599.0 / 361005.0,
		1, 443.0 / 218.0, 0,
	},
	types.Rec709: {
		1, 0, 3937.0 / 3075.0,
		1, -1674679.0 / 7795680.0, -4185031.0 / 10996200.0,
		1, 4639.0 / 2180.0, 0,
	},
	types.SMPTE240M: {
		1, 0, 788.0 / 615.0,
		1, -79431.0 / 305636.0, -167056.0 / 431115.0,
		1, 913.0 / 436.0, 0,
	},
	types.FCC: {
		1, 0, 140.0 / 123.0,
		1, -4895.0 / 12862.0, -1400.0 / 2419.0,
		1, 445.0 / 218.0, 0,
	},
}

var ydbdrFromRGB = f64.Mat3{
	299.0 / 1000.0, 587.0 / 1000.0, 57.0 / 500.0,
	-398567.0 / 886000.0, -782471.0 / 886000.0, 1333.0 / 1000.0,
	1333.0 / 1000.0, -782471.0 / 701000.0, -75981.0 / 350500.0,
}

var rgbFromYDbDr = f64.Mat3{
	1, 0, 701.0 / 1333.0,
	1, -101004.0 / 782471.0, -209599.0 / 782471.0,
	1, 886.0 / 1333.0, 0,
}

var yiqFromRGB = f64.Mat3{
	0.299, 0.587, 0.114,
	0.5957, -0.2744766323826577035751015648, -0.3212233676173422964248984352,
	-0.2114956266791979792324116478, 0.5226, -0.3111043733208020207675883522,
}

var rgbFromYIQ = f64.Mat3{
	1, 9.563000521420394701478042310e-1, -6.209682015704038246103012680e-1,
	1, -2.720883840788609953919979558e-1, 6.473748500336683799608873068e-1,
	1, -1.107173983650687695430619869e0, -1.704732848247478907706673421e0,
}

// YDbDr and YIQ share their luma, so they convert into each other without
// going through RGB. The fused matrices are built once from the RGB ones.
var yiqFromYDbDr, ydbdrFromYIQ f64.Mat3

func init() {
	yiqFromYDbDr = mat3.Mul(yiqFromRGB, rgbFromYDbDr)
	ydbdrFromYIQ = mat3.Mul(ydbdrFromRGB, rgbFromYIQ)
}

// YUVFromRGB returns the forward matrix of the given standard. It panics for
// an invalid matrix.
func YUVFromRGB(m types.Matrix) f64.Mat3 { return yuvFromRGB[m] }
func RGBFromYUV(m types.Matrix) f64.Mat3 { return rgbFromYUV[m] }

func RGBToYUV(m types.Matrix, r, g, b float64) (y, u, v float64) {
	return mat3.Apply(&yuvFromRGB[m], r, g, b)
}

func YUVToRGB(m types.Matrix, y, u, v float64) (r, g, b float64) {
	return mat3.Apply(&rgbFromYUV[m], y, u, v)
}

// ChangeMatrix re-expresses a YUV triple encoded with from in the matrix to,
// going through RGB.
func ChangeMatrix(from, to types.Matrix, y, u, v float64) (float64, float64, float64) {
	r, g, b := YUVToRGB(from, y, u, v)
	return RGBToYUV(to, r, g, b)
}

func code(x float64) uint8 {
	switch {
	case x < 0:
		return 0
	case x > 255:
		return 255
	}
	return uint8(int(x))
}

// YUVToYCbCr scales normalised YUV to 8-bit code values. Studio range puts
// luma in [16, 235] and chroma in [16, 240]; full range uses all of [0, 255].
// The +0.5 folded into each offset rounds to the nearest code value.
func YUVToYCbCr(full_range bool, y, u, v float64) (Y, Cb, Cr uint8) {
	if full_range {
		y = y*255.0 + 0.5
		u = u*(31875.0/109.0) + 128
		v = v*(8500.0/41.0) + 128
	} else {
		y = y*219.0 + 16.5
		u = u*(28000.0/109.0) + 128.5
		v = v*(22400.0/123.0) + 128.5
	}
	return code(y), code(u), code(v)
}

func YCbCrToYUV(full_range bool, Y, Cb, Cr uint8) (y, u, v float64) {
	y, u, v = float64(Y), float64(Cb), float64(Cr)
	if full_range {
		y *= 1.0 / 255.0
		u = u*(109.0/31875.0) - UMax
		v = v*(41.0/8500.0) - VMax
	} else {
		y = y*(1.0/219.0) - (16.0 / 219.0)
		u = u*(109.0/28000.0) - (436.0 / 875.0)
		v = v*(123.0/22400.0) - (123.0 / 175.0)
	}
	return
}

func RGBToYDbDr(r, g, b float64) (y, db, dr float64) {
	return mat3.Apply(&ydbdrFromRGB, r, g, b)
}

func YDbDrToRGB(y, db, dr float64) (r, g, b float64) {
	return mat3.Apply(&rgbFromYDbDr, y, db, dr)
}

func RGBToYIQ(r, g, b float64) (y, i, q float64) {
	return mat3.Apply(&yiqFromRGB, r, g, b)
}

func YIQToRGB(y, i, q float64) (r, g, b float64) {
	return mat3.Apply(&rgbFromYIQ, y, i, q)
}

func YDbDrToYIQ(y, db, dr float64) (Y, i, q float64) {
	return mat3.Apply(&yiqFromYDbDr, y, db, dr)
}

func YIQToYDbDr(y, i, q float64) (Y, db, dr float64) {
	return mat3.Apply(&ydbdrFromYIQ, y, i, q)
}
