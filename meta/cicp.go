// Package meta maps the colour metadata carried by image and video
// containers onto conversion flags.
package meta

import (
	"errors"
	"fmt"

	"github.com/scalablecory/colors/types"
)

var _ = fmt.Print

var ErrUnsupportedMatrix = errors.New("unsupported matrix coefficients")

// CodingIndependentCodePoints are the ITU-T H.273 code points as found in
// the cICP chunk of PNG, the colr box of ISOBMFF and AV1/HEVC sequence
// headers.
type CodingIndependentCodePoints struct {
	ColorPrimaries, TransferCharacteristics, MatrixCoefficients, VideoFullRange uint8
}

func (c CodingIndependentCodePoints) String() string {
	return fmt.Sprintf("%d/%d/%d/%d", c.ColorPrimaries, c.TransferCharacteristics, c.MatrixCoefficients, c.VideoFullRange)
}

// Flags returns the YUV/YCbCr flags described by c. Only the matrix
// coefficients and the range are examined.
func (c CodingIndependentCodePoints) Flags() (types.Flags, error) {
	var m types.Matrix
	switch c.MatrixCoefficients {
	case 1:
		m = types.Rec709
	case 4:
		m = types.FCC
	case 5, 6:
		// BT.470 System B/G and SMPTE 170M share the BT.601 coefficients
		m = types.Rec601
	case 7:
		m = types.SMPTE240M
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedMatrix, c.MatrixCoefficients)
	}
	return types.NewFlags(m, c.VideoFullRange == 1), nil
}

// FromFlags returns the code points of the standard that defines the matrix
// in f.
func FromFlags(f types.Flags) CodingIndependentCodePoints {
	var ans CodingIndependentCodePoints
	switch f.Matrix() {
	case types.Rec601:
		ans = CodingIndependentCodePoints{6, 6, 6, 0}
	case types.Rec709:
		ans = CodingIndependentCodePoints{1, 1, 1, 0}
	case types.SMPTE240M:
		ans = CodingIndependentCodePoints{7, 7, 7, 0}
	case types.FCC:
		ans = CodingIndependentCodePoints{4, 4, 4, 0}
	}
	if f.IsFullRange() {
		ans.VideoFullRange = 1
	}
	return ans
}
