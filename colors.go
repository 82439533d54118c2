package colors

import (
	"fmt"

	"github.com/scalablecory/colors/types"
)

var _ = fmt.Print

type Space = types.Space
type Matrix = types.Matrix
type Flags = types.Flags

const (
	SpaceRGB8      = types.RGB8
	SpaceRGB       = types.RGB
	SpaceLinearRGB = types.LinearRGB
	SpaceHSL       = types.HSL
	SpaceHSV       = types.HSV
	SpaceYUV       = types.YUV
	SpaceYCbCr     = types.YCbCr
	SpaceYDbDr     = types.YDbDr
	SpaceYIQ       = types.YIQ
	SpaceXYZ       = types.XYZ
	SpaceXyY       = types.XyY
	SpaceLab       = types.Lab
	SpaceLuv       = types.Luv
	SpaceLCHab     = types.LCHab
	SpaceLCHuv     = types.LCHuv
	SpaceLSHuv     = types.LSHuv
)

const (
	Rec601    = types.Rec601
	Rec709    = types.Rec709
	SMPTE240M = types.SMPTE240M
	FCC       = types.FCC
)

const (
	MatrixMask = types.MatrixMask
	FullRange  = types.FullRange
)

var ErrUnknownSpace = types.ErrUnknownSpace

// SpaceName returns the display name of s. It panics if s is not a valid
// space.
func SpaceName(s Space) string {
	if !s.IsValid() {
		panic(fmt.Sprintf("colors: invalid space: %d", uint8(s)))
	}
	return s.String()
}

// ParseSpace is the inverse of SpaceName. It also accepts a few common
// alternative spellings such as "linear" and "cielab".
func ParseSpace(name string) (Space, error) { return types.ParseSpace(name) }

func NewFlags(m Matrix, full_range bool) Flags { return types.NewFlags(m, full_range) }
