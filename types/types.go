package types

import (
	"errors"
	"fmt"
	"strings"
)

var _ = fmt.Print

// Space identifies the coordinate system a color value is expressed in.
type Space uint8

// Color spaces. Invalid is the zero value and never names a real space.
const (
	Invalid Space = iota
	RGB8
	RGB
	LinearRGB
	HSL
	HSV
	YUV
	YCbCr
	YDbDr
	YIQ
	XYZ
	XyY
	Lab
	Luv
	LCHab
	LCHuv
	LSHuv
)

// NumSpaces is the size of tables indexed by Space, including the Invalid slot.
const NumSpaces = int(LSHuv) + 1

var spaceNames = [NumSpaces]string{
	RGB8:      "RGB8",
	RGB:       "RGB",
	LinearRGB: "Linear RGB",
	HSL:       "HSL",
	HSV:       "HSV",
	YUV:       "YUV",
	YCbCr:     "YCbCr",
	YDbDr:     "YDbDr",
	YIQ:       "YIQ",
	XYZ:       "XYZ",
	XyY:       "xyY",
	Lab:       "Lab",
	Luv:       "Luv",
	LCHab:     "LCHab",
	LCHuv:     "LCHuv",
	LSHuv:     "LSHuv",
}

// Extra spellings accepted by ParseSpace, on top of the names themselves.
var spaceAliases = map[string]Space{
	"linear":     LinearRGB,
	"linearrgb":  LinearRGB,
	"linear-rgb": LinearRGB,
	"srgb":       RGB,
	"srgb8":      RGB8,
	"ycc":        YCbCr,
	"ciexyz":     XYZ,
	"cielab":     Lab,
	"cieluv":     Luv,
	"lch":        LCHab,
}

var ErrUnknownSpace = errors.New("colors: unknown color space")

func (s Space) IsValid() bool { return s > Invalid && s <= LSHuv }

func (s Space) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Space(%d)", uint8(s))
	}
	return spaceNames[s]
}

// FlagMask returns the flag bits that carry meaning for values in s. It is
// zero for every space other than YUV and YCbCr.
func (s Space) FlagMask() Flags {
	switch s {
	case YUV:
		return MatrixMask
	case YCbCr:
		return MatrixMask | FullRange
	}
	return 0
}

// All returns every valid space in ascending order.
func All() []Space {
	ans := make([]Space, 0, NumSpaces-1)
	for s := RGB8; s <= LSHuv; s++ {
		ans = append(ans, s)
	}
	return ans
}

// ParseSpace looks up a space by name. Matching ignores case and surrounding
// whitespace.
func ParseSpace(name string) (Space, error) {
	q := strings.ToLower(strings.TrimSpace(name))
	for s := RGB8; s <= LSHuv; s++ {
		if strings.ToLower(spaceNames[s]) == q {
			return s, nil
		}
	}
	if s, ok := spaceAliases[q]; ok {
		return s, nil
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnknownSpace, name)
}

// Matrix selects the luma/chroma weighting used by the YUV family.
type Matrix uint8

const (
	Rec601 Matrix = iota
	Rec709
	SMPTE240M
	FCC
)

var matrixNames = [...]string{
	Rec601:    "Rec.601",
	Rec709:    "Rec.709",
	SMPTE240M: "SMPTE-240M",
	FCC:       "FCC",
}

func (m Matrix) IsValid() bool { return m <= FCC }

func (m Matrix) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Matrix(%d)", uint8(m))
	}
	return matrixNames[m]
}

// Flags is the variant byte of the video spaces. Bits 0-1 hold the Matrix,
// bit 2 selects full range for YCbCr. Other bits are unused.
type Flags uint8

const (
	MatrixMask Flags = 3
	FullRange  Flags = 4
)

func NewFlags(m Matrix, full_range bool) Flags {
	f := Flags(m) & MatrixMask
	if full_range {
		f |= FullRange
	}
	return f
}

func (f Flags) Matrix() Matrix    { return Matrix(f & MatrixMask) }
func (f Flags) IsFullRange() bool { return f&FullRange != 0 }

// For drops the bits that mean nothing to s.
func (f Flags) For(s Space) Flags { return f & s.FlagMask() }

func (f Flags) String() string {
	if f.IsFullRange() {
		return f.Matrix().String() + " full-range"
	}
	return f.Matrix().String()
}
