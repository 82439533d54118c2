/*
Package colors converts single color values between sixteen color spaces: the RGB forms (8-bit, gamma encoded and
linear), the cylindrical HSL and HSV, the broadcast spaces YUV, YCbCr, YDbDr and YIQ, and the CIE spaces XYZ, xyY,
L*a*b*, L*u*v*, LCHab, LCHuv and LSHuv.

Only a few pairs of spaces convert into each other directly. Convert walks a fixed routing table, one direct
conversion at a time, until the value is in the requested space with the requested flags. Use Route to see the path a
conversion takes.

The tables are read only, so distinct values may be converted concurrently.
*/
package colors

import (
	"cmp"
	"fmt"
)

// Version of this package.
var Version = PackageVersion{1, 0, 0}

type PackageVersion struct {
	Major, Minor, Patch uint
}

func (v PackageVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or +1 as v is older than, equal to or newer than o.
func (v PackageVersion) Compare(o PackageVersion) int {
	return cmp.Or(cmp.Compare(v.Major, o.Major), cmp.Compare(v.Minor, o.Minor), cmp.Compare(v.Patch, o.Patch))
}

// AtLeast reports whether v is major.minor.patch or newer.
func (v PackageVersion) AtLeast(major, minor, patch uint) bool {
	return v.Compare(PackageVersion{major, minor, patch}) >= 0
}
