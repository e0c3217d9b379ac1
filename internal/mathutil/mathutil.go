package mathutil

import (
	"math"
	"math/bits"
	"unsafe"
)

const (
	// DoubleEpsilon is the difference between 1 and the next float64, 2^-52.
	DoubleEpsilon = 2.220446049250313e-16
)

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

func AbsInt64(val int64) int64 {
	mask := val >> (unsafe.Sizeof(int64(0))*8 - 1)
	return (val + mask) ^ mask
}

// UnsignedAbs returns |val| as an unsigned number.
// Unlike AbsInt64, it is exact for math.MinInt64.
func UnsignedAbs(val int64) uint64 {
	return uint64(AbsInt64(val))
}

// FloatSign returns -1, 0 or 1 for negative, zero (of either sign) and positive values.
// NaN has no sign, FloatSign returns 0 for it.
func FloatSign(f float64) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	default:
		return 0
	}
}

// NaNFrom returns (x-x)/(x-x), which is NaN for every x.
func NaNFrom(x float64) float64 {
	return (x - x) / (x - x)
}

// IsFinite returns true if f is neither an infinity, nor a NaN.
func IsFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Midpoint returns the average of a and b.
func Midpoint(a, b float64) float64 {
	return 0.5 * (a + b)
}
