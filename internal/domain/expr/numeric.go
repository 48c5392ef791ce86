package expr

import "math"

const twoTo32 = 4294967296

// ToInt32 converts x the way JavaScript bitwise operators do: NaN and
// infinities become 0, everything else is truncated and wrapped modulo 2^32.
func ToInt32(x float64) int32 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}

	x = math.Trunc(x)
	if x >= math.MinInt32 && x <= math.MaxInt32 {
		return int32(x)
	}

	return int32(uint32(int64(math.Mod(x, twoTo32))))
}

// ToUint32 is the unsigned counterpart used by >>>.
func ToUint32(x float64) uint32 {
	return uint32(ToInt32(x))
}

// ByteOf returns the low byte of a sample, as emitted in byte mode.
func ByteOf(sample float64) int {
	return int(ToInt32(sample) & 0xFF)
}

// Finite maps NaN and infinities to 0.
func Finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}

	return x
}

func truthy(x float64) bool {
	return x != 0 && !math.IsNaN(x)
}

func boolean(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

func shiftCount(x float64) uint32 {
	return ToUint32(x) & 31
}

// jsRound rounds half-way cases towards +Inf like Math.round.
func jsRound(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	return math.Floor(x + 0.5)
}

func jsSign(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

// index converts an array subscript; ok is false for non-integral values.
func index(x float64) (int, bool) {
	if x != math.Trunc(x) || x < 0 || x > math.MaxInt32 {
		return 0, false
	}

	return int(x), true
}
