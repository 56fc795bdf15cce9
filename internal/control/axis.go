package control

import "math"

// MapAxis converts an axis reading into a signed command delta.
// Readings inside the dead zone produce 0. Outside it the delta is y*gain
// truncated toward zero, so small deflections with a low gain may still be 0.
func MapAxis(y, deadZone, gain float64) int {
	if math.Abs(y) <= deadZone {
		return 0
	}
	return int(math.Trunc(y * gain))
}

// Active reports whether y is outside the dead zone.
func Active(y, deadZone float64) bool {
	return math.Abs(y) > deadZone
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
