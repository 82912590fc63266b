package joint

import "math"

const angleEpsilon = 1e-9

// Normalize360 maps deg into [0, 360). It is for display; the pose is the same
// for deg and Normalize360(deg).
func Normalize360(deg float64) float64 {
	v := math.Mod(deg, 360)
	if v < 0 {
		v += 360
	}
	if v >= 360 {
		v -= 360
	}
	return v
}

// SameAngle reports whether a and b are the same rotation modulo 360 degrees.
func SameAngle(a, b float64) bool {
	d := math.Abs(Normalize360(a) - Normalize360(b))
	return d <= angleEpsilon || 360-d <= angleEpsilon
}
