// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import "math"

// XYZToLMS converts XYZ to the CAM16 cone response (M16) space.
func XYZToLMS(x, y, z float64) (l, m, s float64) {
	l = 0.401288*x + 0.650173*y - 0.051461*z
	m = -0.250268*x + 1.204414*y + 0.045854*z
	s = -0.002079*x + 0.048952*y + 0.953127*z
	return
}

// LMSToXYZ is the inverse of [XYZToLMS].
func LMSToXYZ(l, m, s float64) (x, y, z float64) {
	x = 1.86206786*l - 1.01125463*m + 0.14918677*s
	y = 0.38752654*l + 0.62144744*m - 0.00897398*s
	z = -0.01584150*l - 0.03412294*m + 1.04996444*s
	return
}

// ChromaticAdaptation applies the sign-preserving post-adaptation
// compression to a cone response that has already been scaled by FL/100.
func ChromaticAdaptation(comp float64) float64 {
	af := math.Pow(math.Abs(comp), 0.42)
	return signum(comp) * 400 * af / (af + 27.13)
}

// InverseChromaticAdaptation is the inverse of [ChromaticAdaptation],
// returning a cone response scaled by FL/100.
func InverseChromaticAdaptation(adapted float64) float64 {
	abs := math.Abs(adapted)
	base := max(0, 27.13*abs/(400-abs))
	return signum(adapted) * math.Pow(base, 1/0.42)
}

// SanitizeDegrees returns the given angle in degrees wrapped into [0, 360).
func SanitizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		return 0
	}
	return deg
}

// SanitizeRadians returns the given angle in radians wrapped into [0, 2π).
func SanitizeRadians(rad float64) float64 {
	rad = math.Mod(rad, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	if rad >= 2*math.Pi {
		return 0
	}
	return rad
}

// DifferenceDegrees returns the shortest angular distance between
// two angles in degrees, in [0, 180].
func DifferenceDegrees(a, b float64) float64 {
	return 180 - math.Abs(math.Abs(a-b)-180)
}

// RotationDirection returns 1 if the shortest rotation from one hue to
// another is increasing, and -1 otherwise.
func RotationDirection(from, to float64) float64 {
	if SanitizeDegrees(to-from) <= 180 {
		return 1
	}
	return -1
}

// InCyclicOrder returns whether the angles a, b, c (in radians)
// are in counterclockwise order around the circle.
func InCyclicOrder(a, b, c float64) bool {
	return SanitizeRadians(b-a) < SanitizeRadians(c-a)
}

func signum(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
