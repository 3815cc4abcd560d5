// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// LABCompress is the compressive function used in converting
// from XYZ to L*a*b*.
func LABCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > labEpsilon {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

// YFromLstar returns the 0-100 relative luminance Y
// for the given L* (tone) value.
func YFromLstar(lstar float64) float64 {
	return 100 * LABUncompress((lstar+16)/116)
}

// LstarFromY returns the L* (tone) value for the given
// 0-100 relative luminance Y.
func LstarFromY(y float64) float64 {
	return 116*LABCompress(y/100) - 16
}

// XYZToLAB converts 0-100 XYZ to L*a*b* relative to [WhiteD65].
func XYZToLAB(x, y, z float64) (l, a, b float64) {
	fx := LABCompress(x / WhiteD65[0])
	fy := LABCompress(y / WhiteD65[1])
	fz := LABCompress(z / WhiteD65[2])
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts L*a*b* relative to [WhiteD65] to 0-100 XYZ.
func LABToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteD65[0]
	y = LABUncompress(fy) * WhiteD65[1]
	z = LABUncompress(fz) * WhiteD65[2]
	return
}
