// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// SRGBToLinearComp converts an sRGB component in the 0-1 range
// to linear space (removes gamma).
func SRGBToLinearComp(srgb float64) float64 {
	if srgb <= 0.040449936 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear component in the 0-1 range
// to a gamma corrected sRGB value.
func SRGBFromLinearComp(lin float64) float64 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math.Pow(lin, 1/2.4) - 0.055
}

// Linearized converts an 8-bit sRGB channel to linear space,
// returning a value in the 0-100 range.
func Linearized(c uint8) float64 {
	return 100 * SRGBToLinearComp(float64(c)/255)
}

// TrueDelinearized converts a linear 0-100 channel to gamma corrected
// sRGB on the 0-255 scale, without rounding or clamping.
func TrueDelinearized(lin float64) float64 {
	return 255 * SRGBFromLinearComp(lin/100)
}

// Delinearized converts a linear 0-100 channel to a rounded 8-bit
// sRGB channel. Out of range values are clamped, and NaN maps to 0.
func Delinearized(lin float64) uint8 {
	return clampUint8(math.Round(TrueDelinearized(lin)))
}

func clampUint8(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
