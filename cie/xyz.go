// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// WhiteD65 is the D65 standard illuminant white point in 0-100 XYZ.
var WhiteD65 = [3]float64{95.047, 100.0, 108.883}

// SRGBToXYZMatrix converts linear sRGB to XYZ. Its middle row
// is the luminance weighting of the three linear channels.
var SRGBToXYZMatrix = [3][3]float64{
	{0.41233895, 0.35762064, 0.18051042},
	{0.2126, 0.7152, 0.0722},
	{0.01932141, 0.11916382, 0.95034478},
}

// XYZToSRGBMatrix is the inverse of [SRGBToXYZMatrix].
var XYZToSRGBMatrix = [3][3]float64{
	{3.2413774792388685, -1.5376652402851851, -0.49885366846268053},
	{-0.9691452513005321, 1.8758853451067872, 0.04156585616912061},
	{0.05562093689691305, -0.20395524564742123, 1.0571799111220335},
}

// MatMul returns the product of the given 3x3 matrix and column vector.
func MatMul(v [3]float64, m [3][3]float64) [3]float64 {
	return [3]float64{
		v[0]*m[0][0] + v[1]*m[0][1] + v[2]*m[0][2],
		v[0]*m[1][0] + v[1]*m[1][1] + v[2]*m[1][2],
		v[0]*m[2][0] + v[1]*m[2][1] + v[2]*m[2][2],
	}
}

// SRGBLinToXYZ converts linear sRGB to XYZ, both on the 0-100 scale.
func SRGBLinToXYZ(rl, gl, bl float64) (x, y, z float64) {
	o := MatMul([3]float64{rl, gl, bl}, SRGBToXYZMatrix)
	return o[0], o[1], o[2]
}

// XYZToSRGBLin converts XYZ to linear sRGB, both on the 0-100 scale.
// The result is not clamped to the sRGB gamut.
func XYZToSRGBLin(x, y, z float64) (rl, gl, bl float64) {
	o := MatMul([3]float64{x, y, z}, XYZToSRGBMatrix)
	return o[0], o[1], o[2]
}
