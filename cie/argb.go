// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "image/color"

// ARGBFromRGB packs the given 8-bit channels into an opaque ARGB color.
func ARGBFromRGB(r, g, b uint8) uint32 {
	return 0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// AlphaFromARGB returns the alpha channel of the given ARGB color.
func AlphaFromARGB(argb uint32) uint8 { return uint8(argb >> 24) }

// RedFromARGB returns the red channel of the given ARGB color.
func RedFromARGB(argb uint32) uint8 { return uint8(argb >> 16) }

// GreenFromARGB returns the green channel of the given ARGB color.
func GreenFromARGB(argb uint32) uint8 { return uint8(argb >> 8) }

// BlueFromARGB returns the blue channel of the given ARGB color.
func BlueFromARGB(argb uint32) uint8 { return uint8(argb) }

// IsOpaque returns whether the given ARGB color has full alpha.
func IsOpaque(argb uint32) bool { return AlphaFromARGB(argb) == 0xFF }

// LinRGBFromARGB returns the 0-100 linear sRGB channels of the given
// ARGB color. Alpha is ignored.
func LinRGBFromARGB(argb uint32) [3]float64 {
	return [3]float64{
		Linearized(RedFromARGB(argb)),
		Linearized(GreenFromARGB(argb)),
		Linearized(BlueFromARGB(argb)),
	}
}

// ARGBFromLinRGB returns the opaque ARGB color for the given 0-100
// linear sRGB channels, clamping each channel to the gamut.
func ARGBFromLinRGB(linrgb [3]float64) uint32 {
	return ARGBFromRGB(Delinearized(linrgb[0]), Delinearized(linrgb[1]), Delinearized(linrgb[2]))
}

// XYZFromARGB returns the 0-100 XYZ coordinates of the given ARGB color.
func XYZFromARGB(argb uint32) (x, y, z float64) {
	l := LinRGBFromARGB(argb)
	return SRGBLinToXYZ(l[0], l[1], l[2])
}

// ARGBFromXYZ returns the opaque ARGB color for the given 0-100 XYZ
// coordinates, clamped to the sRGB gamut.
func ARGBFromXYZ(x, y, z float64) uint32 {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	return ARGBFromLinRGB([3]float64{rl, gl, bl})
}

// LstarFromARGB returns the L* (tone) of the given ARGB color,
// computed from its relative luminance.
func LstarFromARGB(argb uint32) float64 {
	_, y, _ := XYZFromARGB(argb)
	return LstarFromY(y)
}

// ARGBFromLstar returns the achromatic gray with the given L* (tone).
func ARGBFromLstar(lstar float64) uint32 {
	c := Delinearized(YFromLstar(lstar))
	return ARGBFromRGB(c, c, c)
}

// LABFromARGB returns the L*a*b* coordinates of the given ARGB color.
func LABFromARGB(argb uint32) (l, a, b float64) {
	return XYZToLAB(XYZFromARGB(argb))
}

// ARGBFromLAB returns the opaque ARGB color for the given L*a*b*
// coordinates, clamped to the sRGB gamut.
func ARGBFromLAB(l, a, b float64) uint32 {
	return ARGBFromXYZ(LABToXYZ(l, a, b))
}

// ARGBFromColor converts a standard [color.Color] to an ARGB color,
// un-premultiplying the channels by alpha.
func ARGBFromColor(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}

// ColorFromARGB returns the given ARGB color as a premultiplied [color.RGBA].
func ColorFromARGB(argb uint32) color.RGBA {
	n := color.NRGBA{RedFromARGB(argb), GreenFromARGB(argb), BlueFromARGB(argb), AlphaFromARGB(argb)}
	return color.RGBAModel.Convert(n).(color.RGBA)
}
