// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cam16 implements the CAM16 color appearance model,
// including its CAM16-UCS uniform color space.
package cam16

import (
	"fmt"
	"math"

	"cogentcore.org/cam/cie"
)

// CAM represents a point in the cam16 color model along 6 dimensions
// representing the perceived hue, colorfulness, and brightness,
// similar to HSL but much more well-calibrated to actual human subjective judgments,
// plus its coordinates in the CAM16-UCS uniform color space,
// which should be used when measuring distances between colors.
type CAM struct {

	// hue (h) is the spectral identity of the color (red, green, blue etc) in degrees (0-360)
	Hue float64

	// chroma (C) is the colorfulness or saturation of the color -- greyscale colors have no chroma, and fully saturated ones have high chroma
	Chroma float64

	// lightness (J) is the brightness relative to a reference white, which varies as a function of chroma and hue
	Lightness float64

	// brightness (Q) is the apparent amount of light from the color, which is not a simple function of actual light energy emitted
	Brightness float64

	// colorfulness (M) is the absolute chromatic intensity
	Colorfulness float64

	// saturation (s) is the colorfulness relative to brightness
	Saturation float64

	// JStar, AStar, BStar are the CAM16-UCS coordinates
	JStar, AStar, BStar float64
}

// FromARGB returns the CAM values of the given ARGB color
// under standard viewing conditions. Alpha is ignored.
func FromARGB(argb uint32) CAM {
	return FromARGBView(argb, StdView())
}

// FromARGBView returns the CAM values of the given ARGB color
// under the given viewing conditions. Alpha is ignored.
func FromARGBView(argb uint32, vw *View) CAM {
	x, y, z := cie.XYZFromARGB(argb)
	return FromXYZView(x, y, z, vw)
}

// FromLinRGBView returns the CAM values of the given 0-100 linear sRGB
// color under the given viewing conditions.
func FromLinRGBView(linrgb [3]float64, vw *View) CAM {
	x, y, z := cie.SRGBLinToXYZ(linrgb[0], linrgb[1], linrgb[2])
	return FromXYZView(x, y, z, vw)
}

// FromXYZView returns CAM values from the given 0-100 XYZ color coordinates,
// under the given viewing conditions.
func FromXYZView(x, y, z float64, vw *View) CAM {
	l, m, s := XYZToLMS(x, y, z)

	// discount the illuminant and compress
	rA := ChromaticAdaptation(vw.fl * vw.rgbD[0] * l / 100)
	gA := ChromaticAdaptation(vw.fl * vw.rgbD[1] * m / 100)
	bA := ChromaticAdaptation(vw.fl * vw.rgbD[2] * s / 100)

	// redness-greenness
	redVgreen := (11*rA - 12*gA + bA) / 11
	// yellowness-blueness
	yellowVblue := (rA + gA - 2*bA) / 9

	// auxiliary components
	u := (20*rA + 20*gA + 21*bA) / 20
	p2 := (40*rA + 20*gA + bA) / 20

	// an achromatic stimulus has no defined hue
	hue := 0.0
	if redVgreen != 0 || yellowVblue != 0 {
		hue = SanitizeDegrees(math.Atan2(yellowVblue, redVgreen) * 180 / math.Pi)
	}

	// achromatic response to color
	ac := p2 * vw.nbb

	// CAM16 lightness and brightness
	j := 100 * math.Pow(ac/vw.aw, vw.c*vw.z)

	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHue := 0.25 * (math.Cos(huePrime*math.Pi/180+2) + 3.8)
	p1 := 50000.0 / 13 * eHue * vw.nc * vw.ncb
	t := p1 * math.Hypot(redVgreen, yellowVblue) / (u + 0.305)
	alpha := math.Pow(t, 0.9) * math.Pow(1.64-math.Pow(0.29, vw.n), 0.73)

	return newCAM(j, alpha*math.Sqrt(j/100), hue, vw)
}

// FromJCH returns CAM values from the given lightness (j), chroma (c),
// and hue (h) values under standard viewing conditions.
func FromJCH(j, c, h float64) CAM {
	return FromJCHView(j, c, h, StdView())
}

// FromJCHView returns CAM values from the given lightness (j), chroma (c),
// and hue (h) values under the given viewing conditions.
func FromJCHView(j, c, h float64, vw *View) CAM {
	return newCAM(j, c, h, vw)
}

// FromUCS returns CAM values from the given CAM16-UCS coordinates
// (jstar, astar, and bstar), under standard viewing conditions.
func FromUCS(jstar, astar, bstar float64) CAM {
	return FromUCSView(jstar, astar, bstar, StdView())
}

// FromUCSView returns CAM values from the given CAM16-UCS coordinates
// (jstar, astar, and bstar), under the given viewing conditions.
func FromUCSView(jstar, astar, bstar float64, vw *View) CAM {
	m := math.Hypot(astar, bstar)
	M := math.Expm1(m*0.0228) / 0.0228
	c := M / vw.flRoot
	h := 0.0
	if astar != 0 || bstar != 0 {
		h = SanitizeDegrees(math.Atan2(bstar, astar) * 180 / math.Pi)
	}
	j := jstar / (1 - (jstar-100)*0.007)
	return newCAM(j, c, h, vw)
}

// newCAM fills in all of the correlates derivable from J, C, and h.
func newCAM(j, c, h float64, vw *View) CAM {
	cam := CAM{Hue: h, Chroma: c, Lightness: j}
	cam.Brightness = (4 / vw.c) * math.Sqrt(j/100) * (vw.aw + 4) * vw.flRoot
	cam.Colorfulness = c * vw.flRoot
	alpha := 0.0
	if j > 0 {
		alpha = c / math.Sqrt(j/100)
	}
	cam.Saturation = 50 * math.Sqrt(alpha*vw.c/(vw.aw+4))

	cam.JStar = (1 + 100*0.007) * j / (1 + 0.007*j)
	mstar := math.Log1p(0.0228*cam.Colorfulness) / 0.0228
	hr := h * math.Pi / 180
	cam.AStar = mstar * math.Cos(hr)
	cam.BStar = mstar * math.Sin(hr)
	return cam
}

// XYZ returns the CAM color as 0-100 XYZ coordinates
// under standard viewing conditions.
func (cam CAM) XYZ() (x, y, z float64) {
	return cam.XYZView(StdView())
}

// XYZView returns the CAM color as 0-100 XYZ coordinates
// under the given viewing conditions.
func (cam CAM) XYZView(vw *View) (x, y, z float64) {
	alpha := 0.0
	if cam.Chroma != 0 && cam.Lightness > 0 {
		alpha = cam.Chroma / math.Sqrt(cam.Lightness/100)
	}

	t := math.Pow(alpha/math.Pow(1.64-math.Pow(0.29, vw.n), 0.73), 1/0.9)
	hRad := cam.Hue * math.Pi / 180

	eHue := 0.25 * (math.Cos(hRad+2) + 3.8)
	ac := vw.aw * math.Pow(cam.Lightness/100, 1/vw.c/vw.z)
	p1 := eHue * (50000.0 / 13) * vw.nc * vw.ncb
	p2 := ac / vw.nbb

	hSin := math.Sin(hRad)
	hCos := math.Cos(hRad)

	gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
	a := gamma * hCos
	b := gamma * hSin
	rA := (460*p2 + 451*a + 288*b) / 1403
	gA := (460*p2 - 891*a - 261*b) / 1403
	bA := (460*p2 - 220*a - 6300*b) / 1403

	rF := InverseChromaticAdaptation(rA) * 100 / vw.fl / vw.rgbD[0]
	gF := InverseChromaticAdaptation(gA) * 100 / vw.fl / vw.rgbD[1]
	bF := InverseChromaticAdaptation(bA) * 100 / vw.fl / vw.rgbD[2]
	return LMSToXYZ(rF, gF, bF)
}

// ARGB returns the CAM color as an ARGB color under standard
// viewing conditions. Channels outside of the sRGB gamut are clamped;
// use the hct package to find in-gamut colors.
func (cam CAM) ARGB() uint32 {
	return cam.ARGBView(StdView())
}

// ARGBView returns the CAM color as an ARGB color under the given
// viewing conditions. Channels outside of the sRGB gamut are clamped.
func (cam CAM) ARGBView(vw *View) uint32 {
	return cie.ARGBFromXYZ(cam.XYZView(vw))
}

// UCS returns the CAM16-UCS components J*, a*, b*.
func (cam CAM) UCS() (jstar, astar, bstar float64) {
	return cam.JStar, cam.AStar, cam.BStar
}

func (cam CAM) String() string {
	return fmt.Sprintf("cam16(h: %g, C: %g, J: %g)", cam.Hue, cam.Chroma, cam.Lightness)
}
