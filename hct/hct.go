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

// Package hct implements the HCT (hue, chroma, tone) color system, built
// on the CAM16 color appearance model and CIE L*, together with the gamut
// solver that finds the sRGB color for a requested hue, chroma, and tone.
package hct

import (
	"fmt"
	"image/color"

	"cogentcore.org/cam/cam16"
	"cogentcore.org/cam/cie"
)

// HCT, hue, chroma, and tone. A color system that provides a perceptually
// accurate color measurement system that can also accurately render what
// colors will appear as in different lighting environments.
//
// An HCT is an immutable value: the With methods return new colors.
// Its hue, chroma, and tone are always those measured on its sRGB color.
type HCT struct {
	// hue (h) is the spectral identity of the color (red, green, blue etc) in degrees (0-360)
	hue float64

	// chroma (C) is the colorfulness or saturation of the color -- greyscale colors have no chroma, and fully saturated ones have high chroma.  The maximum varies as a function of hue and tone, but 150 is an upper bound.
	chroma float64

	// tone is the L* component from the LAB (L*a*b*) color system, which is linear in human perception of lightness
	tone float64

	// the opaque sRGB color
	argb uint32
}

// New returns a new HCT color for the given parameters:
// hue = 0..360
// chroma = 0..? depends on other params
// tone = 0..100
// The sRGB representation is kept within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func New(hue, chroma, tone float64) HCT {
	return FromARGB(SolveToARGB(hue, chroma, tone))
}

// FromARGB returns the HCT color of the given ARGB color.
// Alpha is ignored and the stored color is opaque.
func FromARGB(argb uint32) HCT {
	argb |= 0xFF << 24
	cam := cam16.FromARGB(argb)
	return HCT{hue: cam.Hue, chroma: cam.Chroma, tone: cie.LstarFromARGB(argb), argb: argb}
}

// FromColor returns the HCT color of the given standard [color.Color].
// Alpha is ignored.
func FromColor(c color.Color) HCT {
	return FromARGB(cie.ARGBFromColor(c))
}

// Model is the standard [color.Model] that converts colors to HCT.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HCT); ok {
		return h
	}
	return FromColor(c)
}

// Hue returns the hue of the color in degrees, in [0, 360).
func (h HCT) Hue() float64 { return h.hue }

// Chroma returns the achieved chroma of the color.
func (h HCT) Chroma() float64 { return h.chroma }

// Tone returns the tone (L*) of the color, in 0-100.
func (h HCT) Tone() float64 { return h.tone }

// ARGB returns the opaque sRGB color.
func (h HCT) ARGB() uint32 { return h.argb }

// CAM returns the CAM16 correlates of the color under standard viewing conditions.
func (h HCT) CAM() cam16.CAM { return cam16.FromARGB(h.argb) }

// WithHue returns the color with the given hue and the same chroma and tone.
// Chroma may decrease because chroma has a different maximum for any given
// hue and tone. Hue is wrapped into [0, 360).
func (h HCT) WithHue(hue float64) HCT {
	return New(hue, h.chroma, h.tone)
}

// WithChroma returns the color with the given chroma and the same hue and tone,
// keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func (h HCT) WithChroma(chroma float64) HCT {
	return New(h.hue, chroma, h.tone)
}

// WithTone returns the color with the given tone and the same hue and chroma,
// keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func (h HCT) WithTone(tone float64) HCT {
	return New(h.hue, h.chroma, tone)
}

// InView translates the color into different viewing conditions.
//
// Colors change appearance. They look different with lights on versus off,
// the same color, as in hex code, on white looks different when on black.
// The result is the color that, seen under standard viewing conditions,
// looks like this color seen under the given ones.
func (h HCT) InView(vw *cam16.View) HCT {
	// XYZ of the color as it appears in the given view
	x, y, z := h.CAM().XYZView(vw)
	// recast those coordinates in the standard view
	recast := cam16.FromXYZView(x, y, z, cam16.StdView())
	return New(recast.Hue, recast.Chroma, cie.LstarFromY(y))
}

// RGBA implements the color.Color interface.
func (h HCT) RGBA() (r, g, b, a uint32) {
	return h.AsRGBA().RGBA()
}

// AsRGBA returns the color as a standard [color.RGBA].
func (h HCT) AsRGBA() color.RGBA {
	return cie.ColorFromARGB(h.argb)
}

func (h HCT) String() string {
	return fmt.Sprintf("hct(%g, %g, %g)", h.hue, h.chroma, h.tone)
}
