// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import "math"

// Lighten returns a color that is lighter by the
// given absolute HCT tone amount (0-100, ranges enforced)
func Lighten(argb uint32, amount float64) uint32 {
	h := FromARGB(argb)
	return h.WithTone(clampTone(h.tone + amount)).argb
}

// Darken returns a color that is darker by the
// given absolute HCT tone amount (0-100, ranges enforced)
func Darken(argb uint32, amount float64) uint32 {
	h := FromARGB(argb)
	return h.WithTone(clampTone(h.tone - amount)).argb
}

// Highlight returns a color that is lighter or darker by the
// given absolute HCT tone amount (0-100, ranges enforced),
// making the color darker if it is light (tone >= 50) and
// lighter otherwise. It is the opposite of [Samelight].
func Highlight(argb uint32, amount float64) uint32 {
	if IsLight(argb) {
		return Darken(argb, amount)
	}
	return Lighten(argb, amount)
}

// Samelight returns a color that is lighter or darker by the
// given absolute HCT tone amount (0-100, ranges enforced),
// making the color lighter if it is light (tone >= 50) and
// darker otherwise. It is the opposite of [Highlight].
func Samelight(argb uint32, amount float64) uint32 {
	if IsLight(argb) {
		return Lighten(argb, amount)
	}
	return Darken(argb, amount)
}

// Saturate returns a color that is more saturated by the
// given absolute HCT chroma amount (0-max that depends
// on other params but is around 150, ranges enforced)
func Saturate(argb uint32, amount float64) uint32 {
	h := FromARGB(argb)
	return h.WithChroma(max(h.chroma+amount, 0)).argb
}

// Desaturate returns a color that is less saturated by the
// given absolute HCT chroma amount (0-max that depends
// on other params but is around 150, ranges enforced)
func Desaturate(argb uint32, amount float64) uint32 {
	return Saturate(argb, -amount)
}

// Spin returns a color that has a different hue by the
// given absolute HCT hue amount (±0-360, ranges enforced)
func Spin(argb uint32, amount float64) uint32 {
	h := FromARGB(argb)
	return h.WithHue(h.hue + amount).argb
}

// MinHueDistance finds the minimum distance between two hues.
// A positive number means add to a to get to b.
// A negative number means subtract from a to get to b.
func MinHueDistance(a, b float64) float64 {
	d1 := b - a
	d2 := (b + 360) - a
	d3 := (b - (a + 360))
	d1a := math.Abs(d1)
	d2a := math.Abs(d2)
	d3a := math.Abs(d3)
	if d1a < d2a && d1a < d3a {
		return d1
	}
	if d2a < d1a && d2a < d3a {
		return d2
	}
	return d3
}

// IsLight returns whether the given color is light
// (has an HCT tone greater than or equal to 50)
func IsLight(argb uint32) bool {
	return FromARGB(argb).tone >= 50
}

// IsDark returns whether the given color is dark
// (has an HCT tone less than 50)
func IsDark(argb uint32) bool {
	return !IsLight(argb)
}

func clampTone(t float64) float64 {
	return min(max(t, 0), 100)
}
