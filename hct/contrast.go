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

package hct

import (
	"math"

	"cogentcore.org/cam/cie"
)

const (
	// ratioSlack is how far short of the requested ratio the exact
	// luminance solution may fall and still be accepted.
	ratioSlack = 0.04

	// toneNudge moves a computed tone away from the reference tone so
	// that rounding in gamut mapping does not undo the ratio.
	toneNudge = 0.4
)

// ContrastRatio returns the WCAG contrast ratio (1 to 21) of two ARGB colors.
func ContrastRatio(a, b uint32) float64 {
	return ToneContrastRatio(cie.LstarFromARGB(a), cie.LstarFromARGB(b))
}

// ToneContrastRatio returns the contrast ratio of two tones,
// each clamped to 0-100 first.
func ToneContrastRatio(a, b float64) float64 {
	return ContrastRatioOfYs(cie.YFromLstar(clampTone(a)), cie.YFromLstar(clampTone(b)))
}

// ContrastRatioOfYs returns the contrast ratio of two relative luminances (Y, 0-100).
func ContrastRatioOfYs(a, b float64) float64 {
	return (max(a, b) + 5) / (min(a, b) + 5)
}

// ContrastColor returns argb with its tone moved until it has at least the
// given ratio against argb, keeping hue and chroma where the gamut allows.
// Light colors (tone above 50) look for a darker partner first, dark colors
// for a lighter one. ok is false when neither direction reaches the ratio.
func ContrastColor(argb uint32, ratio float64) (uint32, bool) {
	h := FromARGB(argb)
	t, ok := ContrastTone(h.Tone(), ratio)
	if !ok {
		return 0, false
	}
	return h.WithTone(t).ARGB(), true
}

// ContrastColorUnsafe is [ContrastColor] falling back to the best
// achievable partner, which may be below the ratio.
func ContrastColorUnsafe(argb uint32, ratio float64) uint32 {
	h := FromARGB(argb)
	return h.WithTone(ContrastToneUnsafe(h.Tone(), ratio)).ARGB()
}

// ContrastTone returns a tone with at least the given contrast ratio against
// tone, searching darker first for tones above 50 and lighter first
// otherwise. It returns -1, false when neither direction works.
func ContrastTone(tone, ratio float64) (float64, bool) {
	first, second := ContrastToneLighter, ContrastToneDarker
	if tone > 50 {
		first, second = second, first
	}
	if t, ok := first(tone, ratio); ok {
		return t, true
	}
	if t, ok := second(tone, ratio); ok {
		return t, true
	}
	return -1, false
}

// ContrastToneUnsafe is [ContrastTone], except that an unreachable ratio
// gives 0 or 100, whichever contrasts more with tone.
func ContrastToneUnsafe(tone, ratio float64) float64 {
	if t, ok := ContrastTone(tone, ratio); ok {
		return t
	}
	if ToneContrastRatio(tone, 0) > ToneContrastRatio(tone, 100) {
		return 0
	}
	return 100
}

// ContrastToneLighter returns a tone at or above tone with the given
// contrast ratio against it, or -1, false if none exists in 0-100.
func ContrastToneLighter(tone, ratio float64) (float64, bool) {
	return contrastTone(tone, ratio, true)
}

// ContrastToneDarker returns a tone at or below tone with the given
// contrast ratio against it, or -1, false if none exists in 0-100.
func ContrastToneDarker(tone, ratio float64) (float64, bool) {
	return contrastTone(tone, ratio, false)
}

// ContrastToneLighterUnsafe is [ContrastToneLighter] with 100 as the fallback.
func ContrastToneLighterUnsafe(tone, ratio float64) float64 {
	if t, ok := ContrastToneLighter(tone, ratio); ok {
		return t
	}
	return 100
}

// ContrastToneDarkerUnsafe is [ContrastToneDarker] with 0 as the fallback.
func ContrastToneDarkerUnsafe(tone, ratio float64) float64 {
	if t, ok := ContrastToneDarker(tone, ratio); ok {
		return t
	}
	return 0
}

// contrastTone solves (Yl+5)/(Yd+5) = ratio for the unknown side's Y,
// converts it back to a tone and nudges it outward by [toneNudge].
func contrastTone(tone, ratio float64, lighter bool) (float64, bool) {
	if tone < 0 || tone > 100 {
		return -1, false
	}
	y := cie.YFromLstar(tone)
	var other, nudge float64
	if lighter {
		other, nudge = ratio*(y+5)-5, toneNudge
	} else {
		other, nudge = (y+5)/ratio-5, -toneNudge
	}
	got := ContrastRatioOfYs(y, other)
	if got < ratio && math.Abs(got-ratio) > ratioSlack {
		return -1, false
	}
	t := cie.LstarFromY(other) + nudge
	if t < 0 || t > 100 {
		return -1, false
	}
	return t, true
}
