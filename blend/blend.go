// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blend provides functions for harmonizing and blending colors
// in perceptual color spaces.
package blend

import (
	"fmt"
	"strings"

	"cogentcore.org/cam/cam16"
	"cogentcore.org/cam/cie"
	"cogentcore.org/cam/hct"
)

// Harmonize returns the design color with its hue rotated toward the hue
// of the source color, by half of the difference between the hues and
// by at most 15 degrees. Chroma and tone are kept.
func Harmonize(design, source uint32) uint32 {
	from := hct.FromARGB(design)
	to := hct.FromARGB(source)
	diff := cam16.DifferenceDegrees(from.Hue(), to.Hue())
	rotation := min(diff*0.5, 15)
	hue := cam16.SanitizeDegrees(from.Hue() + rotation*cam16.RotationDirection(from.Hue(), to.Hue()))
	return hct.New(hue, from.Chroma(), from.Tone()).ARGB()
}

// HCTHue returns the from color with its hue moved toward the hue of the
// to color by the given amount (0-1), interpolated in CAM16-UCS.
// Chroma and tone are kept.
func HCTHue(from, to uint32, amount float64) uint32 {
	ucs := cam16.FromARGB(CAM16UCS(from, to, amount))
	fc := cam16.FromARGB(from)
	return hct.New(ucs.Hue, fc.Chroma, cie.LstarFromARGB(from)).ARGB()
}

// CAM16UCS returns the color at the given amount (0-1) along the straight
// line from the from color to the to color in CAM16-UCS.
func CAM16UCS(from, to uint32, amount float64) uint32 {
	fc := cam16.FromARGB(from)
	tc := cam16.FromARGB(to)
	jstar := fc.JStar + (tc.JStar-fc.JStar)*amount
	astar := fc.AStar + (tc.AStar-fc.AStar)*amount
	bstar := fc.BStar + (tc.BStar-fc.BStar)*amount
	return cam16.FromUCS(jstar, astar, bstar).ARGB()
}

// HCT returns a color that is the given percent blend between the first
// and second color; 10 = 10% of the second and 90% of the first, etc.
// Chroma and tone are blended linearly, and hue is blended along the
// shorter way around, weighted by chroma because the hue of a color
// near grey is unreliable.
func HCT(pct float64, x, y uint32) uint32 {
	hx := hct.FromARGB(x)
	hy := hct.FromARGB(y)
	py := min(max(pct, 0), 100) / 100
	px := 1 - py

	dhue := hct.MinHueDistance(hx.Hue(), hy.Hue())

	cpy := 0.0
	if csum := px*hx.Chroma() + py*hy.Chroma(); csum > 0 {
		cpy = py * hy.Chroma() / csum
	}
	hue := hx.Hue() + cpy*dhue

	chroma := px*hx.Chroma() + py*hy.Chroma()
	tone := px*hx.Tone() + py*hy.Tone()
	return hct.New(hue, chroma, tone).ARGB()
}

// RGB returns a color that is the given percent blend between the first
// and second color; 10 = 10% of the second and 90% of the first, etc.
// Blending is done directly on the sRGB values, including alpha.
func RGB(pct float64, x, y uint32) uint32 {
	py := min(max(pct, 0), 100) / 100
	px := 1 - py
	mix := func(a, b uint8) uint8 {
		return uint8(px*float64(a) + py*float64(b) + 0.5)
	}
	return uint32(mix(cie.AlphaFromARGB(x), cie.AlphaFromARGB(y)))<<24 |
		uint32(mix(cie.RedFromARGB(x), cie.RedFromARGB(y)))<<16 |
		uint32(mix(cie.GreenFromARGB(x), cie.GreenFromARGB(y)))<<8 |
		uint32(mix(cie.BlueFromARGB(x), cie.BlueFromARGB(y)))
}

// Types are the color spaces that colors can be blended in.
type Types int32

const (
	// BlendHCT blends in HCT; see [HCT].
	BlendHCT Types = iota

	// BlendRGB blends in sRGB; see [RGB].
	BlendRGB

	// BlendCAM16 blends in CAM16-UCS; see [CAM16UCS].
	BlendCAM16
)

var typeNames = []string{"hct", "rgb", "cam16"}

func (t Types) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Types(%d)", int32(t))
	}
	return typeNames[t]
}

// ParseTypes returns the blend type with the given name, case insensitively.
func ParseTypes(name string) (Types, error) {
	for i, n := range typeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Types(i), nil
		}
	}
	return 0, fmt.Errorf("blend.ParseTypes: unknown blend type %q", name)
}

// Blend returns a color that is the given percent blend between the first
// and second color in the given color space; 10 = 10% of the second and
// 90% of the first, etc.
func Blend(bt Types, pct float64, x, y uint32) uint32 {
	switch bt {
	case BlendRGB:
		return RGB(pct, x, y)
	case BlendCAM16:
		return CAM16UCS(x, y, min(max(pct, 0), 100)/100)
	}
	return HCT(pct, x, y)
}
