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

package cam16

import (
	"math"
	"sync"

	"cogentcore.org/cam/cie"
)

// ViewConfig contains the major parameters of the viewing conditions
// under which a color is being perceived. Use [DefaultViewConfig] to get
// the standard values and then change the fields that differ.
type ViewConfig struct {

	// white point illumination in 0-100 XYZ; all components must be positive
	WhitePoint [3]float64 `toml:"white-point" yaml:"white-point" json:"whitePoint"`

	// the light strength of the adapting field in cd/m^2
	AdaptingLuminance float64 `toml:"adapting-luminance" yaml:"adapting-luminance" json:"adaptingLuminance"`

	// the L* (tone) of the background around the color in question
	BackgroundTone float64 `toml:"background-tone" yaml:"background-tone" json:"backgroundTone"`

	// the brightness of the entire environment, from 0 (dark) to 2 (average)
	Surround float64 `toml:"surround" yaml:"surround" json:"surround"`

	// whether the person's eyes have fully adapted to the illuminant
	DiscountingIlluminant bool `toml:"discounting-illuminant" yaml:"discounting-illuminant" json:"discountingIlluminant"`
}

// DefaultViewConfig returns the standard viewing conditions: a D65 white
// point, an adapting luminance of 200 lux on a mid-gray world, a background
// tone of 50, an average surround, and no discounting of the illuminant.
func DefaultViewConfig() ViewConfig {
	return ViewConfig{
		WhitePoint:        cie.WhiteD65,
		AdaptingLuminance: (200 / math.Pi) * cie.YFromLstar(50) / 100,
		BackgroundTone:    50,
		Surround:          2,
	}
}

// View represents the viewing conditions under which a color is being
// perceived, which greatly affects the subjective perception. It holds the
// intermediate values of the CAM16 computations that depend only on the
// viewing conditions. A View is immutable once made by [NewView], so it is
// safe to share among goroutines.
type View struct {
	cfg ViewConfig

	// ratio of background relative luminance to white relative luminance
	n float64

	// achromatic response to the white point
	aw float64

	// luminance level induction factors
	nbb, ncb float64

	// exponential nonlinearity
	c float64

	// chromatic induction factor
	nc float64

	// cone responses to the white point, adjusted for discounting
	rgbD [3]float64

	// luminance-level adaptation factor and its fourth root
	fl, flRoot float64

	// base exponential nonlinearity
	z float64
}

// NewView returns the viewing conditions derived from the given config.
// The background tone is floored at 0.1 and the surround clamped to 0-2.
func NewView(cfg ViewConfig) *View {
	// A background of pure black is non-physical and leads to infinities that
	// represent the idea that any color viewed in pure black can't be seen.
	cfg.BackgroundTone = max(0.1, cfg.BackgroundTone)
	cfg.Surround = min(max(cfg.Surround, 0), 2)
	vw := &View{cfg: cfg}

	// Transform test illuminant white in XYZ to 'cone'/'rgb' responses
	w := cfg.WhitePoint
	rW, gW, bW := XYZToLMS(w[0], w[1], w[2])

	// Scale input surround, domain (0, 2), to CAM16 surround, domain (0.8, 1.0)
	f := 0.8 + cfg.Surround/10
	if f >= 0.9 {
		vw.c = lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		vw.c = lerp(0.525, 0.59, (f-0.8)*10)
	}

	// Degree of adaptation to the illuminant; per Li et al,
	// values outside of 0-1 are clamped.
	d := 1.0
	if !cfg.DiscountingIlluminant {
		d = f * (1 - (1/3.6)*math.Exp((-cfg.AdaptingLuminance-42)/92))
	}
	d = min(max(d, 0), 1)

	vw.nc = f

	// Cone responses to the white point, adjusted for discounting.
	// This uses 100 rather than the white point's relative luminance,
	// per Fairchild's correction of the CIE 2004a CIECAM02 report.
	vw.rgbD = [3]float64{
		d*(100/rW) + 1 - d,
		d*(100/gW) + 1 - d,
		d*(100/bW) + 1 - d,
	}

	k := 1 / (5*cfg.AdaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4
	vw.fl = k4*cfg.AdaptingLuminance + 0.1*k4F*k4F*math.Cbrt(5*cfg.AdaptingLuminance)
	vw.flRoot = math.Pow(vw.fl, 0.25)

	vw.n = cie.YFromLstar(cfg.BackgroundTone) / w[1]
	vw.z = 1.48 + math.Sqrt(vw.n)
	vw.nbb = 0.725 / math.Pow(vw.n, 0.2)
	vw.ncb = vw.nbb

	rA := ChromaticAdaptation(vw.fl * vw.rgbD[0] * rW / 100)
	gA := ChromaticAdaptation(vw.fl * vw.rgbD[1] * gW / 100)
	bA := ChromaticAdaptation(vw.fl * vw.rgbD[2] * bW / 100)
	vw.aw = (2*rA + gA + 0.05*bA) * vw.nbb
	return vw
}

// StdView returns the standard viewing conditions made from
// [DefaultViewConfig]. It is made once, on first use.
var StdView = sync.OnceValue(func() *View {
	return NewView(DefaultViewConfig())
})

// Config returns the (sanitized) config this view was made from.
func (vw *View) Config() ViewConfig { return vw.cfg }

// N returns the ratio of background to white relative luminance.
func (vw *View) N() float64 { return vw.n }

// AW returns the achromatic response to the white point.
func (vw *View) AW() float64 { return vw.aw }

// NBB returns the brightness luminance level induction factor.
func (vw *View) NBB() float64 { return vw.nbb }

// NCB returns the chromatic luminance level induction factor.
func (vw *View) NCB() float64 { return vw.ncb }

// C returns the exponential nonlinearity derived from the surround.
func (vw *View) C() float64 { return vw.c }

// NC returns the chromatic induction factor.
func (vw *View) NC() float64 { return vw.nc }

// RGBD returns the per-channel chromatic adaptation weights.
func (vw *View) RGBD() [3]float64 { return vw.rgbD }

// FL returns the luminance-level adaptation factor.
func (vw *View) FL() float64 { return vw.fl }

// FLRoot returns FL to the 1/4 power.
func (vw *View) FLRoot() float64 { return vw.flRoot }

// Z returns the base exponential nonlinearity.
func (vw *View) Z() float64 { return vw.z }

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
