// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"math"
	"sync"

	"cogentcore.org/cam/cam16"
	"cogentcore.org/cam/cie"
)

const (
	// chromaTolerance is the width of the chroma bracket at which
	// the search for the gamut boundary stops.
	chromaTolerance = 0.01

	// maxIterations caps the number of chroma bisection steps.
	maxIterations = 32

	// maxJIterations caps the Newton steps on J done for one trial chroma.
	maxJIterations = 5
)

// Solver finds in-gamut sRGB colors for HCT coordinates under
// a fixed set of viewing conditions. It is immutable and safe
// for concurrent use.
type Solver struct {
	vw *cam16.View

	// scaledDiscount maps 0-100 linear RGB to cone responses with the
	// view's discounting and FL/100 applied, ready for chromatic adaptation.
	scaledDiscount [3][3]float64

	// linRGBFromScaledDiscount is the inverse of scaledDiscount.
	linRGBFromScaledDiscount [3][3]float64

	// tInnerCoeff is 1 / (1.64 - 0.29^n)^0.73.
	tInnerCoeff float64
}

// NewSolver returns a solver for the given viewing conditions.
func NewSolver(vw *cam16.View) *Solver {
	s := &Solver{vw: vw}
	rgbD := vw.RGBD()
	for col := range 3 {
		var lin [3]float64
		lin[col] = 1
		x, y, z := cie.SRGBLinToXYZ(lin[0], lin[1], lin[2])
		l, m, sh := cam16.XYZToLMS(x, y, z)
		cone := [3]float64{l, m, sh}
		for row := range 3 {
			s.scaledDiscount[row][col] = cone[row] * rgbD[row] * vw.FL() / 100
		}
	}
	s.linRGBFromScaledDiscount = invert(s.scaledDiscount)
	s.tInnerCoeff = 1 / math.Pow(1.64-math.Pow(0.29, vw.N()), 0.73)
	return s
}

// DefaultSolver returns the solver for [cam16.StdView], made once on first use.
var DefaultSolver = sync.OnceValue(func() *Solver {
	return NewSolver(cam16.StdView())
})

// View returns the viewing conditions of the solver.
func (s *Solver) View() *cam16.View { return s.vw }

// SolveToARGB returns the ARGB color with the given hue, chroma, and tone
// under standard viewing conditions; see [Solver.SolveToARGB].
func SolveToARGB(hue, chroma, tone float64) uint32 {
	return DefaultSolver().SolveToARGB(hue, chroma, tone)
}

// SolveToARGB returns the opaque sRGB color with the given hue and tone
// and the given chroma if it is in gamut, otherwise the maximum chroma
// that is in gamut at that hue and tone. Hue is in degrees and is wrapped
// into [0, 360). Tone is not clamped; callers needing 0-100 must clamp.
func (s *Solver) SolveToARGB(hue, chroma, tone float64) uint32 {
	if isAchromatic(chroma, tone) {
		return cie.ARGBFromLstar(tone)
	}
	return cie.ARGBFromLinRGB(s.SolveToLinRGB(hue, chroma, tone))
}

// SolveToLinRGB is like [Solver.SolveToARGB] but returns the unrounded
// 0-100 linear RGB color.
func (s *Solver) SolveToLinRGB(hue, chroma, tone float64) [3]float64 {
	y := cie.YFromLstar(tone)
	if isAchromatic(chroma, tone) {
		return [3]float64{y, y, y}
	}
	hRad := cam16.SanitizeDegrees(hue) * math.Pi / 180

	// At or beyond the gamut boundary every request maps to the boundary point.
	limit := s.bisectToLimit(y, hRad)
	cmax := cam16.FromLinRGBView(limit, s.vw).Chroma
	if chroma >= cmax {
		return limit
	}
	if p, ok := s.pointAt(hRad, chroma, y); ok {
		return p
	}

	// Just inside the boundary Newton can still fail to converge: bisect on
	// chroma, keeping the highest feasible chroma at or below the request.
	lo, hi := 0.0, chroma
	best, found := limit, false
	for i := 0; i < maxIterations && hi-lo > chromaTolerance; i++ {
		mid := (lo + hi) / 2
		if p, ok := s.pointAt(hRad, mid, y); ok {
			lo, best, found = mid, p, true
			continue
		}
		hi = mid
	}
	if !found {
		return limit
	}
	return best
}

// MaxChroma returns the highest chroma that is in gamut at
// the given hue and tone.
func (s *Solver) MaxChroma(hue, tone float64) float64 {
	if isAchromatic(1, tone) {
		return 0
	}
	hRad := cam16.SanitizeDegrees(hue) * math.Pi / 180
	return cam16.FromLinRGBView(s.bisectToLimit(cie.YFromLstar(tone), hRad), s.vw).Chroma
}

// isAchromatic returns whether a request has no defined hue:
// zero chroma, or the black and white ends of the tone range.
func isAchromatic(chroma, tone float64) bool {
	return chroma < 0.0001 || tone < 0.0001 || tone > 99.9999
}

// pointAt returns the linear RGB color with the given hue (in radians),
// chroma, and Y, using Newton's method on J to match Y. It returns false
// if that color is outside of the RGB cube.
func (s *Solver) pointAt(hRad, chroma, y float64) ([3]float64, bool) {
	vw := s.vw
	// Initial estimate of j.
	j := math.Sqrt(y) * 11

	eHue := 0.25 * (math.Cos(hRad+2) + 3.8)
	p1 := eHue * (50000.0 / 13) * vw.NC() * vw.NCB()
	hSin := math.Sin(hRad)
	hCos := math.Cos(hRad)
	for iter := range maxJIterations {
		jNorm := j / 100
		alpha := 0.0
		if chroma != 0 && j > 0 {
			alpha = chroma / math.Sqrt(jNorm)
		}
		t := math.Pow(alpha*s.tInnerCoeff, 1/0.9)
		ac := vw.AW() * math.Pow(jNorm, 1/vw.C()/vw.Z())
		p2 := ac / vw.NBB()
		gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
		a := gamma * hCos
		b := gamma * hSin
		rA := (460*p2 + 451*a + 288*b) / 1403
		gA := (460*p2 - 891*a - 261*b) / 1403
		bA := (460*p2 - 220*a - 6300*b) / 1403
		scaled := [3]float64{
			cam16.InverseChromaticAdaptation(rA),
			cam16.InverseChromaticAdaptation(gA),
			cam16.InverseChromaticAdaptation(bA),
		}
		linrgb := cie.MatMul(scaled, s.linRGBFromScaledDiscount)
		if !(linrgb[0] >= 0 && linrgb[1] >= 0 && linrgb[2] >= 0) {
			return linrgb, false
		}
		fnj := yFromLinRGB[0]*linrgb[0] + yFromLinRGB[1]*linrgb[1] + yFromLinRGB[2]*linrgb[2]
		if fnj <= 0 {
			return linrgb, false
		}
		if iter == maxJIterations-1 || math.Abs(fnj-y) < 0.002 {
			if linrgb[0] > 100.01 || linrgb[1] > 100.01 || linrgb[2] > 100.01 {
				return linrgb, false
			}
			return linrgb, true
		}
		// Iterates with Newton method,
		// using 2 * fn(j) / j as the approximation of fn'(j)
		j -= (fnj - y) * j / (2 * fnj)
	}
	return [3]float64{}, false
}

// invert returns the inverse of the given non-singular 3x3 matrix.
func invert(m [3][3]float64) [3][3]float64 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	A := e*i - f*h
	B := -(d*i - f*g)
	C := d*h - e*g
	det := a*A + b*B + c*C
	return [3][3]float64{
		{A / det, -(b*i - c*h) / det, (b*f - c*e) / det},
		{B / det, (a*i - c*g) / det, -(a*f - c*d) / det},
		{C / det, -(a*h - b*g) / det, (a*e - b*d) / det},
	}
}
