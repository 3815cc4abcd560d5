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

	"cogentcore.org/cam/cam16"
	"cogentcore.org/cam/cie"
)

// The set of linear RGB colors with a given Y is the intersection of the
// plane kR*r + kG*g + kB*b = Y with the cube [0, 100]^3: a triangle,
// quadrilateral, pentagon, or hexagon. Each of its vertices lies on one
// of the 12 cube edges, which are enumerated by [nthVertex].

// yFromLinRGB is the luminance row of [cie.SRGBToXYZMatrix].
var yFromLinRGB = cie.SRGBToXYZMatrix[1]

// criticalPlanes are the linear RGB coordinates at which an 8-bit sRGB
// channel changes value: the linearized midpoints between 0..255.
var criticalPlanes = func() [255]float64 {
	var cp [255]float64
	for i := range cp {
		cp[i] = 100 * cie.SRGBToLinearComp((float64(i)+0.5)/255)
	}
	return cp
}()

// hueOf returns the CAM16 hue, in radians, of the given 0-100 linear RGB
// color under the solver's viewing conditions.
func (s *Solver) hueOf(linrgb [3]float64) float64 {
	sd := cie.MatMul(linrgb, s.scaledDiscount)
	rA := cam16.ChromaticAdaptation(sd[0])
	gA := cam16.ChromaticAdaptation(sd[1])
	bA := cam16.ChromaticAdaptation(sd[2])

	// redness-greenness
	a := (11*rA - 12*gA + bA) / 11
	// yellowness-blueness
	b := (rA + gA - 2*bA) / 9
	return math.Atan2(b, a)
}

// intercept solves the lerp equation, returning t such that
// lerp(source, target, t) = mid.
func intercept(source, mid, target float64) float64 {
	return (mid - source) / (target - source)
}

func lerpPoint(source [3]float64, t float64, target [3]float64) [3]float64 {
	return [3]float64{
		source[0] + (target[0]-source[0])*t,
		source[1] + (target[1]-source[1])*t,
		source[2] + (target[2]-source[2])*t,
	}
}

// setCoordinate intersects the segment from source to target with the
// plane where the given axis (0: R, 1: G, 2: B) equals coord.
func setCoordinate(source [3]float64, coord float64, target [3]float64, axis int) [3]float64 {
	t := intercept(source[axis], coord, target[axis])
	return lerpPoint(source, t, target)
}

func isBounded(x float64) bool {
	return 0 <= x && x <= 100
}

// nthVertex returns the nth possible vertex (0 <= n < 12) of the polygonal
// intersection of the plane of the given Y with the RGB cube, in linear RGB.
// Vertices 0-3 lie on edges parallel to R, 4-7 on G, and 8-11 on B; the two
// remaining coordinates are each 0 or 100. It returns false if the plane
// does not cross that edge within the cube.
func nthVertex(y float64, n int) ([3]float64, bool) {
	kR, kG, kB := yFromLinRGB[0], yFromLinRGB[1], yFromLinRGB[2]
	coordA := 0.0
	if n%4 > 1 {
		coordA = 100
	}
	coordB := 0.0
	if n%2 != 0 {
		coordB = 100
	}
	switch {
	case n < 4:
		g, b := coordA, coordB
		r := (y - g*kG - b*kB) / kR
		return [3]float64{r, g, b}, isBounded(r)
	case n < 8:
		b, r := coordA, coordB
		g := (y - r*kR - b*kB) / kG
		return [3]float64{r, g, b}, isBounded(g)
	default:
		r, g := coordA, coordB
		b := (y - r*kR - g*kG) / kB
		return [3]float64{r, g, b}, isBounded(b)
	}
}

// bisectToSegment finds the edge of the Y-plane polygon whose hue range
// contains the target hue (in radians), returning its two endpoints.
func (s *Solver) bisectToSegment(y, targetHue float64) (left, right [3]float64) {
	leftHue, rightHue := 0.0, 0.0
	initialized := false
	uncut := true
	for n := range 12 {
		mid, ok := nthVertex(y, n)
		if !ok {
			continue
		}
		midHue := s.hueOf(mid)
		if !initialized {
			left, right = mid, mid
			leftHue, rightHue = midHue, midHue
			initialized = true
			continue
		}
		if uncut || cam16.InCyclicOrder(leftHue, midHue, rightHue) {
			uncut = false
			if cam16.InCyclicOrder(leftHue, targetHue, midHue) {
				right, rightHue = mid, midHue
			} else {
				left, leftHue = mid, midHue
			}
		}
	}
	return
}

func midpoint(a, b [3]float64) [3]float64 {
	return [3]float64{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2, (a[2] + b[2]) / 2}
}

func criticalPlaneBelow(x float64) int { return int(math.Floor(x - 0.5)) }

func criticalPlaneAbove(x float64) int { return int(math.Ceil(x - 0.5)) }

// bisectToLimit finds the color with the given Y and hue (in radians) on
// the boundary of the RGB cube, in linear RGB. Within the polygon edge found
// by [Solver.bisectToSegment], it bisects over the critical planes of each
// changing axis, so the result is exact to 8-bit sRGB resolution.
func (s *Solver) bisectToLimit(y, targetHue float64) [3]float64 {
	left, right := s.bisectToSegment(y, targetHue)
	leftHue := s.hueOf(left)
	for axis := range 3 {
		if left[axis] == right[axis] {
			continue
		}
		var lPlane, rPlane int
		if left[axis] < right[axis] {
			lPlane = criticalPlaneBelow(cie.TrueDelinearized(left[axis]))
			rPlane = criticalPlaneAbove(cie.TrueDelinearized(right[axis]))
		} else {
			lPlane = criticalPlaneAbove(cie.TrueDelinearized(left[axis]))
			rPlane = criticalPlaneBelow(cie.TrueDelinearized(right[axis]))
		}
		for range 8 {
			if abs(rPlane-lPlane) <= 1 {
				break
			}
			mPlane := min(max((lPlane+rPlane)>>1, 0), len(criticalPlanes)-1)
			mid := setCoordinate(left, criticalPlanes[mPlane], right, axis)
			midHue := s.hueOf(mid)
			if cam16.InCyclicOrder(leftHue, targetHue, midHue) {
				right = mid
				rPlane = mPlane
			} else {
				left = mid
				leftHue = midHue
				lPlane = mPlane
			}
		}
	}
	return midpoint(left, right)
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
