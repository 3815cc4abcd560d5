// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "cogentcore.org/cam/hct"

// spacedHues are blue, red, green, yellow, violet, aqua, orange, and blueviolet.
var spacedHues = []float64{255, 25, 150, 105, 340, 210, 60, 300}

var (
	spacedTones   = []float64{65, 80, 45, 65, 80}
	spacedChromas = []float64{90, 90, 90, 20, 20}

	// tone offsets per hue, to even out perceived brightness
	spacedToneOffsetsLight = []float64{0, -10, 0, 5, 0, 0, 5, 0}
	spacedToneOffsetsDark  = []float64{0, -10, 0, 10, 0, 0, 5, 0}
)

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, using the HCT space.
// This is useful, for example, for assigning colors in graphs.
// The first 8 colors have distinct hues at high chroma, and later
// colors cycle through the hues at other tones and chromas.
func Spaced(idx int, dark bool) uint32 {
	offs := spacedToneOffsetsLight
	if dark {
		offs = spacedToneOffsetsDark
	}
	idx = max(idx, 0)
	ncats := len(spacedHues)
	hi := idx % ncats
	tci := (idx / ncats) % len(spacedTones)
	return hct.SolveToARGB(spacedHues[hi], spacedChromas[tci], offs[hi]+spacedTones[tci])
}
