// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "cogentcore.org/cam/hct"

// Core is the set of tonal palettes that a design scheme draws from,
// all derived from one seed color.
type Core struct {

	// A1 is the primary accent palette
	A1 *Tones

	// A2 is the secondary accent palette
	A2 *Tones

	// A3 is the tertiary accent palette
	A3 *Tones

	// N1 is the neutral palette
	N1 *Tones

	// N2 is the neutral variant palette
	N2 *Tones

	// Error is the error palette
	Error *Tones
}

// NewCore returns the core palette of the given seed color.
// The primary accent always has a chroma of at least 48, and
// the others have fixed chromas independent of the seed.
func NewCore(argb uint32) *Core {
	h := hct.FromARGB(argb)
	hue, chroma := h.Hue(), h.Chroma()
	return &Core{
		A1:    NewTones(hue, max(chroma, 48)),
		A2:    NewTones(hue, 16),
		A3:    NewTones(hue+60, 24),
		N1:    NewTones(hue, 4),
		N2:    NewTones(hue, 8),
		Error: NewTones(25, 84),
	}
}

// NewContentCore returns the core palette of the given seed color
// with chromas proportional to the chroma of the seed, for schemes
// that need to stay faithful to content such as images.
func NewContentCore(argb uint32) *Core {
	h := hct.FromARGB(argb)
	hue, chroma := h.Hue(), h.Chroma()
	return &Core{
		A1:    NewTones(hue, chroma),
		A2:    NewTones(hue, chroma/3),
		A3:    NewTones(hue+60, chroma/2),
		N1:    NewTones(hue, min(chroma/12, 4)),
		N2:    NewTones(hue, min(chroma/6, 8)),
		Error: NewTones(25, 84),
	}
}
