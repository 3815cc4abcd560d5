// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides tonal palettes: the colors of a fixed hue and
// chroma at every tone, and the core palette of six tonal palettes that
// design schemes are built from.
package palette

import (
	"image"
	"math"
	"sync"

	"cogentcore.org/cam/cie"
	"cogentcore.org/cam/hct"
)

// Tones contains cached color values for each tone
// of a hue and chroma. To get a tonal value, use [Tones.Tone].
// It is safe for concurrent use.
type Tones struct {

	// the hue of every tone, in degrees
	hue float64

	// the requested chroma of every tone; the achieved chroma may be lower
	chroma float64

	// mu guards cache
	mu sync.Mutex

	// the cached ARGB values, keyed by the bits of the tone
	cache map[uint64]uint32
}

// NewTones returns a new set of [Tones] for the given hue and chroma.
func NewTones(hue, chroma float64) *Tones {
	return &Tones{
		hue:    hue,
		chroma: chroma,
		cache:  map[uint64]uint32{},
	}
}

// TonesFromARGB returns the [Tones] with the hue and chroma of the given color.
func TonesFromARGB(argb uint32) *Tones {
	h := hct.FromARGB(argb)
	return NewTones(h.Hue(), h.Chroma())
}

// Hue returns the hue of the palette.
func (t *Tones) Hue() float64 { return t.hue }

// Chroma returns the requested chroma of the palette.
func (t *Tones) Chroma() float64 { return t.chroma }

// Tone returns the ARGB color at the given tone on a scale of 0 to 100.
// It uses the cached value if it exists, and it caches the value if
// it is not already.
func (t *Tones) Tone(tone float64) uint32 {
	key := math.Float64bits(tone)
	t.mu.Lock()
	defer t.mu.Unlock()
	if argb, ok := t.cache[key]; ok {
		return argb
	}
	argb := hct.SolveToARGB(t.hue, t.chroma, tone)
	t.cache[key] = argb
	return argb
}

// ToneUniform returns [image.Uniform] of [Tones.Tone].
func (t *Tones) ToneUniform(tone float64) *image.Uniform {
	return image.NewUniform(cie.ColorFromARGB(t.Tone(tone)))
}

// Len returns the number of cached tones.
func (t *Tones) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.cache)
}
