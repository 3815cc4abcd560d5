// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToneContrastRatio(t *testing.T) {
	type data struct {
		a    float64
		b    float64
		want float64
	}
	tests := []data{
		{0, 100, 21},
		{100, 0, 21},
		{50, 50, 1},
		{-20, 120, 21},
	}
	for i, test := range tests {
		assert.InDelta(t, test.want, ToneContrastRatio(test.a, test.b), 1e-9, "%d", i)
	}
	assert.InDelta(t, 21, ContrastRatio(0xFFFFFFFF, 0xFF000000), 1e-9)
}

func TestContrastTone(t *testing.T) {
	for _, tone := range []float64{0, 10, 25, 40, 60, 75, 90, 100} {
		for _, ratio := range []float64{1.5, 3, 4.5, 7} {
			ct, ok := ContrastTone(tone, ratio)
			if !ok {
				assert.Equal(t, -1.0, ct)
				continue
			}
			assert.GreaterOrEqual(t, ToneContrastRatio(tone, ct), ratio-0.04, "tone %g ratio %g", tone, ratio)
			if tone > 50 {
				if _, dok := ContrastToneDarker(tone, ratio); dok {
					assert.Less(t, ct, tone)
				}
			}
		}
	}

	_, ok := ContrastTone(50, 21)
	assert.False(t, ok)
	assert.Equal(t, 100.0, ContrastToneLighterUnsafe(50, 21))
	assert.Equal(t, 0.0, ContrastToneDarkerUnsafe(50, 21))
	assert.Equal(t, 100.0, ContrastToneUnsafe(20, 21))
	assert.Equal(t, 0.0, ContrastToneUnsafe(80, 21))

	_, ok = ContrastToneLighter(-1, 3)
	assert.False(t, ok)
	_, ok = ContrastToneDarker(101, 3)
	assert.False(t, ok)
}

func TestContrastColor(t *testing.T) {
	for _, argb := range []uint32{0xFFFFFFFF, 0xFF000000, 0xFF4285F4, 0xFF127FCD, 0xFFFBBC05} {
		c, ok := ContrastColor(argb, 4.5)
		if assert.True(t, ok, "%08X", argb) {
			assert.GreaterOrEqual(t, ContrastRatio(argb, c), 4.4, "%08X %08X", argb, c)
		}
		u := ContrastColorUnsafe(argb, 21)
		assert.Contains(t, []uint32{0xFFFFFFFF, 0xFF000000}, u)
	}
	_, ok := ContrastColor(0xFF777777, 21)
	assert.False(t, ok)
}

func TestContrastToneDirection(t *testing.T) {
	for _, tone := range []float64{5, 30, 50, 70, 95} {
		if l, ok := ContrastToneLighter(tone, 3); ok {
			assert.Greater(t, l, tone)
			assert.InDelta(t, 3, ToneContrastRatio(tone, l), 0.1, "lighter %g", tone)
		} else {
			assert.Equal(t, 100.0, ContrastToneLighterUnsafe(tone, 3))
		}
		if d, ok := ContrastToneDarker(tone, 3); ok {
			assert.Less(t, d, tone)
			assert.InDelta(t, 3, ToneContrastRatio(tone, d), 0.1, "darker %g", tone)
		} else {
			assert.Equal(t, 0.0, ContrastToneDarkerUnsafe(tone, 3))
		}
	}
	d, ok := ContrastTone(80, 3)
	assert.True(t, ok)
	assert.Less(t, d, 80.0)
	l, ok := ContrastTone(20, 3)
	assert.True(t, ok)
	assert.Greater(t, l, 20.0)
}
