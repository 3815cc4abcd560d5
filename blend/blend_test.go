// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blend

import (
	"fmt"
	"math"
	"testing"

	"cogentcore.org/cam/cie"
	"cogentcore.org/cam/hct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	red    = 0xFFFF0000
	blue   = 0xFF0000FF
	green  = 0xFF00FF00
	yellow = 0xFFFFFF00
)

func assertClose(t *testing.T, want, got uint32, delta float64) {
	t.Helper()
	for _, ch := range []func(uint32) uint8{cie.RedFromARGB, cie.GreenFromARGB, cie.BlueFromARGB} {
		assert.InDelta(t, float64(ch(want)), float64(ch(got)), delta, "want %08X got %08X", want, got)
	}
}

func TestHarmonize(t *testing.T) {
	tests := []struct {
		design, source, want uint32
	}{
		{red, blue, 0xFFFB0057},
		{red, green, 0xFFD85600},
		{red, yellow, 0xFFD85600},
		{blue, green, 0xFF0047A3},
		{blue, red, 0xFF5700DC},
		{blue, yellow, 0xFF0047A3},
		{green, blue, 0xFF00FC94},
		{green, red, 0xFFB1F000},
		{green, yellow, 0xFFB1F000},
		{yellow, blue, 0xFFEBFFBA},
		{yellow, green, 0xFFEBFFBA},
		{yellow, red, 0xFFFFF6E3},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%08X_%08X", test.design, test.source), func(t *testing.T) {
			assertClose(t, test.want, Harmonize(test.design, test.source), 2)
		})
	}
	assertClose(t, red, Harmonize(red, red), 1)
}

func TestHarmonizeLimit(t *testing.T) {
	from := hct.FromARGB(blue)
	got := hct.FromARGB(Harmonize(blue, yellow))
	assert.InDelta(t, 15, math.Abs(hct.MinHueDistance(from.Hue(), got.Hue())), 2)
	assert.InDelta(t, from.Tone(), got.Tone(), 1)
}

func TestCAM16UCS(t *testing.T) {
	assertClose(t, red, CAM16UCS(red, blue, 0), 1)
	assertClose(t, blue, CAM16UCS(red, blue, 1), 1)
	mid := CAM16UCS(0xFFFFFFFF, 0xFF000000, 0.5)
	assert.InDelta(t, cie.RedFromARGB(mid), cie.BlueFromARGB(mid), 3)

	// the midpoint is halfway in lightness
	assert.Greater(t, cie.LstarFromARGB(CAM16UCS(red, blue, 0.5)), cie.LstarFromARGB(blue))
	assert.Less(t, cie.LstarFromARGB(CAM16UCS(red, blue, 0.5)), cie.LstarFromARGB(red))
}

func TestHCTHue(t *testing.T) {
	assertClose(t, red, HCTHue(red, blue, 0), 1)
	h := hct.FromARGB(HCTHue(red, blue, 1))
	assert.InDelta(t, hct.FromARGB(red).Tone(), h.Tone(), 1)
	assert.InDelta(t, 0, hct.MinHueDistance(hct.FromARGB(blue).Hue(), h.Hue()), 10)
}

func TestHCT(t *testing.T) {
	assertClose(t, 0xFF777777, HCT(50, 0xFFFFFFFF, 0xFF000000), 2)
	assertClose(t, red, HCT(0, red, blue), 1)
	assertClose(t, blue, HCT(100, red, blue), 1)
	assertClose(t, blue, HCT(150, red, blue), 1)

	// the hue of grey does not pull the blend
	h := hct.FromARGB(HCT(50, red, 0xFF808080))
	assert.InDelta(t, 0, hct.MinHueDistance(hct.FromARGB(red).Hue(), h.Hue()), 3)
}

func TestRGB(t *testing.T) {
	assert.Equal(t, uint32(0xFF808080), RGB(50, 0xFFFFFFFF, 0xFF000000))
	assert.Equal(t, uint32(red), RGB(0, red, blue))
	assert.Equal(t, uint32(blue), RGB(100, red, blue))
	assert.Equal(t, uint32(0x80FF0000), RGB(50, red, 0x00FF0000))
}

func TestBlend(t *testing.T) {
	assert.Equal(t, HCT(30, red, blue), Blend(BlendHCT, 30, red, blue))
	assert.Equal(t, RGB(30, red, blue), Blend(BlendRGB, 30, red, blue))
	assert.Equal(t, CAM16UCS(red, blue, 0.3), Blend(BlendCAM16, 30, red, blue))

	for _, bt := range []Types{BlendHCT, BlendRGB, BlendCAM16} {
		p, err := ParseTypes(bt.String())
		require.NoError(t, err)
		assert.Equal(t, bt, p)
	}
	p, err := ParseTypes("CAM16")
	require.NoError(t, err)
	assert.Equal(t, BlendCAM16, p)
	_, err = ParseTypes("hsl")
	assert.Error(t, err)
	assert.Equal(t, "Types(7)", Types(7).String())
}
