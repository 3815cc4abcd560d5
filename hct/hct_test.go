// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"fmt"
	"image/color"
	"sync"
	"testing"

	"cogentcore.org/cam/cam16"
	"cogentcore.org/cam/cie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertChannels asserts that each channel of the two colors
// differs by at most one.
func assertChannels(t *testing.T, want, got uint32, msgAndArgs ...any) {
	t.Helper()
	for _, ch := range []func(uint32) uint8{cie.RedFromARGB, cie.GreenFromARGB, cie.BlueFromARGB} {
		assert.InDelta(t, float64(ch(want)), float64(ch(got)), 1, msgAndArgs...)
	}
}

func TestHCT(t *testing.T) {
	h := FromARGB(0xFFFFFFFF)
	assert.InDelta(t, 209.492, h.Hue(), 0.01)
	assert.InDelta(t, 2.869, h.Chroma(), 0.01)
	assert.InDelta(t, 100, h.Tone(), 0.001)

	h = New(120, 60, 50)
	assert.InDelta(t, 120.114, h.Hue(), 0.5)
	assert.InDelta(t, 52.82, h.Chroma(), 1) // can't do 60
	assert.InDelta(t, 50, h.Tone(), 0.1)

	assert.InDelta(t, 32.3, FromARGB(0xFF0000FF).Tone(), 0.05)
}

func TestHCTAll(t *testing.T) {
	hues := []float64{15, 45, 75, 105, 135, 165, 195, 225, 255, 285, 315, 345}
	chromas := []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	tones := []float64{20, 30, 40, 50, 60, 70, 80}

	for _, hue := range hues {
		for _, chroma := range chromas {
			for _, tone := range tones {
				h := New(hue, chroma, tone)
				hs := h.String()
				if chroma > 0 {
					assert.InDelta(t, hue, h.Hue(), 4, hs)
				}
				assert.LessOrEqual(t, h.Chroma(), chroma+3, hs)
				assert.InDelta(t, tone, h.Tone(), 1, hs)
			}
		}
	}
}

func TestLiterals(t *testing.T) {
	assert.Equal(t, uint32(0xFFFFFFFF), SolveToARGB(0, 0, 100))
	assert.Equal(t, uint32(0xFF000000), SolveToARGB(0, 0, 0))
}

func TestRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				argb := cie.ARGBFromRGB(uint8(r), uint8(g), uint8(b))
				h := FromARGB(argb)
				got := SolveToARGB(h.Hue(), h.Chroma(), h.Tone())
				assertChannels(t, argb, got, "%08X via %v", argb, h)
			}
		}
	}
}

func TestChromaMonotone(t *testing.T) {
	s := DefaultSolver()
	for hue := 0.0; hue < 360; hue += 15 {
		for tone := 10.0; tone <= 90; tone += 10 {
			mc := s.MaxChroma(hue, tone)
			prev := 0.0
			for _, over := range []float64{0, 0.005, 0.5, 5, 50, 1000} {
				got := FromARGB(s.SolveToARGB(hue, mc+over, tone)).Chroma()
				assert.GreaterOrEqual(t, got, prev, "hue %g tone %g chroma %g", hue, tone, mc+over)
				prev = got
			}
			for _, chroma := range []float64{150, 200, 300} {
				assert.Equal(t, s.SolveToARGB(hue, mc, tone), s.SolveToARGB(hue, chroma, tone), "hue %g chroma %g tone %g", hue, chroma, tone)
			}
		}
	}
}

func TestClampIdempotent(t *testing.T) {
	s := DefaultSolver()
	for hue := 0.0; hue < 360; hue += 5 {
		for tone := 5.0; tone <= 95; tone += 5 {
			far := s.SolveToARGB(hue, 1000, tone)
			assert.Equal(t, far, s.SolveToARGB(hue, s.MaxChroma(hue, tone), tone), "hue %g tone %g", hue, tone)
		}
	}
	for _, hue := range []float64{15, 60, 120, 200, 265, 320} {
		for _, tone := range []float64{20, 50, 80} {
			h := New(hue, 200, tone)
			again := New(hue, h.Chroma(), tone)
			assert.InDelta(t, h.Chroma(), again.Chroma(), 1, "hue %g tone %g", hue, tone)
			assert.InDelta(t, h.Tone(), again.Tone(), 1, "hue %g tone %g", hue, tone)
		}
	}
}

func TestAchromatic(t *testing.T) {
	for _, tone := range []float64{0, 12.5, 50, 77, 100} {
		want := SolveToARGB(0, 0, tone)
		r, g, b := cie.RedFromARGB(want), cie.GreenFromARGB(want), cie.BlueFromARGB(want)
		assert.Equal(t, r, g)
		assert.Equal(t, g, b)
		for _, hue := range []float64{45, 180, 359} {
			assert.Equal(t, want, SolveToARGB(hue, 0, tone))
		}
	}
}

func TestHueWrap(t *testing.T) {
	for _, tone := range []float64{30, 60} {
		assert.Equal(t, SolveToARGB(350, 40, tone), SolveToARGB(-10, 40, tone))
		assert.Equal(t, SolveToARGB(10, 40, tone), SolveToARGB(370, 40, tone))
	}
}

func TestMaxChroma(t *testing.T) {
	s := DefaultSolver()
	for _, hue := range []float64{30, 120, 250} {
		for _, tone := range []float64{30, 60} {
			mc := s.MaxChroma(hue, tone)
			assert.InDelta(t, mc, New(hue, 1000, tone).Chroma(), 1, "hue %g tone %g", hue, tone)
		}
	}
	assert.Zero(t, s.MaxChroma(120, 100))
	assert.Zero(t, s.MaxChroma(120, 0))
}

func TestDerivedMatrices(t *testing.T) {
	scaledDiscount := [3][3]float64{
		{0.001200833568784504, 0.002389694492170889, 0.0002795742885861124},
		{0.0005891086651375999, 0.0029785502573438758, 0.0003270666104008398},
		{0.00010146692491640572, 0.0005364214359186694, 0.0032979401770712076},
	}
	linRGB := [3][3]float64{
		{1373.2198709594231, -1100.4251190754821, -7.278681089101213},
		{-271.815969077903, 559.6580465940733, -32.46047482791194},
		{1.9622899599665666, -57.173814538844006, 308.7233197812385},
	}
	s := DefaultSolver()
	for i := range 3 {
		for j := range 3 {
			assert.InEpsilon(t, scaledDiscount[i][j], s.scaledDiscount[i][j], 1e-3, "[%d][%d]", i, j)
			assert.InEpsilon(t, linRGB[i][j], s.linRGBFromScaledDiscount[i][j], 1e-3, "[%d][%d]", i, j)
		}
	}
}

func TestCriticalPlanes(t *testing.T) {
	assert.InDelta(t, 0.015176349177441876, criticalPlanes[0], 1e-9)
	assert.InDelta(t, 99.55452497210776, criticalPlanes[254], 1e-9)
	for i := 1; i < len(criticalPlanes); i++ {
		require.Less(t, criticalPlanes[i-1], criticalPlanes[i])
	}
}

func TestWith(t *testing.T) {
	h := New(265, 40, 60)
	lighter := h.WithTone(80)
	assert.InDelta(t, 60, h.Tone(), 0.5)
	assert.InDelta(t, 80, lighter.Tone(), 0.5)
	assert.InDelta(t, h.Hue(), lighter.Hue(), 2)

	spun := h.WithHue(h.Hue() + 360)
	assertChannels(t, h.ARGB(), spun.ARGB())

	grey := h.WithChroma(0)
	assert.Equal(t, cie.RedFromARGB(grey.ARGB()), cie.BlueFromARGB(grey.ARGB()))
	assert.Less(t, grey.Chroma(), 3.0)
}

func TestFromColor(t *testing.T) {
	h := FromColor(color.RGBA{0, 0, 255, 255})
	assert.Equal(t, uint32(0xFF0000FF), h.ARGB())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, h.AsRGBA())

	// alpha is ignored
	assert.Equal(t, uint32(0xFF123456), FromARGB(0x00123456).ARGB())

	c := Model.Convert(color.RGBA{18, 127, 205, 255})
	require.IsType(t, HCT{}, c)
	assert.Equal(t, uint32(0xFF127FCD), c.(HCT).ARGB())
	assert.Equal(t, c, Model.Convert(c))

	r, g, b, a := h.RGBA()
	assert.Equal(t, []uint32{0, 0, 0xFFFF, 0xFFFF}, []uint32{r, g, b, a})
}

func TestInView(t *testing.T) {
	h := New(120, 40, 60)
	same := h.InView(cam16.StdView())
	assertChannels(t, h.ARGB(), same.ARGB())

	cfg := cam16.DefaultViewConfig()
	cfg.BackgroundTone = 10
	dark := h.InView(cam16.NewView(cfg))
	assert.NotEqual(t, h.ARGB(), dark.ARGB())
	assert.InDelta(t, h.Hue(), dark.Hue(), 20)
}

func TestSolverView(t *testing.T) {
	cfg := cam16.DefaultViewConfig()
	cfg.Surround = 0
	vw := cam16.NewView(cfg)
	s := NewSolver(vw)
	assert.Same(t, vw, s.View())
	for _, argb := range []uint32{0xFF4285F4, 0xFFEA4335, 0xFF34A853, 0xFFFBBC05} {
		cam := cam16.FromARGBView(argb, vw)
		got := s.SolveToARGB(cam.Hue, cam.Chroma, cie.LstarFromARGB(argb))
		assertChannels(t, argb, got, "%08X", argb)
	}
}

func TestConcurrentSolve(t *testing.T) {
	want := make([]uint32, 36)
	for i := range want {
		want[i] = SolveToARGB(float64(i*10), 80, 55)
	}
	var wg sync.WaitGroup
	errs := make(chan string, 8*len(want))
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range want {
				if got := SolveToARGB(float64(i*10), 80, 55); got != want[i] {
					errs <- fmt.Sprintf("hue %d: %08X != %08X", i*10, got, want[i])
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func BenchmarkHCT(b *testing.B) {
	for b.Loop() {
		New(120, 45, 56)
	}
}

func BenchmarkSolveOutOfGamut(b *testing.B) {
	for b.Loop() {
		SolveToARGB(282, 200, 40)
	}
}
