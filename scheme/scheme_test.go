// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cogentcore.org/cam/cie"
	"cogentcore.org/cam/hct"
	"cogentcore.org/cam/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seed = 0xFF4285F4

func TestLight(t *testing.T) {
	s := Light(seed)
	assert.InDelta(t, 40, cie.LstarFromARGB(s.Primary.ARGB()), 1)
	assert.Equal(t, Color(0xFFFFFFFF), s.OnPrimary)
	assert.Equal(t, Color(0xFFFFFFFF), s.OnError)
	assert.Equal(t, Color(0xFF000000), s.Shadow)
	assert.Equal(t, s.Background, s.Surface)
	assert.InDelta(t, 80, cie.LstarFromARGB(s.InversePrimary.ARGB()), 1)
	assert.InDelta(t, hct.FromARGB(seed).Hue(), hct.FromARGB(s.Primary.ARGB()).Hue(), 3)
	assert.InDelta(t, 25, hct.FromARGB(s.Error.ARGB()).Hue(), 3)
	assert.GreaterOrEqual(t, hct.ContrastRatio(s.Primary.ARGB(), s.OnPrimary.ARGB()), 4.5)
}

func TestDark(t *testing.T) {
	s := Dark(seed)
	assert.InDelta(t, 80, cie.LstarFromARGB(s.Primary.ARGB()), 1)
	assert.InDelta(t, 20, cie.LstarFromARGB(s.OnPrimary.ARGB()), 1)
	assert.InDelta(t, 10, cie.LstarFromARGB(s.Background.ARGB()), 1)
	assert.Equal(t, Color(0xFF000000), s.Shadow)
	assert.Equal(t, Light(seed).Primary, s.InversePrimary)
	assert.GreaterOrEqual(t, hct.ContrastRatio(s.Surface.ARGB(), s.OnSurface.ARGB()), 7.0)
}

func TestContent(t *testing.T) {
	grey := uint32(0xFF807F7A)
	s := LightContent(grey)
	// a content scheme keeps a dull seed dull
	assert.Less(t, hct.FromARGB(s.Primary.ARGB()).Chroma(), 10.0)
	assert.Greater(t, hct.FromARGB(Light(grey).Primary.ARGB()).Chroma(), 20.0)

	d := DarkContent(grey)
	assert.Equal(t, s.Primary, d.InversePrimary)
	assert.Equal(t, *DarkFromCore(palette.NewContentCore(grey)), *d)
}

func TestRoles(t *testing.T) {
	s := Light(seed)
	roles := s.Roles()
	require.Len(t, roles, 27)
	assert.Equal(t, Role{"primary", s.Primary}, roles[0])
	assert.Equal(t, Role{"inversePrimary", s.InversePrimary}, roles[26])

	b, err := json.Marshal(s)
	require.NoError(t, err)
	var m map[string]string
	require.NoError(t, json.Unmarshal(b, &m))
	require.Len(t, m, 27)
	for _, r := range roles {
		assert.Equal(t, r.Color.String(), m[r.Name], r.Name)
	}
}

func TestColor(t *testing.T) {
	c := Color(0xFF4285F4)
	assert.Equal(t, "#4285F4", c.String())
	b, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#4285F4", string(b))

	var d Color
	require.NoError(t, d.UnmarshalText([]byte("#abc")))
	assert.Equal(t, Color(0xFFAABBCC), d)
	err = d.UnmarshalText([]byte("nope"))
	assert.ErrorIs(t, err, cie.ErrInvalidHex)

	r, g, bl, a := c.RGBA()
	assert.Equal(t, []uint32{0x4242, 0x8585, 0xF4F4, 0xFFFF}, []uint32{r, g, bl, a})
}

func TestMarshal(t *testing.T) {
	s := Dark(seed)
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			b, err := s.Marshal(f)
			require.NoError(t, err)
			assert.Contains(t, string(b), "#")
			assert.Contains(t, string(b), "onPrimaryContainer")

			d, err := Unmarshal(b, f)
			require.NoError(t, err)
			assert.Equal(t, s, d)
		})
	}

	b, err := s.Marshal(FormatJSON)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "{\n  \"primary\": \"#"))

	var buf bytes.Buffer
	err = s.Encode(&buf, "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Zero(t, buf.Len())

	_, err = s.Marshal("")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = Unmarshal(b, "ini")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = Unmarshal([]byte(`{"primary": "#zz"}`), FormatJSON)
	assert.ErrorIs(t, err, cie.ErrInvalidHex)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": FormatJSON, "YAML": FormatYAML, "yml": FormatYAML, " toml ": FormatTOML} {
		f, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, f)
	}
	_, err := ParseFormat("csv")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestAccent(t *testing.T) {
	core := palette.NewCore(seed)
	light := Light(seed)
	assert.Equal(t, NewAccentLight(core.A1), light.PrimaryAccent())
	assert.Equal(t, NewAccentLight(core.A2), light.SecondaryAccent())
	assert.Equal(t, NewAccentLight(core.A3), light.TertiaryAccent())
	assert.Equal(t, NewAccentLight(core.Error), light.ErrorAccent())

	dark := Dark(seed)
	assert.Equal(t, NewAccentDark(core.A1), dark.PrimaryAccent())
	assert.Equal(t, NewAccentDark(core.Error), dark.ErrorAccent())
	assert.InDelta(t, 90, cie.LstarFromARGB(dark.OnErrorContainer.ARGB()), 1)

	for _, a := range []Accent{light.PrimaryAccent(), dark.PrimaryAccent()} {
		assert.GreaterOrEqual(t, hct.ContrastRatio(a.Base.ARGB(), a.On.ARGB()), 4.5)
		assert.GreaterOrEqual(t, hct.ContrastRatio(a.Container.ARGB(), a.OnContainer.ARGB()), 4.5)
	}
}
