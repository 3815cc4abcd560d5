// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scheme provides light and dark color schemes of named design
// roles, generated from the tonal palettes of a seed color.
package scheme

import "cogentcore.org/cam/palette"

// Scheme contains the colors of every design role of a color scheme.
type Scheme struct {
	Primary              Color `json:"primary" yaml:"primary" toml:"primary"`
	OnPrimary            Color `json:"onPrimary" yaml:"onPrimary" toml:"onPrimary"`
	PrimaryContainer     Color `json:"primaryContainer" yaml:"primaryContainer" toml:"primaryContainer"`
	OnPrimaryContainer   Color `json:"onPrimaryContainer" yaml:"onPrimaryContainer" toml:"onPrimaryContainer"`
	Secondary            Color `json:"secondary" yaml:"secondary" toml:"secondary"`
	OnSecondary          Color `json:"onSecondary" yaml:"onSecondary" toml:"onSecondary"`
	SecondaryContainer   Color `json:"secondaryContainer" yaml:"secondaryContainer" toml:"secondaryContainer"`
	OnSecondaryContainer Color `json:"onSecondaryContainer" yaml:"onSecondaryContainer" toml:"onSecondaryContainer"`
	Tertiary             Color `json:"tertiary" yaml:"tertiary" toml:"tertiary"`
	OnTertiary           Color `json:"onTertiary" yaml:"onTertiary" toml:"onTertiary"`
	TertiaryContainer    Color `json:"tertiaryContainer" yaml:"tertiaryContainer" toml:"tertiaryContainer"`
	OnTertiaryContainer  Color `json:"onTertiaryContainer" yaml:"onTertiaryContainer" toml:"onTertiaryContainer"`
	Error                Color `json:"error" yaml:"error" toml:"error"`
	OnError              Color `json:"onError" yaml:"onError" toml:"onError"`
	ErrorContainer       Color `json:"errorContainer" yaml:"errorContainer" toml:"errorContainer"`
	OnErrorContainer     Color `json:"onErrorContainer" yaml:"onErrorContainer" toml:"onErrorContainer"`
	Background           Color `json:"background" yaml:"background" toml:"background"`
	OnBackground         Color `json:"onBackground" yaml:"onBackground" toml:"onBackground"`
	Surface              Color `json:"surface" yaml:"surface" toml:"surface"`
	OnSurface            Color `json:"onSurface" yaml:"onSurface" toml:"onSurface"`
	SurfaceVariant       Color `json:"surfaceVariant" yaml:"surfaceVariant" toml:"surfaceVariant"`
	OnSurfaceVariant     Color `json:"onSurfaceVariant" yaml:"onSurfaceVariant" toml:"onSurfaceVariant"`
	Outline              Color `json:"outline" yaml:"outline" toml:"outline"`
	Shadow               Color `json:"shadow" yaml:"shadow" toml:"shadow"`
	InverseSurface       Color `json:"inverseSurface" yaml:"inverseSurface" toml:"inverseSurface"`
	InverseOnSurface     Color `json:"inverseOnSurface" yaml:"inverseOnSurface" toml:"inverseOnSurface"`
	InversePrimary       Color `json:"inversePrimary" yaml:"inversePrimary" toml:"inversePrimary"`
}

// Light returns the light scheme of the given seed color.
func Light(argb uint32) *Scheme {
	return LightFromCore(palette.NewCore(argb))
}

// LightContent returns the light scheme of the given seed color
// using the content core palette; see [palette.NewContentCore].
func LightContent(argb uint32) *Scheme {
	return LightFromCore(palette.NewContentCore(argb))
}

// Dark returns the dark scheme of the given seed color.
func Dark(argb uint32) *Scheme {
	return DarkFromCore(palette.NewCore(argb))
}

// DarkContent returns the dark scheme of the given seed color
// using the content core palette; see [palette.NewContentCore].
func DarkContent(argb uint32) *Scheme {
	return DarkFromCore(palette.NewContentCore(argb))
}

// LightFromCore returns the light scheme of the given core palette.
func LightFromCore(core *palette.Core) *Scheme {
	tone := func(t *palette.Tones, tone float64) Color { return Color(t.Tone(tone)) }
	s := &Scheme{
		Background:       tone(core.N1, 99),
		OnBackground:     tone(core.N1, 10),
		Surface:          tone(core.N1, 99),
		OnSurface:        tone(core.N1, 10),
		SurfaceVariant:   tone(core.N2, 90),
		OnSurfaceVariant: tone(core.N2, 30),
		Outline:          tone(core.N2, 50),
		Shadow:           tone(core.N1, 0),
		InverseSurface:   tone(core.N1, 20),
		InverseOnSurface: tone(core.N1, 95),
		InversePrimary:   tone(core.A1, 80),
	}
	s.setAccents(NewAccentLight(core.A1), NewAccentLight(core.A2), NewAccentLight(core.A3), NewAccentLight(core.Error))
	return s
}

// DarkFromCore returns the dark scheme of the given core palette.
func DarkFromCore(core *palette.Core) *Scheme {
	tone := func(t *palette.Tones, tone float64) Color { return Color(t.Tone(tone)) }
	s := &Scheme{
		Background:       tone(core.N1, 10),
		OnBackground:     tone(core.N1, 90),
		Surface:          tone(core.N1, 10),
		OnSurface:        tone(core.N1, 90),
		SurfaceVariant:   tone(core.N2, 30),
		OnSurfaceVariant: tone(core.N2, 80),
		Outline:          tone(core.N2, 60),
		Shadow:           tone(core.N1, 0),
		InverseSurface:   tone(core.N1, 90),
		InverseOnSurface: tone(core.N1, 20),
		InversePrimary:   tone(core.A1, 40),
	}
	s.setAccents(NewAccentDark(core.A1), NewAccentDark(core.A2), NewAccentDark(core.A3), NewAccentDark(core.Error))
	return s
}

// Role is a named color of a scheme.
type Role struct {
	Name  string
	Color Color
}

// Roles returns the colors of the scheme in declaration order,
// named as they are when marshaled.
func (s *Scheme) Roles() []Role {
	return []Role{
		{"primary", s.Primary},
		{"onPrimary", s.OnPrimary},
		{"primaryContainer", s.PrimaryContainer},
		{"onPrimaryContainer", s.OnPrimaryContainer},
		{"secondary", s.Secondary},
		{"onSecondary", s.OnSecondary},
		{"secondaryContainer", s.SecondaryContainer},
		{"onSecondaryContainer", s.OnSecondaryContainer},
		{"tertiary", s.Tertiary},
		{"onTertiary", s.OnTertiary},
		{"tertiaryContainer", s.TertiaryContainer},
		{"onTertiaryContainer", s.OnTertiaryContainer},
		{"error", s.Error},
		{"onError", s.OnError},
		{"errorContainer", s.ErrorContainer},
		{"onErrorContainer", s.OnErrorContainer},
		{"background", s.Background},
		{"onBackground", s.OnBackground},
		{"surface", s.Surface},
		{"onSurface", s.OnSurface},
		{"surfaceVariant", s.SurfaceVariant},
		{"onSurfaceVariant", s.OnSurfaceVariant},
		{"outline", s.Outline},
		{"shadow", s.Shadow},
		{"inverseSurface", s.InverseSurface},
		{"inverseOnSurface", s.InverseOnSurface},
		{"inversePrimary", s.InversePrimary},
	}
}
