// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import "cogentcore.org/cam/palette"

// Accent contains the four standard variations of an accent color.
type Accent struct {

	// Base is the base color
	Base Color

	// On is the color applied to content on top of [Accent.Base]
	On Color

	// Container is the color applied to elements with less emphasis than [Accent.Base]
	Container Color

	// OnContainer is the color applied to content on top of [Accent.Container]
	OnContainer Color
}

// NewAccentLight returns a new light theme [Accent] from the given [palette.Tones].
func NewAccentLight(tones *palette.Tones) Accent {
	return Accent{
		Base:        Color(tones.Tone(40)),
		On:          Color(tones.Tone(100)),
		Container:   Color(tones.Tone(90)),
		OnContainer: Color(tones.Tone(10)),
	}
}

// NewAccentDark returns a new dark theme [Accent] from the given [palette.Tones].
func NewAccentDark(tones *palette.Tones) Accent {
	return Accent{
		Base:        Color(tones.Tone(80)),
		On:          Color(tones.Tone(20)),
		Container:   Color(tones.Tone(30)),
		OnContainer: Color(tones.Tone(90)),
	}
}

// PrimaryAccent returns the primary roles of the scheme as an [Accent].
func (s *Scheme) PrimaryAccent() Accent {
	return Accent{s.Primary, s.OnPrimary, s.PrimaryContainer, s.OnPrimaryContainer}
}

// SecondaryAccent returns the secondary roles of the scheme as an [Accent].
func (s *Scheme) SecondaryAccent() Accent {
	return Accent{s.Secondary, s.OnSecondary, s.SecondaryContainer, s.OnSecondaryContainer}
}

// TertiaryAccent returns the tertiary roles of the scheme as an [Accent].
func (s *Scheme) TertiaryAccent() Accent {
	return Accent{s.Tertiary, s.OnTertiary, s.TertiaryContainer, s.OnTertiaryContainer}
}

// ErrorAccent returns the error roles of the scheme as an [Accent].
func (s *Scheme) ErrorAccent() Accent {
	return Accent{s.Error, s.OnError, s.ErrorContainer, s.OnErrorContainer}
}

// setAccents sets the accent roles of the scheme.
func (s *Scheme) setAccents(primary, secondary, tertiary, err Accent) {
	s.Primary, s.OnPrimary, s.PrimaryContainer, s.OnPrimaryContainer = primary.Base, primary.On, primary.Container, primary.OnContainer
	s.Secondary, s.OnSecondary, s.SecondaryContainer, s.OnSecondaryContainer = secondary.Base, secondary.On, secondary.Container, secondary.OnContainer
	s.Tertiary, s.OnTertiary, s.TertiaryContainer, s.OnTertiaryContainer = tertiary.Base, tertiary.On, tertiary.Container, tertiary.OnContainer
	s.Error, s.OnError, s.ErrorContainer, s.OnErrorContainer = err.Base, err.On, err.Container, err.OnContainer
}
