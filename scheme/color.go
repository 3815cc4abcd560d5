// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import (
	"fmt"
	"image/color"

	"cogentcore.org/cam/cie"
)

// Color is an opaque ARGB color that marshals as #RRGGBB text.
type Color uint32

// ARGB returns the color as packed ARGB.
func (c Color) ARGB() uint32 { return uint32(c) }

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return cie.ColorFromARGB(uint32(c)).RGBA()
}

// AsRGBA returns the color as a standard [color.RGBA].
func (c Color) AsRGBA() color.RGBA {
	return cie.ColorFromARGB(uint32(c))
}

func (c Color) String() string {
	return cie.AsHex(uint32(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	argb, err := cie.FromHex(string(text))
	if err != nil {
		return fmt.Errorf("scheme.Color: %w", err)
	}
	*c = Color(argb)
	return nil
}
