// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned by [FromHex] for strings that are
// not 3, 6, or 8 hexadecimal digits.
var ErrInvalidHex = errors.New("invalid hex color")

// FromHex parses the given hex color string, with or without a leading #,
// in the form rgb, rrggbb, or rrggbbaa, and returns the resulting ARGB color.
// Alpha defaults to 0xFF.
func FromHex(hex string) (uint32, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
		fallthrough
	case 6:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("cie.FromHex: %q: %w: %w", hex, ErrInvalidHex, err)
		}
		return 0xFF<<24 | uint32(v), nil
	case 8:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("cie.FromHex: %q: %w: %w", hex, ErrInvalidHex, err)
		}
		return uint32(v)<<24 | uint32(v)>>8, nil
	}
	return 0, fmt.Errorf("cie.FromHex: %q: %w", hex, ErrInvalidHex)
}

// MustFromHex is like [FromHex] but panics on error.
// It is meant for package-level color literals.
func MustFromHex(hex string) uint32 {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// AsHex returns the given ARGB color as a #RRGGBB string,
// appending the alpha channel only when it is not opaque.
func AsHex(argb uint32) string {
	if IsOpaque(argb) {
		return fmt.Sprintf("#%06X", argb&0xFFFFFF)
	}
	return fmt.Sprintf("#%06X%02X", argb&0xFFFFFF, AlphaFromARGB(argb))
}
