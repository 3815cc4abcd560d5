// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the colorimetry building blocks used by the
// color appearance packages: sRGB gamma, linear sRGB to and from CIE XYZ,
// CIE L*a*b*, and packed 32-bit ARGB colors.
//
// Linear RGB and XYZ values are on a 0-100 scale throughout,
// matching the conventions of the CAM16 and HCT code built on top.
package cie
