// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import "math"

// Distance returns the perceptual distance between two colors,
// computed in CAM16-UCS with the ΔE' = 1.41 ΔE^0.63 correction.
// It is symmetric and zero for identical colors.
func Distance(a, b CAM) float64 {
	dj := a.JStar - b.JStar
	da := a.AStar - b.AStar
	db := a.BStar - b.BStar
	de := math.Sqrt(dj*dj + da*da + db*db)
	return 1.41 * math.Pow(de, 0.63)
}

// DistanceARGB returns the [Distance] between two ARGB colors
// under standard viewing conditions.
func DistanceARGB(a, b uint32) float64 {
	return Distance(FromARGB(a), FromARGB(b))
}
