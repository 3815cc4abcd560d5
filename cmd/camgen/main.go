// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command camgen converts colors between sRGB and HCT, and generates
// tonal palettes and color schemes.
package main

import (
	"os"

	"cogentcore.org/cam/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
