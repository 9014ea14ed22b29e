// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"os"

	"github.com/muesli/termenv"

	"github.com/jwheeler0424/color-builder-sub002/colors"
)

var stdout = termenv.NewOutput(os.Stdout)

// swatch renders a block of the given color for the terminal's
// color profile, degrading gracefully on non-truecolor terminals.
func swatch(c color.Color) string {
	hex := colors.AsHex(c)
	return stdout.String("      ").
		Background(stdout.Color(hex)).
		String()
}

// label renders the hex form of the color next to its swatch.
func label(c color.Color) string {
	return swatch(c) + " " + colors.AsHex(c)
}
