// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

// Lighten returns a color that is lighter by the given absolute HSL
// lightness amount (0-100, ranges enforced).
func Lighten(c color.Color, amount float32) color.RGBA {
	h := RGBToHSL(c)
	h.L += amount
	return h.AsRGBA()
}

// Darken returns a color that is darker by the given absolute HSL
// lightness amount (0-100, ranges enforced).
func Darken(c color.Color, amount float32) color.RGBA {
	h := RGBToHSL(c)
	h.L -= amount
	return h.AsRGBA()
}

// Saturate returns a color that is more saturated by the given
// absolute HSL saturation amount (0-100, ranges enforced).
func Saturate(c color.Color, amount float32) color.RGBA {
	h := RGBToHSL(c)
	h.S += amount
	return h.AsRGBA()
}

// Desaturate returns a color that is less saturated by the given
// absolute HSL saturation amount (0-100, ranges enforced).
func Desaturate(c color.Color, amount float32) color.RGBA {
	h := RGBToHSL(c)
	h.S -= amount
	return h.AsRGBA()
}

// Spin returns a color with its HSL hue rotated by the given amount
// in degrees, wrapping around the hue wheel.
func Spin(c color.Color, amount float32) color.RGBA {
	h := RGBToHSL(c)
	h.H = normDeg(h.H + amount)
	return h.AsRGBA()
}

// IsLight returns whether the given color is light
// (has an HSL lightness greater than or equal to 60).
func IsLight(c color.Color) bool {
	return RGBToHSL(c).L >= 60
}

// IsDark returns whether the given color is dark
// (has an HSL lightness less than 60).
func IsDark(c color.Color) bool {
	return !IsLight(c)
}

// ContrastColor returns the color that should be used to contrast
// this color (white or black), based on the result of [IsLight].
func ContrastColor(c color.Color) color.RGBA {
	if IsLight(c) {
		return color.RGBA{0, 0, 0, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}
