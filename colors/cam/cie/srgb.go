// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie implements the standard sRGB transfer functions and
// relative luminance, which everything else in the color engine
// builds on.
package cie

import (
	"image/color"

	"github.com/chewxy/math32"
)

// SRGBToLinearComp converts a single sRGB gamma-encoded component
// in the 0-1 range to its linear value, using the standard piecewise
// function with threshold 0.04045 and gamma 2.4.
func SRGBToLinearComp(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a single linear component in the 0-1
// range to its sRGB gamma-encoded value, using the standard piecewise
// function with threshold 0.0031308 and gamma 2.4.
func SRGBFromLinearComp(v float32) float32 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math32.Pow(v, 1.0/2.4) - 0.055
}

// SRGBToLinear converts 0-1 normalized gamma-encoded sRGB values
// to linear values.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts 0-1 normalized linear values
// to gamma-encoded sRGB values.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBUint8ToFloat converts uint8 sRGB components to 0-1 normalized
// floating point values.
func SRGBUint8ToFloat(r, g, b uint8) (fr, fg, fb float32) {
	fr = float32(r) / 255
	fg = float32(g) / 255
	fb = float32(b) / 255
	return
}

// SRGBFloatToUint8 converts 0-1 normalized sRGB components to uint8,
// rounding to nearest and clamping to the representable range.
func SRGBFloatToUint8(r, g, b float32) (ur, ug, ub uint8) {
	ur = uint8(math32.Min(math32.Max(r, 0), 1)*255 + 0.5)
	ug = uint8(math32.Min(math32.Max(g, 0), 1)*255 + 0.5)
	ub = uint8(math32.Min(math32.Max(b, 0), 1)*255 + 0.5)
	return
}

// RelativeLuminance returns the ITU-R BT.709 relative luminance (Y)
// of the given 0-1 normalized gamma-encoded sRGB values, in 0-1.
func RelativeLuminance(r, g, b float32) float32 {
	rl, gl, bl := SRGBToLinear(r, g, b)
	return 0.2126*rl + 0.7152*gl + 0.0722*bl
}

// LuminanceOf returns the BT.709 relative luminance of the given color,
// ignoring alpha.
func LuminanceOf(c color.Color) float32 {
	r, g, b := RGBToFloat(c)
	return RelativeLuminance(r, g, b)
}

// RGBToFloat returns the 0-1 normalized, non-premultiplied sRGB
// components of the given color, ignoring alpha. A fully transparent
// color is treated as black.
func RGBToFloat(c color.Color) (r, g, b float32) {
	ur, ug, ub, ua := c.RGBA()
	if ua == 0 {
		return 0, 0, 0
	}
	fa := float32(ua) / 65535
	r = (float32(ur) / 65535) / fa
	g = (float32(ug) / 65535) / fa
	b = (float32(ub) / 65535) / fa
	return
}
