// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package p3 provides wide-gamut (Display-P3) heuristics: detecting
// colors saturated enough to benefit from a P3 display, producing an
// sRGB stand-in preview that merely looks more saturated, and the
// exact Display-P3 CSS triplet for capable screens. The preview and
// the CSS triplet are deliberately independent code paths.
package p3

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/jwheeler0424/color-builder-sub002/colors/cam/cie"
	"github.com/jwheeler0424/color-builder-sub002/colors/cam/oklab"
)

const (
	// capableChroma is the OKLCH chroma above which a color is
	// flagged as exceeding what sRGB renders comfortably.
	capableChroma = 0.25

	// expandFactor scales chroma for the expanded preview.
	expandFactor = 1.25

	// expandCap is the assumed OKLCH chroma ceiling of Display-P3.
	expandCap = 0.38

	// p3LinearThreshold is the linear-side threshold of the P3
	// transfer function, which otherwise matches sRGB's.
	p3LinearThreshold = 0.0030186
)

// srgbToP3 is the standard sRGB-linear to Display-P3-linear 3x3
// matrix, row-major.
var srgbToP3 = [3][3]float32{
	{0.8224886, 0.1775114, 0},
	{0.0331941, 0.9668059, 0},
	{0.0170827, 0.0723974, 0.9105199},
}

// Capable reports whether the given color is saturated enough
// (OKLCH chroma above 0.25) to look visibly richer on a Display-P3
// screen. This is a heuristic, not exact colorimetry.
func Capable(c color.Color) bool {
	return oklab.LCHFromColor(c).C > capableChroma
}

// Expand returns an sRGB stand-in preview for the wide-gamut version
// of the given color: chroma is scaled by 1.25 (capped at the assumed
// P3 ceiling) at constant lightness and hue, then mapped back into
// sRGB through the gamut-safe path. The result is still an sRGB
// color; it only suggests the extra saturation.
func Expand(c color.Color) color.RGBA {
	lch := oklab.LCHFromColor(c)
	lch.C = math32.Min(lch.C*expandFactor, expandCap)
	return lch.AsRGBA()
}

// CSS returns the CSS Color 4 display-p3 triplet for the given color,
// for rendering on capable screens: linear sRGB is transformed by the
// sRGB-to-P3 matrix and re-encoded with P3's own transfer function.
func CSS(c color.Color) string {
	r, g, b := cie.RGBToFloat(c)
	rl, gl, bl := cie.SRGBToLinear(r, g, b)
	pr := srgbToP3[0][0]*rl + srgbToP3[0][1]*gl + srgbToP3[0][2]*bl
	pg := srgbToP3[1][0]*rl + srgbToP3[1][1]*gl + srgbToP3[1][2]*bl
	pb := srgbToP3[2][0]*rl + srgbToP3[2][1]*gl + srgbToP3[2][2]*bl
	return fmt.Sprintf("color(display-p3 %.4f %.4f %.4f)",
		encodeP3(pr), encodeP3(pg), encodeP3(pb))
}

// encodeP3 applies the Display-P3 transfer function: the same
// piecewise form as sRGB with a different linear threshold.
func encodeP3(v float32) float32 {
	v = math32.Min(math32.Max(v, 0), 1)
	if v <= p3LinearThreshold {
		return v * 12.92
	}
	return 1.055*math32.Pow(v, 1.0/2.4) - 0.055
}
