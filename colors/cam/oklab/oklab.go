// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklab implements the OKLab and OKLCH perceptually uniform
// color spaces, including gamut-safe conversion back to sRGB.
// These are the working spaces for all perceptual operations in the
// engine: scales, palette scoring, semantic color resolution, and
// wide-gamut estimation.
package oklab

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/jwheeler0424/color-builder-sub002/colors/cam/cie"
)

// Lab is a color in the OKLab space. L is perceptual lightness in 0-1;
// A and B are the green-red and blue-yellow opponent axes, unbounded
// but practically within about +-0.4 for displayable colors.
type Lab struct {
	L float32
	A float32
	B float32
}

// FromColor returns the OKLab representation of the given color,
// ignoring alpha.
func FromColor(c color.Color) Lab {
	r, g, b := cie.RGBToFloat(c)
	rl, gl, bl := cie.SRGBToLinear(r, g, b)
	return FromLinear(rl, gl, bl)
}

// FromLinear converts 0-1 linear sRGB values to OKLab, using the
// standard LMS cone-response matrices with cube-root nonlinearity.
func FromLinear(r, g, b float32) Lab {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math32.Cbrt(l)
	mp := math32.Cbrt(m)
	sp := math32.Cbrt(s)

	return Lab{
		L: 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		A: 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		B: 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp,
	}
}

// ToLinear converts OKLab to 0-1 linear sRGB values. The results can
// fall outside 0-1 for out-of-gamut colors; see [LCH.AsRGBA] for the
// gamut-safe path.
func (lb Lab) ToLinear() (r, g, b float32) {
	lp := lb.L + 0.3963377774*lb.A + 0.2158037573*lb.B
	mp := lb.L - 0.1055613458*lb.A - 0.0638541728*lb.B
	sp := lb.L - 0.0894841775*lb.A - 1.2914855480*lb.B

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	r = 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return
}

// AsRGBA converts OKLab to a standard opaque [color.RGBA], clamping
// each linear channel to 0-1 first. For hue-preserving gamut mapping,
// convert through [Lab.LCH] instead.
func (lb Lab) AsRGBA() color.RGBA {
	r, g, b := lb.ToLinear()
	er, eg, eb := cie.SRGBFromLinear(clamp01(r), clamp01(g), clamp01(b))
	ur, ug, ub := cie.SRGBFloatToUint8(er, eg, eb)
	return color.RGBA{ur, ug, ub, 255}
}

// LCH returns the polar (lightness, chroma, hue) form of this color.
func (lb Lab) LCH() LCH {
	c := math32.Hypot(lb.A, lb.B)
	h := math32.Atan2(lb.B, lb.A) * (180 / math32.Pi)
	if h < 0 {
		h += 360
	}
	return LCH{L: lb.L, C: c, H: h}
}

// Dist returns the Euclidean distance between two OKLab colors, an
// approximation of their perceptual difference.
func (lb Lab) Dist(o Lab) float32 {
	dl := lb.L - o.L
	da := lb.A - o.A
	db := lb.B - o.B
	return math32.Sqrt(dl*dl + da*da + db*db)
}

func clamp01(v float32) float32 {
	return math32.Min(math32.Max(v, 0), 1)
}
