// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklab

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// LCH is a color in the OKLCH space, the polar form of OKLab.
// L is perceptual lightness in 0-1, C is chroma (0 to about 0.4 for
// in-gamut sRGB), and H is the hue angle in degrees in [0, 360).
type LCH struct {
	L float32
	C float32
	H float32
}

// LCHFromColor returns the OKLCH representation of the given color,
// ignoring alpha.
func LCHFromColor(c color.Color) LCH {
	return FromColor(c).LCH()
}

// Lab returns the rectangular OKLab form of this color.
func (lc LCH) Lab() Lab {
	hr := lc.H * (math32.Pi / 180)
	return Lab{
		L: lc.L,
		A: lc.C * math32.Cos(hr),
		B: lc.C * math32.Sin(hr),
	}
}

// WithL returns a copy of this color with the given lightness,
// clamped to 0-1.
func (lc LCH) WithL(l float32) LCH {
	lc.L = clamp01(l)
	return lc
}

// WithC returns a copy of this color with the given chroma,
// clamped to be non-negative.
func (lc LCH) WithC(c float32) LCH {
	lc.C = math32.Max(c, 0)
	return lc
}

// WithH returns a copy of this color with the given hue,
// normalized to [0, 360).
func (lc LCH) WithH(h float32) LCH {
	lc.H = NormHue(h)
	return lc
}

func (lc LCH) String() string {
	return fmt.Sprintf("oklch(%g %g %g)", lc.L, lc.C, lc.H)
}

// NormHue normalizes a hue angle in degrees to [0, 360).
func NormHue(h float32) float32 {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// HueDist returns the shortest angular distance between two hues
// in degrees, in [0, 180].
func HueDist(a, b float32) float32 {
	d := math32.Abs(NormHue(a) - NormHue(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// LerpHue interpolates from hue a toward hue b by t in 0-1, taking
// the shortest way around the wheel, returning a hue in [0, 360).
func LerpHue(a, b, t float32) float32 {
	a = NormHue(a)
	b = NormHue(b)
	d := b - a
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return NormHue(a + d*t)
}
