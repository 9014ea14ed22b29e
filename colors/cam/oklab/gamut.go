// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklab

import (
	"image/color"

	"github.com/jwheeler0424/color-builder-sub002/colors/cam/cie"
)

const (
	// achromaticChroma is the chroma below which a color is treated as
	// a pure gray and hue math is skipped entirely.
	achromaticChroma = 1.0e-4

	// gamutIters caps the chroma bisection; combined with gamutEps it
	// makes the solver constant-time.
	gamutIters = 32

	// gamutEps is the chroma search window below which the bisection
	// stops.
	gamutEps = 1.0e-4

	// linearSlack absorbs floating point noise when testing whether a
	// linear channel is displayable.
	linearSlack = 1.0e-5
)

// AsRGBA converts OKLCH to a standard opaque [color.RGBA], holding
// lightness and hue fixed and reducing chroma as needed until the
// color is inside the sRGB gamut. This is the CSS Color 4 approach:
// hue and lightness are perceptually primary, so only chroma is
// sacrificed. The result always has every channel in range.
func (lc LCH) AsRGBA() color.RGBA {
	if lc.L >= 1 {
		return color.RGBA{255, 255, 255, 255}
	}
	if lc.L <= 0 {
		return color.RGBA{0, 0, 0, 255}
	}
	if lc.C < achromaticChroma {
		// single gray value, no hue math
		v := cie.SRGBFromLinearComp(clamp01(grayLinear(lc.L)))
		u, _, _ := cie.SRGBFloatToUint8(v, v, v)
		return color.RGBA{u, u, u, 255}
	}

	if r, g, b, ok := lc.Lab().linearInGamut(); ok {
		return encodeLinear(r, g, b)
	}

	// binary search the largest in-gamut chroma at fixed L and H
	lo, hi := float32(0), lc.C
	rr, gg, bb := grayLinear(lc.L), grayLinear(lc.L), grayLinear(lc.L)
	for i := 0; i < gamutIters && hi-lo > gamutEps; i++ {
		mid := (lo + hi) / 2
		if r, g, b, ok := lc.WithC(mid).Lab().linearInGamut(); ok {
			rr, gg, bb = r, g, b
			lo = mid
		} else {
			hi = mid
		}
	}
	return encodeLinear(rr, gg, bb)
}

// InGamut reports whether this color converts directly to sRGB with
// every channel in range, without any chroma reduction.
func (lc LCH) InGamut() bool {
	_, _, _, ok := lc.Lab().linearInGamut()
	return ok
}

// linearInGamut converts to linear sRGB and reports whether all three
// channels are displayable.
func (lb Lab) linearInGamut() (r, g, b float32, ok bool) {
	r, g, b = lb.ToLinear()
	ok = inRange(r) && inRange(g) && inRange(b)
	return
}

func inRange(v float32) bool {
	return v >= -linearSlack && v <= 1+linearSlack
}

func encodeLinear(r, g, b float32) color.RGBA {
	er, eg, eb := cie.SRGBFromLinear(clamp01(r), clamp01(g), clamp01(b))
	ur, ug, ub := cie.SRGBFloatToUint8(er, eg, eb)
	return color.RGBA{ur, ug, ub, 255}
}

// grayLinear returns the linear gray value with the given OKLab
// lightness: for A = B = 0 all three LMS channels equal L cubed, and
// the linear RGB mix of equal LMS values is that same value.
func grayLinear(l float32) float32 {
	return l * l * l
}
