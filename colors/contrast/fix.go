// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/jwheeler0424/color-builder-sub002/colors/cam/cie"
	"github.com/jwheeler0424/color-builder-sub002/colors/cam/oklab"
)

// Direction reports how [Ensure] changed a foreground color.
type Direction int32

const (
	// Unchanged means the foreground already met the target ratio.
	Unchanged Direction = iota

	// Darkened means the foreground was darkened against a light
	// background.
	Darkened

	// Lightened means the foreground was lightened against a dark
	// background.
	Lightened
)

func (d Direction) String() string {
	switch d {
	case Darkened:
		return "darkened"
	case Lightened:
		return "lightened"
	default:
		return "unchanged"
	}
}

// ensureIters caps the lightness bisection in [Ensure].
const ensureIters = 32

// chromaAttenuation is the maximum fraction of chroma surrendered by
// [Ensure], in proportion to the lightness delta, which keeps heavily
// darkened or lightened colors from clipping.
const chromaAttenuation = 0.3

// Ensure returns a foreground color meeting the given WCAG contrast
// ratio against the fixed background, together with the direction
// taken. If the foreground already passes it is returned unchanged.
// Otherwise its OKLCH lightness is binary searched toward black (for
// a light background) or white (for a dark one), attenuating chroma
// in proportion to the lightness delta, and the search accepts the
// smallest lightness change that meets the target. The final return
// reports whether the target was actually reached; when it cannot be
// (extreme targets against mid-gray backgrounds), the closest
// achievable color is returned.
func Ensure(fg, bg color.Color, ratio float32) (color.RGBA, Direction, bool) {
	if Ratio(fg, bg) >= ratio {
		r, g, b := cie.RGBToFloat(fg)
		ur, ug, ub := cie.SRGBFloatToUint8(r, g, b)
		return color.RGBA{ur, ug, ub, 255}, Unchanged, true
	}

	base := oklab.LCHFromColor(fg)
	dir := Lightened
	limit := float32(1)
	if cie.LuminanceOf(bg) > 0.5 {
		dir = Darkened
		limit = 0
	}

	candidate := func(l float32) color.RGBA {
		att := 1 - chromaAttenuation*math32.Abs(l-base.L)
		return oklab.LCH{L: l, C: base.C * att, H: base.H}.AsRGBA()
	}

	// the extreme is the best this direction can do; keep it as the
	// fallback if even it fails the target
	best := candidate(limit)
	met := Ratio(best, bg) >= ratio
	if !met {
		return best, dir, false
	}

	// bisect between the current lightness and the extreme for the
	// smallest change that still passes
	lo, hi := base.L, limit
	for i := 0; i < ensureIters; i++ {
		mid := (lo + hi) / 2
		c := candidate(mid)
		if Ratio(c, bg) >= ratio {
			best = c
			hi = mid
		} else {
			lo = mid
		}
	}
	return best, dir, true
}
