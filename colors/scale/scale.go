// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale generates perceptually even 11-step tint/shade ramps
// from one base color. The ramp is computed in OKLCH with the hue
// held fixed at the base hue throughout, which is the key advantage
// over HSL ramps: lightening and darkening never drift the hue.
package scale

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/jwheeler0424/color-builder-sub002/colors"
	"github.com/jwheeler0424/color-builder-sub002/colors/cam/oklab"
)

// Steps are the fixed nominal step values of a generated scale, from
// the lightest tint to the darkest shade.
var Steps = [...]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

const (
	// baseChromaCap keeps the ramp's peak chroma inside sRGB for
	// every hue.
	baseChromaCap = 0.32

	// chromaCap bounds the final per-step chroma after the tent and
	// skew are applied.
	chromaCap = 0.37

	// lightGamma shapes the lightness curve so that midtones stay
	// visually well spaced rather than linearly spaced.
	lightGamma = 0.85

	// endChromaCap keeps the extreme steps (50 and 950) near-achromatic
	// for every base; the tent alone does not guarantee that once the
	// base chroma approaches baseChromaCap.
	endChromaCap = 0.045
)

// Step is one entry of a generated scale, carrying the derived forms
// callers typically need for display and export.
type Step struct {
	// Value is the nominal step, 50 through 950.
	Value int

	// Color is the derived color at this step.
	Color color.RGBA

	// Hex is the canonical hex form of Color.
	Hex string

	// HSL is the HSL form of Color.
	HSL colors.HSL
}

// Scale is an 11-step tint/shade ramp generated from one base color.
type Scale struct {
	// Base is the base color the scale was generated from.
	Base color.RGBA

	// Steps holds the generated steps in order, lightest first.
	Steps []Step
}

// Generate produces the 11-step scale for the given base color.
// Lightness follows a power curve from near-white to near-black, and
// chroma follows a tent envelope that is zero at both ends, so steps
// 50 and 950 are always near-achromatic regardless of the base.
func Generate(base color.Color) Scale {
	lch := oklab.LCHFromColor(base)
	baseChroma := math32.Min(lch.C, baseChromaCap)

	sc := Scale{
		Base:  colors.AsRGBA(base),
		Steps: make([]Step, 0, len(Steps)),
	}
	for _, step := range Steps {
		t := float32(step) / 1000

		l := 0.97 - 0.87*math32.Pow(t, lightGamma)
		l = math32.Min(math32.Max(l, 0.02), 0.98)

		tent := 4 * t * (1 - t)
		skew := 1.1 - 0.3*math32.Abs(t-0.4)
		c := baseChroma * tent * skew
		c = math32.Min(math32.Max(c, 0), chromaCap)
		if step == Steps[0] || step == Steps[len(Steps)-1] {
			c = math32.Min(c, endChromaCap)
		}

		rgb := oklab.LCH{L: l, C: c, H: lch.H}.AsRGBA()
		sc.Steps = append(sc.Steps, Step{
			Value: step,
			Color: rgb,
			Hex:   colors.AsHex(rgb),
			HSL:   colors.RGBToHSL(rgb),
		})
	}
	return sc
}

// Step returns the entry with the given nominal value, or a zero
// Step if the value is not one of [Steps].
func (sc Scale) Step(value int) Step {
	for _, s := range sc.Steps {
		if s.Value == value {
			return s
		}
	}
	return Step{}
}
