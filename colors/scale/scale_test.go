// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"image/color"
	"testing"

	"github.com/jwheeler0424/color-builder-sub002/colors/cam/oklab"
	"github.com/stretchr/testify/assert"
)

var blue = color.RGBA{0x3B, 0x82, 0xF6, 255}

func TestGenerateShape(t *testing.T) {
	sc := Generate(blue)
	assert.Len(t, sc.Steps, len(Steps))
	for i, s := range sc.Steps {
		assert.Equal(t, Steps[i], s.Value)
		assert.NotEmpty(t, s.Hex)
	}

	// lightness strictly decreases from step 50 to step 950
	prev := float32(2)
	for _, s := range sc.Steps {
		l := oklab.LCHFromColor(s.Color).L
		assert.Less(t, l, prev, "step %d", s.Value)
		prev = l
	}
}

func TestGenerateEndpoints(t *testing.T) {
	// the last two bases carry near-maximal chroma, where the tent
	// envelope alone would leave the endpoints visibly tinted
	for _, base := range []color.RGBA{blue, {220, 38, 38, 255}, {22, 163, 74, 255}, {255, 0, 255, 255}, {0, 0, 255, 255}} {
		sc := Generate(base)

		first := oklab.LCHFromColor(sc.Step(50).Color)
		last := oklab.LCHFromColor(sc.Step(950).Color)
		assert.Less(t, first.C, float32(0.05), "step 50 of %v", base)
		assert.Less(t, last.C, float32(0.05), "step 950 of %v", base)
		assert.Greater(t, first.L, float32(0.88))
		assert.Less(t, last.L, float32(0.25))
	}
}

func TestGenerateMidChroma(t *testing.T) {
	sc := Generate(blue)
	mid := oklab.LCHFromColor(sc.Step(500).Color)
	assert.Greater(t, mid.C, float32(0.1))
}

func TestGenerateHueHeld(t *testing.T) {
	baseHue := oklab.LCHFromColor(blue).H
	sc := Generate(blue)
	// endpoints are near-achromatic so their hue is numeric noise;
	// check the chromatic middle of the ramp
	for _, v := range []int{300, 400, 500, 600, 700} {
		got := oklab.LCHFromColor(sc.Step(v).Color)
		assert.Less(t, oklab.HueDist(got.H, baseHue), float32(3), "step %d", v)
	}
}

func TestGenerateGrayBase(t *testing.T) {
	sc := Generate(color.RGBA{128, 128, 128, 255})
	for _, s := range sc.Steps {
		lch := oklab.LCHFromColor(s.Color)
		assert.Less(t, lch.C, float32(0.02), "step %d", s.Value)
	}
}

func TestGenerateChromaCapped(t *testing.T) {
	// a maximally chromatic base must still produce in-gamut steps
	sc := Generate(color.RGBA{255, 0, 255, 255})
	for _, s := range sc.Steps {
		lch := oklab.LCHFromColor(s.Color)
		assert.LessOrEqual(t, lch.C, float32(chromaCap)+0.01, "step %d", s.Value)
	}
}

func TestStepLookup(t *testing.T) {
	sc := Generate(blue)
	assert.Equal(t, 500, sc.Step(500).Value)
	assert.Equal(t, Step{}, sc.Step(501))
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(blue)
	b := Generate(blue)
	assert.Equal(t, a, b)
}
