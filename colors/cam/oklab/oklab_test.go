// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklab

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwheeler0424/color-builder-sub002/base/tolassert"
)

func TestLCHKnownColors(t *testing.T) {
	tests := []struct {
		name       string
		color      color.RGBA
		l, c, h    float32
		achromatic bool
	}{
		{name: "black", color: color.RGBA{0, 0, 0, 255}, l: 0, c: 0, achromatic: true},
		{name: "white", color: color.RGBA{255, 255, 255, 255}, l: 1, c: 0, achromatic: true},
		{name: "red", color: color.RGBA{255, 0, 0, 255}, l: 0.6279, c: 0.2577, h: 29.23},
		{name: "green", color: color.RGBA{0, 128, 0, 255}, l: 0.5196, c: 0.1772, h: 142.5},
		{name: "blue", color: color.RGBA{0, 0, 255, 255}, l: 0.452, c: 0.3132, h: 264.05},
	}
	for _, tt := range tests {
		lch := LCHFromColor(tt.color)
		tolassert.EqualTol(t, tt.l, lch.L, 0.01, tt.name)
		tolassert.EqualTol(t, tt.c, lch.C, 0.01, tt.name)
		if !tt.achromatic {
			tolassert.EqualTol(t, tt.h, lch.H, 0.6, tt.name)
		}
	}
}

func TestLabRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				c := color.RGBA{uint8(r), uint8(g), uint8(b), 255}
				back := FromColor(c).AsRGBA()
				assert.InDelta(t, int(c.R), int(back.R), 1)
				assert.InDelta(t, int(c.G), int(back.G), 1)
				assert.InDelta(t, int(c.B), int(back.B), 1)
			}
		}
	}
}

func TestLabLCHRoundTrip(t *testing.T) {
	lab := Lab{L: 0.62, A: 0.11, B: -0.08}
	back := lab.LCH().Lab()
	tolassert.EqualTol(t, lab.L, back.L, 1.0e-6)
	tolassert.EqualTol(t, lab.A, back.A, 1.0e-5)
	tolassert.EqualTol(t, lab.B, back.B, 1.0e-5)
}

func TestHueHelpers(t *testing.T) {
	tolassert.Equal(t, 10, NormHue(370))
	tolassert.Equal(t, 350, NormHue(-10))
	tolassert.Equal(t, 20, HueDist(350, 10))
	tolassert.Equal(t, 180, HueDist(0, 180))
	tolassert.Equal(t, 350, LerpHue(350, 10, 0))
	tolassert.Equal(t, 10, LerpHue(350, 10, 1))
	tolassert.Equal(t, 355, LerpHue(350, 10, 0.25))
}

func TestDist(t *testing.T) {
	a := Lab{L: 0.5, A: 0, B: 0}
	tolassert.Equal(t, 0, a.Dist(a))
	tolassert.EqualTol(t, 0.1, a.Dist(Lab{L: 0.6, A: 0, B: 0}), 1.0e-6)
}
