// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cvd

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulateNone(t *testing.T) {
	for r := 0; r <= 255; r += 51 {
		c := color.RGBA{uint8(r), uint8(255 - r), 77, 255}
		assert.Equal(t, c, Simulate(c, None))
	}
}

func TestSimulateGraysStable(t *testing.T) {
	// every matrix has rows summing to 1, so grays map to themselves
	for _, d := range []Deficiency{Deuteranopia, Protanopia, Tritanopia, Achromatopsia, Deuteranomaly} {
		for v := 0; v <= 255; v += 85 {
			g := color.RGBA{uint8(v), uint8(v), uint8(v), 255}
			got := Simulate(g, d)
			assert.InDelta(t, int(g.R), int(got.R), 1, "%v gray %d", d, v)
			assert.InDelta(t, int(got.R), int(got.G), 1)
			assert.InDelta(t, int(got.G), int(got.B), 1)
		}
	}
}

func TestSimulateAchromatopsia(t *testing.T) {
	got := Simulate(color.RGBA{255, 0, 0, 255}, Achromatopsia)
	assert.Equal(t, got.R, got.G)
	assert.Equal(t, got.G, got.B)
	assert.NotZero(t, got.R)
	assert.NotEqual(t, uint8(255), got.R)
}

func TestSimulateRedGreenCollapse(t *testing.T) {
	// deuteranopia and protanopia famously confuse red and green
	for _, d := range []Deficiency{Deuteranopia, Protanopia} {
		red := Simulate(color.RGBA{255, 0, 0, 255}, d)
		green := Simulate(color.RGBA{0, 255, 0, 255}, d)
		dr := int(red.R) - int(green.R)
		dg := int(red.G) - int(green.G)
		assert.Less(t, dr*dr+dg*dg, 255*255/4, "%v keeps red and green apart", d)
	}

	// tritanopia does not
	red := Simulate(color.RGBA{255, 0, 0, 255}, Tritanopia)
	green := Simulate(color.RGBA{0, 255, 0, 255}, Tritanopia)
	assert.Greater(t, int(red.R)-int(green.R), 100)
}

func TestSimulateAlpha(t *testing.T) {
	got := Simulate(color.NRGBA{200, 50, 50, 255}, Deuteranomaly)
	assert.Equal(t, uint8(255), got.A)
}

func TestDeficiencyStrings(t *testing.T) {
	for d := None; d <= Deuteranomaly; d++ {
		back, ok := FromString(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, back)
	}
	_, ok := FromString("monochromacy")
	assert.False(t, ok)
}
