// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLightenDarken(t *testing.T) {
	gray := color.RGBA{128, 128, 128, 255}

	lt := Lighten(gray, 20)
	assert.True(t, RGBToHSL(lt).L > RGBToHSL(gray).L)

	dk := Darken(gray, 20)
	assert.True(t, RGBToHSL(dk).L < RGBToHSL(gray).L)

	// lightness is clamped at the ends
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Lighten(gray, 100))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, Darken(gray, 100))
}

func TestSaturateDesaturate(t *testing.T) {
	c := color.RGBA{150, 100, 100, 255}

	sat := Saturate(c, 30)
	assert.True(t, RGBToHSL(sat).S > RGBToHSL(c).S)

	des := Desaturate(c, 100)
	h := RGBToHSL(des)
	assert.Equal(t, float32(0), h.S)
}

func TestSpin(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}

	h := RGBToHSL(Spin(red, 120))
	assert.InDelta(t, 120, h.H, 1)

	// wraps around the wheel
	h = RGBToHSL(Spin(red, -60))
	assert.InDelta(t, 300, h.H, 1)
}

func TestIsLightContrastColor(t *testing.T) {
	assert.True(t, IsLight(color.RGBA{255, 255, 255, 255}))
	assert.False(t, IsLight(color.RGBA{0, 0, 0, 255}))
	assert.True(t, IsDark(color.RGBA{20, 20, 60, 255}))

	assert.Equal(t, color.RGBA{0, 0, 0, 255}, ContrastColor(color.RGBA{255, 255, 0, 255}))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, ContrastColor(color.RGBA{0, 0, 128, 255}))
}
