// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"image/color"
	"testing"

	"github.com/jwheeler0424/color-builder-sub002/base/tolassert"
	"github.com/stretchr/testify/assert"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func TestRatio(t *testing.T) {
	tolassert.EqualTol(t, 21, Ratio(white, black), 0.001)
	tolassert.EqualTol(t, 1, Ratio(white, white), 0.001)
	tolassert.EqualTol(t, 1, Ratio(black, black), 0.001)

	// a couple of well-known pairs
	tolassert.EqualTol(t, 3.68, Ratio(color.RGBA{0x3B, 0x82, 0xF6, 255}, white), 0.05)
	tolassert.EqualTol(t, 5.25, Ratio(color.RGBA{255, 0, 0, 255}, black), 0.05)
}

func TestRatioSymmetric(t *testing.T) {
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 85 {
			a := color.RGBA{uint8(r), uint8(g), 40, 255}
			b := color.RGBA{uint8(g), 100, uint8(r), 255}
			assert.Equal(t, Ratio(a, b), Ratio(b, a))
			assert.GreaterOrEqual(t, Ratio(a, b), float32(1))
		}
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		ratio float32
		want  Level
	}{
		{21, AAA},
		{7, AAA},
		{6.99, AA},
		{4.5, AA},
		{4.49, AALarge},
		{3, AALarge},
		{2.99, Fail},
		{1, Fail},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, LevelOf(test.ratio), "ratio %g", test.ratio)
	}

	assert.Equal(t, "AAA", AAA.String())
	assert.Equal(t, "AA Large", AALarge.String())
	assert.Equal(t, "Fail", Fail.String())
}
