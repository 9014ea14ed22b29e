// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cvd simulates color vision deficiencies by applying fixed
// linear cone-response loss matrices to colors. The matrices are
// hard-coded linear approximations; they are applied to linear RGB,
// never to gamma-encoded values.
package cvd

import (
	"image/color"

	"github.com/jwheeler0424/color-builder-sub002/colors/cam/cie"
)

// Deficiency identifies a color vision deficiency to simulate.
type Deficiency int32

const (
	// None is normal color vision; simulation is a no-op.
	None Deficiency = iota

	// Deuteranopia is missing medium (green) cones.
	Deuteranopia

	// Protanopia is missing long (red) cones.
	Protanopia

	// Tritanopia is missing short (blue) cones.
	Tritanopia

	// Achromatopsia is total color blindness.
	Achromatopsia

	// Deuteranomaly is shifted (anomalous) green cones, the most
	// common deficiency.
	Deuteranomaly
)

func (d Deficiency) String() string {
	switch d {
	case Deuteranopia:
		return "deuteranopia"
	case Protanopia:
		return "protanopia"
	case Tritanopia:
		return "tritanopia"
	case Achromatopsia:
		return "achromatopsia"
	case Deuteranomaly:
		return "deuteranomaly"
	default:
		return "none"
	}
}

// FromString returns the deficiency with the given name as produced
// by [Deficiency.String], reporting whether the name was recognized.
func FromString(name string) (Deficiency, bool) {
	for d := None; d <= Deuteranomaly; d++ {
		if d.String() == name {
			return d, true
		}
	}
	return None, false
}

// matrices maps each deficiency to its 3x3 linear-RGB transform,
// row-major. These are the standard linear approximations of cone
// response loss; the engine only applies them.
var matrices = [...][3][3]float32{
	None: {
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	},
	Deuteranopia: {
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	},
	Protanopia: {
		{0.567, 0.433, 0},
		{0.558, 0.442, 0},
		{0, 0.242, 0.758},
	},
	Tritanopia: {
		{0.95, 0.05, 0},
		{0, 0.433, 0.567},
		{0, 0.475, 0.525},
	},
	Achromatopsia: {
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
	},
	Deuteranomaly: {
		{0.8, 0.2, 0},
		{0.258, 0.742, 0},
		{0, 0.142, 0.858},
	},
}

// Simulate returns the given color as someone with the given
// deficiency would perceive it: the color is linearized, transformed
// by the deficiency matrix, clamped, and re-encoded. Alpha is
// preserved unchanged.
func Simulate(c color.Color, d Deficiency) color.RGBA {
	_, _, _, ua := c.RGBA()
	r, g, b := cie.RGBToFloat(c)
	if d <= None || int(d) >= len(matrices) {
		ur, ug, ub := cie.SRGBFloatToUint8(r, g, b)
		return color.RGBA{ur, ug, ub, uint8(ua >> 8)}
	}
	rl, gl, bl := cie.SRGBToLinear(r, g, b)
	m := &matrices[d]
	sr := m[0][0]*rl + m[0][1]*gl + m[0][2]*bl
	sg := m[1][0]*rl + m[1][1]*gl + m[1][2]*bl
	sb := m[2][0]*rl + m[2][1]*gl + m[2][2]*bl
	er, eg, eb := cie.SRGBFromLinear(clamp01(sr), clamp01(sg), clamp01(sb))
	ur, ug, ub := cie.SRGBFloatToUint8(er, eg, eb)
	return color.RGBA{ur, ug, ub, uint8(ua >> 8)}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
