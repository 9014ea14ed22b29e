// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semantic

import (
	"image/color"
	"testing"

	"github.com/jwheeler0424/color-builder-sub002/base/tolassert"
	"github.com/jwheeler0424/color-builder-sub002/colors/cam/oklab"
	"github.com/stretchr/testify/assert"
)

func TestGenerateEmptyPalette(t *testing.T) {
	set := Generate(nil)
	for _, role := range []Role{Info, Success, Warning, Error} {
		rc := set.Get(role)
		assert.False(t, rc.Locked)
		got := oklab.LCHFromColor(rc.Color)
		// canonical center hues at the default lightness and chroma
		assert.Less(t, oklab.HueDist(got.H, roleArcs[role].center), float32(4), "%v hue", role)
		if role != Warning {
			tolassert.EqualTol(t, defaultL, got.L, 0.02, "%v lightness", role)
		}
		// gamut mapping may shave chroma, but never adds any
		assert.LessOrEqual(t, got.C, float32(defaultC)+0.01, "%v chroma", role)
		assert.Greater(t, got.C, float32(0.06), "%v chroma", role)
	}
	// neutral and focus fall back to the info center
	assert.NotZero(t, set.Neutral.Color.A)
	assert.NotZero(t, set.Focus.Color.A)
}

func TestGenerateAdoptsPaletteHue(t *testing.T) {
	// a palette blue inside the info arc should be adopted outright
	blue := color.RGBA{0x3B, 0x82, 0xF6, 255}
	blueHue := oklab.LCHFromColor(blue).H

	set := Generate([]color.Color{blue, color.RGBA{220, 38, 38, 255}})
	got := oklab.LCHFromColor(set.Info.Color)
	assert.Less(t, oklab.HueDist(got.H, blueHue), float32(4))
}

func TestGenerateErrorFromRed(t *testing.T) {
	red := color.RGBA{220, 38, 38, 255}
	redHue := oklab.LCHFromColor(red).H

	set := Generate([]color.Color{red})
	got := oklab.LCHFromColor(set.Error.Color)
	assert.Less(t, oklab.HueDist(got.H, redHue), float32(4))
}

func TestGenerateFallbackBlends(t *testing.T) {
	// a pure magenta palette leaves the error arc empty; the resolved
	// error hue stays near the canonical center, pulled partway
	// toward the palette
	magenta := color.RGBA{255, 0, 255, 255}
	set := Generate([]color.Color{magenta})

	got := oklab.LCHFromColor(set.Error.Color)
	center := roleArcs[Error].center
	magentaHue := oklab.LCHFromColor(magenta).H
	assert.Less(t, oklab.HueDist(got.H, center), oklab.HueDist(magentaHue, center))
	assert.Greater(t, oklab.HueDist(got.H, center), float32(1))
}

func TestGenerateWarningDarkened(t *testing.T) {
	// with no palette, warning resolves to the canonical yellow hue
	// and takes the full loudness penalty
	set := Generate(nil)
	warning := oklab.LCHFromColor(set.Warning.Color)
	info := oklab.LCHFromColor(set.Info.Color)
	assert.Less(t, warning.L, info.L-0.03)
}

func TestGenerateNeutralAndFocus(t *testing.T) {
	blue := color.RGBA{0x3B, 0x82, 0xF6, 255}
	blueLCH := oklab.LCHFromColor(blue)
	set := Generate([]color.Color{blue, color.RGBA{100, 100, 100, 255}})

	neutral := oklab.LCHFromColor(set.Neutral.Color)
	assert.Less(t, neutral.C, float32(0.05))

	focus := oklab.LCHFromColor(set.Focus.Color)
	assert.Less(t, oklab.HueDist(focus.H, blueLCH.H), float32(4))
	assert.GreaterOrEqual(t, focus.L, float32(0.49))
	assert.LessOrEqual(t, focus.L, float32(0.71))
}

func TestMergeKeepsLocked(t *testing.T) {
	locked := RoleColor{Color: color.RGBA{1, 2, 3, 255}, Locked: true}
	existing := Set{Error: locked}

	generated := Generate([]color.Color{color.RGBA{220, 38, 38, 255}})
	merged := Merge(existing, generated)

	assert.Equal(t, locked, merged.Error)
	assert.Equal(t, generated.Info, merged.Info)
	assert.Equal(t, generated.Focus, merged.Focus)
}

func TestRoleStrings(t *testing.T) {
	for r := Info; r < NumRoles; r++ {
		back, ok := RoleFromString(r.String())
		assert.True(t, ok)
		assert.Equal(t, r, back)
	}
	_, ok := RoleFromString("primary")
	assert.False(t, ok)
}
