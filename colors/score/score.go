// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package score rates palette quality along four independent 0-100
// axes: hue balance, standalone accessibility, chroma harmony, and
// uniqueness, plus their unweighted average.
package score

import (
	"image/color"
	"sort"

	"github.com/chewxy/math32"
	"github.com/jwheeler0424/color-builder-sub002/colors"
	"github.com/jwheeler0424/color-builder-sub002/colors/cam/oklab"
	"github.com/jwheeler0424/color-builder-sub002/colors/contrast"
)

const (
	// harmonyMaxDev is the chroma standard deviation treated as
	// maximally disharmonious.
	harmonyMaxDev = 0.15

	// uniquenessScale maps mean pairwise OKLab distance to 0-100;
	// chosen so visually distinct 6-8 color palettes land in 60-90.
	uniquenessScale = 500

	// accessibleRatio is the WCAG ratio a color must reach against
	// white or black to count as accessible.
	accessibleRatio = 4.5
)

// Scores holds the four quality metrics and their average, each in
// 0-100.
type Scores struct {
	// Balance rewards even angular spacing of hues around the wheel.
	Balance float32

	// Accessibility is the share of colors usable as text against
	// white or black at WCAG AA.
	Accessibility float32

	// Harmony rewards similar chroma across the palette.
	Harmony float32

	// Uniqueness rewards perceptual distance between palette members.
	Uniqueness float32

	// Overall is the unweighted mean of the other four.
	Overall float32
}

// Palette scores the given palette. Fewer than two colors yields all
// zeros: three of the four metrics need at least a pair.
func Palette(cs []color.Color) Scores {
	if len(cs) < 2 {
		return Scores{}
	}
	s := Scores{
		Balance:       hueBalance(cs),
		Accessibility: accessibility(cs),
		Harmony:       chromaHarmony(cs),
		Uniqueness:    uniqueness(cs),
	}
	s.Overall = (s.Balance + s.Accessibility + s.Harmony + s.Uniqueness) / 4
	return s
}

// hueBalance measures how evenly the palette's hues are spaced:
// it sorts the hues, takes the circular gaps between neighbors
// (including the wraparound gap), and scores the standard deviation
// of those gaps against the ideal even gap of 360/n.
func hueBalance(cs []color.Color) float32 {
	hues := make([]float32, len(cs))
	for i, c := range cs {
		hues[i] = colors.RGBToHSL(c).H
	}
	sort.Slice(hues, func(i, j int) bool { return hues[i] < hues[j] })

	n := len(hues)
	gaps := make([]float32, n)
	for i := 0; i < n-1; i++ {
		gaps[i] = hues[i+1] - hues[i]
	}
	gaps[n-1] = 360 - hues[n-1] + hues[0]

	ideal := 360 / float32(n)
	var ss float32
	for _, g := range gaps {
		d := g - ideal
		ss += d * d
	}
	sd := math32.Sqrt(ss / float32(n))
	return math32.Max(100-100*sd/ideal, 0)
}

// accessibility counts the colors whose better contrast against pure
// white or pure black reaches WCAG AA. This deliberately measures
// each color's standalone usability as text, not pairwise palette
// contrast: harmonic palettes intentionally cluster luminance, and
// pairwise scoring would punish that.
func accessibility(cs []color.Color) float32 {
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	passing := 0
	for _, c := range cs {
		best := math32.Max(contrast.Ratio(c, white), contrast.Ratio(c, black))
		if best >= accessibleRatio {
			passing++
		}
	}
	return 100 * float32(passing) / float32(len(cs))
}

// chromaHarmony scores the standard deviation of OKLCH chroma across
// the palette against an assumed maximum meaningful deviation.
func chromaHarmony(cs []color.Color) float32 {
	chromas := make([]float32, len(cs))
	var mean float32
	for i, c := range cs {
		chromas[i] = oklab.LCHFromColor(c).C
		mean += chromas[i]
	}
	mean /= float32(len(cs))

	var ss float32
	for _, c := range chromas {
		d := c - mean
		ss += d * d
	}
	sd := math32.Sqrt(ss / float32(len(cs)))
	return math32.Max(100-100*sd/harmonyMaxDev, 0)
}

// uniqueness scores the mean pairwise OKLab distance over all
// unordered pairs, scaled and capped at 100.
func uniqueness(cs []color.Color) float32 {
	labs := make([]oklab.Lab, len(cs))
	for i, c := range cs {
		labs[i] = oklab.FromColor(c)
	}
	var sum float32
	pairs := 0
	for i := 0; i < len(labs); i++ {
		for j := i + 1; j < len(labs); j++ {
			sum += labs[i].Dist(labs[j])
			pairs++
		}
	}
	mean := sum / float32(pairs)
	return math32.Min(mean*uniquenessScale, 100)
}
