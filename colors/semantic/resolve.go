// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package semantic derives the six utility colors (info, success,
// warning, error, neutral, focus) that harmonize with an arbitrary
// palette. Each hue-anchored role prefers an actual palette hue
// inside its acceptance arc; failing that it blends the nearest
// palette hue toward the role's canonical center. Neutral and focus
// track the palette's most chromatic ("primary") color.
package semantic

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/jwheeler0424/color-builder-sub002/colors/cam/oklab"
)

const (
	// shared target ranges keeping utility colors visually
	// consistent with each other and the source palette
	targetLMin = 0.44
	targetLMax = 0.64
	targetLMid = 0.54
	targetCMin = 0.10
	targetCMax = 0.22

	// candidate scoring weights: hue fit dominates
	weightHue    = 0.50
	weightLight  = 0.30
	weightChroma = 0.20

	// fallback hue blending: a nearby palette hue can pull the role
	// hue up to blendCap of the way from the canonical center; past
	// blendFullCanonical degrees the center wins outright
	blendCap           = 0.6
	blendFullCanonical = 120

	// bright yellow reads disproportionately loud, so warning
	// lightness drops by up to yellowPenalty near yellowHue,
	// tapering to zero yellowTaper degrees away
	yellowHue     = 75
	yellowPenalty = 0.08
	yellowTaper   = 40

	// neutral is a palette-tinted gray, not a zero-chroma gray
	neutralChromaMin = 0.006
	neutralChromaMax = 0.035

	// focus must read as a visible ring over typical backgrounds
	focusLMin = 0.5
	focusLMax = 0.7

	// defaults for an empty palette
	defaultL = 0.54
	defaultC = 0.14
)

// Generate resolves a fresh, unlocked semantic set for the given
// palette. An empty palette falls back to the canonical role-center
// hues at default lightness and chroma, so the result is always
// structurally valid.
func Generate(palette []color.Color) Set {
	entries := make([]oklab.LCH, len(palette))
	var sumL, sumC float32
	for i, c := range palette {
		entries[i] = oklab.LCHFromColor(c)
		sumL += entries[i].L
		sumC += entries[i].C
	}

	targetL, targetC := float32(defaultL), float32(defaultC)
	if len(entries) > 0 {
		avgL := sumL / float32(len(entries))
		avgC := sumC / float32(len(entries))
		// pull lightness toward mid-range so very light or very dark
		// palettes still yield usable utility colors
		targetL = clamp(targetLMid+(avgL-targetLMid)*0.5, targetLMin, targetLMax)
		targetC = clamp(avgC*0.9+0.04, targetCMin, targetCMax)
	}

	var out Set
	for _, role := range []Role{Info, Success, Warning, Error} {
		a := roleArcs[role]
		hue := resolveHue(entries, a, targetL, targetC)
		l := targetL
		if role == Warning {
			l -= yellowLoudness(hue)
		}
		rgb := oklab.LCH{L: l, C: targetC, H: hue}.AsRGBA()
		out.Put(role, RoleColor{Color: rgb})
	}

	primary, ok := mostChromatic(entries)
	if !ok {
		primary = oklab.LCH{L: defaultL, C: defaultC, H: roleArcs[Info].center}
	}

	neutralC := clamp(primary.C*0.12, neutralChromaMin, neutralChromaMax)
	out.Neutral = RoleColor{
		Color: oklab.LCH{L: targetL, C: neutralC, H: primary.H}.AsRGBA(),
	}
	out.Focus = RoleColor{
		Color: oklab.LCH{
			L: clamp(primary.L, focusLMin, focusLMax),
			C: primary.C,
			H: primary.H,
		}.AsRGBA(),
	}
	return out
}

// resolveHue picks the hue for one hue-anchored role: the best-scored
// palette hue inside the acceptance arc, or a blend of the nearest
// palette hue toward the canonical center when nothing falls inside.
func resolveHue(entries []oklab.LCH, a arc, targetL, targetC float32) float32 {
	if len(entries) == 0 {
		return a.center
	}

	best := -1
	bestScore := float32(-1)
	nearest := 0
	nearestDist := float32(361)
	for i, e := range entries {
		d := oklab.HueDist(e.H, a.center)
		if d < nearestDist {
			nearest = i
			nearestDist = d
		}
		if d > a.width {
			continue
		}
		s := scoreCandidate(e, a, d, targetL, targetC)
		if s > bestScore {
			best = i
			bestScore = s
		}
	}
	if best >= 0 {
		return entries[best].H
	}

	// nothing inside the arc: blend the nearest hue toward the
	// center, trusting it less the farther away it is
	w := blendCap * (1 - math32.Min(nearestDist, blendFullCanonical)/blendFullCanonical)
	return oklab.LerpHue(a.center, entries[nearest].H, w)
}

// scoreCandidate weighs how well an in-arc palette color fits a role:
// hue proximity to the arc center dominates, then lightness and
// chroma proximity to the shared targets.
func scoreCandidate(e oklab.LCH, a arc, hueDist, targetL, targetC float32) float32 {
	hueFit := 1 - hueDist/a.width
	lightFit := 1 - math32.Min(math32.Abs(e.L-targetL)/0.5, 1)
	chromaFit := 1 - math32.Min(math32.Abs(e.C-targetC)/0.2, 1)
	return weightHue*hueFit + weightLight*lightFit + weightChroma*chromaFit
}

// yellowLoudness returns the warning lightness penalty for the given
// hue: maximal at pure yellow, tapering linearly to zero.
func yellowLoudness(hue float32) float32 {
	d := oklab.HueDist(hue, yellowHue)
	if d >= yellowTaper {
		return 0
	}
	return yellowPenalty * (1 - d/yellowTaper)
}

// mostChromatic returns the palette's primary color, the entry with
// the highest chroma, reporting false for an empty palette.
func mostChromatic(entries []oklab.LCH) (oklab.LCH, bool) {
	if len(entries) == 0 {
		return oklab.LCH{}, false
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.C > best.C {
			best = e
		}
	}
	return best, true
}

func clamp(v, lo, hi float32) float32 {
	return math32.Min(math32.Max(v, lo), hi)
}
