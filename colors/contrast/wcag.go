// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contrast implements the WCAG 2 and APCA text contrast
// models, level classification for both, and a repair search that
// adjusts a failing foreground until it meets a target ratio.
package contrast

import (
	"image/color"

	"github.com/jwheeler0424/color-builder-sub002/colors/cam/cie"
)

// Level is a WCAG 2 conformance level for a contrast ratio.
type Level int32

const (
	// Fail does not meet any WCAG threshold.
	Fail Level = iota

	// AALarge meets the 3:1 threshold for large text only.
	AALarge

	// AA meets the standard 4.5:1 threshold.
	AA

	// AAA meets the enhanced 7:1 threshold.
	AAA
)

func (l Level) String() string {
	switch l {
	case AAA:
		return "AAA"
	case AA:
		return "AA"
	case AALarge:
		return "AA Large"
	default:
		return "Fail"
	}
}

// Ratio returns the WCAG 2 contrast ratio between the two colors,
// in [1, 21]. The ratio is symmetric: Ratio(a, b) == Ratio(b, a).
func Ratio(a, b color.Color) float32 {
	return RatioOfLums(cie.LuminanceOf(a), cie.LuminanceOf(b))
}

// RatioOfLums returns the WCAG 2 contrast ratio of two 0-1 relative
// luminance values.
func RatioOfLums(a, b float32) float32 {
	lighter := max(a, b)
	darker := min(a, b)
	return (lighter + 0.05) / (darker + 0.05)
}

// LevelOf classifies a WCAG contrast ratio:
// at least 7 is AAA, 4.5 is AA, 3 is AA Large, anything less fails.
func LevelOf(ratio float32) Level {
	switch {
	case ratio >= 7:
		return AAA
	case ratio >= 4.5:
		return AA
	case ratio >= 3:
		return AALarge
	default:
		return Fail
	}
}
