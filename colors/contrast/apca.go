// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/jwheeler0424/color-builder-sub002/colors/cam/cie"
)

// APCA luminance and scaling constants. APCA uses its own screen
// luminance estimate with a plain 2.4 exponent per channel, not the
// WCAG piecewise linearization, and asymmetric exponents per polarity.
const (
	apcaExp = 2.4

	// dark text on light background
	apcaNtxt = 0.57
	apcaNbg  = 0.56

	// light text on dark background
	apcaRtxt = 0.62
	apcaRbg  = 0.65

	apcaScale     = 1.14
	apcaOffset    = 0.027
	apcaClampZero = 0.1
)

// APCALevel is a discrete legibility class for an APCA Lc magnitude.
type APCALevel int32

const (
	// APCAFail is below every APCA use threshold.
	APCAFail APCALevel = iota

	// APCAUI (Lc 30) suffices for large UI elements only.
	APCAUI

	// APCALarge (Lc 45) suffices for large text.
	APCALarge

	// APCABody (Lc 60) suffices for body text.
	APCABody

	// APCAPreferred (Lc 75) is the preferred body text contrast.
	APCAPreferred
)

func (l APCALevel) String() string {
	switch l {
	case APCAPreferred:
		return "Preferred"
	case APCABody:
		return "Body"
	case APCALarge:
		return "Large"
	case APCAUI:
		return "UI"
	default:
		return "Fail"
	}
}

// APCA returns the APCA perceptual lightness contrast (Lc) of the
// given text color on the given background. Unlike the WCAG ratio it
// is directional and signed: positive values mean dark text on a
// light background, negative values light text on a dark background.
// Typical magnitudes run from 0 to about 106.
func APCA(text, bg color.Color) float32 {
	ytxt := apcaY(text)
	ybg := apcaY(bg)
	if ybg >= ytxt { // dark text on light background
		sapc := (math32.Pow(ybg, apcaNbg) - math32.Pow(ytxt, apcaNtxt)) * apcaScale
		if sapc < apcaClampZero {
			return 0
		}
		return (sapc - apcaOffset) * 100
	}
	// light text on dark background
	sapc := (math32.Pow(ybg, apcaRbg) - math32.Pow(ytxt, apcaRtxt)) * apcaScale
	if sapc > -apcaClampZero {
		return 0
	}
	return (sapc + apcaOffset) * 100
}

// APCALevelOf classifies an APCA Lc value by magnitude:
// at least 75 is Preferred, 60 Body, 45 Large, 30 UI, less fails.
func APCALevelOf(lc float32) APCALevel {
	switch a := math32.Abs(lc); {
	case a >= 75:
		return APCAPreferred
	case a >= 60:
		return APCABody
	case a >= 45:
		return APCALarge
	case a >= 30:
		return APCAUI
	default:
		return APCAFail
	}
}

// apcaY is the APCA screen luminance estimate.
func apcaY(c color.Color) float32 {
	r, g, b := cie.RGBToFloat(c)
	return 0.2126729*math32.Pow(r, apcaExp) +
		0.7151522*math32.Pow(g, apcaExp) +
		0.0721750*math32.Pow(b, apcaExp)
}
