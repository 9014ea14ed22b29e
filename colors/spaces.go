// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// HSL is a color in the cylindrical hue, saturation, lightness space.
// H is in degrees in [0, 360); S and L are percentages in [0, 100].
type HSL struct {
	H float32
	S float32
	L float32
}

// HSV is a color in the cylindrical hue, saturation, value space.
// H is in degrees in [0, 360); S and V are percentages in [0, 100].
type HSV struct {
	H float32
	S float32
	V float32
}

// CMYK is a color in the subtractive cyan, magenta, yellow, key
// space, with all four components as percentages in [0, 100].
// Pure black is represented with K=100 and C=M=Y=0.
type CMYK struct {
	C float32
	M float32
	Y float32
	K float32
}

// RGBToHSL converts the given color to HSL, ignoring alpha.
func RGBToHSL(c color.Color) HSL {
	r, g, b := rgbComps(c)
	mx := math32.Max(r, math32.Max(g, b))
	mn := math32.Min(r, math32.Min(g, b))
	l := (mx + mn) / 2
	if mx == mn {
		return HSL{H: 0, S: 0, L: l * 100}
	}
	d := mx - mn
	var s float32
	if l > 0.5 {
		s = d / (2 - mx - mn)
	} else {
		s = d / (mx + mn)
	}
	return HSL{H: hueOf(r, g, b, mx, d), S: s * 100, L: l * 100}
}

// AsRGBA converts HSL to a standard opaque [color.RGBA], with the
// components clamped to their documented ranges first.
func (h HSL) AsRGBA() color.RGBA {
	hh := normDeg(h.H)
	s := clampPct(h.S) / 100
	l := clampPct(h.L) / 100
	if s == 0 {
		v := uint8(math32.Round(l * 255))
		return color.RGBA{v, v, v, 255}
	}
	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	r := hueToRGB(p, q, hh+120)
	g := hueToRGB(p, q, hh)
	b := hueToRGB(p, q, hh-120)
	return color.RGBA{
		uint8(math32.Round(r * 255)),
		uint8(math32.Round(g * 255)),
		uint8(math32.Round(b * 255)),
		255,
	}
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", h.H, h.S, h.L)
}

// RGBToHSV converts the given color to HSV, ignoring alpha.
func RGBToHSV(c color.Color) HSV {
	r, g, b := rgbComps(c)
	mx := math32.Max(r, math32.Max(g, b))
	mn := math32.Min(r, math32.Min(g, b))
	d := mx - mn
	var s float32
	if mx > 0 {
		s = d / mx
	}
	if d == 0 {
		return HSV{H: 0, S: 0, V: mx * 100}
	}
	return HSV{H: hueOf(r, g, b, mx, d), S: s * 100, V: mx * 100}
}

// AsRGBA converts HSV to a standard opaque [color.RGBA], with the
// components clamped to their documented ranges first.
func (h HSV) AsRGBA() color.RGBA {
	hh := normDeg(h.H) / 60
	s := clampPct(h.S) / 100
	v := clampPct(h.V) / 100
	i := math32.Floor(hh)
	f := hh - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	var r, g, b float32
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.RGBA{
		uint8(math32.Round(r * 255)),
		uint8(math32.Round(g * 255)),
		uint8(math32.Round(b * 255)),
		255,
	}
}

func (h HSV) String() string {
	return fmt.Sprintf("hsv(%g, %g%%, %g%%)", h.H, h.S, h.V)
}

// RGBToCMYK converts the given color to CMYK, ignoring alpha.
// Pure black takes the K=100 shortcut with zero C, M, and Y.
func RGBToCMYK(c color.Color) CMYK {
	r, g, b := rgbComps(c)
	k := 1 - math32.Max(r, math32.Max(g, b))
	if k >= 1 {
		return CMYK{K: 100}
	}
	return CMYK{
		C: (1 - r - k) / (1 - k) * 100,
		M: (1 - g - k) / (1 - k) * 100,
		Y: (1 - b - k) / (1 - k) * 100,
		K: k * 100,
	}
}

// AsRGBA converts CMYK to a standard opaque [color.RGBA], with the
// components clamped to their documented ranges first.
func (cm CMYK) AsRGBA() color.RGBA {
	c := clampPct(cm.C) / 100
	m := clampPct(cm.M) / 100
	y := clampPct(cm.Y) / 100
	k := clampPct(cm.K) / 100
	return color.RGBA{
		uint8(math32.Round((1 - c) * (1 - k) * 255)),
		uint8(math32.Round((1 - m) * (1 - k) * 255)),
		uint8(math32.Round((1 - y) * (1 - k) * 255)),
		255,
	}
}

func (cm CMYK) String() string {
	return fmt.Sprintf("cmyk(%g%%, %g%%, %g%%, %g%%)", cm.C, cm.M, cm.Y, cm.K)
}

// rgbComps returns the 0-1 normalized non-premultiplied components.
func rgbComps(c color.Color) (r, g, b float32) {
	rgb := AsRGBA(c)
	return float32(rgb.R) / 255, float32(rgb.G) / 255, float32(rgb.B) / 255
}

// hueOf computes the shared HSL/HSV hue in degrees from components,
// their max, and the max-min delta (which must be nonzero).
func hueOf(r, g, b, mx, d float32) float32 {
	var h float32
	switch mx {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return normDeg(h * 60)
}

// hueToRGB is the HSL helper; hue is in degrees here rather than the
// usual 0-1 turns so that no precision is lost renormalizing.
func hueToRGB(p, q, hue float32) float32 {
	hue = normDeg(hue)
	switch {
	case hue < 60:
		return p + (q-p)*hue/60
	case hue < 180:
		return q
	case hue < 240:
		return p + (q-p)*(240-hue)/60
	default:
		return p
	}
}

func normDeg(h float32) float32 {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampPct(v float32) float32 {
	return math32.Min(math32.Max(v, 0), 100)
}
