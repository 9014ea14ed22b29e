// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides parsing, formatting, and conversion among
// the integer color representations (hex, RGB, HSL, HSV, CMYK) that
// the rest of the engine treats as ground truth. The perceptual
// spaces live in [colors/cam/oklab].
package colors

import (
	"fmt"
	"image/color"
)

// AsRGBA returns the given color as an RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// IsNil returns whether the color is the nil initial default color.
func IsNil(c color.Color) bool {
	return AsRGBA(c) == color.RGBA{}
}

// AsString returns the given color as a string, using its String
// method if it exists, and formatting it as its hex form otherwise.
func AsString(c color.Color) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return AsHex(c)
}
