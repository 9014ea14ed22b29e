// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// FromHex parses the given hex color string and returns the
// corresponding color. It accepts 3-digit (#RGB), 6-digit (#RRGGBB),
// and 8-digit (#RRGGBBAA) forms, with or without the leading #.
// Any other length or any non-hex character is an error; callers
// should treat an error as "no change" rather than a black result.
func FromHex(hex string) (color.RGBA, error) {
	x := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	var r, g, b uint8
	a := uint8(255)
	switch len(x) {
	case 3:
		u, err := strconv.ParseUint(x, 16, 16)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: invalid hex color %q: %w", hex, err)
		}
		r = uint8(u >> 8 & 0xF)
		g = uint8(u >> 4 & 0xF)
		b = uint8(u & 0xF)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6, 8:
		u, err := strconv.ParseUint(x, 16, 64)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: invalid hex color %q: %w", hex, err)
		}
		if len(x) == 8 {
			a = uint8(u & 0xFF)
			u >>= 8
		}
		r = uint8(u >> 16 & 0xFF)
		g = uint8(u >> 8 & 0xFF)
		b = uint8(u & 0xFF)
	default:
		return color.RGBA{}, fmt.Errorf("colors.FromHex: hex color %q must have 3, 6, or 8 digits", hex)
	}
	return color.RGBA{r, g, b, a}, nil
}

// AsHex returns the canonical 6-digit uppercase hex form (#RRGGBB)
// of the given color. Alpha is never baked into the hex string;
// it travels separately (see [Slot.Alpha]).
func AsHex(c color.Color) string {
	rgb := AsRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// FromString returns a color value from the given string, which can
// be a hex form accepted by [FromHex], an rgb(r, g, b) or
// hsl(h, s, l) functional form, or a CSS standard color name.
func FromString(str string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(str))
	switch {
	case s == "":
		return color.RGBA{}, fmt.Errorf("colors.FromString: empty color string")
	case s[0] == '#':
		return FromHex(s)
	case strings.HasPrefix(s, "rgb("):
		var r, g, b int
		if _, err := fmt.Sscanf(s, "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: invalid rgb form %q: %w", str, err)
		}
		return color.RGBA{clamp255(r), clamp255(g), clamp255(b), 255}, nil
	case strings.HasPrefix(s, "hsl("):
		var h, sat, l int
		if _, err := fmt.Sscanf(s, "hsl(%d,%d,%d)", &h, &sat, &l); err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: invalid hsl form %q: %w", str, err)
		}
		return HSL{H: float32(h), S: float32(sat), L: float32(l)}.AsRGBA(), nil
	default:
		if c, ok := colornames.Map[s]; ok {
			return c, nil
		}
		// bare hex without a #
		if c, err := FromHex(s); err == nil {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("colors.FromString: unknown color %q", str)
	}
}

// clamp255 clamps an integer channel value to the uint8 range rather
// than letting the conversion wrap.
func clamp255(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
