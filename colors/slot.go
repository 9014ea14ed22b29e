// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

// Slot is one palette entry as handed to the engine by the UI and
// persistence layers. The canonical hex string is the single source
// of truth: the RGB and HSL fields are display caches that can go
// stale, so engine code never reads them and always re-derives via
// [Slot.Color]. Alpha is a separate 0-100 percentage and is never
// baked into the hex form.
type Slot struct {
	// Hex is the canonical 6-digit hex form of the color.
	Hex string

	// Alpha is the opacity percentage in 0-100.
	Alpha float32

	// RGB is a cached derived value for display use only.
	RGB color.RGBA

	// HSL is a cached derived value for display use only.
	HSL HSL
}

// NewSlot returns a slot for the given color with fresh derived
// values and full opacity.
func NewSlot(c color.Color) Slot {
	rgb := AsRGBA(c)
	return Slot{
		Hex:   AsHex(rgb),
		Alpha: 100,
		RGB:   rgb,
		HSL:   RGBToHSL(rgb),
	}
}

// Color re-derives the color from the canonical hex field. The cached
// RGB and HSL values are deliberately ignored.
func (s Slot) Color() (color.RGBA, error) {
	return FromHex(s.Hex)
}

// Refresh re-derives the cached RGB and HSL values from the canonical
// hex field, reporting an error for an unparsable hex, in which case
// the slot is unchanged.
func (s *Slot) Refresh() error {
	c, err := s.Color()
	if err != nil {
		return err
	}
	s.RGB = c
	s.HSL = RGBToHSL(c)
	return nil
}

// SlotColors re-derives the colors for the given slots from their
// canonical hex fields, skipping any slot whose hex fails to parse.
func SlotColors(slots []Slot) []color.Color {
	cs := make([]color.Color, 0, len(slots))
	for _, s := range slots {
		c, err := s.Color()
		if err != nil {
			continue
		}
		cs = append(cs, c)
	}
	return cs
}
