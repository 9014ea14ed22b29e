// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palettefile

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwheeler0424/color-builder-sub002/colors/semantic"
)

func testDoc() *Document {
	return &Document{
		Name: "Ocean",
		Colors: []Entry{
			{Name: "Primary", Hex: "#3B82F6", Alpha: 100},
			{Name: "Accent", Hex: "#F59E0B", Alpha: 80},
		},
		Roles: map[string]RoleEntry{
			"error": {Hex: "#DC2626", Locked: true},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	for _, ext := range []string{".toml", ".yaml", ".yml", ".json"} {
		fn := filepath.Join(t.TempDir(), "palette"+ext)
		require.NoError(t, Save(testDoc(), fn), ext)

		got, err := Open(fn)
		require.NoError(t, err, ext)
		assert.Equal(t, testDoc(), got, ext)
	}
}

func TestUnsupportedExtension(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "palette.txt")
	assert.Error(t, Save(testDoc(), fn))
	_, err := Open(fn)
	assert.Error(t, err)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	doc := testDoc()
	assert.NoError(t, doc.Validate())

	doc.Colors[0].Hex = "#XYZXYZ"
	assert.Error(t, doc.Validate())

	doc = testDoc()
	doc.Roles["primary"] = RoleEntry{Hex: "#3B82F6"}
	assert.Error(t, doc.Validate())

	doc = testDoc()
	doc.Roles["focus"] = RoleEntry{Hex: "nope"}
	assert.Error(t, doc.Validate())
}

func TestOpenRejectsBadHex(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.json")
	doc := testDoc()
	doc.Colors[1].Hex = "#12345"
	require.NoError(t, Save(doc, fn)) // Save does not validate
	_, err := Open(fn)
	assert.Error(t, err)
}

func TestPalette(t *testing.T) {
	cs := testDoc().Palette()
	require.Len(t, cs, 2)
	assert.Equal(t, color.RGBA{0x3B, 0x82, 0xF6, 255}, cs[0])
	assert.Equal(t, color.RGBA{0xF5, 0x9E, 0x0B, 255}, cs[1])
}

func TestSemanticRoundTrip(t *testing.T) {
	doc := testDoc()
	set := doc.SemanticSet()
	assert.True(t, set.Error.Locked)
	assert.Equal(t, color.RGBA{0xDC, 0x26, 0x26, 255}, set.Error.Color)
	assert.False(t, set.Info.Locked)

	resolved := semantic.Merge(set, semantic.Generate(doc.Palette()))
	doc.SetSemantic(resolved)
	assert.Len(t, doc.Roles, int(semantic.NumRoles))
	assert.Equal(t, "#DC2626", doc.Roles["error"].Hex)
	assert.True(t, doc.Roles["error"].Locked)
}

func TestFromColors(t *testing.T) {
	d := FromColors("Mine", []color.Color{color.RGBA{255, 0, 0, 255}})
	assert.Equal(t, "Mine", d.Name)
	require.Len(t, d.Colors, 1)
	assert.Equal(t, "#FF0000", d.Colors[0].Hex)
	assert.Equal(t, "#FF0000", d.Colors[0].Name)
	assert.Equal(t, float32(100), d.Colors[0].Alpha)
}
