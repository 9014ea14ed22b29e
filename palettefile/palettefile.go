// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palettefile reads and writes palette documents, the plain
// hex-string persistence format the engine's callers exchange.
// The format is chosen by file extension: .toml, .yaml/.yml, or
// .json. All color values are canonical hex strings; everything
// derived is recomputed on load, never stored.
package palettefile

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jwheeler0424/color-builder-sub002/colors"
	"github.com/jwheeler0424/color-builder-sub002/colors/semantic"
)

// Entry is one named palette color.
type Entry struct {
	// Name is the user-facing label for the color.
	Name string `toml:"name" yaml:"name" json:"name"`

	// Hex is the canonical hex form, the single source of truth.
	Hex string `toml:"hex" yaml:"hex" json:"hex"`

	// Alpha is the opacity percentage in 0-100; 0 means unset and is
	// treated as fully opaque.
	Alpha float32 `toml:"alpha,omitempty" yaml:"alpha,omitempty" json:"alpha,omitempty"`
}

// RoleEntry is one persisted semantic role color.
type RoleEntry struct {
	// Hex is the canonical hex form of the role color.
	Hex string `toml:"hex" yaml:"hex" json:"hex"`

	// Locked marks the role as user-pinned; the resolver must keep it.
	Locked bool `toml:"locked,omitempty" yaml:"locked,omitempty" json:"locked,omitempty"`
}

// Document is a complete saved palette.
type Document struct {
	// Name is the palette's display name.
	Name string `toml:"name" yaml:"name" json:"name"`

	// Colors are the palette entries in display order.
	Colors []Entry `toml:"colors" yaml:"colors" json:"colors"`

	// Roles holds persisted semantic role colors, keyed by role name
	// (info, success, warning, error, neutral, focus).
	Roles map[string]RoleEntry `toml:"roles,omitempty" yaml:"roles,omitempty" json:"roles,omitempty"`
}

// Open reads a palette document from the given file, choosing the
// codec by extension, and validates every hex value.
func Open(filename string) (*Document, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("palettefile.Open: %w", err)
	}
	doc := &Document{}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(b, doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, doc)
	case ".json":
		err = json.Unmarshal(b, doc)
	default:
		return nil, fmt.Errorf("palettefile.Open: unsupported extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("palettefile.Open: %s: %w", filename, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("palettefile.Open: %s: %w", filename, err)
	}
	return doc, nil
}

// Save writes the document to the given file, choosing the codec by
// extension.
func Save(doc *Document, filename string) error {
	var b []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		b, err = toml.Marshal(doc)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(doc)
	case ".json":
		b, err = json.MarshalIndent(doc, "", "\t")
	default:
		return fmt.Errorf("palettefile.Save: unsupported extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("palettefile.Save: %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, b, 0666); err != nil {
		return fmt.Errorf("palettefile.Save: %w", err)
	}
	return nil
}

// Validate checks that every hex value in the document parses and
// that every role name is a known semantic role.
func (d *Document) Validate() error {
	for _, e := range d.Colors {
		if _, err := colors.FromHex(e.Hex); err != nil {
			return fmt.Errorf("color %q: %w", e.Name, err)
		}
	}
	for name, r := range d.Roles {
		if _, ok := semantic.RoleFromString(name); !ok {
			return fmt.Errorf("unknown role %q", name)
		}
		if _, err := colors.FromHex(r.Hex); err != nil {
			return fmt.Errorf("role %q: %w", name, err)
		}
	}
	return nil
}

// Palette re-derives the document's colors from their canonical hex
// fields, in order.
func (d *Document) Palette() []color.Color {
	cs := make([]color.Color, 0, len(d.Colors))
	for _, e := range d.Colors {
		c, err := colors.FromHex(e.Hex)
		if err != nil {
			continue
		}
		cs = append(cs, c)
	}
	return cs
}

// SemanticSet converts the document's persisted roles to a
// [semantic.Set]; missing roles are left zero for the resolver to
// fill in.
func (d *Document) SemanticSet() semantic.Set {
	var s semantic.Set
	for name, re := range d.Roles {
		role, ok := semantic.RoleFromString(name)
		if !ok {
			continue
		}
		c, err := colors.FromHex(re.Hex)
		if err != nil {
			continue
		}
		s.Put(role, semantic.RoleColor{Color: c, Locked: re.Locked})
	}
	return s
}

// SetSemantic stores the given semantic set into the document's
// role map, replacing any previous entries.
func (d *Document) SetSemantic(s semantic.Set) {
	d.Roles = map[string]RoleEntry{}
	for r := semantic.Info; r < semantic.NumRoles; r++ {
		rc := s.Get(r)
		d.Roles[r.String()] = RoleEntry{
			Hex:    colors.AsHex(rc.Color),
			Locked: rc.Locked,
		}
	}
}

// FromColors builds a document from plain colors, naming entries
// by their hex form.
func FromColors(name string, cs []color.Color) *Document {
	d := &Document{Name: name, Colors: make([]Entry, 0, len(cs))}
	for _, c := range cs {
		hex := colors.AsHex(c)
		d.Colors = append(d.Colors, Entry{Name: hex, Hex: hex, Alpha: 100})
	}
	return d
}
