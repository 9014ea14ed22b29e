// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semantic

import "image/color"

// Role identifies one of the six fixed semantic color roles.
type Role int32

const (
	// Info is for informational states; canonically blue.
	Info Role = iota

	// Success is for positive states; canonically green.
	Success

	// Warning is for cautionary states; canonically yellow-orange.
	Warning

	// Error is for failure states; canonically red.
	Error

	// Neutral is the palette-tinted gray for surfaces and borders.
	Neutral

	// Focus is the focus-ring color, derived from the palette's
	// primary (most chromatic) color.
	Focus

	// NumRoles is the fixed number of semantic roles.
	NumRoles
)

func (r Role) String() string {
	switch r {
	case Info:
		return "info"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Neutral:
		return "neutral"
	case Focus:
		return "focus"
	default:
		return "invalid"
	}
}

// RoleFromString returns the role with the given name as produced by
// [Role.String], reporting whether the name was recognized.
func RoleFromString(name string) (Role, bool) {
	for r := Info; r < NumRoles; r++ {
		if r.String() == name {
			return r, true
		}
	}
	return Info, false
}

// arc is the acceptance window around a role's canonical hue: a
// palette color within width degrees of center "belongs" to the role.
type arc struct {
	center float32
	width  float32
}

// roleArcs holds the canonical hue centers and acceptance arc widths
// for the four hue-anchored roles. Neutral and Focus have no fixed
// hue; they track the palette's primary color.
var roleArcs = map[Role]arc{
	Info:    {center: 220, width: 60},
	Success: {center: 148, width: 50},
	Warning: {center: 75, width: 35},
	Error:   {center: 27, width: 35},
}

// RoleColor is one resolved semantic color plus its lock flag.
// A locked role is an immutable input: the resolver passes it through
// unchanged no matter what the source palette looks like.
type RoleColor struct {
	// Color is the resolved color for the role.
	Color color.RGBA

	// Locked prevents the resolver from replacing this role.
	Locked bool
}

// Set is the fixed-cardinality mapping from each role to its color.
type Set struct {
	Info    RoleColor
	Success RoleColor
	Warning RoleColor
	Error   RoleColor
	Neutral RoleColor
	Focus   RoleColor
}

// Get returns the entry for the given role.
func (s *Set) Get(r Role) RoleColor {
	switch r {
	case Info:
		return s.Info
	case Success:
		return s.Success
	case Warning:
		return s.Warning
	case Error:
		return s.Error
	case Neutral:
		return s.Neutral
	default:
		return s.Focus
	}
}

// Put replaces the entry for the given role.
func (s *Set) Put(r Role, rc RoleColor) {
	switch r {
	case Info:
		s.Info = rc
	case Success:
		s.Success = rc
	case Warning:
		s.Warning = rc
	case Error:
		s.Error = rc
	case Neutral:
		s.Neutral = rc
	case Focus:
		s.Focus = rc
	}
}

// Merge combines an existing set with a freshly generated one:
// each locked role keeps its existing entry (lock included), and each
// unlocked role takes the generated entry.
func Merge(existing, generated Set) Set {
	out := generated
	for r := Info; r < NumRoles; r++ {
		if ex := existing.Get(r); ex.Locked {
			out.Put(r, ex)
		}
	}
	return out
}
