// seehuhn.de/go/osdfont - a library for editing OSD bitmap fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package swap replaces icon glyphs by glyphs from other fonts.
//
// A Target names a set of related glyph slots, for example all battery
// icons.  Glyphs for a target come from a Source, which is either a
// complete donor font in MCM format or a set of PNG image strips.
package swap

import (
	"seehuhn.de/go/osdfont"
)

// Target is a named set of glyph slots which are swapped together.
type Target struct {
	ID      string
	Label   string
	Indices []int
}

// Targets lists all known swap targets.
var Targets = []Target{
	{ID: "rssi", Label: "RSSI", Indices: []int{1}},
	{ID: "throttle", Label: "Throttle", Indices: []int{4}},
	{ID: "volts", Label: "Volts", Indices: []int{6}},
	{ID: "mah", Label: "mAh", Indices: []int{7}},
	{ID: "amp", Label: "A / Amp", Indices: []int{154}},
	{ID: "thermometer", Label: "Thermometer", Indices: []int{122}},
	{ID: "lq", Label: "LQ", Indices: []int{123}},
	{ID: "on_m", Label: "ON m", Indices: []int{155}},
	{ID: "fly_m", Label: "FLY m", Indices: []int{156}},
	{ID: "battery_set", Label: "Batteries", Indices: []int{144, 145, 146, 147, 148, 149, 150, 151}},
	{ID: "crosshair_set", Label: "Crosshairs", Indices: []int{114, 115, 116}},
}

// TargetByID returns the target with the given ID.
func TargetByID(id string) (Target, bool) {
	for _, t := range Targets {
		if t.ID == id {
			return t, true
		}
	}
	return Target{}, false
}

// Report describes the effect of Apply.
type Report struct {
	Applied bool
	Changed int // number of slots whose glyph differs from the current font
	Total   int // number of slots of the target
	Focus   int // first slot of the target, or -1
}

// Apply copies the donor glyphs for all slots of t into swaps.
//
// Changed counts the slots where the donor glyph differs from the glyph
// in current, which is normally the composited font before the swap.
// Donor slots without a glyph are skipped.  If donor is nil, nothing is
// applied.
func Apply(t Target, swaps map[int]osdfont.Glyph, donor, current *osdfont.Font) Report {
	if donor == nil {
		return Report{Focus: -1}
	}

	changed := 0
	for _, idx := range t.Indices {
		if idx < 0 || idx >= osdfont.NumGlyphs {
			continue
		}
		g := donor.Glyphs[idx]
		if g == nil {
			continue
		}
		var prev osdfont.Glyph
		if current != nil {
			prev = current.Glyphs[idx]
		}
		if prev == nil || osdfont.DiffCount(prev, g) != 0 {
			changed++
		}
		swaps[idx] = g.Clone()
	}

	focus := -1
	if len(t.Indices) > 0 {
		focus = t.Indices[0]
	}
	osdfont.Logger().Debug("swap: applied target",
		"target", t.ID, "changed", changed, "total", len(t.Indices))
	return Report{
		Applied: true,
		Changed: changed,
		Total:   len(t.Indices),
		Focus:   focus,
	}
}

// Clear removes the swap glyphs for all slots of t.
func Clear(t Target, swaps map[int]osdfont.Glyph) {
	for _, idx := range t.Indices {
		delete(swaps, idx)
	}
}
