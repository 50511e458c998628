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

// Package composite combines a base font with editing layers.
//
// The layers are applied in a fixed order: the overlay font replaces the
// replaceable text glyphs, swap glyphs and direct edits replace whole
// glyphs, and finally the nudge offsets move glyphs around inside their
// cells.  Compositing is a pure function of its inputs and is safe for
// concurrent use with distinct layer values.
package composite

import (
	"image"
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/osdfont"
	"seehuhn.de/go/osdfont/overlay"
	"seehuhn.de/go/osdfont/raster"
)

// Layers holds everything which is drawn on top of a base font.
type Layers struct {
	// Overlay restyles the replaceable text glyphs.  May be nil.
	Overlay *overlay.Font

	// Stroke selects the outline connectivity of rendered overlay glyphs.
	// The zero value means raster.Four.
	Stroke raster.Connectivity

	// Swaps maps glyph indices to glyphs taken from other fonts.
	// Swap glyphs are copied verbatim and never get an outline.
	Swaps map[int]osdfont.Glyph

	// Edits maps glyph indices to directly edited glyphs.  Edits take
	// precedence over swaps.  For glyphs replaced by the overlay font the
	// edited glyph is stored without the global nudge.
	Edits map[int]osdfont.Glyph

	Nudge Nudge
}

// Clone returns a copy of l which shares no mutable state with l.
// The overlay font is shared, since it is never modified.
func (l *Layers) Clone() *Layers {
	res := &Layers{
		Overlay: l.Overlay,
		Stroke:  l.Stroke,
		Swaps:   cloneGlyphs(l.Swaps),
		Edits:   cloneGlyphs(l.Edits),
		Nudge:   l.Nudge.Clone(),
	}
	return res
}

func cloneGlyphs(m map[int]osdfont.Glyph) map[int]osdfont.Glyph {
	if m == nil {
		return nil
	}
	res := make(map[int]osdfont.Glyph, len(m))
	for idx, g := range m {
		res[idx] = g.Clone()
	}
	return res
}

// IndexSet is a set of glyph indices.
type IndexSet [osdfont.NumGlyphs]bool

// Has reports whether idx is in the set.
func (s IndexSet) Has(idx int) bool {
	return idx >= 0 && idx < osdfont.NumGlyphs && s[idx]
}

// Len returns the number of elements.
func (s IndexSet) Len() int {
	n := 0
	for _, ok := range s {
		if ok {
			n++
		}
	}
	return n
}

// Indices returns the elements in increasing order.
func (s IndexSet) Indices() []int {
	var res []int
	for idx, ok := range s {
		if ok {
			res = append(res, idx)
		}
	}
	return res
}

// ReplacedSet returns the indices which the overlay font replaces.
//
// An index is replaced if it is replaceable and the overlay has a glyph
// with ink for the corresponding code point.  The space glyph is also
// replaced if the overlay glyph is blank.  If replaceable is nil,
// osdfont.IsReplaceable is used.
func ReplacedSet(ov *overlay.Font, replaceable func(int) bool) IndexSet {
	var res IndexSet
	if ov == nil {
		return res
	}
	if replaceable == nil {
		replaceable = osdfont.IsReplaceable
	}
	for idx := range res {
		if !replaceable(idx) {
			continue
		}
		g := ov.Lookup(rune(idx))
		if g == nil {
			continue
		}
		res[idx] = idx == osdfont.SpaceIndex || g.HasInk()
	}
	return res
}

// Rebuild composes the base font with the given layers.
//
// The base font is not modified, and the result shares no glyph data with
// base or layers.  The second return value lists the indices which were
// replaced by the overlay font.  If replaceable is nil,
// osdfont.IsReplaceable is used.  Base must not be nil.
//
// Swap and edit glyphs of the wrong size, and indices outside the font,
// are ignored.  Nudge offsets are clamped to [-MaxNudge, MaxNudge].
func Rebuild(base *osdfont.Font, layers *Layers, replaceable func(int) bool) (*osdfont.Font, IndexSet) {
	res := base.Clone()
	if layers == nil {
		return res, IndexSet{}
	}
	w, h := res.Width, res.Height
	global := ClampPoint(layers.Nudge.Replaced)

	replaced := applyOverlay(res, layers.Overlay, layers.Stroke, global, replaceable)

	applyGlyphs(res, layers.Swaps, "swap")
	applyGlyphs(res, layers.Edits, "edit")

	if global != (image.Point{}) {
		for idx := range layers.Edits {
			if !replaced.Has(idx) || len(layers.Edits[idx]) != w*h {
				continue
			}
			res.Glyphs[idx] = raster.Shift(res.Glyphs[idx], w, h, global.X, global.Y)
		}
	}

	for _, idx := range layers.Nudge.glyphOrder() {
		if idx < 0 || idx >= osdfont.NumGlyphs {
			continue
		}
		d := ClampPoint(layers.Nudge.PerGlyph[idx])
		res.Glyphs[idx] = raster.Shift(res.Glyphs[idx], w, h, d.X, d.Y)
	}

	osdfont.Logger().Debug("composite: rebuilt font",
		"replaced", replaced.Len(),
		"swaps", len(layers.Swaps),
		"edits", len(layers.Edits),
		"nudged", len(layers.Nudge.PerGlyph))
	return res, replaced
}

// applyOverlay renders the overlay glyphs into res and returns the set of
// indices it replaced.
func applyOverlay(res *osdfont.Font, ov *overlay.Font, stroke raster.Connectivity,
	nudge image.Point, replaceable func(int) bool) IndexSet {
	replaced := ReplacedSet(ov, replaceable)
	w, h := res.Width, res.Height
	for _, idx := range replaced.Indices() {
		cell := ov.Lookup(rune(idx)).Render(w, h, nudge)
		res.Glyphs[idx] = raster.ApplyStroke(cell, w, h, stroke)
	}
	return replaced
}

// applyGlyphs copies whole glyphs into res, in index order.
func applyGlyphs(res *osdfont.Font, glyphs map[int]osdfont.Glyph, layer string) {
	n := res.Width * res.Height
	keys := maps.Keys(glyphs)
	slices.Sort(keys)
	for _, idx := range keys {
		g := glyphs[idx]
		if idx < 0 || idx >= osdfont.NumGlyphs {
			continue
		}
		if len(g) != n {
			osdfont.Logger().Warn("composite: ignoring glyph of wrong size",
				"layer", layer, "index", idx, "pixels", len(g), "want", n)
			continue
		}
		res.Glyphs[idx] = g.Clone()
	}
}
