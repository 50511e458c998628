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

package composite

import (
	"image"
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/osdfont"
)

// MaxNudge is the largest offset, in pixels, which a nudge can have in
// either direction.
const MaxNudge = 6

// Clamp limits a nudge component to [-MaxNudge, MaxNudge].
func Clamp(v int) int {
	return max(-MaxNudge, min(MaxNudge, v))
}

// ClampPoint limits both components of a nudge offset.
func ClampPoint(p image.Point) image.Point {
	return image.Pt(Clamp(p.X), Clamp(p.Y))
}

// Nudge holds the pixel offsets applied during compositing.
type Nudge struct {
	// Replaced moves all glyphs which were replaced by the overlay font.
	Replaced image.Point

	// PerGlyph moves individual glyphs, whatever their origin.
	PerGlyph map[int]image.Point
}

// MoveReplaced adds (dx, dy) to the global offset and returns the new,
// clamped offset.
func (n *Nudge) MoveReplaced(dx, dy int) image.Point {
	n.Replaced = ClampPoint(n.Replaced.Add(image.Pt(dx, dy)))
	return n.Replaced
}

// MoveGlyphs adds (dx, dy) to the offsets of the given glyphs.
// Offsets which become zero are removed from the map.
func (n *Nudge) MoveGlyphs(dx, dy int, indices ...int) {
	for _, idx := range indices {
		if idx < 0 || idx >= osdfont.NumGlyphs {
			continue
		}
		p := ClampPoint(n.PerGlyph[idx].Add(image.Pt(dx, dy)))
		if p == (image.Point{}) {
			delete(n.PerGlyph, idx)
			continue
		}
		if n.PerGlyph == nil {
			n.PerGlyph = make(map[int]image.Point)
		}
		n.PerGlyph[idx] = p
	}
}

// ResetGlyphs removes the per-glyph offsets of the given glyphs.
// Without arguments, all per-glyph offsets are removed.
func (n *Nudge) ResetGlyphs(indices ...int) {
	if len(indices) == 0 {
		n.PerGlyph = nil
		return
	}
	for _, idx := range indices {
		delete(n.PerGlyph, idx)
	}
}

// Clone returns an independent copy of n.
func (n Nudge) Clone() Nudge {
	res := Nudge{Replaced: n.Replaced}
	if len(n.PerGlyph) > 0 {
		res.PerGlyph = maps.Clone(n.PerGlyph)
	}
	return res
}

// glyphOrder returns the keys of the per-glyph map in increasing order.
func (n Nudge) glyphOrder() []int {
	keys := maps.Keys(n.PerGlyph)
	slices.Sort(keys)
	return keys
}
