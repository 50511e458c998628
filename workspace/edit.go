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

package workspace

import (
	"fmt"
	"image"

	"seehuhn.de/go/osdfont"
	"seehuhn.de/go/osdfont/composite"
	"seehuhn.de/go/osdfont/swap"
)

// ApplySwapTarget replaces the glyphs of a swap target by the glyphs of
// a swap source.  If the source cannot be loaded, the workspace is left
// unchanged.
func (w *Workspace) ApplySwapTarget(targetID, sourceID string) (swap.Report, error) {
	target, ok := swap.TargetByID(targetID)
	if !ok {
		return swap.Report{Focus: -1}, fmt.Errorf("%w %q", swap.ErrUnknownTarget, targetID)
	}
	if w.fsys == nil {
		return swap.Report{Focus: -1}, fmt.Errorf("workspace: no swap source files")
	}
	donor, err := w.registry.Load(w.fsys, w.donors, sourceID, targetID)
	if err != nil {
		return swap.Report{Focus: -1}, err
	}

	if w.layers.Swaps == nil {
		w.layers.Swaps = make(map[int]osdfont.Glyph)
	}
	rep := swap.Apply(target, w.layers.Swaps, donor, w.result)
	w.changed(LayersChanged)
	return rep, nil
}

// ClearSwapTarget removes the swapped glyphs of a target.
func (w *Workspace) ClearSwapTarget(targetID string) error {
	target, ok := swap.TargetByID(targetID)
	if !ok {
		return fmt.Errorf("%w %q", swap.ErrUnknownTarget, targetID)
	}
	swap.Clear(target, w.layers.Swaps)
	w.changed(LayersChanged)
	return nil
}

// ClearAllSwaps removes all swapped glyphs.
func (w *Workspace) ClearAllSwaps() {
	w.layers.Swaps = nil
	w.changed(LayersChanged)
}

// NudgeReplaced moves all glyphs replaced by the overlay font and returns
// the new global offset.  Offsets are limited to composite.MaxNudge.
func (w *Workspace) NudgeReplaced(dx, dy int) image.Point {
	p := w.layers.Nudge.MoveReplaced(dx, dy)
	w.changed(LayersChanged)
	return p
}

// ResetReplacedNudge sets the global offset back to zero.
func (w *Workspace) ResetReplacedNudge() {
	w.layers.Nudge.Replaced = image.Point{}
	w.changed(LayersChanged)
}

// NudgeGlyphs moves individual glyphs.
func (w *Workspace) NudgeGlyphs(dx, dy int, indices ...int) {
	w.layers.Nudge.MoveGlyphs(dx, dy, indices...)
	w.changed(LayersChanged)
}

// ClearGlyphNudges removes the offsets of individual glyphs.
// Without arguments, all per-glyph offsets are removed.
func (w *Workspace) ClearGlyphNudges(indices ...int) {
	w.layers.Nudge.ResetGlyphs(indices...)
	w.changed(LayersChanged)
}

// SetPixel changes one pixel of a glyph.  The coordinates refer to the
// glyph as shown in the result font, including all nudges.
//
// The edit is recorded before the nudges are applied, so the edited glyph
// keeps following later nudge changes.  The return value reports whether
// the pixel maps to a location inside the un-nudged glyph; if not, the
// edit is ignored.
//
// For glyphs replaced by the overlay font, the recorded glyph is rendered
// without the global offset.  Overlay ink which only enters the cell
// because of that offset is lost by the first edit.
func (w *Workspace) SetPixel(idx, x, y int, p osdfont.Pixel) (bool, error) {
	if w.base == nil {
		return false, ErrNoBase
	}
	if idx < 0 || idx >= osdfont.NumGlyphs {
		return false, fmt.Errorf("workspace: invalid glyph index %d", idx)
	}
	if !p.IsValid() {
		return false, fmt.Errorf("workspace: invalid pixel value %d", p)
	}

	d := composite.ClampPoint(w.layers.Nudge.PerGlyph[idx])
	if w.replaced.Has(idx) {
		d = d.Add(composite.ClampPoint(w.layers.Nudge.Replaced))
	}
	ux, uy := x-d.X, y-d.Y
	width, height := w.base.Width, w.base.Height
	if ux < 0 || ux >= width || uy < 0 || uy >= height {
		return false, nil
	}

	g := w.unnudged(idx)
	g[uy*width+ux] = p
	w.setEdit(idx, g)
	return true, nil
}

// Edit replaces a glyph by g.  The glyph is given without nudges.
func (w *Workspace) Edit(idx int, g osdfont.Glyph) error {
	if w.base == nil {
		return ErrNoBase
	}
	if idx < 0 || idx >= osdfont.NumGlyphs {
		return fmt.Errorf("workspace: invalid glyph index %d", idx)
	}
	if len(g) != w.base.Width*w.base.Height {
		return &osdfont.ValidationError{
			Op:     "workspace.Edit",
			Reason: fmt.Sprintf("glyph has %d pixels, expected %d", len(g), w.base.Width*w.base.Height),
		}
	}
	w.setEdit(idx, g.Clone())
	return nil
}

// RevertEdits removes the direct edits of the given glyphs.
// Without arguments, all edits are removed.
func (w *Workspace) RevertEdits(indices ...int) {
	if len(indices) == 0 {
		w.layers.Edits = nil
	}
	for _, idx := range indices {
		delete(w.layers.Edits, idx)
	}
	w.changed(LayersChanged)
}

func (w *Workspace) setEdit(idx int, g osdfont.Glyph) {
	if w.layers.Edits == nil {
		w.layers.Edits = make(map[int]osdfont.Glyph)
	}
	w.layers.Edits[idx] = g
	w.changed(LayersChanged)
}

// unnudged returns a copy of glyph idx as composited without any nudges.
func (w *Workspace) unnudged(idx int) osdfont.Glyph {
	if g, ok := w.layers.Edits[idx]; ok {
		return g.Clone()
	}
	layers := w.layers
	layers.Nudge = composite.Nudge{}
	res, _ := composite.Rebuild(w.base, &layers, w.Replaceable)
	return res.Glyphs[idx]
}
