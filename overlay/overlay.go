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

// Package overlay implements sparse bitmap fonts indexed by Unicode code
// point, used to restyle the text glyphs of an OSD font.
//
// Overlay fonts are stored as JSON:
//
//	{"cell": [12, 18], "glyphs": {"U+0041": {"size": [w, h], "offset": [x, y], "rows": [...]}}}
//
// where rows[y] has bit w-1-x set if pixel (x, y) carries ink.
package overlay

import (
	"encoding/json"
	"fmt"
	"image"
	"io"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/osdfont"
	"seehuhn.de/go/osdfont/raster"
)

// Glyph is a sparse bitmap glyph.
type Glyph struct {
	Size   [2]int   `json:"size"`   // width and height; the width is at most 32
	Offset [2]int   `json:"offset"` // position of the top-left corner inside the cell
	Rows   []uint32 `json:"rows"`   // one bit mask per row, MSB-left
}

// HasInk reports whether at least one pixel of the glyph is set.
func (g *Glyph) HasInk() bool {
	w, h := g.Size[0], min(g.Size[1], len(g.Rows))
	if w <= 0 {
		return false
	}
	mask := ^uint32(0)
	if w < 32 {
		mask = 1<<w - 1
	}
	for _, row := range g.Rows[:max(h, 0)] {
		if row&mask != 0 {
			return true
		}
	}
	return false
}

// Render draws the glyph into a blank cell, moved by nudge.
// The result contains only White and Background pixels.
func (g *Glyph) Render(cellW, cellH int, nudge image.Point) osdfont.Glyph {
	size := image.Pt(g.Size[0], g.Size[1])
	offset := image.Pt(g.Offset[0], g.Offset[1]).Add(nudge)
	return raster.RenderBitmap(g.Rows, size, offset, cellW, cellH)
}

// Font maps code point keys (see Key) to glyphs.
// Fonts are not modified once they have been loaded.
type Font struct {
	Name   string            `json:"name,omitempty"`
	Cell   [2]int            `json:"cell,omitempty"`
	Glyphs map[string]*Glyph `json:"glyphs"`
}

// New allocates an empty overlay font for the given cell size.
func New(name string, cellW, cellH int) *Font {
	return &Font{
		Name:   name,
		Cell:   [2]int{cellW, cellH},
		Glyphs: make(map[string]*Glyph),
	}
}

// Key returns the map key for code point cp, for example "U+0041".
func Key(cp rune) string {
	return fmt.Sprintf("U+%04X", cp)
}

// ParseKey is the inverse of Key.
func ParseKey(key string) (rune, bool) {
	hex, ok := strings.CutPrefix(key, "U+")
	if !ok || hex == "" {
		return 0, false
	}
	cp, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(cp), true
}

// Lookup returns the glyph for code point cp, or nil if there is none.
func (f *Font) Lookup(cp rune) *Glyph {
	if f == nil {
		return nil
	}
	return f.Glyphs[Key(cp)]
}

// Set installs g as the glyph for code point cp.
func (f *Font) Set(cp rune, g *Glyph) {
	if f.Glyphs == nil {
		f.Glyphs = make(map[string]*Glyph)
	}
	f.Glyphs[Key(cp)] = g
}

// CodePoints returns the code points of all glyphs, in increasing order.
// Keys which are not of the form "U+XXXX" are skipped.
func (f *Font) CodePoints() []rune {
	var res []rune
	for _, key := range maps.Keys(f.Glyphs) {
		if cp, ok := ParseKey(key); ok {
			res = append(res, cp)
		}
	}
	slices.Sort(res)
	return res
}

// Read decodes an overlay font from JSON.
func Read(r io.Reader) (*Font, error) {
	f := &Font{}
	err := json.NewDecoder(r).Decode(f)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	if f.Glyphs == nil {
		f.Glyphs = make(map[string]*Glyph)
	}
	for key, g := range f.Glyphs {
		if g == nil {
			delete(f.Glyphs, key)
		}
	}
	return f, nil
}

// Write encodes the font as JSON.  Glyph keys are written in sorted order.
func (f *Font) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

// centered returns the offset which centers a glyph of size w x h in a
// cell of size cellW x cellH.
func centered(w, h, cellW, cellH int) [2]int {
	return [2]int{floorDiv(cellW-w, 2), floorDiv(cellH-h, 2)}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// cellSize returns the cell size to use, falling back to the MAX7456 cell.
func cellSize(w, h int) (int, int) {
	if w <= 0 {
		w = osdfont.CellWidth
	}
	if h <= 0 {
		h = osdfont.CellHeight
	}
	return w, h
}
