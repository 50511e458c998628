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

// Package osdfont represents the 256-glyph bitmap fonts used by
// MAX7456-style on-screen display chips.
//
// A [Font] stores every glyph as a flat, row-major slice of [Pixel] values.
// The sub-packages read and write such fonts (mcm, sheet), build glyphs from
// other font sources (overlay, raster) and combine several sources into one
// font (composite, workspace).
package osdfont

import "fmt"

// NumGlyphs is the number of glyph slots in every font.
const NumGlyphs = 256

// The cell size used by the MAX7456 chip.
const (
	CellWidth  = 12
	CellHeight = 18
)

// Pixel is the value of a single glyph pixel.
// Only the four values defined below are valid.
type Pixel uint8

// These are the valid pixel values.
const (
	Black      Pixel = 0 // dark pixel as found in decoded fonts
	Background Pixel = 1 // transparent, never drawn
	White      Pixel = 2 // fill
	Stroke     Pixel = 3 // synthesized outline, drawn as black
)

// IsValid reports whether p is one of the four defined pixel values.
func (p Pixel) IsValid() bool {
	return p <= Stroke
}

// IsDark reports whether p is rendered as black.
// Both Black and Stroke are dark, but they are kept apart everywhere
// except on export.
func (p Pixel) IsDark() bool {
	return p == Black || p == Stroke
}

func (p Pixel) String() string {
	switch p {
	case Black:
		return "black"
	case Background:
		return "background"
	case White:
		return "white"
	case Stroke:
		return "stroke"
	default:
		return fmt.Sprintf("Pixel(%d)", uint8(p))
	}
}

// Glyph is a row-major pixel buffer of length width*height.
type Glyph []Pixel

// NewGlyph returns a glyph of the given size where every pixel is
// Background.
func NewGlyph(width, height int) Glyph {
	g := make(Glyph, width*height)
	for i := range g {
		g[i] = Background
	}
	return g
}

// Clone returns a copy of g which shares no memory with g.
func (g Glyph) Clone() Glyph {
	if g == nil {
		return nil
	}
	res := make(Glyph, len(g))
	copy(res, g)
	return res
}

// IsBlank reports whether all pixels of g are Background.
func (g Glyph) IsBlank() bool {
	for _, p := range g {
		if p != Background {
			return false
		}
	}
	return true
}

// DiffCount returns the number of pixels where a and b differ.
// If the glyphs have different lengths, -1 is returned.
func DiffCount(a, b Glyph) int {
	if a == nil || b == nil || len(a) != len(b) {
		return -1
	}
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

// Font is a complete set of 256 glyphs of identical size.
type Font struct {
	Width  int
	Height int
	Glyphs [NumGlyphs]Glyph

	// Format describes where the font came from, for example "mcm-text".
	Format string
}

// New allocates a font of the given cell size where every glyph is blank.
func New(width, height int) *Font {
	f := &Font{
		Width:  width,
		Height: height,
	}
	for i := range f.Glyphs {
		f.Glyphs[i] = NewGlyph(width, height)
	}
	return f
}

// Clone returns a deep copy of f.
func (f *Font) Clone() *Font {
	res := &Font{
		Width:  f.Width,
		Height: f.Height,
		Format: f.Format,
	}
	for i, g := range f.Glyphs {
		res.Glyphs[i] = g.Clone()
	}
	return res
}

// PixelAt returns the pixel (x, y) of glyph idx.
// Background is returned for coordinates outside the cell.
func (f *Font) PixelAt(idx, x, y int) Pixel {
	if idx < 0 || idx >= NumGlyphs || x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return Background
	}
	g := f.Glyphs[idx]
	if len(g) != f.Width*f.Height {
		return Background
	}
	return g[y*f.Width+x]
}

// Validate checks that every glyph has the correct length and only contains
// valid pixel values.
func (f *Font) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return &ValidationError{
			Op:     "osdfont",
			Reason: fmt.Sprintf("invalid cell size %dx%d", f.Width, f.Height),
		}
	}
	n := f.Width * f.Height
	for i, g := range f.Glyphs {
		if len(g) != n {
			return &ValidationError{
				Op:     "osdfont",
				Reason: fmt.Sprintf("glyph %d has %d pixels, expected %d", i, len(g), n),
			}
		}
		for j, p := range g {
			if !p.IsValid() {
				return &ValidationError{
					Op:     "osdfont",
					Reason: fmt.Sprintf("glyph %d pixel %d has invalid value %d", i, j, p),
				}
			}
		}
	}
	return nil
}
