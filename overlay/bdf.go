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

package overlay

import (
	"fmt"

	"github.com/zachomedia/go-bdf"

	"seehuhn.de/go/osdfont"
)

// CellOptions give the cell size for importers.
// The zero value selects the 12x18 MAX7456 cell.
type CellOptions struct {
	CellWidth  int
	CellHeight int
}

// FromBDF imports the glyphs of a BDF bitmap font.
//
// Unencoded glyphs are skipped.  Glyphs larger than the cell are cropped
// to their top-left part, and all glyphs are centered in the cell.
func FromBDF(data []byte, opts *CellOptions) (*Font, error) {
	if opts == nil {
		opts = &CellOptions{}
	}
	cellW, cellH := cellSize(opts.CellWidth, opts.CellHeight)

	src, err := bdf.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("overlay: BDF: %w", err)
	}

	font := New(src.Name, cellW, cellH)
	for _, c := range src.Characters {
		if c.Encoding < 0 || c.Alpha == nil {
			continue
		}
		b := c.Alpha.Bounds()
		if b.Empty() {
			continue
		}

		w := min(b.Dx(), cellW, 32)
		h := min(b.Dy(), cellH)
		rows := make([]uint32, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if c.Alpha.AlphaAt(b.Min.X+x, b.Min.Y+y).A != 0 {
					rows[y] |= 1 << (w - 1 - x)
				}
			}
		}
		font.Set(c.Encoding, &Glyph{
			Size:   [2]int{w, h},
			Offset: centered(w, h, cellW, cellH),
			Rows:   rows,
		})
	}

	osdfont.Logger().Debug("overlay: imported BDF font",
		"name", src.Name, "characters", len(src.Characters), "glyphs", len(font.Glyphs))
	return font, nil
}
