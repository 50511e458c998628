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

package sheet

import (
	"image"
	"image/color"

	"seehuhn.de/go/osdfont"
	"seehuhn.de/go/osdfont/raster"
)

// StripPalette is the palette of images returned by RenderStrip.
var StripPalette = color.Palette{color.Transparent, White, Black}

// Widths of characters without ink in preview strips.
const (
	blankSpaceWidth = 4
	blankGlyphWidth = 2
)

// RenderStrip draws the glyphs for the characters of text side by side,
// for use as a preview thumbnail.
//
// Each glyph is cropped horizontally to its ink, and gap transparent
// columns are inserted between neighbouring glyphs.  Characters without
// ink take up a small fixed width.  Characters outside the font are drawn
// blank.  The image is as tall as one glyph.
func RenderStrip(font *osdfont.Font, text string, gap int) (*image.Paletted, error) {
	if err := checkFont("sheet.RenderStrip", font); err != nil {
		return nil, err
	}
	gap = max(gap, 0)
	w, h := font.Width, font.Height

	type column struct {
		glyph osdfont.Glyph
		minX  int
		width int
	}
	var cols []column
	total := 0
	for _, r := range text {
		col := column{width: blankGlyphWidth}
		if r >= 0 && int(r) < osdfont.NumGlyphs {
			col.glyph = font.Glyphs[r]
			if minX, maxX, ok := raster.InkBounds(col.glyph, w, h); ok {
				col.minX = minX
				col.width = maxX - minX + 1
			} else {
				col.glyph = nil
			}
		}
		if col.glyph == nil && r == ' ' {
			col.width = blankSpaceWidth
		}
		if len(cols) > 0 {
			total += gap
		}
		total += col.width
		cols = append(cols, col)
	}

	img := image.NewPaletted(image.Rect(0, 0, max(total, 1), h), StripPalette)
	penX := 0
	for _, col := range cols {
		if col.glyph != nil {
			for y := 0; y < h; y++ {
				for x := 0; x < col.width; x++ {
					if idx, ok := paletteIndex(col.glyph[y*w+col.minX+x]); ok {
						img.SetColorIndex(penX+x, y, idx)
					}
				}
			}
		}
		penX += col.width + gap
	}
	return img, nil
}
