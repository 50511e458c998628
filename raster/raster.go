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

// Package raster converts bitmap sources into the pixel cells of a font.
//
// All functions in this package are pure: they never modify their
// arguments and always return freshly allocated glyphs (except Shift with
// a zero offset).
package raster

import (
	"image"

	"seehuhn.de/go/osdfont"
)

// RenderBitmap places a sparse bitmap into a blank cell of size cellW x cellH.
//
// The bitmap has size.X columns and size.Y rows.  rows[y] holds row y,
// where bit size.X-1-x is set if column x carries ink.  Source pixel (x, y)
// is placed at (offset.X+x, offset.Y+y) in the cell and gets the value
// White; all other cell pixels are Background.  Ink which falls outside the
// cell is dropped.  Malformed geometry (size larger than the number of rows,
// widths above 32) is tolerated.
//
// The result has no outline.  Use ApplyStroke to add one.
func RenderBitmap(rows []uint32, size, offset image.Point, cellW, cellH int) osdfont.Glyph {
	out := osdfont.NewGlyph(cellW, cellH)

	h := min(size.Y, len(rows))
	w := min(size.X, 32)
	for y := 0; y < h; y++ {
		cy := offset.Y + y
		if cy < 0 || cy >= cellH {
			continue
		}
		row := rows[y]
		for x := 0; x < w; x++ {
			if row&(1<<(size.X-1-x)) == 0 {
				continue
			}
			cx := offset.X + x
			if cx < 0 || cx >= cellW {
				continue
			}
			out[cy*cellW+cx] = osdfont.White
		}
	}
	return out
}

// Shift moves the pixels of a glyph by (dx, dy).
//
// Pixels moved outside the cell are dropped, and uncovered pixels are
// set to Background.  If dx and dy are both zero, g itself is returned.
func Shift(g osdfont.Glyph, w, h, dx, dy int) osdfont.Glyph {
	if dx == 0 && dy == 0 {
		return g
	}

	out := osdfont.NewGlyph(w, h)
	for y := 0; y < h; y++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for x := 0; x < w; x++ {
			nx := x + dx
			if nx < 0 || nx >= w {
				continue
			}
			out[ny*w+nx] = g[y*w+x]
		}
	}
	return out
}

// InkBounds returns the horizontal extent of the non-background pixels of
// a cell.  If the cell is blank, ok is false.
func InkBounds(g osdfont.Glyph, w, h int) (minX, maxX int, ok bool) {
	minX, maxX = w, -1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g[y*w+x] == osdfont.Background {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
		}
	}
	if maxX < minX {
		return 0, 0, false
	}
	return minX, maxX, true
}
