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

package raster

import (
	"fmt"

	"seehuhn.de/go/osdfont"
)

// Connectivity selects the neighbourhood used by ApplyStroke.
type Connectivity int

// These are the supported neighbourhoods.
const (
	Four  Connectivity = 4 // orthogonal neighbours only
	Eight Connectivity = 8 // orthogonal and diagonal neighbours
)

func (c Connectivity) String() string {
	switch c {
	case Four:
		return "4-connected"
	case Eight:
		return "8-connected"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

var (
	offsets4 = []struct{ dx, dy int }{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	}
	offsets8 = []struct{ dx, dy int }{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
		{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
	}
)

// ApplyStroke adds a one pixel outline around the White pixels of a cell.
//
// Every Background pixel which is a neighbour of a White pixel in the
// input becomes Stroke.  Only White pixels seed the outline; Black pixels
// and existing Stroke pixels do not.  Neighbours outside the cell are
// skipped.  Any mode other than Eight is treated as Four.
func ApplyStroke(cell osdfont.Glyph, w, h int, mode Connectivity) osdfont.Glyph {
	neighbours := offsets4
	if mode == Eight {
		neighbours = offsets8
	}

	out := cell.Clone()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cell[y*w+x] != osdfont.White {
				continue
			}
			for _, d := range neighbours {
				nx, ny := x+d.dx, y+d.dy
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				if n := ny*w + nx; out[n] == osdfont.Background {
					out[n] = osdfont.Stroke
				}
			}
		}
	}
	return out
}
