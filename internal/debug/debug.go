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

// Package debug provides fonts and file data for use in unit tests.
package debug

import (
	"bytes"
	"fmt"
	"math/rand"

	"seehuhn.de/go/osdfont"
)

// MakeFont returns a 12x18 font where every pixel has the value fill.
func MakeFont(fill osdfont.Pixel) *osdfont.Font {
	f := osdfont.New(osdfont.CellWidth, osdfont.CellHeight)
	for _, g := range f.Glyphs {
		for i := range g {
			g[i] = fill
		}
	}
	return f
}

// RandomFont returns a 12x18 font with pixel values drawn from values.
func RandomFont(rng *rand.Rand, values ...osdfont.Pixel) *osdfont.Font {
	f := osdfont.New(osdfont.CellWidth, osdfont.CellHeight)
	for _, g := range f.Glyphs {
		for i := range g {
			g[i] = values[rng.Intn(len(values))]
		}
	}
	return f
}

// Glyph builds a glyph from rows of digits '0' to '3'.
// All rows must have the same length.
func Glyph(rows ...string) osdfont.Glyph {
	var g osdfont.Glyph
	for _, row := range rows {
		if len(row) != len(rows[0]) {
			panic("debug: rows of different length")
		}
		for _, c := range row {
			g = append(g, osdfont.Pixel(c-'0'))
		}
	}
	return g
}

// MakeMCM returns the text of an MCM file where every glyph stores
// dataByte in its 54 data bytes and padByte in the padding.
// Lines are terminated by eol.
func MakeMCM(dataByte, padByte byte, eol string) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("MAX7456" + eol)
	for g := 0; g < osdfont.NumGlyphs; g++ {
		for i := 0; i < 64; i++ {
			b := dataByte
			if i >= 54 {
				b = padByte
			}
			fmt.Fprintf(buf, "%08b%s", b, eol)
		}
	}
	return buf.Bytes()
}
