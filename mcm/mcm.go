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

// Package mcm reads and writes MAX7456 character map files.
//
// An MCM file is a text file.  The first line is the marker "MAX7456",
// followed by one line per byte, written as eight '0'/'1' characters.
// Each of the 256 glyphs uses 64 bytes.  The first 54 bytes hold 18 rows
// of 12 pixels, two bits per pixel with the most significant pixel first.
// The remaining 10 bytes are padding.
package mcm

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/osdfont"
)

// Magic is the first line of every MCM file.
const Magic = "MAX7456"

// FormatTag is stored in the Format field of decoded fonts.
const FormatTag = "mcm-text"

const (
	// BytesPerGlyph is the number of bytes stored per glyph, including padding.
	BytesPerGlyph = 64

	// DataBytesPerGlyph is the number of bytes which carry pixel data.
	DataBytesPerGlyph = osdfont.CellWidth * osdfont.CellHeight / 4

	// TotalBytes is the number of byte lines in a complete file.
	TotalBytes = osdfont.NumGlyphs * BytesPerGlyph

	padByte = 0x55 // four transparent pixels
)

// Two-bit pixel codes used by the chip.
const (
	chipBlack       = 0b00
	chipTransparent = 0b01
	chipWhite       = 0b10
)

// FormatError is returned by Read and Decode for malformed input.
// No partial font is returned together with a FormatError.
type FormatError struct {
	Line   int // 1-based line number, or 0 if not applicable
	Reason string
}

func (err *FormatError) Error() string {
	if err.Line > 0 {
		return fmt.Sprintf("mcm: line %d: %s", err.Line, err.Reason)
	}
	return "mcm: " + err.Reason
}

// Decode decodes an MCM file held in memory.
func Decode(data []byte) (*osdfont.Font, error) {
	return Read(bytes.NewReader(data))
}

// Encode returns the MCM representation of a font.
func Encode(font *osdfont.Font) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.Grow(len(Magic) + 2 + TotalBytes*10)
	err := Write(buf, font)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// chipCode maps a pixel value to the two-bit code stored in the file.
// Both dark values become black, anything which is not white or dark
// becomes transparent.
func chipCode(p osdfont.Pixel) byte {
	switch p {
	case osdfont.White:
		return chipWhite
	case osdfont.Black, osdfont.Stroke:
		return chipBlack
	default:
		return chipTransparent
	}
}

// packGlyph packs the pixels of a 12x18 glyph into the 64 bytes stored in
// the file.
func packGlyph(g osdfont.Glyph) [BytesPerGlyph]byte {
	var res [BytesPerGlyph]byte
	for i := 0; i < DataBytesPerGlyph; i++ {
		p := g[4*i : 4*i+4]
		res[i] = chipCode(p[0])<<6 | chipCode(p[1])<<4 | chipCode(p[2])<<2 | chipCode(p[3])
	}
	for i := DataBytesPerGlyph; i < BytesPerGlyph; i++ {
		res[i] = padByte
	}
	return res
}

// unpackGlyph decodes the pixel data of one glyph.  The two-bit values are
// stored verbatim.
func unpackGlyph(data []byte) osdfont.Glyph {
	const w, h = osdfont.CellWidth, osdfont.CellHeight
	g := make(osdfont.Glyph, w*h)
	for y := 0; y < h; y++ {
		row := uint32(data[3*y])<<16 | uint32(data[3*y+1])<<8 | uint32(data[3*y+2])
		for x := 0; x < w; x++ {
			g[y*w+x] = osdfont.Pixel(row>>(22-2*x)) & 0x03
		}
	}
	return g
}
