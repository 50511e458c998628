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
	"bytes"
	"fmt"

	"seehuhn.de/go/osdfont"
)

// DetectHeader can be used as C64Options.HeaderBytes to recognize the
// 6-byte header of .FNT charset files.
const DetectHeader = -1

// C64Options control the import of raw 8x8 charsets.
type C64Options struct {
	CellOptions

	CodePointBase rune // code point of the first glyph
	MaxGlyphs     int  // maximum number of glyphs to import; 0 means 256
	HeaderBytes   int  // bytes to skip before the glyph data, or DetectHeader
}

const c64GlyphSize = 8

// FromC64 imports a raw charset where every glyph is stored as eight bytes,
// one byte per row with the leftmost pixel in the most significant bit.
// The glyphs are centered in the cell.
//
// If opts is nil, a .FNT header is detected automatically and up to 256
// glyphs are imported, starting at code point 0.
func FromC64(raw []byte, opts *C64Options) (*Font, error) {
	if opts == nil {
		opts = &C64Options{HeaderBytes: DetectHeader}
	}
	cellW, cellH := cellSize(opts.CellWidth, opts.CellHeight)

	header := opts.HeaderBytes
	if header == DetectHeader {
		header = detectC64Header(raw)
	}
	if header < 0 || header > len(raw) {
		return nil, fmt.Errorf("overlay: invalid charset header size %d", header)
	}
	data := raw[header:]
	if len(data)%c64GlyphSize != 0 {
		return nil, fmt.Errorf("overlay: charset size must be a multiple of %d bytes, got %d",
			c64GlyphSize, len(data))
	}

	maxGlyphs := opts.MaxGlyphs
	if maxGlyphs <= 0 {
		maxGlyphs = osdfont.NumGlyphs
	}
	n := min(len(data)/c64GlyphSize, maxGlyphs)

	font := New("", cellW, cellH)
	offset := centered(c64GlyphSize, c64GlyphSize, cellW, cellH)
	for i := 0; i < n; i++ {
		rows := make([]uint32, c64GlyphSize)
		for y, b := range data[i*c64GlyphSize : (i+1)*c64GlyphSize] {
			rows[y] = uint32(b)
		}
		font.Set(opts.CodePointBase+rune(i), &Glyph{
			Size:   [2]int{c64GlyphSize, c64GlyphSize},
			Offset: offset,
			Rows:   rows,
		})
	}

	osdfont.Logger().Debug("overlay: imported charset",
		"bytes", len(raw), "header", header, "glyphs", n)
	return font, nil
}

// detectC64Header recognizes the common emulator .FNT layout: a 6-byte
// header starting with FF FF, followed by the glyph data.
func detectC64Header(raw []byte) int {
	n := len(raw)
	if n%c64GlyphSize == 0 {
		return 0
	}
	if n >= 6 && (n-6)%c64GlyphSize == 0 && bytes.HasPrefix(raw, []byte{0xFF, 0xFF}) {
		return 6
	}
	return 0
}
