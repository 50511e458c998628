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

package mcm

import (
	"fmt"
	"io"

	"seehuhn.de/go/osdfont"
)

// Write writes a font in MCM format.
//
// The font must use 12x18 cells.  Pixel values are mapped to chip codes as
// follows: White becomes white, Black and Stroke become black, everything
// else becomes transparent.  The distinction between Black and Stroke is
// lost.  All lines, including the last one, are terminated by CRLF.
func Write(w io.Writer, font *osdfont.Font) error {
	if font.Width != osdfont.CellWidth || font.Height != osdfont.CellHeight {
		return &osdfont.ValidationError{
			Op: "mcm.Write",
			Reason: fmt.Sprintf("expected %dx%d glyphs, got %dx%d",
				osdfont.CellWidth, osdfont.CellHeight, font.Width, font.Height),
		}
	}
	for i, g := range font.Glyphs {
		if len(g) != osdfont.CellWidth*osdfont.CellHeight {
			return &osdfont.ValidationError{
				Op:     "mcm.Write",
				Reason: fmt.Sprintf("glyph %d has invalid length %d", i, len(g)),
			}
		}
	}

	_, err := io.WriteString(w, Magic+"\r\n")
	if err != nil {
		return err
	}
	bw := &binaryLineWriter{w: w}
	for _, g := range font.Glyphs {
		data := packGlyph(g)
		_, err = bw.Write(data[:])
		if err != nil {
			return err
		}
	}
	return bw.Close()
}

// binaryLineWriter writes every byte as a line of eight '0'/'1'
// characters, terminated by CRLF.
type binaryLineWriter struct {
	w   io.Writer
	buf []byte
}

func (w *binaryLineWriter) Write(p []byte) (n int, err error) {
	for _, c := range p {
		for bit := 7; bit >= 0; bit-- {
			w.buf = append(w.buf, '0'+(c>>bit)&1)
		}
		w.buf = append(w.buf, '\r', '\n')
		n++
		if len(w.buf) >= 4096 {
			if err = w.flush(); err != nil {
				return n, err
			}
		}
	}
	return len(p), nil
}

func (w *binaryLineWriter) Close() error {
	return w.flush()
}

func (w *binaryLineWriter) flush() error {
	if len(w.buf) == 0 {
		return nil
	}
	_, err := w.w.Write(w.buf)
	w.buf = w.buf[:0]
	return err
}
