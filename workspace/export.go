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

package workspace

import (
	"image"
	"io"

	"seehuhn.de/go/osdfont/mcm"
	"seehuhn.de/go/osdfont/sheet"
)

// ExportMCM writes the result font in MCM format.
func (w *Workspace) ExportMCM(out io.Writer) error {
	if w.result == nil {
		return ErrNoBase
	}
	return mcm.Write(out, w.result)
}

// ExportPNG writes the glyph sheet of the result font as a PNG image.
func (w *Workspace) ExportPNG(out io.Writer, scale int) error {
	if w.result == nil {
		return ErrNoBase
	}
	return sheet.WritePNG(out, w.result, scale)
}

// Preview renders text using the result font.  Previews are cached until
// the result font changes.
func (w *Workspace) Preview(text string) (*image.Paletted, error) {
	if w.result == nil {
		return nil, ErrNoBase
	}
	if img, ok := w.previews.Get(text); ok {
		return img, nil
	}
	img, err := sheet.RenderStrip(w.result, text, PreviewGap)
	if err != nil {
		return nil, err
	}
	w.previews.Put(text, img)
	return img, nil
}
