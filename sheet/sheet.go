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

// Package sheet converts fonts to and from glyph sheet images.
//
// A sheet shows all 256 glyphs of a font in a grid of 16 columns and 16
// rows, glyph i in column i%16 and row i/16.  Transparent pixels are
// shown in mid gray, which is also how the hardware preview shows them.
package sheet

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"seehuhn.de/go/osdfont"
	"seehuhn.de/go/osdfont/mcm"
)

// Columns and Rows give the size of the glyph grid.
const (
	Columns = 16
	Rows    = osdfont.NumGlyphs / Columns
)

// FormatTag is stored in the Format field of fonts decoded from sheets.
const FormatTag = "png-sheet"

// The colors used in sheet images.
var (
	Gray  = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	White = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Black = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// Palette is the palette of images returned by Render.
// The first entry is the background.
var Palette = color.Palette{Gray, White, Black}

const (
	grayIndex  = 0
	whiteIndex = 1
	blackIndex = 2
)

// Render draws the glyph sheet of a font.
//
// Every font pixel becomes a square of scale x scale image pixels.
// White pixels are drawn in white, Black and Stroke pixels in black, and
// all other pixels are left gray.
func Render(font *osdfont.Font, scale int) (*image.Paletted, error) {
	if scale < 1 {
		return nil, &osdfont.ValidationError{
			Op:     "sheet.Render",
			Reason: fmt.Sprintf("invalid scale %d", scale),
		}
	}
	if err := checkFont("sheet.Render", font); err != nil {
		return nil, err
	}

	w, h := font.Width, font.Height
	img := image.NewPaletted(image.Rect(0, 0, Columns*w, Rows*h), Palette)
	for i, g := range font.Glyphs {
		x0, y0 := (i%Columns)*w, (i/Columns)*h
		for y := 0; y < h; y++ {
			line := img.Pix[(y0+y)*img.Stride+x0:]
			for x := 0; x < w; x++ {
				if idx, ok := paletteIndex(g[y*w+x]); ok {
					line[x] = idx
				}
			}
		}
	}
	if scale == 1 {
		return img, nil
	}

	scaled := image.NewPaletted(image.Rect(0, 0, Columns*w*scale, Rows*h*scale), Palette)
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	return scaled, nil
}

func paletteIndex(p osdfont.Pixel) (uint8, bool) {
	switch p {
	case osdfont.White:
		return whiteIndex, true
	case osdfont.Black, osdfont.Stroke:
		return blackIndex, true
	default:
		return 0, false
	}
}

// WritePNG writes the glyph sheet of a font as a PNG image.
func WritePNG(w io.Writer, font *osdfont.Font, scale int) error {
	img, err := Render(font, scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// ToMCM returns the MCM representation of a font.
func ToMCM(font *osdfont.Font) ([]byte, error) {
	return mcm.Encode(font)
}

func checkFont(op string, font *osdfont.Font) error {
	if font.Width <= 0 || font.Height <= 0 {
		return &osdfont.ValidationError{
			Op:     op,
			Reason: fmt.Sprintf("invalid glyph size %dx%d", font.Width, font.Height),
		}
	}
	for i, g := range font.Glyphs {
		if len(g) != font.Width*font.Height {
			return &osdfont.ValidationError{
				Op:     op,
				Reason: fmt.Sprintf("glyph %d has invalid length %d", i, len(g)),
			}
		}
	}
	return nil
}
