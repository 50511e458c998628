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
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"seehuhn.de/go/osdfont"
	"seehuhn.de/go/osdfont/raster"
)

// Decode reads a font from a glyph sheet image.
//
// The image size must be an integer multiple of 16*glyphWidth by
// 16*glyphHeight.  This multiple is the scale of the sheet, and is returned
// as the second value.  Every font pixel is sampled at the center of its
// scale x scale square and converted using raster.ColorToPixel.
func Decode(img image.Image, glyphWidth, glyphHeight int) (*osdfont.Font, int, error) {
	if glyphWidth <= 0 || glyphHeight <= 0 {
		return nil, 0, &osdfont.ValidationError{
			Op:     "sheet.Decode",
			Reason: fmt.Sprintf("invalid glyph size %dx%d", glyphWidth, glyphHeight),
		}
	}
	b := img.Bounds()
	gridW, gridH := Columns*glyphWidth, Rows*glyphHeight
	scale := b.Dx() / gridW
	if scale < 1 || b.Dx() != scale*gridW || b.Dy() != scale*gridH {
		return nil, 0, &osdfont.ValidationError{
			Op: "sheet.Decode",
			Reason: fmt.Sprintf("image size %dx%d is not a multiple of %dx%d",
				b.Dx(), b.Dy(), gridW, gridH),
		}
	}

	src := toNRGBA(img)
	font := osdfont.New(glyphWidth, glyphHeight)
	font.Format = FormatTag
	for i, g := range font.Glyphs {
		x0, y0 := (i%Columns)*glyphWidth, (i/Columns)*glyphHeight
		for y := 0; y < glyphHeight; y++ {
			sy := (y0+y)*scale + scale/2
			for x := 0; x < glyphWidth; x++ {
				sx := (x0+x)*scale + scale/2
				g[y*glyphWidth+x] = pixelAt(src, sx, sy)
			}
		}
	}
	return font, scale, nil
}

// ReadPNG reads a font from a glyph sheet in PNG format.
// See Decode for details.
func ReadPNG(r io.Reader, glyphWidth, glyphHeight int) (*osdfont.Font, int, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, 0, fmt.Errorf("sheet: %w", err)
	}
	return Decode(img, glyphWidth, glyphHeight)
}

// StripOptions describe the layout of a glyph strip.
// Zero sizes mean 12x18 glyphs.
type StripOptions struct {
	GlyphWidth  int
	GlyphHeight int
	Gap         int // empty columns between neighbouring glyphs
}

// DecodeStrip reads count glyphs from an image strip.
//
// The glyphs are arranged from left to right, starting at the left edge
// of the image, with opts.Gap columns between them.  The image may be
// larger than needed; extra pixels are ignored.
func DecodeStrip(img image.Image, count int, opts *StripOptions) ([]osdfont.Glyph, error) {
	if opts == nil {
		opts = &StripOptions{}
	}
	w, h := opts.GlyphWidth, opts.GlyphHeight
	if w <= 0 {
		w = osdfont.CellWidth
	}
	if h <= 0 {
		h = osdfont.CellHeight
	}
	if count < 0 || opts.Gap < 0 {
		return nil, &osdfont.ValidationError{
			Op:     "sheet.DecodeStrip",
			Reason: fmt.Sprintf("invalid layout: %d glyphs, gap %d", count, opts.Gap),
		}
	}

	wantW := count*w + max(0, count-1)*opts.Gap
	b := img.Bounds()
	if b.Dx() < wantW || b.Dy() < h {
		return nil, &osdfont.ValidationError{
			Op: "sheet.DecodeStrip",
			Reason: fmt.Sprintf("image too small: %dx%d, expected at least %dx%d",
				b.Dx(), b.Dy(), wantW, h),
		}
	}

	src := toNRGBA(img)
	res := make([]osdfont.Glyph, count)
	for i := range res {
		g := make(osdfont.Glyph, w*h)
		x0 := i * (w + opts.Gap)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g[y*w+x] = pixelAt(src, x0+x, y)
			}
		}
		res[i] = g
	}
	return res, nil
}

// toNRGBA returns a copy of img with bounds starting at (0, 0), in
// non-premultiplied RGBA.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if res, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return res
	}
	res := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(res, res.Bounds(), img, b.Min, draw.Src)
	return res
}

func pixelAt(img *image.NRGBA, x, y int) osdfont.Pixel {
	c := img.Pix[img.PixOffset(x, y):]
	return raster.ColorToPixel(c[0], c[1], c[2], c[3])
}
