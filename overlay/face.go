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
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/osdfont"
)

// FaceOptions control the rasterization of fonts through a font.Face.
type FaceOptions struct {
	CellOptions

	// Size is the font size in pixels, used by FromTrueType.
	// If zero, two thirds of the cell height are used.
	Size float64

	// Threshold is the minimum mask alpha which counts as ink.
	// If zero, 128 is used.
	Threshold uint8

	// Runes lists the characters to import.
	// If empty, the replaceable characters of osdfont are used.
	Runes []rune
}

// FromFace rasterizes characters of a font face into an overlay font.
//
// All glyphs share a common baseline, which is chosen so that the line
// height of the face is centered vertically in the cell.  Horizontally,
// the ink of each glyph is centered.  Ink outside the cell is cropped.
// Characters which the face does not have are skipped.
func FromFace(face font.Face, opts *FaceOptions) (*Font, error) {
	if opts == nil {
		opts = &FaceOptions{}
	}
	cellW, cellH := cellSize(opts.CellWidth, opts.CellHeight)
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = 128
	}
	runes := opts.Runes
	if len(runes) == 0 {
		runes = []rune(osdfont.ReplaceableChars)
	}

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	lineHeight := ascent + m.Descent.Ceil()
	baseline := floorDiv(cellH-lineHeight, 2) + ascent

	res := New("", cellW, cellH)
	skipped := 0
	for _, r := range runes {
		dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			skipped++
			continue
		}
		g := glyphFromMask(dr, mask, maskp, threshold, baseline, cellW, cellH)
		if g == nil {
			if r == ' ' {
				res.Set(r, &Glyph{Rows: []uint32{}})
			}
			continue
		}
		res.Set(r, g)
	}
	if skipped > 0 {
		osdfont.Logger().Debug("overlay: face lacks characters", "skipped", skipped)
	}
	return res, nil
}

// glyphFromMask converts a glyph mask into a sparse glyph.
// The nil glyph is returned if the mask has no ink.
func glyphFromMask(dr image.Rectangle, mask image.Image, maskp image.Point,
	threshold uint8, baseline, cellW, cellH int) *Glyph {
	if mask == nil {
		return nil
	}
	isInk := func(x, y int) bool {
		c := color.AlphaModel.Convert(mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y))
		return c.(color.Alpha).A >= threshold
	}

	// bounding box of the ink, in dot coordinates
	ink := image.Rectangle{}
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			if isInk(x, y) {
				ink = ink.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	if ink.Empty() {
		return nil
	}

	w := min(ink.Dx(), cellW, 32)
	h := ink.Dy()
	top := baseline + ink.Min.Y
	if top < 0 {
		// keep the part which is visible in the cell
		ink.Min.Y -= top
		h += top
		top = 0
	}
	h = min(h, cellH-top)
	if h <= 0 {
		return nil
	}

	rows := make([]uint32, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if isInk(ink.Min.X+x, ink.Min.Y+y) {
				rows[y] |= 1 << (w - 1 - x)
			}
		}
	}
	return &Glyph{
		Size:   [2]int{w, h},
		Offset: [2]int{floorDiv(cellW-w, 2), top},
		Rows:   rows,
	}
}

// FromTrueType rasterizes a TrueType or OpenType font.
func FromTrueType(data []byte, opts *FaceOptions) (*Font, error) {
	if opts == nil {
		opts = &FaceOptions{}
	}
	_, cellH := cellSize(opts.CellWidth, opts.CellHeight)
	size := opts.Size
	if size <= 0 {
		size = float64(cellH) * 2 / 3
	}

	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	defer face.Close()

	return FromFace(face, opts)
}
