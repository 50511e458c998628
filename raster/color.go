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
	"image/color"

	"seehuhn.de/go/osdfont"
)

// ColorToPixel quantizes a non-premultiplied RGBA color to a pixel value.
//
// Nearly transparent colors (alpha below 16) and near-gray mid tones are
// Background, bright colors are White, and everything else is Stroke.
func ColorToPixel(r, g, b, a uint8) osdfont.Pixel {
	if a < 16 {
		return osdfont.Background
	}

	ri, gi, bi := int(r), int(g), int(b)
	maxDiff := max(abs(ri-gi), abs(gi-bi), abs(ri-bi))
	lum := 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)

	switch {
	case maxDiff <= 18 && lum >= 92 && lum <= 176:
		return osdfont.Background
	case lum >= 210:
		return osdfont.White
	default:
		return osdfont.Stroke
	}
}

// Quantize is like ColorToPixel, but accepts any color.
func Quantize(c color.Color) osdfont.Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ColorToPixel(n.R, n.G, n.B, n.A)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
