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

package osdfont

// ReplaceableChars lists the text glyphs which may be restyled by an
// overlay font.  The firmware uses these slots to print strings; all other
// slots hold icons.
const ReplaceableChars = " !\"#%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_"

// SpaceIndex is the glyph slot of the space character.
// An overlay may replace it by an intentionally blank glyph.
const SpaceIndex = 0x20

var replaceable [NumGlyphs]bool

func init() {
	for i := 0; i < len(ReplaceableChars); i++ {
		replaceable[ReplaceableChars[i]] = true
	}
}

// IsReplaceable reports whether glyph idx is one of the text glyphs
// listed in ReplaceableChars.
func IsReplaceable(idx int) bool {
	if idx < 0 || idx >= NumGlyphs {
		return false
	}
	return replaceable[idx]
}
