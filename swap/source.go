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

package swap

import (
	"strings"
)

// Kind identifies the type of a swap source.
type Kind string

// These are the supported source kinds.
const (
	KindBitmapFont Kind = "bf_mcm"
	KindImageStrip Kind = "custom_png"
)

// Source is a provider of swap glyphs.
// The implementations are BitmapFont and ImageStrip.
type Source interface {
	ID() string
	Label() string
	Kind() Kind

	// Supports reports whether the source has glyphs for the given target.
	Supports(targetID string) bool

	isSource()
}

// BitmapFont is a complete donor font, stored in MCM format.
type BitmapFont struct {
	File string // file name inside BitmapFontDir
	Name string
}

// ID implements the Source interface.
func (s *BitmapFont) ID() string { return "bf:" + s.File }

// Label implements the Source interface.
func (s *BitmapFont) Label() string { return "BF " + s.Name }

// Kind implements the Source interface.
func (s *BitmapFont) Kind() Kind { return KindBitmapFont }

// Supports implements the Source interface.
// A donor font has glyphs for every target.
func (s *BitmapFont) Supports(string) bool { return true }

func (s *BitmapFont) isSource() {}

// Strip locates the image for one target of an ImageStrip.
// Zero glyph sizes mean 12x18.
type Strip struct {
	PNG         string
	GlyphWidth  int
	GlyphHeight int
	Gap         int
}

// ImageStrip provides glyphs for some targets as PNG image strips,
// one image per target.
type ImageStrip struct {
	Key     string
	Name    string
	Targets map[string]Strip

	// Size of the glyphs in the loaded font.
	GlyphWidth  int
	GlyphHeight int
}

// ID implements the Source interface.
func (s *ImageStrip) ID() string { return "custom:" + s.Key }

// Label implements the Source interface.
func (s *ImageStrip) Label() string { return s.Name }

// Kind implements the Source interface.
func (s *ImageStrip) Kind() Kind { return KindImageStrip }

// Supports implements the Source interface.
func (s *ImageStrip) Supports(targetID string) bool {
	st, ok := s.Targets[targetID]
	return ok && st.PNG != ""
}

func (s *ImageStrip) isSource() {}

// ResolveAssetPath returns the location of an asset named in a custom
// source manifest.  Absolute paths, URLs and paths starting with "./" or
// "../" are kept, all other paths are taken relative to the "fonts"
// directory.
func ResolveAssetPath(p string) string {
	if p == "" {
		return ""
	}
	lower := strings.ToLower(p)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/") ||
		strings.HasPrefix(p, "./") || strings.HasPrefix(p, "../") {
		return p
	}
	return "fonts/" + p
}
