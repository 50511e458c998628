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
	"encoding/json"
	"fmt"
	"io"
)

// ManifestEntry describes one donor font in the donor font manifest.
type ManifestEntry struct {
	File  string `json:"file"`
	Name  string `json:"name"`
	Thumb string `json:"thumb,omitempty"`
}

// CustomEntry describes one image strip source in the custom manifest.
type CustomEntry struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Targets     map[string]*CustomTarget `json:"targets"`
	GlyphWidth  *int                     `json:"glyphWidth,omitempty"`
	GlyphHeight *int                     `json:"glyphHeight,omitempty"`
	Gap         *int                     `json:"gap,omitempty"`
}

// CustomTarget is the per-target part of a CustomEntry.
// Missing values are taken from the enclosing entry.
type CustomTarget struct {
	PNG         string `json:"png"`
	GlyphWidth  *int   `json:"glyphWidth,omitempty"`
	GlyphHeight *int   `json:"glyphHeight,omitempty"`
	Gap         *int   `json:"gap,omitempty"`
}

// ReadManifest reads a donor font manifest.
// The manifest is a JSON array of ManifestEntry objects.
func ReadManifest(r io.Reader) ([]ManifestEntry, error) {
	var list []ManifestEntry
	err := readJSONArray(r, &list)
	if err != nil {
		return nil, fmt.Errorf("swap: donor manifest: %w", err)
	}
	return list, nil
}

// ReadCustomManifest reads a custom source manifest.
// The manifest is a JSON array of CustomEntry objects.
func ReadCustomManifest(r io.Reader) ([]CustomEntry, error) {
	var list []CustomEntry
	err := readJSONArray(r, &list)
	if err != nil {
		return nil, fmt.Errorf("swap: custom manifest: %w", err)
	}
	return list, nil
}

func readJSONArray(r io.Reader, v any) error {
	var raw json.RawMessage
	err := json.NewDecoder(r).Decode(&raw)
	if err != nil {
		return err
	}
	if len(raw) == 0 || raw[0] != '[' {
		return errNotArray
	}
	return json.Unmarshal(raw, v)
}

// firstOf returns the first non-nil value, or def.
func firstOf(def int, values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return def
}
