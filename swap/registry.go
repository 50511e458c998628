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
	"cmp"
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/osdfont"
	"seehuhn.de/go/osdfont/mcm"
	"seehuhn.de/go/osdfont/sheet"
)

// BitmapFontDir is the directory which holds the donor fonts.
const BitmapFontDir = "fonts/betaflight"

// These errors are returned by Registry.Load.
var (
	ErrUnknownSource = errors.New("swap: unknown source")
	ErrUnknownTarget = errors.New("swap: unknown target")
	ErrNoStrip       = errors.New("swap: source has no image for target")
)

var errNotArray = errors.New("manifest is not a JSON array")

// FontCache stores loaded source fonts.
// Implementations must be safe for concurrent use if Load is called
// concurrently.
type FontCache interface {
	Get(key string) (*osdfont.Font, bool)
	Put(key string, font *osdfont.Font)
}

// Registry holds the known swap sources, indexed by ID.
type Registry struct {
	sources map[string]Source
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]Source)}
}

// Add adds a source to the registry, replacing any source with the same ID.
func (r *Registry) Add(s Source) {
	r.sources[s.ID()] = s
}

// RegisterBitmapFonts adds a donor font for every manifest entry.
func (r *Registry) RegisterBitmapFonts(list []ManifestEntry) {
	for _, e := range list {
		if e.File == "" {
			continue
		}
		r.Add(&BitmapFont{File: e.File, Name: e.Name})
	}
}

// RegisterCustom adds an image strip source for every valid manifest
// entry and returns the number of sources added.  Entries without an ID,
// a name or targets are skipped.
func (r *Registry) RegisterCustom(list []CustomEntry) int {
	n := 0
	for _, e := range list {
		if e.ID == "" || e.Name == "" || e.Targets == nil {
			osdfont.Logger().Warn("swap: skipping invalid custom source",
				"id", e.ID, "name", e.Name)
			continue
		}
		src := &ImageStrip{
			Key:         e.ID,
			Name:        e.Name,
			Targets:     make(map[string]Strip, len(e.Targets)),
			GlyphWidth:  firstOf(osdfont.CellWidth, e.GlyphWidth),
			GlyphHeight: firstOf(osdfont.CellHeight, e.GlyphHeight),
		}
		for id, t := range e.Targets {
			if t == nil {
				continue
			}
			src.Targets[id] = Strip{
				PNG:         ResolveAssetPath(t.PNG),
				GlyphWidth:  firstOf(osdfont.CellWidth, t.GlyphWidth, e.GlyphWidth),
				GlyphHeight: firstOf(osdfont.CellHeight, t.GlyphHeight, e.GlyphHeight),
				Gap:         firstOf(0, t.Gap, e.Gap),
			}
		}
		r.Add(src)
		n++
	}
	return n
}

// Get returns the source with the given ID.
func (r *Registry) Get(id string) (Source, bool) {
	s, ok := r.sources[id]
	return s, ok
}

// List returns the sources which support the given target, sorted by kind
// and then by label.  If targetID is empty, all sources are returned.
func (r *Registry) List(targetID string) []Source {
	var res []Source
	for _, s := range maps.Values(r.sources) {
		if targetID == "" || s.Supports(targetID) {
			res = append(res, s)
		}
	}
	slices.SortFunc(res, func(a, b Source) int {
		if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
			return c
		}
		if c := strings.Compare(a.Label(), b.Label()); c != 0 {
			return c
		}
		return strings.Compare(a.ID(), b.ID())
	})
	return res
}

// Load returns the glyphs which the source sourceID provides for the
// target targetID, as a font.
//
// Donor fonts are read from BitmapFontDir inside fsys and are returned
// complete.  For image strip sources, only the slots of the target are
// set in the returned font; all other slots are blank.  Loaded fonts are
// stored in cache, which may be nil.
func (r *Registry) Load(fsys fs.FS, cache FontCache, sourceID, targetID string) (*osdfont.Font, error) {
	target, ok := TargetByID(targetID)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTarget, targetID)
	}
	src, ok := r.sources[sourceID]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSource, sourceID)
	}

	var key string
	switch src := src.(type) {
	case *BitmapFont:
		key = sourceID
	case *ImageStrip:
		if !src.Supports(targetID) {
			return nil, fmt.Errorf("%w: %q, %q", ErrNoStrip, src.Name, targetID)
		}
		key = sourceID + "::" + targetID
	}
	if cache != nil {
		if font, ok := cache.Get(key); ok {
			return font, nil
		}
	}

	var font *osdfont.Font
	var err error
	switch src := src.(type) {
	case *BitmapFont:
		font, err = loadBitmapFont(fsys, src)
	case *ImageStrip:
		font, err = loadImageStrip(fsys, src, target)
	}
	if err != nil {
		return nil, err
	}

	if cache != nil {
		cache.Put(key, font)
	}
	return font, nil
}

func loadBitmapFont(fsys fs.FS, src *BitmapFont) (*osdfont.Font, error) {
	data, err := fs.ReadFile(fsys, path.Join(BitmapFontDir, src.File))
	if err != nil {
		return nil, fmt.Errorf("swap: %w", err)
	}
	font, err := mcm.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("swap: %s: %w", src.File, err)
	}
	return font, nil
}

func loadImageStrip(fsys fs.FS, src *ImageStrip, target Target) (*osdfont.Font, error) {
	st := src.Targets[target.ID]
	name, err := fsPath(st.PNG)
	if err != nil {
		return nil, err
	}
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("swap: %w", err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("swap: %s: %w", name, err)
	}

	glyphs, err := sheet.DecodeStrip(img, len(target.Indices), &sheet.StripOptions{
		GlyphWidth:  st.GlyphWidth,
		GlyphHeight: st.GlyphHeight,
		Gap:         st.Gap,
	})
	if err != nil {
		return nil, fmt.Errorf("swap: %s: %w", name, err)
	}

	font := osdfont.New(cmp.Or(src.GlyphWidth, osdfont.CellWidth), cmp.Or(src.GlyphHeight, osdfont.CellHeight))
	font.Format = string(KindImageStrip)
	for i, idx := range target.Indices {
		font.Glyphs[idx] = glyphs[i]
	}
	return font, nil
}

// fsPath converts an asset location into a path inside an fs.FS.
func fsPath(p string) (string, error) {
	if strings.Contains(p, "://") || strings.HasPrefix(p, "//") {
		return "", fmt.Errorf("swap: remote asset %q not supported", p)
	}
	name := path.Clean(strings.TrimPrefix(p, "/"))
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("swap: invalid asset path %q", p)
	}
	return name, nil
}
