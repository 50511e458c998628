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

// Package workspace implements an editing session for OSD fonts.
//
// A Workspace holds a base font together with the editing layers (overlay
// font, swapped icons, direct pixel edits and nudges) and keeps the
// composited result up to date.  Failed operations never change the state
// of the workspace, so the previous result remains available.
//
// A Workspace is not safe for concurrent use.
package workspace

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"

	"seehuhn.de/go/osdfont"
	"seehuhn.de/go/osdfont/composite"
	"seehuhn.de/go/osdfont/mcm"
	"seehuhn.de/go/osdfont/overlay"
	"seehuhn.de/go/osdfont/raster"
	"seehuhn.de/go/osdfont/swap"
)

// ErrNoBase is returned by operations which need a base font, if none has
// been loaded.
var ErrNoBase = errors.New("workspace: no base font loaded")

// PreviewGap is the number of columns between glyphs in preview strips.
const PreviewGap = 2

// Workspace is an editing session.
type Workspace struct {
	// Replaceable selects the glyphs which the overlay font replaces.
	// If nil, osdfont.IsReplaceable is used.
	Replaceable func(int) bool

	fsys     fs.FS
	registry *swap.Registry

	base     *osdfont.Font
	baseName string
	layers   composite.Layers
	result   *osdfont.Font
	replaced composite.IndexSet

	donors   *Cache[*osdfont.Font]
	previews *Cache[*image.Paletted]
}

// New creates an empty workspace.  Swap sources are looked up in
// registry and loaded from fsys.  Either may be nil if swapping is not
// used.
func New(fsys fs.FS, registry *swap.Registry) *Workspace {
	if registry == nil {
		registry = swap.NewRegistry()
	}
	return &Workspace{
		fsys:     fsys,
		registry: registry,
		donors:   NewCache[*osdfont.Font](SwapSourcesChanged),
		previews: NewCache[*image.Paletted](SourceFontChanged, StrokeModeChanged, LayersChanged),
	}
}

// LoadBase reads a base font in MCM format.
// If the font cannot be read, the workspace is left unchanged.
func (w *Workspace) LoadBase(name string, r io.Reader) error {
	font, err := mcm.Read(r)
	if err != nil {
		osdfont.Logger().Warn("workspace: cannot load base font", "name", name, "error", err)
		return fmt.Errorf("%s: %w", name, err)
	}
	return w.SetBase(name, font)
}

// SetBase replaces the base font.
// If the font is not valid, the workspace is left unchanged.
func (w *Workspace) SetBase(name string, font *osdfont.Font) error {
	if err := font.Validate(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	w.base = font.Clone()
	w.baseName = name
	w.changed(SourceFontChanged)
	osdfont.Logger().Info("workspace: loaded base font", "name", name, "format", font.Format)
	return nil
}

// SetSwapSources replaces the file system and the registry used for
// swapping.  A nil registry keeps the current one.
func (w *Workspace) SetSwapSources(fsys fs.FS, registry *swap.Registry) {
	w.fsys = fsys
	if registry != nil {
		w.registry = registry
	}
	w.donors.Invalidate(SwapSourcesChanged)
}

// Registry returns the registry of swap sources.
func (w *Workspace) Registry() *swap.Registry {
	return w.registry
}

// Base returns the name of the base font and the font itself.
// The font is nil if no base font has been loaded.
func (w *Workspace) Base() (string, *osdfont.Font) {
	return w.baseName, w.base
}

// Result returns the composited font, or nil if no base font has been
// loaded.  The caller must not modify the returned font.
func (w *Workspace) Result() *osdfont.Font {
	return w.result
}

// Replaced returns the glyphs which are currently replaced by the overlay
// font.
func (w *Workspace) Replaced() composite.IndexSet {
	return w.replaced
}

// Layers returns a copy of the current editing layers.
func (w *Workspace) Layers() *composite.Layers {
	return w.layers.Clone()
}

// SetOverlay sets the overlay font.  Use nil to remove the overlay.
func (w *Workspace) SetOverlay(ov *overlay.Font) {
	w.layers.Overlay = ov
	w.changed(LayersChanged)
}

// SetStroke selects the outline connectivity of overlay glyphs.
func (w *Workspace) SetStroke(mode raster.Connectivity) error {
	if mode != raster.Four && mode != raster.Eight {
		return fmt.Errorf("workspace: invalid stroke mode %d", mode)
	}
	if mode == w.layers.Stroke {
		return nil
	}
	w.layers.Stroke = mode
	w.changed(StrokeModeChanged)
	return nil
}

// changed recomposes the result font and invalidates stale caches.
func (w *Workspace) changed(reason Reason) {
	if w.base != nil {
		w.result, w.replaced = composite.Rebuild(w.base, &w.layers, w.Replaceable)
	}
	w.previews.Invalidate(reason)
}
