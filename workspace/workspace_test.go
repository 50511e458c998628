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
	"bytes"
	"errors"
	"image"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/osdfont"
	"seehuhn.de/go/osdfont/internal/debug"
	"seehuhn.de/go/osdfont/mcm"
	"seehuhn.de/go/osdfont/overlay"
	"seehuhn.de/go/osdfont/raster"
	"seehuhn.de/go/osdfont/swap"
)

const cellW, cellH = osdfont.CellWidth, osdfont.CellHeight

func encode(t *testing.T, font *osdfont.Font) []byte {
	t.Helper()
	data, err := mcm.Encode(font)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func dotOverlay() *overlay.Font {
	ov := overlay.New("dots", cellW, cellH)
	ov.Set('A', &overlay.Glyph{Size: [2]int{1, 1}, Offset: [2]int{5, 8}, Rows: []uint32{1}})
	return ov
}

func newWorkspace(t *testing.T) *Workspace {
	t.Helper()
	fsys := fstest.MapFS{
		"fonts/betaflight/donor.mcm": {Data: encode(t, debug.MakeFont(osdfont.White))},
	}
	reg := swap.NewRegistry()
	reg.RegisterBitmapFonts([]swap.ManifestEntry{{File: "donor.mcm", Name: "Donor"}})

	w := New(fsys, reg)
	err := w.LoadBase("base.mcm", bytes.NewReader(encode(t, debug.MakeFont(osdfont.Background))))
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestNoBase(t *testing.T) {
	w := New(nil, nil)
	if w.Result() != nil {
		t.Error("result without base font")
	}
	if err := w.ExportMCM(&bytes.Buffer{}); !errors.Is(err, ErrNoBase) {
		t.Errorf("ExportMCM: got %v, want ErrNoBase", err)
	}
	if _, err := w.SetPixel(0, 0, 0, osdfont.White); !errors.Is(err, ErrNoBase) {
		t.Errorf("SetPixel: got %v, want ErrNoBase", err)
	}
	if _, err := w.Preview("A"); !errors.Is(err, ErrNoBase) {
		t.Errorf("Preview: got %v, want ErrNoBase", err)
	}

	// layers can be prepared before the base font is loaded
	w.SetOverlay(dotOverlay())
	err := w.LoadBase("base.mcm", bytes.NewReader(encode(t, debug.MakeFont(osdfont.Background))))
	if err != nil {
		t.Fatal(err)
	}
	if !w.Replaced().Has('A') {
		t.Error("overlay not applied after loading the base font")
	}
}

func TestLoadBaseKeepsStateOnError(t *testing.T) {
	w := newWorkspace(t)
	w.SetOverlay(dotOverlay())
	before := w.Result()

	err := w.LoadBase("bad.mcm", bytes.NewReader([]byte("MAX7456\r\n00000000\r\n")))
	var fErr *mcm.FormatError
	if !errors.As(err, &fErr) {
		t.Fatalf("got %v, want FormatError", err)
	}
	if w.Result() != before {
		t.Error("result changed after failed load")
	}
	if name, _ := w.Base(); name != "base.mcm" {
		t.Errorf("base name changed to %q", name)
	}

	bad := debug.MakeFont(osdfont.White)
	bad.Glyphs[3] = bad.Glyphs[3][:5]
	err = w.SetBase("short", bad)
	var vErr *osdfont.ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("got %v, want ValidationError", err)
	}
	if w.Result() != before {
		t.Error("result changed after invalid base font")
	}
}

func TestOverlayAndStroke(t *testing.T) {
	w := newWorkspace(t)
	w.SetOverlay(dotOverlay())

	countStroke := func() int {
		n := 0
		for _, p := range w.Result().Glyphs['A'] {
			if p == osdfont.Stroke {
				n++
			}
		}
		return n
	}
	if n := countStroke(); n != 4 {
		t.Errorf("got %d stroke pixels, want 4", n)
	}
	if err := w.SetStroke(raster.Eight); err != nil {
		t.Fatal(err)
	}
	if n := countStroke(); n != 8 {
		t.Errorf("got %d stroke pixels, want 8", n)
	}
	if err := w.SetStroke(5); err == nil {
		t.Error("invalid stroke mode accepted")
	}

	w.SetOverlay(nil)
	if !w.Result().Glyphs['A'].IsBlank() {
		t.Error("overlay glyph left after removing the overlay")
	}
}

func TestSwapTargets(t *testing.T) {
	w := newWorkspace(t)

	rep, err := w.ApplySwapTarget("crosshair_set", "bf:donor.mcm")
	if err != nil {
		t.Fatal(err)
	}
	want := swap.Report{Applied: true, Changed: 3, Total: 3, Focus: 114}
	if d := cmp.Diff(want, rep); d != "" {
		t.Errorf("wrong report (-want +got):\n%s", d)
	}
	if w.Result().Glyphs[115][0] != osdfont.White {
		t.Error("swap not applied")
	}

	// applying again changes nothing
	rep, err = w.ApplySwapTarget("crosshair_set", "bf:donor.mcm")
	if err != nil {
		t.Fatal(err)
	}
	if rep.Changed != 0 {
		t.Errorf("got %d changed glyphs, want 0", rep.Changed)
	}
	if w.donors.Len() != 1 {
		t.Errorf("got %d cached donor fonts, want 1", w.donors.Len())
	}

	if _, err := w.ApplySwapTarget("rssi", "bf:nothing.mcm"); !errors.Is(err, swap.ErrUnknownSource) {
		t.Errorf("got %v, want ErrUnknownSource", err)
	}
	if _, err := w.ApplySwapTarget("nothing", "bf:donor.mcm"); !errors.Is(err, swap.ErrUnknownTarget) {
		t.Errorf("got %v, want ErrUnknownTarget", err)
	}

	_, err = w.ApplySwapTarget("rssi", "bf:donor.mcm")
	if err != nil {
		t.Fatal(err)
	}
	if err := w.ClearSwapTarget("crosshair_set"); err != nil {
		t.Fatal(err)
	}
	if !w.Result().Glyphs[115].IsBlank() || w.Result().Glyphs[1].IsBlank() {
		t.Error("ClearSwapTarget removed the wrong glyphs")
	}
	w.ClearAllSwaps()
	if !w.Result().Glyphs[1].IsBlank() {
		t.Error("ClearAllSwaps left glyphs")
	}

	w.SetSwapSources(fstest.MapFS{}, nil)
	if w.donors.Len() != 0 {
		t.Error("donor cache not cleared")
	}
	if _, err := w.ApplySwapTarget("rssi", "bf:donor.mcm"); err == nil {
		t.Error("donor font loaded from empty file system")
	}
}

func TestNudges(t *testing.T) {
	w := newWorkspace(t)
	w.SetOverlay(dotOverlay())

	for i := 0; i < 11; i++ {
		w.NudgeReplaced(2, 0)
	}
	if p := w.Layers().Nudge.Replaced; p != image.Pt(6, 0) {
		t.Errorf("global nudge %v, want (6,0)", p)
	}
	if w.Result().Glyphs['A'][8*cellW+11] != osdfont.White {
		t.Error("overlay glyph not nudged")
	}
	w.ResetReplacedNudge()

	w.NudgeGlyphs(0, 1, 'A', 'B')
	if w.Result().Glyphs['A'][9*cellW+5] != osdfont.White {
		t.Error("per-glyph nudge not applied")
	}
	w.ClearGlyphNudges('A')
	if n := len(w.Layers().Nudge.PerGlyph); n != 1 {
		t.Errorf("%d per-glyph nudges left, want 1", n)
	}
	w.ClearGlyphNudges()
	if w.Result().Glyphs['A'][8*cellW+5] != osdfont.White {
		t.Error("nudges not removed")
	}
}

func TestEditFollowsGlobalNudge(t *testing.T) {
	w := newWorkspace(t)
	w.SetOverlay(dotOverlay())
	w.NudgeReplaced(1, 0)

	// the overlay dot is shown at (6, 8); add a pixel to its right
	ok, err := w.SetPixel('A', 7, 8, osdfont.White)
	if err != nil || !ok {
		t.Fatalf("SetPixel: %t, %v", ok, err)
	}
	g := w.Result().Glyphs['A']
	if g[8*cellW+6] != osdfont.White || g[8*cellW+7] != osdfont.White {
		t.Error("edit not shown at the nudged position")
	}

	w.NudgeReplaced(1, 0)
	g = w.Result().Glyphs['A']
	if g[8*cellW+7] != osdfont.White || g[8*cellW+8] != osdfont.White {
		t.Error("edit does not follow the global nudge")
	}

	// the edited pixel of a non-replaced glyph stays in place
	ok, err = w.SetPixel('a', 0, 0, osdfont.Black)
	if err != nil || !ok {
		t.Fatalf("SetPixel: %t, %v", ok, err)
	}
	if w.Result().Glyphs['a'][0] != osdfont.Black {
		t.Error("edit of non-replaced glyph moved")
	}

	// a pixel which is outside the un-nudged glyph cannot be edited
	ok, err = w.SetPixel('A', 0, 0, osdfont.White)
	if err != nil || ok {
		t.Errorf("SetPixel outside the glyph: %t, %v", ok, err)
	}

	w.RevertEdits('A')
	g = w.Result().Glyphs['A']
	if g[8*cellW+7] != osdfont.White || g[8*cellW+8] == osdfont.White {
		t.Error("edit not reverted")
	}
	w.RevertEdits()
	if !w.Result().Glyphs['a'].IsBlank() {
		t.Error("RevertEdits() left edits")
	}
}

func TestEditDropsInkOutsideCell(t *testing.T) {
	w := newWorkspace(t)
	ov := overlay.New("edge", cellW, cellH)
	ov.Set('B', &overlay.Glyph{Size: [2]int{1, 1}, Offset: [2]int{-1, 8}, Rows: []uint32{1}})
	w.SetOverlay(ov)
	w.NudgeReplaced(1, 0)

	if w.Result().Glyphs['B'][8*cellW] != osdfont.White {
		t.Fatal("global offset did not move the ink into the cell")
	}

	ok, err := w.SetPixel('B', 5, 5, osdfont.White)
	if err != nil || !ok {
		t.Fatalf("SetPixel: %t, %v", ok, err)
	}
	g := w.Result().Glyphs['B']
	if g[5*cellW+5] != osdfont.White {
		t.Error("edit not shown")
	}
	if g[8*cellW] == osdfont.White {
		t.Error("ink from outside the cell survived the edit")
	}
}

func TestEditErrors(t *testing.T) {
	w := newWorkspace(t)
	if err := w.Edit(3, osdfont.NewGlyph(2, 2)); err == nil {
		t.Error("glyph of wrong size accepted")
	}
	if err := w.Edit(256, osdfont.NewGlyph(cellW, cellH)); err == nil {
		t.Error("invalid index accepted")
	}
	if _, err := w.SetPixel(0, 0, 0, 7); err == nil {
		t.Error("invalid pixel value accepted")
	}

	g := osdfont.NewGlyph(cellW, cellH)
	g[0] = osdfont.Stroke
	if err := w.Edit(3, g); err != nil {
		t.Fatal(err)
	}
	g[0] = osdfont.White
	if w.Result().Glyphs[3][0] != osdfont.Stroke {
		t.Error("edit aliases the caller's glyph")
	}
}

func TestExport(t *testing.T) {
	w := newWorkspace(t)
	w.SetOverlay(dotOverlay())

	buf := &bytes.Buffer{}
	if err := w.ExportMCM(buf); err != nil {
		t.Fatal(err)
	}
	font, err := mcm.Decode(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	// stroke pixels are exported as black
	want := w.Result().Glyphs['A'].Clone()
	for i, p := range want {
		if p == osdfont.Stroke {
			want[i] = osdfont.Black
		}
	}
	if d := cmp.Diff(want, font.Glyphs['A']); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	buf.Reset()
	if err := w.ExportPNG(buf, 2); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("not a PNG file")
	}
}

func TestPreviewCache(t *testing.T) {
	w := newWorkspace(t)
	w.SetOverlay(dotOverlay())

	img1, err := w.Preview("AA")
	if err != nil {
		t.Fatal(err)
	}
	img2, err := w.Preview("AA")
	if err != nil {
		t.Fatal(err)
	}
	if img1 != img2 {
		t.Error("preview not cached")
	}

	w.NudgeReplaced(0, 1)
	if w.previews.Len() != 0 {
		t.Error("preview cache not invalidated")
	}
	img3, err := w.Preview("AA")
	if err != nil {
		t.Fatal(err)
	}
	if img3 == img1 {
		t.Error("stale preview returned")
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := NewCache[int](StrokeModeChanged)
	c.Put("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get: %d, %t", v, ok)
	}
	if c.Invalidate(LayersChanged) || c.Len() != 1 {
		t.Error("cache cleared for unrelated reason")
	}
	if !c.Invalidate(StrokeModeChanged) || c.Len() != 0 {
		t.Error("cache not cleared")
	}
	if SwapSourcesChanged.String() != "swap sources changed" || Reason(0).String() != "unknown" {
		t.Error("wrong reason names")
	}
}
