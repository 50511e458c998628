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
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/osdfont"
	"seehuhn.de/go/osdfont/internal/debug"
)

func TestKey(t *testing.T) {
	cases := []struct {
		cp  rune
		key string
	}{
		{'A', "U+0041"},
		{0, "U+0000"},
		{0xFFFF, "U+FFFF"},
		{0x1F600, "U+1F600"},
	}
	for _, c := range cases {
		if got := Key(c.cp); got != c.key {
			t.Errorf("Key(%d) = %q, want %q", c.cp, got, c.key)
		}
		cp, ok := ParseKey(c.key)
		if !ok || cp != c.cp {
			t.Errorf("ParseKey(%q) = %d, %t", c.key, cp, ok)
		}
	}
	for _, bad := range []string{"", "U+", "u+0041", "0041", "U+XYZ"} {
		if _, ok := ParseKey(bad); ok {
			t.Errorf("ParseKey(%q) succeeded", bad)
		}
	}
}

func TestHasInk(t *testing.T) {
	cases := []struct {
		g    Glyph
		want bool
	}{
		{Glyph{Size: [2]int{3, 2}, Rows: []uint32{0, 0b100}}, true},
		{Glyph{Size: [2]int{3, 2}, Rows: []uint32{0, 0}}, false},
		{Glyph{Size: [2]int{3, 2}, Rows: []uint32{0b1000, 0}}, false}, // outside the width
		{Glyph{Size: [2]int{3, 1}, Rows: []uint32{0, 1}}, false},      // outside the height
		{Glyph{Size: [2]int{32, 1}, Rows: []uint32{1 << 31}}, true},
		{Glyph{Size: [2]int{0, 0}}, false},
		{Glyph{Size: [2]int{3, 5}, Rows: []uint32{1}}, true},
	}
	for i, c := range cases {
		if got := c.g.HasInk(); got != c.want {
			t.Errorf("%d: HasInk() = %t, want %t", i, got, c.want)
		}
	}
}

func TestRenderNudge(t *testing.T) {
	g := &Glyph{Size: [2]int{1, 1}, Offset: [2]int{2, 3}, Rows: []uint32{1}}
	cell := g.Render(12, 18, image.Pt(-1, 2))
	for i, p := range cell {
		want := osdfont.Background
		if i == 5*12+1 {
			want = osdfont.White
		}
		if p != want {
			t.Errorf("pixel %d: got %s, want %s", i, p, want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	f1 := New("test", 12, 18)
	f1.Set('A', &Glyph{Size: [2]int{3, 2}, Offset: [2]int{4, 8}, Rows: []uint32{5, 2}})
	f1.Set('0', &Glyph{Size: [2]int{1, 1}, Offset: [2]int{0, 0}, Rows: []uint32{1}})

	buf := &bytes.Buffer{}
	err := f1.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	if i, j := strings.Index(buf.String(), "U+0030"), strings.Index(buf.String(), "U+0041"); i > j {
		t.Error("keys not sorted")
	}

	f2, err := Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(f1, f2); d != "" {
		t.Errorf("round trip differs (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]rune{'0', 'A'}, f2.CodePoints()); d != "" {
		t.Errorf("wrong code points (-want +got):\n%s", d)
	}
}

func TestReadAsset(t *testing.T) {
	const asset = `{"glyphs": {"U+0041": {"size": [2, 1], "offset": [5, 8], "rows": [3]}, "U+0042": null}}`
	f, err := Read(strings.NewReader(asset))
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Glyphs) != 1 {
		t.Fatalf("got %d glyphs, want 1", len(f.Glyphs))
	}
	g := f.Lookup('A')
	if g == nil || g.Size != [2]int{2, 1} || g.Offset != [2]int{5, 8} {
		t.Errorf("unexpected glyph %+v", g)
	}
	if f.Lookup('B') != nil {
		t.Error("null glyph was kept")
	}

	_, err = Read(strings.NewReader("{"))
	if err == nil {
		t.Error("truncated JSON accepted")
	}
}

const testYAFF = "\ufeff# a test font\n" +
	"name: Test\n" +
	"spacing: monospace\n" +
	"\n" +
	"u+0041:\n" +
	"    .@.\n" +
	"    @.@\n" +
	"    @@@\n" +
	"    @.@\n" +
	"\n" +
	"0x42, 0x43:\r\n" +
	"    @@\r\n" +
	"    @@\r\n" +
	"\n" +
	"default:\n" +
	"    @\n" +
	"\n" +
	"u+0044:\n" +
	"    -\n" +
	"\n" +
	"u+0045:\n" +
	"    @@@@@@@@@@@@@\n" +
	"\n" +
	"u+0046:\n" +
	"70:\n" +
	"u+0047:\n" +
	"    @\n" +
	"\n" +
	"u+0048:\n" +
	"    @@.\n" +
	"    @\n"

func TestReadYAFF(t *testing.T) {
	f, stats, err := ReadYAFF(strings.NewReader(testYAFF), nil)
	if err != nil {
		t.Fatal(err)
	}

	wantStats := &ImportStats{
		BlocksFound:        5,
		LabelsUnsupported:  1,
		OversizeSkipped:    1,
		CodePointsAssigned: 6,
		GlyphsImported:     5,
	}
	if d := cmp.Diff(wantStats, stats); d != "" {
		t.Errorf("wrong stats (-want +got):\n%s", d)
	}

	wantA := &Glyph{
		Size:   [2]int{3, 4},
		Offset: [2]int{4, 7},
		Rows:   []uint32{0b010, 0b101, 0b111, 0b101},
	}
	if d := cmp.Diff(wantA, f.Lookup('A')); d != "" {
		t.Errorf("wrong glyph A (-want +got):\n%s", d)
	}
	for _, cp := range []rune{'B', 'C', 'F', 'G'} {
		if f.Lookup(cp) == nil {
			t.Errorf("missing glyph %c", cp)
		}
	}
	for _, cp := range []rune{'D', 'E', 'H'} {
		if f.Lookup(cp) != nil {
			t.Errorf("unexpected glyph %c", cp)
		}
	}
}

func TestYAFFLabels(t *testing.T) {
	cases := []struct {
		label string
		want  []int
	}{
		{"u+0041", []int{0x41}},
		{"U+0041, u+0061", []int{0x41, 0x61}},
		{"0x41", []int{0x41}},
		{"65, 0X42", []int{65, 0x42}},
		{"010", []int{10}},
		{"default", nil},
		{"'A'", nil},
		{"", nil},
	}
	for _, c := range cases {
		got := parseYAFFLabel(c.label)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%q: (-want +got):\n%s", c.label, d)
		}
	}
}

func TestYAFFCellSize(t *testing.T) {
	f, stats, err := ReadYAFF(strings.NewReader(testYAFF), &YAFFOptions{CellWidth: 2, CellHeight: 2})
	if err != nil {
		t.Fatal(err)
	}
	if f.Lookup('A') != nil {
		t.Error("oversize glyph A was imported")
	}
	if g := f.Lookup('B'); g == nil || g.Offset != [2]int{0, 0} {
		t.Errorf("unexpected glyph B %+v", g)
	}
	if stats.OversizeSkipped != 2 {
		t.Errorf("got %d oversize glyphs, want 2", stats.OversizeSkipped)
	}
}

func FuzzYAFF(f *testing.F) {
	f.Add(testYAFF)
	f.Add("u+0041:\n  @\n")
	f.Fuzz(func(t *testing.T, text string) {
		font, _, err := ReadYAFF(strings.NewReader(text), nil)
		if err != nil {
			t.Fatal(err)
		}
		for key, g := range font.Glyphs {
			if g.Size[0] > 12 || g.Size[1] > 18 || len(g.Rows) != g.Size[1] {
				t.Errorf("%s: invalid geometry %v", key, g.Size)
			}
			g.Render(12, 18, image.Point{})
		}
	})
}

func TestFromC64(t *testing.T) {
	raw := []byte{
		0x18, 0x24, 0x42, 0x7E, 0x42, 0x42, 0x42, 0x00,
		0x7C, 0x42, 0x42, 0x7C, 0x42, 0x42, 0x7C, 0x00,
	}
	f, err := FromC64(raw, &C64Options{CodePointBase: 'A'})
	if err != nil {
		t.Fatal(err)
	}
	want := &Glyph{
		Size:   [2]int{8, 8},
		Offset: [2]int{2, 5},
		Rows:   []uint32{0x18, 0x24, 0x42, 0x7E, 0x42, 0x42, 0x42, 0x00},
	}
	if d := cmp.Diff(want, f.Lookup('A')); d != "" {
		t.Errorf("wrong glyph (-want +got):\n%s", d)
	}
	if f.Lookup('B') == nil || f.Lookup('C') != nil {
		t.Error("wrong glyph set")
	}

	fnt := append([]byte{0xFF, 0xFF, 0, 0, 0, 0}, raw...)
	f, err = FromC64(fnt, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want.Rows, f.Lookup(0).Rows); d != "" {
		t.Errorf("header not skipped (-want +got):\n%s", d)
	}

	f, err = FromC64(raw, &C64Options{MaxGlyphs: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Glyphs) != 1 {
		t.Errorf("got %d glyphs, want 1", len(f.Glyphs))
	}

	_, err = FromC64(raw[:13], &C64Options{})
	if err == nil {
		t.Error("odd sized charset accepted")
	}
	_, err = FromC64(raw, &C64Options{HeaderBytes: 100})
	if err == nil {
		t.Error("oversize header accepted")
	}
}

const testBDF = `STARTFONT 2.1
FONT -test-fixed-medium-r-normal--8-80-75-75-c-60-iso10646-1
SIZE 8 75 75
FONTBOUNDINGBOX 6 8 0 -1
STARTPROPERTIES 2
FONT_ASCENT 7
FONT_DESCENT 1
ENDPROPERTIES
CHARS 1
STARTCHAR A
ENCODING 65
SWIDTH 500 0
DWIDTH 6 0
BBX 6 8 0 -1
BITMAP
00
20
50
88
F8
88
88
00
ENDCHAR
ENDFONT
`

func TestFromBDF(t *testing.T) {
	f, err := FromBDF([]byte(testBDF), nil)
	if err != nil {
		t.Fatal(err)
	}
	g := f.Lookup('A')
	if g == nil {
		t.Fatal("missing glyph A")
	}
	if g.Size[0] > 12 || g.Size[1] > 18 || len(g.Rows) != g.Size[1] {
		t.Fatalf("invalid geometry %v", g.Size)
	}
	cell := g.Render(12, 18, image.Point{})
	ink := 0
	for _, p := range cell {
		if p == osdfont.White {
			ink++
		}
	}
	if ink != 14 {
		t.Errorf("got %d ink pixels, want 14", ink)
	}
}

func TestFromFace(t *testing.T) {
	f, err := FromFace(basicfont.Face7x13, &FaceOptions{Runes: []rune("AHx ")})
	if err != nil {
		t.Fatal(err)
	}

	bottom := -1
	for _, r := range "AHx" {
		g := f.Lookup(r)
		if g == nil || !g.HasInk() {
			t.Fatalf("missing glyph %c", r)
		}
		if g.Size[0] > 7 || g.Offset[1] < 0 || g.Offset[1]+g.Size[1] > 18 {
			t.Errorf("%c: glyph outside the cell: %+v", r, g)
		}
		b := g.Offset[1] + g.Size[1]
		if bottom >= 0 && b != bottom {
			t.Errorf("%c: glyph not on the baseline", r)
		}
		bottom = b
	}

	space := f.Lookup(' ')
	if space == nil || space.HasInk() {
		t.Error("space should be present and blank")
	}
	if f.Lookup('a') != nil {
		t.Error("unexpected lower case glyph")
	}
}

func TestFromTrueType(t *testing.T) {
	f, err := FromTrueType(goregular.TTF, &FaceOptions{Runes: []rune("AB01")})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range "AB01" {
		g := f.Lookup(r)
		if g == nil || !g.HasInk() {
			t.Fatalf("missing glyph %c", r)
		}
		cell := g.Render(12, 18, image.Point{})
		if cell.IsBlank() {
			t.Errorf("%c: rendered cell is blank", r)
		}
	}

	_, err = FromTrueType([]byte("not a font"), nil)
	if err == nil {
		t.Error("invalid font data accepted")
	}
}

func TestRenderedOverlayFitsFont(t *testing.T) {
	f, _, err := ReadYAFF(strings.NewReader(testYAFF), nil)
	if err != nil {
		t.Fatal(err)
	}
	base := debug.MakeFont(osdfont.Background)
	cell := f.Lookup('A').Render(base.Width, base.Height, image.Point{})
	if len(cell) != len(base.Glyphs['A']) {
		t.Errorf("cell has %d pixels, want %d", len(cell), len(base.Glyphs['A']))
	}
}
