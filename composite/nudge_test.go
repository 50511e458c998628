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

package composite

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/osdfont"
)

func TestClamp(t *testing.T) {
	cases := []struct{ in, out int }{
		{0, 0}, {6, 6}, {7, 6}, {-6, -6}, {-100, -6}, {3, 3},
	}
	for _, c := range cases {
		if got := Clamp(c.in); got != c.out {
			t.Errorf("Clamp(%d) = %d, want %d", c.in, got, c.out)
		}
	}
}

func TestMoveReplacedStaysInRange(t *testing.T) {
	var n Nudge
	for i := 0; i < 11; i++ {
		p := n.MoveReplaced(2, -2)
		if p.X > MaxNudge || p.Y < -MaxNudge {
			t.Fatalf("step %d: offset %v out of range", i, p)
		}
	}
	if n.Replaced != image.Pt(6, -6) {
		t.Errorf("got %v, want (6,-6)", n.Replaced)
	}
	n.MoveReplaced(-1, 1)
	if n.Replaced != image.Pt(5, -5) {
		t.Errorf("got %v, want (5,-5)", n.Replaced)
	}
}

func TestMoveGlyphs(t *testing.T) {
	var n Nudge
	for i := 0; i < 5; i++ {
		n.MoveGlyphs(3, 0, 65, 66)
	}
	n.MoveGlyphs(0, 1, 66, osdfont.NumGlyphs, -1)
	n.MoveGlyphs(1, 1, 67)
	n.MoveGlyphs(-1, -1, 67)

	want := map[int]image.Point{65: {6, 0}, 66: {6, 1}}
	if d := cmp.Diff(want, n.PerGlyph); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	n.ResetGlyphs(65)
	if _, ok := n.PerGlyph[65]; ok || len(n.PerGlyph) != 1 {
		t.Errorf("ResetGlyphs(65) left %v", n.PerGlyph)
	}
	n.ResetGlyphs()
	if len(n.PerGlyph) != 0 {
		t.Errorf("ResetGlyphs() left %v", n.PerGlyph)
	}
}

func TestNudgeClone(t *testing.T) {
	n := Nudge{Replaced: image.Pt(1, 2), PerGlyph: map[int]image.Point{3: {4, 5}}}
	c := n.Clone()
	c.MoveGlyphs(1, 0, 3)
	if n.PerGlyph[3] != image.Pt(4, 5) {
		t.Error("clone shares the per-glyph map")
	}
}
