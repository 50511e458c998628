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
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"seehuhn.de/go/osdfont"
)

// YAFFOptions control the import of YAFF text fonts.
// The zero value selects the 12x18 MAX7456 cell.
type YAFFOptions struct {
	CellWidth  int
	CellHeight int
}

// ImportStats summarizes a text font import.
type ImportStats struct {
	BlocksFound        int // glyph blocks with a valid bitmap
	LabelsUnsupported  int // blocks without a usable code point label
	OversizeSkipped    int // code points skipped because the glyph does not fit the cell
	CodePointsAssigned int
	GlyphsImported     int
}

type yaffGlyph struct {
	labels []string
	rows   []string
}

var (
	yaffProperty   = regexp.MustCompile(`^[A-Za-z0-9_.-]+\s*:\s+\S`)
	yaffLabelEnd   = regexp.MustCompile(`:\s*$`)
	yaffBitmapRow  = regexp.MustCompile(`^[.@]+$`)
	yaffUnicodeCP  = regexp.MustCompile(`(?i)^u\+([0-9a-f]+)$`)
	yaffNumberList = regexp.MustCompile(`(?i)^(?:0x[0-9a-f]+|\d+)(?:\s*,\s*(?:0x[0-9a-f]+|\d+))*$`)
)

// ReadYAFF imports glyphs from a font in YAFF text format.
//
// Glyphs are labelled by Unicode labels ("u+0041", comma separated lists
// allowed) or by numeric code point labels ("0x41", "65").  Tag labels are
// ignored.  Bitmaps use '.' for paper and '@' for ink.  Glyphs which do not
// fit into the cell are skipped; all other glyphs are centered.  Only code
// points in the Basic Multilingual Plane are kept.
func ReadYAFF(r io.Reader, opts *YAFFOptions) (*Font, *ImportStats, error) {
	if opts == nil {
		opts = &YAFFOptions{}
	}
	cellW, cellH := cellSize(opts.CellWidth, opts.CellHeight)

	// Strip a byte order mark and replace invalid UTF-8.
	body, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, nil, err
	}

	defs := extractYAFFGlyphs(string(body))
	font := New("", cellW, cellH)
	stats := &ImportStats{BlocksFound: len(defs)}
	logger := osdfont.Logger()

	for _, def := range defs {
		var cps []int
		for _, label := range def.labels {
			cps = append(cps, parseYAFFLabel(label)...)
		}
		if len(cps) == 0 {
			stats.LabelsUnsupported++
			continue
		}

		w, h := len(def.rows[0]), len(def.rows)
		if w > cellW || h > cellH || w > 32 {
			stats.OversizeSkipped += len(cps)
			logger.Warn("overlay: skipping oversize YAFF glyph",
				"labels", def.labels, "width", w, "height", h)
			continue
		}

		rows := make([]uint32, h)
		for y, row := range def.rows {
			var bits uint32
			for i := 0; i < len(row); i++ {
				bits <<= 1
				if row[i] == '@' {
					bits |= 1
				}
			}
			rows[y] = bits
		}

		for _, cp := range cps {
			if cp > 0xFFFF {
				continue
			}
			font.Set(rune(cp), &Glyph{
				Size:   [2]int{w, h},
				Offset: centered(w, h, cellW, cellH),
				Rows:   rows,
			})
			stats.CodePointsAssigned++
		}
	}
	stats.GlyphsImported = len(font.Glyphs)

	logger.Debug("overlay: imported YAFF font",
		"blocks", stats.BlocksFound,
		"glyphs", stats.GlyphsImported,
		"unsupported", stats.LabelsUnsupported,
		"oversize", stats.OversizeSkipped)
	return font, stats, nil
}

func isIndented(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}

// extractYAFFGlyphs returns all glyph blocks with a well-formed bitmap.
func extractYAFFGlyphs(text string) []yaffGlyph {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	var defs []yaffGlyph
	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
			(!isIndented(line) && yaffProperty.MatchString(trimmed)) {
			i++
			continue
		}

		if isIndented(line) || !yaffLabelEnd.MatchString(line) {
			i++
			continue
		}

		var labels []string
		for i < len(lines) {
			l := lines[i]
			if isIndented(l) || !yaffLabelEnd.MatchString(l) {
				break
			}
			labels = append(labels, strings.TrimSpace(yaffLabelEnd.ReplaceAllString(l, "")))
			i++
		}

		var rows []string
		for i < len(lines) {
			l := lines[i]
			if !isIndented(l) {
				break
			}
			if body := strings.TrimSpace(l); body != "" {
				rows = append(rows, body)
			}
			i++
		}

		if len(rows) == 0 || (len(rows) == 1 && rows[0] == "-") {
			continue
		}
		valid := true
		for _, row := range rows {
			if !yaffBitmapRow.MatchString(row) || len(row) != len(rows[0]) {
				valid = false
				break
			}
		}
		if valid {
			defs = append(defs, yaffGlyph{labels: labels, rows: rows})
		}
	}
	return defs
}

// parseYAFFLabel returns the code points named by a label.
// Tag labels and malformed labels give no code points.
func parseYAFFLabel(label string) []int {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil
	}

	var res []int
	if len(label) >= 2 && strings.EqualFold(label[:2], "u+") {
		for _, part := range strings.Split(label, ",") {
			m := yaffUnicodeCP.FindStringSubmatch(strings.TrimSpace(part))
			if m == nil {
				continue
			}
			cp, err := strconv.ParseUint(m[1], 16, 32)
			if err != nil {
				continue
			}
			res = append(res, int(cp))
		}
		return res
	}

	if yaffNumberList.MatchString(label) {
		for _, part := range strings.Split(label, ",") {
			part = strings.TrimSpace(part)
			base := 10
			if len(part) > 2 && strings.EqualFold(part[:2], "0x") {
				part = part[2:]
				base = 16
			}
			cp, err := strconv.ParseUint(part, base, 32)
			if err != nil {
				continue
			}
			res = append(res, int(cp))
		}
	}
	return res
}
