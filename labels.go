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

import (
	"fmt"
	"strings"
)

// LabelKind classifies a glyph slot.
type LabelKind int

// These are the possible label kinds.
const (
	LabelUnmapped LabelKind = iota
	LabelSymbol             // named firmware symbol
	LabelASCII              // printable text section 0x20..0x5F
	LabelLogo               // splash logo tiles 0xA0..0xFE
)

// GlyphLabel describes the use of a glyph slot in Betaflight fonts.
type GlyphLabel struct {
	Kind  LabelKind
	Names []string
	Note  string
}

func (l GlyphLabel) String() string {
	s := strings.Join(l.Names, " / ")
	if l.Note != "" {
		s += " (" + l.Note + ")"
	}
	return s
}

// Label returns the description of glyph slot idx.
func Label(idx int) GlyphLabel {
	if l, ok := symbolLabels[idx]; ok {
		l.Kind = LabelSymbol
		return l
	}
	if idx >= 0x20 && idx <= 0x5F {
		note := "SPACE"
		if idx != SpaceIndex {
			note = `"` + string(rune(idx)) + `"`
		}
		return GlyphLabel{Kind: LabelASCII, Names: []string{"ASCII"}, Note: note}
	}
	if idx >= 0xA0 && idx <= 0xFE {
		return GlyphLabel{
			Kind:  LabelLogo,
			Names: []string{"LOGO_TILE"},
			Note:  fmt.Sprintf("Logo tile %d (0x%02X)", idx-0xA0, idx),
		}
	}
	return GlyphLabel{Kind: LabelUnmapped, Names: []string{"(unmapped)"}}
}

var symbolLabels = map[int]GlyphLabel{
	0x01: {Names: []string{"SYM_RSSI"}, Note: "RSSI Icon"},
	0x02: {Names: []string{"SYM_AH_RIGHT"}},
	0x03: {Names: []string{"SYM_AH_LEFT", "SYM_CURSOR"}},
	0x04: {Names: []string{"SYM_THR"}, Note: "Throttle icon"},
	0x05: {Names: []string{"SYM_OVER_HOME"}},
	0x06: {Names: []string{"SYM_VOLT"}},
	0x07: {Names: []string{"SYM_MAH"}},
	0x08: {Names: []string{"SYM_STICK_OVERLAY_SPRITE_HIGH"}, Note: "Stick overlay"},
	0x09: {Names: []string{"SYM_STICK_OVERLAY_SPRITE_MID"}, Note: "Stick overlay"},
	0x0A: {Names: []string{"SYM_STICK_OVERLAY_SPRITE_LOW"}, Note: "Stick overlay"},
	0x0B: {Names: []string{"SYM_STICK_OVERLAY_CENTER"}, Note: "Stick overlay"},
	0x0C: {Names: []string{"SYM_M"}},
	0x0D: {Names: []string{"SYM_F"}, Note: "Fahrenheit"},
	0x0E: {Names: []string{"SYM_C"}, Note: "Celsius"},
	0x0F: {Names: []string{"SYM_FT"}},
	0x10: {Names: []string{"SYM_BBLOG"}, Note: "Black Box Log"},
	0x11: {Names: []string{"SYM_HOMEFLAG"}},
	0x12: {Names: []string{"SYM_RPM"}},
	0x13: {Names: []string{"SYM_AH_DECORATION"}, Note: "Horizon Sidebars"},
	0x14: {Names: []string{"SYM_ROLL"}},
	0x15: {Names: []string{"SYM_PITCH"}},
	0x16: {Names: []string{"SYM_STICK_OVERLAY_VERTICAL"}, Note: "Stick overlay"},
	0x17: {Names: []string{"SYM_STICK_OVERLAY_HORIZONTAL"}, Note: "Stick overlay"},
	0x18: {Names: []string{"SYM_HEADING_N"}, Note: "Compass bar"},
	0x19: {Names: []string{"SYM_HEADING_S"}, Note: "Compass bar"},
	0x1A: {Names: []string{"SYM_HEADING_E"}, Note: "Compass bar"},
	0x1B: {Names: []string{"SYM_HEADING_W"}, Note: "Compass bar"},
	0x1C: {Names: []string{"SYM_HEADING_DIVIDED_LINE"}, Note: "Compass bar"},
	0x1D: {Names: []string{"SYM_HEADING_LINE"}, Note: "Compass bar"},
	0x1E: {Names: []string{"SYM_SAT_L"}, Note: "GPS icon left"},
	0x1F: {Names: []string{"SYM_SAT_R"}, Note: "GPS icon right"},
	0x2D: {Names: []string{"SYM_HYPHEN"}},
	0x57: {Names: []string{"SYM_WATT"}, Note: "Also ASCII 'W'"},
	0x60: {Names: []string{"SYM_ARROW_SOUTH"}, Note: "Direction to home, crash flip, etc"},
	0x61: {Names: []string{"SYM_ARROW_2"}, Note: "Calculated from SYM_ARROW_SOUTH + heading"},
	0x62: {Names: []string{"SYM_ARROW_3"}, Note: "Calculated from SYM_ARROW_SOUTH + heading"},
	0x63: {Names: []string{"SYM_ARROW_4"}, Note: "Calculated from SYM_ARROW_SOUTH + heading"},
	0x64: {Names: []string{"SYM_ARROW_EAST"}, Note: "Calculated from SYM_ARROW_SOUTH + heading"},
	0x65: {Names: []string{"SYM_ARROW_6"}, Note: "Calculated from SYM_ARROW_SOUTH + heading"},
	0x66: {Names: []string{"SYM_ARROW_7"}, Note: "Calculated from SYM_ARROW_SOUTH + heading"},
	0x67: {Names: []string{"SYM_ARROW_8"}, Note: "Calculated from SYM_ARROW_SOUTH + heading"},
	0x68: {Names: []string{"SYM_ARROW_NORTH"}, Note: "Calculated from SYM_ARROW_SOUTH + heading"},
	0x69: {Names: []string{"SYM_ARROW_10"}, Note: "Calculated from SYM_ARROW_SOUTH + heading"},
	0x6A: {Names: []string{"SYM_ARROW_11"}, Note: "Calculated from SYM_ARROW_SOUTH + heading"},
	0x6B: {Names: []string{"SYM_ARROW_12"}, Note: "Calculated from SYM_ARROW_SOUTH + heading"},
	0x6C: {Names: []string{"SYM_ARROW_WEST"}, Note: "Calculated from SYM_ARROW_SOUTH + heading"},
	0x6D: {Names: []string{"SYM_ARROW_14"}, Note: "Calculated from SYM_ARROW_SOUTH + heading"},
	0x6E: {Names: []string{"SYM_ARROW_15"}, Note: "Calculated from SYM_ARROW_SOUTH + heading"},
	0x6F: {Names: []string{"SYM_ARROW_16"}, Note: "Calculated from SYM_ARROW_SOUTH + heading"},
	0x70: {Names: []string{"SYM_SPEED"}},
	0x71: {Names: []string{"SYM_TOTAL_DISTANCE"}},
	0x72: {Names: []string{"SYM_AH_CENTER_LINE"}, Note: "Crosshairs"},
	0x73: {Names: []string{"SYM_AH_CENTER"}, Note: "Crosshairs"},
	0x74: {Names: []string{"SYM_AH_CENTER_LINE_RIGHT"}, Note: "Crosshairs"},
	0x7A: {Names: []string{"SYM_TEMPERATURE"}},
	0x7F: {Names: []string{"SYM_ALTITUDE"}},
	0x80: {Names: []string{"SYM_AH_BAR9_0"}},
	0x81: {Names: []string{"SYM_AH_BAR9_1"}, Note: "Calculated in AH using SYM_AH_BAR9_0 as base"},
	0x82: {Names: []string{"SYM_AH_BAR9_2"}, Note: "Calculated in AH using SYM_AH_BAR9_0 as base"},
	0x83: {Names: []string{"SYM_AH_BAR9_3"}, Note: "Calculated in AH using SYM_AH_BAR9_0 as base"},
	0x84: {Names: []string{"SYM_AH_BAR9_4"}, Note: "Calculated in AH using SYM_AH_BAR9_0 as base"},
	0x85: {Names: []string{"SYM_AH_BAR9_5"}, Note: "Calculated in AH using SYM_AH_BAR9_0 as base"},
	0x86: {Names: []string{"SYM_AH_BAR9_6"}, Note: "Calculated in AH using SYM_AH_BAR9_0 as base"},
	0x87: {Names: []string{"SYM_AH_BAR9_7"}, Note: "Calculated in AH using SYM_AH_BAR9_0 as base"},
	0x88: {Names: []string{"SYM_AH_BAR9_8"}, Note: "Calculated in AH using SYM_AH_BAR9_0 as base"},
	0x89: {Names: []string{"SYM_LAT"}},
	0x8A: {Names: []string{"SYM_PB_START"}},
	0x8B: {Names: []string{"SYM_PB_FULL"}},
	0x8C: {Names: []string{"SYM_PB_HALF"}},
	0x8D: {Names: []string{"SYM_PB_EMPTY"}},
	0x8E: {Names: []string{"SYM_PB_END"}},
	0x8F: {Names: []string{"SYM_PB_CLOSE"}},
	0x90: {Names: []string{"SYM_BATT_FULL"}, Note: "Calculated from SYM_BATT_EMPTY"},
	0x91: {Names: []string{"SYM_BATT_5"}, Note: "Calculated from SYM_BATT_EMPTY"},
	0x92: {Names: []string{"SYM_BATT_4"}, Note: "Calculated from SYM_BATT_EMPTY"},
	0x93: {Names: []string{"SYM_BATT_3"}, Note: "Calculated from SYM_BATT_EMPTY"},
	0x94: {Names: []string{"SYM_BATT_2"}, Note: "Calculated from SYM_BATT_EMPTY"},
	0x95: {Names: []string{"SYM_BATT_1"}, Note: "Calculated from SYM_BATT_EMPTY"},
	0x96: {Names: []string{"SYM_BATT_EMPTY"}},
	0x97: {Names: []string{"SYM_MAIN_BATT"}},
	0x98: {Names: []string{"SYM_LON"}},
	0x99: {Names: []string{"SYM_FTPS"}, Note: "ft per second (vario)"},
	0x9A: {Names: []string{"SYM_AMP"}},
	0x9B: {Names: []string{"SYM_ON_M"}},
	0x9C: {Names: []string{"SYM_FLY_M"}},
	0x9D: {Names: []string{"SYM_MPH"}},
	0x9E: {Names: []string{"SYM_KPH"}},
	0x9F: {Names: []string{"SYM_MPS"}, Note: "meters per second (vario)"},
	0xA0: {Names: []string{"LOGO_START"}, Note: "Logo starts here"},
	0xFF: {Names: []string{"SYM_END_OF_FONT"}},
}
