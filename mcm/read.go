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

package mcm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/osdfont"
)

// Read decodes an MCM file.
//
// Lines may be terminated by CRLF or LF.  Blank lines are skipped and
// surrounding white space is ignored.  Only the first 256*64 byte lines are
// used; anything after them is not examined.
func Read(r io.Reader) (*osdfont.Font, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	if !scanner.Scan() {
		if err := scanErr(scanner, 1); err != nil {
			return nil, err
		}
		return nil, &FormatError{Reason: "missing " + Magic + " marker"}
	}
	lineNo++
	if string(bytes.TrimSpace(scanner.Bytes())) != Magic {
		return nil, &FormatError{Line: lineNo, Reason: "missing " + Magic + " marker"}
	}

	data := make([]byte, TotalBytes)
	n := 0
	for n < TotalBytes && scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		b, ok := parseBinaryByte(line)
		if !ok {
			return nil, &FormatError{
				Line:   lineNo,
				Reason: fmt.Sprintf("invalid byte line %q", line),
			}
		}
		data[n] = b
		n++
	}
	if err := scanErr(scanner, lineNo+1); err != nil {
		return nil, err
	}
	if n < TotalBytes {
		return nil, &FormatError{
			Reason: fmt.Sprintf("file too short: got %d byte lines, need %d", n, TotalBytes),
		}
	}

	font := &osdfont.Font{
		Width:  osdfont.CellWidth,
		Height: osdfont.CellHeight,
		Format: FormatTag,
	}
	for i := range font.Glyphs {
		font.Glyphs[i] = unpackGlyph(data[i*BytesPerGlyph : (i+1)*BytesPerGlyph])
	}

	osdfont.Logger().Debug("mcm: decoded font", "lines", lineNo)
	return font, nil
}

// parseBinaryByte converts a line of exactly eight '0'/'1' characters.
func parseBinaryByte(line []byte) (byte, bool) {
	if len(line) != 8 {
		return 0, false
	}
	var b byte
	for _, c := range line {
		b <<= 1
		switch c {
		case '0':
		case '1':
			b |= 1
		default:
			return 0, false
		}
	}
	return b, true
}

// scanErr returns the error which stopped the scanner.  Over-long lines
// are reported as a FormatError for the given line.
func scanErr(scanner *bufio.Scanner, lineNo int) error {
	err := scanner.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		return &FormatError{Line: lineNo, Reason: "line too long"}
	}
	return err
}
