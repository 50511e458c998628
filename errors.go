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

// ValidationError is returned when a font does not have the shape required
// by an operation, for example when encoding a font with the wrong cell size.
type ValidationError struct {
	Op     string
	Reason string
}

func (err *ValidationError) Error() string {
	return err.Op + ": " + err.Reason
}
