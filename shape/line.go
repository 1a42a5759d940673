// seehuhn.de/go/padicon - procedural notepad icon generator
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

package shape

import (
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

// Line is a straight line between the centres of two pixels.
type Line struct {
	From, To image.Point
	Width    int
	Cap      graphics.LineCapStyle
}

// Path implements the [Geometry] interface.
// The path is the centre line of the segment.
func (s Line) Path() *path.Data {
	return (&path.Data{}).MoveTo(center(s.From)).LineTo(center(s.To))
}

// Pen implements the [Geometry] interface.
// Lines of zero width are invisible.
func (s Line) Pen() *Pen {
	return &Pen{
		Width: float64(max(s.Width, 0)),
		Cap:   s.Cap,
		Join:  graphics.LineJoinMiter,
	}
}

// Coords implements the [Geometry] interface.
func (s Line) Coords() []int {
	return []int{s.From.X, s.From.Y, s.To.X, s.To.Y, s.Width}
}
