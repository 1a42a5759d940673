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

// Package testcases holds the geometry used to test the rasteriser and
// the painting backends.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/padicon/shape"
)

// TestCase is a path to be filled with the nonzero winding rule, or to be
// stroked.
type TestCase struct {
	Name   string     // lowercase a-z and _ only
	Path   *path.Data // device coordinates
	Width  int        // canvas width in pixels
	Height int        // canvas height in pixels
	Stroke *shape.Pen // nil means fill
}

// pt is a shorthand for vec.Vec2{X: x, Y: y}.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
