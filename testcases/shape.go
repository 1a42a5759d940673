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

package testcases

import (
	"image"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/padicon/shape"
)

// shapeCases exercise the outlines generated by the shape package.
var shapeCases = append(filledShapes, strokeShapes(strokedShapes)...)

var filledShapes = []TestCase{
	{
		Name:   "rounded_rect",
		Path:   shape.RoundedRect{Box: shape.Box{X0: 6, Y0: 4, X1: 57, Y1: 59}, Radius: 9}.Path(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rounded_rect_clamped",
		Path:   shape.RoundedRect{Box: shape.Box{X0: 20, Y0: 28, X1: 43, Y1: 35}, Radius: 40}.Path(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse",
		Path:   shape.Ellipse{Box: shape.Box{X0: 4, Y0: 16, X1: 59, Y1: 47}}.Path(),
		Width:  64,
		Height: 64,
	},
	{
		Name: "polygon",
		Path: shape.Polygon{Points: []image.Point{
			{X: 40, Y: 50}, {X: 34, Y: 40}, {X: 52, Y: 22}, {X: 60, Y: 34}, {X: 46, Y: 48},
		}}.Path(),
		Width:  64,
		Height: 64,
	},
}

type geometryCase struct {
	name string
	geom shape.Geometry
}

// strokedShapes are the geometries which paint with a pen.
var strokedShapes = []geometryCase{
	{"ring", shape.Ring{Box: shape.Box{X0: 8, Y0: 8, X1: 55, Y1: 55}, Width: 7}},
	{"ring_solid", shape.Ring{Box: shape.Box{X0: 20, Y0: 20, X1: 27, Y1: 27}, Width: 4}},
	{"line_butt", shape.Line{From: image.Pt(8, 12), To: image.Pt(55, 40), Width: 5, Cap: graphics.LineCapButt}},
	{"line_square", shape.Line{From: image.Pt(8, 32), To: image.Pt(55, 32), Width: 3, Cap: graphics.LineCapSquare}},
	{"line_round", shape.Line{From: image.Pt(12, 50), To: image.Pt(50, 14), Width: 9, Cap: graphics.LineCapRound}},
}

func strokeShapes(shapes []geometryCase) []TestCase {
	var res []TestCase
	for _, s := range shapes {
		res = append(res, TestCase{
			Name:   s.name,
			Path:   s.geom.Path(),
			Width:  64,
			Height: 64,
			Stroke: s.geom.Pen(),
		})
	}
	return res
}
