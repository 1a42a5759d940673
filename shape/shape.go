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

// Package shape builds the outlines of the drawing primitives used by the
// icon: rounded rectangles, ellipses, elliptic rings, polygons and lines.
//
// All primitives are specified in integer pixel coordinates. Pixel (x, y)
// occupies the unit square [x, x+1] × [y, y+1]. Boxes include both of their
// corner pixels, while polygon vertices and line end points are placed at
// pixel centres. Outlines are filled with the nonzero winding rule. Lines
// and rings are instead drawn by stroking their path with a [Pen].
package shape

import (
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// kappa is the control point distance for a cubic Bézier approximation of
// a quarter circle of radius 1.
const kappa = 0.5522847498307936

// Geometry is a drawing primitive.
type Geometry interface {
	// Path returns the path of the primitive in device coordinates.
	Path() *path.Data

	// Pen returns the pen used to stroke Path, or nil if Path is the
	// outline of an area to be filled.
	Pen() *Pen

	// Coords returns the integer parameters the primitive was built from.
	Coords() []int
}

// Pen describes how a path is stroked.
type Pen struct {
	Width float64
	Cap   graphics.LineCapStyle
	Join  graphics.LineJoinStyle
}

// Box is an axis-aligned box of pixels, including the pixels at (X0, Y0)
// and (X1, Y1).
type Box struct {
	X0, Y0, X1, Y1 int
}

// Normalize returns a copy of b where X1 >= X0 and Y1 >= Y0.
// Inverted coordinates are collapsed onto X0 and Y0.
func (b Box) Normalize() Box {
	b.X1 = max(b.X1, b.X0)
	b.Y1 = max(b.Y1, b.Y0)
	return b
}

// Offset returns b moved by (dx, dy).
func (b Box) Offset(dx, dy int) Box {
	return Box{b.X0 + dx, b.Y0 + dy, b.X1 + dx, b.Y1 + dy}
}

// Rect returns the area covered by the pixels of the normalized box.
func (b Box) Rect() rect.Rect {
	b = b.Normalize()
	return rect.Rect{
		LLx: float64(b.X0),
		LLy: float64(b.Y0),
		URx: float64(b.X1 + 1),
		URy: float64(b.Y1 + 1),
	}
}

func (b Box) coords() []int {
	return []int{b.X0, b.Y0, b.X1, b.Y1}
}

// RoundedRect is a box with circular corners.
type RoundedRect struct {
	Box    Box
	Radius int
}

// Path implements the [Geometry] interface.
// The radius is clamped to half the shorter side of the box.
func (s RoundedRect) Path() *path.Data {
	r := s.Box.Rect()
	w := r.URx - r.LLx
	h := r.URy - r.LLy
	rad := min(float64(max(s.Radius, 0)), w/2, h/2)
	return appendRoundedRect(&path.Data{}, r, rad)
}

// Pen implements the [Geometry] interface.
func (s RoundedRect) Pen() *Pen { return nil }

// Coords implements the [Geometry] interface.
func (s RoundedRect) Coords() []int {
	return append(s.Box.coords(), s.Radius)
}

// Ellipse is the ellipse inscribed in a box.
type Ellipse struct {
	Box Box
}

// Path implements the [Geometry] interface.
func (s Ellipse) Path() *path.Data {
	return appendEllipse(&path.Data{}, s.Box.Rect())
}

// Pen implements the [Geometry] interface.
func (s Ellipse) Pen() *Pen { return nil }

// Coords implements the [Geometry] interface.
func (s Ellipse) Coords() []int {
	return s.Box.coords()
}

// Ring is the band of the given width along the inside of the ellipse
// inscribed in a box. If the band is wider than the ellipse, the whole
// ellipse is covered.
type Ring struct {
	Box   Box
	Width int
}

// Path implements the [Geometry] interface.
// The path is the ellipse halfway between the outer and inner edge of the
// band. If the band covers the whole ellipse, the path is the outline of
// the ellipse instead.
func (s Ring) Path() *path.Data {
	outer := s.Box.Rect()
	if s.solid() {
		return appendEllipse(&path.Data{}, outer)
	}
	d := float64(s.Width) / 2
	mid := rect.Rect{
		LLx: outer.LLx + d,
		LLy: outer.LLy + d,
		URx: outer.URx - d,
		URy: outer.URy - d,
	}
	return appendEllipse(&path.Data{}, mid)
}

// Pen implements the [Geometry] interface.
func (s Ring) Pen() *Pen {
	if s.solid() {
		return nil
	}
	return &Pen{Width: float64(max(s.Width, 0)), Join: graphics.LineJoinRound}
}

// solid reports whether the band covers the whole ellipse.
func (s Ring) solid() bool {
	r := s.Box.Rect()
	w := 2 * float64(s.Width)
	return w >= r.URx-r.LLx || w >= r.URy-r.LLy
}

// Coords implements the [Geometry] interface.
func (s Ring) Coords() []int {
	return append(s.Box.coords(), s.Width)
}

// Polygon is a closed polygon through the centres of the given pixels.
type Polygon struct {
	Points []image.Point
}

// Path implements the [Geometry] interface.
func (s Polygon) Path() *path.Data {
	p := &path.Data{}
	if len(s.Points) < 3 {
		return p
	}
	p = p.MoveTo(center(s.Points[0]))
	for _, q := range s.Points[1:] {
		p = p.LineTo(center(q))
	}
	return p.Close()
}

// Pen implements the [Geometry] interface.
func (s Polygon) Pen() *Pen { return nil }

// Coords implements the [Geometry] interface.
func (s Polygon) Coords() []int {
	res := make([]int, 0, 2*len(s.Points))
	for _, q := range s.Points {
		res = append(res, q.X, q.Y)
	}
	return res
}

// center returns the centre of pixel q.
func center(q image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(q.X) + 0.5, Y: float64(q.Y) + 0.5}
}

// appendRoundedRect adds a clockwise rounded rectangle to p.
func appendRoundedRect(p *path.Data, r rect.Rect, rad float64) *path.Data {
	x0, y0, x1, y1 := r.LLx, r.LLy, r.URx, r.URy
	if rad <= 0 {
		return p.
			MoveTo(vec.Vec2{X: x0, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y1}).
			LineTo(vec.Vec2{X: x0, Y: y1}).
			Close()
	}

	k := rad * kappa
	return p.
		MoveTo(vec.Vec2{X: x0 + rad, Y: y0}).
		LineTo(vec.Vec2{X: x1 - rad, Y: y0}).
		CubeTo(vec.Vec2{X: x1 - rad + k, Y: y0}, vec.Vec2{X: x1, Y: y0 + rad - k}, vec.Vec2{X: x1, Y: y0 + rad}).
		LineTo(vec.Vec2{X: x1, Y: y1 - rad}).
		CubeTo(vec.Vec2{X: x1, Y: y1 - rad + k}, vec.Vec2{X: x1 - rad + k, Y: y1}, vec.Vec2{X: x1 - rad, Y: y1}).
		LineTo(vec.Vec2{X: x0 + rad, Y: y1}).
		CubeTo(vec.Vec2{X: x0 + rad - k, Y: y1}, vec.Vec2{X: x0, Y: y1 - rad + k}, vec.Vec2{X: x0, Y: y1 - rad}).
		LineTo(vec.Vec2{X: x0, Y: y0 + rad}).
		CubeTo(vec.Vec2{X: x0, Y: y0 + rad - k}, vec.Vec2{X: x0 + rad - k, Y: y0}, vec.Vec2{X: x0 + rad, Y: y0}).
		Close()
}

// appendEllipse adds the ellipse inscribed in r to p, using four cubic
// Bézier curves. The ellipse runs clockwise on screen.
func appendEllipse(p *path.Data, r rect.Rect) *path.Data {
	cx := (r.LLx + r.URx) / 2
	cy := (r.LLy + r.URy) / 2
	rx := (r.URx - r.LLx) / 2
	ry := (r.URy - r.LLy) / 2
	if rx <= 0 || ry <= 0 {
		return p
	}
	kx := rx * kappa
	ky := ry * kappa

	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }

	return p.MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}
