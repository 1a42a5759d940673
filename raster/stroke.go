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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a flattened piece of a stroked path, in path coordinates.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, from A to B
	N    vec.Vec2 // T turned by 90°
}

// Stroke computes the coverage of the stroke of p, using the current
// Width, Cap, Join and MiterLimit. The outline of the stroke is filled
// with the nonzero winding rule, so that overlapping parts are covered
// only once. Nothing is drawn if Width is not positive.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	if !r.buildOutline(p) {
		return
	}

	r.edges = r.edges[:0]
	r.bboxEmpty = true
	for i := range r.outlineStarts {
		poly := r.polygon(i)
		prev := poly[len(poly)-1]
		for _, q := range poly {
			r.addEdge(prev, q)
			prev = q
		}
	}
	x0, x1, y0, y1, ok := r.pixelRange()
	if !ok {
		return
	}
	r.fill(x0, x1, y0, y1, emit)
}

// StrokeOutline returns the polygons which [Rasteriser.Stroke] fills, as
// closed subpaths in the coordinates of p. The result must be filled with
// the nonzero winding rule.
func (r *Rasteriser) StrokeOutline(p *path.Data) *path.Data {
	res := &path.Data{}
	if !r.buildOutline(p) {
		return res
	}
	for i := range r.outlineStarts {
		poly := r.polygon(i)
		res = res.MoveTo(poly[0])
		for _, q := range poly[1:] {
			res = res.LineTo(q)
		}
		res = res.Close()
	}
	return res
}

// polygon returns the i-th polygon of the stroke outline.
func (r *Rasteriser) polygon(i int) []vec.Vec2 {
	end := len(r.outline)
	if i+1 < len(r.outlineStarts) {
		end = r.outlineStarts[i+1]
	}
	return r.outline[r.outlineStarts[i]:end]
}

// buildOutline converts the stroke of p into polygons, stored in
// r.outline. It reports whether any polygon was produced.
func (r *Rasteriser) buildOutline(p *path.Data) bool {
	r.outline = r.outline[:0]
	r.outlineStarts = r.outlineStarts[:0]
	if !(r.Width > 0) {
		return false
	}
	d := r.Width / 2

	r.flattenSubpaths(p)

	// Subpaths without direction only show up with round caps.
	if r.Cap == graphics.LineCapRound {
		for _, c := range r.dots {
			start := len(r.outline)
			r.addArc(c, d, vec.Vec2{X: 1}, 2*math.Pi, true)
			r.outlineStarts = append(r.outlineStarts, start)
		}
	}

	for i, first := range r.subpathStarts {
		end := len(r.segs)
		if i+1 < len(r.subpathStarts) {
			end = r.subpathStarts[i+1]
		}

		start := len(r.outline)
		r.outlineSubpath(r.segs[first:end], r.subpathClosed[i], d)
		if len(r.outline)-start < 3 {
			r.outline = r.outline[:start]
			continue
		}
		r.outlineStarts = append(r.outlineStarts, start)
	}
	return len(r.outlineStarts) > 0
}

// flattenSubpaths splits p into subpaths of straight segments.
// Subpaths which consist of a single point are collected in r.dots.
func (r *Rasteriser) flattenSubpaths(p *path.Data) {
	r.segs = r.segs[:0]
	r.subpathStarts = r.subpathStarts[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.dots = r.dots[:0]

	var current, start vec.Vec2
	first := 0     // index of the first segment of the current subpath
	open := false  // a subpath is in progress
	drawn := false // the current subpath has a drawing command

	finish := func(closed bool) {
		switch {
		case len(r.segs) > first:
			r.subpathStarts = append(r.subpathStarts, first)
			r.subpathClosed = append(r.subpathClosed, closed)
		case drawn || closed:
			r.dots = append(r.dots, start)
		}
		first = len(r.segs)
		open = false
		drawn = false
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				finish(false)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			open, drawn = true, true
			r.addSegment(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			open, drawn = true, true
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addSegment)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			open, drawn = true, true
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addSegment)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if open {
				if current != start {
					r.addSegment(current, start)
				}
				finish(true)
			}
			current = start
		}
	}
	if open {
		finish(false)
	}
}

func (r *Rasteriser) addSegment(a, b vec.Vec2) {
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := v.Mul(1 / l)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// outlineSubpath appends the outline of one subpath to r.outline, as a
// single polygon: first along the +N side in path direction, then back
// along the -N side. Open subpaths get caps at both ends.
func (r *Rasteriser) outlineSubpath(segs []segment, closed bool, d float64) {
	if len(segs) == 0 {
		return
	}
	first := &segs[0]
	last := &segs[len(segs)-1]

	if !closed {
		r.addCap(first.A, first.T.Mul(-1), d)
	}
	r.outline = append(r.outline, first.A.Add(first.N.Mul(d)))
	for i := 0; i+1 < len(segs); i++ {
		r.cornerForward(&segs[i], &segs[i+1], d)
	}
	if closed {
		r.cornerForward(last, first, d)
		r.cornerBackward(last, first, d)
	} else {
		r.outline = append(r.outline, last.B.Add(last.N.Mul(d)))
		r.addCap(last.B, last.T, d)
		r.outline = append(r.outline, last.B.Sub(last.N.Mul(d)))
	}
	for i := len(segs) - 1; i > 0; i-- {
		r.cornerBackward(&segs[i-1], &segs[i], d)
	}
	r.outline = append(r.outline, first.A.Sub(first.N.Mul(d)))
}

// cornerForward adds the +N side of the corner where a ends and b starts.
func (r *Rasteriser) cornerForward(a, b *segment, d float64) {
	sin := cross(a.T, b.T)
	switch {
	case math.Abs(sin) < collinearityThreshold:
		r.outline = append(r.outline, a.B.Add(a.N.Mul(d)), b.A.Add(b.N.Mul(d)))
	case sin > 0:
		r.addInnerCorner(b.A, a, b, d, true)
	default:
		r.outline = append(r.outline, a.B.Add(a.N.Mul(d)))
		r.addJoin(b.A, a.T, b.T, d, true)
		r.outline = append(r.outline, b.A.Add(b.N.Mul(d)))
	}
}

// cornerBackward adds the -N side of the corner where a ends and b
// starts, walking from b to a.
func (r *Rasteriser) cornerBackward(a, b *segment, d float64) {
	sin := cross(a.T, b.T)
	switch {
	case math.Abs(sin) < collinearityThreshold:
		r.outline = append(r.outline, b.A.Sub(b.N.Mul(d)), a.B.Sub(a.N.Mul(d)))
	case sin > 0:
		r.outline = append(r.outline, b.A.Sub(b.N.Mul(d)))
		r.addJoin(b.A, a.T, b.T, d, false)
		r.outline = append(r.outline, a.B.Sub(a.N.Mul(d)))
	default:
		r.addInnerCorner(b.A, a, b, d, false)
	}
}

// addInnerCorner adds the inner side of the corner at P, where the
// offset lines of a and b cross. If the crossing is not well defined,
// both offset points are used instead.
func (r *Rasteriser) addInnerCorner(P vec.Vec2, a, b *segment, d float64, forward bool) {
	cos := a.T.Dot(b.T)
	cosHalf := math.Sqrt((1 + cos) / 2)
	dir := a.N.Add(b.N)
	if !forward {
		dir = dir.Mul(-1)
	}
	if l := dir.Length(); cos < 1-1e-9 && cosHalf > 1e-9 && l > 1e-9 {
		r.outline = append(r.outline, P.Add(dir.Mul(d/(cosHalf*l))))
		return
	}

	if forward {
		r.outline = append(r.outline, P.Add(a.N.Mul(d)), P.Add(b.N.Mul(d)))
	} else {
		r.outline = append(r.outline, P.Sub(b.N.Mul(d)), P.Sub(a.N.Mul(d)))
	}
}

// addCap adds the cap at the end point P of an open subpath.
// T points away from the subpath.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, true)
	}
}

// addJoin adds the outer side of the corner at P, where the direction
// changes from T1 to T2. The side is +N in forward direction, and -N in
// backward direction.
func (r *Rasteriser) addJoin(P, T1, T2 vec.Vec2, d float64, forward bool) {
	cos := T1.Dot(T2)
	sin := cross(T1, T2)
	if math.Abs(sin) < collinearityThreshold {
		return
	}
	if cos < cuspCosineThreshold {
		// the path reverses: cap both pieces
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}

	switch r.Join {
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		if sin < 0 {
			angle = -angle
		}
		if forward {
			r.addArc(P, d, N1, angle, false)
		} else {
			r.addArc(P, d, N2.Mul(-1), -angle, false)
		}

	case graphics.LineJoinMiter:
		// The miter length, relative to the width, is 1/cos(θ/2) where θ
		// is the angle between the tangents.
		cosHalf := math.Sqrt((1 + cos) / 2)
		if cosHalf == 0 || 1/cosHalf > r.MiterLimit+1e-10 {
			return // bevel
		}
		dir := N1.Add(N2)
		if !forward {
			dir = dir.Mul(-1)
		}
		if l := dir.Length(); l > zeroLengthThreshold {
			r.outline = append(r.outline, P.Add(dir.Mul(d/(cosHalf*l))))
		}
	}
}

// addArc adds points along the circle of the given radius around center,
// starting in direction startDir and turning by sweep radians.
// The start point is only added if includeStart is set.
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.deviceLength(vec.Vec2{X: radius}),
		r.deviceLength(vec.Vec2{Y: radius}),
	)

	n := 1
	if devRadius > r.Flatness {
		// a chord over angle θ deviates from the arc by r(1-cos(θ/2))
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		phi := sweep * float64(i) / float64(n)
		sin, cos := math.Sincos(phi)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// cross returns the z-component of the cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
