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

// Package raster converts filled and stroked vector paths into
// anti-aliased pixel coverage.
//
// Coverage is the exact fraction of each pixel's area which lies inside
// the path, computed with the nonzero winding rule. Strokes are turned
// into outline polygons first, which are then filled. Results are delivered
// row by row through a callback, so that the caller decides how coverage
// is turned into colour.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline. The slice holds the
// coverage of pixels xMin, xMin+1, ... and is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// xAt returns the x-coordinate of the edge's line at height y.
func (e *edge) xAt(y float64) float64 { return e.x0 + e.dxdy*(y-e.y0) }

// Rasteriser fills paths and reports per-pixel coverage.
//
// A Rasteriser keeps its scratch buffers between calls, so a single
// instance should be reused for all paths of one image. It is not safe for
// concurrent use.
type Rasteriser struct {
	// CTM maps path coordinates to device pixels. Must be non-singular.
	CTM matrix.Matrix

	// Clip limits output to this device rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon which replaces it. Must be positive.
	Flatness float64

	// Width is the stroke width in path coordinates.
	Width float64

	// Cap is the shape of the ends of open subpaths when stroking.
	Cap graphics.LineCapStyle

	// Join is the shape of corners when stroking.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, as a multiple of the
	// stroke width. Longer miters are replaced by bevels.
	MiterLimit float64

	// smallPathThreshold is the bounding box area, in pixels, below which
	// the 2-D buffer strategy is used instead of the active edge list.
	smallPathThreshold int

	cover     []float32 // signed vertical extent per pixel; becomes the output
	area      []float32 // area contribution per pixel
	edges     []edge
	active    []int  // indices into edges, for the active edge list
	rowActive []bool // per-row marker for the 2-D strategy

	bboxEmpty      bool
	bboxX0, bboxX1 float64
	bboxY0, bboxY1 float64

	// stroking
	segs          []segment
	subpathStarts []int // index into segs
	subpathClosed []bool
	dots          []vec.Vec2 // subpaths without direction
	outline       []vec.Vec2
	outlineStarts []int // index into outline
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// the identity CTM and default settings.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{smallPathThreshold: smallPathThreshold}
	r.setDefaults(clip)
	return r
}

func (r *Rasteriser) setDefaults(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

// Reset restores the default settings with a new clip rectangle, keeping
// the capacity of the internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.setDefaults(clip)

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.rowActive = r.rowActive[:0]
}

// FillNonZero computes the coverage of p under the nonzero winding rule.
// Rows without coverage are not reported.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	x0, x1, y0, y1, ok := r.collectEdges(p)
	if !ok {
		return
	}
	r.fill(x0, x1, y0, y1, emit)
}

// fill reports the coverage of the collected edges inside the given
// pixel range.
func (r *Rasteriser) fill(x0, x1, y0, y1 int, emit EmitFunc) {
	if (x1-x0)*(y1-y0) < r.smallPathThreshold {
		r.fillSmall(x0, x1, y0, y1, emit)
	} else {
		r.fillLarge(x0, x1, y0, y1, emit)
	}
}

// collectEdges flattens p into device-space edges. The returned pixel
// range is the bounding box of the edges, clamped to the clip rectangle.
func (r *Rasteriser) collectEdges(p *path.Data) (x0, x1, y0, y1 int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	// filling implicitly closes the last subpath
	if current != start {
		r.addEdge(current, start)
	}
	return r.pixelRange()
}

// pixelRange returns the bounding box of the collected edges in whole
// pixels, clamped to the clip rectangle.
func (r *Rasteriser) pixelRange() (x0, x1, y0, y1 int, ok bool) {
	if r.bboxEmpty {
		return 0, 0, 0, 0, false
	}

	x0 = max(int(math.Floor(r.bboxX0)), int(r.Clip.LLx))
	x1 = min(int(math.Floor(r.bboxX1))+1, int(r.Clip.URx))
	y0 = max(int(math.Floor(r.bboxY0)), int(r.Clip.LLy))
	y1 = min(int(math.Floor(r.bboxY1))+1, int(r.Clip.URy))
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	return x0, x1, y0, y1, true
}

// addEdge transforms a segment to device space and records it.
// Horizontal segments carry no coverage and are dropped.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	m := r.CTM
	ax := m[0]*a.X + m[2]*a.Y + m[4]
	ay := m[1]*a.X + m[3]*a.Y + m[5]
	bx := m[0]*b.X + m[2]*b.Y + m[4]
	by := m[1]*b.X + m[3]*b.Y + m[5]

	dy := by - ay
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: ax, y0: ay, x1: bx, y1: by, dxdy: (bx - ax) / dy})

	if r.bboxEmpty {
		r.bboxX0, r.bboxX1 = min(ax, bx), max(ax, bx)
		r.bboxY0, r.bboxY1 = min(ay, by), max(ay, by)
		r.bboxEmpty = false
		return
	}
	r.bboxX0 = min(r.bboxX0, ax, bx)
	r.bboxX1 = max(r.bboxX1, ax, bx)
	r.bboxY0 = min(r.bboxY0, ay, by)
	r.bboxY1 = max(r.bboxY1, ay, by)
}

// deviceLength returns the device-space length of the user-space vector v,
// ignoring the translation part of the CTM.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

// flattenQuadratic replaces the quadratic Bézier curve p0, p1, p2 by
// line segments.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	// The curve deviates from its chord by at most |p0 - 2p1 + p2| / 4.
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		pt := p0.Mul(u * u).Add(p1.Mul(2 * u * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic replaces the cubic Bézier curve p0, ..., p3 by line
// segments. The number of segments follows Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)),
	)
	n := 1
	if dev > 0 {
		if f := math.Sqrt(3 * dev / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		pt := p0.Mul(u * u * u).
			Add(p1.Mul(3 * u * u * t)).
			Add(p2.Mul(3 * u * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Coverage model.
//
// Every edge adds two numbers to each pixel it passes through on a
// scanline: cover, the signed height of the part of the edge inside the
// pixel (positive for downward edges), and area, the same height weighted
// by the fraction of the pixel which lies to the right of the edge.
// Summing cover from the left and adding the pixel's own area gives the
// signed winding area of the pixel. The nonzero rule takes the absolute
// value, clamped to 1.

// accumulate adds the contribution of e on scanline y to the row buffers.
// Index 0 of the buffers corresponds to pixel x0; contributions from
// further left are folded into index 0.
func accumulate(e *edge, y int, cover, area []float32, x0, x1 int) {
	top := max(float64(y), e.yMin())
	bot := min(float64(y+1), e.yMax())
	if bot <= top {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(top), e.xAt(bot)
	if xa > xb {
		xa, xb = xb, xa
	}
	left := int(math.Floor(xa))
	right := int(math.Floor(xb))

	switch {
	case right < x0:
		c := sign * float32(bot-top)
		cover[0] += c
		area[0] += c
		return
	case left >= x1:
		return
	case left == right:
		addSpan(e, top, bot, sign, left, cover, area, x0, x1)
		return
	}

	// The edge crosses several pixel columns: split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for px := left; px <= right; px++ {
		ya := e.y0 + dydx*(float64(px)-e.x0)
		yb := e.y0 + dydx*(float64(px+1)-e.x0)
		segTop := max(min(ya, yb), top)
		segBot := min(max(ya, yb), bot)
		if segBot <= segTop {
			continue
		}
		addSpan(e, segTop, segBot, sign, px, cover, area, x0, x1)
	}
}

// addSpan records the part of e between heights top and bot, which lies
// entirely inside pixel column px.
func addSpan(e *edge, top, bot float64, sign float32, px int, cover, area []float32, x0, x1 int) {
	c := sign * float32(bot-top)
	if px < x0 {
		cover[0] += c
		area[0] += c
		return
	}
	if px >= x1 {
		return
	}
	frac := e.xAt((top+bot)/2) - float64(px)
	i := px - x0
	cover[i] += c
	area[i] += c * float32(1-frac)
}

// integrate turns the accumulated cover and area of one row into nonzero
// coverage, in place.
func integrate(cover, area []float32) {
	var sum float32
	for i := range cover {
		v := sum + area[i]
		sum += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero entries, together with its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillSmall accumulates all edges into a 2-D buffer covering the bounding
// box, then integrates row by row.
func (r *Rasteriser) fillSmall(x0, x1, y0, y1 int, emit EmitFunc) {
	w := x1 - x0
	h := y1 - y0
	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	r.rowActive = slices.Grow(r.rowActive[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.rowActive)

	for i := range r.edges {
		e := &r.edges[i]
		first := max(int(math.Floor(e.yMin())), y0)
		last := min(int(math.Floor(e.yMax()))+1, y1)
		for y := first; y < last; y++ {
			row := y - y0
			off := row * w
			accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], x0, x1)
			r.rowActive[row] = true
		}
	}

	for row := range h {
		if !r.rowActive[row] {
			continue
		}
		off := row * w
		line := r.cover[off : off+w]
		integrate(line, r.area[off:off+w])
		if trimmed, skip := trimZeros(line); trimmed != nil {
			emit(y0+row, x0+skip, trimmed)
		}
	}
}

// fillLarge walks the scanlines with an active edge list, so that only a
// single row of buffers is needed.
func (r *Rasteriser) fillLarge(x0, x1, y0, y1 int, emit EmitFunc) {
	w := x1 - x0
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := y0; y < y1; y++ {
		top := float64(y)
		bot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.active = append(r.active, next)
			next++
		}

		// drop edges which end above this row
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].yMax() <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			accumulate(&r.edges[i], y, r.cover, r.area, x0, x1)
		}

		integrate(r.cover, r.area)
		if trimmed, skip := trimZeros(r.cover); trimmed != nil {
			emit(y, x0+skip, trimmed)
		}
	}
}

// Default rasteriser settings.
const (
	// defaultFlatness is the curve tolerance in device pixels.
	// A quarter pixel is below what can be seen.
	defaultFlatness = 0.25

	// smallPathThreshold is the bounding box area up to which the
	// 2-D buffer strategy is used.
	smallPathThreshold = 65536

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	horizontalEdgeThreshold = 1e-10

	// defaultMiterLimit is the PDF default.
	defaultMiterLimit = 10

	// zeroLengthThreshold is the length below which stroke segments are
	// dropped.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the sine of the angle below which two
	// stroke segments are treated as collinear.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold is the cosine of the angle beyond which a
	// corner is treated as a reversal of direction.
	cuspCosineThreshold = -0.9999
)
