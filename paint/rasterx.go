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

package paint

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/padicon/shape"
)

// rasterxPainter draws with a rasterx Stroker on top of the default
// ScannerGV. Fills use the Filler embedded in the Stroker.
type rasterxPainter struct {
	img     *image.RGBA
	stroker *rasterx.Stroker
}

func newRasterxPainter(w, h int) Painter {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &rasterxPainter{img: img, stroker: rasterx.NewStroker(w, h, scanner)}
}

// Fill implements the [Painter] interface.
func (p *rasterxPainter) Fill(pth *path.Data, c color.NRGBA) {
	f := &p.stroker.Filler
	f.Clear()
	f.SetColor(c)
	walk(pth, rasterxBuilder{f}, true)
	f.Draw()
}

// Stroke implements the [Painter] interface.
func (p *rasterxPainter) Stroke(pth *path.Data, pen shape.Pen, c color.NRGBA) {
	if !(pen.Width > 0) {
		return
	}
	s := p.stroker
	s.Clear()
	s.SetColor(c)
	capFn := rasterxCaps[pen.Cap]
	s.SetStroke(fixed.Int26_6(pen.Width*64), rasterxMiterLimit, capFn, capFn, nil, rasterxJoins[pen.Join])
	walk(pth, rasterxBuilder{s}, false)
	s.Draw()
}

const rasterxMiterLimit = 10 << 6

var rasterxCaps = map[graphics.LineCapStyle]rasterx.CapFunc{
	graphics.LineCapButt:   rasterx.ButtCap,
	graphics.LineCapRound:  rasterx.RoundCap,
	graphics.LineCapSquare: rasterx.SquareCap,
}

var rasterxJoins = map[graphics.LineJoinStyle]rasterx.JoinMode{
	graphics.LineJoinMiter: rasterx.Miter,
	graphics.LineJoinRound: rasterx.Round,
	graphics.LineJoinBevel: rasterx.Bevel,
}

// Image implements the [Painter] interface.
func (p *rasterxPainter) Image() *image.RGBA {
	return p.img
}

type rasterxBuilder struct {
	a rasterx.Adder
}

func (b rasterxBuilder) moveTo(v vec.Vec2) {
	b.a.Start(toFixed(v))
}

func (b rasterxBuilder) lineTo(q vec.Vec2) {
	b.a.Line(toFixed(q))
}

func (b rasterxBuilder) quadTo(q, r vec.Vec2) {
	b.a.QuadBezier(toFixed(q), toFixed(r))
}

func (b rasterxBuilder) cubeTo(q, r, s vec.Vec2) {
	b.a.CubeBezier(toFixed(q), toFixed(r), toFixed(s))
}

func (b rasterxBuilder) endSubpath(closed bool) {
	b.a.Stop(closed)
}

func toFixed(v vec.Vec2) fixed.Point26_6 {
	return rasterx.ToFixedP(v.X, v.Y)
}
