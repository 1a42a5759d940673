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

	"github.com/fogleman/gg"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/padicon/shape"
)

type ggPainter struct {
	img *image.RGBA
	dc  *gg.Context
}

func newGGPainter(w, h int) Painter {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	dc := gg.NewContextForRGBA(img)
	dc.SetFillRule(gg.FillRuleWinding)
	return &ggPainter{img: img, dc: dc}
}

// Fill implements the [Painter] interface.
func (p *ggPainter) Fill(pth *path.Data, c color.NRGBA) {
	p.dc.ClearPath()
	walk(pth, (*ggBuilder)(p.dc), true)
	p.dc.SetColor(c)
	p.dc.Fill()
}

// Stroke implements the [Painter] interface.
// gg has no miter joins; they are drawn as bevels.
func (p *ggPainter) Stroke(pth *path.Data, pen shape.Pen, c color.NRGBA) {
	if !(pen.Width > 0) {
		return
	}
	p.dc.ClearPath()
	walk(pth, (*ggBuilder)(p.dc), false)
	p.dc.SetLineWidth(pen.Width)
	p.dc.SetLineCap(ggCaps[pen.Cap])
	if pen.Join == graphics.LineJoinRound {
		p.dc.SetLineJoin(gg.LineJoinRound)
	} else {
		p.dc.SetLineJoin(gg.LineJoinBevel)
	}
	p.dc.SetColor(c)
	p.dc.Stroke()
}

var ggCaps = map[graphics.LineCapStyle]gg.LineCap{
	graphics.LineCapButt:   gg.LineCapButt,
	graphics.LineCapRound:  gg.LineCapRound,
	graphics.LineCapSquare: gg.LineCapSquare,
}

// Image implements the [Painter] interface.
func (p *ggPainter) Image() *image.RGBA {
	return p.img
}

type ggBuilder gg.Context

func (b *ggBuilder) moveTo(a vec.Vec2) {
	(*gg.Context)(b).MoveTo(a.X, a.Y)
}

func (b *ggBuilder) lineTo(q vec.Vec2) {
	(*gg.Context)(b).LineTo(q.X, q.Y)
}

func (b *ggBuilder) quadTo(q, r vec.Vec2) {
	(*gg.Context)(b).QuadraticTo(q.X, q.Y, r.X, r.Y)
}

func (b *ggBuilder) cubeTo(q, r, s vec.Vec2) {
	(*gg.Context)(b).CubicTo(q.X, q.Y, r.X, r.Y, s.X, s.Y)
}

func (b *ggBuilder) endSubpath(closed bool) {
	if closed {
		(*gg.Context)(b).ClosePath()
	}
}
