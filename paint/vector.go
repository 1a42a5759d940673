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

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/padicon/raster"
	"seehuhn.de/go/padicon/shape"
)

// vectorPainter fills paths with golang.org/x/image/vector. The vector
// package cannot stroke, so strokes are converted to outlines by the
// raster package first.
type vectorPainter struct {
	img     *image.RGBA
	z       *vector.Rasterizer
	outline *raster.Rasteriser
}

func newVectorPainter(w, h int) Painter {
	return &vectorPainter{
		img:     image.NewRGBA(image.Rect(0, 0, w, h)),
		z:       vector.NewRasterizer(w, h),
		outline: raster.NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)}),
	}
}

// Fill implements the [Painter] interface.
func (p *vectorPainter) Fill(pth *path.Data, c color.NRGBA) {
	size := p.img.Bounds().Size()
	p.z.Reset(size.X, size.Y)
	walk(pth, (*vectorBuilder)(p.z), true)
	p.z.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{})
}

// Stroke implements the [Painter] interface.
func (p *vectorPainter) Stroke(pth *path.Data, pen shape.Pen, c color.NRGBA) {
	p.outline.Width = pen.Width
	p.outline.Cap = pen.Cap
	p.outline.Join = pen.Join
	p.Fill(p.outline.StrokeOutline(pth), c)
}

// Image implements the [Painter] interface.
func (p *vectorPainter) Image() *image.RGBA {
	return p.img
}

type vectorBuilder vector.Rasterizer

func (z *vectorBuilder) moveTo(a vec.Vec2) {
	(*vector.Rasterizer)(z).MoveTo(float32(a.X), float32(a.Y))
}

func (z *vectorBuilder) lineTo(b vec.Vec2) {
	(*vector.Rasterizer)(z).LineTo(float32(b.X), float32(b.Y))
}

func (z *vectorBuilder) quadTo(b, c vec.Vec2) {
	(*vector.Rasterizer)(z).QuadTo(float32(b.X), float32(b.Y), float32(c.X), float32(c.Y))
}

func (z *vectorBuilder) cubeTo(b, c, d vec.Vec2) {
	(*vector.Rasterizer)(z).CubeTo(
		float32(b.X), float32(b.Y),
		float32(c.X), float32(c.Y),
		float32(d.X), float32(d.Y))
}

func (z *vectorBuilder) endSubpath(bool) {
	(*vector.Rasterizer)(z).ClosePath()
}
