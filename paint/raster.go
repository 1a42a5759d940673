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

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/padicon/raster"
	"seehuhn.de/go/padicon/shape"
)

// rasterPainter converts coverage from the raster package into an alpha
// mask and composites the colour through it.
type rasterPainter struct {
	img  *image.RGBA
	mask *image.Alpha
	clip rect.Rect
	r    *raster.Rasteriser
}

func newRasterPainter(w, h int) Painter {
	clip := rect.Rect{URx: float64(w), URy: float64(h)}
	return &rasterPainter{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		mask: image.NewAlpha(image.Rect(0, 0, w, h)),
		clip: clip,
		r:    raster.NewRasteriser(clip),
	}
}

// Fill implements the [Painter] interface.
func (p *rasterPainter) Fill(pth *path.Data, c color.NRGBA) {
	p.r.Reset(p.clip)
	p.composite(c, func(emit raster.EmitFunc) {
		p.r.FillNonZero(pth, emit)
	})
}

// Stroke implements the [Painter] interface.
func (p *rasterPainter) Stroke(pth *path.Data, pen shape.Pen, c color.NRGBA) {
	p.r.Reset(p.clip)
	p.r.Width = pen.Width
	p.r.Cap = pen.Cap
	p.r.Join = pen.Join
	p.composite(c, func(emit raster.EmitFunc) {
		p.r.Stroke(pth, emit)
	})
}

// composite collects the coverage produced by run in the mask and paints
// c through it.
func (p *rasterPainter) composite(c color.NRGBA, run func(emit raster.EmitFunc)) {
	var dirty image.Rectangle
	run(func(y, xMin int, coverage []float32) {
		row := p.mask.Pix[y*p.mask.Stride+xMin:]
		for i, v := range coverage {
			row[i] = uint8(min(v*255+0.5, 255))
		}
		dirty = dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
	})
	if dirty.Empty() {
		return
	}

	draw.DrawMask(p.img, dirty, image.NewUniform(c), image.Point{}, p.mask, dirty.Min, draw.Over)

	for y := dirty.Min.Y; y < dirty.Max.Y; y++ {
		off := y * p.mask.Stride
		clear(p.mask.Pix[off+dirty.Min.X : off+dirty.Max.X])
	}
}

// Image implements the [Painter] interface.
func (p *rasterPainter) Image() *image.RGBA {
	return p.img
}
