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

package padicon

import (
	"image"
	"image/color"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/padicon/shape"
)

// Shape is one drawing instruction of the icon.
type Shape struct {
	Name  string
	Color color.NRGBA
	Geom  shape.Geometry
}

// Layout of the icon on a 256×256 design grid.
const (
	designSize = 256

	padLeft, padTop, padRight, padBottom = 30, 20, 226, 240
	padCorner                            = 12
	shadowOffset                         = 4
	bevelWidth                           = 4
	insetCornerReduction                 = 2

	paperLeft, paperTop, paperRight, paperBottom = 50, 45, 210, 220
	paperCorner                                  = 4

	guideLines     = 9
	lineStart      = 65
	lineSpacing    = 18
	lineMargin     = 10 // horizontal margin and bottom clearance
	lineWidth      = 1
	textIndent     = 12
	textRise       = 8
	textHeight     = 6
	textCorner     = 2
	ringY          = 32
	ringRadius     = 8
	ringHoleRadius = 4
	ringOutline    = 2

	tabTop, tabHeight = 80, 50
	tabOverlap        = 3
	tabWidth          = 12
	tabCorner         = 4

	barOffset = 1
	barInset  = 8
	barSize   = 8
	barGap    = 12
	barCorner = 2
	barCount  = 3

	pencilTipX, pencilTipY = 195, 205
	pencilSize             = 25
)

var ringXs = []int{70, 110, 150, 190}

// textBars lists the guide line and the relative length of each bar of
// simulated text.
var textBars = []struct {
	line int
	frac float64
}{
	{0, 0.8},
	{1, 0.6},
	{2, 0.9},
	{3, 0.4},
	{5, 0.7},
	{6, 0.5},
}

// scale maps lengths on the design grid to pixels.
type scale float64

func (s scale) px(c int) int {
	return int(float64(c) * float64(s))
}

// Scene returns the drawing instructions for an icon of the given size,
// in painting order.
func Scene(size int) []Shape {
	size = clampSize(size)
	s := scale(float64(size) / designSize)

	var res []Shape
	add := func(name string, col color.NRGBA, g shape.Geometry) {
		res = append(res, Shape{Name: name, Color: col, Geom: g})
	}

	left, top := s.px(padLeft), s.px(padTop)
	right, bottom := s.px(padRight), s.px(padBottom)
	corner := s.px(padCorner)
	pad := shape.Box{X0: left, Y0: top, X1: right, Y1: bottom}

	off := s.px(shadowOffset)
	add("shadow", shadowColor, shape.RoundedRect{Box: pad.Offset(off, off), Radius: corner})
	add("pad", padColor, shape.RoundedRect{Box: pad, Radius: corner})

	// The bevel is only cut from the bottom right for the highlight, but
	// from all sides for the inset.
	bevel := s.px(bevelWidth)
	add("highlight", highlightColor, shape.RoundedRect{
		Box:    shape.Box{X0: left, Y0: top, X1: right - bevel, Y1: bottom - bevel},
		Radius: corner,
	})
	add("inset", padColor, shape.RoundedRect{
		Box:    shape.Box{X0: left + bevel, Y0: top + bevel, X1: right - bevel, Y1: bottom - bevel},
		Radius: corner - s.px(insetCornerReduction),
	})

	pl, pt := s.px(paperLeft), s.px(paperTop)
	pr, pb := s.px(paperRight), s.px(paperBottom)
	add("paper", paperColor, shape.RoundedRect{
		Box:    shape.Box{X0: pl, Y0: pt, X1: pr, Y1: pb},
		Radius: s.px(paperCorner),
	})

	ls, sp := s.px(lineStart), s.px(lineSpacing)
	margin := s.px(lineMargin)
	for i := range guideLines {
		y := ls + i*sp
		if y >= pb-margin {
			continue
		}
		add("line", lineColor, shape.Line{
			From:  image.Pt(pl+margin, y),
			To:    image.Pt(pr-margin, y),
			Width: max(1, s.px(lineWidth)),
			Cap:   graphics.LineCapSquare,
		})
	}

	x0 := pl + s.px(textIndent)
	for _, bar := range textBars {
		y := ls + bar.line*sp - s.px(textRise)
		x1 := x0 + int((float64(pr-pl)-2*textIndent*float64(s))*bar.frac)
		add("text", textColor, shape.RoundedRect{
			Box:    shape.Box{X0: x0, Y0: y, X1: x1, Y1: y + s.px(textHeight)},
			Radius: s.px(textCorner),
		})
	}

	ry, rr, hr := s.px(ringY), s.px(ringRadius), s.px(ringHoleRadius)
	for _, x := range ringXs {
		cx := s.px(x)
		ring := shape.Box{X0: cx - rr, Y0: ry - rr, X1: cx + rr, Y1: ry + rr}
		add("ring", bindingColor, shape.Ellipse{Box: ring})
		add("ring_outline", ringColor, shape.Ring{Box: ring, Width: max(1, s.px(ringOutline))})
		add("ring_hole", padColor, shape.Ellipse{
			Box: shape.Box{X0: cx - hr, Y0: ry - hr, X1: cx + hr, Y1: ry + hr},
		})
	}

	tt := s.px(tabTop)
	add("tab", accentColor, shape.RoundedRect{
		Box:    shape.Box{X0: right - s.px(tabOverlap), Y0: tt, X1: right + s.px(tabWidth), Y1: tt + s.px(tabHeight)},
		Radius: s.px(tabCorner),
	})

	bx, bs, gap := right+s.px(barOffset), s.px(barSize), s.px(barGap)
	for i := range barCount {
		y := tt + s.px(barInset) + i*gap
		add("indicator", indicatorColor, shape.RoundedRect{
			Box:    shape.Box{X0: bx, Y0: y, X1: bx + bs, Y1: y + bs},
			Radius: s.px(barCorner),
		})
	}

	tx, ty, p := s.px(pencilTipX), s.px(pencilTipY), s.px(pencilSize)
	add("pencil", accentColor, shape.Polygon{Points: []image.Point{
		{X: tx, Y: ty},
		{X: tx - s.px(6), Y: ty - s.px(10)},
		{X: tx + p - s.px(6), Y: ty - p - s.px(10)},
		{X: tx + p + s.px(6), Y: ty - p + s.px(2)},
		{X: tx + s.px(6), Y: ty - s.px(2)},
	}})
	add("pencil_tip", tipColor, shape.Polygon{Points: []image.Point{
		{X: tx, Y: ty},
		{X: tx - s.px(4), Y: ty - s.px(8)},
		{X: tx + s.px(4), Y: ty - s.px(6)},
	}})

	return res
}
