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

// Package padicon draws the notepad application icon.
//
// The icon shows a dark notepad with spiral binding rings, a sheet of
// ruled paper with a few lines of simulated text, a green tab on the
// right-hand side and a pencil in the bottom right corner. All geometry is
// defined on a 256×256 grid and scaled to the requested size, rounding
// every length down to whole pixels, so that small renders stay crisp.
//
// [Scene] returns the drawing instructions as data, and [Render] paints
// them onto a transparent canvas.
package padicon

import (
	"image"

	"seehuhn.de/go/padicon/paint"
)

// Render draws the icon onto a new size×size canvas, using the default
// painting backend. Sizes below 1 are treated as 1.
func Render(size int) *image.RGBA {
	img, err := RenderWith(size, paint.Default)
	if err != nil {
		// the default backend always exists
		panic(err)
	}
	return img
}

// RenderWith draws the icon using the given painting backend.
// An error is returned only if the backend is unknown.
func RenderWith(size int, backend paint.Backend) (*image.RGBA, error) {
	size = clampSize(size)
	p, err := paint.New(backend, size, size)
	if err != nil {
		return nil, err
	}
	for _, s := range Scene(size) {
		if pen := s.Geom.Pen(); pen != nil {
			p.Stroke(s.Geom.Path(), *pen, s.Color)
		} else {
			p.Fill(s.Geom.Path(), s.Color)
		}
	}
	return p.Image(), nil
}

func clampSize(size int) int {
	return max(size, 1)
}
