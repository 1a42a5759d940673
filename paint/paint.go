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

// Package paint fills and strokes paths with solid colours on an RGBA
// canvas.
//
// Several interchangeable backends are provided. All of them fill with
// the nonzero winding rule, anti-alias edges by pixel coverage and
// composite each shape onto the canvas with the source-over operator.
package paint

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/padicon/shape"
)

// Painter draws filled and stroked paths onto an image.
type Painter interface {
	// Fill paints the interior of p with c.
	// Unclosed subpaths are closed implicitly.
	Fill(p *path.Data, c color.NRGBA)

	// Stroke paints the line drawn along p by pen with c. Nothing is
	// painted if the pen width is not positive.
	// Overlapping parts of the stroke are painted once.
	Stroke(p *path.Data, pen shape.Pen, c color.NRGBA)

	// Image returns the canvas. The canvas starts fully transparent.
	Image() *image.RGBA
}

// Backend names a painting implementation.
type Backend string

// The available backends.
const (
	Raster  Backend = "raster"  // exact area coverage, package raster
	Vector  Backend = "vector"  // golang.org/x/image/vector
	GG      Backend = "gg"      // github.com/fogleman/gg
	Rasterx Backend = "rasterx" // github.com/srwiley/rasterx
)

// Default is the backend used when none is specified.
const Default = Raster

// ErrUnknownBackend is returned for backend names which are not
// listed by [Backends].
var ErrUnknownBackend = errors.New("unknown painting backend")

var constructors = map[Backend]func(w, h int) Painter{
	Raster:  newRasterPainter,
	Vector:  newVectorPainter,
	GG:      newGGPainter,
	Rasterx: newRasterxPainter,
}

// Backends returns the names of all backends, in alphabetical order.
func Backends() []Backend {
	res := make([]Backend, 0, len(constructors))
	for b := range constructors {
		res = append(res, b)
	}
	slices.Sort(res)
	return res
}

// ParseBackend converts a backend name to a [Backend].
// The empty string selects [Default].
func ParseBackend(name string) (Backend, error) {
	if name == "" {
		return Default, nil
	}
	b := Backend(name)
	if _, ok := constructors[b]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}
	return b, nil
}

// New allocates a transparent w×h canvas and returns a painter for it.
func New(b Backend, w, h int) (Painter, error) {
	if b == "" {
		b = Default
	}
	newPainter, ok := constructors[b]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, string(b))
	}
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", w, h)
	}
	return newPainter(w, h), nil
}
