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
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// collectStroke runs Stroke and returns the coverage as a dense w×h grid.
func collectStroke(r *Rasteriser, p *path.Data, w, h int) []float32 {
	res := make([]float32, w*h)
	r.Stroke(p, func(y, xMin int, coverage []float32) {
		if y < 0 || y >= h || xMin < 0 || xMin+len(coverage) > w {
			panic(fmt.Sprintf("span y=%d x=%d..%d outside %dx%d", y, xMin, xMin+len(coverage), w, h))
		}
		copy(res[y*w+xMin:], coverage)
	})
	return res
}

func coverageSum(coverage []float32) float64 {
	var sum float64
	for _, c := range coverage {
		sum += float64(c)
	}
	return sum
}

func TestStrokeCaps(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 5}).
		LineTo(vec.Vec2{X: 30, Y: 5})

	cases := []struct {
		name     string
		cap      graphics.LineCapStyle
		min, max float64
	}{
		{"butt", graphics.LineCapButt, 80 - 1e-3, 80 + 1e-3},
		{"square", graphics.LineCapSquare, 96 - 1e-3, 96 + 1e-3},
		{"round", graphics.LineCapRound, 90, 80 + 4*math.Pi},
	}

	const w, h = 40, 10
	for _, tc := range cases {
		for _, approach := range approaches {
			t.Run(tc.name+"_"+approach.name, func(t *testing.T) {
				r := NewRasteriser(rect.Rect{URx: w, URy: h})
				r.smallPathThreshold = approach.threshold
				r.Width = 4
				r.Cap = tc.cap
				got := collectStroke(r, line, w, h)

				if area := coverageSum(got); area < tc.min || area > tc.max {
					t.Errorf("area %.4f, want in [%.4f, %.4f]", area, tc.min, tc.max)
				}
				if math.Abs(float64(got[5*w+20])-1) > 1e-5 {
					t.Errorf("centre coverage %.4f, want 1", got[5*w+20])
				}
				if got[5*w+5] != 0 {
					t.Errorf("coverage left of the line %.4f, want 0", got[5*w+5])
				}
			})
		}
	}
}

func TestStrokeButtExact(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 3}).
		LineTo(vec.Vec2{X: 8, Y: 3})

	const w, h = 10, 6
	r := NewRasteriser(rect.Rect{URx: w, URy: h})
	r.Width = 2
	got := collectStroke(r, line, w, h)

	for y := range h {
		for x := range w {
			var want float32
			if x >= 2 && x < 8 && y >= 2 && y < 4 {
				want = 1
			}
			if got[y*w+x] != want {
				t.Errorf("pixel (%d,%d): got %.4f, want %.0f", x, y, got[y*w+x], want)
			}
		}
	}
}

func TestStrokeJoins(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 30, Y: 10}).
		LineTo(vec.Vec2{X: 30, Y: 30}).
		LineTo(vec.Vec2{X: 10, Y: 30}).
		Close()

	const w, h = 40, 40
	area := map[graphics.LineJoinStyle]float64{}
	for _, join := range []graphics.LineJoinStyle{graphics.LineJoinMiter, graphics.LineJoinRound, graphics.LineJoinBevel} {
		r := NewRasteriser(rect.Rect{URx: w, URy: h})
		r.Width = 2
		r.Join = join
		got := collectStroke(r, square, w, h)
		area[join] = coverageSum(got)

		if math.Abs(float64(got[20*w+20])) > 1e-5 {
			t.Errorf("join %d: centre coverage %.4f, want 0", join, got[20*w+20])
		}
		if math.Abs(float64(got[10*w+20])-1) > 1e-5 {
			t.Errorf("join %d: edge coverage %.4f, want 1", join, got[10*w+20])
		}
	}

	const eps = 1e-3
	if math.Abs(area[graphics.LineJoinMiter]-160) > eps {
		t.Errorf("miter area %.4f, want 160", area[graphics.LineJoinMiter])
	}
	if math.Abs(area[graphics.LineJoinBevel]-158) > eps {
		t.Errorf("bevel area %.4f, want 158", area[graphics.LineJoinBevel])
	}
	if r := area[graphics.LineJoinRound]; r <= 158+eps || r >= 160-eps {
		t.Errorf("round area %.4f, want strictly between 158 and 160", r)
	}
}

func TestStrokeMiterLimit(t *testing.T) {
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 5, Y: 35}).
		LineTo(vec.Vec2{X: 20, Y: 5}).
		LineTo(vec.Vec2{X: 35, Y: 35})

	const w, h = 40, 40
	render := func(join graphics.LineJoinStyle, limit float64) []float32 {
		r := NewRasteriser(rect.Rect{URx: w, URy: h})
		r.Width = 4
		r.Join = join
		r.MiterLimit = limit
		return collectStroke(r, corner, w, h)
	}

	bevel := render(graphics.LineJoinBevel, 10)
	limited := render(graphics.LineJoinMiter, 1)
	for i := range bevel {
		if bevel[i] != limited[i] {
			t.Fatalf("pixel (%d,%d): bevel %.4f, limited miter %.4f", i%w, i/w, bevel[i], limited[i])
		}
	}

	miter := render(graphics.LineJoinMiter, 10)
	if coverageSum(miter) <= coverageSum(bevel) {
		t.Errorf("miter area %.4f not larger than bevel area %.4f", coverageSum(miter), coverageSum(bevel))
	}
}

func TestStrokeCircle(t *testing.T) {
	const n = 64
	p := &path.Data{}
	for i := range n {
		phi := 2 * math.Pi * float64(i) / n
		q := vec.Vec2{X: 20 + 10*math.Cos(phi), Y: 20 + 10*math.Sin(phi)}
		if i == 0 {
			p = p.MoveTo(q)
		} else {
			p = p.LineTo(q)
		}
	}
	p = p.Close()

	const w, h = 40, 40
	for _, approach := range approaches {
		t.Run(approach.name, func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: w, URy: h})
			r.smallPathThreshold = approach.threshold
			r.Width = 4
			r.Join = graphics.LineJoinRound
			got := collectStroke(r, p, w, h)

			want := math.Pi * (12*12 - 8*8)
			if area := coverageSum(got); math.Abs(area-want) > 0.03*want {
				t.Errorf("area %.4f, want %.4f", area, want)
			}
			if math.Abs(float64(got[19*w+19])) > 1e-5 {
				t.Errorf("centre coverage %.4f, want 0", got[19*w+19])
			}
			if got[20*w+30] < 0.99 {
				t.Errorf("band coverage %.4f, want 1", got[20*w+30])
			}
		})
	}
}

func TestStrokeCTM(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 5}).
		LineTo(vec.Vec2{X: 10, Y: 5})

	const w, h = 24, 16
	r := NewRasteriser(rect.Rect{URx: w, URy: h})
	r.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}
	r.Width = 2
	got := collectStroke(r, line, w, h)

	// device rectangle (4,8)-(20,12)
	if area := coverageSum(got); math.Abs(area-64) > 1e-3 {
		t.Errorf("area %.4f, want 64", area)
	}
	if math.Abs(float64(got[10*w+12])-1) > 1e-5 {
		t.Errorf("centre coverage %.4f, want 1", got[10*w+12])
	}
}

func TestStrokeDegenerate(t *testing.T) {
	const w, h = 10, 10
	dot := (&path.Data{}).
		MoveTo(vec.Vec2{X: 5, Y: 5}).
		LineTo(vec.Vec2{X: 5, Y: 5})
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 5}).
		LineTo(vec.Vec2{X: 8, Y: 5})
	moveOnly := (&path.Data{}).MoveTo(vec.Vec2{X: 5, Y: 5})

	cases := []struct {
		name     string
		p        *path.Data
		width    float64
		cap      graphics.LineCapStyle
		min, max float64
	}{
		{"zero_width", line, 0, graphics.LineCapRound, 0, 0},
		{"negative_width", line, -2, graphics.LineCapButt, 0, 0},
		{"nan_width", line, math.NaN(), graphics.LineCapButt, 0, 0},
		{"dot_butt", dot, 2, graphics.LineCapButt, 0, 0},
		{"dot_square", dot, 2, graphics.LineCapSquare, 0, 0},
		{"dot_round", dot, 2, graphics.LineCapRound, 2, math.Pi},
		{"move_only", moveOnly, 2, graphics.LineCapRound, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: w, URy: h})
			r.Width = tc.width
			r.Cap = tc.cap
			area := coverageSum(collectStroke(r, tc.p, w, h))
			if area < tc.min-1e-6 || area > tc.max+1e-6 {
				t.Errorf("area %.4f, want in [%.4f, %.4f]", area, tc.min, tc.max)
			}
		})
	}
}

func TestStrokeOutline(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 4, Y: 26}).
		LineTo(vec.Vec2{X: 14, Y: 6}).
		CubeTo(vec.Vec2{X: 20, Y: 0}, vec.Vec2{X: 26, Y: 30}, vec.Vec2{X: 28, Y: 12}).
		MoveTo(vec.Vec2{X: 6, Y: 8}).
		LineTo(vec.Vec2{X: 10, Y: 8}).
		LineTo(vec.Vec2{X: 8, Y: 12}).
		Close()

	const w, h = 32, 32
	for _, join := range []graphics.LineJoinStyle{graphics.LineJoinMiter, graphics.LineJoinRound, graphics.LineJoinBevel} {
		r := NewRasteriser(rect.Rect{URx: w, URy: h})
		r.Width = 3
		r.Cap = graphics.LineCapRound
		r.Join = join
		stroked := collectStroke(r, p, w, h)
		outline := r.StrokeOutline(p)

		r.Reset(rect.Rect{URx: w, URy: h})
		filled := collect(r, outline, w, h)
		for i := range stroked {
			if math.Abs(float64(stroked[i]-filled[i])) > 1e-5 {
				t.Fatalf("join %d, pixel (%d,%d): stroke %.4f, outline %.4f",
					join, i%w, i/w, stroked[i], filled[i])
			}
		}
	}

	r := NewRasteriser(rect.Rect{URx: w, URy: h})
	r.Width = 0
	if outline := r.StrokeOutline(p); len(outline.Cmds) != 0 {
		t.Errorf("zero width: got %d commands, want 0", len(outline.Cmds))
	}
}

func TestResetStroke(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	r.Width = 5
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinBevel
	r.MiterLimit = 2
	r.Reset(rect.Rect{URx: 10, URy: 10})

	if r.Width != 1 || r.Cap != graphics.LineCapButt || r.Join != graphics.LineJoinMiter || r.MiterLimit != defaultMiterLimit {
		t.Errorf("Reset left pen %v/%d/%d/%v", r.Width, r.Cap, r.Join, r.MiterLimit)
	}
}
