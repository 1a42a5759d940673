package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rectangle_fractional",
		Path:   rectangle(10.25, 9.5, 43.75, 40.3),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "frame",
		Path:   frame(8, 8, 56, 56, 6),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "sliver",
		Path:   triangle(2, 30, 62, 31, 2, 32),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "open_triangle", // filled as if closed
		Path:   (&path.Data{}).MoveTo(pt(10, 50)).LineTo(pt(32, 10)).LineTo(pt(54, 50)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "clipped",
		Path:   rectangle(-10, 20, 40, 80),
		Width:  64,
		Height: 64,
	},
}

// triangle builds a closed triangle.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// fivePointStar builds a self-intersecting five-pointed star.
// Under the nonzero rule the central pentagon is filled.
func fivePointStar(cx, cy, r float64) *path.Data {
	p := &path.Data{}
	for i, k := range []int{0, 2, 4, 1, 3} {
		angle := float64(k)*2*math.Pi/5 - math.Pi/2
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if i == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// rectangle builds a clockwise rectangle.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// frame builds a rectangle with a rectangular hole of border width d.
// The inner contour is anticlockwise.
func frame(x1, y1, x2, y2, d float64) *path.Data {
	return rectangle(x1, y1, x2, y2).
		MoveTo(pt(x1+d, y1+d)).
		LineTo(pt(x1+d, y2-d)).
		LineTo(pt(x2-d, y2-d)).
		LineTo(pt(x2-d, y1+d)).
		Close()
}
