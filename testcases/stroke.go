package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/padicon/shape"
)

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Stroke: &shape.Pen{Width: 8, Cap: graphics.LineCapButt},
	},
	{
		Name:   "line_round",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Stroke: &shape.Pen{Width: 8, Cap: graphics.LineCapRound},
	},
	{
		Name:   "line_square",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Stroke: &shape.Pen{Width: 8, Cap: graphics.LineCapSquare},
	},
	{
		Name:   "line_hairline",
		Path:   horizontalLine(8.5, 20.5, 55.5),
		Width:  64,
		Height: 64,
		Stroke: &shape.Pen{Width: 1, Cap: graphics.LineCapSquare},
	},
	{
		Name:   "corner_miter",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Stroke: &shape.Pen{Width: 6, Join: graphics.LineJoinMiter},
	},
	{
		Name:   "corner_round",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Stroke: &shape.Pen{Width: 6, Join: graphics.LineJoinRound},
	},
	{
		Name:   "corner_bevel",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Stroke: &shape.Pen{Width: 6, Join: graphics.LineJoinBevel},
	},
	{
		Name:   "closed_square",
		Path:   rectangle(12, 12, 52, 52),
		Width:  64,
		Height: 64,
		Stroke: &shape.Pen{Width: 5, Join: graphics.LineJoinMiter},
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Stroke: &shape.Pen{Width: 4, Join: graphics.LineJoinRound},
	},
}

// horizontalLine builds a horizontal line segment.
func horizontalLine(x1, y, x2 float64) *path.Data {
	return (&path.Data{}).MoveTo(pt(x1, y)).LineTo(pt(x2, y))
}

// corner builds a path with two line segments meeting at a corner.
func corner(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).MoveTo(pt(x1, y1)).LineTo(pt(x2, y2)).LineTo(pt(x3, y3))
}
