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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// pathBuilder receives the segments of a path.
type pathBuilder interface {
	moveTo(a vec.Vec2)
	lineTo(b vec.Vec2)
	quadTo(b, c vec.Vec2)
	cubeTo(b, c, d vec.Vec2)

	// endSubpath finishes the current subpath. If closed is set, the
	// subpath is joined back to its start point.
	endSubpath(closed bool)
}

// walk sends the segments of p to dst. Every subpath is finished before
// the next one starts, and at the end of the path. For filling, all
// subpaths are closed. Otherwise only subpaths closed in p are closed.
func walk(p *path.Data, dst pathBuilder, fill bool) {
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				dst.endSubpath(fill)
			}
			dst.moveTo(p.Coords[k])
			open = true
			k++
		case path.CmdLineTo:
			dst.lineTo(p.Coords[k])
			k++
		case path.CmdQuadTo:
			dst.quadTo(p.Coords[k], p.Coords[k+1])
			k += 2
		case path.CmdCubeTo:
			dst.cubeTo(p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			k += 3
		case path.CmdClose:
			if open {
				dst.endSubpath(true)
				open = false
			}
		}
	}
	if open {
		dst.endSubpath(fill)
	}
}
