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

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/padicon"
)

type sceneShape struct {
	Name   string         `json:"name"`
	Color  string         `json:"color"`
	Coords []int          `json:"coords"`
	Path   []sceneSegment `json:"path"`
	Stroke *scenePen      `json:"stroke,omitempty"`
}

type scenePen struct {
	Width float64 `json:"width"`
	Cap   string  `json:"cap"`
	Join  string  `json:"join"`
}

type sceneSegment struct {
	Op     string       `json:"op"`
	Points [][2]float64 `json:"points,omitempty"`
}

var opNames = map[path.Command]string{
	path.CmdMoveTo: "M",
	path.CmdLineTo: "L",
	path.CmdQuadTo: "Q",
	path.CmdCubeTo: "C",
	path.CmdClose:  "Z",
}

var capNames = map[graphics.LineCapStyle]string{
	graphics.LineCapButt:   "butt",
	graphics.LineCapRound:  "round",
	graphics.LineCapSquare: "square",
}

var joinNames = map[graphics.LineJoinStyle]string{
	graphics.LineJoinMiter: "miter",
	graphics.LineJoinRound: "round",
	graphics.LineJoinBevel: "bevel",
}

var opArgs = map[path.Command]int{
	path.CmdMoveTo: 1,
	path.CmdLineTo: 1,
	path.CmdQuadTo: 2,
	path.CmdCubeTo: 3,
}

func newSceneCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Print the drawing instructions as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scene := padicon.Scene(size)
			res := make([]sceneShape, len(scene))
			for i, s := range scene {
				c := s.Color
				res[i] = sceneShape{
					Name:   s.Name,
					Color:  fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A),
					Coords: s.Geom.Coords(),
					Path:   segments(s.Geom.Path()),
				}
				if pen := s.Geom.Pen(); pen != nil {
					res[i].Stroke = &scenePen{
						Width: pen.Width,
						Cap:   capNames[pen.Cap],
						Join:  joinNames[pen.Join],
					}
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "s", 256, "icon size in pixels")
	return cmd
}

func segments(p *path.Data) []sceneSegment {
	res := make([]sceneSegment, 0, len(p.Cmds))
	k := 0
	for _, cmd := range p.Cmds {
		seg := sceneSegment{Op: opNames[cmd]}
		for range opArgs[cmd] {
			v := p.Coords[k]
			seg.Points = append(seg.Points, [2]float64{v.X, v.Y})
			k++
		}
		res = append(res, seg)
	}
	return res
}
