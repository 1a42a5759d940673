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
	"errors"

	"github.com/spf13/cobra"

	"seehuhn.de/go/padicon"
	"seehuhn.de/go/padicon/export"
	"seehuhn.de/go/padicon/paint"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		size   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the icon at a single size as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New("no output file given")
			}
			backend, err := paint.ParseBackend(opts.backend)
			if err != nil {
				return err
			}
			img, err := padicon.RenderWith(size, backend)
			if err != nil {
				return err
			}
			if err := export.WritePNG(output, img); err != nil {
				return err
			}
			n := img.Bounds().Dx()
			opts.logger.Info("created", "path", output, "size", n)
			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "s", export.PNGSize, "icon size in pixels")
	cmd.Flags().StringVar(&output, "output", "", "output PNG file")
	return cmd
}
