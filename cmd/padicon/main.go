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

// Padicon draws the notepad application icon and writes it as
// assets/icon.png, assets/icon.ico and assets/icon-512.png.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/padicon/export"
	"seehuhn.de/go/padicon/paint"
)

type rootOptions struct {
	out       string
	backend   string
	jobs      int
	createDir bool
	logLevel  string

	logger *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "padicon",
		Short: "Generate the notepad application icon",
		Long: "Padicon renders the notepad icon at sizes 256, 128, 64, 48, 32 and 16,\n" +
			"and writes icon.png (256x256), icon.ico (all six sizes) and\n" +
			"icon-512.png (512x512) to the output directory.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := paint.ParseBackend(opts.backend)
			if err != nil {
				return err
			}
			_, err = export.Run(cmd.Context(), export.Options{
				Dir:       opts.out,
				Backend:   backend,
				Jobs:      opts.jobs,
				CreateDir: opts.createDir,
				Logger:    opts.logger,
			})
			return err
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.out, "out", "o", export.DefaultDir, "output directory")
	flags.StringVar(&opts.backend, "backend", string(paint.Default),
		"painting backend, one of "+backendList())
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of concurrent renders")
	cmd.Flags().BoolVar(&opts.createDir, "create-dir", false, "create the output directory if it does not exist")

	cmd.AddCommand(
		newRenderCmd(opts),
		newVerifyCmd(opts),
		newSceneCmd(),
	)
	return cmd
}

func backendList() string {
	var names []string
	for _, b := range paint.Backends() {
		names = append(names, string(b))
	}
	return strings.Join(names, ", ")
}
