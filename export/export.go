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

// Package export writes the icon artifacts: a 256×256 PNG, a
// multi-resolution ICO file and a 512×512 PNG.
package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/padicon"
	"seehuhn.de/go/padicon/paint"
)

// Names of the generated files.
const (
	PNGName      = "icon.png"
	ICOName      = "icon.ico"
	LargePNGName = "icon-512.png"
)

// DefaultDir is the output directory used when [Options.Dir] is empty.
const DefaultDir = "assets"

// PNGSize and LargeSize are the sizes of the two PNG files.
const (
	PNGSize   = 256
	LargeSize = 512
)

var frameSizes = []int{256, 128, 64, 48, 32, 16}

// FrameSizes returns the sizes of the ICO frames, in file order.
func FrameSizes() []int {
	return slices.Clone(frameSizes)
}

// Options configures [Run].
type Options struct {
	// Dir is the output directory. It must exist, unless CreateDir is set.
	Dir string

	// Backend selects the painting backend.
	Backend paint.Backend

	// Jobs limits the number of concurrent renders.
	// Zero or less means runtime.GOMAXPROCS(0).
	Jobs int

	// CreateDir allows Run to create a missing output directory.
	CreateDir bool

	// Logger receives progress messages. Nil means slog.Default().
	Logger *slog.Logger
}

// Artifact describes a written file.
type Artifact struct {
	Path  string
	Sizes []int // pixel sizes of the contained images
}

// Run renders the icon at all required sizes and writes the three
// artifacts to the output directory.
//
// All artifacts are attempted even if some of them fail. The returned
// slice lists the files which were written successfully, and the error
// collects all failures.
func Run(ctx context.Context, opts Options) ([]Artifact, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if _, err := paint.ParseBackend(string(opts.Backend)); err != nil {
		return nil, err
	}

	if err := checkDir(dir, opts.CreateDir); err != nil {
		return nil, err
	}

	sizes := append(slices.Clone(frameSizes), LargeSize)
	images, err := renderAll(ctx, sizes, opts.Backend, opts.Jobs, logger)
	if err != nil {
		return nil, err
	}

	frames := make([]image.Image, len(frameSizes))
	for i, size := range frameSizes {
		frames[i] = images[size]
	}

	jobs := []struct {
		name  string
		sizes []int
		write func(path string) error
	}{
		{PNGName, []int{PNGSize}, func(path string) error {
			return WritePNG(path, images[PNGSize])
		}},
		{ICOName, FrameSizes(), func(path string) error {
			return writeICO(path, frames)
		}},
		{LargePNGName, []int{LargeSize}, func(path string) error {
			return WritePNG(path, images[LargeSize])
		}},
	}

	var written []Artifact
	var merr *multierror.Error
	for _, job := range jobs {
		path := filepath.Join(dir, job.name)
		if err := job.write(path); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("writing %s: %w", path, err))
			continue
		}
		logger.Info("created", "path", path, "size", sizeLabel(job.sizes))
		written = append(written, Artifact{Path: path, Sizes: job.sizes})
	}
	return written, merr.ErrorOrNil()
}

// checkDir makes sure that dir exists and is a directory.
func checkDir(dir string, create bool) error {
	fi, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist) && create:
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("output directory: %w", err)
	case !fi.IsDir():
		return fmt.Errorf("output directory %s: not a directory", dir)
	}
	return nil
}

// renderAll renders the icon at the given sizes, using at most jobs
// goroutines.
func renderAll(ctx context.Context, sizes []int, backend paint.Backend, jobs int, logger *slog.Logger) (map[int]*image.RGBA, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*image.RGBA, len(sizes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, size := range sizes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			img, err := padicon.RenderWith(size, backend)
			if err != nil {
				return fmt.Errorf("rendering %dx%d: %w", size, size, err)
			}
			logger.Debug("rendered", "size", size, "backend", string(backend), "duration", time.Since(start))
			results[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	images := make(map[int]*image.RGBA, len(sizes))
	for i, size := range sizes {
		images[size] = results[i]
	}
	return images, nil
}

func sizeLabel(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = fmt.Sprintf("%dx%d", s, s)
	}
	return strings.Join(parts, ",")
}
