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

package export

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	ico "github.com/sergeymakinen/go-ico"
)

var (
	// ErrMissingArtifact indicates that an output file does not exist.
	ErrMissingArtifact = errors.New("missing artifact")

	// ErrFrameMismatch indicates that an image has unexpected dimensions,
	// or that an ICO file has the wrong set of frames.
	ErrFrameMismatch = errors.New("frame mismatch")
)

// Verify checks the artifacts in dir: both PNG files must decode to
// images of the expected size, and the ICO file must contain exactly the
// frames listed by [FrameSizes], in order. All problems are reported.
func Verify(dir string) error {
	if dir == "" {
		dir = DefaultDir
	}

	var merr *multierror.Error
	check := func(name string, f func(data []byte) error) {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrMissingArtifact
		}
		if err == nil {
			err = f(data)
		}
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", path, err))
		}
	}

	check(PNGName, func(data []byte) error { return checkPNG(data, PNGSize) })
	check(ICOName, checkICO)
	check(LargePNGName, func(data []byte) error { return checkPNG(data, LargeSize) })

	return merr.ErrorOrNil()
}

func checkPNG(data []byte, size int) error {
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if cfg.Width != size || cfg.Height != size {
		return fmt.Errorf("%w: image is %dx%d, want %dx%d",
			ErrFrameMismatch, cfg.Width, cfg.Height, size, size)
	}
	return nil
}

func checkICO(data []byte) error {
	dims, err := readICODir(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if len(dims) != len(frameSizes) {
		return fmt.Errorf("%w: %d frames, want %d", ErrFrameMismatch, len(dims), len(frameSizes))
	}
	for i, d := range dims {
		if d.X != frameSizes[i] || d.Y != frameSizes[i] {
			return fmt.Errorf("%w: frame %d is %dx%d, want %dx%d",
				ErrFrameMismatch, i, d.X, d.Y, frameSizes[i], frameSizes[i])
		}
	}

	// make sure that the frame data can be decoded
	frames, err := ico.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return err
	}
	for i, img := range frames {
		b := img.Bounds()
		if b.Dx() != dims[i].X || b.Dy() != dims[i].Y {
			return fmt.Errorf("%w: frame %d decodes to %dx%d, directory says %dx%d",
				ErrFrameMismatch, i, b.Dx(), b.Dy(), dims[i].X, dims[i].Y)
		}
	}
	return nil
}
