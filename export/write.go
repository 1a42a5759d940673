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
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Permissions for created files and directories.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// atomicWrite writes a file via a temporary file in the same directory,
// which replaces path once it is complete. On failure the temporary file
// is removed and path is left unchanged.
func atomicWrite(path string, write func(w io.Writer) error) error {
	tmp, err := renameio.TempFile(filepath.Dir(path), path)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer tmp.Cleanup() //nolint:errcheck

	if err := tmp.Chmod(filePerm); err != nil {
		return err
	}

	buf := bufio.NewWriter(tmp)
	if err := write(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	return tmp.CloseAtomicallyReplace()
}

// WritePNG atomically writes img to path as a PNG file.
func WritePNG(path string, img image.Image) error {
	return atomicWrite(path, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

func writeICO(path string, frames []image.Image) error {
	return atomicWrite(path, func(w io.Writer) error {
		return encodeICO(w, frames)
	})
}
