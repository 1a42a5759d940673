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
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/padicon"
	"seehuhn.de/go/padicon/paint"
)

var quiet = slog.New(slog.DiscardHandler)

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names
}

func TestRun(t *testing.T) {
	dir := t.TempDir()

	written, err := Run(context.Background(), Options{Dir: dir, Logger: quiet})
	require.NoError(t, err)
	require.Len(t, written, 3)
	assert.Equal(t, filepath.Join(dir, PNGName), written[0].Path)
	assert.Equal(t, frameSizes, written[1].Sizes)
	assert.Equal(t, []string{LargePNGName, ICOName, PNGName}, listDir(t, dir))

	require.NoError(t, Verify(dir))

	f, err := os.Open(filepath.Join(dir, PNGName))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 256, 256), img.Bounds())

	// the PNG holds exactly the rendered pixels
	want := padicon.Render(256)
	for _, pt := range []image.Point{{100, 60}, {40, 150}, {228, 150}, {2, 2}} {
		r0, g0, b0, a0 := want.At(pt.X, pt.Y).RGBA()
		r1, g1, b1, a1 := img.At(pt.X, pt.Y).RGBA()
		if a0 == 0xffff {
			assert.Equal(t, []uint32{r0, g0, b0, a0}, []uint32{r1, g1, b1, a1}, "pixel %v", pt)
		} else {
			assert.InDelta(t, a0, a1, 0x101, "alpha at %v", pt)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, ICOName))
	require.NoError(t, err)
	dims, err := readICODir(bytes.NewReader(data))
	require.NoError(t, err)
	var sizes []int
	for _, d := range dims {
		assert.Equal(t, d.X, d.Y)
		sizes = append(sizes, d.X)
	}
	assert.Equal(t, frameSizes, sizes)

	largest, err := ico.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 256, 256), largest.Bounds())
}

func TestFrameSizes(t *testing.T) {
	sizes := FrameSizes()
	assert.Equal(t, []int{256, 128, 64, 48, 32, 16}, sizes)

	sizes[0] = 1
	assert.Equal(t, 256, FrameSizes()[0])

	written, err := Run(context.Background(), Options{Dir: t.TempDir(), Logger: quiet})
	require.NoError(t, err)
	written[1].Sizes[0] = 1
	assert.Equal(t, 256, FrameSizes()[0])
}

func TestRunTwice(t *testing.T) {
	dir := t.TempDir()
	opts := Options{Dir: dir, Backend: paint.Vector, Jobs: 1, Logger: quiet}

	_, err := Run(context.Background(), opts)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(dir, LargePNGName))
	require.NoError(t, err)

	_, err = Run(context.Background(), opts)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, LargePNGName))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{LargePNGName, ICOName, PNGName}, listDir(t, dir))
}

func TestRunMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "icons")

	_, err := Run(context.Background(), Options{Dir: dir, Logger: quiet})
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = Run(context.Background(), Options{Dir: dir, CreateDir: true, Logger: quiet})
	require.NoError(t, err)
	require.NoError(t, Verify(dir))
}

func TestRunNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "assets")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Run(context.Background(), Options{Dir: file, Logger: quiet})
	require.Error(t, err)
}

func TestRunUnknownBackend(t *testing.T) {
	_, err := Run(context.Background(), Options{Dir: t.TempDir(), Backend: "cairo", Logger: quiet})
	require.ErrorIs(t, err, paint.ErrUnknownBackend)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	_, err := Run(ctx, Options{Dir: dir, Logger: quiet})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, listDir(t, dir))
}

// TestRunPartialFailure checks that a failing artifact does not stop the
// others from being written.
func TestRunPartialFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ICOName), 0o755))

	written, err := Run(context.Background(), Options{Dir: dir, Logger: quiet})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ICOName)
	require.Len(t, written, 2)
	assert.Equal(t, filepath.Join(dir, LargePNGName), written[1].Path)

	// no temporary files are left behind
	assert.Equal(t, []string{LargePNGName, ICOName, PNGName}, listDir(t, dir))
}

func TestAtomicWriteFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	errBoom := errors.New("boom")
	err := atomicWrite(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
	assert.Equal(t, []string{"out.bin"}, listDir(t, dir))
}

func TestAtomicWriteReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, atomicWrite(path, func(w io.Writer) error {
		_, err := w.Write([]byte("new"))
		return err
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
	assert.Equal(t, []string{"out.bin"}, listDir(t, dir))
}

func TestAtomicWritePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	require.NoError(t, atomicWrite(path, func(w io.Writer) error {
		_, err := w.Write([]byte("data"))
		return err
	}))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(filePerm), fi.Mode().Perm())
}

func TestVerifyMissing(t *testing.T) {
	err := Verify(t.TempDir())
	require.ErrorIs(t, err, ErrMissingArtifact)
}

func TestVerifyWrongSize(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(context.Background(), Options{Dir: dir, Logger: quiet})
	require.NoError(t, err)

	require.NoError(t, WritePNG(filepath.Join(dir, LargePNGName), padicon.Render(100)))
	err = Verify(dir)
	require.ErrorIs(t, err, ErrFrameMismatch)
	assert.Contains(t, err.Error(), LargePNGName)
}

func TestVerifyWrongFrames(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(context.Background(), Options{Dir: dir, Logger: quiet})
	require.NoError(t, err)

	frames := []image.Image{padicon.Render(48), padicon.Render(16)}
	require.NoError(t, writeICO(filepath.Join(dir, ICOName), frames))
	err = Verify(dir)
	require.ErrorIs(t, err, ErrFrameMismatch)
}

func TestReadICODir(t *testing.T) {
	var frames []image.Image
	for _, size := range frameSizes {
		frames = append(frames, image.NewRGBA(image.Rect(0, 0, size, size)))
	}
	buf := &bytes.Buffer{}
	require.NoError(t, encodeICO(buf, frames))

	dims, err := readICODir(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, dims, len(frameSizes))
	for i, d := range dims {
		assert.Equal(t, image.Pt(frameSizes[i], frameSizes[i]), d)
	}

	_, err = readICODir(bytes.NewReader([]byte("\x89PNG\r\n\x1a\n")))
	require.Error(t, err)
}
