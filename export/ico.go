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
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/tc-hib/winres"
)

// encodeICO writes an ICO file with one PNG-compressed frame per image.
// The frames must be square, at most 256 pixels wide, and sorted by
// decreasing size.
func encodeICO(w io.Writer, frames []image.Image) error {
	icon, err := winres.NewIconFromImages(frames)
	if err != nil {
		return fmt.Errorf("building icon: %w", err)
	}
	return icon.SaveICO(w)
}

// ICO file layout.
const (
	icoHeaderLen = 6
	icoEntryLen  = 16
)

// readICODir reads the header and the directory of an ICO file and
// returns the frame sizes, in file order.
func readICODir(r io.Reader) ([]image.Point, error) {
	var hdr [icoHeaderLen]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	reserved := binary.LittleEndian.Uint16(hdr[0:])
	kind := binary.LittleEndian.Uint16(hdr[2:])
	count := int(binary.LittleEndian.Uint16(hdr[4:]))
	if reserved != 0 || kind != 1 {
		return nil, errors.New("not an ICO file")
	}

	res := make([]image.Point, count)
	var entry [icoEntryLen]byte
	for i := range res {
		if _, err := io.ReadFull(r, entry[:]); err != nil {
			return nil, fmt.Errorf("ICO directory entry %d: %w", i, err)
		}
		res[i] = image.Point{X: icoDim(entry[0]), Y: icoDim(entry[1])}
	}
	return res, nil
}

// icoDim decodes a width or height byte, where 0 stands for 256.
func icoDim(b byte) int {
	if b == 0 {
		return 256
	}
	return int(b)
}
