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

package padicon

import "image/color"

// Colours of the icon.
var (
	padColor       = color.NRGBA{R: 45, G: 52, B: 64, A: 255}
	highlightColor = color.NRGBA{R: 59, G: 66, B: 82, A: 255}
	bindingColor   = color.NRGBA{R: 136, G: 192, B: 208, A: 255}
	paperColor     = color.NRGBA{R: 236, G: 239, B: 244, A: 255}
	lineColor      = color.NRGBA{R: 180, G: 190, B: 200, A: 255}
	accentColor    = color.NRGBA{R: 163, G: 190, B: 140, A: 255} // brand green
	textColor      = color.NRGBA{R: 76, G: 86, B: 106, A: 255}
	ringColor      = color.NRGBA{R: 100, G: 150, B: 170, A: 255}
	tipColor       = color.NRGBA{R: 80, G: 100, B: 70, A: 255}
	indicatorColor = color.NRGBA{R: 255, G: 255, B: 255, A: 200}
	shadowColor    = color.NRGBA{A: 80}
)
