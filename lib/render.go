//----------------------------------------------------------------------
// This file is part of gallifreyan.
// Copyright (C) 2024-present the gallifreyan authors.
//
// gallifreyan is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// gallifreyan is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package lib

import (
	"image/color"
)

// Colour definitions for debug-canvas drawing.
var (
	ClrWhite = &color.RGBA{255, 255, 255, 0}
	ClrRed   = &color.RGBA{255, 0, 0, 0}
	ClrRedTr = &color.RGBA{255, 0, 0, 224}
	ClrPink  = &color.RGBA{255, 0, 255, 0}
	ClrBlack = &color.RGBA{0, 0, 0, 0}
	ClrGray  = &color.RGBA{127, 127, 127, 0}
	ClrBlue  = &color.RGBA{0, 0, 255, 0}
	ClrGreen = &color.RGBA{0, 255, 0, 0}
	ClrCyan  = &color.RGBA{0, 255, 255, 0}
)

// Canvas is the minimal secondary drawing surface used by the replay
// tool to dump a scene's raw anchor graph — positions, radii and
// labels — independently of the primary SVGDocument backend. Unlike
// SVGDocument it has no notion of bands, notches or fill colours: it
// just marks points.
type Canvas interface {
	// Circle primitive, border+fill optional.
	Circle(x, y, r, w float64, clrBorder, clrFill *color.RGBA)

	// Text primitive.
	Text(x, y, fs float64, s string, clr *color.RGBA)

	// Line primitive.
	Line(x1, y1, x2, y2, w float64, clr *color.RGBA)

	// Dump canvas to file.
	Dump(fName string) error

	// Close a canvas. No further operations are allowed.
	Close() error
}

// GetCanvas returns a debug canvas of the given pixel size.
func GetCanvas(width, height int) (Canvas, error) {
	return NewDebugCanvas(width, height)
}
