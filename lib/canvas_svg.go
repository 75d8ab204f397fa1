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
	"bytes"
	"fmt"
	"image/color"
	"os"

	svg "github.com/ajstarks/svgo"
)

//----------------------------------------------------------------------
// Debug canvas: raw anchor-graph dump (no bands, no fills)
//----------------------------------------------------------------------

// DebugCanvas renders a scene's raw anchor graph via the ajstarks/svgo
// streaming API rather than the accumulating twpayne/go-svg document
// model, so the replay tool can dump anchors/radii without going
// through the full band-stitching path.
type DebugCanvas struct {
	svg  *svg.SVG
	buf  *bytes.Buffer
	w, h int
}

// NewDebugCanvas opens a debug canvas of the given pixel size.
func NewDebugCanvas(w, h int) (*DebugCanvas, error) {
	c := &DebugCanvas{buf: new(bytes.Buffer), w: w, h: h}
	c.svg = svg.New(c.buf)
	c.svg.Start(w, h)
	return c, nil
}

// Circle primitive.
func (c *DebugCanvas) Circle(x, y, r, w float64, clrBorder, clrFill *color.RGBA) {
	fill := "none"
	if clrFill != nil {
		fill = hexColour(clrFill)
	}
	border := ""
	if w > 0 && clrBorder != nil {
		border = fmt.Sprintf("stroke:%s;stroke-width:%.2f;", hexColour(clrBorder), w)
	}
	style := fmt.Sprintf("%sfill:%s", border, fill)
	c.svg.Circle(int(x), int(y), int(r), style)
}

// Text primitive.
func (c *DebugCanvas) Text(x, y, fs float64, s string, clr *color.RGBA) {
	style := fmt.Sprintf("text-anchor:middle;font-size:%dpx", int(fs))
	if clr != nil {
		style = fmt.Sprintf("%s;fill:%s", style, hexColour(clr))
	}
	c.svg.Text(int(x), int(y), s, style)
}

// Line primitive.
func (c *DebugCanvas) Line(x1, y1, x2, y2, w float64, clr *color.RGBA) {
	style := "stroke:black;stroke-width:1"
	if w > 0 && clr != nil {
		style = fmt.Sprintf("stroke:%s;stroke-width:%.2f;", hexColour(clr), w)
	}
	c.svg.Line(int(x1), int(y1), int(x2), int(y2), style)
}

// Close finalizes the SVG stream. No further operations are allowed.
func (c *DebugCanvas) Close() error {
	c.svg.End()
	return nil
}

// Dump writes the accumulated stream to fName.
func (c *DebugCanvas) Dump(fName string) (err error) {
	var f *os.File
	if f, err = os.Create(fName); err != nil {
		return
	}
	defer f.Close()
	_, err = f.Write(c.buf.Bytes())
	return
}

func hexColour(c *color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
