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
	"fmt"
	"os"
	"strings"

	"github.com/twpayne/go-svg"
	"github.com/twpayne/go-svg/svgpath"
)

// SVGDocument is the primary rendering backend: an accumulating
// twpayne/go-svg document plus the canvas geometry it was opened
// with.
type SVGDocument struct {
	graph         *svg.Svg
	width, height float64
}

// NewSVGDocument opens a canvas of the given size with a solid
// background rectangle, and returns the document together with its
// canvas origin (the centre of the canvas, width/2,height/2) — the
// projection origin for Gallifreyan-absolute positions.
func NewSVGDocument(width, height float64, background string) (*SVGDocument, *Position) {
	graph := svg.New()
	graph.WidthHeight(width, height, svg.PX)
	graph.ViewBox(0, 0, width, height)
	graph.AppendChildren(
		svg.Rect().XYWidthHeight(0, 0, width, height, svg.Number).Fill(nonEmpty(background, "white")),
	)
	origin := NewCanvasPosition(width/2, height/2)
	return &SVGDocument{graph: graph, width: width, height: height}, origin
}

// AddCircle appends a circle node.
func (d *SVGDocument) AddCircle(cx, cy, r float64, ctx RenderContext) {
	el := svg.Circle().CXCYR(cx, cy, r, svg.Number).
		Fill(nonEmpty(ctx.Colours.Fill, "none")).
		Stroke(nonEmpty(ctx.Colours.Stroke, "none")).
		Style(svg.String(strokeStyle(ctx)))
	d.graph.AppendChildren(el)
}

// AddLine appends a straight line node.
func (d *SVGDocument) AddLine(x1, y1, x2, y2 float64, ctx RenderContext) {
	el := svg.Line().X1Y1X2Y2(x1, y1, x2, y2, svg.Number).
		Stroke(nonEmpty(ctx.Colours.Stroke, "black")).
		Style(svg.String(strokeStyle(ctx)))
	d.graph.AppendChildren(el)
}

// AddPath appends a path node built from cmds.
func (d *SVGDocument) AddPath(cmds []PathCmd, ctx RenderContext) {
	p := svgpath.New()
	for _, c := range cmds {
		switch c.Kind {
		case CmdMove:
			p.MoveToAbs([]float64{c.X, c.Y})
		case CmdArc:
			p.ArcToAbs(c.Radius, c.Radius, 0, flag(c.LargeArc), flag(c.Sweep), []float64{c.X, c.Y})
		case CmdClose:
			p.ClosePath()
		}
	}
	el := svg.Path().D(p).
		Fill(nonEmpty(ctx.Colours.Fill, "none")).
		Stroke(nonEmpty(ctx.Colours.Stroke, "none")).
		Style(svg.String(strokeStyle(ctx)))
	d.graph.AppendChildren(el)
}

// Save writes the document to path, appending ".svg" if absent.
func (d *SVGDocument) Save(path string) error {
	if !strings.HasSuffix(path, ".svg") {
		path += ".svg"
	}
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	_, err = d.graph.WriteToIndent(fp, "", "  ")
	return err
}

func strokeStyle(ctx RenderContext) string {
	return fmt.Sprintf("stroke-width:%.4f", ctx.Stroke.Width())
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
