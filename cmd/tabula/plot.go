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

package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"os"

	"github.com/circlescript/gallifreyan/lib"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// notchPlot renders a grouped bar chart of every word's letter notch
// widths (outer 2·psi1, inner 2·psi2, in degrees) to format ("svg" or
// "png").
func notchPlot(words []*lib.Word, format string) (io.WriterTo, error) {
	p := plot.New()
	p.Title.Text = "letter notch widths"
	p.Y.Label.Text = "degrees"
	p.Legend = plot.NewLegend()

	var labels []string
	var outer, inner plotter.Values
	for _, w := range words {
		for _, nw := range w.NotchWidths() {
			labels = append(labels, fmt.Sprintf("%s.%s", w.Name, nw.Letter))
			outer = append(outer, nw.Outer*180/math.Pi)
			inner = append(inner, nw.Inner*180/math.Pi)
		}
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no letters to plot")
	}

	barOuter, err := plotter.NewBarChart(outer, vg.Points(12))
	if err != nil {
		return nil, err
	}
	barOuter.Color = color.RGBA{R: 0x3a, G: 0x5f, B: 0xcd, A: 0xff}
	barOuter.Offset = -vg.Points(7)

	barInner, err := plotter.NewBarChart(inner, vg.Points(12))
	if err != nil {
		return nil, err
	}
	barInner.Color = color.RGBA{R: 0xcd, G: 0x5a, B: 0x3a, A: 0xff}
	barInner.Offset = vg.Points(7)

	p.Add(barOuter, barInner)
	p.Legend.Add("outer (2ψ1)", barOuter)
	p.Legend.Add("inner (2ψ2)", barInner)
	p.NominalX(labels...)

	return p.WriterTo(24*vg.Centimeter, 10*vg.Centimeter, format)
}

// plotFile renders a scene's letter notch-width chart directly to a
// file, bypassing the preview server.
func plotFile(args []string) {
	var (
		fScene string
		fOut   string
		format string
	)
	fs := flag.NewFlagSet("plot-file", flag.ContinueOnError)
	fs.StringVar(&fScene, "scene", "", "scene description (JSON)")
	fs.StringVar(&fOut, "out", "notches.svg", "output chart file")
	fs.StringVar(&format, "format", "svg", "chart format [svg,png]")
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}
	if len(fScene) == 0 {
		log.Fatal("missing scene filename")
	}

	scene, err := lib.LoadScene(fScene)
	if err != nil {
		log.Fatal(err)
	}
	origin := lib.NewCanvasPosition(0, 0)
	words, _, err := scene.Build(origin)
	if err != nil {
		log.Fatal(err)
	}
	wrt, err := notchPlot(words, format)
	if err != nil {
		log.Fatal(err)
	}
	fp, err := os.Create(fOut)
	if err != nil {
		log.Fatal(err)
	}
	defer fp.Close()
	if _, err := wrt.WriteTo(fp); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote notch chart to %s", fOut)
}
