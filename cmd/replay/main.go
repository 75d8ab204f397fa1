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
	"log"

	"github.com/circlescript/gallifreyan/lib"
)

// replay re-renders a previously saved scene file, optionally dumping
// its raw anchor graph (word and letter centres, no band stitching)
// through the debug canvas instead of the full SVGDocument backend.
func main() {
	var (
		fScene string
		fOut   string
		debug  bool
	)
	flag.StringVar(&fScene, "scene", "", "scene description (JSON)")
	flag.StringVar(&fOut, "out", "replay.svg", "output file")
	flag.BoolVar(&debug, "debug", false, "dump the raw anchor graph instead of rendering")
	flag.Parse()

	if len(fScene) == 0 {
		flag.Usage()
		log.Fatal("missing scene filename")
	}
	scene, err := lib.LoadScene(fScene)
	if err != nil {
		log.Fatal(err)
	}

	width, height, background := lib.Cfg.Render.Width, lib.Cfg.Render.Height, lib.Cfg.Render.Background
	if scene.Render != nil {
		if scene.Render.Width > 0 {
			width = scene.Render.Width
		}
		if scene.Render.Height > 0 {
			height = scene.Render.Height
		}
		if scene.Render.Background != "" {
			background = scene.Render.Background
		}
	}

	if debug {
		replayDebug(scene, width, height, fOut)
		return
	}

	doc, origin := lib.NewSVGDocument(float64(width), float64(height), background)
	words, anchors, err := scene.Build(origin)
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range words {
		if err := w.Draw(doc); err != nil {
			log.Fatal(err)
		}
	}
	deco, err := scene.BuildDecorators(anchors, lib.DefaultRenderContext(origin.AbsSVGXY(0, 0)).WithStrokeWidth(lib.Cfg.Render.StrokeWide))
	if err != nil {
		log.Fatal(err)
	}
	for _, d := range deco {
		d.Draw(doc)
	}
	if err := doc.Save(fOut); err != nil {
		log.Fatal(err)
	}
	log.Printf("rendered %d word(s) to %s", len(words), fOut)
}

// replayDebug dumps every word and letter anchor as a labelled circle,
// with no band stitching, via the secondary ajstarks/svgo canvas.
func replayDebug(scene *lib.Scene, width, height int, fOut string) {
	origin := lib.NewCanvasPosition(float64(width)/2, float64(height)/2)
	_, anchors, err := scene.Build(origin)
	if err != nil {
		log.Fatal(err)
	}
	canvas, err := lib.GetCanvas(width, height)
	if err != nil {
		log.Fatal(err)
	}
	for name, pos := range anchors {
		x, y := pos.AbsSVGXY(float64(width)/2, float64(height)/2)
		r := 6.0
		clr := lib.ClrBlue
		if pos.Kind() == lib.KindPolar {
			r = 3
			clr = lib.ClrRed
		}
		canvas.Circle(x, y, r, 1, lib.ClrBlack, clr)
		canvas.Text(x, y-float64(r)-2, 12, name, lib.ClrBlack)
	}
	if err := canvas.Close(); err != nil {
		log.Fatal(err)
	}
	if err := canvas.Dump(fOut); err != nil {
		log.Fatal(err)
	}
	log.Printf("dumped %d anchor(s) to %s", len(anchors), fOut)
}
