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
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/circlescript/gallifreyan/lib"
)

// render a Gallifreyan scene description to an SVG document.
//
// The scene ('-scene') lists words, each anchored in Gallifreyan space
// relative to the canvas centre, with its own letters or a Lua script
// ('-fit' aside) that registers them procedurally. A word is stitched
// into a ring with notches cut for its letters and rendered via the
// twpayne/go-svg backend, then written to '-out'. Only B and S letters
// cut notches; J and Z letters are drawn as free circles on top.
//
// If a scene cache is configured, a scene whose canonical JSON hashes
// to an already-rendered document is served from the cache instead of
// being stitched again.
func main() {
	var (
		config  string // configuration file
		fScene  string // scene description file
		fOut    string // output SVG file
		fFit    string // points file for -fit circle-fit helper
		catalog bool   // use the scene cache
	)
	flag.StringVar(&config, "config", "", "configuration file")
	flag.StringVar(&fScene, "scene", "", "scene description (JSON)")
	flag.StringVar(&fOut, "out", "out.svg", "output SVG file")
	flag.StringVar(&fFit, "fit", "", "fit a circle to a points file instead of rendering")
	flag.BoolVar(&catalog, "catalog", false, "cache rendered scenes in the catalog database")
	flag.Parse()

	if len(config) > 0 {
		if err := lib.ReadConfig(config); err != nil {
			log.Fatal(err)
		}
	}

	if len(fFit) > 0 {
		runFit(fFit)
		return
	}

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

	var cat *lib.Catalog
	var hash string
	if catalog {
		raw, err := json.Marshal(scene)
		if err != nil {
			log.Fatal(err)
		}
		hash = lib.HashScene(raw)
		if cat, err = lib.OpenCatalog(lib.Cfg.Catalog.Path); err != nil {
			log.Fatal(err)
		}
		defer cat.Close()
		if svg, ok := cat.Lookup(hash); ok {
			if err := os.WriteFile(fOut, []byte(svg), 0o644); err != nil {
				log.Fatal(err)
			}
			return
		}
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
	if cat != nil {
		svg, err := os.ReadFile(fOut)
		if err != nil {
			log.Fatal(err)
		}
		if err := cat.Store(hash, string(svg)); err != nil {
			log.Fatal(err)
		}
	}
}

// runFit reads a JSON array of [x,y] points and prints the
// least-squares circle through them.
func runFit(fname string) {
	data, err := os.ReadFile(fname)
	if err != nil {
		log.Fatal(err)
	}
	var pnts [][2]float64
	if err := json.Unmarshal(data, &pnts); err != nil {
		log.Fatal(err)
	}
	r, ctr, resid := lib.BestFitCircle(pnts)
	log.Printf("fit: radius=%.4f centre=(%.4f,%.4f) residual=%.6f", r, ctr[0], ctr[1], resid)
}
