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
	"math"
	"os"

	"github.com/circlescript/gallifreyan/lib"
)

// LegacyLetter places a letter by its absolute Gallifreyan-space centre
// (relative to the canvas centre, y growing upward), the format an
// early scene-authoring sketch is likely to use before the word's own
// anchor is known.
type LegacyLetter struct {
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Stem   string  `json:"stem"`
}

// LegacyWord is a word with an absolute centre and absolutely placed
// letters.
type LegacyWord struct {
	Name    string         `json:"name"`
	CX      float64        `json:"cx"`
	CY      float64        `json:"cy"`
	Radius  float64        `json:"radius"`
	Letters []LegacyLetter `json:"letters"`
}

// LegacyScene is the flat precursor scene format: every position is an
// absolute Gallifreyan-space coordinate rather than relative-polar.
type LegacyScene struct {
	Words []LegacyWord `json:"words"`
}

// convert a flat, absolute-coordinate legacy scene into the current
// word-relative-polar lib.Scene format.
func main() {
	var (
		fIn  string
		fOut string
	)
	flag.StringVar(&fIn, "in", "", "legacy scene input (JSON)")
	flag.StringVar(&fOut, "out", "", "converted scene output (JSON)")
	flag.Parse()

	if len(fIn) == 0 {
		flag.Usage()
		log.Fatal("missing input filename")
	}
	if len(fOut) == 0 {
		fOut = fIn + ".converted.json"
	}

	body, err := os.ReadFile(fIn)
	if err != nil {
		log.Fatal(err)
	}
	legacy := new(LegacyScene)
	if err := json.Unmarshal(body, legacy); err != nil {
		log.Fatal(err)
	}

	scene := &lib.Scene{}
	for _, lw := range legacy.Words {
		ws := lib.WordSpec{Name: lw.Name, X: lw.CX, Y: lw.CY, Radius: lw.Radius}
		for _, ll := range lw.Letters {
			dx, dy := ll.X-lw.CX, ll.Y-lw.CY
			r := math.Hypot(dx, dy)
			theta := math.Atan2(dx, dy)
			if theta < 0 {
				theta += 2 * math.Pi
			}
			ws.Letters = append(ws.Letters, lib.LetterSpec{
				Name: ll.Name, R: r, Theta: theta, Radius: ll.Radius, Stem: ll.Stem,
			})
		}
		scene.Words = append(scene.Words, ws)
	}

	out, err := json.MarshalIndent(scene, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(fOut, out, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("converted %d word(s) to %s", len(scene.Words), fOut)
}
