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
	"encoding/json"
	"fmt"
	"os"
)

// LetterSpec describes one letter in a word, relative to the word's
// own anchor.
type LetterSpec struct {
	Name   string  `json:"name"`
	R      float64 `json:"r"`
	Theta  float64 `json:"theta"`
	Radius float64 `json:"radius"`
	Stem   string  `json:"stem"` // "B","J","S","Z"
}

// ArcSpec describes an arc-word's span and tapered tip length.
type ArcSpec struct {
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	TipLength float64 `json:"tipLength"`
}

// ScriptSpec names a Lua script that procedurally registers extra
// letters onto its word, in addition to any listed in Letters. Plugin,
// if set, names a plugin (see GetPlugin) loaded before the script runs,
// whose RegisterHostFuncs symbol can expose additional host functions
// to it beyond addLetter/numLetters.
type ScriptSpec struct {
	Path   string `json:"path"`
	Plugin string `json:"plugin,omitempty"`
}

// WordSpec describes one word, anchored in Gallifreyan space relative
// to the canvas centre.
type WordSpec struct {
	Name        string       `json:"name"`
	X           float64      `json:"x"`
	Y           float64      `json:"y"`
	Radius      float64      `json:"radius"`
	StrokeWidth float64      `json:"strokeWidth"`
	Arc         *ArcSpec     `json:"arc,omitempty"`
	Letters     []LetterSpec `json:"letters,omitempty"`
	Script      *ScriptSpec  `json:"script,omitempty"`
}

// DecoratorSpec describes a line or arc connecting previously named
// anchors ("word" or "word.letter" references), filled into a
// LineBuilder in listed order.
type DecoratorSpec struct {
	Kind    string   `json:"kind"` // "straight","circleSmall","circleBig"
	Anchors []string `json:"anchors"`
}

// Scene is the external JSON scene description wired through
// construction, rendering and save.
type Scene struct {
	Render     *RenderConfig   `json:"render,omitempty"`
	Words      []WordSpec      `json:"words"`
	Decorators []DecoratorSpec `json:"decorators,omitempty"`
}

// LoadScene reads and parses a scene description from fname.
func LoadScene(fname string) (*Scene, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	s := new(Scene)
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("scene %q: %w", fname, err)
	}
	return s, nil
}

// Build constructs the scene's anchor graph and words, registers every
// word and letter anchor under "word" / "word.letter" keys, and runs
// any attached scripts. It does not draw anything yet.
func (s *Scene) Build(origin *Position) (words []*Word, anchors map[string]*Position, err error) {
	anchors = map[string]*Position{"origin": origin}
	originX, originY := origin.AbsSVGXY(0, 0)
	strokeWidth := Cfg.Render.StrokeWide
	if s.Render != nil && s.Render.StrokeWide > 0 {
		strokeWidth = s.Render.StrokeWide
	}
	for _, ws := range s.Words {
		width := strokeWidth
		if ws.StrokeWidth > 0 {
			width = ws.StrokeWidth
		}
		ctx := DefaultRenderContext(originX, originY).WithStrokeWidth(width)
		wAnchor := NewGallifreyanPosition(ws.X, ws.Y)
		anchors[ws.Name] = wAnchor

		var word *Word
		if ws.Arc != nil {
			word = NewArcWord(ws.Name, wAnchor, ws.Radius, ws.Arc.Start, ws.Arc.End, ws.Arc.TipLength, ctx)
		} else {
			word = NewWord(ws.Name, wAnchor, ws.Radius, ctx)
		}
		for _, ls := range ws.Letters {
			stem, serr := stemFromTag(ls.Stem)
			if serr != nil {
				return nil, nil, fmt.Errorf("word %q: letter %q: %w", ws.Name, ls.Name, serr)
			}
			lAnchor := NewPolarPosition(ls.R, ls.Theta, wAnchor)
			letter := NewLetter(ls.Name, lAnchor, ls.Radius, stem)
			word.AddLetter(letter)
			anchors[ws.Name+"."+ls.Name] = lAnchor
		}
		if ws.Script != nil {
			gen := NewScriptGenerator()
			if ws.Script.Plugin != "" {
				if err := gen.LoadPlugin(ws.Script.Plugin); err != nil {
					return nil, nil, err
				}
			}
			if err := gen.Run(ws.Script.Path, word); err != nil {
				return nil, nil, err
			}
		}
		words = append(words, word)
	}
	return words, anchors, nil
}

// Drawable is anything that can paint itself into an SVGDocument
// without a possible error: decoratorArc and *StraightLine satisfy it.
// Word.Draw returns an error instead (band stitching can fail), so
// words are drawn directly by their caller rather than through this
// interface.
type Drawable interface {
	Draw(doc *SVGDocument)
}

// BuildDecorators turns the scene's DecoratorSpecs into Drawables,
// resolving each listed anchor reference against anchors (as built by
// Build).
func (s *Scene) BuildDecorators(anchors map[string]*Position, ctx RenderContext) ([]Drawable, error) {
	var out []Drawable
	for _, ds := range s.Decorators {
		b := NewLineBuilder()
		for _, ref := range ds.Anchors {
			pos, ok := anchors[ref]
			if !ok {
				return nil, fmt.Errorf("decorator %q: unknown anchor %q", ds.Kind, ref)
			}
			if _, ok := b.Add(pos); !ok {
				return nil, fmt.Errorf("decorator %q: too many anchors", ds.Kind)
			}
		}
		switch ds.Kind {
		case "straight":
			line, _ := b.ToStraightLine(ctx)
			if line == nil {
				return nil, fmt.Errorf("decorator %q: needs 2 anchors", ds.Kind)
			}
			out = append(out, line)
		case "circleSmall", "circleBig":
			line, _ := b.ToCircularLine(ctx)
			if line == nil {
				return nil, fmt.Errorf("decorator %q: needs 3 anchors", ds.Kind)
			}
			out = append(out, decoratorArc{line, ds.Kind == "circleBig"})
		default:
			return nil, fmt.Errorf("unknown decorator kind %q", ds.Kind)
		}
	}
	return out, nil
}

// decoratorArc pairs a CircularLine with which arc branch to draw.
type decoratorArc struct {
	line *CircularLine
	big  bool
}

// Draw dispatches to the wrapped CircularLine's small or big arc.
func (d decoratorArc) Draw(doc *SVGDocument) {
	if d.big {
		d.line.DrawBig(doc)
	} else {
		d.line.DrawSmall(doc)
	}
}
