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

import "testing"

func testScene() *Scene {
	return &Scene{
		Words: []WordSpec{
			{
				Name: "hello", X: 0, Y: 0, Radius: 80, StrokeWidth: 10,
				Letters: []LetterSpec{
					{Name: "h", R: 80, Theta: 0, Radius: 8, Stem: "S"},
					{Name: "e", R: 80, Theta: 1.0, Radius: 8, Stem: "B"},
				},
			},
		},
	}
}

func TestSceneBuildRegistersAnchors(t *testing.T) {
	s := testScene()
	origin := NewCanvasPosition(0, 0)
	words, anchors, err := s.Build(origin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 1 || len(words[0].Letters) != 2 {
		t.Fatalf("expected 1 word with 2 letters, got %d words", len(words))
	}
	for _, key := range []string{"origin", "hello", "hello.h", "hello.e"} {
		if _, ok := anchors[key]; !ok {
			t.Errorf("expected anchor %q to be registered", key)
		}
	}
}

func TestSceneBuildUnknownStemFails(t *testing.T) {
	s := testScene()
	s.Words[0].Letters[0].Stem = "Q"
	origin := NewCanvasPosition(0, 0)
	if _, _, err := s.Build(origin); err == nil {
		t.Error("expected an error for an unrecognised stem tag")
	}
}

func TestSceneBuildDecoratorsResolvesAnchors(t *testing.T) {
	s := testScene()
	origin := NewCanvasPosition(0, 0)
	_, anchors, err := s.Build(origin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Decorators = []DecoratorSpec{{Kind: "straight", Anchors: []string{"hello.h", "hello.e"}}}
	drawables, err := s.BuildDecorators(anchors, DefaultRenderContext(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drawables) != 1 {
		t.Fatalf("expected 1 drawable, got %d", len(drawables))
	}
}

func TestSceneBuildDecoratorsUnknownAnchorFails(t *testing.T) {
	s := testScene()
	origin := NewCanvasPosition(0, 0)
	_, anchors, err := s.Build(origin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Decorators = []DecoratorSpec{{Kind: "straight", Anchors: []string{"hello.h", "nope"}}}
	if _, err := s.BuildDecorators(anchors, DefaultRenderContext(0, 0)); err == nil {
		t.Error("expected an error for an unknown anchor reference")
	}
}

func TestSceneBuildDecoratorsUnknownKindFails(t *testing.T) {
	s := testScene()
	origin := NewCanvasPosition(0, 0)
	_, anchors, err := s.Build(origin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Decorators = []DecoratorSpec{{Kind: "triangle", Anchors: []string{"hello.h", "hello.e"}}}
	if _, err := s.BuildDecorators(anchors, DefaultRenderContext(0, 0)); err == nil {
		t.Error("expected an error for an unrecognised decorator kind")
	}
}
