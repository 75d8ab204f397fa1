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
	"math"
	"testing"
)

func newTestWord() (*Word, *Position) {
	anchor := NewGallifreyanPosition(0, 0)
	ctx := DefaultRenderContext(0, 0).WithStrokeWidth(2)
	return NewWord("test", anchor, 50, ctx), anchor
}

func TestWordDrawDegenerateWithoutBandLetters(t *testing.T) {
	w, wAnchor := newTestWord()
	l := NewLetter("a", NewPolarPosition(50, 0, wAnchor), 5, StemJ)
	w.AddLetter(l)

	doc, _ := NewSVGDocument(200, 200, "white")
	if err := w.Draw(doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWordSortLettersIsIdempotent(t *testing.T) {
	w, wAnchor := newTestWord()
	a := NewLetter("a", NewPolarPosition(50, 2.0, wAnchor), 5, StemS)
	b := NewLetter("b", NewPolarPosition(50, 0.5, wAnchor), 5, StemS)
	c := NewLetter("c", NewPolarPosition(50, 4.0, wAnchor), 5, StemS)
	w.AddLetter(a)
	w.AddLetter(b)
	w.AddLetter(c)

	if err := w.sortLetters(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := make([]*Letter, len(w.Letters))
	copy(first, w.Letters)

	if err := w.sortLetters(); err != nil {
		t.Fatalf("unexpected error on second sort: %v", err)
	}
	for i := range first {
		if first[i] != w.Letters[i] {
			t.Errorf("sortLetters not idempotent at index %d", i)
		}
	}
	if w.Letters[0] != b || w.Letters[1] != a || w.Letters[2] != c {
		t.Errorf("unexpected angular order: %q %q %q", w.Letters[0].Name, w.Letters[1].Name, w.Letters[2].Name)
	}
}

func TestWordSortLettersSingleAndEmpty(t *testing.T) {
	w, _ := newTestWord()
	if err := w.sortLetters(); err != nil {
		t.Fatalf("unexpected error on empty word: %v", err)
	}
	w2, wAnchor := newTestWord()
	w2.AddLetter(NewLetter("a", NewPolarPosition(50, 0, wAnchor), 5, StemS))
	if err := w2.sortLetters(); err != nil {
		t.Fatalf("unexpected error on single-letter word: %v", err)
	}
}

func TestWordDrawBandWithStemKinds(t *testing.T) {
	w, wAnchor := newTestWord()
	w.AddLetter(NewLetter("a", NewPolarPosition(50, 0, wAnchor), 8, StemS))
	w.AddLetter(NewLetter("b", NewPolarPosition(50, math.Pi/2, wAnchor), 8, StemB))
	w.AddLetter(NewLetter("c", NewPolarPosition(50, math.Pi, wAnchor), 8, StemJ))
	w.AddLetter(NewLetter("d", NewPolarPosition(50, 3*math.Pi/2, wAnchor), 8, StemZ))

	doc, _ := NewSVGDocument(300, 300, "white")
	if err := w.Draw(doc); err != nil {
		t.Fatalf("unexpected error drawing mixed-stem band: %v", err)
	}
}

func TestWordArcWordOutsideRangeErrors(t *testing.T) {
	anchor := NewGallifreyanPosition(0, 0)
	ctx := DefaultRenderContext(0, 0).WithStrokeWidth(2)
	w := NewArcWord("arc", anchor, 50, 0, math.Pi, 0.1, ctx)
	w.AddLetter(NewLetter("a", NewPolarPosition(50, math.Pi+1, anchor), 8, StemS))

	doc, _ := NewSVGDocument(200, 200, "white")
	if err := w.Draw(doc); err == nil {
		t.Error("expected an error for a letter angle outside the arc range")
	}
}

func TestWordNotchWidthsMatchesLetterCount(t *testing.T) {
	w, wAnchor := newTestWord()
	w.AddLetter(NewLetter("a", NewPolarPosition(50, 0, wAnchor), 8, StemS))
	w.AddLetter(NewLetter("b", NewPolarPosition(50, math.Pi/2, wAnchor), 8, StemB))

	widths := w.NotchWidths()
	if len(widths) != 2 {
		t.Fatalf("expected 2 notch widths, got %d", len(widths))
	}
	for _, nw := range widths {
		if nw.Outer < 0 || nw.Inner < 0 {
			t.Errorf("letter %q: expected non-negative notch widths, got outer=%f inner=%f", nw.Letter, nw.Outer, nw.Inner)
		}
	}
}

func TestWordStackedLettersShareAnchor(t *testing.T) {
	w, wAnchor := newTestWord()
	shared := NewPolarPosition(50, 0, wAnchor)
	w.AddLetter(NewLetter("a", shared, 8, StemS))
	w.AddLetter(NewLetter("b", shared, 6, StemS))

	doc, _ := NewSVGDocument(200, 200, "white")
	if err := w.Draw(doc); err != nil {
		t.Fatalf("unexpected error drawing stacked letters: %v", err)
	}
}
