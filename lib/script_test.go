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
	"os"
	"path/filepath"
	"testing"
)

const testScriptSource = `
for i = 0, 2 do
	addLetter(80, i * 0.5, 8, "S")
end
`

func writeTestScript(t *testing.T, source string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "letters.lua")
	if err := os.WriteFile(fname, []byte(source), 0o644); err != nil {
		t.Fatalf("unexpected error writing script: %v", err)
	}
	return fname
}

func TestScriptGeneratorAddsLetters(t *testing.T) {
	path := writeTestScript(t, testScriptSource)
	anchor := NewGallifreyanPosition(0, 0)
	word := NewWord("greeting", anchor, 80, DefaultRenderContext(0, 0))

	gen := NewScriptGenerator()
	if err := gen.Run(path, word); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.NumAdded() != 3 {
		t.Fatalf("expected 3 letters registered, got %d", gen.NumAdded())
	}
	if len(word.Letters) != 3 {
		t.Fatalf("expected 3 letters added to the word, got %d", len(word.Letters))
	}
	if word.Letters[0].Name != "greeting-1" || word.Letters[2].Name != "greeting-3" {
		t.Errorf("unexpected letter names: %q, %q", word.Letters[0].Name, word.Letters[2].Name)
	}
}

func TestScriptGeneratorDeterministic(t *testing.T) {
	path := writeTestScript(t, testScriptSource)

	run := func() []string {
		anchor := NewGallifreyanPosition(0, 0)
		word := NewWord("greeting", anchor, 80, DefaultRenderContext(0, 0))
		gen := NewScriptGenerator()
		if err := gen.Run(path, word); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		names := make([]string, len(word.Letters))
		for i, l := range word.Letters {
			names[i] = l.Name
		}
		return names
	}

	first := run()
	second := run()
	if len(first) != len(second) {
		t.Fatalf("expected matching letter counts, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("expected deterministic ordering at index %d, got %q and %q", i, first[i], second[i])
		}
	}
}

func TestScriptGeneratorLoadPluginMissingFails(t *testing.T) {
	gen := NewScriptGenerator()
	if err := gen.LoadPlugin(filepath.Join(t.TempDir(), "nonexistent.so")); err == nil {
		t.Fatal("expected an error loading a nonexistent plugin, got nil")
	}
}

func TestScriptGeneratorUnknownStemFallsBackToS(t *testing.T) {
	path := writeTestScript(t, `addLetter(80, 0, 8, "Q")`)
	anchor := NewGallifreyanPosition(0, 0)
	word := NewWord("greeting", anchor, 80, DefaultRenderContext(0, 0))

	gen := NewScriptGenerator()
	if err := gen.Run(path, word); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(word.Letters) != 1 || word.Letters[0].Stem != StemS {
		t.Error("expected an unrecognised stem tag to degrade to StemS rather than abort")
	}
}
