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

	lua "github.com/Shopify/go-lua"
)

// scriptedLetter is one addLetter(...) call recorded by the Lua VM
// while a script runs.
type scriptedLetter struct {
	r, theta, radius float64
	stem             StemKind
}

// ScriptGenerator lets a scene file describe a word's letters
// procedurally instead of spelling out every one in JSON: the script
// calls addLetter(r, theta, radius, stem) per letter it wants to add,
// and numLetters() to see how many it has registered so far.
type ScriptGenerator struct {
	state *lua.State
	added []scriptedLetter
}

// NewScriptGenerator opens a fresh Lua VM with the standard libraries
// loaded and the addLetter/numLetters host functions registered.
func NewScriptGenerator() *ScriptGenerator {
	g := &ScriptGenerator{state: lua.NewState()}
	lua.OpenLibraries(g.state)

	g.state.Register("addLetter", func(state *lua.State) int {
		r, _ := state.ToNumber(1)
		theta, _ := state.ToNumber(2)
		radius, _ := state.ToNumber(3)
		tag, _ := state.ToString(4)
		stem, err := stemFromTag(tag)
		if err != nil {
			// an unrecognised stem tag degrades to StemS rather than
			// aborting the whole script over one bad letter
			stem = StemS
		}
		g.added = append(g.added, scriptedLetter{r, theta, radius, stem})
		return 0
	})
	g.state.Register("numLetters", func(state *lua.State) int {
		state.PushInteger(len(g.added))
		return 1
	})
	return g
}

// HostFuncRegistrar is the symbol a plugin exports to add its own
// host functions to a script's Lua VM, alongside addLetter/numLetters.
type HostFuncRegistrar func(state *lua.State)

// LoadPlugin loads the named plugin (see GetPlugin for the "@config-entry"
// reference form) and calls its exported "RegisterHostFuncs" symbol with
// this generator's Lua state, letting it register additional host
// functions before a script runs.
func (g *ScriptGenerator) LoadPlugin(ref string) error {
	pi, err := GetPlugin(ref)
	if err != nil {
		return fmt.Errorf("plugin %q: %w", ref, err)
	}
	register, err := GetSymbol[HostFuncRegistrar](pi, "RegisterHostFuncs")
	if err != nil {
		return fmt.Errorf("plugin %q: missing RegisterHostFuncs: %w", ref, err)
	}
	register(g.state)
	return nil
}

// stemFromTag maps a script-facing tag to a StemKind.
func stemFromTag(tag string) (StemKind, error) {
	switch tag {
	case "B":
		return StemB, nil
	case "J":
		return StemJ, nil
	case "S":
		return StemS, nil
	case "Z":
		return StemZ, nil
	}
	return StemS, fmt.Errorf("unknown stem tag %q", tag)
}

// Run executes the named script file, then appends the letters it
// registered to word, named "<word.Name>-N" and anchored polar to
// word's own anchor.
func (g *ScriptGenerator) Run(path string, word *Word) error {
	g.added = g.added[:0]
	if err := lua.DoFile(g.state, path); err != nil {
		return fmt.Errorf("script %q: %w", path, err)
	}
	for i, sl := range g.added {
		name := fmt.Sprintf("%s-%d", word.Name, i+1)
		anchor := NewPolarPosition(sl.r, sl.theta, word.Anchor)
		word.AddLetter(NewLetter(name, anchor, sl.radius, sl.stem))
	}
	return nil
}

// NumAdded returns the number of letters the last Run registered.
func (g *ScriptGenerator) NumAdded() int {
	return len(g.added)
}
