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
	"os"
)

// RenderConfig holds the canvas defaults a scene is opened with when
// a scene file does not override them.
type RenderConfig struct {
	Width      int     `json:"width"`      // canvas width, pixels
	Height     int     `json:"height"`     // canvas height, pixels
	Background string  `json:"background"` // canvas background colour
	StrokeWide float64 `json:"strokeWidth"` // default total stroke width
}

// CatalogConfig points at the scene cache database.
type CatalogConfig struct {
	Path string `json:"path"` // sqlite3 database file
}

// ScriptConfig holds defaults for procedurally generated scenes.
// ScriptGenerator reads neither field: it runs a script file top to
// bottom and does not seed a random generator.
type ScriptConfig struct {
	Seed  int64  `json:"seed"`  // deterministic RNG seed
	Entry string `json:"entry"` // Lua entry-point function name
}

// Config for gallifreyan.
type Config struct {
	Render  *RenderConfig     `json:"render"`
	Catalog *CatalogConfig    `json:"catalog"`
	Script  *ScriptConfig     `json:"script"`
	Plugins map[string]string `json:"plugins"`
}

// Cfg is the globally-accessible configuration (pre-set).
var Cfg = &Config{
	Render: &RenderConfig{
		Width:      2048,
		Height:     2048,
		Background: "white",
		StrokeWide: 30,
	},
	Catalog: &CatalogConfig{
		Path: "gallifreyan.db",
	},
	Script: &ScriptConfig{
		Seed:  1,
		Entry: "generate",
	},
	// no pre-defined plugins
	Plugins: make(map[string]string),
}

// ReadConfig from file, overlaying onto the current Cfg.
func ReadConfig(fname string) (err error) {
	var data []byte
	if data, err = os.ReadFile(fname); err == nil {
		err = json.Unmarshal(data, &Cfg)
	}
	return
}
