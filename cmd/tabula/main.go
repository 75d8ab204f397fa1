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
	"os"
)

// tabula is developer tooling: given a scene file, it renders the
// scene's SVG document alongside a bar chart of each word's letter
// notch widths, so a scene author can see at a glance which letters
// crowd a band. Never part of the single-pass render path itself.
func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		log.Fatal("usage: tabula <serve|plot-file> [flags]")
	}
	switch args[0] {
	case "serve":
		serve(args[1:])
	case "plot-file":
		plotFile(args[1:])
	default:
		flag.Usage()
		log.Fatalf("unknown command %q", args[0])
	}
}
