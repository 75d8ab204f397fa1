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

import "math"

// Global settings and defaults
const (
	eps = 1e-9 // lower bound for non-zero

	// mathematical constants
	RectAng = math.Pi / 2 // right angle
	CircAng = 2 * math.Pi // full circle

	// SortPrecision quantises letter angles before sorting; letters
	// differing in angle by less than ~1/SortPrecision rad are treated
	// as co-located for ordering purposes.
	SortPrecision = 1000

	// DivotFudge nudges a stacked-letter cut-out patch radius slightly
	// past the word's inner-stroke edge so adjoining arcs overlap
	// instead of leaving a hairline gap.
	DivotFudge = 0.2
)
