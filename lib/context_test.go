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

func TestStrokeContextSplitsEvenly(t *testing.T) {
	s := NewStrokeContext(10)
	if s.Inner != 5 || s.Outer != 5 {
		t.Errorf("expected evenly split 5/5, got %f/%f", s.Inner, s.Outer)
	}
	if s.Width() != 10 {
		t.Errorf("expected width 10, got %f", s.Width())
	}
}

func TestRenderContextWithers(t *testing.T) {
	ctx := DefaultRenderContext(1, 2)
	ctx2 := ctx.WithStrokeWidth(20).WithOrigin(3, 4).WithColours(DefaultPathColours())
	if ctx.Stroke.Width() != 0 {
		t.Error("original context should be unmodified (value receiver)")
	}
	if ctx2.Stroke.Width() != 20 {
		t.Errorf("expected stroke width 20, got %f", ctx2.Stroke.Width())
	}
	if ctx2.OriginX != 3 || ctx2.OriginY != 4 {
		t.Errorf("expected origin (3,4), got (%f,%f)", ctx2.OriginX, ctx2.OriginY)
	}
	if ctx2.Colours.Fill != "black" {
		t.Errorf("expected path colours, got %+v", ctx2.Colours)
	}
}
