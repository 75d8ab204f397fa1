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

func TestPathBuilderBuild(t *testing.T) {
	b := NewPathBuilder()
	b.MoveTo(0, 0)
	b.ArcTo(10, 0, 5, false, true)
	cmds := b.Build()
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}
	if cmds[0].Kind != CmdMove || cmds[1].Kind != CmdArc {
		t.Error("unexpected command kinds")
	}
	if cmds[1].X != 10 || cmds[1].Radius != 5 || !cmds[1].Sweep {
		t.Error("arc command fields not preserved")
	}
}

func TestClosePathAppendsMarker(t *testing.T) {
	b := NewPathBuilder()
	b.MoveTo(1, 1)
	cmds := ClosePath(b.Build())
	if len(cmds) != 2 || cmds[1].Kind != CmdClose {
		t.Error("expected a close marker appended")
	}
}

func TestBuildReversedAppendedInvertsSweep(t *testing.T) {
	outer := NewPathBuilder()
	outer.MoveTo(0, 0)

	inner := NewPathBuilder()
	inner.MoveTo(0, 0)
	inner.ArcTo(10, 0, 5, false, true)
	inner.ArcTo(20, 5, 5, true, false)

	combined := inner.BuildReversedAppended(outer.Build())
	// prefix (1 move) + retraced move + 2 retraced arcs = 4
	if len(combined) != 4 {
		t.Fatalf("expected 4 commands, got %d", len(combined))
	}
	// walking backwards: first emitted arc corresponds to inner's last
	// arc (sweep false -> true), ending at inner's middle point (10,0)
	if combined[2].Sweep != true || combined[2].X != 10 || combined[2].Y != 0 {
		t.Errorf("unexpected first retraced arc: %+v", combined[2])
	}
	// second retraced arc corresponds to inner's first arc (sweep true -> false)
	if combined[3].Sweep != false || combined[3].X != 0 || combined[3].Y != 0 {
		t.Errorf("unexpected second retraced arc: %+v", combined[3])
	}
}

func TestBuildReversedAppendedEmptyBuilder(t *testing.T) {
	outer := NewPathBuilder()
	outer.MoveTo(1, 2)
	inner := NewPathBuilder()
	combined := inner.BuildReversedAppended(outer.Build())
	if len(combined) != 1 {
		t.Fatalf("expected prefix passed through unchanged, got %d commands", len(combined))
	}
}
