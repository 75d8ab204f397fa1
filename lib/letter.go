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

// StemKind classifies how a letter's circle interacts with its word's
// band.
type StemKind int

const (
	// StemB letters cross both the inner and outer boundary of the
	// band: a full notch on both tracks.
	StemB StemKind = iota
	// StemJ letters sit entirely outside the band: a free circle,
	// no path effect.
	StemJ
	// StemS letters sit inside the band but cross the inner
	// boundary: a notch on the inner track only.
	StemS
	// StemZ letters sit entirely inside the band: a free circle,
	// no path effect.
	StemZ
)

// String names a stem kind.
func (s StemKind) String() string {
	switch s {
	case StemB:
		return "B"
	case StemJ:
		return "J"
	case StemS:
		return "S"
	case StemZ:
		return "Z"
	}
	return "?"
}

// IsBand reports whether this stem kind notches its word's band
// (B and S); J and Z render as free circles instead.
func (s StemKind) IsBand() bool {
	return s == StemB || s == StemS
}

//----------------------------------------------------------------------

// Letter is one glyph placed on a word's band. Its Anchor is usually a
// polar position referencing the word's own anchor, at the radius and
// angle the word assigns it during layout.
type Letter struct {
	Name    string
	Anchor  *Position
	Radius  float64
	Stem    StemKind
	context *RenderContext // nil unless overridden
}

// NewLetter places a letter of the given radius and stem kind at
// anchor.
func NewLetter(name string, anchor *Position, radius float64, stem StemKind) *Letter {
	return &Letter{Name: name, Anchor: anchor, Radius: radius, Stem: stem}
}

// WithContext overrides the render context this letter would
// otherwise inherit from its word.
func (l *Letter) WithContext(ctx RenderContext) *Letter {
	l.context = &ctx
	return l
}

// EffectiveContext returns l's own context if overridden, else
// wordCtx.
func (l *Letter) EffectiveContext(wordCtx RenderContext) RenderContext {
	if l.context != nil {
		return *l.context
	}
	return wordCtx
}
