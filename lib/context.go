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

// ColourContext names the three colours a shape is rendered with.
type ColourContext struct {
	Background string
	Fill       string
	Stroke     string
}

// DefaultColours gives an outline-only shape: white background, no
// fill, black stroke.
func DefaultColours() ColourContext {
	return ColourContext{Background: "white", Fill: "none", Stroke: "black"}
}

// DefaultPathColours gives a filled shape with no stroke: white
// background, black fill.
func DefaultPathColours() ColourContext {
	return ColourContext{Background: "white", Fill: "black", Stroke: "none"}
}

//----------------------------------------------------------------------

// StrokeContext splits a line's total width into the half drawn
// inside the nominal radius and the half drawn outside it, so a band
// of uneven emphasis can still be expressed as a single width.
type StrokeContext struct {
	Inner float64
	Outer float64
}

// NewStrokeContext splits width evenly between inner and outer.
func NewStrokeContext(width float64) StrokeContext {
	half := width / 2
	return StrokeContext{Inner: half, Outer: half}
}

// Width is the total stroke width.
func (s StrokeContext) Width() float64 {
	return s.Inner + s.Outer
}

//----------------------------------------------------------------------

// RenderContext carries everything needed to project and paint one
// shape: the document origin it is anchored to, its stroke geometry,
// and its colours. Letters normally inherit their word's context but
// may override it.
type RenderContext struct {
	OriginX, OriginY float64
	Stroke           StrokeContext
	Colours          ColourContext
}

// NewRenderContext builds a context anchored at (originX,originY).
func NewRenderContext(originX, originY float64, stroke StrokeContext, colours ColourContext) RenderContext {
	return RenderContext{OriginX: originX, OriginY: originY, Stroke: stroke, Colours: colours}
}

// DefaultRenderContext is an outline-only context anchored at
// (originX,originY) with no stroke width; callers that need line
// thickness should call WithStrokeWidth.
func DefaultRenderContext(originX, originY float64) RenderContext {
	return NewRenderContext(originX, originY, NewStrokeContext(0), DefaultColours())
}

// WithStrokeWidth returns a copy of c with a new, evenly-split stroke
// width.
func (c RenderContext) WithStrokeWidth(width float64) RenderContext {
	c.Stroke = NewStrokeContext(width)
	return c
}

// WithOrigin returns a copy of c anchored at a different document
// origin.
func (c RenderContext) WithOrigin(originX, originY float64) RenderContext {
	c.OriginX, c.OriginY = originX, originY
	return c
}

// WithColours returns a copy of c painted with a different palette.
func (c RenderContext) WithColours(colours ColourContext) RenderContext {
	c.Colours = colours
	return c
}
