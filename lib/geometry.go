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

//----------------------------------------------------------------------
// Angle iterators
//----------------------------------------------------------------------

// AngleIter returns n angles evenly partitioning a full circle [0,2π).
func AngleIter(n int) []float64 {
	return AngleIterRange(n, 0, CircAng)
}

// AngleIterRange returns n angles evenly partitioning [lo,hi).
func AngleIterRange(n int, lo, hi float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

//----------------------------------------------------------------------
// Law-of-cosines half-angle
//----------------------------------------------------------------------

// CosRuleAngleC returns the angle opposite side c in a triangle with the
// given squared side lengths a², b², c², via the law of cosines:
//
//	cos(C) = (a² + b² - c²) / (2·a·b)
//
// The angle is undefined (ok == false) when the triangle inequality
// fails for the given sides: the letter simply does not intersect that
// boundary of the band.
func CosRuleAngleC(aSq, bSq, cSq float64) (angle float64, ok bool) {
	a, b := math.Sqrt(aSq), math.Sqrt(bSq)
	if IsNull(a) || IsNull(b) {
		return 0, false
	}
	num := aSq + bSq - cSq
	den := 2 * a * b
	return safeArccos(num, den)
}

// safeArccos returns arccos(num/den), clamping small floating-point
// overshoot at the domain boundary, or reports the angle as undefined
// when num/den falls meaningfully outside [-1,1].
func safeArccos(num, den float64) (float64, bool) {
	if den <= 0 {
		return 0, false
	}
	q := num / den
	if q > 1 {
		if q > 1+1e-6 {
			return 0, false
		}
		q = 1
	}
	if q < -1 {
		if q < -1-1e-6 {
			return 0, false
		}
		q = -1
	}
	return math.Acos(q), true
}

//----------------------------------------------------------------------
// Bounding box (2D, canvas space)
//----------------------------------------------------------------------

// BoundingBox tracks the smallest axis-aligned rectangle enclosing a set
// of canvas-space points. The document backend does not use it: a
// document's viewBox always comes from its explicit width and height.
type BoundingBox struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// NewBoundingBox creates an empty bounding box (inverted limits so the
// first Include call always takes effect).
func NewBoundingBox() *BoundingBox {
	limit := math.MaxFloat64
	return &BoundingBox{
		Xmin: limit,
		Xmax: -limit,
		Ymin: limit,
		Ymax: -limit,
	}
}

// Include widens the box to cover the given point.
func (b *BoundingBox) Include(x, y float64) {
	b.Xmin = min(x, b.Xmin)
	b.Xmax = max(x, b.Xmax)
	b.Ymin = min(y, b.Ymin)
	b.Ymax = max(y, b.Ymax)
}

// IncludeCircle widens the box to cover a circle of the given centre
// and radius.
func (b *BoundingBox) IncludeCircle(cx, cy, r float64) {
	b.Include(cx-r, cy-r)
	b.Include(cx+r, cy+r)
}

// Width of the bounding box.
func (b *BoundingBox) Width() float64 {
	return b.Xmax - b.Xmin
}

// Height of the bounding box.
func (b *BoundingBox) Height() float64 {
	return b.Ymax - b.Ymin
}
