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
	"math"

	"gonum.org/v1/gonum/mat"
)

// IsNull returns true if number is zero (within tolerance)
func IsNull(f float64) bool {
	return math.Abs(f) < eps
}

// InRange returns true if value v is in range (with tolerance)
func InRange(v, from, to float64) bool {
	return v-from > -eps && to-v > -eps
}

// Sqr returns the square of a value
func Sqr(v float64) float64 {
	return v * v
}

//----------------------------------------------------------------------

// BestFitCircle returns the radius and centre of the circle that best
// fits (least squares) the given canvas points. Useful for inferring a
// word's radius and anchor from a sketch of letter positions instead of
// computing it by hand.
func BestFitCircle(pnts [][2]float64) (r float64, ctr [2]float64, resid float64) {
	num := len(pnts)
	aVal := make([]float64, 3*num)
	fVal := make([]float64, num)
	for i, pt := range pnts {
		aVal[3*i] = pt[0] * 2
		aVal[3*i+1] = pt[1] * 2
		aVal[3*i+2] = 1
		fVal[i] = Sqr(pt[0]) + Sqr(pt[1])
	}
	A := mat.NewDense(num, 3, aVal)
	f := mat.NewVecDense(num, fVal)

	var x mat.VecDense
	if err := x.SolveVec(A, f); err != nil {
		return 0, [2]float64{}, math.Inf(1)
	}
	ctr = [2]float64{x.At(0, 0), x.At(1, 0)}
	r = math.Sqrt(x.At(2, 0) + Sqr(ctr[0]) + Sqr(ctr[1]))

	for _, pt := range pnts {
		d := math.Hypot(pt[0]-ctr[0], pt[1]-ctr[1])
		resid += Sqr(d - r)
	}
	return
}
