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
	"log"
	"math"
	"sort"
)

// Word is a circular or arc-shaped band of letters stitched into a
// single ring-shaped path, the core unit of a Gallifreyan scene.
type Word struct {
	Name    string
	Anchor  *Position
	Radius  float64
	Context RenderContext
	Letters []*Letter

	isArc      bool
	startAngle float64
	endAngle   float64
	tipLength  float64

	sorted bool
}

// NewWord creates a full circular word.
func NewWord(name string, anchor *Position, radius float64, ctx RenderContext) *Word {
	return &Word{Name: name, Anchor: anchor, Radius: radius, Context: ctx}
}

// NewArcWord creates a word confined to the angular range [start,end]
// (in the same clockwise-from-up frame as letter angles), with
// tapered tips of the given length.
func NewArcWord(name string, anchor *Position, radius, start, end, tipLength float64, ctx RenderContext) *Word {
	return &Word{Name: name, Anchor: anchor, Radius: radius, Context: ctx,
		isArc: true, startAngle: start, endAngle: end, tipLength: tipLength}
}

// AddLetter appends a letter to the word, invalidating any prior sort.
func (w *Word) AddLetter(l *Letter) {
	w.Letters = append(w.Letters, l)
	w.sorted = false
}

func (w *Word) hasBand() bool {
	for _, l := range w.Letters {
		if l.Stem.IsBand() {
			return true
		}
	}
	return false
}

func (w *Word) wordRadii() (ri, ro float64) {
	return w.Radius - w.Context.Stroke.Inner, w.Radius + w.Context.Stroke.Outer
}

func (w *Word) canvasXY() (float64, float64) {
	return w.Anchor.AbsSVGXY(w.Context.OriginX, w.Context.OriginY)
}

func polarPoint(cx, cy, r, ang float64) (float64, float64) {
	return cx + r*math.Sin(ang), cy - r*math.Cos(ang)
}

//----------------------------------------------------------------------
// Letter-to-band angles (law of cosines, §4.6)
//----------------------------------------------------------------------

// letterAngles holds phi (the letter's angle from the word centre) and
// the four cos-rule half-widths psi1..psi4 plus theta, each paired
// with whether the underlying triangle was valid. ri/ro are the
// letter's own effective (stroke-adjusted) radii.
type letterAngles struct {
	phi                            float64
	psi1, psi2, psi3, psi4         float64
	psi1ok, psi2ok, psi3ok, psi4ok bool
	theta                          float64
	thetaOk                        bool
	ri, ro                         float64
}

func (a letterAngles) p1() float64 {
	if a.psi1ok {
		return a.psi1
	}
	return 0
}

func (a letterAngles) p2() float64 {
	if a.psi2ok {
		return a.psi2
	}
	return 0
}

// angles returns (leftOuter, leftInner, rightOuter, rightInner): the
// angular span this letter carves into the outer (psi1) and inner
// (psi2) tracks. Non-band letters (J/Z) get a zero-width span at phi.
func (a letterAngles) angles(isBand bool) (leftOuter, leftInner, rightOuter, rightInner float64) {
	if !isBand {
		return a.phi, a.phi, a.phi, a.phi
	}
	p1, p2 := a.p1(), a.p2()
	return a.phi - p1, a.phi - p2, a.phi + p1, a.phi + p2
}

func (w *Word) computeLetterAngles(l *Letter) letterAngles {
	Ri, Ro := w.wordRadii()
	lc := l.EffectiveContext(w.Context)
	ri := l.Radius - lc.Stroke.Inner
	ro := l.Radius + lc.Stroke.Outer

	Wx, Wy := w.canvasXY()
	Lx, Ly := l.Anchor.AbsSVGXY(w.Context.OriginX, w.Context.OriginY)
	dSq := Sqr(Wx-Lx) + Sqr(Wy-Ly)
	phi := w.Anchor.AngleTo(l.Anchor)

	la := letterAngles{phi: phi, ri: ri, ro: ro}
	la.psi1, la.psi1ok = CosRuleAngleC(dSq, Sqr(Ro), Sqr(ri))
	la.psi2, la.psi2ok = CosRuleAngleC(dSq, Sqr(Ri), Sqr(ro))
	la.psi3, la.psi3ok = CosRuleAngleC(dSq, Sqr(Ri), Sqr(ri))
	la.psi4, la.psi4ok = CosRuleAngleC(dSq, Sqr(Ro), Sqr(ro))
	la.theta, la.thetaOk = CosRuleAngleC(dSq, Sqr(ro), Sqr(Ri))

	if l.Stem == StemB && (!la.psi3ok || !la.psi4ok) {
		log.Printf("word %q: letter %q tagged B but does not geometrically cross both band boundaries", w.Name, l.Name)
	}
	if l.Stem == StemS && !la.psi3ok {
		log.Printf("word %q: letter %q tagged S but does not cross the inner boundary", w.Name, l.Name)
	}
	return la
}

//----------------------------------------------------------------------
// Letter ordering (§4.6 "Letter ordering")
//----------------------------------------------------------------------

func (w *Word) sortLetters() error {
	if w.sorted {
		return nil
	}
	type entry struct {
		l   *Letter
		key int64
	}
	entries := make([]entry, len(w.Letters))
	for i, l := range w.Letters {
		phi := w.Anchor.AngleTo(l.Anchor)
		entries[i] = entry{l: l, key: int64(math.Round(phi * SortPrecision))}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	for i, e := range entries {
		w.Letters[i] = e.l
	}

	maxIter := len(w.Letters)
	for iter := 0; len(w.Letters) >= 2; iter++ {
		if iter >= maxIter {
			return fmt.Errorf("word %q: letter angular sort did not terminate", w.Name)
		}
		first := w.Letters[0]
		fa := w.computeLetterAngles(first)
		p1, p2 := 0.0, 0.0
		if first.Stem.IsBand() {
			p1, p2 = fa.p1(), fa.p2()
		}
		overlap := math.Min(p1, p2) + CircAng

		n := len(w.Letters)
		last := w.Letters[n-1]
		lastPhi := w.Anchor.AngleTo(last.Anchor)
		if lastPhi <= overlap {
			break
		}
		copy(w.Letters[2:n], w.Letters[1:n-1])
		w.Letters[1] = last
	}
	w.sorted = true
	return nil
}

//----------------------------------------------------------------------
// Drawing
//----------------------------------------------------------------------

// Draw renders the word (and its letters) into doc.
func (w *Word) Draw(doc *SVGDocument) error {
	if len(w.Letters) == 0 || !w.hasBand() {
		return w.drawDegenerate(doc)
	}
	if err := w.sortLetters(); err != nil {
		return err
	}
	return w.drawBand(doc)
}

func (w *Word) drawDegenerate(doc *SVGDocument) error {
	Wx, Wy := w.canvasXY()
	doc.AddCircle(Wx, Wy, w.Radius, w.Context)
	for _, l := range w.Letters {
		w.drawFreeLetter(doc, l)
	}
	return nil
}

func (w *Word) drawFreeLetter(doc *SVGDocument, l *Letter) {
	lc := l.EffectiveContext(w.Context)
	x, y := l.Anchor.AbsSVGXY(w.Context.OriginX, w.Context.OriginY)
	doc.AddCircle(x, y, l.Radius, lc)
}

// stackGroup is a run of one or more letters sharing one anchor.
type stackGroup struct {
	anchor  *Position
	letters []*Letter
}

// drawBand runs the full band-stitching algorithm of §4.6/§4.7.
func (w *Word) drawBand(doc *SVGDocument) error {
	Ri, Ro := w.wordRadii()
	Wx, Wy := w.canvasXY()

	inner := NewPathBuilder()
	outer := NewPathBuilder()

	var curOuter, curInner float64
	var endO, endI float64
	var tipRadius float64

	if w.isArc {
		tipRadius = 2*Ro - Ri
		tipStart := w.startAngle - w.tipLength
		tx, ty := polarPoint(Wx, Wy, Ro, tipStart)
		outer.MoveTo(tx, ty)
		inner.MoveTo(tx, ty)

		sox, soy := polarPoint(Wx, Wy, Ro, w.startAngle)
		six, siy := polarPoint(Wx, Wy, Ri, w.startAngle)
		outer.ArcTo(sox, soy, Ro, false, true)
		inner.ArcTo(six, siy, tipRadius, false, true)

		curOuter, curInner = w.startAngle, w.startAngle
		endO, endI = w.endAngle, w.endAngle
	} else {
		first := w.Letters[0]
		fa := w.computeLetterAngles(first)
		leftO, leftI, _, _ := fa.angles(first.Stem.IsBand())

		ox, oy := polarPoint(Wx, Wy, Ro, leftO)
		ix, iy := polarPoint(Wx, Wy, Ri, leftI)
		outer.MoveTo(ox, oy)
		inner.MoveTo(ix, iy)

		curOuter, curInner = leftO, leftI
		endO, endI = leftO+CircAng, leftI+CircAng
	}

	var groups []*stackGroup
	var curGroup *stackGroup

	for i, l := range w.Letters {
		la := w.computeLetterAngles(l)
		if w.isArc && (la.phi < w.startAngle-w.tipLength || la.phi > w.endAngle+w.tipLength) {
			return fmt.Errorf("word %q: letter %q angle %.4f outside arc range", w.Name, l.Name, la.phi)
		}

		stacked := i > 0 && l.Anchor == w.Letters[i-1].Anchor
		if stacked {
			curGroup.letters = append(curGroup.letters, l)
			continue
		}
		curGroup = &stackGroup{anchor: l.Anchor, letters: []*Letter{l}}
		groups = append(groups, curGroup)

		isBand := l.Stem.IsBand()
		leftO, leftI, rightO, rightI := la.angles(isBand)

		if leftO > curOuter {
			large := (leftO - curOuter) > math.Pi
			x, y := polarPoint(Wx, Wy, Ro, leftO)
			outer.ArcTo(x, y, Ro, large, false)
		}
		if leftI > curInner {
			large := (leftI - curInner) > math.Pi
			x, y := polarPoint(Wx, Wy, Ri, leftI)
			inner.ArcTo(x, y, Ri, large, false)
		}

		switch l.Stem {
		case StemJ, StemZ:
			// free circle, no path effect; drawn after the band
		case StemS:
			w.emitNotch(inner, outer, Wx, Wy, la, leftO, leftI, rightO, rightI, false, false)
		case StemB:
			oversized := la.thetaOk && la.theta < RectAng
			w.emitNotch(inner, outer, Wx, Wy, la, leftO, leftI, rightO, rightI, true, !oversized)
		}

		curOuter, curInner = rightO, rightI
	}

	if w.isArc {
		if w.endAngle > curOuter {
			large := (w.endAngle - curOuter) > math.Pi
			x, y := polarPoint(Wx, Wy, Ro, w.endAngle)
			outer.ArcTo(x, y, Ro, large, false)
		}
		if w.endAngle > curInner {
			large := (w.endAngle - curInner) > math.Pi
			x, y := polarPoint(Wx, Wy, Ri, w.endAngle)
			inner.ArcTo(x, y, Ri, large, false)
		}
		tipEnd := w.endAngle + w.tipLength
		ex, ey := polarPoint(Wx, Wy, Ro, tipEnd)
		outer.ArcTo(ex, ey, Ro, false, true)
		inner.ArcTo(ex, ey, tipRadius, false, true)
	} else {
		if endO > curOuter {
			large := (endO - curOuter) > math.Pi
			x, y := polarPoint(Wx, Wy, Ro, endO)
			outer.ArcTo(x, y, Ro, large, false)
		}
		if endI > curInner {
			large := (endI - curInner) > math.Pi
			x, y := polarPoint(Wx, Wy, Ri, endI)
			inner.ArcTo(x, y, Ri, large, false)
		}
	}

	ring := ClosePath(inner.BuildReversedAppended(outer.Build()))
	innerMask := ClosePath(inner.Build())

	inkCtx := w.Context.WithColours(ColourContext{Fill: w.Context.Colours.Stroke, Stroke: "none"})
	maskCtx := w.Context.WithColours(ColourContext{Fill: w.Context.Colours.Background, Stroke: "none"})
	doc.AddPath(ring, inkCtx)
	doc.AddPath(innerMask, maskCtx)

	for _, g := range groups {
		if len(g.letters) < 2 {
			continue
		}
		if patch, ok := w.stackPatch(g); ok {
			doc.AddPath(patch, inkCtx)
		}
	}

	for _, l := range w.Letters {
		if l.Stem == StemJ || l.Stem == StemZ {
			w.drawFreeLetter(doc, l)
		}
	}
	return nil
}

// emitNotch appends one letter's contribution to both tracks: the
// outer track dips to the letter's inner radius across [leftOuter,
// rightOuter], the inner track dips to the letter's outer radius
// across [leftInner,rightInner]. Both endpoints already sit on the
// letter's own circle by construction of psi1/psi2, so passing the
// letter's radius as the arc radius traces that circle between them.
// Sweep is clockwise for both tracks, per §4.6 step 2.
func (w *Word) emitNotch(inner, outer *PathBuilder, Wx, Wy float64, la letterAngles, leftOuter, leftInner, rightOuter, rightInner float64, outerLarge, innerLarge bool) {
	ox, oy := polarPoint(Wx, Wy, w.outerTrackRadius(), rightOuter)
	outer.ArcTo(ox, oy, la.ri, outerLarge, true)

	ix, iy := polarPoint(Wx, Wy, w.innerTrackRadius(), rightInner)
	inner.ArcTo(ix, iy, la.ro, innerLarge, true)
}

func (w *Word) outerTrackRadius() float64 { _, ro := w.wordRadii(); return ro }
func (w *Word) innerTrackRadius() float64 { ri, _ := w.wordRadii(); return ri }

// stackPatch builds the lens-shaped cut-out patch for a run of
// letters sharing one anchor (§4.6 step 3). The patch's four corners
// sit at angles phi∓psi (psi is the widest inner half-width among the
// group): the two inner corners on the word's inner-boundary circle
// plus DivotFudge, centred on the word; the two outer corners on the
// first letter's outer-stroke circle plus DivotFudge, centred on the
// shared anchor. The first three arcs use the letter-side radius and
// only the closing arc uses the word-side radius, so the arc radii do
// not alternate corner by corner.
func (w *Word) stackPatch(g *stackGroup) ([]PathCmd, bool) {
	Ri, _ := w.wordRadii()
	Wx, Wy := w.canvasXY()
	phi := w.Anchor.AngleTo(g.anchor)

	psi := 0.0
	anyB := false
	for _, l := range g.letters {
		la := w.computeLetterAngles(l)
		if la.psi2ok && la.psi2 > psi {
			psi = la.psi2
		}
		if l.Stem == StemB {
			anyB = true
		}
	}
	if psi == 0 {
		return nil, false
	}

	rIn := Ri + DivotFudge
	first := g.letters[0]
	fc := first.EffectiveContext(w.Context)
	rOut := first.Radius + fc.Stroke.Outer + DivotFudge

	Ax, Ay := g.anchor.AbsSVGXY(w.Context.OriginX, w.Context.OriginY)

	leftInnerX, leftInnerY := polarPoint(Wx, Wy, rIn, phi-psi)
	leftOuterX, leftOuterY := polarPoint(Ax, Ay, rOut, phi-psi)
	rightOuterX, rightOuterY := polarPoint(Ax, Ay, rOut, phi+psi)
	rightInnerX, rightInnerY := polarPoint(Wx, Wy, rIn, phi+psi)

	b := NewPathBuilder()
	b.MoveTo(leftInnerX, leftInnerY)
	b.ArcTo(leftOuterX, leftOuterY, rOut, false, true)
	b.ArcTo(rightOuterX, rightOuterY, rOut, anyB, true)
	b.ArcTo(rightInnerX, rightInnerY, rOut, false, true)
	b.ArcTo(leftInnerX, leftInnerY, rIn, anyB, false)
	return ClosePath(b.Build()), true
}

// NotchWidth reports, for one letter, the angular width it carves out
// of the word's outer (2·psi1) and inner (2·psi2) tracks. Either value
// is zero where the corresponding cos-rule triangle is undefined.
type NotchWidth struct {
	Letter string
	Outer  float64
	Inner  float64
}

// NotchWidths computes NotchWidth for every letter in the word, in
// Letters order. Pure diagnostics: never called from the render path
// itself, only from the tabula preview tool.
func (w *Word) NotchWidths() []NotchWidth {
	out := make([]NotchWidth, 0, len(w.Letters))
	for _, l := range w.Letters {
		la := w.computeLetterAngles(l)
		out = append(out, NotchWidth{Letter: l.Name, Outer: 2 * la.p1(), Inner: 2 * la.p2()})
	}
	return out
}
