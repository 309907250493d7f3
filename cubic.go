// seehuhn.de/go/curvefill - monotonic curve decomposition for path filling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package curvefill

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/curvefill/geometry"
)

// CubicTo appends a cubic Bézier curve with control points p1 and p2.
//
// The cubic is classified and chopped around its inflection points, cusps
// and double points.  The sections around these points, within the given
// padding radii, are approximated: by lines for serpentines and cusps, and
// by quadratics for loops.  All other sections are emitted as monotonic
// cubics, after chopping at the midtangent if needed.
//
// Flat cubics become lines and cubics close to a quadratic become
// quadratics.
func (d *Decomposer) CubicTo(p0, p1, p2, p3 vec.Vec2, inflectPad, loopPad float64) {
	d.checkSegment("CubicTo", p0)
	if !geometry.IsFinite(p1, p2, p3) {
		Logger().Debug("non-finite cubic", "p1", p1, "p2", p2, "p3", p3)
		d.appendLine(p0, p3)
		return
	}

	p := [4]vec.Vec2{p0, p1, p2, p3}
	if areCollinear4(p, d.Flatness) {
		d.appendLine(p0, p3)
		return
	}

	tan0, tan1 := cubicTangents(p)
	if c, ok := nearlyQuadratic(p0, tan0, p3, tan1); ok {
		d.appendQuadratics(p0, c, p3)
		return
	}

	cls := geometry.Classify(p)
	switch cls.Type {
	case geometry.LineOrPoint:
		d.appendLine(p0, p3)
		return
	case geometry.Quadratic:
		c, _ := nearlyQuadratic(p0, tan0, p3, tan1)
		d.appendQuadratics(p0, c, p3)
		return
	}

	if d.CuspCapRadius > 0 {
		if t, ok := geometry.FindCubicCusp(p); ok {
			d.cusps = append(d.cusps, geometry.EvalCubicAt(p, t))
		}
	}

	d.cubicType = cls.Type
	d.chops = geometry.CubicChops(d.chops[:0], p, &cls, inflectPad, loopPad)
	d.appendCubics(false, p, d.chops, 0, 1)
}

// appendCubics emits the cubic p, which covers the parameter range
// [localT0, localT1] of the original curve, chopped at the given points.
// The segments between chops alternate between drawn literally and
// approximated, starting with the mode given by approx.
//
// The cubic is chopped at the middle chop point first, so that the
// precision of the chop positions does not degrade along the curve.
func (d *Decomposer) appendCubics(approx bool, p [4]vec.Vec2, chops []float64, localT0, localT1 float64) {
	if len(chops) == 0 {
		d.appendCubic(approx, p, d.MaxSubdivisions)
		return
	}

	mid := len(chops) / 2
	T := chops[mid]
	rightApprox := approx != (mid%2 == 0)

	if T <= localT0 {
		// The chop is at or before the start, append the right side only.
		d.appendCubics(rightApprox, p, chops[mid+1:], localT0, localT1)
		return
	}
	if T >= localT1 {
		// The chop is at or after the end, append the left side only.
		d.appendCubics(approx, p, chops[:mid], localT0, localT1)
		return
	}

	t := (T - localT0) / (localT1 - localT0)
	halves := geometry.ChopCubicAt(p, t)
	left := [4]vec.Vec2{halves[0], halves[1], halves[2], halves[3]}
	right := [4]vec.Vec2{halves[3], halves[4], halves[5], halves[6]}
	d.appendCubics(approx, left, chops[:mid], localT0, T)
	d.appendCubics(rightApprox, right, chops[mid+1:], T, localT1)
}

// appendCubic emits one section of a cubic, either as drawn or as an
// approximation.  Sections which are not monotonic are chopped at the
// midtangent, at most maxSubdivisions times.
func (d *Decomposer) appendCubic(approx bool, p [4]vec.Vec2, maxSubdivisions int) {
	if approx && d.cubicType != geometry.Loop {
		// Near an inflection the curve is within the padding of the
		// tangent, so a line is good enough.
		d.appendLine(p[0], p[3])
		return
	}

	tan0, tan1 := cubicTangents(p)
	monotonic := isConvexCurveMonotonic(p[0], tan0, p[3], tan1)
	if !monotonic && maxSubdivisions > 0 {
		d.chopCubicAtMidtangent(approx, p, tan0, tan1, maxSubdivisions-1)
		return
	}

	if approx {
		// This is the section of a loop around the double point.
		c, ok := nearlyQuadratic(p[0], tan0, p[3], tan1)
		if !ok && maxSubdivisions > 0 {
			d.chopCubicAtMidtangent(approx, p, tan0, tan1, maxSubdivisions-1)
			return
		}
		d.appendMonotonicQuadratic(p[0], c, p[3])
		return
	}

	if areCollinear(p[0], p[1].Add(p[2]).Mul(0.5), p[3], d.Flatness) {
		d.appendLine(p[0], p[3])
		return
	}
	if !monotonic {
		d.appendPolyline(p[0], func(t float64) vec.Vec2 { return geometry.EvalCubicAt(p, t) }, p[3])
		return
	}

	d.points = append(d.points, p[1], p[2], p[3])
	d.verbs = append(d.verbs, MonotonicCubicTo)
	d.tallies.Cubics++
}

func (d *Decomposer) chopCubicAtMidtangent(approx bool, p [4]vec.Vec2, tan0, tan1 vec.Vec2, maxSubdivisions int) {
	C2 := p[3].Sub(p[0]).Add(p[1].Sub(p[2]).Mul(3))
	C1 := p[0].Sub(p[1].Mul(2)).Add(p[2]).Mul(2)
	C0 := p[1].Sub(p[0])
	midT := splitParameter(findMidtangent(tan0, tan1, C2, C1, C0))

	halves := geometry.ChopCubicAt(p, midT)
	d.appendCubic(approx, [4]vec.Vec2{halves[0], halves[1], halves[2], halves[3]}, maxSubdivisions)
	d.appendCubic(approx, [4]vec.Vec2{halves[3], halves[4], halves[5], halves[6]}, maxSubdivisions)
}
