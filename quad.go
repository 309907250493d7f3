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

// QuadraticTo appends a quadratic Bézier curve with control point p1.
//
// Flat curves become lines.  Curves which are not monotonic with respect
// to their chord are chopped once, at the point where the tangent bisects
// the angle between the end tangents.
func (d *Decomposer) QuadraticTo(p0, p1, p2 vec.Vec2) {
	d.checkSegment("QuadraticTo", p0)
	if !geometry.IsFinite(p1, p2) {
		Logger().Debug("non-finite quadratic", "p1", p1, "p2", p2)
		d.appendLine(p0, p2)
		return
	}
	if areCollinear(p0, p1, p2, d.Flatness) {
		d.appendLine(p0, p2)
		return
	}
	d.appendQuadratics(p0, p1, p2)
}

func (d *Decomposer) appendQuadratics(p0, p1, p2 vec.Vec2) {
	tan0 := p1.Sub(p0)
	tan1 := p2.Sub(p1)
	if isConvexCurveMonotonic(p0, tan0, p2, tan1) {
		d.appendMonotonicQuadratic(p0, p1, p2)
		return
	}

	// Chop at the midtangent.  The tangent of a quadratic is
	// tan0 + t (tan1 - tan0), which is orthogonal to n at t below.
	n := normalize(tan0).Sub(normalize(tan1))
	t := tan0.Dot(n) / tan0.Sub(tan1).Dot(n)
	switch {
	case t > 1:
		t = 1
	case !(t > 0):
		t = 0
	}

	p01 := p0.Add(tan0.Mul(t))
	p12 := p1.Add(tan1.Mul(t))
	p012 := geometry.Lerp(p01, p12, t)

	d.appendMonotonicQuadratic(p0, p01, p012)
	d.appendMonotonicQuadratic(p012, p12, p2)
}

// appendMonotonicQuadratic emits a quadratic which is expected to be
// monotonic.  Flat curves are emitted as lines.
func (d *Decomposer) appendMonotonicQuadratic(p0, p1, p2 vec.Vec2) {
	if areCollinear(p0, p1, p2, d.Flatness) {
		d.appendLine(p0, p2)
		return
	}
	if !isConvexCurveMonotonic(p0, p1.Sub(p0), p2, p2.Sub(p1)) {
		q := [3]vec.Vec2{p0, p1, p2}
		d.appendPolyline(p0, func(t float64) vec.Vec2 { return geometry.EvalQuadAt(q, t) }, p2)
		return
	}

	d.points = append(d.points, p1, p2)
	d.verbs = append(d.verbs, MonotonicQuadraticTo)
	d.tallies.Quadratics++
}
