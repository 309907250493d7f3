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
	"math"

	"seehuhn.de/go/geom/vec"
)

// monotonicTolerance is the relative amount by which a tangent may point
// backwards along the chord before a curve counts as non-monotonic.
const monotonicTolerance = 1e-9

// quadraticTolerance is the largest coordinate difference, in device units,
// between the two quadratic control points implied by the end tangents of a
// cubic for which the cubic is drawn as a quadratic.
const quadraticTolerance = 1

// tangentNearlyZero is the squared length ratio below which a control
// vector is too short to give the direction of an end tangent.
const tangentNearlyZero = 1.0 / 4096

// areCollinear reports whether p1 lies within tol (relative to the Manhattan
// length of the chord) of the line through p0 and p2.
func areCollinear(p0, p1, p2 vec.Vec2, tol float64) bool {
	l := p2.Sub(p0)
	lwidth := math.Abs(l.X) + math.Abs(l.Y)
	// l × (p1 - p0) is the distance to the line, scaled by |l|.
	d := l.X*(p1.Y-p0.Y) - l.Y*(p1.X-p0.X)
	return math.Abs(d) <= lwidth*tol
}

// areCollinear4 reports whether all four points of a cubic lie within tol
// of a common line.  The line runs through p[3] and the point farthest from
// it, which gives a stable direction even for short chords.
func areCollinear4(p [4]vec.Vec2, tol float64) bool {
	far, farDist := farthestFromEnd(p)
	l := p[far].Sub(p[3])
	for i := range 3 {
		if i == far {
			continue
		}
		d := l.X*(p[i].Y-p[3].Y) - l.Y*(p[i].X-p[3].X)
		if math.Abs(d) > farDist*tol {
			return false
		}
	}
	return true
}

// farthestFromEnd returns the index of the point among p[0], p[1], p[2]
// with the largest Manhattan distance from p[3], together with that
// distance.  Ties go to the later point.
func farthestFromEnd(p [4]vec.Vec2) (int, float64) {
	far := 0
	farDist := -1.0
	for i := range 3 {
		d := p[i].Sub(p[3])
		if dist := math.Abs(d.X) + math.Abs(d.Y); dist >= farDist {
			far, farDist = i, dist
		}
	}
	return far, farDist
}

// isConvexCurveMonotonic reports whether a convex curve from p0 to p1 with
// end tangents tan0 and tan1 is monotonic with respect to its chord, which
// means that neither tangent points backwards along the chord.
func isConvexCurveMonotonic(p0, tan0, p1, tan1 vec.Vec2) bool {
	chord := p1.Sub(p0)
	lc := chord.Length()
	return tan0.Dot(chord) >= -monotonicTolerance*tan0.Length()*lc &&
		tan1.Dot(chord) >= -monotonicTolerance*tan1.Length()*lc
}

// firstUnlessNearlyZero returns a unless it is much shorter than b.
func firstUnlessNearlyZero(a, b vec.Vec2) vec.Vec2 {
	if a.Dot(a) > b.Dot(b)*tangentNearlyZero {
		return a
	}
	return b
}

// cubicTangents returns the directions of the start and end tangents of a
// cubic.  If a control point coincides with (or is very close to) its end
// point, the next control point along is used instead.
func cubicTangents(p [4]vec.Vec2) (tan0, tan1 vec.Vec2) {
	tan0 = firstUnlessNearlyZero(p[1].Sub(p[0]), p[2].Sub(p[0]))
	tan1 = firstUnlessNearlyZero(p[3].Sub(p[2]), p[3].Sub(p[1]))
	return tan0, tan1
}

// nearlyQuadratic reports whether a cubic with end points p0, p3 and end
// tangents tan0, tan1 is close to a quadratic.  If so, the control point of
// that quadratic is returned.
func nearlyQuadratic(p0, tan0, p3, tan1 vec.Vec2) (vec.Vec2, bool) {
	c1 := p0.Add(tan0.Mul(1.5))
	c2 := p3.Sub(tan1.Mul(1.5))
	c := c1.Add(c2).Mul(0.5)
	ok := math.Abs(c1.X-c2.X) <= quadraticTolerance &&
		math.Abs(c1.Y-c2.Y) <= quadraticTolerance
	return c, ok
}

// normalize returns v scaled to unit length.  The zero vector gives NaN
// coordinates.
func normalize(v vec.Vec2) vec.Vec2 {
	return v.Mul(1 / v.Length())
}

// findMidtangent returns the parameter value at which the tangent of a
// curve bisects the angle between the end tangents tan0 and tan1.  The
// tangent direction of the curve at t is C2 t² + C1 t + C0.
//
// The result is NaN or outside (0, 1) if no such point exists.
func findMidtangent(tan0, tan1, C2, C1, C0 vec.Vec2) float64 {
	// The tangent bisects the angle if it is orthogonal to
	// n = tan0/|tan0| - tan1/|tan1|, which gives a quadratic in t.
	n := normalize(tan0).Sub(normalize(tan1))
	a := C2.Dot(n)
	b := C1.Dot(n)
	c := C0.Dot(n)

	discr := b*b - 4*a*c
	if !(discr >= 0) {
		return math.NaN()
	}
	q := -0.5 * (b + math.Copysign(math.Sqrt(discr), b))

	// Pick the root closer to 1/2: |q/a - 1/2| < |c/q - 1/2|.
	r := 0.5 * q * a
	if math.Abs(q*q-r) < math.Abs(a*c-r) {
		return q / a
	}
	return c / q
}

// splitParameter returns t if it lies in (0, 1), and 1/2 otherwise.
func splitParameter(t float64) float64 {
	if t > 0 && t < 1 {
		return t
	}
	return 0.5
}
