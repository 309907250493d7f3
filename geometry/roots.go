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

package geometry

import (
	"math"
	"slices"

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/vec"
)

// validUnitDivide returns numer/denom if the quotient lies strictly
// inside (0, 1).
func validUnitDivide(numer, denom float64) (float64, bool) {
	if numer < 0 {
		numer = -numer
		denom = -denom
	}
	if denom == 0 || numer == 0 || numer >= denom {
		return 0, false
	}
	r := numer / denom
	if math.IsNaN(r) || r == 0 {
		// r == 0 catches underflow when numer is much smaller than denom
		return 0, false
	}
	return r, true
}

// SolveUnitQuadRoots finds the roots of a*t² + b*t + c = 0 which lie
// strictly inside the interval (0, 1).
//
// The roots are returned in ascending order.  A double root is reported
// only once.  If a is zero, the equation is solved as a linear equation.
func SolveUnitQuadRoots(a, b, c float64) ([2]float64, int) {
	var roots [2]float64
	if a == 0 {
		if r, ok := validUnitDivide(-c, b); ok {
			roots[0] = r
			return roots, 1
		}
		return roots, 0
	}

	dr := b*b - 4*a*c
	if dr < 0 {
		return roots, 0
	}
	r := math.Sqrt(dr)
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return roots, 0
	}

	// q has the sign of -b, which avoids cancellation in the formula below
	var q float64
	if b < 0 {
		q = -(b - r) / 2
	} else {
		q = -(b + r) / 2
	}

	n := 0
	if t, ok := validUnitDivide(q, a); ok {
		roots[n] = t
		n++
	}
	if t, ok := validUnitDivide(c, q); ok {
		roots[n] = t
		n++
	}
	if n == 2 {
		if roots[0] > roots[1] {
			roots[0], roots[1] = roots[1], roots[0]
		} else if roots[0] == roots[1] {
			n = 1
		}
	}
	return roots, n
}

// FindCubicExtrema returns the parameter values in (0, 1) where one
// coordinate of a cubic Bézier with control values a, b, c, d has a local
// extremum.
func FindCubicExtrema(a, b, c, d float64) ([2]float64, int) {
	// derivative divided by 3
	A := d - a + 3*(b-c)
	B := 2 * (a - b - b + c)
	C := b - a
	return SolveUnitQuadRoots(A, B, C)
}

// FindQuadExtremum returns the parameter value in (0, 1) where one
// coordinate of a quadratic Bézier with control values a, b, c has its
// extremum.
func FindQuadExtremum(a, b, c float64) (float64, bool) {
	return validUnitDivide(a-b, a-b-b+c)
}

// FindCubicInflections returns the parameter values in (0, 1) where the
// cubic Bézier changes the direction in which it turns.
func FindCubicInflections(p [4]vec.Vec2) ([2]float64, int) {
	A := p[1].Sub(p[0])
	B := p[2].Sub(p[1].Mul(2)).Add(p[0])
	C := p[3].Add(p[1].Sub(p[2]).Mul(3)).Sub(p[0])
	return SolveUnitQuadRoots(
		B.X*C.Y-B.Y*C.X,
		A.X*C.Y-A.Y*C.X,
		A.X*B.Y-A.Y*B.X,
	)
}

// FindCubicMaxCurvature returns the parameter values in [0, 1] where the
// derivative of the cubic is perpendicular to its second derivative.  These
// include the points of maximal curvature.
//
// The values are sorted and duplicates are removed.
func FindCubicMaxCurvature(p [4]vec.Vec2) ([3]float64, int) {
	// F'·F'' = 0, with
	//   A = P1 - P0
	//   B = P2 - 2 P1 + P0
	//   C = P3 + 3 (P1 - P2) - P0
	// which gives C·C t³ + 3 B·C t² + (2 B·B + C·A) t + A·B = 0.
	A := p[1].Sub(p[0])
	B := p[2].Sub(p[1].Mul(2)).Add(p[0])
	C := p[3].Add(p[1].Sub(p[2]).Mul(3)).Sub(p[0])

	c3 := C.Dot(C)
	c2 := 3 * B.Dot(C)
	c1 := 2*B.Dot(B) + C.Dot(A)
	c0 := A.Dot(B)

	var res [3]float64
	if c3 == 0 && c2 == 0 && c1 == 0 {
		// the curve is a straight line traversed at constant speed
		return res, 0
	}

	roots, n := curve.SolveCubic(c0, c1, c2, c3)
	ts := roots[:n]
	for i, t := range ts {
		ts[i] = clampUnit(t)
	}
	slices.Sort(ts)
	ts = slices.Compact(ts)
	copy(res[:], ts)
	return res, len(ts)
}

// clampUnit pins t into [0, 1].  NaN is mapped to 0.
func clampUnit(t float64) float64 {
	if !(t > 0) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// SolveDepressedCubic returns the real roots of x³ + p x + q = 0 in
// ascending order, using Cardano's formula when there is one real root and
// the trigonometric form when there are three.
func SolveDepressedCubic(p, q float64) ([3]float64, int) {
	var roots [3]float64

	disc := q*q/4 + p*p*p/27
	switch {
	case disc > 0:
		// one real root
		sq := math.Sqrt(disc)
		roots[0] = math.Cbrt(-q/2+sq) + math.Cbrt(-q/2-sq)
		return roots, 1
	case p == 0:
		// triple root at zero (q is zero too, since disc <= 0)
		return roots, 1
	default:
		// three real roots, possibly with repetition
		r := 2 * math.Sqrt(-p/3)
		arg := 3 * q / (p * r)
		theta := math.Acos(max(-1, min(1, arg))) / 3
		roots[0] = r * math.Cos(theta)
		roots[1] = r * math.Cos(theta-2*math.Pi/3)
		roots[2] = r * math.Cos(theta-4*math.Pi/3)
		slices.Sort(roots[:])
		return roots, 3
	}
}
