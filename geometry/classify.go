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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// CubicType describes the shape of a cubic Bézier curve.
type CubicType int

// These are the possible shapes of a cubic Bézier curve.
const (
	// Serpentine curves have two distinct inflection points.
	Serpentine CubicType = iota

	// Loop curves have a self-intersection.  The two characteristic roots
	// are the two parameter values which map to the double point.
	Loop

	// LocalCusp curves have a cusp at a finite parameter value.
	LocalCusp

	// CuspAtInfinity curves have one inflection point, the second
	// characteristic root lies at infinity.
	CuspAtInfinity

	// Quadratic curves are degree-elevated quadratic Bézier curves.
	Quadratic

	// LineOrPoint curves lie on a straight line.
	LineOrPoint
)

func (t CubicType) String() string {
	switch t {
	case Serpentine:
		return "serpentine"
	case Loop:
		return "loop"
	case LocalCusp:
		return "local cusp"
	case CuspAtInfinity:
		return "cusp at infinity"
	case Quadratic:
		return "quadratic"
	case LineOrPoint:
		return "line or point"
	default:
		return fmt.Sprintf("CubicType(%d)", int(t))
	}
}

// IsDegenerate reports whether the curve can be represented with a lower
// degree curve.
func (t CubicType) IsDegenerate() bool {
	return t == Quadratic || t == LineOrPoint
}

// Classification is the result of classifying a cubic Bézier curve.
type Classification struct {
	Type CubicType

	// T and S hold the two characteristic roots in homogeneous form
	// (T[i], S[i]).  For serpentines and cusps these are the inflection
	// points, for loops the parameter values of the double point.
	// The roots are ordered so that T[0]/S[0] <= T[1]/S[1].  S[1] is never
	// positive, which orients the implicit function of the curve so that
	// positive values lie on the left hand side.  A root at infinity is
	// represented as (1, 0).
	T, S [2]float64

	// D holds the coefficients of the inflection function
	// I(T) = [T³ -3T² 3T -1] · D.  D[0] is always zero.  The coefficients
	// are scaled by a power of two so that the largest magnitude lies in
	// [1, 2).
	D [4]float64
}

// Root returns the i-th characteristic root as an ordinary parameter value.
// A root at infinity is returned as ±Inf.
func (c *Classification) Root(i int) float64 {
	return c.T[i] / c.S[i]
}

// dotCross computes p0·(p1×p2), with all points lifted to the plane z=1.
func dotCross(p0, p1, p2 vec.Vec2) float64 {
	xComp := p0.X * (p1.Y - p2.Y)
	yComp := p0.Y * (p2.X - p1.X)
	wComp := p1.X*p2.Y - p1.Y*p2.X
	return xComp + yComp + wComp
}

// previousInversePow2 returns a power of two close to 1/n, such that
// n times the result lies in [1, 2).  This is done by manipulating the
// exponent bits directly.
func previousInversePow2(n float64) float64 {
	bits := math.Float64bits(n)
	bits = ((1023 * 2 << 52) + ((1 << 52) - 1)) - bits // exp = -exp
	bits &= 0x7ff << 52                                 // mantissa = 1.0, sign = 0
	return math.Float64frombits(bits)
}

// setRoots stores the two characteristic roots, orienting and sorting them.
func (c *Classification) setRoots(t0, s0, t1, s1 float64) {
	c.T[0] = t0
	c.S[0] = s0

	// Orient the implicit function so that positive values are always on
	// the left side of the curve.
	c.T[1] = -math.Copysign(t1, t1*s1)
	c.S[1] = -math.Abs(s1)

	// Ensure T[0]/S[0] <= T[1]/S[1], using that S[1] <= 0.
	if math.Copysign(c.S[1], c.S[0])*c.T[0] > -math.Abs(c.S[0])*c.T[1] {
		c.T[0], c.T[1] = c.T[1], c.T[0]
		c.S[0], c.S[1] = c.S[1], c.S[0]
	}
}

// Classify determines the type of a cubic Bézier curve, following the
// curve categorisation in Loop and Blinn, "Resolution Independent Curve
// Rendering using Programmable Graphics Hardware", sections 4.2 and 4.4.
//
// Control points which are not finite give the type LineOrPoint, with both
// roots at infinity.
func Classify(p [4]vec.Vec2) Classification {
	var c Classification
	if !IsFinite(p[:]...) {
		c.Type = LineOrPoint
		c.setRoots(1, 0, 1, 0)
		return c
	}

	// The inflection function is I = [T³ -3T² 3T -1] · D; D0 is zero for
	// integral cubics.
	A1 := dotCross(p[0], p[3], p[2])
	A2 := dotCross(p[1], p[0], p[3])
	A3 := dotCross(p[2], p[1], p[0])

	D3 := 3 * A3
	D2 := D3 - A2
	D1 := D2 - A2 + A1

	// Shift the exponents so that the largest magnitude falls in [1, 2).
	// This protects the root and padding computations from overflow.
	Dmax := max(math.Abs(D1), math.Abs(D2), math.Abs(D3))
	norm := previousInversePow2(Dmax)
	D1 *= norm
	D2 *= norm
	D3 *= norm
	c.D = [4]float64{0, D1, D2, D3}

	if D1 != 0 {
		discr := 3*D2*D2 - 4*D1*D3
		switch {
		case discr > 0:
			q := 3*D2 + math.Copysign(math.Sqrt(3*discr), D2)
			c.Type = Serpentine
			c.setRoots(q, 6*D1, 2*D3, q)
		case discr < 0:
			q := D2 + math.Copysign(math.Sqrt(-discr), D2)
			c.Type = Loop
			c.setRoots(q, 2*D1, 2*(D2*D2-D3*D1), D1*q)
		default:
			c.Type = LocalCusp
			c.setRoots(D2, 2*D1, D2, 2*D1)
		}
		return c
	}

	if D2 != 0 {
		c.Type = CuspAtInfinity
		c.setRoots(D3, 3*D2, 1, 0)
		return c
	}

	if D3 != 0 {
		c.Type = Quadratic
	} else {
		c.Type = LineOrPoint
	}
	c.setRoots(1, 0, 1, 0)
	return c
}

// ClassifyCubic returns only the type of a cubic Bézier curve.
func ClassifyCubic(p [4]vec.Vec2) CubicType {
	return Classify(p).Type
}
