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

import "seehuhn.de/go/geom/vec"

// Lerp returns the point a + t*(b-a).
func Lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return vec.Vec2{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}
}

// EvalQuadAt returns the point at parameter t on the quadratic Bézier p.
func EvalQuadAt(p [3]vec.Vec2, t float64) vec.Vec2 {
	// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
	omt := 1 - t
	return p[0].Mul(omt * omt).Add(p[1].Mul(2 * omt * t)).Add(p[2].Mul(t * t))
}

// QuadTangentAt returns a vector in the direction of the tangent of the
// quadratic Bézier p at parameter t.  The length of the vector is half
// the length of the derivative.
//
// If t is 0 or 1 and the control point coincides with the corresponding end
// point, the chord direction is returned instead of the zero vector.
func QuadTangentAt(p [3]vec.Vec2, t float64) vec.Vec2 {
	if (t == 0 && p[0] == p[1]) || (t == 1 && p[1] == p[2]) {
		return p[2].Sub(p[0])
	}
	b := p[1].Sub(p[0])
	a := p[2].Sub(p[1]).Sub(b)
	return a.Mul(t).Add(b)
}

// EvalCubicAt returns the point at parameter t on the cubic Bézier p.
func EvalCubicAt(p [4]vec.Vec2, t float64) vec.Vec2 {
	// power basis: ((A t + B) t + C) t + D
	A := p[3].Add(p[1].Sub(p[2]).Mul(3)).Sub(p[0])
	B := p[2].Sub(p[1].Mul(2)).Add(p[0]).Mul(3)
	C := p[1].Sub(p[0]).Mul(3)
	return A.Mul(t).Add(B).Mul(t).Add(C).Mul(t).Add(p[0])
}

// cubicDerivative returns one third of the derivative of p at t.
func cubicDerivative(p [4]vec.Vec2, t float64) vec.Vec2 {
	A := p[3].Add(p[1].Sub(p[2]).Mul(3)).Sub(p[0])
	B := p[2].Sub(p[1].Mul(2)).Add(p[0]).Mul(2)
	C := p[1].Sub(p[0])
	return A.Mul(t).Add(B).Mul(t).Add(C)
}

// CubicTangentAt returns a vector in the direction of the tangent of the
// cubic Bézier p at parameter t.  The length of the vector is one third of
// the length of the derivative.
//
// The derivative vanishes at t=0 (or t=1) when the adjacent control point
// equals the end point.  In this case the direction towards the next control
// point is used, and if this is zero as well, the chord direction.
func CubicTangentAt(p [4]vec.Vec2, t float64) vec.Vec2 {
	if (t == 0 && p[0] == p[1]) || (t == 1 && p[2] == p[3]) {
		var tangent vec.Vec2
		if t == 0 {
			tangent = p[2].Sub(p[0])
		} else {
			tangent = p[3].Sub(p[1])
		}
		if tangent.X == 0 && tangent.Y == 0 {
			tangent = p[3].Sub(p[0])
		}
		return tangent
	}
	return cubicDerivative(p, t)
}

// CubicCurvatureAt returns one sixth of the second derivative of the cubic
// Bézier p at parameter t.
func CubicCurvatureAt(p [4]vec.Vec2, t float64) vec.Vec2 {
	A := p[3].Add(p[1].Sub(p[2]).Mul(3)).Sub(p[0])
	B := p[2].Sub(p[1].Mul(2)).Add(p[0])
	return A.Mul(t).Add(B)
}

// IsFinite reports whether all coordinates of the given points are finite.
func IsFinite(pts ...vec.Vec2) bool {
	for _, p := range pts {
		// x-x is NaN for both infinities and NaN
		if p.X-p.X != 0 || p.Y-p.Y != 0 {
			return false
		}
	}
	return true
}
