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

	"seehuhn.de/go/geom/vec"
)

// Conic is a rational quadratic Bézier curve in standard form: the end
// points have weight 1 and the control point has weight W.
//
// W < 1 gives an elliptical arc, W = 1 a parabola and W > 1 a hyperbola.
type Conic struct {
	P [3]vec.Vec2
	W float64
}

// homog is a point in homogeneous coordinates.
type homog struct {
	X, Y, Z float64
}

func lerpHomog(a, b homog, t float64) homog {
	return homog{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
		Z: a.Z + t*(b.Z-a.Z),
	}
}

func (h homog) project() vec.Vec2 {
	return vec.Vec2{X: h.X / h.Z, Y: h.Y / h.Z}
}

func (c Conic) homogeneous() [3]homog {
	return [3]homog{
		{c.P[0].X, c.P[0].Y, 1},
		{c.P[1].X * c.W, c.P[1].Y * c.W, c.W},
		{c.P[2].X, c.P[2].Y, 1},
	}
}

// EvalAt returns the point at parameter t.
func (c Conic) EvalAt(t float64) vec.Vec2 {
	h := c.homogeneous()
	a := lerpHomog(h[0], h[1], t)
	b := lerpHomog(h[1], h[2], t)
	return lerpHomog(a, b, t).project()
}

// TangentCoeffs returns the coefficients of a quadratic polynomial
// T(t) = C2 t² + C1 t + C0 which points in the direction of the tangent
// of the conic at t.
//
// The derivative of a conic is a quotient with a fourth order denominator.
// The denominator scales both coordinates by the same positive amount, so
// only the numerator is needed to find tangent directions.
func (c Conic) TangentCoeffs() (C2, C1, C0 vec.Vec2) {
	p10 := c.P[1].Sub(c.P[0])
	p20 := c.P[2].Sub(c.P[0])
	C2 = p20.Mul(c.W - 1)
	C1 = p20.Sub(p10.Mul(2 * c.W))
	C0 = p10.Mul(c.W)
	return C2, C1, C0
}

// TangentAt returns a vector in the direction of the tangent at t.
//
// If the curve is degenerate at an end point, the chord direction is
// returned instead of the zero vector.
func (c Conic) TangentAt(t float64) vec.Vec2 {
	if (t == 0 && c.P[0] == c.P[1]) || (t == 1 && c.P[1] == c.P[2]) {
		return c.P[2].Sub(c.P[0])
	}
	C2, C1, C0 := c.TangentCoeffs()
	return C2.Mul(t).Add(C1).Mul(t).Add(C0)
}

// ChopAt splits the conic at parameter t.  The subdivision is carried out
// in homogeneous coordinates, so that both halves are exact conics, and the
// weights of the halves are then normalised to standard form.
//
// The second return value is false if the result is not finite.
func (c Conic) ChopAt(t float64) ([2]Conic, bool) {
	h := c.homogeneous()
	h01 := lerpHomog(h[0], h[1], t)
	h12 := lerpHomog(h[1], h[2], t)
	h012 := lerpHomog(h01, h12, t)

	mid := h012.project()

	// For the left half w0 = 1, for the right half w2 = 1, so the
	// standard-form weight w1/sqrt(w0*w2) reduces to the expressions below.
	root := math.Sqrt(h012.Z)
	res := [2]Conic{
		{P: [3]vec.Vec2{c.P[0], h01.project(), mid}, W: h01.Z / root},
		{P: [3]vec.Vec2{mid, h12.project(), c.P[2]}, W: h12.Z / root},
	}
	ok := IsFinite(res[0].P[:]...) && IsFinite(res[1].P[:]...) &&
		!math.IsNaN(res[0].W) && !math.IsInf(res[0].W, 0) &&
		!math.IsNaN(res[1].W) && !math.IsInf(res[1].W, 0)
	return res, ok
}

// Chop splits the conic at t=1/2.
func (c Conic) Chop() ([2]Conic, bool) {
	return c.ChopAt(0.5)
}
