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

// cuspPrecision is the relative size, compared to the squared length of the
// control polygon, below which a derivative is considered to vanish.
const cuspPrecision = 1e-8

// onSameSide reports whether p[test] and p[test+1] lie on the same side of
// the line through p[line] and p[line+1].
func onSameSide(p [4]vec.Vec2, test, line int) bool {
	origin := p[line]
	dir := p[line+1].Sub(origin)
	var crosses [2]float64
	for i := range 2 {
		d := p[test+i].Sub(origin)
		crosses[i] = dir.X*d.Y - dir.Y*d.X
	}
	return crosses[0]*crosses[1] >= 0
}

// FindCubicCusp returns the parameter value in (0, 1) of a cusp of the cubic
// Bézier p.  A cusp is a point of maximal curvature where the derivative
// vanishes.
//
// Curves where a control point coincides with the adjacent end point are
// not reported; their vanishing derivative at the end point is harmless.
func FindCubicCusp(p [4]vec.Vec2) (float64, bool) {
	if p[0] == p[1] || p[2] == p[3] {
		return 0, false
	}

	// A cusp requires the segments P0P1 and P2P3 to cross.
	if onSameSide(p, 0, 2) || onSameSide(p, 2, 0) {
		return 0, false
	}

	precision := (sqDist(p[1], p[0]) + sqDist(p[2], p[1]) + sqDist(p[3], p[2])) * cuspPrecision

	ts, n := FindCubicMaxCurvature(p)
	for _, t := range ts[:n] {
		if t <= 0 || t >= 1 {
			continue
		}
		d := cubicDerivative(p, t)
		if d.Dot(d) < precision {
			return t, true
		}
	}
	return 0, false
}

func sqDist(a, b vec.Vec2) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}
