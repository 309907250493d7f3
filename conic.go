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

	"seehuhn.de/go/curvefill/geometry"
)

// ConicTo appends a conic section with control point p1 and weight w, given
// in standard form.  The weight must be non-negative; curves with invalid
// weights or non-finite points are replaced by a line.
//
// Flat conics become lines.  Conics which are not monotonic with respect to
// their chord are chopped once at the midtangent, or at t = 1/2 if no
// midtangent is found.
func (d *Decomposer) ConicTo(p0, p1, p2 vec.Vec2, w float64) {
	d.checkSegment("ConicTo", p0)
	if !geometry.IsFinite(p1, p2) || !(w >= 0) || math.IsInf(w, 1) {
		Logger().Debug("invalid conic", "p1", p1, "p2", p2, "w", w)
		d.appendLine(p0, p2)
		return
	}
	if areCollinear(p0, p1, p2, d.Flatness) {
		d.appendLine(p0, p2)
		return
	}

	c := geometry.Conic{P: [3]vec.Vec2{p0, p1, p2}, W: w}
	tan0 := p1.Sub(p0)
	tan1 := p2.Sub(p1)
	if !isConvexCurveMonotonic(p0, tan0, p2, tan1) {
		C2, C1, C0 := c.TangentCoeffs()
		midT := splitParameter(findMidtangent(tan0, tan1, C2, C1, C0))
		halves, ok := c.ChopAt(midT)
		if !ok && midT != 0.5 {
			halves, ok = c.Chop()
		}
		if !ok {
			d.appendLine(p0, p2)
			return
		}
		d.appendMonotonicConic(halves[0])
		d.appendMonotonicConic(halves[1])
		return
	}
	d.appendMonotonicConic(c)
}

func (d *Decomposer) appendMonotonicConic(c geometry.Conic) {
	p0, p1, p2 := c.P[0], c.P[1], c.P[2]
	if areCollinear(p0, p1, p2, d.Flatness) {
		d.appendLine(p0, p2)
		return
	}
	if !isConvexCurveMonotonic(p0, p1.Sub(p0), p2, p2.Sub(p1)) {
		d.appendPolyline(p0, c.EvalAt, p2)
		return
	}

	d.points = append(d.points, p1, p2)
	d.conicWeights = append(d.conicWeights, c.W)
	d.verbs = append(d.verbs, MonotonicConicTo)
	d.tallies.Conics++
}
