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

// ChopQuadAt splits the quadratic Bézier p at parameter t using
// De Casteljau's algorithm.  The first three points of the result form
// the left half, the last three the right half.
func ChopQuadAt(p [3]vec.Vec2, t float64) [5]vec.Vec2 {
	p01 := Lerp(p[0], p[1], t)
	p12 := Lerp(p[1], p[2], t)
	return [5]vec.Vec2{
		p[0],
		p01,
		Lerp(p01, p12, t),
		p12,
		p[2],
	}
}

// ChopCubicAt splits the cubic Bézier p at parameter t using
// De Casteljau's algorithm.  The first four points of the result form
// the left half, the last four the right half.
func ChopCubicAt(p [4]vec.Vec2, t float64) [7]vec.Vec2 {
	ab := Lerp(p[0], p[1], t)
	bc := Lerp(p[1], p[2], t)
	cd := Lerp(p[2], p[3], t)
	abc := Lerp(ab, bc, t)
	bcd := Lerp(bc, cd, t)
	abcd := Lerp(abc, bcd, t)
	return [7]vec.Vec2{p[0], ab, abc, abcd, bcd, cd, p[3]}
}

// ChopCubicAtMany splits the cubic Bézier p at the given parameter values,
// which must be sorted in increasing order.  The result holds 3*len(ts)+4
// points; segment i occupies positions 3*i to 3*i+3.
//
// If a t value cannot be mapped into the remaining part of the curve
// (because it is out of order or outside (0, 1)), the remaining segments
// degenerate to the end point of p.
func ChopCubicAtMany(p [4]vec.Vec2, ts []float64) []vec.Vec2 {
	dst := make([]vec.Vec2, 3*len(ts)+4)
	if len(ts) == 0 {
		copy(dst, p[:])
		return dst
	}

	seg := p
	prevT := 0.0
	for i, t := range ts {
		out := dst[3*i:]
		local, ok := t, true
		if i > 0 {
			local, ok = validUnitDivide(t-prevT, 1-prevT)
		} else if !(t > 0 && t < 1) {
			ok = false
		}
		if !ok {
			copy(out, seg[:])
			for j := 4; j < len(out); j++ {
				out[j] = p[3]
			}
			return dst
		}

		chopped := ChopCubicAt(seg, local)
		copy(out, chopped[:])
		copy(seg[:], chopped[3:])
		prevT = t
	}
	return dst
}
