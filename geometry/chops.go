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

// Chop-point solvers
//
// Near an inflection point (or a loop's double point) a cubic hugs the
// tangent lines L and M of the KLM parametrisation.  These segments are not
// safe to render as curves.  The functions in this file find the parameter
// ranges in which the curve stays within a box of a given radius around
// L (resp. M).  These ranges are later drawn as flat lines or quadratics,
// everything between them as monotonic cubics.
//
// With the power basis P(T) = C3 T³ + C2 T² + C1 T + P0, the homogeneous
// line L satisfies P(T)·L = l(T) for the KLM function l.  Only the normal
// (Lx, Ly) is needed, which follows from the 2×2 system formed by the T³ row
// and one of the T² and T rows.  Dividing by the determinant of this system
// is folded into the pad radius.

// klmBasis holds the two rows of the power basis matrix which determine
// the normals of the lines L and M.
type klmBasis struct {
	c3 vec.Vec2 // coefficient of T³
	ck vec.Vec2 // coefficient of T² if useT2, of T otherwise

	// useT2 is true if the linear term is excluded from the system.
	useT2 bool

	det float64
}

func newKLMBasis(p [4]vec.Vec2, d [4]float64) klmBasis {
	var b klmBasis
	b.useT2 = math.Abs(d[2]) <= math.Abs(d[1])
	b.c3 = p[3].Sub(p[0]).Add(p[1].Sub(p[2]).Mul(3))
	if b.useT2 {
		b.ck = p[0].Add(p[2]).Sub(p[1].Mul(2)).Mul(3)
	} else {
		b.ck = p[1].Sub(p[0]).Mul(3)
	}
	b.det = b.c3.X*b.ck.Y - b.c3.Y*b.ck.X
	return b
}

// lineWidth returns the Manhattan length of the normal of the line whose
// function has the power basis coefficients l3 (for T³) and lk (for the row
// selected by useT2).
func (b *klmBasis) lineWidth(l3, lk float64) float64 {
	Lx := b.ck.Y*l3 - b.c3.Y*lk
	Ly := -b.ck.X*l3 + b.c3.X*lk
	return math.Abs(Lx) + math.Abs(Ly)
}

// InflectionChops appends to dst the parameter values at which a
// serpentine or cusp has to be chopped so that a box of radius pad,
// centred on any point of a curved segment, does not cross the tangent
// lines at the inflection points.
//
// Zero, two or four values are appended.  The range between each pair of
// values passes through an inflection point and may be drawn as a straight
// line.  Only inflection points strictly inside (0, 1) are padded.  The
// values are clipped to [0, 1].
func InflectionChops(dst []float64, pad float64, p [4]vec.Vec2, c *Classification) []float64 {
	b := newKLMBasis(p, c.D)
	if b.det == 0 || !(pad >= 0) {
		return dst
	}
	padRadius := pad / math.Abs(b.det)

	start := len(dst)
	for i := range 2 {
		// The homogeneous function for the distance from line L is
		// l(t,s) = (t*sl - s*tl)³, with a triple root at tl/sl.
		tl, sl := c.T[i], c.S[i]
		if sl == 0 {
			continue // root at infinity
		}
		if sl < 0 {
			tl, sl = -tl, -sl
		}
		T := tl / sl
		if !(T > 0 && T < 1) {
			continue
		}

		l3 := sl * sl * sl
		var lk float64
		if b.useT2 {
			lk = -3 * sl * sl * tl
		} else {
			lk = 3 * sl * tl * tl
		}
		padL := b.lineWidth(l3, lk) * padRadius

		// |l(t,1)| = padL  <=>  t*sl - tl = ±cbrt(padL)
		padT := math.Cbrt(padL)
		lo := clampUnit((tl - padT) / sl)
		hi := clampUnit((tl + padT) / sl)
		dst = append(dst, lo, hi)
	}
	if len(dst)-start == 4 && dst[start+2] < dst[start] {
		dst[start], dst[start+2] = dst[start+2], dst[start]
		dst[start+1], dst[start+3] = dst[start+3], dst[start+1]
	}
	return dst
}

// LoopChops appends to dst the parameter values at which a loop has to be
// chopped so that a box of radius pad, centred on any point of a curved
// segment, does not cross the lines L and M through the double point.
//
// Zero, two or four values are appended.  The range between each pair of
// values passes through the double point and should be drawn with a
// quadratic approximation.  The values are clipped to [0, 1].
func LoopChops(dst []float64, pad float64, p [4]vec.Vec2, c *Classification) []float64 {
	b := newKLMBasis(p, c.D)
	if b.det == 0 || !(pad >= 0) {
		return dst
	}
	padRadius := pad / math.Abs(b.det)

	Td := c.Root(0)
	Te := c.Root(1)
	if !isFiniteScalar(Td) || !isFiniteScalar(Te) {
		return dst
	}

	start := len(dst)
	for i := range 2 {
		// l(T) = (T - A)² (T - B) with (A, B) = (Td, Te) for line L and
		// (A, B) = (Te, Td) for line M.
		A, B := Td, Te
		if i == 1 {
			A, B = Te, Td
		}
		l2 := -2*A - B
		l1 := A * (2*B + A)
		l0 := -A * A * B
		lk := l1
		if b.useT2 {
			lk = l2
		}
		padL := b.lineWidth(1, lk) * padRadius

		lo, hi := loopPadRange(A, B, l2, l1, l0, padL)
		if hi <= 0 || lo >= 1 {
			continue
		}
		dst = append(dst, clampUnit(lo), clampUnit(hi))
	}
	if len(dst)-start == 4 && dst[start+2] < dst[start] {
		dst[start], dst[start+2] = dst[start+2], dst[start]
		dst[start+1], dst[start+3] = dst[start+3], dst[start+1]
	}
	return dst
}

// loopPadRange finds the parameter range around the double root A of
// l(T) = T³ + l2 T² + l1 T + l0 = (T - A)² (T - B) in which |l(T)| <= pad.
func loopPadRange(A, B, l2, l1, l0, pad float64) (lo, hi float64) {
	// Near A, l(T) has the sign of A - B.
	sigma := 1.0
	if A < B {
		sigma = -1
	}

	// Solve T³ + l2 T² + l1 T + (l0 - sigma*pad) = 0 by substituting
	// T = x - l2/3, which gives x³ + p x + q = 0.
	shift := l2 / 3
	p := l1 - l2*shift
	q := 2*shift*shift*shift - shift*l1 + l0 - sigma*pad
	roots, n := SolveDepressedCubic(p, q)
	for i := range n {
		roots[i] -= shift
	}

	if n == 3 {
		if A < B {
			return roots[0], roots[1]
		}
		return roots[1], roots[2]
	}

	// The loop is smaller than the padding: the range extends from the
	// single root across the whole loop.
	if A < B {
		return min(roots[0], A), B
	}
	return B, max(roots[0], A)
}

// CubicChops computes the chop points for a non-degenerate cubic, using
// InflectionChops for serpentines and cusps and LoopChops for loops.
//
// If the two padded ranges overlap, the middle section is approximated as a
// whole, but still chopped at the midpoint between the two characteristic
// roots.  For loops this keeps the approximated segments convex; for
// (near) cusps it preserves the sharp point.
//
// The result is appended to dst and is sorted.
func CubicChops(dst []float64, p [4]vec.Vec2, c *Classification, inflectPad, loopPad float64) []float64 {
	start := len(dst)
	switch c.Type {
	case Loop:
		dst = LoopChops(dst, loopPad, p, c)
	case Serpentine, LocalCusp, CuspAtInfinity:
		dst = InflectionChops(dst, inflectPad, p, c)
	default:
		return dst
	}

	chops := dst[start:]
	if len(chops) == 4 && chops[1] >= chops[2] {
		lo := min(chops[0], chops[2])
		hi := max(chops[1], chops[3])
		mid := (c.T[0]*c.S[1] + c.T[1]*c.S[0]) / (2 * c.S[0] * c.S[1])
		if !(mid >= lo && mid <= hi) {
			mid = (lo + hi) / 2
		}
		chops[0], chops[1], chops[2], chops[3] = lo, mid, mid, hi
	}
	return dst
}

func isFiniteScalar(x float64) bool {
	return x-x == 0
}
