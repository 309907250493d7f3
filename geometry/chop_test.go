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
	"testing"

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/vec"
)

var testCubics = [][4]vec.Vec2{
	{{X: 0, Y: 0}, {X: 10, Y: 30}, {X: 20, Y: -30}, {X: 30, Y: 0}},
	{{X: 285.625, Y: 499.687}, {X: 411.625, Y: 808.188}, {X: 1064.62, Y: 135.688}, {X: 1042.63, Y: 585.187}},
	{{X: 635.625, Y: 614.687}, {X: 171.625, Y: 236.188}, {X: 1064.62, Y: 135.688}, {X: 516.625, Y: 570.187}},
	{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 2}},
}

func near(a, b vec.Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestEvalCubicAt(t *testing.T) {
	for i, p := range testCubics {
		ref := curve.CubicBez{
			P0: curve.Pt(p[0].X, p[0].Y),
			P1: curve.Pt(p[1].X, p[1].Y),
			P2: curve.Pt(p[2].X, p[2].Y),
			P3: curve.Pt(p[3].X, p[3].Y),
		}
		for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.8, 1} {
			got := EvalCubicAt(p, tt)
			want := ref.Eval(tt)
			if !near(got, vec.Vec2{X: want.X, Y: want.Y}, 1e-9) {
				t.Errorf("%d: EvalCubicAt(%g) = %v, want %v", i, tt, got, want)
			}
		}
	}
}

func TestEvalQuadAt(t *testing.T) {
	p := [3]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}}
	if got := EvalQuadAt(p, 0.5); !near(got, vec.Vec2{X: 1, Y: 1}, 1e-15) {
		t.Errorf("got %v, want (1, 1)", got)
	}
	if got := QuadTangentAt(p, 0.5); !near(got, vec.Vec2{X: 1, Y: 0}, 1e-15) {
		t.Errorf("tangent got %v, want (1, 0)", got)
	}
}

func TestCubicTangentFallback(t *testing.T) {
	p := [4]vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 0}}
	if got := CubicTangentAt(p, 0); got != (vec.Vec2{X: 2, Y: 1}) {
		t.Errorf("start tangent %v, want (2, 1)", got)
	}

	point := [4]vec.Vec2{{X: 3, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 3}}
	if got := CubicTangentAt(point, 1); got != (vec.Vec2{}) {
		t.Errorf("tangent of a point %v, want zero", got)
	}
}

// TestChopRoundTrip checks that both halves of a chopped curve, evaluated
// at rescaled parameters, agree with the original curve.
func TestChopRoundTrip(t *testing.T) {
	const eps = 1e-9
	for i, p := range testCubics {
		for _, at := range []float64{0.1, 0.5, 0.73} {
			t.Run(fmt.Sprintf("%d_%g", i, at), func(t *testing.T) {
				res := ChopCubicAt(p, at)
				left := [4]vec.Vec2{res[0], res[1], res[2], res[3]}
				right := [4]vec.Vec2{res[3], res[4], res[5], res[6]}
				scale := 1 + math.Abs(p[0].X) + math.Abs(p[0].Y)

				if res[0] != p[0] || res[6] != p[3] {
					t.Errorf("end points moved")
				}
				for _, u := range []float64{0, 0.3, 0.6, 1} {
					want := EvalCubicAt(p, u*at)
					if got := EvalCubicAt(left, u); !near(got, want, eps*scale) {
						t.Errorf("left(%g) = %v, want %v", u, got, want)
					}
					want = EvalCubicAt(p, at+u*(1-at))
					if got := EvalCubicAt(right, u); !near(got, want, eps*scale) {
						t.Errorf("right(%g) = %v, want %v", u, got, want)
					}
				}
			})
		}
	}

	q := [3]vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 8}, {X: 8, Y: 0}}
	res := ChopQuadAt(q, 0.25)
	for _, u := range []float64{0, 0.5, 1} {
		want := EvalQuadAt(q, u*0.25)
		if got := EvalQuadAt([3]vec.Vec2{res[0], res[1], res[2]}, u); !near(got, want, 1e-12) {
			t.Errorf("quad left(%g) = %v, want %v", u, got, want)
		}
	}
}

func TestChopCubicAtMany(t *testing.T) {
	p := testCubics[1]
	ts := []float64{0.2, 0.5, 0.9}
	pts := ChopCubicAtMany(p, ts)
	if len(pts) != 3*len(ts)+4 {
		t.Fatalf("got %d points, want %d", len(pts), 3*len(ts)+4)
	}
	for i, tt := range ts {
		want := EvalCubicAt(p, tt)
		if got := pts[3*i+3]; !near(got, want, 1e-9) {
			t.Errorf("chop %d at %v, want %v", i, got, want)
		}
	}
	if pts[len(pts)-1] != p[3] {
		t.Errorf("end point %v, want %v", pts[len(pts)-1], p[3])
	}

	// invalid values make the rest of the curve degenerate
	pts = ChopCubicAtMany(p, []float64{0.5, 0.4})
	for _, pt := range pts[7:] {
		if pt != p[3] {
			t.Errorf("expected degenerate tail, got %v", pts)
			break
		}
	}
}
