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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestFindCubicCusp(t *testing.T) {
	cases := []struct {
		name    string
		p       [4]vec.Vec2
		want    float64
		hasCusp bool
	}{
		{
			name:    "cusp",
			p:       [4]vec.Vec2{{X: 0, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}, {X: 100, Y: 0}},
			want:    0.5,
			hasCusp: true,
		},
		{
			name: "loop",
			p:    [4]vec.Vec2{{X: 635.625, Y: 614.687}, {X: 171.625, Y: 236.188}, {X: 1064.62, Y: 135.688}, {X: 516.625, Y: 570.187}},
		},
		{
			name: "arc",
			p:    [4]vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 20}, {X: 20, Y: 20}},
		},
		{
			name: "control point on end point",
			p:    [4]vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 0}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FindCubicCusp(tc.p)
			if ok != tc.hasCusp {
				t.Fatalf("got %t, want %t", ok, tc.hasCusp)
			}
			if ok && math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("cusp at %g, want %g", got, tc.want)
			}
		})
	}
}
