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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestCubicTangents(t *testing.T) {
	tests := []struct {
		name string
		p    [4]vec.Vec2
		tan0 vec.Vec2
		tan1 vec.Vec2
	}{
		{
			name: "regular",
			p:    [4]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 30, Y: 10}, {X: 40, Y: 0}},
			tan0: vec.Vec2{X: 10, Y: 10},
			tan1: vec.Vec2{X: 10, Y: -10},
		},
		{
			// short, but well above the cut-off
			name: "short_backwards",
			p:    [4]vec.Vec2{{X: 0, Y: 0}, {X: -1, Y: 1}, {X: 40, Y: 20}, {X: 40, Y: 0}},
			tan0: vec.Vec2{X: -1, Y: 1},
			tan1: vec.Vec2{X: 0, Y: -20},
		},
		{
			name: "nearly_zero",
			p:    [4]vec.Vec2{{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 40, Y: 20}, {X: 40, Y: 20}},
			tan0: vec.Vec2{X: 40, Y: 20},
			tan1: vec.Vec2{X: 39.5, Y: 20},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tan0, tan1 := cubicTangents(test.p)
			if tan0 != test.tan0 || tan1 != test.tan1 {
				t.Errorf("tangents %v, %v, want %v, %v", tan0, tan1, test.tan0, test.tan1)
			}
		})
	}
}

// TestBackwardsStartTangent checks a cubic whose first control vector is
// short and points backwards along the chord.  The cubic must not be
// emitted as a single monotonic segment, whatever the flatness.
func TestBackwardsStartTangent(t *testing.T) {
	p := [4]vec.Vec2{{X: 0, Y: 0}, {X: -1, Y: 1}, {X: 40, Y: 20}, {X: 40, Y: 0}}

	tan0, tan1 := cubicTangents(p)
	if isConvexCurveMonotonic(p[0], tan0, p[3], tan1) {
		t.Fatal("cubic with backwards start tangent counts as monotonic")
	}

	for _, flatness := range []float64{1.0 / 64, DefaultFlatness, 0.25} {
		d := NewDecomposer()
		d.Flatness = flatness
		d.BeginContour(p[0])
		d.CubicTo(p[0], p[1], p[2], p[3], DefaultInflectPad, DefaultLoopIntersectPad)
		d.EndContour()
		checkOutput(t, d)

		if n := len(d.Verbs()); n < 4 {
			t.Errorf("flatness %g: %d verbs, want the cubic to be split", flatness, n)
		}
	}
}

func TestFarthestFromEnd(t *testing.T) {
	tests := []struct {
		name    string
		p       [4]vec.Vec2
		far     int
		farDist float64
	}{
		{
			name:    "unique",
			p:       [4]vec.Vec2{{X: 1, Y: 0}, {X: 20, Y: 5}, {X: 3, Y: 3}, {X: 0, Y: 0}},
			far:     1,
			farDist: 25,
		},
		{
			name:    "tie",
			p:       [4]vec.Vec2{{X: 10, Y: 0}, {X: 5, Y: 5}, {X: 4, Y: 3}, {X: 0, Y: 0}},
			far:     1,
			farDist: 10,
		},
		{
			name:    "all_equal",
			p:       [4]vec.Vec2{{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 2}},
			far:     2,
			farDist: 0,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			far, farDist := farthestFromEnd(test.p)
			if far != test.far || farDist != test.farDist {
				t.Errorf("got %d (%g), want %d (%g)", far, farDist, test.far, test.farDist)
			}
		})
	}
}

func TestSplitParameter(t *testing.T) {
	tests := []struct {
		in, out float64
	}{
		{0.3, 0.3},
		{0.999, 0.999},
		{0, 0.5},
		{1, 0.5},
		{-2, 0.5},
		{math.NaN(), 0.5},
		{math.Inf(1), 0.5},
	}
	for _, test := range tests {
		if got := splitParameter(test.in); got != test.out {
			t.Errorf("splitParameter(%g) = %g, want %g", test.in, got, test.out)
		}
	}
}
