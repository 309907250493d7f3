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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/curvefill/geometry"
)

// CubicCase is a cubic Bézier curve with a known shape.
type CubicCase struct {
	Name string
	Pts  [4]vec.Vec2
	Type geometry.CubicType
}

// Cubics lists one cubic of each shape.  The coordinates are chosen so that
// the classification is exact in floating point arithmetic.
var Cubics = []CubicCase{
	{
		Name: "serpentine",
		Pts:  [4]vec.Vec2{{X: 285.625, Y: 499.687}, {X: 411.625, Y: 808.188}, {X: 1064.62, Y: 135.688}, {X: 1042.63, Y: 585.187}},
		Type: geometry.Serpentine,
	},
	{
		Name: "loop",
		Pts:  [4]vec.Vec2{{X: 635.625, Y: 614.687}, {X: 171.625, Y: 236.188}, {X: 1064.62, Y: 135.688}, {X: 516.625, Y: 570.187}},
		Type: geometry.Loop,
	},
	{
		Name: "local_cusp",
		Pts:  [4]vec.Vec2{{X: 0, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}, {X: 100, Y: 0}},
		Type: geometry.LocalCusp,
	},
	{
		Name: "cusp_at_infinity",
		Pts:  [4]vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 20, Y: 10}},
		Type: geometry.CuspAtInfinity,
	},
	{
		// degree elevation of the quadratic (0,0), (30,60), (90,0)
		Name: "quadratic",
		Pts:  [4]vec.Vec2{{X: 0, Y: 0}, {X: 20, Y: 40}, {X: 50, Y: 40}, {X: 90, Y: 0}},
		Type: geometry.Quadratic,
	},
	{
		Name: "line",
		Pts:  [4]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 20}, {X: 30, Y: 30}},
		Type: geometry.LineOrPoint,
	},
	{
		Name: "point",
		Pts:  [4]vec.Vec2{{X: 7, Y: 7}, {X: 7, Y: 7}, {X: 7, Y: 7}, {X: 7, Y: 7}},
		Type: geometry.LineOrPoint,
	},
}

var cubicCases = []TestCase{
	{
		Name:   "serpentine",
		Path:   cubicCurve(285.625, 499.687, 411.625, 808.188, 1064.62, 135.688, 1042.63, 585.187),
		Width:  144,
		Height: 112,
		Rule:   NonZero,
		CTM:    matrix.Scale(0.125, 0.125),
	},
	{
		Name:   "loop",
		Path:   cubicCurve(635.625, 614.687, 171.625, 236.188, 1064.62, 135.688, 516.625, 570.187),
		Width:  144,
		Height: 112,
		Rule:   EvenOdd,
		CTM:    matrix.Scale(0.125, 0.125),
	},
	{
		Name:   "local_cusp",
		Path:   cubicCurve(8, 8, 56, 56, 8, 56, 56, 8),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cusp_at_infinity",
		Path:   cubicCurve(4, 4, 4, 28, 28, 28, 52, 28),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "wide_loop",
		Path:   cubicCurve(4, 40, 120, 4, -56, 4, 60, 40),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}
