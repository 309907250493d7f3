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

import "seehuhn.de/go/geom/matrix"

// ctmCases draw curves through a transformation matrix.  Decomposition
// happens in device space, so the padding around inflections and double
// points depends on the CTM.
var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   circle(0, 0, 12),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Scale(2, 2).Translate(32, 32),
	},
	{
		Name:   "scale_half",
		Path:   cubicCurve(0, 0, 40, 120, 80, -40, 120, 80),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Scale(0.5, 0.5).Translate(2, 12),
	},
	{
		// same device geometry as the wide_loop cubic
		Name:   "scale_10x_loop",
		Path:   cubicCurve(0, 0, 11.6, -3.6, -6, -3.6, 5.6, 0),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Scale(10, 10).Translate(4, 40),
	},
	{
		Name:   "rotate_45deg",
		Path:   ellipse(0, 0, 20, 10),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "rotate_90deg_cusp",
		Path:   cubicCurve(-20, -20, 20, 20, -20, 20, 20, -20),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.RotateDeg(90).Translate(32, 32),
	},
	{
		Name:   "circle_to_ellipse",
		Path:   circle(0, 0, 15),
		Width:  128,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:   "shear_circle",
		Path:   circle(0, 0, 15),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:   "shear_and_rotate",
		Path:   sCurveQuadratic(-20, 0, 20, 0),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
		CTM:    matrix.Matrix{1, 0, 0.3, 1, 0, 0}.RotateDeg(30).Translate(32, 32),
	},
	{
		// reverses the orientation of the path
		Name:   "flip_y",
		Path:   arc(0, 0, 20, 0, 0.75),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Matrix{1, 0, 0, -1, 32, 32},
	},
}
