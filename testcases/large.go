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

import "seehuhn.de/go/geom/path"

// largeCases use a large canvas, where the padding around inflections and
// double points is small compared to the curves.
var largeCases = []TestCase{
	{
		Name:   "large_circle",
		Path:   circle(256, 256, 200),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_concentric_nonzero",
		Path:   circles(nil, 256, 256, 200, 256, 256, 100),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_concentric_evenodd",
		Path:   circles(nil, 256, 256, 200, 256, 256, 100),
		Width:  512,
		Height: 512,
		Rule:   EvenOdd,
	},
	{
		Name:   "large_loop",
		Path:   cubicCurve(100, 400, 560, 40, -40, 40, 412, 400),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_serpentine",
		Path:   cubicCurve(40, 256, 200, -100, 312, 612, 472, 256),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_grid",
		Path:   circleGrid(8, 8, 512, 512, 4),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		// extends outside the canvas
		Name:   "large_clipped",
		Path:   ellipse(256, 256, 356, 150),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
}

// circleGrid builds a grid of circles, one per cell.
func circleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)
	r := min(cellW, cellH)/2 - gap

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			cx := (float64(col) + 0.5) * cellW
			cy := (float64(row) + 0.5) * cellH
			p = circles(p, cx, cy, r)
		}
	}
	return p
}
