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

// subpathCases contain more than one contour.
var subpathCases = []TestCase{
	{
		Name:   "two_circles",
		Path:   circles(nil, 16, 32, 12, 48, 32, 12),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "overlapping_circles_nonzero",
		Path:   circles(nil, 24, 32, 16, 40, 32, 16),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "overlapping_circles_evenodd",
		Path:   circles(nil, 24, 32, 16, 40, 32, 16),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		// both circles run in the same direction
		Name:   "ring_evenodd",
		Path:   circles(nil, 32, 32, 25, 32, 32, 12),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "multiple_rings",
		Path:   multipleRings(64, 64),
		Width:  128,
		Height: 128,
		Rule:   EvenOdd,
	},
	{
		// the second triangle has no MoveTo and starts at the closed
		// subpath's start point
		Name:   "segments_after_close",
		Path:   segmentsAfterClose(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "many_small_circles",
		Path:   manySmallCircles(8, 8),
		Width:  128,
		Height: 128,
		Rule:   NonZero,
	},
}

// circles appends one circle per (cx, cy, r) triple to p.
func circles(p *path.Data, params ...float64) *path.Data {
	if p == nil {
		p = &path.Data{}
	}
	for i := 0; i+2 < len(params); i += 3 {
		c := circle(params[i], params[i+1], params[i+2])
		p.Cmds = append(p.Cmds, c.Cmds...)
		p.Coords = append(p.Coords, c.Coords...)
	}
	return p
}

// multipleRings builds three rings, each made of two concentric circles.
func multipleRings(cx, cy float64) *path.Data {
	return circles(nil,
		cx-30, cy-30, 20, cx-30, cy-30, 10,
		cx+30, cy-30, 20, cx+30, cy-30, 10,
		cx, cy+30, 20, cx, cy+30, 10,
	)
}

func segmentsAfterClose() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(8, 8)).
		QuadTo(pt(32, 0), pt(56, 8)).
		LineTo(pt(32, 30)).
		Close().
		LineTo(pt(56, 56)).
		QuadTo(pt(32, 64), pt(8, 56)).
		Close()
}

// manySmallCircles builds a grid of small circles.  Most of their segments
// are shorter than the inflection padding.
func manySmallCircles(rows, cols int) *path.Data {
	const spacing = 14.0
	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			p = circles(p, 10+float64(col)*spacing, 10+float64(row)*spacing, 5)
		}
	}
	return p
}
