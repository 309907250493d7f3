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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance, relative to the radius, of a cubic
// approximating a quarter circle.
const kappa = 0.5522847498307936

// curveCases each contain a single quadratic or cubic, or a simple round
// shape.
var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "quadratic_below",
		Path:   quadraticCurve(10, 20, 32, 55, 54, 20),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		// the control point lies beyond the end point, so the curve turns
		// back along its chord
		Name:   "quadratic_backtrack",
		Path:   quadraticCurve(10, 50, 60, 10, 30, 30),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "quadratic_s_shape",
		Path:   sCurveQuadratic(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_arch",
		Path:   cubicCurve(10, 50, 15, 5, 49, 5, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_scurve",
		Path:   cubicCurve(10, 50, 10, 10, 54, 54, 54, 14),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_loop",
		Path:   cubicCurve(10, 32, 60, 5, 4, 59, 54, 32),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_nearly_straight",
		Path:   cubicCurve(10, 32, 24, 31.5, 40, 31.5, 54, 32),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "circle_small",
		Path:   circle(32, 32, 1.5),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		// extends outside the canvas
		Name:   "circle_large",
		Path:   circle(64, 64, 100),
		Width:  128,
		Height: 128,
		Rule:   NonZero,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 14),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "arc",
		Path:   arc(32, 32, 25, 0, 0.75),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_degenerate",
		Path:   cubicCurve(32, 32, 32, 32, 32, 32, 32, 32),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		// control point on the start point
		Name:   "quadratic_degenerate",
		Path:   quadraticCurve(10, 32, 10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "quadratic_open",
		Path:   quadraticCurveOpen(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_loop_open",
		Path:   cubicCurveOpen(10, 32, 60, 5, 4, 59, 54, 32),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
}

func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return quadraticCurveOpen(x1, y1, cx, cy, x2, y2).Close()
}

func quadraticCurveOpen(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return cubicCurveOpen(x1, y1, c1x, c1y, c2x, c2y, x2, y2).Close()
}

func cubicCurveOpen(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// sCurveQuadratic builds a closed S-shaped path from two quadratics, the
// first bulging up and the second bulging down.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2)).
		Close()
}

func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an axis-aligned ellipse from four cubics, starting at the
// rightmost point.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(cx+rx, cy))
	for q := range 4 {
		p = quarterArc(p, cx, cy, rx, ry, q)
	}
	return p.Close()
}

// quarterArc appends the cubic for quadrant q (counted from the positive
// x-axis towards negative y) of an ellipse.
func quarterArc(p *path.Data, cx, cy, rx, ry float64, q int) *path.Data {
	a0 := -float64(q) * math.Pi / 2
	a1 := a0 - math.Pi/2
	at := func(a float64) vec.Vec2 {
		return pt(cx+rx*math.Round(math.Cos(a)), cy+ry*math.Round(math.Sin(a)))
	}
	p0, p3 := at(a0), at(a1)
	d0 := pt(-rx*math.Round(math.Sin(a0)), ry*math.Round(math.Cos(a0)))
	d1 := pt(-rx*math.Round(math.Sin(a1)), ry*math.Round(math.Cos(a1)))
	return p.CubeTo(p0.Sub(d0.Mul(kappa)), p3.Add(d1.Mul(kappa)), p3)
}

// arc builds a pie slice from the centre, covering the given fraction of
// a full circle in whole quadrants.
func arc(cx, cy, r float64, startFraction, endFraction float64) *path.Data {
	n := int((endFraction - startFraction) * 4)
	if n < 1 {
		return &path.Data{}
	}
	n = min(n, 4)

	p := (&path.Data{}).
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy))
	for q := range n {
		p = quarterArc(p, cx, cy, r, r, q)
	}
	return p.Close()
}
