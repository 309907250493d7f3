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
)

// complexCases combine several segment types and curve shapes in one path.
var complexCases = []TestCase{
	{
		Name:   "mixed_lines_curves",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "glyph_o",
		Path:   glyphO(32, 32),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_spiral_open",
		Path:   cubicSpiral(32, 32, 4, 26, 3),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "figure_eight",
		Path:   figureEight(32, 32, 28),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "tight_curve_open",
		Path:   tightCurve(32, 32, 15),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "serpentine_wave",
		Path:   serpentineWave(8, 32, 56, 3),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// mixedLinesCurves builds a closed path from lines, a quadratic and a cubic.
func mixedLinesCurves() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(10, 50)).
		LineTo(pt(20, 30)).
		QuadTo(pt(32, 10), pt(44, 30)).
		LineTo(pt(54, 50)).
		CubeTo(pt(48, 60), pt(16, 60), pt(10, 50)).
		Close()
}

// quadEllipse adds an ellipse made of eight quadratic segments, in the way
// TrueType glyph outlines describe round shapes.
func quadEllipse(p *path.Data, cx, cy, rx, ry float64, reverse bool) *path.Data {
	const n = 8
	step := 2 * math.Pi / n
	if reverse {
		step = -step
	}
	scale := 1 / math.Cos(math.Pi/n)

	p = p.MoveTo(pt(cx+rx, cy))
	for i := 1; i <= n; i++ {
		a := (float64(i) - 0.5) * step
		ctrl := pt(cx+rx*scale*math.Cos(a), cy+ry*scale*math.Sin(a))
		end := pt(cx+rx, cy)
		if i < n {
			a = float64(i) * step
			end = pt(cx+rx*math.Cos(a), cy+ry*math.Sin(a))
		}
		p = p.QuadTo(ctrl, end)
	}
	return p.Close()
}

// glyphO builds a letter "o" with the counter drawn in the opposite
// direction.
func glyphO(cx, cy float64) *path.Data {
	p := quadEllipse(&path.Data{}, cx, cy, 20, 24, false)
	return quadEllipse(p, cx, cy, 11, 15, true)
}

// cubicSpiral builds an open spiral from quarter turn cubic segments.  The
// implicit closing line crosses the inner turns.
func cubicSpiral(cx, cy, rMin, rMax, turns float64) *path.Data {
	n := int(turns * 4)
	dr := (rMax - rMin) / float64(n)

	p := (&path.Data{}).MoveTo(pt(cx+rMin, cy))
	for i := range n {
		a0 := float64(i) * math.Pi / 2
		a1 := a0 + math.Pi/2
		r0 := rMin + float64(i)*dr
		r1 := r0 + dr
		p0 := pt(cx+r0*math.Cos(a0), cy+r0*math.Sin(a0))
		p3 := pt(cx+r1*math.Cos(a1), cy+r1*math.Sin(a1))
		c1 := p0.Add(pt(-math.Sin(a0), math.Cos(a0)).Mul(kappa * r0))
		c2 := p3.Sub(pt(-math.Sin(a1), math.Cos(a1)).Mul(kappa * r1))
		p = p.CubeTo(c1, c2, p3)
	}
	return p
}

// figureEight builds a closed path from two looping cubics, one above and
// one below the centre line.
func figureEight(cx, cy, size float64) *path.Data {
	const gap = 4
	return (&path.Data{}).
		MoveTo(pt(cx-gap, cy)).
		CubeTo(pt(cx+size, cy-size), pt(cx-size, cy-size), pt(cx+gap, cy)).
		CubeTo(pt(cx-size, cy+size), pt(cx+size, cy+size), pt(cx-gap, cy)).
		Close()
}

// tightCurve builds an open U-shaped path with a tight turn at the bottom.
func tightCurve(cx, cy, r float64) *path.Data {
	k := r * kappa
	return (&path.Data{}).
		MoveTo(pt(cx-r, cy-r)).
		LineTo(pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		LineTo(pt(cx+r, cy-r))
}

// serpentineWave builds a band whose upper edge is a chain of serpentine
// cubics.
func serpentineWave(x1, y, x2 float64, n int) *path.Data {
	w := (x2 - x1) / float64(n)
	p := (&path.Data{}).MoveTo(pt(x1, y))
	for i := range n {
		x := x1 + float64(i)*w
		p = p.CubeTo(pt(x+w/3, y-24), pt(x+2*w/3, y+24), pt(x+w, y))
	}
	return p.LineTo(pt(x2, y+20)).LineTo(pt(x1, y+20)).Close()
}
