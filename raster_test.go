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
	"image"
	"image/color"
	"maps"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/curvefill/testcases"
)

// coverageImage collects rasteriser output into a row-major buffer.
type coverageImage struct {
	w, h int
	pix  []float32
}

func newCoverageImage(w, h int) *coverageImage {
	return &coverageImage{w: w, h: h, pix: make([]float32, w*h)}
}

func (img *coverageImage) emit(y, xMin int, coverage []float32) {
	copy(img.pix[y*img.w+xMin:], coverage)
}

func (img *coverageImage) total() float64 {
	var sum float64
	for _, c := range img.pix {
		sum += float64(c)
	}
	return sum
}

// absDiff returns the sum of the absolute per-pixel differences.
func absDiff(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(float64(a[i] - b[i]))
	}
	return sum
}

// decompose runs the test case through a Decomposer without cusp caps, so
// that the result covers the same area as the original path.
func decompose(t *testing.T, tc testcases.TestCase) *Decomposer {
	t.Helper()
	d := NewDecomposer()
	d.CuspCapRadius = 0
	if _, err := d.AddPath(tc.Path, tc.CTM); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestTriangleCoverage(t *testing.T) {
	// The edge from (10,1) back to (0,0) is y = x/10, so pixel x has
	// coverage (2x+1)/20.
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()
	clip := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1}

	direct := newCoverageImage(10, 1)
	r := NewRasteriser(clip)
	r.FillPath(triangle, NonZero, direct.emit)

	d := NewDecomposer()
	if _, err := d.AddPath(triangle, matrix.Identity); err != nil {
		t.Fatal(err)
	}
	decomposed := newCoverageImage(10, 1)
	r.Reset(clip)
	r.FillDecomposition(d, NonZero, decomposed.emit)

	const epsilon = 1e-5
	for x := range 10 {
		want := float32(2*x+1) / 20
		if got := direct.pix[x]; math.Abs(float64(got-want)) > epsilon {
			t.Errorf("pixel %d: coverage %.4f, want %.4f", x, got, want)
		}
		if got := decomposed.pix[x]; math.Abs(float64(got-want)) > epsilon {
			t.Errorf("pixel %d: decomposed coverage %.4f, want %.4f", x, got, want)
		}
	}
}

func TestFillRules(t *testing.T) {
	// two copies of the same square give winding number 2
	square := func(p *path.Data) *path.Data {
		return p.MoveTo(vec.Vec2{X: 2, Y: 2}).
			LineTo(vec.Vec2{X: 6, Y: 2}).
			LineTo(vec.Vec2{X: 6, Y: 6}).
			LineTo(vec.Vec2{X: 2, Y: 6}).
			Close()
	}
	p := square(square(&path.Data{}))
	clip := rect.Rect{URx: 8, URy: 8}

	nonZero := newCoverageImage(8, 8)
	r := NewRasteriser(clip)
	r.FillPath(p, NonZero, nonZero.emit)
	if got := nonZero.total(); math.Abs(got-16) > 1e-4 {
		t.Errorf("non-zero coverage %g, want 16", got)
	}

	evenOdd := newCoverageImage(8, 8)
	r.FillPath(p, EvenOdd, evenOdd.emit)
	if got := evenOdd.total(); got > 1e-4 {
		t.Errorf("even-odd coverage %g, want 0", got)
	}
}

func TestTransformedFill(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 0, Y: 1}).
		Close()
	ctm := matrix.Matrix{4, 0, 0, 3, 2, 1}

	img := newCoverageImage(8, 8)
	r := NewRasteriser(rect.Rect{URx: 8, URy: 8})
	r.CTM = ctm
	r.FillPath(square, NonZero, img.emit)
	for y := range 8 {
		for x := range 8 {
			want := float32(0)
			if x >= 2 && x < 6 && y >= 1 && y < 4 {
				want = 1
			}
			if got := img.pix[y*8+x]; math.Abs(float64(got-want)) > 1e-5 {
				t.Errorf("pixel (%d,%d): coverage %g, want %g", x, y, got, want)
			}
		}
	}
}

// TestCuspCapCoverage checks that cusp caps only ever add coverage, for
// both directions of the contour and both fill rules.
func TestCuspCapCoverage(t *testing.T) {
	a := vec.Vec2{X: 8, Y: 8}
	b := vec.Vec2{X: 56, Y: 56}
	c := vec.Vec2{X: 8, Y: 56}
	e := vec.Vec2{X: 56, Y: 8}
	paths := []struct {
		name string
		p    *path.Data
	}{
		{"forward", (&path.Data{}).MoveTo(a).CubeTo(b, c, e).Close()},
		{"backward", (&path.Data{}).MoveTo(e).CubeTo(c, b, a).Close()},
	}
	rules := []struct {
		name string
		rule FillRule
	}{
		{"nonzero", NonZero},
		{"evenodd", EvenOdd},
	}
	clip := rect.Rect{URx: 64, URy: 64}

	for _, tp := range paths {
		for _, tr := range rules {
			t.Run(tp.name+"_"+tr.name, func(t *testing.T) {
				fill := func(radius float64) *coverageImage {
					d := NewDecomposer()
					d.CuspCapRadius = radius
					if _, err := d.AddPath(tp.p, matrix.Identity); err != nil {
						t.Fatal(err)
					}
					img := newCoverageImage(64, 64)
					NewRasteriser(clip).FillDecomposition(d, tr.rule, img.emit)
					return img
				}
				without := fill(0)
				with := fill(DefaultCuspCapRadius)

				for i := range with.pix {
					if with.pix[i] < without.pix[i]-1e-5 {
						t.Errorf("pixel (%d,%d): coverage %g with cap, %g without",
							i%64, i/64, with.pix[i], without.pix[i])
					}
				}
				// at least the half of the disc beyond the cusp is new
				if gain := with.total() - without.total(); gain < 0.1 {
					t.Errorf("cusp cap adds coverage %g, want at least 0.1", gain)
				}
			})
		}
	}
}

// TestDecompositionCoverage checks that filling the decomposed geometry
// covers the same pixels as filling the original path.  Differences come
// only from the line and quadratic approximations near inflections and
// double points, which are bounded by the padding radii.
func TestDecompositionCoverage(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				d := decompose(t, tc)
				clip := rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
				rule := FillRule(tc.Rule)

				r := NewRasteriser(clip)
				r.Flatness = 0.02
				if tc.CTM != (matrix.Matrix{}) {
					r.CTM = tc.CTM
				}
				want := newCoverageImage(tc.Width, tc.Height)
				r.FillPath(tc.Path, rule, want.emit)

				got := newCoverageImage(tc.Width, tc.Height)
				r.FillDecomposition(d, rule, got.emit)

				area := want.total()
				diff := absDiff(want.pix, got.pix)
				if diff > 0.03*area+4 {
					t.Errorf("coverage differs by %.2f pixels (total %.2f)", diff, area)
				}
			})
		}
	}
}

// drawVector renders decomposed geometry with x/image/vector.  Conics are
// replaced by cubics.
func drawVector(d *Decomposer, w, h int) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	for prim := range d.Primitives() {
		pts := prim.Pts
		switch prim.Verb {
		case BeginContour:
			z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case LineTo:
			z.LineTo(float32(pts[1].X), float32(pts[1].Y))
		case MonotonicQuadraticTo:
			z.QuadTo(float32(pts[1].X), float32(pts[1].Y), float32(pts[2].X), float32(pts[2].Y))
		case MonotonicCubicTo:
			z.CubeTo(float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y),
				float32(pts[3].X), float32(pts[3].Y))
		case MonotonicConicTo:
			k := 4 * prim.Weight / (3 * (1 + prim.Weight))
			c1 := pts[0].Add(pts[1].Sub(pts[0]).Mul(k))
			c2 := pts[2].Add(pts[1].Sub(pts[2]).Mul(k))
			z.CubeTo(float32(c1.X), float32(c1.Y),
				float32(c2.X), float32(c2.Y),
				float32(pts[2].X), float32(pts[2].Y))
		case EndClosedContour, EndOpenContour:
			z.ClosePath()
		}
	}
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	return dst
}

// TestAgainstVector compares the rasteriser with golang.org/x/image/vector
// on decomposed geometry.  The vector package only implements the non-zero
// winding rule, and only shapes inside the canvas are compared.
func TestAgainstVector(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Rule != testcases.NonZero {
				continue
			}
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				d := decompose(t, tc)
				bbox := d.Bounds()
				if bbox.LLx < 0 || bbox.LLy < 0 || bbox.URx > float64(tc.Width) || bbox.URy > float64(tc.Height) {
					t.Skip("shape extends beyond the canvas")
				}

				got := newCoverageImage(tc.Width, tc.Height)
				r := NewRasteriser(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
				r.FillDecomposition(d, NonZero, got.emit)

				ref := drawVector(d, tc.Width, tc.Height)
				want := make([]float32, len(ref.Pix))
				for i, a := range ref.Pix {
					want[i] = float32(a) / 255
				}

				var area float64
				for _, c := range want {
					area += float64(c)
				}
				diff := absDiff(want, got.pix)
				if diff > 0.02*area+4 {
					t.Errorf("coverage differs by %.2f pixels (total %.2f)", diff, area)
				}
			})
		}
	}
}
