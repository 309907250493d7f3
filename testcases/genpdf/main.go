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

// Command genpdf draws the decomposed geometry of all test cases as PDF
// files, and renders them to PNGs using Ghostscript.  The images show the
// coverage of the decomposed primitives, in the same coordinate system as
// the rasteriser output.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/curvefill"
	"seehuhn.de/go/curvefill/testcases"
)

var (
	outDir  = flag.String("o", "testdata/decomposed", "output directory")
	outline = flag.Bool("outline", false, "stroke the primitives instead of filling them")
	noPNG   = flag.Bool("nopng", false, "skip rendering with Ghostscript")
)

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	d := curvefill.NewDecomposer()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			pngPath := filepath.Join(*outDir, name+".png")

			d.Reset()
			if _, err := d.AddPath(tc.Path, tc.CTM); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePDF(tc, d, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if *noPNG {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, d *curvefill.Decomposer, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background: 0=no coverage, 255=full
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; the decomposed geometry is in device
	// space with the origin at the top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineWidth(0.25)

	drawPrimitives(page, d, false)
	switch {
	case *outline:
		page.Stroke()
	case tc.Rule == testcases.EvenOdd:
		page.FillEvenOdd()
	default:
		page.Fill()
	}

	// cusp caps add to the fill under either rule
	if drawPrimitives(page, d, true) {
		if *outline {
			page.Stroke()
		} else {
			page.Fill()
		}
	}

	return page.Close()
}

// pathBuilder is the part of the PDF page API used to construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPrimitives appends either the cusp caps or the remaining geometry of
// d to the current path.  The result reports whether anything was drawn.
func drawPrimitives(page pathBuilder, d *curvefill.Decomposer, caps bool) bool {
	drawn := false
	for prim := range d.Primitives() {
		if prim.CuspCap != caps {
			continue
		}
		drawn = true
		p := prim.Pts
		switch prim.Verb {
		case curvefill.BeginContour:
			page.MoveTo(p[0].X, p[0].Y)
		case curvefill.LineTo:
			page.LineTo(p[1].X, p[1].Y)
		case curvefill.MonotonicQuadraticTo:
			// degree elevation
			c1 := p[0].Add(p[1].Sub(p[0]).Mul(2.0 / 3))
			c2 := p[2].Add(p[1].Sub(p[2]).Mul(2.0 / 3))
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, p[2].X, p[2].Y)
		case curvefill.MonotonicCubicTo:
			page.CurveTo(p[1].X, p[1].Y, p[2].X, p[2].Y, p[3].X, p[3].Y)
		case curvefill.MonotonicConicTo:
			c1, c2 := conicToCubic(p[0], p[1], p[2], prim.Weight)
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, p[2].X, p[2].Y)
		case curvefill.EndClosedContour, curvefill.EndOpenContour:
			page.ClosePath()
		}
	}
	return drawn
}

// conicToCubic returns the inner control points of a cubic approximating
// the conic.  The approximation is exact for w=1 and very close for the
// circular arcs used for cusp caps.
func conicToCubic(p0, p1, p2 vec.Vec2, w float64) (vec.Vec2, vec.Vec2) {
	k := 4 * w / (3 * (1 + w))
	return p0.Add(p1.Sub(p0).Mul(k)), p2.Add(p1.Sub(p2).Mul(k))
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
