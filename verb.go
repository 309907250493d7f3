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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Verb identifies an element of the decomposed geometry.
type Verb uint8

// These are the verbs emitted by a Decomposer.
const (
	BeginContour Verb = iota
	LineTo
	MonotonicQuadraticTo
	MonotonicCubicTo
	MonotonicConicTo
	EndClosedContour
	EndOpenContour
)

func (v Verb) String() string {
	switch v {
	case BeginContour:
		return "BeginContour"
	case LineTo:
		return "LineTo"
	case MonotonicQuadraticTo:
		return "MonotonicQuadraticTo"
	case MonotonicCubicTo:
		return "MonotonicCubicTo"
	case MonotonicConicTo:
		return "MonotonicConicTo"
	case EndClosedContour:
		return "EndClosedContour"
	case EndOpenContour:
		return "EndOpenContour"
	default:
		return fmt.Sprintf("Verb(%d)", int(v))
	}
}

// NumPoints returns the number of points the verb adds to the point buffer.
// Segment verbs start at the last point of the previous verb, which is not
// stored again.
func (v Verb) NumPoints() int {
	switch v {
	case BeginContour, LineTo:
		return 1
	case MonotonicQuadraticTo, MonotonicConicTo:
		return 2
	case MonotonicCubicTo:
		return 3
	default:
		return 0
	}
}

// PrimitiveTallies counts the primitives of a contour.  Renderers use
// these counts to size their buffers before walking the verb stream.
type PrimitiveTallies struct {
	// Triangles is the number of triangles in the fan which fills the
	// polygon formed by the contour's vertices.
	Triangles int

	// WeightedTriangles is the number of triangles in the fans of cusp
	// caps.
	WeightedTriangles int

	Quadratics int
	Cubics     int
	Conics     int
}

// Add returns the element-wise sum of t and o.
func (t PrimitiveTallies) Add(o PrimitiveTallies) PrimitiveTallies {
	return PrimitiveTallies{
		Triangles:         t.Triangles + o.Triangles,
		WeightedTriangles: t.WeightedTriangles + o.WeightedTriangles,
		Quadratics:        t.Quadratics + o.Quadratics,
		Cubics:            t.Cubics + o.Cubics,
		Conics:            t.Conics + o.Conics,
	}
}

// Primitive is one element of the decomposed geometry, as returned by
// [Decomposer.Primitives].
type Primitive struct {
	Verb Verb

	// Pts holds all points of the primitive, including the start point
	// shared with the previous primitive: one point for BeginContour, two
	// for LineTo, three for quadratics and conics, four for cubics, and
	// none for the end verbs.  The slice aliases the decomposer's buffer.
	Pts []vec.Vec2

	// Weight is the conic weight for MonotonicConicTo, and 0 otherwise.
	Weight float64

	// CuspCap is set for all primitives of a cusp cap.  Caps add to the
	// coverage of their contour and should be filled with the nonzero
	// rule, independently of the path's fill rule.
	CuspCap bool
}
