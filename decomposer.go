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
	"iter"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/curvefill/geometry"
)

// Default values for the tunable parameters of a Decomposer.
const (
	// DefaultInflectPad is the padding radius, in device units, around the
	// inflection tangents of a cubic in which the curve is drawn as a line.
	DefaultInflectPad = 0.55

	// DefaultLoopIntersectPad is the padding radius, in device units,
	// around a cubic's double point in which the loop is drawn with
	// quadratic approximations.
	DefaultLoopIntersectPad = 2

	// DefaultFlatness is the collinearity tolerance, relative to the
	// Manhattan length of a curve's chord.
	DefaultFlatness = 1.0 / 16

	// DefaultMaxSubdivisions is the number of times a non-monotonic
	// segment may be chopped at its midtangent.
	DefaultMaxSubdivisions = 2

	// DefaultCuspCapRadius is the radius, in device units, of the disc
	// added at a cusp.
	DefaultCuspCapRadius = 0.5
)

// A Decomposer breaks filled paths into convex, monotonic curve segments
// and the vertices of a triangle fan.
//
// The input is given one contour at a time, using [Decomposer.BeginContour],
// followed by segment calls and [Decomposer.EndContour].  The output is a
// verb stream together with a point buffer and a conic weight buffer, which
// accumulate until [Decomposer.Reset] is called.  Every segment verb starts
// at the last point of the previous verb, so that all points of a contour
// form the fan polygon.
//
// A Decomposer is not safe for concurrent use.
type Decomposer struct {
	// InflectPad is the padding radius used by [Decomposer.AddPath].
	InflectPad float64

	// LoopIntersectPad is the padding radius used by [Decomposer.AddPath].
	LoopIntersectPad float64

	// Flatness is the collinearity tolerance.  Segments whose control
	// points lie within this tolerance of the chord are emitted as lines.
	Flatness float64

	// MaxSubdivisions bounds the midtangent subdivisions of a single
	// segment.
	MaxSubdivisions int

	// CuspCapRadius is the radius of the disc added at each cusp of a
	// cubic.  Zero disables cusp caps.
	CuspCapRadius float64

	verbs        []Verb
	points       []vec.Vec2
	conicWeights []float64

	building          bool
	anchor            vec.Vec2
	contourStart      int // index of the BeginContour verb
	contourPointStart int // index of the anchor in points
	tallies        PrimitiveTallies
	contourTallies []PrimitiveTallies

	// state of the cubic currently being decomposed
	cubicType geometry.CubicType
	chops     []float64

	cusps     []vec.Vec2 // cusp cap centres for the current contour
	capStarts []int      // verb indices of the cusp caps' BeginContour
}

// NewDecomposer returns a Decomposer with the default parameters.
func NewDecomposer() *Decomposer {
	return &Decomposer{
		InflectPad:       DefaultInflectPad,
		LoopIntersectPad: DefaultLoopIntersectPad,
		Flatness:         DefaultFlatness,
		MaxSubdivisions:  DefaultMaxSubdivisions,
		CuspCapRadius:    DefaultCuspCapRadius,
	}
}

// Reset clears all output, keeping the allocated buffers and the
// parameters.  Reset may be called at any time, including in the middle of
// a contour.
func (d *Decomposer) Reset() {
	d.verbs = d.verbs[:0]
	d.points = d.points[:0]
	d.conicWeights = d.conicWeights[:0]
	d.contourTallies = d.contourTallies[:0]
	d.cusps = d.cusps[:0]
	d.capStarts = d.capStarts[:0]
	d.building = false
	d.tallies = PrimitiveTallies{}
}

// Verbs returns the verb stream.  The slice aliases internal storage and is
// only valid until the next call of a mutating method.
func (d *Decomposer) Verbs() []Verb {
	return d.verbs
}

// Points returns the point buffer.  The slice aliases internal storage.
func (d *Decomposer) Points() []vec.Vec2 {
	return d.points
}

// ConicWeights returns one weight per MonotonicConicTo verb, in order.
func (d *Decomposer) ConicWeights() []float64 {
	return d.conicWeights
}

// ContourTallies returns the tallies of all completed contours, in order.
//
// There is one entry per call to [Decomposer.EndContour].  Cusp caps are
// counted with the contour they belong to and have no entry of their own,
// even though each cap forms a separate BeginContour ... EndClosedContour
// group in the verb stream.  Such groups are marked by
// [Primitive.CuspCap].
func (d *Decomposer) ContourTallies() []PrimitiveTallies {
	return d.contourTallies
}

// Primitives iterates over the verb stream, together with the points of
// each verb.
func (d *Decomposer) Primitives() iter.Seq[Primitive] {
	return func(yield func(Primitive) bool) {
		pos := 0
		weight := 0
		nextCap := 0
		inCap := false
		for i, v := range d.verbs {
			if v == BeginContour {
				inCap = nextCap < len(d.capStarts) && d.capStarts[nextCap] == i
				if inCap {
					nextCap++
				}
			}
			n := v.NumPoints()
			prim := Primitive{Verb: v, CuspCap: inCap}
			switch v {
			case BeginContour:
				prim.Pts = d.points[pos : pos+1]
			case EndClosedContour, EndOpenContour:
				// no points
			default:
				prim.Pts = d.points[pos-1 : pos+n]
			}
			if v == MonotonicConicTo {
				prim.Weight = d.conicWeights[weight]
				weight++
			}
			pos += n
			if !yield(prim) {
				return
			}
		}
	}
}

// Bounds returns the bounding box of all points in the point buffer.  The
// result is the zero rectangle if the buffer is empty.
func (d *Decomposer) Bounds() rect.Rect {
	if len(d.points) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, p := range d.points {
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r
}

// BeginContour starts a new contour at p.
//
// BeginContour panics if a contour is already open.
func (d *Decomposer) BeginContour(p vec.Vec2) {
	if d.building {
		panic("curvefill: BeginContour called inside a contour")
	}
	d.building = true
	d.anchor = p
	d.contourStart = len(d.verbs)
	d.contourPointStart = len(d.points)
	d.tallies = PrimitiveTallies{}
	d.cusps = d.cusps[:0]

	d.points = append(d.points, p)
	d.verbs = append(d.verbs, BeginContour)
}

// EndContour finishes the current contour and returns its tallies.
//
// The contour is closed if at least one segment verb was emitted and the
// last point coincides with the start point.  For closed contours the
// repeated start point does not count as a fan vertex.
//
// EndContour panics if no contour is open.
func (d *Decomposer) EndContour() PrimitiveTallies {
	if !d.building {
		panic("curvefill: EndContour called outside a contour")
	}

	fanSize := len(d.verbs) - d.contourStart
	closed := fanSize > 1 && d.points[len(d.points)-1] == d.anchor
	if closed {
		fanSize--
		d.verbs = append(d.verbs, EndClosedContour)
	} else {
		d.verbs = append(d.verbs, EndOpenContour)
	}
	d.tallies.Triangles = max(fanSize-2, 0)
	d.building = false

	if len(d.cusps) > 0 {
		clockwise := d.contourArea() < 0
		for _, c := range d.cusps {
			d.appendCuspCap(c, clockwise)
		}
	}
	d.cusps = d.cusps[:0]

	t := d.tallies
	d.contourTallies = append(d.contourTallies, t)
	return t
}

// contourArea returns twice the signed area of the fan polygon of the
// current contour.  The polygon is closed implicitly.
func (d *Decomposer) contourArea() float64 {
	pts := d.points[d.contourPointStart:]
	var a float64
	prev := pts[len(pts)-1]
	for _, p := range pts {
		a += prev.X*p.Y - prev.Y*p.X
		prev = p
	}
	return a
}

// appendCuspCap adds a disc of radius CuspCapRadius around c, as a separate
// closed contour made of four quarter circle conics.  The disc runs in the
// same direction as the contour it belongs to: clockwise means negative
// signed area.  The fan of the cap is counted as weighted triangles.
func (d *Decomposer) appendCuspCap(c vec.Vec2, clockwise bool) {
	r := d.CuspCapRadius
	Logger().Debug("cusp cap", "x", c.X, "y", c.Y, "radius", r)

	s := r
	if clockwise {
		s = -r
	}
	w := math.Sqrt2 / 2
	corners := [4]vec.Vec2{{X: r, Y: s}, {X: -r, Y: s}, {X: -r, Y: -s}, {X: r, Y: -s}}
	ends := [4]vec.Vec2{{X: 0, Y: s}, {X: -r, Y: 0}, {X: 0, Y: -s}, {X: r, Y: 0}}

	start := c.Add(vec.Vec2{X: r})
	d.capStarts = append(d.capStarts, len(d.verbs))
	d.points = append(d.points, start)
	d.verbs = append(d.verbs, BeginContour)
	for i := range 4 {
		end := c.Add(ends[i])
		if i == 3 {
			end = start
		}
		d.points = append(d.points, c.Add(corners[i]), end)
		d.conicWeights = append(d.conicWeights, w)
		d.verbs = append(d.verbs, MonotonicConicTo)
	}
	d.verbs = append(d.verbs, EndClosedContour)
	d.tallies.Conics += 4
	d.tallies.WeightedTriangles += 2
}

// checkSegment panics unless a contour is open and p0 is its current point.
func (d *Decomposer) checkSegment(op string, p0 vec.Vec2) {
	if !d.building {
		panic("curvefill: " + op + " called outside a contour")
	}
	if !samePoint(p0, d.points[len(d.points)-1]) {
		panic("curvefill: " + op + " does not start at the current point")
	}
}

// samePoint compares points coordinate by coordinate, treating NaN values
// as equal to each other.
func samePoint(a, b vec.Vec2) bool {
	same := func(x, y float64) bool {
		return x == y || (math.IsNaN(x) && math.IsNaN(y))
	}
	return same(a.X, b.X) && same(a.Y, b.Y)
}

// LineTo appends a line from p0 to p1.  Zero-length lines are dropped.
func (d *Decomposer) LineTo(p0, p1 vec.Vec2) {
	d.checkSegment("LineTo", p0)
	d.appendLine(p0, p1)
}

func (d *Decomposer) appendLine(p0, p1 vec.Vec2) {
	if p0 == p1 {
		return
	}
	d.points = append(d.points, p1)
	d.verbs = append(d.verbs, LineTo)
}

// appendPolyline replaces a curve which could not be split into monotonic
// pieces by a short polyline through points on the curve.
func (d *Decomposer) appendPolyline(p0 vec.Vec2, eval func(t float64) vec.Vec2, end vec.Vec2) {
	Logger().Debug("subdivision budget exhausted",
		"x0", p0.X, "y0", p0.Y, "x1", end.X, "y1", end.Y)
	prev := p0
	for _, t := range [...]float64{0.25, 0.5, 0.75} {
		p := eval(t)
		if !geometry.IsFinite(p) {
			continue
		}
		d.appendLine(prev, p)
		prev = p
	}
	d.appendLine(prev, end)
}
