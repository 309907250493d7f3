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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/curvefill/geometry"
)

// FillRule specifies how the winding number of a point determines whether
// the point is inside a filled region.
type FillRule int

// These are the supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

// edge is a line segment in device coordinates, with y0 != y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	cap    bool // part of a cusp cap
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the edge's supporting line at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser computes anti-aliased pixel coverage for filled paths.  It
// can render both path data and the output of a [Decomposer], which
// allows to compare the decomposed geometry against the original.
//
// Buffers grow as needed and are reused between calls.
type Rasteriser struct {
	// CTM maps user space to device space for [Rasteriser.FillPath].
	// Decomposed geometry is already in device space.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates, with integer
	// coordinates.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	edges     []edge
	active    []int
	cover     []float32
	area      []float32
	crossings []float64

	// Cusp caps are accumulated separately, filled with the nonzero rule
	// and merged into the result by taking the maximum.
	capCover []float32
	capArea  []float32
	addCap   bool // mark new edges as cap edges
	haveCaps bool

	haveBBox bool
	bbox     rect.Rect
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// identity CTM and default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultRasterFlatness,
	}
}

// Reset restores the default parameters with a new clip rectangle, keeping
// the allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultRasterFlatness
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.crossings = r.crossings[:0]
}

// FillPath rasterises p, transformed by the CTM, using the given fill rule.
// Open subpaths are closed implicitly.
//
// Coverage values are delivered row by row through emit.  The coverage
// slice is only valid during the callback.
func (r *Rasteriser) FillPath(p *path.Data, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	r.startEdges()

	toDevice := func(v vec.Vec2) vec.Vec2 {
		return vec.Vec2{
			X: r.CTM[0]*v.X + r.CTM[2]*v.Y + r.CTM[4],
			Y: r.CTM[1]*v.X + r.CTM[3]*v.Y + r.CTM[5],
		}
	}

	var current, start vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.addEdge(current, start)
			current = toDevice(p.Coords[coordIdx])
			start = current
			coordIdx++
		case path.CmdLineTo:
			next := toDevice(p.Coords[coordIdx])
			r.addEdge(current, next)
			current = next
			coordIdx++
		case path.CmdQuadTo:
			q := [3]vec.Vec2{current, toDevice(p.Coords[coordIdx]), toDevice(p.Coords[coordIdx+1])}
			r.flattenQuad(q)
			current = q[2]
			coordIdx += 2
		case path.CmdCubeTo:
			c := [4]vec.Vec2{current, toDevice(p.Coords[coordIdx]),
				toDevice(p.Coords[coordIdx+1]), toDevice(p.Coords[coordIdx+2])}
			r.flattenCubic(c)
			current = c[3]
			coordIdx += 3
		case path.CmdClose:
			r.addEdge(current, start)
			current = start
		}
	}
	r.addEdge(current, start)

	r.fill(rule, emit)
}

// FillDecomposition rasterises the geometry collected by d, using the given
// fill rule.  Open contours are closed implicitly.  The CTM is not applied.
//
// Cusp caps are filled with the nonzero rule and combined with the rest of
// the geometry as a union, so that they never remove coverage.
func (r *Rasteriser) FillDecomposition(d *Decomposer, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	r.startEdges()

	var start vec.Vec2
	var last vec.Vec2
	for prim := range d.Primitives() {
		switch prim.Verb {
		case BeginContour:
			start = prim.Pts[0]
			last = start
			r.addCap = prim.CuspCap
		case LineTo:
			r.addEdge(prim.Pts[0], prim.Pts[1])
		case MonotonicQuadraticTo:
			r.flattenQuad([3]vec.Vec2(prim.Pts))
		case MonotonicCubicTo:
			r.flattenCubic([4]vec.Vec2(prim.Pts))
		case MonotonicConicTo:
			r.flattenConic(geometry.Conic{P: [3]vec.Vec2(prim.Pts), W: prim.Weight})
		case EndClosedContour, EndOpenContour:
			r.addEdge(last, start)
		}
		if n := len(prim.Pts); n > 0 {
			last = prim.Pts[n-1]
		}
	}

	r.fill(rule, emit)
}

// flattenQuad splits a quadratic into line segments.  The segment count
// bounds the distance between the curve and its chords by the flatness.
func (r *Rasteriser) flattenQuad(q [3]vec.Vec2) {
	dev := q[0].Sub(q[1].Mul(2)).Add(q[2]).Mul(0.25).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	r.addSamples(q[0], n, func(t float64) vec.Vec2 { return geometry.EvalQuadAt(q, t) })
}

// flattenCubic uses Wang's formula for the number of segments.
func (r *Rasteriser) flattenCubic(c [4]vec.Vec2) {
	d1 := c[0].Sub(c[1].Mul(2)).Add(c[2])
	d2 := c[1].Sub(c[2].Mul(2)).Add(c[3])
	m := max(d1.Length(), d2.Length())
	n := 1
	if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
		n = int(math.Ceil(nf))
	}
	r.addSamples(c[0], n, func(t float64) vec.Vec2 { return geometry.EvalCubicAt(c, t) })
}

// flattenConic uses the quadratic estimate, scaled up for weights above 1,
// where the curve is pulled harder towards the control point.
func (r *Rasteriser) flattenConic(c geometry.Conic) {
	dev := c.P[0].Sub(c.P[1].Mul(2)).Add(c.P[2]).Mul(0.25).Length() * max(c.W, 1)
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	r.addSamples(c.P[0], n, c.EvalAt)
}

// addSamples adds the polyline through eval(i/n), i = 1, ..., n.
func (r *Rasteriser) addSamples(p0 vec.Vec2, n int, eval func(t float64) vec.Vec2) {
	n = min(n, maxFlattenSegments)
	prev := p0
	for i := 1; i <= n; i++ {
		p := eval(float64(i) / float64(n))
		r.addEdge(prev, p)
		prev = p
	}
}

func (r *Rasteriser) startEdges() {
	r.edges = r.edges[:0]
	r.haveBBox = false
	r.addCap = false
	r.haveCaps = false
}

// addEdge adds a device space edge.  Horizontal and non-finite edges are
// skipped, since they cannot contribute coverage.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if !(math.Abs(dy) >= horizontalEdgeThreshold) || !geometry.IsFinite(p0, p1) {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
		cap:  r.addCap,
	})
	if r.addCap {
		r.haveCaps = true
	}

	lo := vec.Vec2{X: min(p0.X, p1.X), Y: min(p0.Y, p1.Y)}
	hi := vec.Vec2{X: max(p0.X, p1.X), Y: max(p0.Y, p1.Y)}
	if !r.haveBBox {
		r.bbox = rect.Rect{LLx: lo.X, LLy: lo.Y, URx: hi.X, URy: hi.Y}
		r.haveBBox = true
		return
	}
	r.bbox.LLx = min(r.bbox.LLx, lo.X)
	r.bbox.LLy = min(r.bbox.LLy, lo.Y)
	r.bbox.URx = max(r.bbox.URx, hi.X)
	r.bbox.URy = max(r.bbox.URy, hi.Y)
}

// fill scan converts the collected edges, one row at a time, keeping an
// active edge list sorted by the top of the edges.
func (r *Rasteriser) fill(rule FillRule, emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]
	if r.haveCaps {
		r.capCover = slices.Grow(r.capCover[:0], width)[:width]
		r.capArea = slices.Grow(r.capArea[:0], width)[:width]
	}

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		rowTop := float64(y)
		rowBot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].top() < rowBot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		if r.haveCaps {
			clear(r.capCover)
			clear(r.capArea)
		}
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= rowTop {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			cover, area := r.cover, r.area
			if e.cap {
				cover, area = r.capCover, r.capArea
			}
			if r.accumulate(e, cover, area, rowTop, rowBot, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if r.haveCaps {
			integrate(r.capCover, r.capArea, NonZero)
			for i, c := range r.capCover {
				r.cover[i] = max(r.cover[i], c)
			}
		}
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// Coverage model: an edge piece which crosses pixel column x between
// heights ya and yb contributes its signed height to cover[x] and the part
// of that height to the right of the edge to area[x].  Summing cover from
// the left and adding area gives the signed area inside each pixel.

// accumulate adds the part of e between rowTop and rowBot to the row
// buffers cover and area.  Pieces left of xMin are accumulated in the first pixel, pieces
// right of xMax are dropped.  The result reports whether anything was
// added.
func (r *Rasteriser) accumulate(e *edge, cover, area []float32, rowTop, rowBot float64, xMin, xMax int) bool {
	ya := max(rowTop, e.top())
	yb := min(rowBot, e.bottom())
	if yb <= ya {
		return false
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(ya), e.xAt(yb)
	colA := int(math.Floor(min(xa, xb)))
	colB := int(math.Floor(max(xa, xb)))
	if colA >= xMax {
		return false
	}

	r.crossings = append(r.crossings[:0], ya, yb)
	for col := colA + 1; col <= colB; col++ {
		yc := e.y0 + (float64(col)-e.x0)/e.dxdy
		if yc > ya && yc < yb {
			r.crossings = append(r.crossings, yc)
		}
	}
	slices.Sort(r.crossings)

	for i := 1; i < len(r.crossings); i++ {
		y0, y1 := r.crossings[i-1], r.crossings[i]
		if y1 <= y0 {
			continue
		}
		h := sign * float32(y1-y0)
		xm := e.xAt((y0 + y1) / 2)
		col := int(math.Floor(xm))
		switch {
		case col < xMin:
			cover[0] += h
			area[0] += h
		case col < xMax:
			idx := col - xMin
			cover[idx] += h
			area[idx] += h * float32(1-(xm-float64(col)))
		}
	}
	return true
}

// integrate turns the accumulated row buffers into coverage values, stored
// in cover.
func integrate(cover, area []float32, rule FillRule) {
	var acc float32
	for i := range cover {
		w := acc + area[i]
		acc += cover[i]
		if w < 0 {
			w = -w
		}
		if rule == EvenOdd {
			w -= 2 * float32(int(w/2))
			if w > 1 {
				w = 2 - w
			}
		} else if w > 1 {
			w = 1
		}
		cover[i] = w
	}
}

// trimZeros returns the part of a row between the first and last non-zero
// value, and the offset of that part.  The result is nil for all-zero rows.
func trimZeros(row []float32) ([]float32, int) {
	lo := 0
	for lo < len(row) && row[lo] == 0 {
		lo++
	}
	if lo == len(row) {
		return nil, 0
	}
	hi := len(row)
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

const (
	// defaultRasterFlatness is the default curve flattening tolerance in
	// device pixels.
	defaultRasterFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// maxFlattenSegments bounds the number of line segments per curve.
	maxFlattenSegments = 1 << 12
)
