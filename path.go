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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrMalformedPath is returned by [Decomposer.AddPath] if the path data is
// inconsistent.
var ErrMalformedPath = errors.New("malformed path data")

// AddPath decomposes all subpaths of p, transformed by ctm into device
// space.  The zero matrix is treated as the identity.  Each subpath becomes
// one contour.  Cubics use the decomposer's InflectPad and
// LoopIntersectPad.
//
// A segment which follows a ClosePath without an intervening MoveTo starts
// a new contour at the start point of the closed subpath.
//
// The returned tallies are the sum over all contours added by this call.
// On error, the contours added so far remain in the output, and an open
// contour is ended.
func (d *Decomposer) AddPath(p *path.Data, ctm matrix.Matrix) (PrimitiveTallies, error) {
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	apply := func(v vec.Vec2) vec.Vec2 {
		return vec.Vec2{
			X: ctm[0]*v.X + ctm[2]*v.Y + ctm[4],
			Y: ctm[1]*v.X + ctm[3]*v.Y + ctm[5],
		}
	}

	var total PrimitiveTallies
	if d.building {
		return total, fmt.Errorf("curvefill: AddPath called inside a contour: %w", ErrMalformedPath)
	}

	fail := func(err error) (PrimitiveTallies, error) {
		if d.building {
			total = total.Add(d.EndContour())
		}
		return total, err
	}

	var current, start vec.Vec2
	haveStart := false
	coordIdx := 0
	for i, cmd := range p.Cmds {
		var n int
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			n = 1
		case path.CmdQuadTo:
			n = 2
		case path.CmdCubeTo:
			n = 3
		case path.CmdClose:
			n = 0
		default:
			return fail(fmt.Errorf("curvefill: command %d: unknown command %d: %w",
				i, cmd, ErrMalformedPath))
		}
		if coordIdx+n > len(p.Coords) {
			return fail(fmt.Errorf("curvefill: command %d: missing coordinates: %w",
				i, ErrMalformedPath))
		}
		pts := p.Coords[coordIdx : coordIdx+n]
		coordIdx += n

		if cmd == path.CmdMoveTo {
			if d.building {
				total = total.Add(d.EndContour())
			}
			current = apply(pts[0])
			start = current
			haveStart = true
			d.BeginContour(current)
			continue
		}
		if cmd == path.CmdClose {
			if d.building {
				d.LineTo(current, start)
				current = start
				total = total.Add(d.EndContour())
			}
			continue
		}

		if !d.building {
			if !haveStart {
				return total, fmt.Errorf("curvefill: command %d: segment without current point: %w",
					i, ErrMalformedPath)
			}
			current = start
			d.BeginContour(current)
		}

		switch cmd {
		case path.CmdLineTo:
			next := apply(pts[0])
			d.LineTo(current, next)
			current = next
		case path.CmdQuadTo:
			next := apply(pts[1])
			d.QuadraticTo(current, apply(pts[0]), next)
			current = next
		case path.CmdCubeTo:
			next := apply(pts[2])
			d.CubicTo(current, apply(pts[0]), apply(pts[1]), next,
				d.InflectPad, d.LoopIntersectPad)
			current = next
		}
	}
	if coordIdx != len(p.Coords) {
		return fail(fmt.Errorf("curvefill: %d unused coordinates: %w",
			len(p.Coords)-coordIdx, ErrMalformedPath))
	}
	if d.building {
		total = total.Add(d.EndContour())
	}
	return total, nil
}
