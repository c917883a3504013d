// seehuhn.de/go/shademap - face shading maps from guide strokes
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

package shademap

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Line is a guide stroke projected into UV space.
type Line []vec.Vec2

// Shape is a closed loop in UV space. The last point equals the first.
// Shapes are created by [Close].
type Shape []vec.Vec2

// Close appends a copy of the first point to line.
// The input is not modified.
func Close(line Line) (Shape, error) {
	if len(line) < 3 {
		return nil, ErrDegenerateShape
	}
	s := make(Shape, len(line)+1)
	copy(s, line)
	s[len(line)] = line[0]
	return s, nil
}

// vertices returns the points of s without the closing duplicate.
func (s Shape) vertices() []vec.Vec2 {
	if len(s) == 0 {
		return nil
	}
	return s[:len(s)-1]
}

// Analyze returns the centroid of the shape's vertices and the squared
// distance from the centroid to the farthest vertex. The closing point is
// not counted twice.
func Analyze(s Shape) (center vec.Vec2, maxDistSq float64, err error) {
	verts := s.vertices()
	if len(verts) < 3 {
		return vec.Vec2{}, 0, ErrDegenerateShape
	}

	for _, p := range verts {
		center = center.Add(p)
	}
	center = center.Mul(1 / float64(len(verts)))

	for _, p := range verts {
		d := p.Sub(center)
		maxDistSq = max(maxDistSq, d.Dot(d))
	}
	if !(maxDistSq > 0) {
		return vec.Vec2{}, 0, ErrDegenerateShape
	}
	return center, maxDistSq, nil
}

// reach casts a ray from center in direction dir and returns the largest
// parameter t at which the ray crosses an edge of the shape, so that the
// crossing is at center + t*dir. ok is false if the ray misses the shape.
func (s Shape) reach(center, dir vec.Vec2) (t float64, ok bool) {
	for i := 1; i < len(s); i++ {
		a, b := s[i-1], s[i]
		e := b.Sub(a)
		denom := cross(dir, e)
		if math.Abs(denom) <= parallelThreshold*dir.Length()*e.Length() {
			continue
		}

		w := a.Sub(center)
		tEdge := cross(w, e) / denom
		sEdge := cross(w, dir) / denom
		if sEdge < 0 || sEdge > 1 || tEdge <= 0 {
			continue
		}
		if !ok || tEdge > t {
			t = tEdge
			ok = true
		}
	}
	return t, ok
}

// cross returns the z-component of the 3D cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Path returns the shape as a closed path.
func (s Shape) Path() *path.Data {
	p := &path.Data{}
	verts := s.vertices()
	if len(verts) == 0 {
		return p
	}
	p = p.MoveTo(verts[0])
	for _, pt := range verts[1:] {
		p = p.LineTo(pt)
	}
	return p.Close()
}

// Path returns the line as an open path.
func (l Line) Path() *path.Data {
	p := &path.Data{}
	if len(l) == 0 {
		return p
	}
	p = p.MoveTo(l[0])
	for _, pt := range l[1:] {
		p = p.LineTo(pt)
	}
	return p
}

// Bounds returns the bounding rectangle of the line.
func (l Line) Bounds() rect.Rect {
	return bounds(l)
}

// Bounds returns the bounding rectangle of the shape.
func (s Shape) Bounds() rect.Rect {
	return bounds(s)
}

func bounds(pts []vec.Vec2) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, p := range pts[1:] {
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r
}

// parallelThreshold is the smallest sine of the angle between a ray and a
// shape edge for which the two are considered to intersect.
const parallelThreshold = 1e-12
