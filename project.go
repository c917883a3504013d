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
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
	"seehuhn.de/go/geom/vec"
)

// Triangle is one face of a triangulated mesh.
type Triangle struct {
	Pos [3]vec3.T   // vertex positions
	UV  [3]vec.Vec2 // texture coordinates of the three corners
}

// Mesh is a triangulated mesh together with its object-to-world transform.
// Triangle positions are given in object space.
type Mesh struct {
	Triangles []Triangle
	World     mat4.T // zero value means identity
}

// Stroke is an ordered guide polyline in object space, together with the
// object-to-world transform of the guide object.
type Stroke struct {
	Points []vec3.T
	World  mat4.T // zero value means identity
}

// worldMatrix returns m, or the identity if m is the zero matrix.
func worldMatrix(m *mat4.T) *mat4.T {
	if *m == (mat4.T{}) {
		return &mat4.Ident
	}
	return m
}

// Barycentric computes the barycentric weights of q with respect to t.
// Points off the triangle's plane are projected orthogonally onto the plane
// first. The weights always sum to 1; all three lie in [0, 1] exactly when
// the projected point lies inside the triangle. ok is false if the triangle
// has zero area.
func Barycentric(t *Triangle, q vec3.T) (w [3]float64, ok bool) {
	v0 := vec3.Sub(&t.Pos[1], &t.Pos[0])
	v1 := vec3.Sub(&t.Pos[2], &t.Pos[0])
	v2 := vec3.Sub(&q, &t.Pos[0])

	d00 := vec3.Dot(&v0, &v0)
	d01 := vec3.Dot(&v0, &v1)
	d11 := vec3.Dot(&v1, &v1)
	d20 := vec3.Dot(&v2, &v0)
	d21 := vec3.Dot(&v2, &v1)

	denom := d00*d11 - d01*d01
	if math.Abs(denom) <= degenerateAreaThreshold*max(d00*d11, math.SmallestNonzeroFloat64) {
		return w, false
	}

	b := (d11*d20 - d01*d21) / denom
	c := (d00*d21 - d01*d20) / denom
	return [3]float64{1 - b - c, b, c}, true
}

// violation measures how far barycentric weights are from describing a
// point inside the triangle. It is zero for inside points.
func violation(w [3]float64) float64 {
	var sum float64
	for _, wi := range w {
		if wi < 0 {
			sum -= wi
		} else if wi > 1 {
			sum += wi - 1
		}
	}
	return sum
}

// Projector maps world-space points to UV coordinates of a mesh.
//
// The mesh is transformed into world space once, when the Projector is
// created. A Projector is read-only afterwards and can be shared.
type Projector struct {
	tris    []Triangle // world space
	normals []vec3.T   // unit normals, zero for degenerate triangles
}

// NewProjector prepares a mesh for projection.
func NewProjector(m *Mesh) (*Projector, error) {
	if len(m.Triangles) == 0 {
		return nil, ErrEmptyMesh
	}

	world := worldMatrix(&m.World)
	p := &Projector{
		tris:    make([]Triangle, len(m.Triangles)),
		normals: make([]vec3.T, len(m.Triangles)),
	}
	for i, t := range m.Triangles {
		for k := range 3 {
			t.Pos[k] = world.MulVec3(&t.Pos[k])
		}
		p.tris[i] = t

		e1 := vec3.Sub(&t.Pos[1], &t.Pos[0])
		e2 := vec3.Sub(&t.Pos[2], &t.Pos[0])
		n := vec3.Cross(&e1, &e2)
		if l := n.Length(); l > 0 {
			p.normals[i] = vec3.T{n[0] / l, n[1] / l, n[2] / l}
		}
	}
	return p, nil
}

// Triangles returns the number of triangles known to the projector.
func (p *Projector) Triangles() int {
	return len(p.tris)
}

// Project returns the UV coordinates of the world-space point q.
//
// Among the triangles which contain the orthogonal projection of q, the one
// whose plane is closest to q is used. If no triangle contains q, the
// triangle with the smallest total violation of the [0, 1] weight range is
// used instead, with plane distance and then triangle order breaking ties.
func (p *Projector) Project(q vec3.T) (vec.Vec2, error) {
	best := -1
	var bestW [3]float64
	bestViolation := math.Inf(1)
	bestDist := math.Inf(1)

	for i := range p.tris {
		t := &p.tris[i]
		w, ok := Barycentric(t, q)
		if !ok {
			continue
		}

		viol := violation(w)
		if viol <= insideTolerance {
			viol = 0
		}
		d := vec3.Sub(&q, &t.Pos[0])
		dist := math.Abs(vec3.Dot(&d, &p.normals[i]))

		if viol < bestViolation || viol == bestViolation && dist < bestDist {
			best = i
			bestW = w
			bestViolation = viol
			bestDist = dist
		}
	}
	if best < 0 {
		return vec.Vec2{}, ErrProjectionAmbiguity
	}

	uv := p.tris[best].UV
	return uv[0].Mul(bestW[0]).Add(uv[1].Mul(bestW[1])).Add(uv[2].Mul(bestW[2])), nil
}

// MapStroke transforms every point of s into world space and projects it
// into UV space. The result has one point per stroke point, in order.
func (p *Projector) MapStroke(s *Stroke) (Line, error) {
	if len(s.Points) == 0 {
		return nil, ErrEmptyStroke
	}

	world := worldMatrix(&s.World)
	line := make(Line, len(s.Points))
	for i, pt := range s.Points {
		uv, err := p.Project(world.MulVec3(&pt))
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		line[i] = uv
	}
	return line, nil
}

const (
	// degenerateAreaThreshold is the relative size below which the Gram
	// determinant of a triangle is treated as zero.
	degenerateAreaThreshold = 1e-12

	// insideTolerance absorbs rounding errors for points on triangle edges.
	insideTolerance = 1e-9
)
