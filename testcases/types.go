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

// Package testcases contains example inputs for the shading map pipeline.
package testcases

import (
	"math"

	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shademap"
)

// TestCase defines a single shading map computation.
type TestCase struct {
	Name   string // lowercase a-z and _ only
	Input  *shademap.Input
	Width  int // image width in pixels
	Height int // image height in pixels
}

// pt is a helper to create a vec3.T from x, y, z coordinates.
func pt(x, y, z float64) vec3.T {
	return vec3.T{x, y, z}
}

// stroke builds a stroke with identity transform.
func stroke(pts ...vec3.T) shademap.Stroke {
	return shademap.Stroke{Points: pts}
}

// translation returns a matrix which moves points by (dx, dy, dz).
func translation(dx, dy, dz float64) mat4.T {
	m := mat4.Ident
	m[3][0] = dx
	m[3][1] = dy
	m[3][2] = dz
	return m
}

// unitSquare is a mesh covering the unit square in the plane z=0, with UV
// coordinates equal to the x and y coordinates.
func unitSquare() shademap.Mesh {
	return shademap.Mesh{
		Triangles: []shademap.Triangle{
			{
				Pos: [3]vec3.T{pt(0, 0, 0), pt(1, 0, 0), pt(1, 1, 0)},
				UV:  [3]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
			},
			{
				Pos: [3]vec3.T{pt(0, 0, 0), pt(1, 1, 0), pt(0, 1, 0)},
				UV:  [3]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
			},
		},
	}
}

// planeLoop returns n points on a circle in the plane z, without repeating
// the first point.
func planeLoop(cx, cy, z, r float64, n int) []vec3.T {
	pts := make([]vec3.T, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle), z)
	}
	return pts
}

// cylinder builds a section of the cylinder x²+z²=1 around the y-axis,
// covering the angles theta0..theta1 (measured from the z-axis towards the
// x-axis) and heights 0..height. The angle maps to u and the height to v.
func cylinder(theta0, theta1, height float64, nTheta, nY int) shademap.Mesh {
	var tris []shademap.Triangle
	vertex := func(i, j int) (vec3.T, vec.Vec2) {
		s := float64(i) / float64(nTheta)
		t := float64(j) / float64(nY)
		theta := theta0 + s*(theta1-theta0)
		return pt(math.Sin(theta), t*height, math.Cos(theta)), vec.Vec2{X: s, Y: t}
	}
	for i := range nTheta {
		for j := range nY {
			p00, uv00 := vertex(i, j)
			p10, uv10 := vertex(i+1, j)
			p11, uv11 := vertex(i+1, j+1)
			p01, uv01 := vertex(i, j+1)
			tris = append(tris,
				shademap.Triangle{Pos: [3]vec3.T{p00, p10, p11}, UV: [3]vec.Vec2{uv00, uv10, uv11}},
				shademap.Triangle{Pos: [3]vec3.T{p00, p11, p01}, UV: [3]vec.Vec2{uv00, uv11, uv01}},
			)
		}
	}
	return shademap.Mesh{Triangles: tris}
}

// onCylinder returns the point at angle theta and height y, at distance r
// from the cylinder axis.
func onCylinder(theta, y, r float64) vec3.T {
	return pt(r*math.Sin(theta), y, r*math.Cos(theta))
}

// cylinderLine returns n points at angle theta, from height y0 to y1.
func cylinderLine(theta, y0, y1, r float64, n int) []vec3.T {
	pts := make([]vec3.T, n)
	for i := range n {
		y := y0 + (y1-y0)*float64(i)/float64(n-1)
		pts[i] = onCylinder(theta+0.05*math.Sin(3*y), y, r)
	}
	return pts
}

// cylinderLoop returns n points around (theta, y) on a cylinder of radius r.
func cylinderLoop(theta, y, dTheta, dy, r float64, n int) []vec3.T {
	pts := make([]vec3.T, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = onCylinder(theta+dTheta*math.Cos(angle), y+dy*math.Sin(angle), r)
	}
	return pts
}
