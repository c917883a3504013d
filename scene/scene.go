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

// Package scene provides the host side of the shading map pipeline: a store
// of named meshes, guide objects and images, and a YAML file format for it.
package scene

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shademap"
)

// ErrInvalidScene is returned for scene files which are syntactically
// valid YAML, but do not describe a usable scene.
var ErrInvalidScene = errors.New("invalid scene")

// Scene is the in-memory form of a scene file.
type Scene struct {
	Meshes map[string]*MeshObject  `yaml:"meshes"`
	Guides map[string]*GuideObject `yaml:"guides"`
	Images map[string]*ImageObject `yaml:"images"`
}

// Matrix is a 4×4 transformation matrix in row-major order.
// An empty matrix means identity.
type Matrix []float64

// MeshObject is a polygon mesh. Faces with more than three vertices are
// triangulated as a fan around their first vertex.
type MeshObject struct {
	Matrix   Matrix       `yaml:"matrix,omitempty,flow"`
	Vertices [][3]float64 `yaml:"vertices,flow"`
	Faces    []Face       `yaml:"faces"`
}

// Face lists vertex indices and the UV coordinates of each corner.
type Face struct {
	Vertices []int        `yaml:"vertices,flow"`
	UVs      [][2]float64 `yaml:"uvs,flow"`
}

// GuideObject is a set of guide strokes sharing one transformation.
type GuideObject struct {
	Matrix  Matrix         `yaml:"matrix,omitempty,flow"`
	Strokes [][][3]float64 `yaml:"strokes,flow"`
}

// ImageObject is a target image. Only its size is stored.
type ImageObject struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Read decodes a scene file.
func Read(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	s := &Scene{}
	if err := dec.Decode(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Write encodes s as a scene file.
func (s *Scene) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// Mesh implements the [Store] interface.
func (s *Scene) Mesh(name string) (*shademap.Mesh, error) {
	obj, ok := s.Meshes[name]
	if !ok || obj == nil {
		return nil, &shademap.MissingObjectError{Kind: "mesh", Name: name}
	}

	world, err := obj.Matrix.mat4()
	if err != nil {
		return nil, fmt.Errorf("mesh %q: %w", name, err)
	}
	tris, err := obj.triangulate()
	if err != nil {
		return nil, fmt.Errorf("mesh %q: %w", name, err)
	}
	return &shademap.Mesh{Triangles: tris, World: world}, nil
}

// Guide implements the [Store] interface.
func (s *Scene) Guide(name string) ([]shademap.Stroke, error) {
	obj, ok := s.Guides[name]
	if !ok || obj == nil {
		return nil, &shademap.MissingObjectError{Kind: "guide", Name: name}
	}

	world, err := obj.Matrix.mat4()
	if err != nil {
		return nil, fmt.Errorf("guide %q: %w", name, err)
	}
	strokes := make([]shademap.Stroke, len(obj.Strokes))
	for i, pts := range obj.Strokes {
		strokes[i].World = world
		strokes[i].Points = make([]vec3.T, len(pts))
		for j, p := range pts {
			strokes[i].Points[j] = vec3.T(p)
		}
	}
	return strokes, nil
}

// ImageSize implements the [Store] interface.
func (s *Scene) ImageSize(name string) (width, height int, err error) {
	obj, ok := s.Images[name]
	if !ok || obj == nil {
		return 0, 0, &shademap.MissingObjectError{Kind: "image", Name: name}
	}
	return obj.Width, obj.Height, nil
}

// triangulate splits every face into triangles.
func (m *MeshObject) triangulate() ([]shademap.Triangle, error) {
	var tris []shademap.Triangle
	for i, f := range m.Faces {
		if len(f.Vertices) < 3 {
			return nil, fmt.Errorf("face %d has %d vertices: %w", i, len(f.Vertices), ErrInvalidScene)
		}
		if len(f.UVs) != len(f.Vertices) {
			return nil, fmt.Errorf("face %d has %d vertices but %d UVs: %w",
				i, len(f.Vertices), len(f.UVs), ErrInvalidScene)
		}
		for _, idx := range f.Vertices {
			if idx < 0 || idx >= len(m.Vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range: %w", i, idx, ErrInvalidScene)
			}
		}
		if !m.isConvex(f) {
			return nil, fmt.Errorf("face %d is not convex: %w", i, ErrInvalidScene)
		}

		for k := 1; k+1 < len(f.Vertices); k++ {
			var t shademap.Triangle
			for c, corner := range [3]int{0, k, k + 1} {
				t.Pos[c] = vec3.T(m.Vertices[f.Vertices[corner]])
				t.UV[c] = vec.Vec2{X: f.UVs[corner][0], Y: f.UVs[corner][1]}
			}
			tris = append(tris, t)
		}
	}
	return tris, nil
}

// isConvex reports whether f is a convex polygon, so that a fan around its
// first vertex covers exactly the face. Collinear corners are allowed, and
// faces without a well-defined normal are accepted unchanged.
func (m *MeshObject) isConvex(f Face) bool {
	n := len(f.Vertices)
	if n == 3 {
		return true
	}
	pts := make([]vec3.T, n)
	for i, idx := range f.Vertices {
		pts[i] = vec3.T(m.Vertices[idx])
	}

	// Newell's method
	var normal vec3.T
	for i := range n {
		a, b := &pts[i], &pts[(i+1)%n]
		normal[0] += (a[1] - b[1]) * (a[2] + b[2])
		normal[1] += (a[2] - b[2]) * (a[0] + b[0])
		normal[2] += (a[0] - b[0]) * (a[1] + b[1])
	}
	l := normal.Length()
	if l == 0 {
		return true
	}
	normal = vec3.T{normal[0] / l, normal[1] / l, normal[2] / l}

	var turning float64
	for i := range n {
		e1 := vec3.Sub(&pts[(i+1)%n], &pts[i])
		e2 := vec3.Sub(&pts[(i+2)%n], &pts[(i+1)%n])
		c := vec3.Cross(&e1, &e2)
		sin := vec3.Dot(&c, &normal)
		if sin < -convexTolerance*e1.Length()*e2.Length() {
			return false
		}
		turning += math.Atan2(sin, vec3.Dot(&e1, &e2))
	}
	// a star polygon turns the same way at every corner, but more than once
	return math.Abs(turning-2*math.Pi) < 1e-6
}

// convexTolerance is the largest sine of a reflex turn which is still
// treated as collinear.
const convexTolerance = 1e-9

// mat4 converts m into column-major go3d form.
func (m Matrix) mat4() (mat4.T, error) {
	switch len(m) {
	case 0:
		return mat4.Ident, nil
	case 16:
		var res mat4.T
		for row := range 4 {
			for col := range 4 {
				res[col][row] = m[4*row+col]
			}
		}
		return res, nil
	default:
		return mat4.T{}, fmt.Errorf("matrix has %d entries, want 16: %w", len(m), ErrInvalidScene)
	}
}

// matrixOf converts a go3d matrix into row-major form. The zero matrix and
// the identity both map to an empty Matrix.
func matrixOf(t mat4.T) Matrix {
	if t == (mat4.T{}) || t == mat4.Ident {
		return nil
	}
	m := make(Matrix, 16)
	for row := range 4 {
		for col := range 4 {
			m[4*row+col] = t[col][row]
		}
	}
	return m
}

// FromInput builds a scene containing the objects of in, stored under the
// given names. All face lines share one guide object, so they must all have
// the same world transform.
func FromInput(in *shademap.Input, names Names, width, height int) (*Scene, error) {
	mesh := &MeshObject{Matrix: matrixOf(in.Mesh.World)}
	for _, t := range in.Mesh.Triangles {
		base := len(mesh.Vertices)
		f := Face{Vertices: []int{base, base + 1, base + 2}}
		for c := range 3 {
			mesh.Vertices = append(mesh.Vertices, [3]float64(t.Pos[c]))
			f.UVs = append(f.UVs, [2]float64{t.UV[c].X, t.UV[c].Y})
		}
		mesh.Faces = append(mesh.Faces, f)
	}

	guides := map[string]*GuideObject{
		names.Nose:      guideOf(in.Nose),
		names.Rembrandt: guideOf(in.Rembrandt),
	}
	faceLines := &GuideObject{}
	for i, s := range in.FaceLines {
		world := matrixOf(s.World)
		if i == 0 {
			faceLines.Matrix = world
		} else if !slices.Equal(world, faceLines.Matrix) {
			return nil, fmt.Errorf("face line %d: transform differs from face line 0: %w", i, ErrInvalidScene)
		}
		faceLines.Strokes = append(faceLines.Strokes, pointsOf(s.Points))
	}
	guides[names.FaceLines] = faceLines

	return &Scene{
		Meshes: map[string]*MeshObject{names.Mesh: mesh},
		Guides: guides,
		Images: map[string]*ImageObject{names.Image: {Width: width, Height: height}},
	}, nil
}

func guideOf(s shademap.Stroke) *GuideObject {
	return &GuideObject{
		Matrix:  matrixOf(s.World),
		Strokes: [][][3]float64{pointsOf(s.Points)},
	}
}

func pointsOf(pts []vec3.T) [][3]float64 {
	res := make([][3]float64, len(pts))
	for i, p := range pts {
		res[i] = [3]float64(p)
	}
	return res
}
