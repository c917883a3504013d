package testcases

import (
	"github.com/ungerik/go3d/float64/vec3"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shademap"
)

var flatCases = []TestCase{
	{
		Name: "triangle",
		Input: &shademap.Input{
			Mesh: shademap.Mesh{
				Triangles: []shademap.Triangle{{
					Pos: [3]vec3.T{pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0)},
					UV:  [3]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
				}},
			},
			FaceLines: []shademap.Stroke{
				stroke(pt(0.3, 0.5, 0), pt(0.7, 0.5, 0)),
			},
			Nose:      stroke(planeLoop(0.25, 0.25, 0, 0.1, 8)...),
			Rembrandt: stroke(planeLoop(0.2, 0.6, 0, 0.1, 6)...),
		},
		Width:  4,
		Height: 4,
	},
	{
		Name: "single_line",
		Input: &shademap.Input{
			Mesh: unitSquare(),
			FaceLines: []shademap.Stroke{
				stroke(pt(0.5, 0, 0), pt(0.5, 0.25, 0), pt(0.5, 0.5, 0), pt(0.5, 0.75, 0), pt(0.5, 1, 0)),
			},
			Nose:      stroke(planeLoop(0.3, 0.3, 0, 0.1, 12)...),
			Rembrandt: stroke(planeLoop(0.7, 0.7, 0, 0.15, 12)...),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "three_lines",
		Input: &shademap.Input{
			Mesh: unitSquare(),
			FaceLines: []shademap.Stroke{
				stroke(pt(0.2, 0, 0), pt(0.3, 0.5, 0), pt(0.2, 1, 0)),
				stroke(pt(0.5, 0, 0), pt(0.45, 0.5, 0), pt(0.55, 1, 0)),
				stroke(pt(0.8, 0, 0), pt(0.7, 0.5, 0), pt(0.8, 1, 0)),
			},
			Nose:      stroke(pt(0.45, 0.3, 0), pt(0.55, 0.3, 0), pt(0.5, 0.45, 0)),
			Rembrandt: stroke(planeLoop(0.25, 0.7, 0, 0.12, 10)...),
		},
		Width:  48,
		Height: 32,
	},
	{
		Name: "no_lines",
		Input: &shademap.Input{
			Mesh:      unitSquare(),
			Nose:      stroke(planeLoop(0.5, 0.5, 0, 0.2, 16)...),
			Rembrandt: stroke(planeLoop(0.2, 0.2, 0, 0.1, 16)...),
		},
		Width:  32,
		Height: 32,
	},
	{
		// the same geometry as single_line, moved to x=5 and drawn
		// slightly above the surface
		Name: "translated",
		Input: &shademap.Input{
			Mesh: shademap.Mesh{
				Triangles: unitSquare().Triangles,
				World:     translation(5, 0, 0),
			},
			FaceLines: []shademap.Stroke{{
				Points: []vec3.T{pt(0.5, 0, 0.01), pt(0.5, 0.25, 0.01), pt(0.5, 0.5, 0.01), pt(0.5, 0.75, 0.01), pt(0.5, 1, 0.01)},
				World:  translation(5, 0, 0),
			}},
			Nose: shademap.Stroke{
				Points: planeLoop(3.3, 0.3, 0.01, 0.1, 12),
				World:  translation(2, 0, 0),
			},
			Rembrandt: shademap.Stroke{
				Points: planeLoop(0.7, 0.7, -0.01, 0.15, 12),
				World:  translation(5, 0, 0),
			},
		},
		Width:  64,
		Height: 64,
	},
}
