package testcases

import (
	"math"

	"seehuhn.de/go/shademap"
)

var headCases = []TestCase{
	{
		Name: "half_cylinder",
		Input: &shademap.Input{
			Mesh: cylinder(-math.Pi/2, math.Pi/2, 1.5, 16, 8),
			FaceLines: []shademap.Stroke{
				stroke(cylinderLine(-0.6, 0, 1.5, 1.02, 7)...),
				stroke(cylinderLine(0.1, 0, 1.5, 1.02, 7)...),
				stroke(cylinderLine(0.8, 0, 1.5, 1.02, 7)...),
			},
			Nose:      stroke(cylinderLoop(0.15, 0.6, 0.12, 0.1, 1.02, 16)...),
			Rembrandt: stroke(cylinderLoop(-0.8, 0.85, 0.2, 0.15, 1.01, 16)...),
		},
		Width:  128,
		Height: 128,
	},
	{
		// a closed cylinder, so that every stroke point also projects
		// into triangles on the back of the head
		Name: "full_cylinder",
		Input: &shademap.Input{
			Mesh: cylinder(-math.Pi, math.Pi, 1.5, 32, 8),
			FaceLines: []shademap.Stroke{
				stroke(cylinderLine(-0.4, 0, 1.5, 1.02, 7)...),
				stroke(cylinderLine(0.4, 0, 1.5, 1.02, 7)...),
			},
			Nose:      stroke(cylinderLoop(0, 0.6, 0.15, 0.1, 1.02, 16)...),
			Rembrandt: stroke(cylinderLoop(-0.9, 0.9, 0.25, 0.15, 1.02, 16)...),
		},
		Width:  128,
		Height: 64,
	},
}
