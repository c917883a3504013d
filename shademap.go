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

// Package shademap synthesizes a grayscale shading map for a head mesh from
// a few hand-drawn guide strokes.
//
// The guide strokes are projected into the UV space of the mesh. The face
// lines then define a banded horizontal gradient, and two closed loops add
// a darkened nose occlusion and a brightened Rembrandt highlight on top:
//
//	img, err := shademap.Generate(&shademap.Input{
//		Mesh:      mesh,
//		FaceLines: faceLines,
//		Nose:      nose,
//		Rembrandt: rembrandt,
//	}, 1024, 1024)
package shademap

import (
	"fmt"
)

// Input collects the objects needed to compute a shading map.
type Input struct {
	Mesh Mesh

	// FaceLines are the guide strokes for the base gradient, in order.
	// The list may be empty.
	FaceLines []Stroke

	// Nose and Rembrandt are the strokes outlining the two loops.
	Nose      Stroke
	Rembrandt Stroke
}

// Projection holds the guide strokes of an [Input], mapped into UV space.
type Projection struct {
	Lines     []Line
	Nose      Shape
	Rembrandt Shape
}

// Project maps all guide strokes into the UV space of the mesh and closes
// the nose and Rembrandt loops.
func Project(in *Input) (*Projection, error) {
	log := Logger()

	proj, err := NewProjector(&in.Mesh)
	if err != nil {
		return nil, err
	}
	log.Info("mesh prepared", "triangles", proj.Triangles())

	res := &Projection{
		Lines: make([]Line, len(in.FaceLines)),
	}
	for i := range in.FaceLines {
		line, err := proj.MapStroke(&in.FaceLines[i])
		if err != nil {
			return nil, fmt.Errorf("face line %d: %w", i, err)
		}
		log.Debug("face line mapped", "index", i, "points", len(line))
		res.Lines[i] = line
	}
	log.Info("face lines mapped", "count", len(res.Lines))

	res.Nose, err = projectLoop(proj, &in.Nose)
	if err != nil {
		return nil, fmt.Errorf("nose line: %w", err)
	}
	log.Info("nose line mapped", "points", len(res.Nose))

	res.Rembrandt, err = projectLoop(proj, &in.Rembrandt)
	if err != nil {
		return nil, fmt.Errorf("Rembrandt line: %w", err)
	}
	log.Info("Rembrandt line mapped", "points", len(res.Rembrandt))

	return res, nil
}

func projectLoop(proj *Projector, s *Stroke) (Shape, error) {
	line, err := proj.MapStroke(s)
	if err != nil {
		return nil, err
	}
	return Close(line)
}

// Render rasterizes a projection into a width×height shading map: first the
// banded base gradient, then the nose loop and finally the Rembrandt loop.
func Render(p *Projection, width, height int) (*Image, error) {
	log := Logger()

	buf, err := NewBuffer(width, height)
	if err != nil {
		return nil, fmt.Errorf("%dx%d: %w", width, height, err)
	}

	// analyze both loops before any pixel is touched
	nose, err := NewRegion(p.Nose)
	if err != nil {
		return nil, fmt.Errorf("nose line: %w", err)
	}
	rembrandt, err := NewRegion(p.Rembrandt)
	if err != nil {
		return nil, fmt.Errorf("Rembrandt line: %w", err)
	}

	buf.FillBands(p.Lines)
	log.Info("base pixels done", "width", width, "height", height, "lines", len(p.Lines))

	buf.FillRegion(nose, NoseFalloff)
	log.Info("nose pixels done", "center", nose.Center)

	buf.FillRegion(rembrandt, RembrandtFalloff)
	log.Info("Rembrandt pixels done", "center", rembrandt.Center)

	return buf.Finalize(), nil
}

// Generate computes the shading map for in. Either the complete image is
// returned, or an error.
func Generate(in *Input, width, height int) (*Image, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	p, err := Project(in)
	if err != nil {
		return nil, err
	}
	return Render(p, width, height)
}
