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

package scene

import (
	"fmt"

	"seehuhn.de/go/shademap"
)

// Store gives access to named objects of a host application.
// Lookups of absent objects fail with a [*shademap.MissingObjectError].
type Store interface {
	// Mesh returns the triangulated mesh with the given name.
	Mesh(name string) (*shademap.Mesh, error)

	// Guide returns all strokes of the guide object with the given name.
	Guide(name string) ([]shademap.Stroke, error)

	// ImageSize returns the dimensions of the named target image.
	ImageSize(name string) (width, height int, err error)
}

// Sink receives finished shading maps.
type Sink interface {
	WriteImage(name string, img *shademap.Image) error
}

// ImageMap is a [Sink] which keeps images in memory.
type ImageMap map[string]*shademap.Image

// WriteImage implements the [Sink] interface.
func (m ImageMap) WriteImage(name string, img *shademap.Image) error {
	m[name] = img
	return nil
}

// Names selects the objects used for a shading map.
type Names struct {
	Mesh      string
	FaceLines string
	Nose      string
	Rembrandt string
	Image     string
}

// DefaultNames are the object names used when nothing else is configured.
var DefaultNames = Names{
	Mesh:      "face",
	FaceLines: "Face Lines",
	Nose:      "Nose Line",
	Rembrandt: "Rembrandt Line",
	Image:     "Face Shadow",
}

// Resolve looks up all objects named in names and assembles the pipeline
// input. All strokes of the face-lines guide are used, but only the first
// stroke of the nose and Rembrandt guides.
func Resolve(st Store, names Names) (in *shademap.Input, width, height int, err error) {
	mesh, err := st.Mesh(names.Mesh)
	if err != nil {
		return nil, 0, 0, err
	}
	faceLines, err := st.Guide(names.FaceLines)
	if err != nil {
		return nil, 0, 0, err
	}
	nose, err := firstStroke(st, names.Nose)
	if err != nil {
		return nil, 0, 0, err
	}
	rembrandt, err := firstStroke(st, names.Rembrandt)
	if err != nil {
		return nil, 0, 0, err
	}
	width, height, err = st.ImageSize(names.Image)
	if err != nil {
		return nil, 0, 0, err
	}

	in = &shademap.Input{
		Mesh:      *mesh,
		FaceLines: faceLines,
		Nose:      nose,
		Rembrandt: rembrandt,
	}
	return in, width, height, nil
}

func firstStroke(st Store, name string) (shademap.Stroke, error) {
	strokes, err := st.Guide(name)
	if err != nil {
		return shademap.Stroke{}, err
	}
	if len(strokes) == 0 {
		return shademap.Stroke{}, fmt.Errorf("guide %q: %w", name, shademap.ErrEmptyStroke)
	}
	return strokes[0], nil
}

// Run computes the shading map for the objects in names and passes it to
// sink. Nothing is written if any step fails.
func Run(st Store, names Names, sink Sink) error {
	log := shademap.Logger()

	in, width, height, err := Resolve(st, names)
	if err != nil {
		return err
	}
	log.Info("objects resolved", "mesh", names.Mesh, "faceLines", len(in.FaceLines))

	img, err := shademap.Generate(in, width, height)
	if err != nil {
		return fmt.Errorf("image %q: %w", names.Image, err)
	}

	if err := sink.WriteImage(names.Image, img); err != nil {
		return err
	}
	log.Info("image updated", "image", names.Image, "width", width, "height", height)
	return nil
}
