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
	"errors"
	"fmt"
)

// Errors reported by the pipeline. All of them abort the current invocation;
// callers should test for them with [errors.Is].
var (
	// ErrMissingObject is wrapped by [MissingObjectError].
	ErrMissingObject = errors.New("missing object")

	// ErrEmptyMesh indicates a mesh without triangles.
	ErrEmptyMesh = errors.New("mesh has no triangles")

	// ErrEmptyStroke indicates a required stroke without points.
	ErrEmptyStroke = errors.New("stroke has no points")

	// ErrDegenerateShape indicates a closed shape with fewer than three
	// points, or one whose points all coincide.
	ErrDegenerateShape = errors.New("degenerate shape")

	// ErrProjectionAmbiguity indicates that no triangle of the mesh has a
	// usable plane, so no point can be projected.
	ErrProjectionAmbiguity = errors.New("no triangle can be used for projection")

	// ErrInvalidSize indicates an output buffer with zero or negative
	// width or height.
	ErrInvalidSize = errors.New("invalid image size")
)

// MissingObjectError reports a named object which the host store does not
// contain.
type MissingObjectError struct {
	Kind string // "mesh", "guide" or "image"
	Name string
}

func (e *MissingObjectError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Unwrap returns [ErrMissingObject].
func (e *MissingObjectError) Unwrap() error {
	return ErrMissingObject
}
