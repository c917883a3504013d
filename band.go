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
	"cmp"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// crossing is the x-position at which a guide line crosses a scanline.
type crossing struct {
	line int // index of the line in the input order
	x    float64
}

func crossingX(c crossing) float64 { return c.x }
func pointY(p vec.Vec2) float64     { return p.Y }

// lineCrossings returns, for each of the height scanlines, the x-position of
// line at v = y/height. Above and below the line, the x-position of the
// nearest end point is used.
func lineCrossings(line Line, height int) []float64 {
	pts := sortByKey(line, pointY)

	xs := make([]float64, height)
	for y := range height {
		v := float64(y) / float64(height)
		b := bracketSorted(pts, v, pointY)
		switch {
		case !b.HasLeft:
			xs[y] = b.Right.X
		case !b.HasRight:
			xs[y] = b.Left.X
		default:
			// Right.Y > v >= Left.Y, so the division is safe
			dxdy := (b.Right.X - b.Left.X) / (b.Right.Y - b.Left.Y)
			xs[y] = b.Left.X + dxdy*(v-b.Left.Y)
		}
	}
	return xs
}

// FillBands overwrites the buffer with the banded base gradient defined by
// the guide lines. With n lines the image is split into n+1 bands; band k
// ramps from k/(n+1) up to (k+1)/(n+1) between its two bounding lines. If
// lines is empty, every pixel is set to 0. Lines without points never act as
// band boundaries, but still count towards n.
func (b *Buffer) FillBands(lines []Line) {
	n := len(lines)
	if n == 0 {
		clear(b.Pix)
		return
	}

	xs := make([][]float64, n)
	for i, line := range lines {
		if len(line) > 0 {
			xs[i] = lineCrossings(line, b.Height)
		}
	}

	row := make([]crossing, 0, n)
	for y := range b.Height {
		row = row[:0]
		for i := range lines {
			if xs[i] != nil {
				row = append(row, crossing{line: i, x: xs[i][y]})
			}
		}
		slices.SortStableFunc(row, func(c1, c2 crossing) int {
			return cmp.Compare(c1.x, c2.x)
		})

		for x := range b.Width {
			u, _ := b.uv(x, y)
			b.Set(x, y, bandValue(bracketSorted(row, u, crossingX), u, n))
		}
	}
}

// bandValue computes the gradient value at horizontal position u, given the
// guide lines to the left and right of u on the current scanline.
func bandValue(nb bracket[crossing], u float64, n int) float64 {
	scale := 1 / float64(n+1)
	switch {
	case nb.HasLeft:
		offset := float64(nb.Left.line+1) * scale
		rightX := 1.0
		if nb.HasRight {
			rightX = nb.Right.x
		}
		return offset + (u-nb.Left.x)/(rightX-nb.Left.x)*scale
	case nb.HasRight:
		return u / nb.Right.x * scale
	default:
		return 0
	}
}
