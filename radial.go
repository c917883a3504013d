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

import "seehuhn.de/go/geom/vec"

// Falloff maps a radial membership ratio to a shading value.
type Falloff func(ratio float64) float64

// NoseFalloff darkens towards the centre of the nose loop.
func NoseFalloff(r float64) float64 {
	return r * r / 2
}

// RembrandtFalloff brightens towards the centre of the Rembrandt loop.
func RembrandtFalloff(r float64) float64 {
	return (1-r*r)/2 + 0.5
}

// Region is a closed shape prepared for radial rasterization.
type Region struct {
	Shape     Shape
	Center    vec.Vec2
	MaxDistSq float64
}

// NewRegion analyzes s, see [Analyze].
func NewRegion(s Shape) (*Region, error) {
	c, d, err := Analyze(s)
	if err != nil {
		return nil, err
	}
	return &Region{Shape: s, Center: c, MaxDistSq: d}, nil
}

// Ratio returns the squared distance from the centre to p, divided by
// MaxDistSq. ok is false if p lies outside the shape, as seen along the ray
// from the centre through p.
func (r *Region) Ratio(p vec.Vec2) (ratio float64, ok bool) {
	d := p.Sub(r.Center)
	distSq := d.Dot(d)
	if distSq == 0 {
		return 0, true
	}

	t, hit := r.Shape.reach(r.Center, d)
	if !hit || t < 1 {
		return 0, false
	}
	return distSq / r.MaxDistSq, true
}

// FillRegion blends f(ratio) into every pixel inside the region. Pixels
// outside the region are left unchanged.
func (b *Buffer) FillRegion(r *Region, f Falloff) {
	bbox := r.Shape.Bounds()
	for y := range b.Height {
		for x := range b.Width {
			u, v := b.uv(x, y)
			if u < bbox.LLx || u > bbox.URx || v < bbox.LLy || v > bbox.URy {
				continue // no ray from the centre can reach p
			}
			ratio, ok := r.Ratio(vec.Vec2{X: u, Y: v})
			if !ok {
				continue
			}
			// ratio 0 at the centre is a regular value and gets blended
			b.Blend(x, y, f(ratio))
		}
	}
}
