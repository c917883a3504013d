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
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func squareRegion(t *testing.T) *Region {
	t.Helper()
	s, err := Close(square(0.25, 0.25, 0.75, 0.75))
	if err != nil {
		t.Fatal(err)
	}
	r, err := NewRegion(s)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestFalloff(t *testing.T) {
	tests := []struct {
		name     string
		f        Falloff
		r        float64
		expected float64
	}{
		{"nose centre", NoseFalloff, 0, 0},
		{"nose half", NoseFalloff, 0.5, 0.125},
		{"nose boundary", NoseFalloff, 1, 0.5},
		{"Rembrandt centre", RembrandtFalloff, 0, 1},
		{"Rembrandt half", RembrandtFalloff, 0.5, 0.875},
		{"Rembrandt boundary", RembrandtFalloff, 1, 0.5},
	}
	for _, tc := range tests {
		if v := tc.f(tc.r); math.Abs(v-tc.expected) > epsilon {
			t.Errorf("%s: expected %g, got %g", tc.name, tc.expected, v)
		}
	}
}

func TestRegionRatio(t *testing.T) {
	r := squareRegion(t)
	if !closeTo(r.Center, vec.Vec2{X: 0.5, Y: 0.5}, epsilon) {
		t.Errorf("expected centre (0.5, 0.5), got %v", r.Center)
	}
	if math.Abs(r.MaxDistSq-0.125) > epsilon {
		t.Errorf("expected max distance² 0.125, got %g", r.MaxDistSq)
	}

	tests := []struct {
		p      vec.Vec2
		inside bool
		ratio  float64
	}{
		{vec.Vec2{X: 0.5, Y: 0.5}, true, 0},
		{vec.Vec2{X: 0.6, Y: 0.5}, true, 0.08},
		{vec.Vec2{X: 0.5, Y: 0.3}, true, 0.32},
		{vec.Vec2{X: 0.75, Y: 0.5}, true, 0.5},
		{vec.Vec2{X: 0.75, Y: 0.75}, true, 1},
		{vec.Vec2{X: 0.9, Y: 0.5}, false, 0},
		{vec.Vec2{X: 0.1, Y: 0.1}, false, 0},
		{vec.Vec2{X: 0.5, Y: 0.8}, false, 0},
	}
	for _, tc := range tests {
		ratio, ok := r.Ratio(tc.p)
		if ok != tc.inside {
			t.Errorf("%v: expected inside=%t, got %t", tc.p, tc.inside, ok)
			continue
		}
		if ok && math.Abs(ratio-tc.ratio) > epsilon {
			t.Errorf("%v: expected ratio %g, got %g", tc.p, tc.ratio, ratio)
		}
	}
}

func TestNewRegionDegenerate(t *testing.T) {
	p := vec.Vec2{X: 0.5, Y: 0.5}
	s, err := Close(Line{p, p, p})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewRegion(s); !errors.Is(err, ErrDegenerateShape) {
		t.Errorf("expected ErrDegenerateShape, got %v", err)
	}
}

func TestFillRegion(t *testing.T) {
	r := squareRegion(t)

	buf, err := NewBuffer(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i := range buf.Pix {
		buf.Pix[i] = 0.25
	}
	buf.FillRegion(r, NoseFalloff)

	tests := []struct {
		x, y     int
		expected float64
	}{
		{4, 4, 0.125},                  // centre, ratio 0
		{6, 4, (0.25 + 0.125) / 2},     // boundary, ratio 0.5
		{5, 4, (0.25 + 0.0078125) / 2}, // ratio 0.125
		{7, 4, 0.25},                   // outside
		{0, 0, 0.25},                   // outside
		{1, 4, 0.25},                   // outside
	}
	for _, tc := range tests {
		if v := buf.At(tc.x, tc.y); math.Abs(v-tc.expected) > epsilon {
			t.Errorf("(%d, %d): expected %g, got %g", tc.x, tc.y, tc.expected, v)
		}
	}
}

func TestFillRegionEmptyBuffer(t *testing.T) {
	r := squareRegion(t)

	buf, err := NewBuffer(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	buf.FillRegion(r, RembrandtFalloff)

	if v := buf.At(4, 4); math.Abs(v-1) > epsilon {
		t.Errorf("centre: expected 1, got %g", v)
	}
	if v := buf.At(6, 6); math.Abs(v-0.5) > epsilon {
		t.Errorf("corner: expected 0.5, got %g", v)
	}
	if v := buf.At(7, 7); v != 0 {
		t.Errorf("outside: expected 0, got %g", v)
	}
}
