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
	"sort"
)

// bracket holds the neighbors of a value within a sequence ordered by key.
// Either side may be absent.
type bracket[T any] struct {
	Left, Right       T
	HasLeft, HasRight bool
}

// sortByKey returns a copy of items, stably sorted by key.
// Items with equal keys keep their input order.
func sortByKey[T any](items []T, key func(T) float64) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return sorted
}

// bracketSorted finds the neighbors of value in items, which must already be
// sorted by key. Left is the last item with key <= value, Right is the first
// item with key > value.
func bracketSorted[T any](sorted []T, value float64, key func(T) float64) bracket[T] {
	i := sort.Search(len(sorted), func(i int) bool {
		return key(sorted[i]) > value
	})

	var b bracket[T]
	if i > 0 {
		b.Left = sorted[i-1]
		b.HasLeft = true
	}
	if i < len(sorted) {
		b.Right = sorted[i]
		b.HasRight = true
	}
	return b
}
