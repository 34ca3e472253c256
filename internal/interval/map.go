// Copyright 2021-2025 The driftlint Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package interval provides an interval map keyed on closed ranges.
//
// The lint engine uses it to answer "which suppression directive, if any,
// covers this byte offset" in O(log n) per diagnostic.
package interval

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/tidwall/btree"
)

// Map maps closed intervals with endpoints in K to values of type V. The
// intervals in a map never overlap.
//
// A zero value is ready to use.
type Map[K cmp.Ordered, V any] struct {
	// Each tree key is the (inclusive) end of an interval; the entry
	// remembers its start.
	tree btree.Map[K, *span[K, V]]
}

type span[K cmp.Ordered, V any] struct {
	start K
	value V
}

// Interval is a range held in a [Map], as returned by lookups.
//
// Value is nil when the lookup found nothing.
type Interval[K cmp.Ordered, V any] struct {
	Start, End K
	Value      *V
}

// Get returns the interval containing key, if one exists.
func (m *Map[K, V]) Get(key K) Interval[K, V] {
	it := m.tree.Iter()
	// Seek finds the least interval end >= key; the interval contains key
	// iff its start is also <= key.
	if !it.Seek(key) || key < it.Value().start {
		return Interval[K, V]{}
	}
	return Interval[K, V]{
		Start: it.Value().start,
		End:   it.Key(),
		Value: &it.Value().value,
	}
}

// Len returns the number of intervals in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// All returns an iterator over the intervals in the map, in ascending order.
func (m *Map[K, V]) All() iter.Seq[Interval[K, V]] {
	return func(yield func(Interval[K, V]) bool) {
		it := m.tree.Iter()
		for more := it.First(); more; more = it.Next() {
			if !yield(Interval[K, V]{
				Start: it.Value().start,
				End:   it.Key(),
				Value: &it.Value().value,
			}) {
				return
			}
		}
	}
}

// Insert inserts [start, end] with the given value. Both endpoints are
// inclusive.
//
// If the new interval overlaps one already present, nothing is inserted and
// the overlapping interval with the least start is returned; the caller
// distinguishes this case by overlap.Value != nil.
func (m *Map[K, V]) Insert(start, end K, value V) (overlap Interval[K, V]) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	it := m.tree.Iter()
	if !it.Seek(start) {
		// Every existing interval ends before start; no overlap possible.
		m.tree.Set(end, &span[K, V]{start: start, value: value})
		return Interval[K, V]{}
	}

	// it now sits on the least interval [c, d] with start <= d.
	switch {
	case end < it.Value().start:
		// [start, end] sits entirely before [c, d].
		m.tree.Set(end, &span[K, V]{start: start, value: value})
		return Interval[K, V]{}

	case end <= it.Key():
		// [start, end] is contained in (or equal to) [c, d].
		return Interval[K, V]{
			Start: it.Value().start,
			End:   it.Key(),
			Value: &it.Value().value,
		}
	}

	// end > d: find the greatest interval ending at or before end and see
	// whether the new interval reaches back into it.
	it.Seek(end)
	if it.Prev() {
		if start <= it.Key() {
			return Interval[K, V]{
				Start: it.Value().start,
				End:   it.Key(),
				Value: &it.Value().value,
			}
		}
		it.Next()
	}

	// Otherwise the only candidate is the least interval ending after end.
	return Interval[K, V]{
		Start: it.Value().start,
		End:   it.Key(),
		Value: &it.Value().value,
	}
}

// Format implements [fmt.Formatter].
func (m *Map[K, V]) Format(s fmt.State, verb rune) {
	fmt.Fprint(s, "{")
	first := true
	m.tree.Scan(func(end K, sp *span[K, V]) bool {
		if !first {
			fmt.Fprint(s, ", ")
		}
		first = false

		if sp.start == end {
			fmt.Fprintf(s, "%#v: ", sp.start)
		} else {
			fmt.Fprintf(s, "[%#v, %#v]: ", sp.start, end)
		}
		fmt.Fprintf(s, fmt.FormatString(s, verb), sp.value)
		return true
	})
	fmt.Fprint(s, "}")
}
