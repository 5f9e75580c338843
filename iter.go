// Copyright 2025 The Robinhood Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package robinhood

import "unsafe"

// An Iterator is a borrowed cursor over a table's slot array. It skips
// empty slots in both directions and never owns or mutates the store it
// reads. The canonical end position sits one past the last slot.
//
// Any operation that grows, clears, or swaps the owning table
// invalidates its iterators: they keep reading the superseded slot
// array.
type Iterator[E any] struct {
	slots []Slot[E]
	pos   int
}

// Next advances to the next occupied slot, or to the end position when
// none remain. It reports whether the cursor still points at an element.
func (it *Iterator[E]) Next() bool {
	for it.pos++; it.pos < len(it.slots); it.pos++ {
		if !it.slots[it.pos].empty() {
			return true
		}
	}
	it.pos = len(it.slots)
	return false
}

// Prev retreats to the previous occupied slot. The caller must not
// retreat past the first occupied slot; doing so panics.
func (it *Iterator[E]) Prev() {
	for it.pos--; it.pos >= 0; it.pos-- {
		if !it.slots[it.pos].empty() {
			return
		}
	}
	panic("robinhood: iterator decremented past the first element")
}

// At returns the element under the cursor. Dereferencing the end
// position, or a cursor invalidated by table growth, panics.
func (it *Iterator[E]) At() E {
	if it.pos < 0 || it.pos >= len(it.slots) || it.slots[it.pos].empty() {
		panic("robinhood: iterator does not reference an element")
	}
	return it.slots[it.pos].value
}

// Equal reports whether two iterators reference the same bounds and the
// same position.
func (it Iterator[E]) Equal(other Iterator[E]) bool {
	return it.pos == other.pos &&
		len(it.slots) == len(other.slots) &&
		unsafe.SliceData(it.slots) == unsafe.SliceData(other.slots)
}
