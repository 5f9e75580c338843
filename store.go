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

// store is a contiguous, fixed-capacity sequence of slots. A store is
// owned exclusively by a single table and is never aliased; iterators
// borrow the slot array but never mutate it.
type store[E any] struct {
	slots []Slot[E]
}

// newStore allocates a store of capacity empty slots. A capacity of 0
// allocates nothing.
func newStore[E any](alloc Allocator[E], capacity int) store[E] {
	if capacity == 0 {
		return store[E]{}
	}
	return store[E]{slots: alloc.Alloc(capacity)}
}

func (s *store[E]) len() int {
	return len(s.slots)
}

// at returns the slot at index i. An out-of-range index panics via the
// runtime bounds check.
func (s *store[E]) at(i int) *Slot[E] {
	return &s.slots[i]
}

// resize replaces the slot sequence with one of newCapacity slots,
// transferring existing slots positionally (same index, not rehashed).
// This is a raw capacity change; shrinking discards the tail.
func (s *store[E]) resize(alloc Allocator[E], newCapacity int) {
	old := s.slots
	s.slots = nil
	if newCapacity > 0 {
		s.slots = alloc.Alloc(newCapacity)
		copy(s.slots, old)
	}
	if old != nil {
		alloc.Free(old)
	}
}

// release returns the slot memory to the allocator and leaves the store
// with zero capacity.
func (s *store[E]) release(alloc Allocator[E]) {
	if s.slots != nil {
		alloc.Free(s.slots)
		s.slots = nil
	}
}
