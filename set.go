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

// Set is an unordered collection of unique keys built on the Robin Hood
// table engine: elements are their own keys, so it carries no per-entry
// value overhead. The zero value for a Set is not usable; construct one
// with NewSet or Init.
type Set[K comparable] struct {
	t table[K, K]
}

// NewSet constructs a Set with capacity slots preallocated. A capacity
// of 0 defers allocation to the first insertion.
func NewSet[K comparable](capacity int, opts ...Option[K, K]) *Set[K] {
	s := &Set[K]{}
	s.Init(capacity, opts...)
	return s
}

// NewPrimeSet constructs a Set whose capacity grows through an ascending
// prime sequence instead of doubling.
func NewPrimeSet[K comparable](capacity int, opts ...Option[K, K]) *Set[K] {
	opts = append([]Option[K, K]{
		WithGrowthPolicy[K, K](PrimeGrowth{}),
	}, opts...)
	return NewSet[K](capacity, opts...)
}

// Init (re)initializes a Set in place.
func (s *Set[K]) Init(capacity int, opts ...Option[K, K]) {
	s.t.init(capacity, func(k K) K { return k }, opts)
}

// Add inserts key into the set. Adding a key that is already present is
// a no-op. It fails only when the table needs to grow and the growth
// policy is exhausted; the set is then left unchanged.
func (s *Set[K]) Add(key K) error {
	_, _, err := s.t.insert(key, key)
	return err
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool {
	_, found := s.t.findSpot(key, s.t.hash(key))
	return found
}

// Count returns the number of elements equal to key: 0 or 1.
func (s *Set[K]) Count(key K) int {
	if s.Contains(key) {
		return 1
	}
	return 0
}

// Delete removes key from the set and returns the number of elements
// removed (0 or 1).
func (s *Set[K]) Delete(key K) int {
	return s.t.remove(key)
}

// DeleteIter removes the element under it and returns an iterator at the
// next element (the end position when none remain). Passing the end
// iterator is a no-op; passing an iterator that references no element
// panics.
func (s *Set[K]) DeleteIter(it Iterator[K]) Iterator[K] {
	if it.Equal(s.t.end()) {
		return it
	}
	it.At() // validate the position
	s.t.removeAt(it.pos)
	if it.slots[it.pos].empty() {
		it.Next()
	}
	return it
}

// Len returns the number of elements in the set.
func (s *Set[K]) Len() int {
	return s.t.count
}

// Empty reports whether the set holds no elements.
func (s *Set[K]) Empty() bool {
	return s.t.count == 0
}

// Clear removes every element and releases the backing store to the
// allocator.
func (s *Set[K]) Clear() {
	s.t.clear()
}

// Reserve grows the set until its capacity exceeds n, rehashing at most
// once.
func (s *Set[K]) Reserve(n int) error {
	return s.t.reserve(n)
}

// LoadFactor returns the current ratio of elements to slots.
func (s *Set[K]) LoadFactor() float64 {
	return s.t.loadFactor()
}

// MaxLoadFactor returns the occupancy ratio beyond which the set grows.
func (s *Set[K]) MaxLoadFactor() float64 {
	return s.t.maxLoad
}

// SetMaxLoadFactor sets the growth threshold, clamping values above 1
// to 1.
func (s *Set[K]) SetMaxLoadFactor(f float64) {
	s.t.setMaxLoadFactor(f)
}

// Swap exchanges the complete contents of two sets.
func (s *Set[K]) Swap(other *Set[K]) {
	s.t.swapWith(&other.t)
}

// Equal reports whether both sets contain exactly the same keys.
func (s *Set[K]) Equal(other *Set[K]) bool {
	return s.t.equalTo(&other.t)
}

// Begin returns an iterator at the first element, or End for an empty
// set.
func (s *Set[K]) Begin() Iterator[K] {
	return s.t.begin()
}

// End returns the canonical past-the-end iterator.
func (s *Set[K]) End() Iterator[K] {
	return s.t.end()
}

// Find returns an iterator at the element for key, or End when absent.
func (s *Set[K]) Find(key K) Iterator[K] {
	return s.t.find(key)
}

// All calls yield sequentially for each element of the set, stopping
// early if yield returns false. Iteration order is unspecified.
func (s *Set[K]) All(yield func(key K) bool) {
	s.t.all(yield)
}
