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

// Package robinhood implements an open-addressing hash table that
// resolves collisions with Robin Hood displacement and deletes with
// backward shifting, exposed through generic Map and Set adapters.
//
// # Robin Hood hashing
//
// All entries live directly in one flat array of slots. An entry's home
// slot is hash(key) mod capacity; when the home slot is taken, the entry
// probes forward linearly. The Robin Hood rule decides who keeps a
// contested slot: the entry that has probed further. An entry sitting
// close to its home (the "rich") is evicted in favor of one that has
// traveled far (the "poor"), and the evicted entry continues probing
// from that point. This keeps the variance of probe distances low and
// yields the probe invariant the whole design rests on: scanning forward
// from any absent key's home hits an empty slot, or an occupant closer
// to its own home than the scan has traveled, before a full wrap. Lookup
// exploits the invariant to exit early; at typical load factors a miss
// costs only a handful of probes.
//
// Each slot caches its occupant's full hash. The cache makes the probe
// comparisons cheap (keys are only compared on a full hash match) and
// lets growth re-insert every entry without re-invoking the hash
// function.
//
// Deletion uses no tombstones. Removing an entry shifts the run of
// displaced successors back by one slot each, which restores the probe
// invariant in place; the table never accumulates deletion debris and
// lookup cost does not degrade with churn.
//
// Capacity decisions are delegated to a GrowthPolicy. The default policy
// doubles; an alternative grows through a fixed ascending prime
// sequence, which defends against hash distributions that correlate
// with powers of two at the cost of a documented upper bound on
// capacity.
//
// The hash function, key equality, slot-array allocation, growth policy,
// and maximum load factor are all injectable through options. By default
// a Map[K,V] hashes with the runtime's maphash seeded per table.
//
// Map and Set are NOT goroutine-safe. Every operation runs to completion
// on the caller's goroutine; callers that share a table across
// goroutines must serialize access externally, and growth touches the
// entire backing store, so there is no finer-grained locking scheme to
// layer on top.
package robinhood

import "fmt"

// An Entry is the element a Map stores: a key and its associated value.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an unordered map from keys to values built on the Robin Hood
// table engine. The zero value for a Map is not usable; construct one
// with NewMap or Init.
type Map[K comparable, V any] struct {
	t table[K, Entry[K, V]]
}

// NewMap constructs a Map with capacity slots preallocated. A capacity
// of 0 defers allocation to the first insertion.
func NewMap[K comparable, V any](capacity int, opts ...Option[K, Entry[K, V]]) *Map[K, V] {
	m := &Map[K, V]{}
	m.Init(capacity, opts...)
	return m
}

// NewPrimeMap constructs a Map whose capacity grows through an ascending
// prime sequence instead of doubling.
func NewPrimeMap[K comparable, V any](capacity int, opts ...Option[K, Entry[K, V]]) *Map[K, V] {
	opts = append([]Option[K, Entry[K, V]]{
		WithGrowthPolicy[K, Entry[K, V]](PrimeGrowth{}),
	}, opts...)
	return NewMap[K, V](capacity, opts...)
}

// Init (re)initializes a Map in place, releasing nothing: a previously
// used Map simply abandons its old store to the GC unless it is Cleared
// first.
func (m *Map[K, V]) Init(capacity int, opts ...Option[K, Entry[K, V]]) {
	m.t.init(capacity, func(e Entry[K, V]) K { return e.Key }, opts)
}

// Put inserts an entry, overwriting the value of an existing entry with
// the same key. It fails only when the table needs to grow and the
// growth policy is exhausted; the table is then left unchanged.
func (m *Map[K, V]) Put(key K, value V) error {
	_, _, err := m.t.insert(key, Entry[K, V]{Key: key, Value: value})
	return err
}

// Get retrieves the value for key, reporting ok=false when the key is
// absent.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	if i, found := m.t.findSpot(key, m.t.hash(key)); found {
		return m.t.data.at(i).value.Value, true
	}
	return value, false
}

// At returns the value for key. Unlike Get, it treats a missing key as a
// caller contract violation and panics rather than fabricating a value.
func (m *Map[K, V]) At(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic(fmt.Sprintf("robinhood: Map.At of missing key %v", key))
	}
	return v
}

// Delete removes the entry for key and returns the number of entries
// removed (0 or 1). Deleting an absent key is a no-op.
func (m *Map[K, V]) Delete(key K) int {
	return m.t.remove(key)
}

// DeleteIter removes the entry under it and returns an iterator at the
// next entry (the end position when none remain). Passing the end
// iterator is a no-op; passing an iterator that references no entry
// panics.
func (m *Map[K, V]) DeleteIter(it Iterator[Entry[K, V]]) Iterator[Entry[K, V]] {
	if it.Equal(m.t.end()) {
		return it
	}
	it.At() // validate the position
	m.t.removeAt(it.pos)
	// The backward shift may have pulled the next entry into the freed
	// slot; advance only when the position is now empty.
	if it.slots[it.pos].empty() {
		it.Next()
	}
	return it
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, found := m.t.findSpot(key, m.t.hash(key))
	return found
}

// Count returns the number of entries with the given key: 0 or 1.
func (m *Map[K, V]) Count(key K) int {
	if m.Contains(key) {
		return 1
	}
	return 0
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.t.count
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.t.count == 0
}

// Clear removes every entry and releases the backing store to the
// allocator. This is the only operation that shrinks capacity.
func (m *Map[K, V]) Clear() {
	m.t.clear()
}

// Reserve grows the map until its capacity exceeds n, rehashing at most
// once. Reserving at or below the current capacity is a no-op.
func (m *Map[K, V]) Reserve(n int) error {
	return m.t.reserve(n)
}

// LoadFactor returns the current ratio of entries to slots.
func (m *Map[K, V]) LoadFactor() float64 {
	return m.t.loadFactor()
}

// MaxLoadFactor returns the occupancy ratio beyond which the map grows.
func (m *Map[K, V]) MaxLoadFactor() float64 {
	return m.t.maxLoad
}

// SetMaxLoadFactor sets the growth threshold, clamping values above 1
// to 1.
func (m *Map[K, V]) SetMaxLoadFactor(f float64) {
	m.t.setMaxLoadFactor(f)
}

// Swap exchanges the complete contents of two maps, configured
// strategies included.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.t.swapWith(&other.t)
}

// Equal reports whether both maps contain exactly the same keys. Values
// are not compared: V is unconstrained and need not be comparable.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	return m.t.equalTo(&other.t)
}

// Begin returns an iterator at the first entry, or End for an empty map.
func (m *Map[K, V]) Begin() Iterator[Entry[K, V]] {
	return m.t.begin()
}

// End returns the canonical past-the-end iterator.
func (m *Map[K, V]) End() Iterator[Entry[K, V]] {
	return m.t.end()
}

// Find returns an iterator at the entry for key, or End when absent.
func (m *Map[K, V]) Find(key K) Iterator[Entry[K, V]] {
	return m.t.find(key)
}

// All calls yield sequentially for each key and value present in the
// map, stopping early if yield returns false. Iteration order is
// unspecified.
func (m *Map[K, V]) All(yield func(key K, value V) bool) {
	m.t.all(func(e Entry[K, V]) bool { return yield(e.Key, e.Value) })
}
