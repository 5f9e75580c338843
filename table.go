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

import (
	"fmt"
	"strings"
)

// defaultMaxLoadFactor balances probe length against memory. Robin Hood
// displacement keeps variance low, so a relatively aggressive threshold
// is still cheap to probe.
const defaultMaxLoadFactor = 0.5

// table is the hash table engine shared by Map and Set. It stores
// elements of type E keyed by K, where selectKey extracts the key from a
// stored element. The engine owns its backing store exclusively and
// consults the growth policy only on capacity decisions.
//
// Engine invariants, maintained across insert, remove, and growth:
//
//   - count is the number of occupied slots.
//   - An occupied slot at index i with cached hash h sits at circular
//     distance (i - h%capacity + capacity) % capacity from its home.
//   - Probing forward from any absent key's home reaches an empty slot,
//     or a slot whose occupant is closer to its own home than the probe
//     has traveled, before completing a full wrap. This is what lets
//     lookups of absent keys exit early.
//
// No tombstones exist: deletion restores the invariant by shifting
// displaced successors backward.
type table[K comparable, E any] struct {
	selectKey func(E) K
	hash      HashFn[K]
	equal     EqualFn[K]
	growth    GrowthPolicy
	alloc     Allocator[E]
	maxLoad   float64
	count     int
	data      store[E]
}

func (t *table[K, E]) init(capacity int, selectKey func(E) K, opts []Option[K, E]) {
	*t = table[K, E]{
		selectKey: selectKey,
		growth:    PowerOfTwoGrowth{},
		alloc:     defaultAllocator[E]{},
		maxLoad:   defaultMaxLoadFactor,
	}
	for _, op := range opts {
		op.apply(t)
	}
	if t.hash == nil {
		t.hash = defaultHashFn[K]()
	}
	if t.equal == nil {
		t.equal = defaultEqualFn[K]()
	}
	t.data = newStore(t.alloc, capacity)
}

func (t *table[K, E]) capacity() int {
	return t.data.len()
}

// home returns the ideal index for hash h.
func (t *table[K, E]) home(h uint64) int {
	c := t.capacity()
	if c == 0 {
		c = 1
	}
	return int(h % uint64(c))
}

// next returns the index after i, wrapping at capacity.
func (t *table[K, E]) next(i int) int {
	return (i + 1) % t.capacity()
}

// distance returns how far the occupant of index i sits from its home,
// accounting for wraparound. Meaningful only for occupied slots.
func (t *table[K, E]) distance(i int) int {
	return t.probeLen(i, t.home(t.data.at(i).hash))
}

// probeLen returns the circular distance from home forward to i.
func (t *table[K, E]) probeLen(i, home int) int {
	if i >= home {
		return i - home
	}
	return t.capacity() - home + i
}

// findSpot locates the element keyed by key with hash h. It returns the
// element's index and true when present; otherwise the index at which
// the key would be inserted and false. The probe exits at the first
// empty slot or the first occupant closer to its own home than the probe
// has traveled: the probe invariant guarantees the key cannot appear
// beyond either. The loop terminates within capacity steps because the
// probe counter eventually exceeds every bounded occupant distance.
func (t *table[K, E]) findSpot(key K, h uint64) (int, bool) {
	if t.capacity() == 0 {
		return 0, false
	}
	i := t.home(h)
	probe := 0
	for {
		s := t.data.at(i)
		if s.empty() || probe > t.distance(i) {
			return i, false
		}
		if s.hash == h && t.equal(t.selectKey(s.value), key) {
			return i, true
		}
		i = t.next(i)
		probe++
	}
}

// insert adds or updates the element keyed by key. It reports the
// element's final index and whether an existing element was overwritten.
// A failed growth step leaves the table untouched.
func (t *table[K, E]) insert(key K, value E) (int, bool, error) {
	h := t.hash(key)
	i, found := t.findSpot(key, h)
	if found {
		t.data.at(i).set(h, value)
		return i, true, nil
	}
	grown, err := t.maybeGrow()
	if err != nil {
		return 0, false, err
	}
	if grown {
		i, _ = t.findSpot(key, h)
	}
	i = t.displace(i, h, value)
	t.count++
	return i, false, nil
}

// displace inserts an element starting at index i using the Robin Hood
// rule: the candidate trades places with any occupant that sits closer
// to its own home than the candidate has traveled, then keeps probing on
// behalf of the evicted occupant. An occupant is therefore only ever
// displaced by an element that has probed at least as far, which bounds
// the distance any single element accumulates. Returns the index where
// the original element came to rest.
func (t *table[K, E]) displace(i int, h uint64, value E) int {
	var candidate Slot[E]
	candidate.set(h, value)

	dist := t.probeLen(i, t.home(h))
	placed := -1
	for !t.data.at(i).empty() {
		if d := t.distance(i); d < dist {
			t.data.at(i).swap(&candidate)
			if placed < 0 {
				placed = i
			}
			dist = d
		}
		dist++
		i = t.next(i)
	}
	t.data.at(i).swap(&candidate)
	if placed < 0 {
		placed = i
	}
	return placed
}

// maybeGrow rehashes into a larger store when the load factor threshold
// has been reached; a zero-capacity table always qualifies. It reports
// whether a rehash happened.
func (t *table[K, E]) maybeGrow() (bool, error) {
	if float64(t.count) < t.maxLoad*float64(t.capacity()) {
		return false, nil
	}
	newCapacity, err := t.grownCapacity(t.count + 1)
	if err != nil {
		return false, err
	}
	t.rehashInto(newCapacity)
	return true, nil
}

// grownCapacity applies the growth policy, at least once, until the
// result exceeds min.
func (t *table[K, E]) grownCapacity(min int) (int, error) {
	c := t.capacity()
	for {
		next := t.growth.Grow(c)
		if next <= c {
			return 0, ErrCapacityExhausted
		}
		c = next
		if c > min {
			return c, nil
		}
	}
}

// rehashInto moves every element into a fresh store of newCapacity
// slots, re-probing each element from the hash cached in its slot. The
// hash function is not consulted during growth.
func (t *table[K, E]) rehashInto(newCapacity int) {
	if newCapacity <= t.capacity() {
		return
	}
	old := t.data
	t.data = newStore(t.alloc, newCapacity)
	for i := 0; i < old.len(); i++ {
		if s := old.at(i); !s.empty() {
			t.displace(t.home(s.hash), s.hash, s.value)
		}
	}
	old.release(t.alloc)
}

// reserve grows the table until its capacity exceeds n, rehashing at
// most once. Reserving at or below the current capacity is a no-op.
func (t *table[K, E]) reserve(n int) error {
	if n <= t.capacity() {
		return nil
	}
	c := t.capacity()
	for c <= n {
		next := t.growth.Grow(c)
		if next <= c {
			return ErrCapacityExhausted
		}
		c = next
	}
	t.rehashInto(c)
	return nil
}

// remove deletes the element keyed by key. It returns 1 if an element
// was removed and 0 if the key was absent.
func (t *table[K, E]) remove(key K) int {
	i, found := t.findSpot(key, t.hash(key))
	if !found {
		return 0
	}
	t.removeAt(i)
	return 1
}

// removeAt clears index i and backward-shifts the run of displaced
// successors into the gap. The shift stops at the first empty slot or
// the first occupant already at its home: nothing beyond either can have
// been displaced by an element that probed through i, so the probe
// invariant is restored without tombstones.
func (t *table[K, E]) removeAt(i int) {
	prev := i
	cur := t.next(i)
	t.data.at(prev).clear()
	for !t.data.at(cur).empty() && t.distance(cur) > 0 {
		// prev is empty here, so the swap is a move that leaves cur
		// empty for the next step.
		t.data.at(prev).swap(t.data.at(cur))
		prev = cur
		cur = t.next(cur)
	}
	t.count--
}

// clear removes every element and releases the backing store. This is
// the one operation that shrinks capacity.
func (t *table[K, E]) clear() {
	t.data.release(t.alloc)
	t.count = 0
}

// swapWith exchanges the complete contents of two engines, strategies
// included.
func (t *table[K, E]) swapWith(other *table[K, E]) {
	*t, *other = *other, *t
}

func (t *table[K, E]) loadFactor() float64 {
	if t.capacity() == 0 {
		return 0
	}
	return float64(t.count) / float64(t.capacity())
}

// setMaxLoadFactor clamps f to at most 1: open addressing cannot hold
// more elements than slots.
func (t *table[K, E]) setMaxLoadFactor(f float64) {
	if f > 1 {
		f = 1
	}
	t.maxLoad = f
}

// equalTo reports whether both engines hold exactly the same keys. Each
// engine probes with its own hash function, so the two need not share
// one.
func (t *table[K, E]) equalTo(other *table[K, E]) bool {
	if t.count != other.count {
		return false
	}
	for i := 0; i < t.data.len(); i++ {
		s := t.data.at(i)
		if s.empty() {
			continue
		}
		key := t.selectKey(s.value)
		if _, found := other.findSpot(key, other.hash(key)); !found {
			return false
		}
	}
	return true
}

// all calls yield for each stored element until yield returns false.
// The slot array is snapshotted up front, so iteration stays valid if
// the table grows mid-iteration, though mutations may not be visible.
func (t *table[K, E]) all(yield func(E) bool) {
	slots := t.data.slots
	for i := range slots {
		if !slots[i].empty() {
			if !yield(slots[i].value) {
				return
			}
		}
	}
}

// begin returns a cursor at the first occupied slot, or the end position
// for an empty table.
func (t *table[K, E]) begin() Iterator[E] {
	it := Iterator[E]{slots: t.data.slots, pos: -1}
	it.Next()
	return it
}

// end returns the canonical past-the-end cursor.
func (t *table[K, E]) end() Iterator[E] {
	return Iterator[E]{slots: t.data.slots, pos: t.data.len()}
}

// find returns a cursor at the element keyed by key, or end when absent.
func (t *table[K, E]) find(key K) Iterator[E] {
	if i, found := t.findSpot(key, t.hash(key)); found {
		return Iterator[E]{slots: t.data.slots, pos: i}
	}
	return t.end()
}

// checkInvariants verifies the probe invariant and the count
// bookkeeping, panicking with a table dump on violation. It is intended
// for tests.
func (t *table[K, E]) checkInvariants() {
	occupied := 0
	for i := 0; i < t.data.len(); i++ {
		s := t.data.at(i)
		if s.empty() {
			continue
		}
		occupied++
		if d := t.distance(i); d > 0 {
			// A displaced occupant requires a predecessor displaced at
			// least as far, or probes for it would exit early.
			p := i - 1
			if p < 0 {
				p = t.capacity() - 1
			}
			if t.data.at(p).empty() || t.distance(p) < d-1 {
				panic(fmt.Sprintf(
					"invariant failed: slot %d at distance %d lacks a displaced predecessor\n%s",
					i, d, t.debugString()))
			}
		}
		key := t.selectKey(s.value)
		if j, found := t.findSpot(key, s.hash); !found || j != i {
			panic(fmt.Sprintf("invariant failed: slot %d (%v) not reachable by probing\n%s",
				i, key, t.debugString()))
		}
	}
	if occupied != t.count {
		panic(fmt.Sprintf("invariant failed: found %d occupied slots, but count is %d\n%s",
			occupied, t.count, t.debugString()))
	}
}

func (t *table[K, E]) debugString() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "capacity=%d count=%d max-load-factor=%.2f\n",
		t.capacity(), t.count, t.maxLoad)
	for i := 0; i < t.data.len(); i++ {
		s := t.data.at(i)
		if s.empty() {
			fmt.Fprintf(&buf, "  %4d: empty\n", i)
		} else {
			fmt.Fprintf(&buf, "  %4d: %v [hash=%016x home=%d distance=%d]\n",
				i, s.value, s.hash, t.home(s.hash), t.distance(i))
		}
	}
	return buf.String()
}
