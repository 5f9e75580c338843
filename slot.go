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

// A Slot is a fixed-size cell of the backing store: an occupancy marker,
// the cached hash of the occupant's key, and the occupant itself. The
// value field is meaningful only while the slot is occupied.
type Slot[E any] struct {
	occupied bool
	hash     uint64
	value    E
}

// set places an element into the slot, replacing any previous occupant,
// and records the hash of the element's key.
func (s *Slot[E]) set(hash uint64, value E) {
	s.occupied = true
	s.hash = hash
	s.value = value
}

// clear empties the slot, zeroing the value so the GC can reclaim
// anything it references. Clearing an empty slot is a no-op.
func (s *Slot[E]) clear() {
	var zero E
	s.occupied = false
	s.hash = 0
	s.value = zero
}

// swap exchanges the full contents of two slots (occupancy, hash, and
// value) as a single unit.
func (s *Slot[E]) swap(other *Slot[E]) {
	*s, *other = *other, *s
}

func (s *Slot[E]) empty() bool {
	return !s.occupied
}
