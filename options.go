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

// An Option configures a table while it is being created. K is the key
// type, E the stored element type (Entry[K,V] for a Map, K itself for a
// Set).
type Option[K comparable, E any] interface {
	apply(t *table[K, E])
}

type hashOption[K comparable, E any] struct {
	hash HashFn[K]
}

func (op hashOption[K, E]) apply(t *table[K, E]) {
	t.hash = op.hash
}

// WithHash is an option to specify the hash function for a table's keys.
func WithHash[K comparable, E any](hash HashFn[K]) Option[K, E] {
	return hashOption[K, E]{hash}
}

type equalOption[K comparable, E any] struct {
	equal EqualFn[K]
}

func (op equalOption[K, E]) apply(t *table[K, E]) {
	t.equal = op.equal
}

// WithEqual is an option to specify the key equality predicate. It must
// be consistent with the hash function: keys that compare equal must
// hash equally.
func WithEqual[K comparable, E any](equal EqualFn[K]) Option[K, E] {
	return equalOption[K, E]{equal}
}

type growthOption[K comparable, E any] struct {
	growth GrowthPolicy
}

func (op growthOption[K, E]) apply(t *table[K, E]) {
	t.growth = op.growth
}

// WithGrowthPolicy is an option to specify the capacity growth policy.
// The default is PowerOfTwoGrowth.
func WithGrowthPolicy[K comparable, E any](growth GrowthPolicy) Option[K, E] {
	return growthOption[K, E]{growth}
}

type maxLoadFactorOption[K comparable, E any] struct {
	f float64
}

func (op maxLoadFactorOption[K, E]) apply(t *table[K, E]) {
	t.setMaxLoadFactor(op.f)
}

// WithMaxLoadFactor is an option to specify the occupancy ratio beyond
// which the table grows. Values above 1 are clamped to 1.
func WithMaxLoadFactor[K comparable, E any](f float64) Option[K, E] {
	return maxLoadFactorOption[K, E]{f}
}

// Allocator supplies the memory for a table's slot array. The default
// allocator uses Go's builtin make and lets the GC reclaim memory.
//
// An allocator that manages memory manually can reclaim a slice as soon
// as Free is called: the table frees the previous slot array on every
// growth step and on Clear.
type Allocator[E any] interface {
	// Alloc returns a slice equivalent to make([]Slot[E], n).
	Alloc(n int) []Slot[E]

	// Free can optionally release the memory of a slice that is
	// guaranteed to have been returned by Alloc.
	Free(slots []Slot[E])
}

type defaultAllocator[E any] struct{}

func (defaultAllocator[E]) Alloc(n int) []Slot[E] {
	return make([]Slot[E], n)
}

func (defaultAllocator[E]) Free(slots []Slot[E]) {
}

type allocatorOption[K comparable, E any] struct {
	alloc Allocator[E]
}

func (op allocatorOption[K, E]) apply(t *table[K, E]) {
	t.alloc = op.alloc
}

// WithAllocator is an option to specify the Allocator backing the slot
// array.
func WithAllocator[K comparable, E any](alloc Allocator[E]) Option[K, E] {
	return allocatorOption[K, E]{alloc}
}
