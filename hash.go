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

import "hash/maphash"

// HashFn computes the hash of a key. Keys that compare equal must hash
// equally.
type HashFn[K any] func(key K) uint64

// EqualFn reports whether two keys are equal.
type EqualFn[K any] func(a, b K) bool

// defaultHashFn returns a HashFn backed by the runtime's maphash with a
// fresh random seed, so distinct tables see distinct hash sequences.
func defaultHashFn[K comparable]() HashFn[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

func defaultEqualFn[K comparable]() EqualFn[K] {
	return func(a, b K) bool { return a == b }
}
