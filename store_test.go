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
	"testing"

	"github.com/stretchr/testify/require"
)

// countingAllocator records every Alloc and Free so tests can assert the
// table's allocation discipline.
type countingAllocator[E any] struct {
	allocs int
	frees  int
}

func (a *countingAllocator[E]) Alloc(n int) []Slot[E] {
	a.allocs++
	return make([]Slot[E], n)
}

func (a *countingAllocator[E]) Free(slots []Slot[E]) {
	a.frees++
}

func TestStoreResize(t *testing.T) {
	alloc := &countingAllocator[int]{}
	s := newStore[int](alloc, 4)
	require.Equal(t, 4, s.len())
	require.Equal(t, 1, alloc.allocs)

	for i := 0; i < 4; i++ {
		s.at(i).set(uint64(i), i*10)
	}

	// Growing transfers slots positionally.
	s.resize(alloc, 8)
	require.Equal(t, 8, s.len())
	require.Equal(t, 2, alloc.allocs)
	require.Equal(t, 1, alloc.frees)
	for i := 0; i < 4; i++ {
		require.False(t, s.at(i).empty())
		require.Equal(t, uint64(i), s.at(i).hash)
		require.Equal(t, i*10, s.at(i).value)
	}
	for i := 4; i < 8; i++ {
		require.True(t, s.at(i).empty())
	}

	// Shrinking discards the tail.
	s.resize(alloc, 2)
	require.Equal(t, 2, s.len())
	for i := 0; i < 2; i++ {
		require.Equal(t, i*10, s.at(i).value)
	}
}

func TestStoreRelease(t *testing.T) {
	alloc := &countingAllocator[int]{}

	s := newStore[int](alloc, 0)
	require.Equal(t, 0, s.len())
	require.Equal(t, 0, alloc.allocs)
	// Releasing an unallocated store does not call Free.
	s.release(alloc)
	require.Equal(t, 0, alloc.frees)

	s = newStore[int](alloc, 16)
	s.release(alloc)
	require.Equal(t, 0, s.len())
	require.Equal(t, 1, alloc.frees)
	s.release(alloc)
	require.Equal(t, 1, alloc.frees)
}

func TestStoreOutOfRangePanics(t *testing.T) {
	s := newStore[int](defaultAllocator[int]{}, 4)
	require.Panics(t, func() { s.at(4) })
	require.Panics(t, func() { s.at(-1) })
}
