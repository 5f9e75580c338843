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

func TestPowerOfTwoGrowth(t *testing.T) {
	var g PowerOfTwoGrowth
	require.Equal(t, 1, g.Grow(0))
	require.Equal(t, 2, g.Grow(1))
	require.Equal(t, 4, g.Grow(2))
	require.Equal(t, 2048, g.Grow(1024))

	// Doubling from any starting point visits only powers of two times
	// the start.
	c := 0
	for i := 0; i < 20; i++ {
		next := g.Grow(c)
		require.Greater(t, next, c)
		c = next
	}
	require.Equal(t, 1<<19, c)
}

func TestPrimeGrowth(t *testing.T) {
	var g PrimeGrowth
	require.Equal(t, 1, g.Grow(0))
	require.Equal(t, 5, g.Grow(1))
	require.Equal(t, 17, g.Grow(5))
	require.Equal(t, 17, g.Grow(16))
	require.Equal(t, 29, g.Grow(17))
	require.Equal(t, 131, g.Grow(100))

	// Walking the policy from zero visits the tabulated sequence in
	// order.
	c := 0
	for _, p := range growthPrimes {
		c = g.Grow(c)
		require.Equal(t, int(p), c)
	}

	// The sequence is finite. At the largest tabulated prime the policy
	// is exhausted and reports that by returning its input.
	largest := int(growthPrimes[len(growthPrimes)-1])
	require.Equal(t, largest, g.Grow(largest))
	require.Equal(t, largest+1, g.Grow(largest+1))
}

func TestReserveAppliesGrowthRepeatedly(t *testing.T) {
	// A single Grow step does not need to satisfy a large reservation;
	// the policy is applied until the capacity exceeds the target.
	m := NewMap[int, int](0)
	require.NoError(t, m.Reserve(1000))
	require.Equal(t, 1024, m.t.capacity())

	p := NewPrimeMap[int, int](0)
	require.NoError(t, p.Reserve(1000))
	require.Equal(t, 1031, p.t.capacity())

	// Reserving at or below the current capacity changes nothing.
	require.NoError(t, m.Reserve(1024))
	require.Equal(t, 1024, m.t.capacity())
	require.NoError(t, m.Reserve(0))
	require.Equal(t, 1024, m.t.capacity())
}
