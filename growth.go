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
	"errors"
	"sort"
)

// ErrCapacityExhausted is returned when the growth policy cannot produce
// a capacity large enough for the requested operation. The table is left
// unmodified.
var ErrCapacityExhausted = errors.New("robinhood: growth policy cannot grow capacity")

// A GrowthPolicy computes the next backing-store capacity from the
// current one. Grow must return a value strictly greater than current
// while the policy can still grow; returning current (or less) signals
// that the policy is exhausted. The table applies the policy repeatedly
// until the result exceeds the capacity it needs, so a single Grow step
// does not have to satisfy a large reservation on its own.
type GrowthPolicy interface {
	Grow(current int) int
}

// PowerOfTwoGrowth doubles the capacity on every step. It never
// exhausts.
type PowerOfTwoGrowth struct{}

func (PowerOfTwoGrowth) Grow(current int) int {
	if current == 0 {
		return 1
	}
	return current * 2
}

// growthPrimes is an ascending table of capacities chosen to avoid small
// common factors with typical hash distributions.
var growthPrimes = [...]uint64{
	1, 5, 17, 29, 37, 53, 67, 79, 97, 131, 193, 257, 389, 521, 769,
	1031, 1543, 2053, 3079, 6151, 12289, 24593, 49157, 98317, 196613,
	393241, 786433, 1572869, 3145739, 6291469, 12582917, 25165843,
	50331653, 100663319, 201326611, 402653189, 805306457, 1610612741,
	3221225473, 4294967291, 6442450939, 12884901893, 25769803751,
	51539607551, 103079215111, 206158430209, 412316860441, 824633720831,
	1649267441651, 3298534883309, 6597069766657,
}

// PrimeGrowth grows to the smallest tabulated prime strictly greater
// than the current capacity. The table is finite: once the capacity
// reaches the largest tabulated prime, Grow returns current unchanged
// and further growth fails with ErrCapacityExhausted rather than
// silently under-allocating.
type PrimeGrowth struct{}

func (PrimeGrowth) Grow(current int) int {
	i := sort.Search(len(growthPrimes), func(i int) bool {
		return growthPrimes[i] > uint64(current)
	})
	if i == len(growthPrimes) {
		return current
	}
	return int(growthPrimes[i])
}
