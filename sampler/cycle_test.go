// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"golang.org/x/exp/slices"
)

func TestCycleSequential(t *testing.T) {
	require := require.New(t)

	s := NewSequential()
	require.NoError(s.Initialize(3))

	c := NewCycle(s)

	expected := []uint64{0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1}
	for _, want := range expected {
		next, err := c.Next()
		require.NoError(err)
		require.Equal(want, next)
	}
}

func TestCycleUniform(t *testing.T) {
	require := require.New(t)

	const length = 5

	s := NewUniform()
	require.NoError(s.Initialize(length))

	c := NewCycle(s)

	// Each pass regenerates its randomness, but every window of [length]
	// draws is still a permutation of the pool.
	for pass := 0; pass < 3; pass++ {
		window := make([]uint64, length)
		for i := range window {
			next, err := c.Next()
			require.NoError(err)
			window[i] = next
		}

		slices.Sort(window)
		for i, index := range window {
			require.Equal(uint64(i), index)
		}
	}
}

func TestCycleMulti(t *testing.T) {
	require := require.New(t)

	s := NewMulti()
	require.NoError(s.Initialize(3, 4))

	c := NewCycle(s)

	for pass := 0; pass < 3; pass++ {
		for _, want := range []uint64{0, 1, 2} {
			next, err := c.Next()
			require.NoError(err)
			require.Equal(want, next)
		}

		next, err := c.Next()
		require.NoError(err)
		require.Less(next, uint64(3))
	}
}

func TestCycleEmpty(t *testing.T) {
	require := require.New(t)

	s := NewSequential()
	require.NoError(s.Initialize(0))

	c := NewCycle(s)

	_, err := c.Next()
	require.ErrorIs(err, ErrEmptyPool)
}
