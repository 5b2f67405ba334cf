// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "math"

// Multi stretches or shrinks a pool of indices to a fixed number of draws per
// pass. When the requested count exceeds the pool size, a pass consists of as
// many full in-order sweeps over the pool as fit, followed by uniform random
// draws for the remainder. When the count is smaller than the pool, every
// draw is uniform random. Random draws are made with replacement.
type Multi interface {
	Initialize(sampleRange, count uint64) error
	Sample() ([]uint64, error)

	Seed(int64)
	ClearSeed()

	Reset()
	Next() (uint64, error)
}

// NewMulti returns a new sampler
func NewMulti() Multi { return &multiSampler{} }

// multiSampler draws count/length full sequential sweeps back to back, then
// count%length independent uniform draws.
//
// Initialization takes O(1) time.
//
// Sampling is performed in O(count) time and O(count) space.
type multiSampler struct {
	rng       *rng
	seededRNG *rng
	length    uint64
	count     uint64
	draws     uint64
}

func (s *multiSampler) Initialize(length, count uint64) error {
	if count > math.MaxInt64 {
		return ErrOutOfRange
	}
	if length == 0 && count > 0 {
		return ErrEmptyPool
	}
	s.rng = globalRNG
	s.seededRNG = newRNG()
	s.length = length
	s.count = count
	s.draws = 0
	return nil
}

func (s *multiSampler) Sample() ([]uint64, error) {
	s.Reset()

	results := make([]uint64, s.count)
	for i := range results {
		ret, err := s.Next()
		if err != nil {
			return nil, err
		}
		results[i] = ret
	}
	return results, nil
}

func (s *multiSampler) Seed(seed int64) {
	s.rng = s.seededRNG
	s.rng.Seed(seed)
}

func (s *multiSampler) ClearSeed() {
	s.rng = globalRNG
}

func (s *multiSampler) Reset() {
	s.draws = 0
}

func (s *multiSampler) Next() (uint64, error) {
	if s.draws >= s.count {
		return 0, ErrOutOfRange
	}

	// Invariant: length > 0 here, as Initialize rejects an empty pool with a
	// non-zero count.
	sequential := s.count / s.length * s.length
	draw := s.draws
	s.draws++
	if draw < sequential {
		return draw % s.length, nil
	}
	return s.rng.Uint64Inclusive(s.length - 1), nil
}
