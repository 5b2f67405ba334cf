// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "math"

// Sequential produces the indices of the provided range in order
type Sequential interface {
	Initialize(sampleRange uint64) error
	Sample(length int) ([]uint64, error)

	Reset()
	Next() (uint64, error)
}

// NewSequential returns a new sampler
func NewSequential() Sequential { return &sequentialSampler{} }

// sequentialSampler emits 0, 1, ..., length-1 exactly once per pass.
//
// Initialization takes O(1) time.
//
// Sampling is performed in O(count) time and O(count) space.
type sequentialSampler struct {
	length uint64
	next   uint64
}

func (s *sequentialSampler) Initialize(length uint64) error {
	if length > math.MaxInt64 {
		return ErrOutOfRange
	}
	s.length = length
	s.next = 0
	return nil
}

func (s *sequentialSampler) Sample(count int) ([]uint64, error) {
	if count < 0 || uint64(count) > s.length {
		return nil, ErrOutOfRange
	}
	s.Reset()

	results := make([]uint64, count)
	for i := 0; i < count; i++ {
		ret, err := s.Next()
		if err != nil {
			return nil, err
		}
		results[i] = ret
	}
	return results, nil
}

func (s *sequentialSampler) Reset() {
	s.next = 0
}

func (s *sequentialSampler) Next() (uint64, error) {
	if s.next >= s.length {
		return 0, ErrOutOfRange
	}

	ret := s.next
	s.next++
	return ret, nil
}
