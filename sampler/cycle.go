// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "errors"

// Cycle produces indices from the wrapped iterator indefinitely. When the
// current pass is exhausted the iterator is reset and the new pass continues
// where the old one ended, so callers never observe an end-of-pass condition.
type Cycle interface {
	Next() (uint64, error)
}

// NewCycle returns a sampler that endlessly re-runs passes of [it].
func NewCycle(it Iterator) Cycle { return &cycler{it: it} }

type cycler struct {
	it Iterator
}

func (c *cycler) Next() (uint64, error) {
	next, err := c.it.Next()
	if !errors.Is(err, ErrOutOfRange) {
		return next, err
	}

	c.it.Reset()
	next, err = c.it.Next()
	if errors.Is(err, ErrOutOfRange) {
		// The pass is empty even after a reset, so there is nothing to cycle
		// through.
		return 0, ErrEmptyPool
	}
	return next, err
}
