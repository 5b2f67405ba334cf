// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sampler provides index-sequence producers for enumerating a pool of
// indexable items, typically to feed a training loop. A sampler is configured
// with the pool size and then produces passes of indices in [0, length),
// either in order, as a random permutation, or stretched/shrunk to a fixed
// number of draws.
package sampler

import "errors"

var (
	// ErrOutOfRange is returned when a pass has produced every index it was
	// configured to produce, or when a requested count can't be satisfied.
	ErrOutOfRange = errors.New("out of range")

	// ErrEmptyPool is returned when random draws are requested from a pool
	// with no indices.
	ErrEmptyPool = errors.New("cannot draw from an empty pool")
)

// Iterator produces one pass of indices, one index per call to Next. Reset
// restarts the pass; randomized iterators draw fresh randomness on each pass.
type Iterator interface {
	Reset()
	Next() (uint64, error)
}
