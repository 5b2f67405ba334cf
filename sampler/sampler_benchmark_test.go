// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"
)

func UniformBenchmark(b *testing.B, s Uniform, size uint64, toSample int) {
	err := s.Initialize(size)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Sample(toSample)
	}
}

func MultiBenchmark(b *testing.B, s Multi, size, count uint64) {
	err := s.Initialize(size, count)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Sample()
	}
}

func BenchmarkUniform30Of35000(b *testing.B) {
	UniformBenchmark(b, NewUniform(), 35000, 30)
}

func BenchmarkUniformPermutation4096(b *testing.B) {
	UniformBenchmark(b, NewUniform(), 4096, 4096)
}

func BenchmarkMultiOversample1024To4096(b *testing.B) {
	MultiBenchmark(b, NewMulti(), 1024, 4096)
}

func BenchmarkMultiUndersample35000To30(b *testing.B) {
	MultiBenchmark(b, NewMulti(), 35000, 30)
}
