// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package pdqsort

import (
	"fmt"
	"slices"
	"testing"

	"github.com/grailbio/pdqsort/datagen"
)

var benchSizes = []int{100, 10000, 1000000}

func BenchmarkSort(b *testing.B) {
	for _, kind := range datagen.Kinds() {
		for _, n := range benchSizes {
			in := datagen.Float64s(kind, n, 1)
			data := make([]float64, n)
			b.Run(fmt.Sprintf("%s/%d", kind, n), func(b *testing.B) {
				b.SetBytes(int64(n * 8))
				for i := 0; i < b.N; i++ {
					copy(data, in)
					Sort(data)
				}
			})
		}
	}
}

func BenchmarkStdlib(b *testing.B) {
	for _, kind := range datagen.Kinds() {
		for _, n := range benchSizes {
			in := datagen.Float64s(kind, n, 1)
			data := make([]float64, n)
			b.Run(fmt.Sprintf("%s/%d", kind, n), func(b *testing.B) {
				b.SetBytes(int64(n * 8))
				for i := 0; i < b.N; i++ {
					copy(data, in)
					slices.Sort(data)
				}
			})
		}
	}
}

func BenchmarkSortInts(b *testing.B) {
	in := datagen.Ints(datagen.Random, 1<<20, 1)
	data := make([]int, len(in))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, in)
		Ints(data)
	}
}
