// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package pdqsort

import (
	"math/bits"

	"github.com/grailbio/base/must"
	"golang.org/x/exp/constraints"
)

const (
	// insertionSortThreshold is the size at or below which a range is
	// insertion sorted.
	insertionSortThreshold = 24
	// nintherThreshold is the size above which the pivot is the ninther
	// rather than the median of three.
	nintherThreshold = 128
	// blockSize is the width of each window scanned by block partitioning.
	// Offsets within a window are stored as bytes.
	blockSize = 64
	// entropyBudget is the number of swaps the scalar partitioner performs
	// before escalating to block partitioning.
	entropyBudget = 24
	// maxBadAllowed is the bad partition allowance of a fresh range.
	maxBadAllowed = 8
	// shuffledBadAllowed is the allowance restored after a shuffle.
	shuffledBadAllowed = 4
	// partialInsertionLimit is the number of element shifts a partial
	// insertion sort may perform before giving up.
	partialInsertionLimit = 8
)

func init() {
	must.Truef(blockSize > 0 && blockSize <= 1<<8,
		"pdqsort: block size %d does not fit byte offsets", blockSize)
}

// Number is the set of element types accepted by Sort.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sort sorts data in ascending order. It is not stable.
func Sort[T Number](data []T) {
	if len(data) < 2 {
		return
	}
	s := sorter[T]{data: data}
	s.loop(0, len(data)-1, maxDepth(len(data)), maxBadAllowed, true, 0)
}

// SortStats sorts data exactly as Sort does and returns counters describing
// the strategies that were applied.
func SortStats[T Number](data []T) Stats {
	var stats Stats
	if len(data) < 2 {
		return stats
	}
	s := sorter[T]{data: data, stats: &stats}
	s.loop(0, len(data)-1, maxDepth(len(data)), maxBadAllowed, true, 0)
	return stats
}

// Ints sorts a slice of ints in ascending order.
func Ints(x []int) { Sort(x) }

// Float64s sorts a slice of float64s in ascending order, NaNs first.
func Float64s(x []float64) { SortFloats(x) }

// Float32s sorts a slice of float32s in ascending order, NaNs first.
func Float32s(x []float32) { SortFloats(x) }

// SortFloats sorts data in ascending order. NaN values are ordered before
// all other values, including negative infinity.
func SortFloats[F constraints.Float](data []F) {
	nans := 0
	for i, v := range data {
		if v != v {
			data[i], data[nans] = data[nans], data[i]
			nans++
		}
	}
	Sort(data[nans:])
}

// IsSorted reports whether data is sorted in ascending order.
func IsSorted[T Number](data []T) bool {
	for i := len(data) - 1; i > 0; i-- {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// maxDepth returns the depth budget for a slice of n elements,
// 2*floor(log2(n)).
func maxDepth(n int) int {
	return 2 * (bits.Len(uint(n)) - 1)
}

// sorter holds the state of a single Sort call. The offset buffers live
// here so that concurrent calls never share scratch space.
type sorter[T Number] struct {
	data    []T
	offsets offsetBuffers
	stats   *Stats
}

// loop sorts data[lo:hi+1]. The larger side of every partition is handled by
// the loop itself and only the smaller side recurses, so the stack depth is
// bounded by the depth budget.
//
// A range that is not leftmost is preceded by an element no greater than any
// of its own; insertion sort uses it as a sentinel.
func (s *sorter[T]) loop(lo, hi, limit, badAllowed int, leftmost bool, depth int) {
	data := s.data
	if st := s.stats; st != nil && depth > st.MaxDepth {
		st.MaxDepth = depth
	}
	for {
		n := hi - lo + 1
		if n <= insertionSortThreshold {
			if n > 1 {
				if leftmost {
					insertionSort(data, lo, hi)
				} else {
					unguardedInsertionSort(data, lo, hi)
				}
				if st := s.stats; st != nil {
					st.InsertionSorts++
				}
			}
			return
		}

		if badAllowed == maxBadAllowed && s.fixRun(lo, hi) {
			return
		}

		if limit <= 0 {
			heapSort(data, lo, hi)
			if st := s.stats; st != nil {
				st.HeapSorts++
			}
			return
		}

		mid := lo + n>>1
		choosePivot(data, lo, mid, hi)

		if data[lo] == data[hi] {
			lt, gt := partition3Way(data, lo, hi)
			if st := s.stats; st != nil {
				st.ThreeWayPartitions++
			}
			if lt > lo {
				s.loop(lo, lt-1, limit-1, badAllowed, leftmost, depth+1)
			}
			lo = gt + 1
			leftmost = false
			limit--
			continue
		}

		data[lo], data[mid] = data[mid], data[lo]
		pivot, clean := s.partition(lo, hi)
		if clean && partialInsertionSort(data, lo, pivot) && partialInsertionSort(data, pivot+1, hi) {
			if st := s.stats; st != nil {
				st.PartialInsertionExits++
			}
			return
		}

		leftLen, rightLen := pivot-lo, hi-pivot
		if leftLen < n>>3 || rightLen < n>>3 {
			badAllowed--
			if badAllowed == 0 {
				shufflePattern(data, lo, hi)
				if st := s.stats; st != nil {
					st.Shuffles++
				}
				badAllowed = shuffledBadAllowed
				continue
			}
			limit--
		} else if badAllowed < maxBadAllowed {
			badAllowed++
		}
		limit--

		if leftLen < rightLen {
			if leftLen > 0 {
				s.loop(lo, pivot-1, limit, badAllowed, leftmost, depth+1)
			}
			lo = pivot + 1
			leftmost = false
		} else {
			if rightLen > 0 {
				s.loop(pivot+1, hi, limit, badAllowed, false, depth+1)
			}
			hi = pivot - 1
		}
		if lo >= hi {
			return
		}
	}
}
