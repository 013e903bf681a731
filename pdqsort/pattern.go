// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package pdqsort

// fixRun reports whether data[lo:hi+1] is sorted, reversing it first if it
// is entirely descending. The first four elements are used to guess a
// direction; the guess is then confirmed by a full scan.
//
// A range whose endpoints are equal is left to the 3-way partition, which
// handles a constant range in one pass as well.
func (s *sorter[T]) fixRun(lo, hi int) bool {
	data := s.data
	if hi-lo+1 < 4 || data[lo] == data[hi] {
		return false
	}
	ascending, descending := true, true
	for k := lo; k < lo+3; k++ {
		if data[k] > data[k+1] {
			ascending = false
		}
		if data[k] < data[k+1] {
			descending = false
		}
	}
	switch {
	case ascending:
		i := lo + 1
		for i <= hi && data[i-1] <= data[i] {
			i++
		}
		if i <= hi {
			return false
		}
		if st := s.stats; st != nil {
			st.AscendingRuns++
		}
		return true
	case descending:
		i := lo + 1
		for i <= hi && data[i-1] >= data[i] {
			i++
		}
		if i <= hi {
			return false
		}
		reverseRange(data, lo, hi)
		if st := s.stats; st != nil {
			st.DescendingRuns++
		}
		return true
	}
	return false
}

// shufflePattern swaps two pairs of elements of data[lo:hi+1] around its
// midpoint, perturbing inputs built to produce unbalanced partitions.
func shufflePattern[T Number](data []T, lo, hi int) {
	n := hi - lo + 1
	if n <= 8 {
		return
	}
	k := lo + n/2
	data[lo], data[k] = data[k], data[lo]
	data[hi], data[k+1] = data[k+1], data[hi]
}
