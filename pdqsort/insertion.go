// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package pdqsort

// insertionSort sorts data[lo:hi+1].
func insertionSort[T Number](data []T, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		v := data[i]
		j := i
		for j > lo && data[j-1] > v {
			data[j] = data[j-1]
			j--
		}
		data[j] = v
	}
}

// unguardedInsertionSort sorts data[lo:hi+1]. It requires lo > 0 and
// data[lo-1] to be no greater than any element of the range, which stops the
// scan without a bounds test.
func unguardedInsertionSort[T Number](data []T, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		v := data[i]
		j := i
		for data[j-1] > v {
			data[j] = data[j-1]
			j--
		}
		data[j] = v
	}
}

// partialInsertionSort attempts to insertion sort data[lo:hi+1] using at
// most partialInsertionLimit element shifts. It reports whether the range is
// now sorted. On failure the element being inserted is written back into the
// hole it left, so data remains a permutation of its input.
func partialInsertionSort[T Number](data []T, lo, hi int) bool {
	limit := partialInsertionLimit
	for i := lo + 1; i <= hi; i++ {
		v := data[i]
		j := i
		for j > lo && data[j-1] > v {
			if limit == 0 {
				data[j] = v
				return false
			}
			limit--
			data[j] = data[j-1]
			j--
		}
		data[j] = v
	}
	return true
}
