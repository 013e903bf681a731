// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package pdqsort

// choosePivot moves the pivot estimate of data[lo:hi+1] to mid, where
// mid = lo + n/2. Ranges up to nintherThreshold use the median of the first,
// middle and last elements. Larger ranges use the ninther: the median of the
// medians of three evenly spaced triples.
//
// As a side effect data[lo] <= data[mid] <= data[hi] for small ranges, and
// data[lo] and data[hi] are the minimum and maximum of their triples for
// large ones.
func choosePivot[T Number](data []T, lo, mid, hi int) {
	n := hi - lo + 1
	if n <= nintherThreshold {
		sort3(data, lo, mid, hi)
		return
	}
	s := n >> 3
	sort3(data, lo, lo+s, lo+2*s)
	sort3(data, mid-s, mid, mid+s)
	sort3(data, hi-2*s, hi-s, hi)
	sort3(data, lo+s, mid, hi-s)
}
