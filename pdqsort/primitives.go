// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package pdqsort

// offsetBuffers records, for the current pair of block windows, the offsets
// of elements that sit on the wrong side of the pivot. left is indexed from
// the start of the left window, right from the end of the right window.
type offsetBuffers struct {
	left  [blockSize]uint8
	right [blockSize]uint8
}

// b2i converts b to 0 or 1. The compiler lowers it to a flag-setting
// instruction, so callers get a count without a data-dependent branch.
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// reverseRange reverses data[lo:hi+1] in place.
func reverseRange[T Number](data []T, lo, hi int) {
	for lo < hi {
		data[lo], data[hi] = data[hi], data[lo]
		lo++
		hi--
	}
}

// sort3 orders data[a] <= data[b] <= data[c].
func sort3[T Number](data []T, a, b, c int) {
	if data[b] < data[a] {
		data[a], data[b] = data[b], data[a]
	}
	if data[c] < data[b] {
		data[b], data[c] = data[c], data[b]
	}
	if data[b] < data[a] {
		data[a], data[b] = data[b], data[a]
	}
}
