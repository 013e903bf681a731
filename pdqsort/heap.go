// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package pdqsort

// heapSort sorts data[lo:hi+1] with a binary max-heap rooted at lo.
func heapSort[T Number](data []T, lo, hi int) {
	n := hi - lo + 1
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, lo, i, n)
	}
	for end := n - 1; end > 0; end-- {
		data[lo], data[lo+end] = data[lo+end], data[lo]
		siftDown(data, lo, 0, end)
	}
}

// siftDown restores the heap property below root in the heap of n elements
// that starts at data[lo].
func siftDown[T Number](data []T, lo, root, n int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && data[lo+child] < data[lo+child+1] {
			child++
		}
		if !(data[lo+root] < data[lo+child]) {
			return
		}
		data[lo+root], data[lo+child] = data[lo+child], data[lo+root]
		root = child
	}
}
