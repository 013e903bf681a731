// Package psort provides a parallel, stable merge sort for ordered slices.
// It is deliberately independent of package pdqsort and serves as the
// reference ordering that pdqsort results are checked against.
package psort

import (
	"cmp"
	"sort"

	"github.com/grailbio/base/traverse"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

const (
	serialThreshold    = 128
	insertionThreshold = 12
)

// Sort sorts data in ascending order, using up to parallelism goroutines.
// Floating point NaNs are ordered before all other values. Sort is stable.
func Sort[T constraints.Ordered](data []T, parallelism int) {
	if parallelism < 1 {
		panic("parallelism must be at least 1")
	}
	if len(data) < 2 {
		return
	}
	scratch := make([]T, len(data))
	mergeSort(data, scratch, parallelism)
}

func mergeSort[T constraints.Ordered](data, scratch []T, parallelism int) {
	if parallelism == 1 || len(data) < serialThreshold {
		sortSerial(data, scratch)
		return
	}

	// Sort the two halves in parallel, allocating half of our parallelism to
	// each.
	mid := len(data) / 2
	var g errgroup.Group
	g.Go(func() error {
		mergeSort(data[:mid], scratch[:mid], (parallelism+1)/2)
		return nil
	})
	mergeSort(data[mid:], scratch[mid:], parallelism/2)
	_ = g.Wait()

	merge(data[:mid], data[mid:], scratch, parallelism)
	_ = traverse.Limit(parallelism).Range(len(data), func(start, end int) error {
		copy(data[start:end], scratch[start:end])
		return nil
	})
}

func sortSerial[T constraints.Ordered](data, scratch []T) {
	if len(data) <= insertionThreshold {
		for i := 1; i < len(data); i++ {
			for j := i; j > 0 && cmp.Less(data[j], data[j-1]); j-- {
				data[j], data[j-1] = data[j-1], data[j]
			}
		}
		return
	}
	mid := len(data) / 2
	sortSerial(data[:mid], scratch[:mid])
	sortSerial(data[mid:], scratch[mid:])
	if !cmp.Less(data[mid], data[mid-1]) {
		return
	}
	mergeSerial(data[:mid], data[mid:], scratch)
	copy(data, scratch[:len(data)])
}

// merge merges the sorted slices a and b into out, which must have room for
// both. Large merges are split at the median of the longer input and the two
// halves merged in parallel.
func merge[T constraints.Ordered](a, b, out []T, parallelism int) {
	if parallelism == 1 || len(a)+len(b) < serialThreshold {
		mergeSerial(a, b, out)
		return
	}
	// Splitting on the longer input keeps the halves balanced. Elements of a
	// precede equal elements of b in both halves, so the merge stays stable.
	var r, s int
	if len(a) >= len(b) {
		r = len(a) / 2
		s = sort.Search(len(b), func(i int) bool {
			return !cmp.Less(b[i], a[r])
		})
	} else {
		s = len(b) / 2
		r = sort.Search(len(a), func(i int) bool {
			return cmp.Less(b[s], a[i])
		})
	}
	var g errgroup.Group
	g.Go(func() error {
		merge(a[:r], b[:s], out[:r+s], (parallelism+1)/2)
		return nil
	})
	merge(a[r:], b[s:], out[r+s:], parallelism/2)
	_ = g.Wait()
}

func mergeSerial[T constraints.Ordered](a, b, out []T) {
	var i, j, k int
	for i < len(a) && j < len(b) {
		if cmp.Less(b[j], a[i]) {
			out[k] = b[j]
			j++
		} else {
			out[k] = a[i]
			i++
		}
		k++
	}
	k += copy(out[k:], a[i:])
	copy(out[k:], b[j:])
}
