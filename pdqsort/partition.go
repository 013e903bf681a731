// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package pdqsort

// partition partitions data[lo:hi+1] around the pivot stored at data[lo] and
// returns the pivot's final index. Elements left of it are <= pivot,
// elements right of it are >= pivot. The second result reports whether the
// range was already partitioned, i.e. no swaps were needed.
//
// Scanning starts with a scalar two-pointer loop. Once entropyBudget swaps
// have been made and more than two blocks remain between the cursors, the
// data is presumed random and the rest is handed to partitionBlock.
func (s *sorter[T]) partition(lo, hi int) (int, bool) {
	data := s.data
	if st := s.stats; st != nil {
		st.Partitions++
	}
	pivot := data[lo]
	i, j := lo+1, hi
	budget := entropyBudget
	clean := true
	for {
		for i <= j && data[i] < pivot {
			i++
		}
		for j > lo && data[j] > pivot {
			j--
		}
		if i >= j {
			break
		}
		data[i], data[j] = data[j], data[i]
		i++
		j--
		clean = false
		if budget--; budget <= 0 && j-i > 2*blockSize {
			return s.partitionBlock(lo, pivot, i, j), false
		}
	}
	data[lo], data[j] = data[j], data[lo]
	return j, clean
}

// partitionBlock continues a partition of data[lo:] around pivot, which is
// stored at data[lo]. Every element of data[lo+1:i] is <= pivot and every
// element of data[j+1:hi+1] is >= pivot; data[i:j+1] is unscanned.
//
// While at least two blocks remain, one window of blockSize elements is
// taken from each end. The offsets of misplaced elements in each window are
// recorded without branching on the comparisons, then misplaced pairs are
// swapped. A window whose misplaced elements were all resolved is retired;
// the other is scanned again on the next iteration. The remainder is
// finished by the scalar loop.
func (s *sorter[T]) partitionBlock(lo int, pivot T, i, j int) int {
	data := s.data
	if st := s.stats; st != nil {
		st.BlockPartitions++
	}
	offL, offR := &s.offsets.left, &s.offsets.right
	for j-i >= 2*blockSize {
		numL, k := 0, 0
		for ; k+4 <= blockSize; k += 4 {
			offL[numL] = uint8(k)
			numL += b2i(data[i+k] > pivot)
			offL[numL] = uint8(k + 1)
			numL += b2i(data[i+k+1] > pivot)
			offL[numL] = uint8(k + 2)
			numL += b2i(data[i+k+2] > pivot)
			offL[numL] = uint8(k + 3)
			numL += b2i(data[i+k+3] > pivot)
		}
		for ; k < blockSize; k++ {
			offL[numL] = uint8(k)
			numL += b2i(data[i+k] > pivot)
		}

		numR := 0
		for k = 0; k+4 <= blockSize; k += 4 {
			offR[numR] = uint8(k)
			numR += b2i(data[j-k] < pivot)
			offR[numR] = uint8(k + 1)
			numR += b2i(data[j-k-1] < pivot)
			offR[numR] = uint8(k + 2)
			numR += b2i(data[j-k-2] < pivot)
			offR[numR] = uint8(k + 3)
			numR += b2i(data[j-k-3] < pivot)
		}
		for ; k < blockSize; k++ {
			offR[numR] = uint8(k)
			numR += b2i(data[j-k] < pivot)
		}

		for x := 0; x < min(numL, numR); x++ {
			l, r := i+int(offL[x]), j-int(offR[x])
			data[l], data[r] = data[r], data[l]
		}

		switch {
		case numL > numR:
			j -= blockSize
		case numL < numR:
			i += blockSize
		default:
			i += blockSize
			j -= blockSize
		}
	}

	for {
		for i <= j && data[i] < pivot {
			i++
		}
		for j > lo && data[j] > pivot {
			j--
		}
		if i >= j {
			break
		}
		data[i], data[j] = data[j], data[i]
		i++
		j--
	}
	data[lo], data[j] = data[j], data[lo]
	return j
}

// partition3Way partitions data[lo:hi+1] around the value of data[lo] in a
// single Dutch national flag pass. It returns the bounds of the run of
// elements equal to the pivot: data[lo:lt] < pivot, data[lt:gt+1] == pivot
// and data[gt+1:hi+1] > pivot.
func partition3Way[T Number](data []T, lo, hi int) (lt, gt int) {
	pivot := data[lo]
	lt, gt = lo, hi
	for j := lo; j <= gt; {
		switch v := data[j]; {
		case v < pivot:
			data[lt], data[j] = data[j], data[lt]
			lt++
			j++
		case v > pivot:
			data[j], data[gt] = data[gt], data[j]
			gt--
		default:
			j++
		}
	}
	return lt, gt
}
