// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package pdqsort

import "fmt"

// Stats counts the strategies applied by a single SortStats call.
type Stats struct {
	// InsertionSorts is the number of small ranges finished by insertion sort.
	InsertionSorts int
	// AscendingRuns is the number of ranges found to be already ascending.
	AscendingRuns int
	// DescendingRuns is the number of ranges found to be descending and
	// reversed in place.
	DescendingRuns int
	// ThreeWayPartitions is the number of duplicate-collapsing partitions.
	ThreeWayPartitions int
	// Partitions is the number of binary partitions, including those that
	// escalated to block mode.
	Partitions int
	// BlockPartitions is the number of binary partitions that escalated to
	// block mode.
	BlockPartitions int
	// PartialInsertionExits is the number of ranges finished by partial
	// insertion sort after a partition that performed no swaps.
	PartialInsertionExits int
	// Shuffles is the number of times the bad partition allowance ran out.
	Shuffles int
	// HeapSorts is the number of ranges finished by the heapsort fallback.
	HeapSorts int
	// MaxDepth is the deepest recursion reached; the top-level range has
	// depth 0.
	MaxDepth int
}

// String returns a compact, single-line rendering of s.
func (s Stats) String() string {
	return fmt.Sprintf("insertion:%d ascending:%d descending:%d 3way:%d partition:%d block:%d partial:%d shuffle:%d heap:%d depth:%d",
		s.InsertionSorts, s.AscendingRuns, s.DescendingRuns, s.ThreeWayPartitions,
		s.Partitions, s.BlockPartitions, s.PartialInsertionExits, s.Shuffles,
		s.HeapSorts, s.MaxDepth)
}
