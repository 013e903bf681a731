// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package pdqsort implements pattern-defeating quicksort for slices of
// numbers. Sort is in place, unstable, runs in O(n log n) time in the worst
// case and uses O(1) auxiliary space beyond a fixed 128-byte scratch area
// owned by each call.
//
// Each range is handled by the first applicable strategy:
//
//   - ranges of at most 24 elements are insertion sorted;
//   - a range that is entirely ascending is left alone, and one that is
//     entirely descending is reversed in place;
//   - once the recursion depth budget (2*floor(log2(n))) is spent the range is
//     heap sorted;
//   - otherwise a pivot is chosen (median of three, or the ninther above 128
//     elements). If the range endpoints then compare equal, a single 3-way
//     pass splits off every element equal to the pivot. If not, the range is
//     partitioned with a two-pointer scan that escalates to branchless block
//     partitioning once it has performed enough swaps.
//
// A partition that performed no swaps is followed by a bounded insertion sort
// of both halves, which finishes nearly sorted inputs in linear time. Highly
// unbalanced partitions consume a small allowance; when it runs out the range
// is perturbed to break adversarial patterns.
//
// Sort, and every other function in this package, is safe to call
// concurrently on distinct slices.
//
// Floating point values must not include NaN when calling Sort: NaN is not
// ordered, so Sort keeps the multiset of values intact but makes no
// guarantee about where NaNs, or their neighbors, end up. SortFloats orders
// NaNs before all other values.
package pdqsort
