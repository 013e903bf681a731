// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package datagen_test

import (
	"slices"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/pdqsort/datagen"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestParseKind(t *testing.T) {
	for _, k := range datagen.Kinds() {
		got, err := datagen.ParseKind(k.String())
		assert.NoError(t, err)
		expect.EQ(t, got, k)
	}
	got, err := datagen.ParseKind("Organ")
	assert.NoError(t, err)
	expect.EQ(t, got, datagen.PipeOrgan)

	_, err = datagen.ParseKind("bogus")
	expect.True(t, errors.Is(errors.Invalid, err))
	expect.HasSubstr(t, err.Error(), "bogus")
}

func TestDeterministic(t *testing.T) {
	for _, k := range datagen.Kinds() {
		a := datagen.Float64s(k, 500, 3)
		b := datagen.Float64s(k, 500, 3)
		expect.EQ(t, len(a), 500)
		expect.True(t, slices.Equal(a, b))
		expect.EQ(t, len(datagen.Ints(k, 333, 3)), 333)
	}
}

func TestShapes(t *testing.T) {
	expect.EQ(t, datagen.Ints(datagen.Sorted, 4, 0), []int{0, 1, 2, 3})
	expect.EQ(t, datagen.Ints(datagen.Reverse, 4, 0), []int{4, 3, 2, 1})
	expect.EQ(t, datagen.Ints(datagen.AllEqual, 3, 0), []int{7, 7, 7})
	expect.EQ(t, datagen.Ints(datagen.PipeOrgan, 6, 0), []int{1, 2, 3, 2, 1, 0})
	expect.EQ(t, datagen.Ints(datagen.Sawtooth, 20, 0), []int{0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1})

	organ := datagen.Ints(datagen.PipeOrgan, 1000, 0)
	expect.EQ(t, organ[0], 1)
	expect.EQ(t, organ[499], 500)
	expect.EQ(t, organ[500], 499)
	expect.EQ(t, organ[999], 0)

	for _, v := range datagen.Ints(datagen.Dupes, 1000, 1) {
		expect.True(t, v >= 0 && v < 20)
	}
}

func TestKiller(t *testing.T) {
	expect.EQ(t, datagen.Ints(datagen.Killer, 8, 0), []int{1, 5, 3, 7, 2, 4, 6, 8})
	for _, n := range []int{8, 100, 1001, 1002, 1003} {
		data := datagen.Ints(datagen.Killer, n, 0)
		slices.Sort(data)
		for i, v := range data {
			if v != i+1 {
				t.Fatalf("n=%d: not a permutation of 1..n: %v", n, data)
			}
		}
	}
}
