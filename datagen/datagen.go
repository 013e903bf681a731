// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package datagen generates the synthetic input distributions used to
// validate and benchmark sorts. Every generator is deterministic for a given
// seed.
package datagen

import (
	"math/rand"
	"strings"

	fuzz "github.com/google/gofuzz"
	"github.com/grailbio/base/errors"
)

// Kind names an input distribution.
type Kind int

const (
	// Random draws values uniformly from [0, n).
	Random Kind = iota
	// Sorted is 0, 1, ..., n-1.
	Sorted
	// Reverse is n, n-1, ..., 1.
	Reverse
	// Dupes draws values uniformly from [0, 20).
	Dupes
	// AllEqual repeats the value 7.
	AllEqual
	// PipeOrgan ascends to n/2 then descends to 0.
	PipeOrgan
	// Sawtooth repeats ascending runs of length about n/10.
	Sawtooth
	// Killer is Musser's median-of-3 killer sequence.
	Killer
	// Fuzz fills the slice using gofuzz, covering the full value range.
	Fuzz

	maxKind
)

var kindNames = [...]string{
	Random:    "random",
	Sorted:    "sorted",
	Reverse:   "reverse",
	Dupes:     "dupes",
	AllEqual:  "equal",
	PipeOrgan: "organ",
	Sawtooth:  "sawtooth",
	Killer:    "killer",
	Fuzz:      "fuzz",
}

// String returns the name of kind k, as accepted by ParseKind.
func (k Kind) String() string {
	if k < 0 || k >= maxKind {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind returns the kind named s.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}
	return 0, errors.E(errors.Invalid, "datagen: unknown distribution", s)
}

// Kinds returns every distribution, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, maxKind)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Ints returns n ints drawn from distribution k.
func Ints(k Kind, n int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	data := make([]int, n)
	switch k {
	case Random:
		for i := range data {
			data[i] = r.Intn(n)
		}
	case Sorted:
		for i := range data {
			data[i] = i
		}
	case Reverse:
		for i := range data {
			data[i] = n - i
		}
	case Dupes:
		for i := range data {
			data[i] = r.Intn(20)
		}
	case AllEqual:
		for i := range data {
			data[i] = 7
		}
	case PipeOrgan:
		half := (n + 1) / 2
		for i := range data {
			if i < half {
				data[i] = i + 1
			} else {
				data[i] = n - 1 - i
			}
		}
	case Sawtooth:
		period := max(1, n/10)
		for i := range data {
			data[i] = i % period
		}
	case Killer:
		medianOf3Killer(data)
	case Fuzz:
		f := fuzz.New().RandSource(r)
		for i := range data {
			f.Fuzz(&data[i])
		}
	default:
		panic("datagen: unknown kind " + k.String())
	}
	return data
}

// Float64s returns n float64s drawn from distribution k. Random and Fuzz
// produce non-integral values; the other kinds convert the output of Ints.
func Float64s(k Kind, n int, seed int64) []float64 {
	data := make([]float64, n)
	switch k {
	case Random:
		r := rand.New(rand.NewSource(seed))
		for i := range data {
			data[i] = r.Float64() * float64(n)
		}
	case Fuzz:
		r := rand.New(rand.NewSource(seed))
		f := fuzz.New().RandSource(r)
		for i := range data {
			f.Fuzz(&data[i])
		}
	default:
		for i, v := range Ints(k, n, seed) {
			data[i] = float64(v)
		}
	}
	return data
}

// medianOf3Killer fills data with a permutation of 1..m, where m is len(data)
// rounded down to a multiple of 4, that drives a median-of-three quicksort
// to quadratic time (D. R. Musser, "Introspective Sorting and Selection
// Algorithms", 1997). Any remaining tail is filled with m+1, m+2, ...
func medianOf3Killer(data []int) {
	m := len(data) &^ 3
	k := m / 2
	for i := 1; i <= k; i++ {
		if i%2 == 1 {
			data[i-1] = i
			data[i] = k + i
		}
		data[k+i-1] = 2 * i
	}
	for i := m; i < len(data); i++ {
		data[i] = i + 1
	}
}
