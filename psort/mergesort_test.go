package psort

import (
	"math"
	"math/rand"
	"reflect"
	"slices"
	"testing"
)

type TestInput int

const (
	Random TestInput = iota
	Ascending
	Descending
	FewUnique
)

func TestSort(t *testing.T) {
	tests := []struct {
		input       TestInput
		size        int
		parallelism int
		reps        int
	}{
		{
			input:       Random,
			size:        10000,
			parallelism: 7,
			reps:        20,
		},
		{
			input:       Random,
			size:        1000000,
			parallelism: 6,
			reps:        2,
		},
		{
			input:       Random,
			size:        5000,
			parallelism: 1,
			reps:        5,
		},
		{
			input:       Ascending,
			size:        10000,
			parallelism: 9,
			reps:        1,
		},
		{
			input:       Descending,
			size:        10000,
			parallelism: 8,
			reps:        1,
		},
		{
			input:       FewUnique,
			size:        10000,
			parallelism: 4,
			reps:        3,
		},
	}

	for _, test := range tests {
		random := rand.New(rand.NewSource(0))
		for rep := 0; rep < test.reps; rep++ {
			in := make([]int, test.size)
			switch test.input {
			case Random:
				for i := range in {
					in[i] = random.Intn(test.size)
				}
			case Ascending:
				for i := range in {
					in[i] = i
				}
			case Descending:
				for i := range in {
					in[i] = len(in) - i
				}
			case FewUnique:
				for i := range in {
					in[i] = random.Intn(10)
				}
			}
			expected := slices.Clone(in)
			slices.Sort(expected)
			Sort(in, test.parallelism)
			if !reflect.DeepEqual(expected, in) {
				t.Errorf("Wrong sort result: want %v\n, got %v\n", expected, in)
			}
		}
	}
}

func TestSortSmall(t *testing.T) {
	for n := 0; n < 40; n++ {
		in := rand.New(rand.NewSource(int64(n))).Perm(n)
		Sort(in, 3)
		for i := range in {
			if in[i] != i {
				t.Fatalf("n=%d: got %v", n, in)
			}
		}
	}
}

func TestSortNaN(t *testing.T) {
	in := []float64{3, math.NaN(), 1, math.Inf(-1), 2, math.NaN()}
	Sort(in, 2)
	if !math.IsNaN(in[0]) || !math.IsNaN(in[1]) {
		t.Fatalf("NaNs not first: %v", in)
	}
	if want := []float64{math.Inf(-1), 1, 2, 3}; !reflect.DeepEqual(in[2:], want) {
		t.Errorf("got %v, want %v", in[2:], want)
	}
}

func TestSortBadParallelism(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Sort([]int{2, 1}, 0)
}

func BenchmarkSort(b *testing.B) {
	random := rand.New(rand.NewSource(0))
	in := make([]float64, 1<<20)
	for i := range in {
		in[i] = random.Float64()
	}
	data := make([]float64, len(in))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, in)
		Sort(data, 8)
	}
}
