package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/pdqsort/datagen"
	"github.com/grailbio/pdqsort/pdqsort"
	"github.com/grailbio/pdqsort/psort"
)

type validation struct {
	kind     datagen.Kind
	intsOK   bool
	floatsOK bool
	stats    pdqsort.Stats
}

func (v validation) ok() bool { return v.intsOK && v.floatsOK }

func Validate(ctx context.Context, out io.Writer, args []string) error {
	var (
		flags           flag.FlagSet
		nFlag           = flags.Int("n", 1000, "Number of elements in each distribution")
		seedFlag        = flags.Int64("seed", 1, "Seed for the random distributions")
		parallelismFlag = flags.Int("parallelism", runtime.NumCPU(), "Number of distributions checked concurrently")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *nFlag < 0 {
		return errors.E(errors.Invalid, "validate: -n must not be negative, got", fmt.Sprint(*nFlag))
	}
	if *parallelismFlag < 1 {
		return errors.E(errors.Invalid, "validate: -parallelism must be positive, got", fmt.Sprint(*parallelismFlag))
	}
	kinds := datagen.Kinds()
	results := make([]validation, len(kinds))
	err := traverse.Limit(*parallelismFlag).Each(len(kinds), func(i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		results[i] = validateKind(kinds[i], *nFlag, *seedFlag)
		return nil
	})
	if err != nil {
		return errors.E(err, "validate")
	}

	var failed []string
	for _, r := range results {
		status := "PASS"
		if !r.ok() {
			status = "FAIL"
			failed = append(failed, r.kind.String())
			log.Error.Printf("validate: %s: ints ok=%v floats ok=%v", r.kind, r.intsOK, r.floatsOK)
		}
		log.Debug.Printf("validate: %s: %v", r.kind, r.stats)
		if _, err := fmt.Fprintf(out, "%s\t%s\n", r.kind, status); err != nil {
			return err
		}
	}
	if len(failed) > 0 {
		return errors.E(errors.Precondition, "validate: sort mismatch for", strings.Join(failed, ","))
	}
	log.Printf("validate: %d distributions of %d elements passed", len(kinds), *nFlag)
	return nil
}

// validateKind sorts one distribution, as ints and as float64s, with both
// pdqsort and psort and compares the results.
func validateKind(kind datagen.Kind, n int, seed int64) validation {
	v := validation{kind: kind}

	ints := datagen.Ints(kind, n, seed)
	want := slices.Clone(ints)
	psort.Sort(want, 1)
	v.stats = pdqsort.SortStats(ints)
	v.intsOK = slices.Equal(want, ints)

	floats := datagen.Float64s(kind, n, seed)
	wantFloats := slices.Clone(floats)
	psort.Sort(wantFloats, 1)
	pdqsort.Sort(floats)
	v.floatsOK = slices.Equal(wantFloats, floats)
	return v
}
