package cmd

import (
	"context"
	"flag"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/pdqsort/datagen"
	"github.com/grailbio/pdqsort/pdqsort"
)

// benchRow is one line of the benchmark report.
type benchRow struct {
	Scenario        string  `tsv:"scenario" json:"scenario"`
	Rep             int     `tsv:"rep" json:"rep"`
	N               int     `tsv:"n" json:"n"`
	NativeMillis    float64 `tsv:"native_ms" json:"native_ms"`
	PdqsortMillis   float64 `tsv:"pdqsort_ms" json:"pdqsort_ms"`
	Slowdown        float64 `tsv:"slowdown" json:"slowdown"`
	Valid           bool    `tsv:"valid" json:"valid"`
	Partitions      int     `tsv:"partitions" json:"partitions"`
	BlockPartitions int     `tsv:"block_partitions" json:"block_partitions"`
	ThreeWay        int     `tsv:"three_way" json:"three_way"`
	Runs            int     `tsv:"runs" json:"runs"`
	Shuffles        int     `tsv:"shuffles" json:"shuffles"`
	HeapSorts       int     `tsv:"heapsorts" json:"heapsorts"`
	MaxDepth        int     `tsv:"max_depth" json:"max_depth"`
}

func Bench(ctx context.Context, out io.Writer, args []string) error {
	var (
		flags         flag.FlagSet
		nFlag         = flags.Int("n", 5000000, "Number of elements per scenario")
		repsFlag      = flags.Int("reps", 1, "Repetitions of each scenario")
		seedFlag      = flags.Int64("seed", 1, "Seed for the random scenarios; repetition i uses seed+i")
		scenariosFlag = flags.String("scenarios", "random,reverse,dupes", "Comma-separated scenarios: "+kindList())
		configFlag    = flags.String("config", "", "YAML file with size, reps, seed and scenarios")
		formatFlag    = flags.String("format", "tsv", "Report format, tsv or json")
		outFlag       = flags.String("out", "", "Report path; stdout if empty")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if len(flags.Args()) > 0 {
		return errors.E(errors.Invalid, "bench: unexpected arguments", strings.Join(flags.Args(), " "))
	}
	if *formatFlag != "tsv" && *formatFlag != "json" {
		return errors.E(errors.Invalid, "bench: unknown format", *formatFlag)
	}

	cfg := defaultBenchConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = loadBenchConfig(ctx, *configFlag); err != nil {
			return err
		}
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Size = *nFlag
		case "reps":
			cfg.Reps = *repsFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "scenarios":
			cfg.Scenarios = strings.Split(*scenariosFlag, ",")
		}
	})
	if err := cfg.check(); err != nil {
		return err
	}
	kinds, err := cfg.kinds()
	if err != nil {
		return err
	}

	rows, err := runBench(ctx, cfg, kinds)
	if err != nil {
		return err
	}
	if err := writeReport(ctx, out, *outFlag, *formatFlag, rows); err != nil {
		return err
	}
	var invalid []string
	for _, r := range rows {
		if !r.Valid {
			invalid = append(invalid, r.Scenario)
		}
	}
	if len(invalid) > 0 {
		return errors.E(errors.Precondition, "bench: wrong result for", strings.Join(invalid, ","))
	}
	return nil
}

func runBench(ctx context.Context, cfg benchConfig, kinds []datagen.Kind) ([]benchRow, error) {
	// Warm up caches and the branch predictor.
	pdqsort.Sort(datagen.Float64s(datagen.Random, 1000, cfg.Seed))

	var rows []benchRow
	for _, kind := range kinds {
		for rep := 0; rep < cfg.Reps; rep++ {
			if err := ctx.Err(); err != nil {
				return nil, errors.E(err, "bench")
			}
			row := benchOne(kind, cfg.Size, cfg.Seed+int64(rep))
			row.Rep = rep
			log.Printf("bench: %s rep %d: native %.2fms pdqsort %.2fms (%.2fx)",
				row.Scenario, rep, row.NativeMillis, row.PdqsortMillis, row.Slowdown)
			if !row.Valid {
				log.Error.Printf("bench: %s rep %d: pdqsort result differs from slices.Sort", row.Scenario, rep)
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func benchOne(kind datagen.Kind, n int, seed int64) benchRow {
	native := datagen.Float64s(kind, n, seed)
	ours := slices.Clone(native)

	start := time.Now()
	slices.Sort(native)
	nativeTime := time.Since(start)

	start = time.Now()
	stats := pdqsort.SortStats(ours)
	ourTime := time.Since(start)
	log.Debug.Printf("bench: %s: %v", kind, stats)

	row := benchRow{
		Scenario:        kind.String(),
		N:               n,
		NativeMillis:    millis(nativeTime),
		PdqsortMillis:   millis(ourTime),
		Valid:           slices.Equal(native, ours),
		Partitions:      stats.Partitions,
		BlockPartitions: stats.BlockPartitions,
		ThreeWay:        stats.ThreeWayPartitions,
		Runs:            stats.AscendingRuns + stats.DescendingRuns,
		Shuffles:        stats.Shuffles,
		HeapSorts:       stats.HeapSorts,
		MaxDepth:        stats.MaxDepth,
	}
	if nativeTime > 0 {
		row.Slowdown = float64(ourTime) / float64(nativeTime)
	}
	return row
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func kindList() string {
	var names []string
	for _, k := range datagen.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ",")
}
