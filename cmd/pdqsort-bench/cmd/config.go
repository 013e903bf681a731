package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/pdqsort/datagen"
	"gopkg.in/yaml.v2"
)

// benchConfig describes a benchmark run. It can be loaded from YAML, e.g.
//
//	size: 1000000
//	reps: 3
//	seed: 1
//	scenarios: [random, reverse, dupes]
type benchConfig struct {
	Size      int      `yaml:"size"`
	Reps      int      `yaml:"reps"`
	Seed      int64    `yaml:"seed"`
	Scenarios []string `yaml:"scenarios"`
}

func defaultBenchConfig() benchConfig {
	return benchConfig{
		Size:      5000000,
		Reps:      1,
		Seed:      1,
		Scenarios: []string{"random", "reverse", "dupes"},
	}
}

// loadBenchConfig reads a benchConfig from path. Fields missing from the file
// keep their defaults.
func loadBenchConfig(ctx context.Context, path string) (benchConfig, error) {
	cfg := defaultBenchConfig()
	data, err := file.ReadFile(ctx, path)
	if err != nil {
		return cfg, errors.E(err, "bench: read config", path)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, errors.E(errors.Invalid, err, "bench: parse config", path)
	}
	return cfg, nil
}

func (c benchConfig) check() error {
	if c.Size < 0 {
		return errors.E(errors.Invalid, "bench: size must not be negative, got", fmt.Sprint(c.Size))
	}
	if c.Reps < 1 {
		return errors.E(errors.Invalid, "bench: reps must be positive, got", fmt.Sprint(c.Reps))
	}
	if len(c.Scenarios) == 0 {
		return errors.E(errors.Invalid, "bench: no scenarios")
	}
	return nil
}

// kinds resolves the scenario names.
func (c benchConfig) kinds() ([]datagen.Kind, error) {
	kinds := make([]datagen.Kind, 0, len(c.Scenarios))
	for _, name := range c.Scenarios {
		k, err := datagen.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return nil, errors.E(err, "bench")
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
