package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/errors"
)

var commands = []struct {
	name     string
	callback func(ctx context.Context, out io.Writer, args []string) error
	help     string
}{
	{"validate", Validate, `Validate sorts every synthetic distribution with pdqsort and with the
reference merge sort, and prints PASS or FAIL per distribution. It fails if any
distribution does not match.`},
	{"bench", Bench, `Bench times pdqsort against the standard library's slices.Sort on large
inputs and writes one report row per scenario and repetition. Scenarios, size,
repetitions and seed may be read from a YAML file given by -config; flags set on
the command line override the file. The report is TSV by default, or JSON with
-format=json, and goes to stdout unless -out names a local path or s3:// URL.`},
}

func PrintHelp() {
	fmt.Fprintln(os.Stderr, "Subcommands:")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "%s: %s\n", c.name, c.help)
	}
}

func Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		PrintHelp()
		return errors.E(errors.Invalid, "no subcommand given")
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.callback(ctx, os.Stdout, args[1:])
		}
	}
	PrintHelp()
	return errors.E(errors.Invalid, "unknown command", args[0])
}
