// pdqsort-bench validates package pdqsort against a reference sort and
// benchmarks it against the standard library.
//
//	pdqsort-bench [-log=level] validate [-n=1000] [-seed=1] [-parallelism=P]
//	pdqsort-bench [-log=level] bench [-n=5000000] [-reps=1] [-config=file.yaml] [-format=tsv|json] [-out=path]
//
// Reports can be written to local paths or s3:// URLs.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/file/s3file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/pdqsort/cmd/pdqsort-bench/cmd"
)

func main() {
	log.AddFlags()
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] subcommand [subcommand flags]\n", os.Args[0])
		flag.PrintDefaults()
		cmd.PrintHelp()
	}
	flag.Parse()
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	file.RegisterImplementation("s3", func() file.Implementation {
		return s3file.NewImplementation(s3file.NewDefaultProvider(session.Options{}), s3file.Options{})
	})
	if err := cmd.Run(context.Background(), flag.Args()); err != nil {
		log.Fatal(err)
	}
}
