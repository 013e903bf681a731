package cmd

import (
	"context"
	"io"
	"runtime"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/sys/cpu"
)

// cpuFeatures records the vector extensions of the host. Block
// partitioning depends on instruction-level parallelism, so results are
// only comparable between similar machines.
type cpuFeatures struct {
	GOARCH  string `json:"goarch"`
	CPUs    int    `json:"cpus"`
	SSE42   bool   `json:"sse42"`
	AVX2    bool   `json:"avx2"`
	AVX512F bool   `json:"avx512f"`
	ASIMD   bool   `json:"asimd"`
}

func hostFeatures() cpuFeatures {
	return cpuFeatures{
		GOARCH:  runtime.GOARCH,
		CPUs:    runtime.NumCPU(),
		SSE42:   cpu.X86.HasSSE42,
		AVX2:    cpu.X86.HasAVX2,
		AVX512F: cpu.X86.HasAVX512F,
		ASIMD:   cpu.ARM64.HasASIMD,
	}
}

type jsonReport struct {
	Host cpuFeatures `json:"host"`
	Rows []benchRow  `json:"rows"`
}

// writeReport writes rows in the given format to path, or to out if path is
// empty.
func writeReport(ctx context.Context, out io.Writer, path, format string, rows []benchRow) (err error) {
	host := hostFeatures()
	log.Printf("bench: host %+v", host)
	if path == "" {
		return encodeReport(out, format, host, rows)
	}
	f, err := file.Create(ctx, path)
	if err != nil {
		return errors.E(err, "bench: create report", path)
	}
	defer errors.CleanUpCtx(ctx, f.Close, &err)
	if err = encodeReport(f.Writer(ctx), format, host, rows); err != nil {
		return errors.E(err, "bench: write report", path)
	}
	log.Printf("bench: wrote %d rows to %s", len(rows), path)
	return nil
}

func encodeReport(w io.Writer, format string, host cpuFeatures, rows []benchRow) error {
	switch format {
	case "json":
		data, err := sonnet.Marshal(jsonReport{Host: host, Rows: rows})
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case "tsv":
		rw := tsv.NewRowWriter(w)
		for i := range rows {
			if err := rw.Write(&rows[i]); err != nil {
				return err
			}
		}
		return rw.Flush()
	default:
		return errors.E(errors.Invalid, "bench: unknown format", format)
	}
}
