// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"regexp"
	"sync"

	"golang.org/x/sync/errgroup"

	"maskstat/internal/fasta"
	"maskstat/internal/mask"
)

// Config controls the aggregation pipeline. All knobs are passed explicitly;
// nothing is read from ambient state.
type Config struct {
	Threads   int            // worker goroutines (<=0 means 1)
	Lenient   bool           // count unsupported codes instead of aborting
	Intervals bool           // track run-length intervals for BED output
	Filter    *regexp.Regexp // optional sequence-name filter (nil = all)
}

// Report couples a finalized per-sequence mask report with its source file.
type Report struct {
	mask.Report
	SourceFile string
}

// ForEachReport reads records from seqFiles, applies the name filter before
// any aggregation work, aggregates each surviving record, and calls visit
// with the finalized reports strictly in input order — also when Threads > 1,
// where whole records are aggregated concurrently and reassembled.
//
// A strict-policy *mask.UnsupportedCodeError aborts the whole run. Records
// that fail to read or aggregate are never visited. Returns the number of
// visited reports and the first error encountered.
func ForEachReport(
	parent context.Context,
	cfg Config,
	seqFiles []string,
	visit func(Report) error,
) (int, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		idx  int
		rec  fasta.Record
		file string
	}
	type result struct {
		idx int
		rep Report
	}

	g, ctx := errgroup.WithContext(parent)
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Feed records that pass the filter. Skipped records incur no
	// aggregation cost.
	g.Go(func() error {
		defer close(jobs)
		n := 0
		for _, path := range seqFiles {
			path := path
			err := fasta.StreamRecordsCtx(ctx, path, func(rec fasta.Record) error {
				if cfg.Filter != nil && !cfg.Filter.MatchString(rec.Name) {
					return nil
				}
				select {
				case jobs <- job{idx: n, rec: rec, file: path}:
					n++
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	// Workers: a fresh single-writer aggregator per record.
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		g.Go(func() error {
			defer wg.Done()
			for j := range jobs {
				agg := mask.New(j.rec.Name, mask.Config{
					Lenient:   cfg.Lenient,
					Intervals: cfg.Intervals,
				})
				if err := agg.ObserveBases(j.rec.Seq); err != nil {
					return err
				}
				select {
				case results <- result{idx: j.idx, rep: Report{Report: agg.Finalize(), SourceFile: j.file}}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: release reports in input order.
	total := 0
	g.Go(func() error {
		next := 0
		pending := make(map[int]Report)
		for res := range results {
			pending[res.idx] = res.rep
			for {
				rep, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := visit(rep); err != nil {
					return err
				}
				total++
			}
		}
		return nil
	})

	err := g.Wait()
	return total, err
}
