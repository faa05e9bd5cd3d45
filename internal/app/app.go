// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/grailbio/base/log"

	"maskstat/internal/bedio"
	"maskstat/internal/cli"
	"maskstat/internal/jsonutil"
	"maskstat/internal/output"
	"maskstat/internal/pipeline"
	"maskstat/internal/version"
	"maskstat/internal/writers"
)

// SummaryFileName is the JSON summary written into the output directory.
const SummaryFileName = "summary.json"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("maskstat")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "maskstat version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if err := ensureOutputDir(opts.OutputDir, opts.Quiet); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	cfg := pipeline.Config{
		Threads:   thr,
		Lenient:   opts.Lenient,
		Intervals: !opts.NoBed,
		Filter:    opts.Filter,
	}

	inCh, writeErr := writers.StartReportWriter(outw, opts.Output, opts.Header, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// The visit callback runs in the pipeline's collector, so BED writing and
	// the summary slice see reports one at a time, in input order.
	var summary []pipeline.Report
	total, perr := pipeline.ForEachReport(ctx, cfg, opts.SeqFiles, func(r pipeline.Report) error {
		if !opts.NoBed {
			if err := bedio.WriteReport(opts.OutputDir, r.Report); err != nil {
				return err
			}
		}
		summary = append(summary, r)
		select {
		case inCh <- r:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		// Partial runs never leave a summary file behind.
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}

	summaryPath := filepath.Join(opts.OutputDir, SummaryFileName)
	if err := jsonutil.WriteFile(summaryPath, output.ToAPIReports(summary)); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if !opts.Quiet {
		log.Printf("processed %d sequence(s); summary written to %s", total, summaryPath)
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// ensureOutputDir mirrors the CLI contract: the path must be a directory or
// absent; absent directories are created.
func ensureOutputDir(dir string, quiet bool) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("output directory %q is a file", dir)
		}
		return nil
	case os.IsNotExist(err):
		if !quiet {
			log.Printf("creating output directory %q", dir)
		}
		return os.MkdirAll(dir, 0o755)
	default:
		return err
	}
}
