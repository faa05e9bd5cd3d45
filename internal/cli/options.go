// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"regexp"
	"strings"

	"maskstat/internal/cliutil"
	"maskstat/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles []string

	// Classification policy
	Lenient bool // count unsupported codes instead of failing

	// Filtering
	NameFilter string
	Filter     *regexp.Regexp // compiled NameFilter, nil when unset

	// Output
	OutputDir string
	Output    string // text | json | jsonl
	NoBed     bool
	Header    bool // true unless --no-header

	// Performance
	Threads int

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – FASTA masking statistics\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [flags] <fasta> [<fasta>...]\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA file(s) (repeatable, .gz ok) or '-' for STDIN;")
		fmt.Fprintln(out, "                              positional paths (globs ok) are accepted too")

		fmt.Fprintln(out, "\nClassification:")
		fmt.Fprintf(out, "      --lenient               Count unsupported codes instead of failing [%s]\n", def("lenient"))
		fmt.Fprintf(out, "      --name-filter regex     Only process sequences whose name matches [%s]\n", def("name-filter"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output-dir dir        Directory for BED and summary files [%s]\n", def("output-dir"))
		fmt.Fprintf(out, "      --output string         Summary format: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-bed                Skip BED interval output entirely [%s]\n", def("no-bed"))
		fmt.Fprintf(out, "      --no-header             Suppress header line in text output [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential messages [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var seq stringSlice
	fs.Var(&seq, "sequences", "FASTA file(s) (repeatable or '-')")
	fs.Var(&seq, "s", "alias of --sequences")

	fs.BoolVar(&opt.Lenient, "lenient", false, "count unsupported codes instead of failing [false]")
	fs.StringVar(&opt.NameFilter, "name-filter", "", "only process sequences whose name matches regex")

	fs.StringVar(&opt.OutputDir, "output-dir", ".", "output directory for BED and summary files [.]")
	fs.StringVar(&opt.OutputDir, "o", ".", "alias of --output-dir")
	fs.StringVar(&opt.Output, "output", "text", "summary format: text | json | jsonl [text]")
	fs.BoolVar(&opt.NoBed, "no-bed", false, "skip BED interval output [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")

	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential messages [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	opt.SeqFiles = seq
	opt.Header = !noHeader
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		opt.SeqFiles = append(opt.SeqFiles, exp...)
	}

	// Validation
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one FASTA file is required")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	switch opt.Output {
	case "text", "json", "jsonl":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.NameFilter != "" {
		re, err := regexp.Compile(opt.NameFilter)
		if err != nil {
			return opt, fmt.Errorf("invalid --name-filter: %v", err)
		}
		opt.Filter = re
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
