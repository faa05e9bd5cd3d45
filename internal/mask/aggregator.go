// internal/mask/aggregator.go
package mask

import "fmt"

// Config controls per-sequence aggregation. Passed explicitly so the core
// stays testable without environment setup.
type Config struct {
	Lenient   bool // count unsupported codes instead of failing
	Intervals bool // track run-length intervals for BED output
}

// UnsupportedCodeError reports a byte outside the supported alphabet under
// the strict policy.
type UnsupportedCodeError struct {
	Byte     byte
	Position int
	Sequence string
}

func (e *UnsupportedCodeError) Error() string {
	return fmt.Sprintf("unsupported code %q at position %d in sequence %q",
		e.Byte, e.Position, e.Sequence)
}

// Stats is the finalized per-sequence summary.
type Stats struct {
	Name        string
	Length      int
	NonMasked   int
	SoftMasked  int
	HardMasked  int
	Unsupported int

	NonMaskedRatio  float64
	SoftMaskedRatio float64
	HardMaskedRatio float64
	GCContent       float64

	Checksum string
}

// Report bundles the stats with the interval lists for the three maskable
// categories. Unsupported positions never form intervals. Interval slices
// are nil when interval tracking is disabled.
type Report struct {
	Stats      Stats
	NonMasked  []Interval
	SoftMasked []Interval
	HardMasked []Interval
}

// Aggregator consumes the base stream of one sequence record and finalizes
// into a Report. Single writer; create one per record, never reuse after
// Finalize.
type Aggregator struct {
	name   string
	cfg    Config
	pos    int
	counts [numCategories]int
	gc     int
	// indexed by Category; Unsupported has no tracker.
	trackers [numCategories - 1]runTracker
	dig      *digest
	done     bool
}

// New returns an aggregator for the named sequence record.
func New(name string, cfg Config) *Aggregator {
	return &Aggregator{name: name, cfg: cfg, dig: newDigest()}
}

// ObserveBase classifies and accounts one base. Under the strict policy an
// unsupported byte fails without being counted; under the lenient policy it
// is counted and processing continues.
func (a *Aggregator) ObserveBase(b byte) error {
	cat := Classify(b)
	if cat == Unsupported && !a.cfg.Lenient {
		return &UnsupportedCodeError{Byte: b, Position: a.pos, Sequence: a.name}
	}
	if a.cfg.Intervals {
		for c := NonMasked; c < Unsupported; c++ {
			a.trackers[c].observe(a.pos, cat == c)
		}
	}
	a.counts[cat]++
	if isGC(b) {
		a.gc++
	}
	a.dig.update(b)
	a.pos++
	return nil
}

// ObserveBases feeds a contiguous slice of bases.
func (a *Aggregator) ObserveBases(p []byte) error {
	for _, b := range p {
		if err := a.ObserveBase(b); err != nil {
			return err
		}
	}
	return nil
}

// Finalize closes all open runs, computes ratios and the checksum, and
// returns the immutable Report. Ratios of a zero-length sequence are 0.
func (a *Aggregator) Finalize() Report {
	if a.done {
		panic("mask: aggregator finalized twice")
	}
	a.done = true

	r := Report{Stats: Stats{
		Name:        a.name,
		Length:      a.pos,
		NonMasked:   a.counts[NonMasked],
		SoftMasked:  a.counts[SoftMasked],
		HardMasked:  a.counts[HardMasked],
		Unsupported: a.counts[Unsupported],

		NonMaskedRatio:  ratio(a.counts[NonMasked], a.pos),
		SoftMaskedRatio: ratio(a.counts[SoftMasked], a.pos),
		HardMaskedRatio: ratio(a.counts[HardMasked], a.pos),
		GCContent:       ratio(a.gc, a.pos),

		Checksum: a.dig.finalize(),
	}}
	if a.cfg.Intervals {
		r.NonMasked = a.trackers[NonMasked].finish(a.pos)
		r.SoftMasked = a.trackers[SoftMasked].finish(a.pos)
		r.HardMasked = a.trackers[HardMasked].finish(a.pos)
	}
	return r
}

func ratio(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}
