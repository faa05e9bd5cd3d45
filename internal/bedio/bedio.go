// internal/bedio/bedio.go
package bedio

import (
	"os"
	"path/filepath"

	"github.com/grailbio/base/tsv"
	"github.com/pkg/errors"

	"maskstat/internal/mask"
)

// Suffixes of the three per-sequence interval files. Unsupported positions
// never form intervals and get no file.
const (
	NonMaskedSuffix  = "non-masked"
	SoftMaskedSuffix = "soft-masked"
	HardMaskedSuffix = "hard-masked"
)

// Path returns the BED file path for one sequence and category suffix.
func Path(dir, name, suffix string) string {
	return filepath.Join(dir, name+"-"+suffix+".bed")
}

// WriteReport writes the three interval files for one finalized report into
// dir: <name>-non-masked.bed, <name>-soft-masked.bed, <name>-hard-masked.bed.
// Files are created even when a category has no intervals, so downstream
// tooling can rely on the trio existing.
func WriteReport(dir string, rep mask.Report) error {
	parts := []struct {
		suffix    string
		intervals []mask.Interval
	}{
		{NonMaskedSuffix, rep.NonMasked},
		{SoftMaskedSuffix, rep.SoftMasked},
		{HardMaskedSuffix, rep.HardMasked},
	}
	for _, p := range parts {
		if err := writeBed(Path(dir, rep.Stats.Name, p.suffix), rep.Stats.Name, p.intervals); err != nil {
			return err
		}
	}
	return nil
}

// writeBed writes three-column BED lines: <name> <start> <end>, half-open,
// zero-based, in the order the intervals were emitted (ascending).
func writeBed(path, name string, ivs []mask.Interval) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create bed")
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := tsv.NewWriter(fh)
	for _, iv := range ivs {
		w.WriteString(name)
		w.WriteUint32(uint32(iv.Start))
		w.WriteUint32(uint32(iv.End))
		if err := w.EndLine(); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
	}
	return w.Flush()
}
