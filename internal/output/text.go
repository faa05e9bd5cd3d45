// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"maskstat/internal/pipeline"
)

// WriteText prints one TSV line per report.
func WriteText(w io.Writer, list []pipeline.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := writeTextRow(w, r); err != nil {
			return err
		}
	}
	return nil
}

// StreamText prints reports as they arrive on in. On a write error the
// channel is still drained so the sender never blocks.
func StreamText(w io.Writer, in <-chan pipeline.Report, header bool) error {
	var err error
	if header {
		_, err = fmt.Fprintln(w, TSVHeader)
	}
	for r := range in {
		if err != nil {
			continue
		}
		err = writeTextRow(w, r)
	}
	return err
}

func writeTextRow(w io.Writer, r pipeline.Report) error {
	s := r.Stats
	_, err := fmt.Fprintf(w,
		"%s\t%d\t%d\t%d\t%d\t%d\t%.6f\t%.6f\t%.6f\t%.6f\t%s\n",
		s.Name, s.Length,
		s.NonMasked, s.SoftMasked, s.HardMasked, s.Unsupported,
		s.NonMaskedRatio, s.SoftMaskedRatio, s.HardMaskedRatio, s.GCContent,
		s.Checksum,
	)
	return err
}
