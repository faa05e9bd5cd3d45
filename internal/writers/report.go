// internal/writers/report.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"maskstat/internal/jsonlutil"
	"maskstat/internal/output"
	"maskstat/internal/pipeline"
)

// StartReportWriter spins up a writer goroutine for per-sequence reports.
// Reports arrive in input order; text and jsonl stream, json buffers the
// whole array before encoding.
func StartReportWriter(out io.Writer, format string, header bool, bufSize int) (chan<- pipeline.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan pipeline.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []pipeline.Report
			for r := range in {
				buf = append(buf, r)
			}
			err = output.WriteJSON(out, buf)

		case "jsonl":
			jin, jerr := jsonlutil.Start(out, bufSize,
				func(enc *json.Encoder, r pipeline.Report) error {
					return enc.Encode(output.ToAPIReport(r))
				},
				IsBrokenPipe,
			)
			for r := range in {
				jin <- r
			}
			close(jin)
			err = <-jerr

		case "text":
			err = output.StreamText(out, in, header)

		default:
			err = fmt.Errorf("unsupported output %q", format)
			for range in {
			}
		}
		errCh <- err
	}()

	return in, errCh
}
