// internal/output/json.go
package output

import (
	"io"

	"maskstat/internal/jsonutil"
	"maskstat/internal/pipeline"
	"maskstat/pkg/api"
)

// ToAPIReport converts a pipeline report to the stable wire schema (v1).
func ToAPIReport(r pipeline.Report) api.ReportV1 {
	s := r.Stats
	return api.ReportV1{
		Name:        s.Name,
		Length:      s.Length,
		NonMasked:   s.NonMasked,
		SoftMasked:  s.SoftMasked,
		HardMasked:  s.HardMasked,
		Unsupported: s.Unsupported,

		NonMaskedRatio:  s.NonMaskedRatio,
		SoftMaskedRatio: s.SoftMaskedRatio,
		HardMaskedRatio: s.HardMaskedRatio,
		GCContent:       s.GCContent,

		Checksum:   s.Checksum,
		SourceFile: r.SourceFile,
	}
}

// ToAPIReports converts a whole run's reports, preserving order.
func ToAPIReports(list []pipeline.Report) []api.ReportV1 {
	out := make([]api.ReportV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIReport(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 reports (pretty-indented).
func WriteJSON(w io.Writer, list []pipeline.Report) error {
	return jsonutil.EncodePretty(w, ToAPIReports(list))
}
