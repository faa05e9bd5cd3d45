// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON/JSONL schema for per-sequence mask reports.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	Name        string `json:"name"`
	Length      int    `json:"length"`
	NonMasked   int    `json:"non_masked"`
	SoftMasked  int    `json:"soft_masked"`
	HardMasked  int    `json:"hard_masked"`
	Unsupported int    `json:"unsupported"`

	NonMaskedRatio  float64 `json:"non_masked_ratio"`
	SoftMaskedRatio float64 `json:"soft_masked_ratio"`
	HardMaskedRatio float64 `json:"hard_masked_ratio"`
	GCContent       float64 `json:"gc_content"`

	Checksum   string `json:"checksum"`
	SourceFile string `json:"source_file,omitempty"`
}
