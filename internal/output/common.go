package output

// TSVHeader is the canonical header row for text output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "name\tlength\tnon_masked\tsoft_masked\thard_masked\tunsupported\tnon_masked_ratio\tsoft_masked_ratio\thard_masked_ratio\tgc_content\tchecksum"
