// internal/writers/report_writer_test.go
package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maskstat/internal/mask"
	"maskstat/internal/pipeline"
	"maskstat/pkg/api"
)

func testReport(name string) pipeline.Report {
	return pipeline.Report{
		Report: mask.Report{Stats: mask.Stats{
			Name: name, Length: 4, NonMasked: 4,
			NonMaskedRatio: 1, Checksum: "abcd",
		}},
	}
}

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartReportWriter(&b, "nope-format", false, 1)
	close(in) // no payload; writer should error out on dispatch
	err := <-done
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output")
}

func TestTextWriterStreams(t *testing.T) {
	var b bytes.Buffer
	in, done := StartReportWriter(&b, "text", true, 4)
	in <- testReport("a")
	in <- testReport("b")
	close(in)
	require.NoError(t, <-done)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "a\t"))
	assert.True(t, strings.HasPrefix(lines[2], "b\t"))
}

func TestJSONWriterEmitsArray(t *testing.T) {
	var b bytes.Buffer
	in, done := StartReportWriter(&b, "json", false, 4)
	in <- testReport("a")
	close(in)
	require.NoError(t, <-done)

	var got []api.ReportV1
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Name)
}

func TestJSONLWriterOneObjectPerLine(t *testing.T) {
	var b bytes.Buffer
	in, done := StartReportWriter(&b, "jsonl", false, 4)
	in <- testReport("a")
	in <- testReport("b")
	close(in)
	require.NoError(t, <-done)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for i, line := range lines {
		var got api.ReportV1
		require.NoError(t, json.Unmarshal([]byte(line), &got), "line %d", i)
	}
}
