// internal/bedio/bedio_test.go
package bedio

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maskstat/internal/mask"
)

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	rep := mask.Report{
		Stats:      mask.Stats{Name: "chr1"},
		NonMasked:  []mask.Interval{{Start: 0, End: 4}},
		SoftMasked: []mask.Interval{{Start: 4, End: 8}},
		HardMasked: []mask.Interval{{Start: 8, End: 10}},
	}
	require.NoError(t, WriteReport(dir, rep))

	cases := []struct {
		suffix string
		want   string
	}{
		{NonMaskedSuffix, "chr1\t0\t4\n"},
		{SoftMaskedSuffix, "chr1\t4\t8\n"},
		{HardMaskedSuffix, "chr1\t8\t10\n"},
	}
	for _, c := range cases {
		data, err := os.ReadFile(Path(dir, "chr1", c.suffix))
		require.NoError(t, err, c.suffix)
		assert.Equal(t, c.want, string(data), c.suffix)
	}
}

func TestWriteReportEmptyCategoryStillCreatesFile(t *testing.T) {
	dir := t.TempDir()
	rep := mask.Report{
		Stats:     mask.Stats{Name: "s"},
		NonMasked: []mask.Interval{{Start: 0, End: 2}},
	}
	require.NoError(t, WriteReport(dir, rep))

	data, err := os.ReadFile(Path(dir, "s", HardMaskedSuffix))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteReportMultipleIntervals(t *testing.T) {
	dir := t.TempDir()
	rep := mask.Report{
		Stats:      mask.Stats{Name: "s"},
		SoftMasked: []mask.Interval{{Start: 0, End: 2}, {Start: 4, End: 6}},
	}
	require.NoError(t, WriteReport(dir, rep))

	data, err := os.ReadFile(Path(dir, "s", SoftMaskedSuffix))
	require.NoError(t, err)
	assert.Equal(t, "s\t0\t2\ns\t4\t6\n", string(data))
}

func TestWriteReportBadDir(t *testing.T) {
	err := WriteReport("/no/such/dir", mask.Report{Stats: mask.Stats{Name: "s"}})
	require.Error(t, err)
}
