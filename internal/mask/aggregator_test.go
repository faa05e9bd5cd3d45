package mask

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func aggregate(t *testing.T, name, seq string, cfg Config) Report {
	t.Helper()
	a := New(name, cfg)
	require.NoError(t, a.ObserveBases([]byte(seq)))
	return a.Finalize()
}

func TestAggregatorScenario(t *testing.T) {
	r := aggregate(t, "chr1", "ACGTacgtNn", Config{Intervals: true})

	assert.Equal(t, 10, r.Stats.Length)
	assert.Equal(t, 4, r.Stats.NonMasked)
	assert.Equal(t, 4, r.Stats.SoftMasked)
	assert.Equal(t, 2, r.Stats.HardMasked)
	assert.Equal(t, 0, r.Stats.Unsupported)
	assert.InDelta(t, 0.4, r.Stats.GCContent, 1e-12)

	assert.Equal(t, []Interval{{0, 4}}, r.NonMasked)
	assert.Equal(t, []Interval{{4, 8}}, r.SoftMasked)
	assert.Equal(t, []Interval{{8, 10}}, r.HardMasked)

	sum := blake2b.Sum256([]byte("ACGTacgtNn"))
	assert.Equal(t, hex.EncodeToString(sum[:]), r.Stats.Checksum)
}

func TestAggregatorStrictUnsupported(t *testing.T) {
	a := New("s1", Config{})
	err := a.ObserveBases([]byte("AAXAA"))
	require.Error(t, err)

	var uerr *UnsupportedCodeError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, byte('X'), uerr.Byte)
	assert.Equal(t, 2, uerr.Position)
	assert.Equal(t, "s1", uerr.Sequence)
}

func TestAggregatorLenientUnsupported(t *testing.T) {
	r := aggregate(t, "s1", "AAXAA", Config{Lenient: true})
	assert.Equal(t, 5, r.Stats.Length)
	assert.Equal(t, 4, r.Stats.NonMasked)
	assert.Equal(t, 1, r.Stats.Unsupported)
}

func TestAggregatorSumInvariant(t *testing.T) {
	for _, seq := range []string{
		"",
		"ACGTacgtNn",
		"nnnnNNNN",
		"A-X?acg-tN",
		"aaNNaa",
	} {
		r := aggregate(t, "s", seq, Config{Lenient: true, Intervals: true})
		s := r.Stats
		assert.Equal(t, s.Length,
			s.NonMasked+s.SoftMasked+s.HardMasked+s.Unsupported,
			"sequence %q", seq)
	}
}

func TestAggregatorIntervalCoverageMatchesCounts(t *testing.T) {
	r := aggregate(t, "s", "aAaaTTaatNaaa-cgNn", Config{Lenient: true, Intervals: true})
	covered := func(ivs []Interval) int {
		n := 0
		for _, iv := range ivs {
			n += iv.Len()
		}
		return n
	}
	assert.Equal(t, r.Stats.NonMasked, covered(r.NonMasked))
	assert.Equal(t, r.Stats.SoftMasked, covered(r.SoftMasked))
	assert.Equal(t, r.Stats.HardMasked, covered(r.HardMasked))
}

func TestAggregatorZeroLengthRatios(t *testing.T) {
	r := aggregate(t, "empty", "", Config{Intervals: true})
	assert.Equal(t, 0, r.Stats.Length)
	assert.Zero(t, r.Stats.NonMaskedRatio)
	assert.Zero(t, r.Stats.SoftMaskedRatio)
	assert.Zero(t, r.Stats.HardMaskedRatio)
	assert.Zero(t, r.Stats.GCContent)
	assert.Empty(t, r.NonMasked)
	// The checksum of an empty stream is still well defined.
	sum := blake2b.Sum256(nil)
	assert.Equal(t, hex.EncodeToString(sum[:]), r.Stats.Checksum)
}

func TestAggregatorIntervalsDisabled(t *testing.T) {
	r := aggregate(t, "s", "ACGTacgtNn", Config{})
	assert.Nil(t, r.NonMasked)
	assert.Nil(t, r.SoftMasked)
	assert.Nil(t, r.HardMasked)
	assert.Equal(t, 4, r.Stats.NonMasked)
}

func TestAggregatorGCBounds(t *testing.T) {
	for _, seq := range []string{"", "GGCC", "AATT", "ggccAATTnN"} {
		r := aggregate(t, "s", seq, Config{})
		assert.GreaterOrEqual(t, r.Stats.GCContent, 0.0)
		assert.LessOrEqual(t, r.Stats.GCContent, 1.0)
	}
}

func TestAggregatorFinalizeTwicePanics(t *testing.T) {
	a := New("s", Config{})
	_ = a.Finalize()
	assert.Panics(t, func() { _ = a.Finalize() })
}
