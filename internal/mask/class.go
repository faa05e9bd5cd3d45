// internal/mask/class.go
package mask

// Category classifies a single base byte. Exactly one Category applies to
// every byte; the mapping is total over all 256 values.
type Category uint8

const (
	NonMasked Category = iota
	SoftMasked
	HardMasked
	Unsupported
	numCategories
)

func (c Category) String() string {
	switch c {
	case NonMasked:
		return "non-masked"
	case SoftMasked:
		return "soft-masked"
	case HardMasked:
		return "hard-masked"
	case Unsupported:
		return "unsupported"
	}
	return "invalid"
}

// classTable is the explicit total mapping. Lower-case 'n' is hard-masked,
// not soft-masked: both cases of 'N' mean "no underlying call", and case
// carries no masking information for them. Preserve the asymmetry.
var classTable = func() [256]Category {
	var t [256]Category
	for i := range t {
		t[i] = Unsupported
	}
	for _, b := range []byte("ACGT") {
		t[b] = NonMasked
	}
	for _, b := range []byte("acgt") {
		t[b] = SoftMasked
	}
	t['N'] = HardMasked
	t['n'] = HardMasked
	return t
}()

// Classify maps one base byte to its Category. Pure; never fails — the
// strict/lenient policy for Unsupported lives in the Aggregator.
func Classify(b byte) Category { return classTable[b] }

// isGC reports whether b counts toward GC content.
func isGC(b byte) bool { return b == 'G' || b == 'g' || b == 'C' || b == 'c' }
