// internal/mask/runtracker.go
package mask

// Interval is a half-open, zero-based [Start, End) range of positions that
// share one Category.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of positions the interval covers.
func (iv Interval) Len() int { return iv.End - iv.Start }

// runTracker folds a stream of per-position membership flags into maximal
// half-open intervals. One instance per category per sequence. Adjacent
// same-category runs cannot be emitted separately: a run stays open until a
// non-member position (or the end of the sequence) closes it.
type runTracker struct {
	openStart int
	open      bool
	out       []Interval
}

// observe must be called once per position, in ascending position order.
func (t *runTracker) observe(pos int, member bool) {
	if member {
		if !t.open {
			t.open = true
			t.openStart = pos
		}
		return
	}
	if t.open {
		t.out = append(t.out, Interval{Start: t.openStart, End: pos})
		t.open = false
	}
}

// finish closes any open run at end and returns all emitted intervals.
// Called exactly once, at sequence end.
func (t *runTracker) finish(end int) []Interval {
	if t.open {
		t.out = append(t.out, Interval{Start: t.openStart, End: end})
		t.open = false
	}
	return t.out
}
