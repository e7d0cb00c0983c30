package replay

import (
	"fmt"
	"math"

	"hiterror/analysis"
)

// Rejection records one sample dropped by Sanitize, by its index in the
// dump, so callers can log what was thrown away.
type Rejection struct {
	Index  int
	Reason string
}

func (r Rejection) String() string {
	return fmt.Sprintf("sample %d: %s", r.Index, r.Reason)
}

// Validate rejects dumps that are unusable as a whole. Samples must be
// in expected-time order; a client that can't manage that has produced
// a dump no per-sample pruning can save.
func Validate(set *analysis.SampleSet) error {
	if !isFinite(set.MapDurationMs) || set.MapDurationMs <= 0 {
		return fmt.Errorf("map duration %vms, want > 0", set.MapDurationMs)
	}
	if !isFinite(set.OverallDifficulty) {
		return fmt.Errorf("overall difficulty %v, want finite", set.OverallDifficulty)
	}
	for i := 1; i < len(set.Samples); i++ {
		if set.Samples[i].ExpectedTime < set.Samples[i-1].ExpectedTime {
			return fmt.Errorf("samples out of order at index %d: %vms after %vms",
				i, set.Samples[i].ExpectedTime, set.Samples[i-1].ExpectedTime)
		}
	}
	return nil
}

// Sanitize prunes malformed samples in place and reports what was
// dropped. A dump from a well behaved client loses nothing.
func Sanitize(set *analysis.SampleSet) []Rejection {
	keys := set.Keys()
	var rejected []Rejection
	kept := set.Samples[:0]
	for i, s := range set.Samples {
		if reason := checkSample(s, keys); reason != "" {
			rejected = append(rejected, Rejection{Index: i, Reason: reason})
			continue
		}
		kept = append(kept, s)
	}
	set.Samples = kept
	return rejected
}

func checkSample(s analysis.TimingSample, keys int) string {
	switch {
	case s.Column < 0 || s.Column >= keys:
		return fmt.Sprintf("column %d outside 0..%d", s.Column, keys-1)
	case !isFinite(s.ExpectedTime) || !isFinite(s.Deviation):
		return "non-finite timing value"
	case !s.IsLongNote && s.TailDeviation != nil:
		return "tail deviation on a rice note"
	case s.IsLongNote && !s.NeverHit && s.TailDeviation == nil:
		return "long note without a tail deviation"
	case s.TailDeviation != nil && !isFinite(*s.TailDeviation):
		return "non-finite tail deviation"
	}
	return ""
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
