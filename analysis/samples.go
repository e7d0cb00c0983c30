// Package analysis turns the raw timing record of a finished mania play
// into judgement counts, accuracy, deviation statistics and a smoothed
// deviation distribution, under switchable scoring rulesets.
package analysis

// TimingSample is one note's timing outcome. Deviation is signed
// milliseconds: negative for an early press, positive for a late one.
// Long notes carry a second deviation for the release; NeverHit marks a
// note with no input event at all, whose deviation fields carry no
// information.
type TimingSample struct {
	Column        int      `json:"column"`
	ExpectedTime  float64  `json:"expected_time"`
	Deviation     float64  `json:"deviation"`
	IsLongNote    bool     `json:"is_long_note,omitempty"`
	TailDeviation *float64 `json:"tail_deviation,omitempty"`
	NeverHit      bool     `json:"never_hit,omitempty"`
}

// SampleSet is the complete timing record of one play.
type SampleSet struct {
	MapDurationMs     float64        `json:"map_duration_ms"`
	OverallDifficulty float64        `json:"overall_difficulty"`
	KeyCount          int            `json:"key_count,omitempty"`
	Samples           []TimingSample `json:"samples"`
}

// Keys returns the set's key count. Dumps that predate the key_count
// field get it derived from the widest column seen. Either way the
// result is clamped to the supported 4K..7K range.
func (s *SampleSet) Keys() int {
	n := s.KeyCount
	if n == 0 {
		for _, smp := range s.Samples {
			n = max(n, smp.Column+1)
		}
	}
	return clampInt(n, 4, 7)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
