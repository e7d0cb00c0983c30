package analysis

import "math"

// Session ties one play's sample set to the mutable view state a front
// end works with: the scoring profile, the selected time range and the
// active columns. Queries recompute from the set on every call.
//
// A Session is not safe for concurrent use; callers drive it from a
// single goroutine or serialize access themselves.
type Session struct {
	set       *SampleSet
	keys      int
	profile   Profile
	selection Selection
	mask      ColumnMask
	onChange  []func()
}

// NewSession starts a session over the set with mania V1 windows at the
// map's own difficulty, the whole map selected and every column active.
func NewSession(set *SampleSet) *Session {
	keys := set.Keys()
	return &Session{
		set:       set,
		keys:      keys,
		profile:   NewProfile(ManiaV1, int(math.Round(set.OverallDifficulty))),
		selection: Selection{Start: 0, End: 1},
		mask:      AllColumns(keys),
	}
}

func (s *Session) Profile() Profile     { return s.profile }
func (s *Session) Selection() Selection { return s.selection }
func (s *Session) Mask() ColumnMask     { return s.mask }
func (s *Session) Keys() int            { return s.keys }

// Duration is the map length in ms, for consumers mapping the
// selection's fractions onto real time.
func (s *Session) Duration() float64 { return s.set.MapDurationMs }

// OnChange registers a callback run after every mutation, in
// registration order. Queries never fire it.
func (s *Session) OnChange(fn func()) {
	s.onChange = append(s.onChange, fn)
}

func (s *Session) notify() {
	for _, fn := range s.onChange {
		fn()
	}
}

// SetProfile switches the scoring system, clamping the level into the
// system's range.
func (s *Session) SetProfile(system System, level int) {
	s.profile = NewProfile(system, level)
	s.notify()
}

// AdjustLevel nudges the current profile's level by delta, saturating
// at the system's bounds.
func (s *Session) AdjustLevel(delta int) {
	s.profile = NewProfile(s.profile.System, s.profile.Level+delta)
	s.notify()
}

// SetSelection replaces the time range. Out-of-range input is repaired
// rather than rejected: a NaN fraction falls back to its end's bound,
// both fractions are clamped to 0..1, swapped if reversed, and the
// range is widened to MinSelectionWidth if it came in narrower.
func (s *Session) SetSelection(start, end float64) {
	// NaN would survive the clamp and swap below; read it as no
	// constraint on that end.
	if math.IsNaN(start) {
		start = 0
	}
	if math.IsNaN(end) {
		end = 1
	}
	start = clampFloat(start, 0, 1)
	end = clampFloat(end, 0, 1)
	if start > end {
		start, end = end, start
	}
	if end-start < MinSelectionWidth {
		end = start + MinSelectionWidth
		if end > 1 {
			start, end = 1-MinSelectionWidth, 1
		}
	}
	s.selection = Selection{Start: start, End: end}
	s.notify()
}

// ToggleColumn flips one column in or out of the aggregate view. An
// index outside the set's key range is ignored.
func (s *Session) ToggleColumn(column int) {
	s.mask = s.mask.Toggle(column, s.keys)
	s.notify()
}

func (s *Session) filtered() []TimingSample {
	return s.set.Filter(s.selection, s.mask)
}

// Statistics reduces the current view.
func (s *Session) Statistics() Statistics {
	return Compute(s.filtered(), s.profile)
}

// ColumnStatistics reduces every column over the selected time range.
// The column mask does not apply here: each column keeps its own row so
// the columns stay comparable while some are hidden from the aggregate.
func (s *Session) ColumnStatistics() []ColumnStatistics {
	all := s.set.Filter(s.selection, AllColumns(s.keys))
	return ComputeColumns(all, s.keys, s.profile)
}

// Density estimates the deviation distribution of the current view.
func (s *Session) Density() []DensityPoint {
	return EstimateDensity(s.filtered(), s.profile)
}

// JudgedSample pairs a sample with its grade under a profile.
type JudgedSample struct {
	TimingSample
	Judgement Judgement `json:"judgement"`
}

// Judgements grades every sample in the current view, in map order.
func (s *Session) Judgements() []JudgedSample {
	f := s.filtered()
	out := make([]JudgedSample, len(f))
	for i, smp := range f {
		out[i] = JudgedSample{TimingSample: smp, Judgement: s.profile.Classify(smp)}
	}
	return out
}
