package analysis

import "math"

// Judgement is a note's timing grade, ordered best to worst. The set is
// closed: code switching on it handles every tier and panics on
// anything else rather than inventing a fallback grade.
type Judgement int

const (
	Exact Judgement = iota
	Great
	Good
	Fair
	Poor
	Miss
)

const judgementCount = 6

func (j Judgement) String() string {
	switch j {
	case Exact:
		return "Exact"
	case Great:
		return "Great"
	case Good:
		return "Good"
	case Fair:
		return "Fair"
	case Poor:
		return "Poor"
	case Miss:
		return "Miss"
	}
	panic("unexpected")
}

// Classify grades one sample against the profile's windows. A note the
// player never hit is a Miss regardless of its recorded deviation. Long
// notes grade press and release separately and keep the worse of the
// two; a release with no recorded deviation grades on the press alone.
func (p Profile) Classify(s TimingSample) Judgement {
	if s.NeverHit {
		return Miss
	}
	j := p.ClassifyDeviation(s.Deviation)
	if s.IsLongNote && s.TailDeviation != nil {
		j = max(j, p.ClassifyDeviation(*s.TailDeviation))
	}
	return j
}

// ClassifyDeviation grades a single signed deviation. Thresholds are
// inclusive: a deviation sitting exactly on a window edge still earns
// that window's grade.
func (p Profile) ClassifyDeviation(dev float64) Judgement {
	ad := math.Abs(dev)
	for j := Exact; j <= Poor; j++ {
		if ad <= p.windows[j] {
			return j
		}
	}
	return Miss
}
