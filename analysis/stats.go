package analysis

import "gonum.org/v1/gonum/stat"

// TierCounts tallies judgements, indexed by Judgement.
type TierCounts [judgementCount]int

func (c TierCounts) Total() int {
	t := 0
	for _, n := range c {
		t += n
	}
	return t
}

// Statistics is the reduction of one filtered view of a play.
//
// Accuracy is a percentage and nil when the view holds no samples.
// Mean, StdDev and UnstableRate are computed over the signed press
// deviations of notes that have an input event; never-hit notes count
// in the tiers and accuracy but contribute no deviation.
type Statistics struct {
	Counts       TierCounts `json:"counts"`
	Accuracy     *float64   `json:"accuracy,omitempty"`
	Mean         float64    `json:"mean_ms"`
	StdDev       float64    `json:"std_dev_ms"`
	UnstableRate float64    `json:"unstable_rate"`
}

// Compute reduces filtered samples under the profile's system.
func Compute(samples []TimingSample, p Profile) Statistics {
	var st Statistics
	devs := make([]float64, 0, len(samples))
	for _, s := range samples {
		st.Counts[p.Classify(s)]++
		if !s.NeverHit {
			devs = append(devs, s.Deviation)
		}
	}
	st.Accuracy = accuracy(st.Counts, p.System)
	if len(devs) > 0 {
		st.Mean = stat.Mean(devs, nil)
		st.StdDev = stat.PopStdDev(devs, nil)
		st.UnstableRate = 10 * st.StdDev
	}
	return st
}

func accuracy(c TierCounts, system System) *float64 {
	total := c.Total()
	if total == 0 {
		return nil
	}
	var acc float64
	switch system {
	case ManiaV1:
		n := 300*c[Exact] + 300*c[Great] + 200*c[Good] + 100*c[Fair] + 50*c[Poor]
		acc = 100 * float64(n) / float64(300*total)
	case ManiaV2:
		n := 305*c[Exact] + 300*c[Great] + 200*c[Good] + 100*c[Fair] + 50*c[Poor]
		acc = 100 * float64(n) / float64(305*total)
	case StepMania:
		// Wife weights; Poor is worth nothing and a Miss costs points,
		// so the sum can go negative and gets floored at zero.
		n := 100*c[Exact] + 99*c[Great] + 66*c[Good] + 33*c[Fair] - 10*c[Miss]
		acc = max(100*float64(n)/float64(100*total), 0)
	default:
		panic("unexpected")
	}
	return &acc
}

// ColumnStatistics is one column's reduction beside its neighbours.
type ColumnStatistics struct {
	Column int `json:"column"`
	Statistics
}

// ComputeColumns reduces each of the keys columns separately. Samples
// on columns outside 0..keys-1 are skipped; every column gets a row
// even when it holds no samples.
func ComputeColumns(samples []TimingSample, keys int, p Profile) []ColumnStatistics {
	byCol := make([][]TimingSample, keys)
	for _, s := range samples {
		if s.Column < 0 || s.Column >= keys {
			continue
		}
		byCol[s.Column] = append(byCol[s.Column], s)
	}
	out := make([]ColumnStatistics, keys)
	for i := 0; i < keys; i++ {
		out[i] = ColumnStatistics{Column: i, Statistics: Compute(byCol[i], p)}
	}
	return out
}
