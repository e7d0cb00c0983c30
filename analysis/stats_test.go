package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func riceSamples(devs ...float64) []TimingSample {
	out := make([]TimingSample, len(devs))
	for i, d := range devs {
		out[i] = TimingSample{Deviation: d}
	}
	return out
}

func TestComputeDeviationStats(t *testing.T) {
	t.Parallel()
	p := NewProfile(ManiaV1, 8)

	t.Run("mean stddev and unstable rate", func(t *testing.T) {
		t.Parallel()
		st := Compute(riceSamples(-5, 0, 5), p)
		assert.InDelta(t, 0, st.Mean, 1e-9)
		assert.InDelta(t, 4.0825, st.StdDev, 1e-3)
		assert.InDelta(t, 40.825, st.UnstableRate, 1e-2)
	})

	t.Run("stddev is over the population", func(t *testing.T) {
		t.Parallel()
		// A sample stddev of [-5 0 5] would be 5; the population one is
		// sqrt(50/3).
		st := Compute(riceSamples(-5, 0, 5), p)
		assert.Less(t, st.StdDev, 4.1)
	})

	t.Run("single sample has zero spread", func(t *testing.T) {
		t.Parallel()
		st := Compute(riceSamples(12), p)
		assert.Equal(t, 12.0, st.Mean)
		assert.Equal(t, 0.0, st.StdDev)
		assert.Equal(t, 0.0, st.UnstableRate)
	})

	t.Run("empty view yields zero values and no accuracy", func(t *testing.T) {
		t.Parallel()
		st := Compute(nil, p)
		assert.Nil(t, st.Accuracy)
		assert.Equal(t, 0, st.Counts.Total())
		assert.Equal(t, 0.0, st.Mean)
		assert.Equal(t, 0.0, st.StdDev)
		assert.Equal(t, 0.0, st.UnstableRate)
	})

	t.Run("never hit notes count in tiers but not in the pool", func(t *testing.T) {
		t.Parallel()
		samples := []TimingSample{
			{Deviation: 0},
			{Deviation: 999, NeverHit: true},
		}
		st := Compute(samples, p)
		assert.Equal(t, 1, st.Counts[Exact])
		assert.Equal(t, 1, st.Counts[Miss])
		assert.Equal(t, 0.0, st.Mean)
		assert.Equal(t, 0.0, st.StdDev)
		require.NotNil(t, st.Accuracy)
		assert.InDelta(t, 50.0, *st.Accuracy, 1e-9)
	})
}

func TestAccuracy(t *testing.T) {
	t.Parallel()

	// OD8 windows are 16/40/73/103/127: two Exacts and a Good.
	samples := []TimingSample{
		{Deviation: 0},   // Exact
		{Deviation: 0},   // Exact
		{Deviation: -50}, // Good
	}

	t.Run("mania v1", func(t *testing.T) {
		t.Parallel()
		st := Compute(samples, NewProfile(ManiaV1, 8))
		require.NotNil(t, st.Accuracy)
		assert.InDelta(t, 100*800.0/900.0, *st.Accuracy, 1e-9)
	})

	t.Run("mania v2 weighs exact at 305", func(t *testing.T) {
		t.Parallel()
		st := Compute(samples, NewProfile(ManiaV2, 8))
		require.NotNil(t, st.Accuracy)
		assert.InDelta(t, 100*810.0/915.0, *st.Accuracy, 1e-9)
	})

	t.Run("all exact is 100 in every system", func(t *testing.T) {
		t.Parallel()
		perfect := riceSamples(0, 1, -2)
		for _, sys := range []System{ManiaV1, ManiaV2, StepMania} {
			st := Compute(perfect, NewProfile(sys, 8))
			require.NotNil(t, st.Accuracy)
			assert.InDelta(t, 100.0, *st.Accuracy, 1e-9, sys.String())
		}
	})

	t.Run("wife misses cost points", func(t *testing.T) {
		t.Parallel()
		st := Compute(riceSamples(0, 500), NewProfile(StepMania, 4))
		require.NotNil(t, st.Accuracy)
		assert.InDelta(t, 45.0, *st.Accuracy, 1e-9)
	})

	t.Run("wife floors at zero", func(t *testing.T) {
		t.Parallel()
		st := Compute(riceSamples(500, 500, 500), NewProfile(StepMania, 4))
		require.NotNil(t, st.Accuracy)
		assert.Equal(t, 0.0, *st.Accuracy)
	})

	t.Run("all miss is zero in every system", func(t *testing.T) {
		t.Parallel()
		for _, sys := range []System{ManiaV1, ManiaV2, StepMania} {
			st := Compute(riceSamples(900, 900), NewProfile(sys, 5))
			require.NotNil(t, st.Accuracy, sys.String())
			assert.Equal(t, 0.0, *st.Accuracy, sys.String())
		}
	})
}

func TestComputeColumns(t *testing.T) {
	t.Parallel()
	p := NewProfile(ManiaV1, 8)

	t.Run("groups by column", func(t *testing.T) {
		t.Parallel()
		samples := []TimingSample{
			{Column: 0, Deviation: -4},
			{Column: 2, Deviation: 8},
			{Column: 0, Deviation: 4},
			{Column: 2, Deviation: 8},
		}
		cols := ComputeColumns(samples, 4, p)
		require.Len(t, cols, 4)
		for i, c := range cols {
			assert.Equal(t, i, c.Column)
		}
		assert.Equal(t, 2, cols[0].Counts.Total())
		assert.InDelta(t, 0.0, cols[0].Mean, 1e-9)
		assert.InDelta(t, 8.0, cols[2].Mean, 1e-9)
		assert.Equal(t, 0, cols[1].Counts.Total())
		assert.Nil(t, cols[1].Accuracy)
	})

	t.Run("out of range columns are skipped", func(t *testing.T) {
		t.Parallel()
		samples := []TimingSample{
			{Column: 0, Deviation: 1},
			{Column: 9, Deviation: 1},
			{Column: -1, Deviation: 1},
		}
		cols := ComputeColumns(samples, 4, p)
		require.Len(t, cols, 4)
		total := 0
		for _, c := range cols {
			total += c.Counts.Total()
		}
		assert.Equal(t, 1, total)
	})
}
