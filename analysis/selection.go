package analysis

// Selection is the active time range, as fractions of the map length.
type Selection struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// MinSelectionWidth is the narrowest time range a session will hold.
const MinSelectionWidth = 0.05

// ColumnMask is a bit set of active columns, bit i for column i.
type ColumnMask uint16

// AllColumns returns a mask with the first keys columns set.
func AllColumns(keys int) ColumnMask {
	return ColumnMask(1)<<keys - 1
}

func (m ColumnMask) Has(column int) bool {
	return column >= 0 && m&(1<<column) != 0
}

// Toggle flips one column's bit. Columns outside 0..keys-1 leave the
// mask unchanged.
func (m ColumnMask) Toggle(column, keys int) ColumnMask {
	if column < 0 || column >= keys {
		return m
	}
	return m ^ 1<<column
}

// Filter returns the samples inside the selection's time range whose
// column is in the mask, in input order. Both range bounds are
// inclusive. An empty result is a valid view, not an error.
func (s *SampleSet) Filter(sel Selection, mask ColumnMask) []TimingSample {
	lo := sel.Start * s.MapDurationMs
	hi := sel.End * s.MapDurationMs
	var out []TimingSample
	for _, smp := range s.Samples {
		if smp.ExpectedTime < lo || smp.ExpectedTime > hi {
			continue
		}
		if !mask.Has(smp.Column) {
			continue
		}
		out = append(out, smp)
	}
	return out
}
