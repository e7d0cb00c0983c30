// Package replay reads the timing deviation dumps a client writes out
// after a finished play.
package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"hiterror/analysis"
)

// Decode reads one JSON deviation dump. Dumps that are unusable as a
// whole, a non-positive map duration or samples out of time order, come
// back as errors; individually malformed samples survive decoding and
// are dealt with by Sanitize.
func Decode(r io.Reader) (*analysis.SampleSet, error) {
	var set analysis.SampleSet
	if err := json.NewDecoder(r).Decode(&set); err != nil {
		return nil, fmt.Errorf("decode dump: %w", err)
	}
	if err := Validate(&set); err != nil {
		return nil, err
	}
	return &set, nil
}

func DecodeFile(path string) (*analysis.SampleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	set, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}
