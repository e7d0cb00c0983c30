package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/levigross/grequests"

	"hiterror/analysis"
	"hiterror/replay"
)

const fetchTimeout = 30 * time.Second

// fetchDump downloads a deviation dump from an http(s) URL.
func fetchDump(url string) (*analysis.SampleSet, error) {
	resp, err := grequests.Get(url, &grequests.RequestOptions{
		RequestTimeout: fetchTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Close()
	if !resp.Ok {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	set, err := replay.Decode(bytes.NewReader(resp.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return set, nil
}
