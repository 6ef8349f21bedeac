// Package mediameta extracts timecode-related fields from probe output.
//
// Probe output is treated as a loosely populated document: every lookup
// walks an ordered list of sources (container tags before stream tags
// where both exist) and falls back to a documented default when nothing
// matches. Only a malformed r_frame_rate value is an error; everything
// else resolves silently.
package mediameta

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vhhr7/tcreader/internal/types"
)

// Defaults applied when the corresponding field is absent.
const (
	DefaultSampleRate    = 48000
	DefaultTimeReference = 0
	DefaultFrameRate     = 23.976
	DefaultTimecode      = "00:00:00:00"
)

// SampleRate returns the sample rate of the first stream that reports
// one, or DefaultSampleRate.
func SampleRate(meta types.ProbeData) int {
	for _, stream := range meta.Streams {
		if stream.SampleRate == "" {
			continue
		}
		if rate, err := strconv.Atoi(stream.SampleRate); err == nil {
			return rate
		}
	}
	return DefaultSampleRate
}

// TimeReference returns the BWF time reference in samples, checking
// container tags before stream tags, or DefaultTimeReference.
func TimeReference(meta types.ProbeData) int64 {
	if v, ok := meta.Format.Tags["time_reference"]; ok {
		if ref, err := strconv.ParseInt(v, 10, 64); err == nil {
			return ref
		}
	}
	for _, stream := range meta.Streams {
		if v, ok := stream.Tags["time_reference"]; ok {
			if ref, err := strconv.ParseInt(v, 10, 64); err == nil {
				return ref
			}
		}
	}
	return DefaultTimeReference
}

// FrameRate returns the rate of the first stream carrying r_frame_rate,
// or DefaultFrameRate when no stream does. The value is an "N/D"
// rational; anything else is a hard error because a wrong rate would
// silently corrupt every derived timecode.
func FrameRate(meta types.ProbeData) (float64, error) {
	for _, stream := range meta.Streams {
		if stream.RFrameRate == "" {
			continue
		}
		return parseRational(stream.RFrameRate)
	}
	return DefaultFrameRate, nil
}

// StartTimecode returns the embedded start timecode, checking container
// tags before stream tags, or DefaultTimecode.
func StartTimecode(meta types.ProbeData) string {
	if tc, ok := meta.Format.Tags["timecode"]; ok {
		return tc
	}
	for _, stream := range meta.Streams {
		if tc, ok := stream.Tags["timecode"]; ok {
			return tc
		}
	}
	return DefaultTimecode
}

func parseRational(s string) (float64, error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return 0, fmt.Errorf("parse r_frame_rate %q: want N/D", s)
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, fmt.Errorf("parse r_frame_rate %q: %w", s, err)
	}
	d, err := strconv.Atoi(den)
	if err != nil {
		return 0, fmt.Errorf("parse r_frame_rate %q: %w", s, err)
	}
	// ffprobe reports 0/0 or 0/1 for data and attached-picture streams;
	// a non-positive rate cannot drive timecode arithmetic.
	if n <= 0 || d <= 0 {
		return 0, fmt.Errorf("parse r_frame_rate %q: rate is not positive", s)
	}
	return float64(n) / float64(d), nil
}
