// Package report turns probed media files into the timecode report.
//
// Build produces structured entries so callers (summary table, JSON
// output) do not have to scrape text; Render reproduces the historical
// block layout byte for byte, since downstream consumers compare it.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vhhr7/tcreader/internal/domain/mediameta"
	"github.com/vhhr7/tcreader/internal/domain/timecode"
	"github.com/vhhr7/tcreader/internal/types"
)

var (
	// ErrMissingDuration means a video container carried no format-level
	// duration. There is no sane default, so the batch fails.
	ErrMissingDuration = errors.New("format duration missing")

	// ErrUnknownKind rejects media kinds outside audio/video.
	ErrUnknownKind = errors.New("unknown media kind")
)

// audioStartRate is the frame rate used for audio start timecodes. Audio
// files carry no frame rate of their own, so the report assumes NTSC
// film rate.
const audioStartRate = 23.976

// Entry is one file's worth of report data.
type Entry struct {
	Name string
	Kind types.MediaKind

	// Audio fields.
	TimeReference int64
	SampleRate    int

	// StartTimecode is set for both kinds.
	StartTimecode string

	// Video fields.
	EndTimecode      string
	DurationTimecode string
}

// Build evaluates every file and returns one entry per input, in input
// order. The first failing file aborts the whole batch.
func Build(files []types.MediaFile, kind types.MediaKind) ([]Entry, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, string(kind))
	}

	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		var (
			e   Entry
			err error
		)
		switch kind {
		case types.KindAudio:
			e = buildAudio(f)
		case types.KindVideo:
			e, err = buildVideo(f)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func buildAudio(f types.MediaFile) Entry {
	sampleRate := mediameta.SampleRate(f.Meta)
	timeReference := mediameta.TimeReference(f.Meta)
	startSeconds := float64(timeReference) / float64(sampleRate)
	return Entry{
		Name:          f.Name,
		Kind:          types.KindAudio,
		TimeReference: timeReference,
		SampleRate:    sampleRate,
		StartTimecode: timecode.FromSeconds(startSeconds, audioStartRate),
	}
}

func buildVideo(f types.MediaFile) (Entry, error) {
	frameRate, err := mediameta.FrameRate(f.Meta)
	if err != nil {
		return Entry{}, err
	}
	if f.Meta.Format.Duration == "" {
		return Entry{}, ErrMissingDuration
	}
	duration, err := strconv.ParseFloat(f.Meta.Format.Duration, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parse format duration %q: %w", f.Meta.Format.Duration, err)
	}

	start := mediameta.StartTimecode(f.Meta)
	durationTC := timecode.FromSeconds(duration, frameRate)
	return Entry{
		Name:          f.Name,
		Kind:          types.KindVideo,
		StartTimecode: start,
		// End timecode uses the fixed 24fps adder regardless of the
		// stream rate; see timecode.AdditionRate.
		EndTimecode:      timecode.Add(start, durationTC),
		DurationTimecode: durationTC,
	}, nil
}

// Render formats entries as the plain-text report: one block per file,
// each terminated by a blank line.
func Render(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		switch e.Kind {
		case types.KindAudio:
			fmt.Fprintf(&b, "Audio Results (%s):\n", e.Name)
			fmt.Fprintf(&b, "Time Reference: %d\n", e.TimeReference)
			fmt.Fprintf(&b, "Sample Rate: %d\n", e.SampleRate)
			fmt.Fprintf(&b, "Start Timecode: %s\n\n", e.StartTimecode)
		case types.KindVideo:
			fmt.Fprintf(&b, "Video Results (%s):\n", e.Name)
			fmt.Fprintf(&b, "Start Timecode: %s\n", e.StartTimecode)
			fmt.Fprintf(&b, "End Timecode: %s\n", e.EndTimecode)
			fmt.Fprintf(&b, "Duration in Timecode Format: %s\n\n", e.DurationTimecode)
		}
	}
	return b.String()
}
