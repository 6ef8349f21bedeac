// Package timecode converts between seconds, frame counts and SMPTE
// `HH:MM:SS:FF` strings. Non-drop-frame only; fractional rates such as
// 23.976 are handled by rounding the rate to its integer frame base.
package timecode

import (
	"fmt"
	"math"
	"regexp"
)

// AdditionRate is the frame rate used by Add for all timecode addition,
// independent of the rate the operands were produced at. Downstream
// reports depend on this exact behavior, so it stays fixed even when the
// stream's real rate differs. Known accuracy limitation for non-24fps
// material.
const AdditionRate = 24

// pattern matches the four two-digit fields at the start of a timecode.
// Trailing characters are ignored, so "01:02:03:04;extra" still parses.
var pattern = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}):(\d{2})`)

// FromSeconds converts a duration in seconds to `HH:MM:SS:FF` at the
// given frame rate. Frame counts round to the nearest integer, ties away
// from zero. Hours are not wrapped at 24.
func FromSeconds(seconds, frameRate float64) string {
	totalFrames := int(math.Round(seconds * frameRate))
	base := int(math.Round(frameRate))

	frames := totalFrames % base
	totalSeconds := totalFrames / base

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, minutes, secs, frames)
}

// ToSeconds converts a `HH:MM:SS:FF` string to seconds at the given
// frame rate. Strings that do not start with the timecode pattern yield
// 0 rather than an error; unparseable start timecodes in the wild are
// treated as midnight.
func ToSeconds(tc string, frameRate float64) float64 {
	m := pattern.FindStringSubmatch(tc)
	if m == nil {
		return 0
	}
	hours := digits(m[1])
	minutes := digits(m[2])
	seconds := digits(m[3])
	frames := digits(m[4])
	return float64(hours*3600+minutes*60+seconds) + float64(frames)/frameRate
}

// Add sums two timecodes at the fixed AdditionRate.
func Add(a, b string) string {
	total := ToSeconds(a, AdditionRate) + ToSeconds(b, AdditionRate)
	return FromSeconds(total, AdditionRate)
}

// digits parses a two-digit field already validated by the pattern.
func digits(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
