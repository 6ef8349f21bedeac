package timecode

import (
	"math"
	"testing"
)

func TestFromSeconds_Table(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		rate    float64
		want    string
	}{
		{"zero at 23.976", 0, 23.976, "00:00:00:00"},
		{"zero at 25", 0, 25, "00:00:00:00"},
		{"one second at 23.976", 1, 23.976, "00:00:01:00"},
		{"half second at 24", 0.5, 24, "00:00:00:12"},
		{"ten seconds at 23.976", 10, 23.976, "00:00:10:00"},
		{"one hour at 24", 3600, 24, "01:00:00:00"},
		{"ndf drift at 29.97", 1, 29.97, "00:00:01:00"},
		{"hours not wrapped", 25 * 3600, 24, "25:00:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromSeconds(tt.seconds, tt.rate); got != tt.want {
				t.Fatalf("FromSeconds(%v, %v) = %q, want %q", tt.seconds, tt.rate, got, tt.want)
			}
		})
	}
}

func TestToSeconds_Table(t *testing.T) {
	tests := []struct {
		name string
		tc   string
		rate float64
		want float64
	}{
		{"zero", "00:00:00:00", 24, 0},
		{"plain seconds", "00:00:10:00", 24, 10},
		{"frames", "00:00:00:12", 24, 0.5},
		{"hours minutes", "01:30:00:00", 24, 5400},
		{"trailing garbage ignored", "00:00:10:00;drop", 24, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToSeconds(tt.tc, tt.rate); math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("ToSeconds(%q, %v) = %v, want %v", tt.tc, tt.rate, got, tt.want)
			}
		})
	}
}

func TestToSeconds_Unparseable(t *testing.T) {
	for _, tc := range []string{"", "garbage", "1:02:03:04", "00:00:00", "0a:00:00:00"} {
		if got := ToSeconds(tc, 24); got != 0 {
			t.Fatalf("ToSeconds(%q) = %v, want 0", tc, got)
		}
	}
}

func TestRoundTripWithinOneFrame(t *testing.T) {
	// Fractional rates accumulate ~0.1% drift per second because the frame
	// base rounds to an integer, so only short durations are sampled there.
	rates := []float64{23.976, 24, 25, 29.97, 30}
	seconds := []float64{0, 0.04, 1, 1.5, 12.75, 29.5}
	for _, r := range rates {
		for _, s := range seconds {
			got := ToSeconds(FromSeconds(s, r), r)
			if math.Abs(got-s) > 1/r+1e-9 {
				t.Fatalf("round trip at %v fps: %v -> %v (off by more than one frame)", r, s, got)
			}
		}
	}
	for _, r := range []float64{24, 25, 30} {
		for _, s := range []float64{59.99, 61.02, 3599.5, 7261.25} {
			got := ToSeconds(FromSeconds(s, r), r)
			if math.Abs(got-s) > 1/r+1e-9 {
				t.Fatalf("round trip at %v fps: %v -> %v (off by more than one frame)", r, s, got)
			}
		}
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"00:00:00:00", "00:00:00:00", "00:00:00:00"},
		{"00:00:10:00", "00:00:05:12", "00:00:15:12"},
		{"00:00:00:23", "00:00:00:01", "00:00:01:00"},
		{"01:00:00:00", "00:00:10:00", "01:00:10:00"},
		{"23:59:59:23", "00:00:00:01", "24:00:00:00"},
	}
	for _, tt := range tests {
		if got := Add(tt.a, tt.b); got != tt.want {
			t.Fatalf("Add(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAdd_UnparseableOperandIsZero(t *testing.T) {
	if got := Add("not a timecode", "00:00:10:00"); got != "00:00:10:00" {
		t.Fatalf("Add with bad operand = %q, want 00:00:10:00", got)
	}
}
