package ffprobe

import "testing"

const sampleJSON = `{
  "streams": [
    {
      "index": 0,
      "codec_type": "video",
      "r_frame_rate": "24000/1001",
      "tags": {"timecode": "01:00:00:00"}
    },
    {
      "index": 1,
      "codec_type": "audio",
      "sample_rate": "48000",
      "tags": {"time_reference": "172800"}
    }
  ],
  "format": {
    "filename": "reel.mov",
    "duration": "600.500000",
    "tags": {"timecode": "01:00:00:00"}
  }
}`

func TestParse(t *testing.T) {
	meta, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if meta.Format.Duration != "600.500000" {
		t.Fatalf("duration = %q", meta.Format.Duration)
	}
	if meta.Format.Tags["timecode"] != "01:00:00:00" {
		t.Fatalf("format timecode tag = %q", meta.Format.Tags["timecode"])
	}
	if len(meta.Streams) != 2 {
		t.Fatalf("expected 2 streams, got %d", len(meta.Streams))
	}
	if meta.Streams[0].RFrameRate != "24000/1001" {
		t.Fatalf("r_frame_rate = %q", meta.Streams[0].RFrameRate)
	}
	if meta.Streams[1].SampleRate != "48000" {
		t.Fatalf("sample_rate = %q", meta.Streams[1].SampleRate)
	}
	if meta.Streams[1].Tags["time_reference"] != "172800" {
		t.Fatalf("time_reference tag = %q", meta.Streams[1].Tags["time_reference"])
	}
}

func TestParse_PartialAndInvalid(t *testing.T) {
	meta, err := Parse([]byte(`{"format": {}}`))
	if err != nil {
		t.Fatalf("parse minimal: %v", err)
	}
	if len(meta.Streams) != 0 || meta.Format.Duration != "" {
		t.Fatalf("unexpected fields in minimal parse: %+v", meta)
	}

	if _, err := Parse([]byte("not json")); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
