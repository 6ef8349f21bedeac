package types

// ProbeData is the decoded ffprobe output for a single media file. Every
// field is optional: ffprobe reports only what the container carries, so
// consumers must treat empty strings and nil maps as "absent".
type ProbeData struct {
	Format  Format   `json:"format"`
	Streams []Stream `json:"streams"`
}

// Format holds container-level metadata.
type Format struct {
	Filename string            `json:"filename"`
	Duration string            `json:"duration"`
	Tags     map[string]string `json:"tags"`
}

// Stream holds the per-stream fields the extractors care about. Numeric
// values stay strings because ffprobe emits them as JSON strings.
type Stream struct {
	Index      int               `json:"index"`
	CodecType  string            `json:"codec_type"`
	SampleRate string            `json:"sample_rate"`
	RFrameRate string            `json:"r_frame_rate"`
	Tags       map[string]string `json:"tags"`
}

// MediaKind selects the report branch for a batch of files.
type MediaKind string

const (
	KindAudio MediaKind = "audio"
	KindVideo MediaKind = "video"
)

// Valid reports whether k is one of the supported kinds.
func (k MediaKind) Valid() bool {
	return k == KindAudio || k == KindVideo
}

// MediaFile pairs an input's display name with its probed metadata.
type MediaFile struct {
	Name string
	Meta ProbeData
}
