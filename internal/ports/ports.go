package ports

import (
	"context"

	"github.com/vhhr7/tcreader/internal/types"
)

// Prober inspects a media file on disk and returns its container and
// stream metadata.
type Prober interface {
	Probe(ctx context.Context, path string) (types.ProbeData, error)
}
