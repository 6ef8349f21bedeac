package ffprobe

import (
	"encoding/json"
	"fmt"

	"github.com/vhhr7/tcreader/internal/types"
)

// Parse decodes raw ffprobe JSON. Exported so tests can exercise the
// adapter without a real binary.
func Parse(data []byte) (types.ProbeData, error) {
	var meta types.ProbeData
	if err := json.Unmarshal(data, &meta); err != nil {
		return types.ProbeData{}, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return meta, nil
}
