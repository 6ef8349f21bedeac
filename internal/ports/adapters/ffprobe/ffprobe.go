// Package ffprobe shells out to ffprobe and decodes its JSON output.
package ffprobe

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/vhhr7/tcreader/internal/types"
)

type Adapter struct {
	bin string
}

func New(binPath string) *Adapter {
	if binPath == "" {
		binPath = "ffprobe"
	}
	return &Adapter{bin: binPath}
}

// Probe runs a single ffprobe call with format and stream sections
// enabled and returns the decoded result.
func (a *Adapter) Probe(ctx context.Context, path string) (types.ProbeData, error) {
	cmd := exec.CommandContext(ctx, a.bin,
		"-v", "error",
		"-show_format",
		"-show_streams",
		"-of", "json",
		"--", path,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return types.ProbeData{}, fmt.Errorf("ffprobe %q: %w\n%s", path, err, string(b))
	}
	return Parse(b)
}
