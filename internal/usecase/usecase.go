package usecase

import (
	"context"
	"path/filepath"

	"github.com/vhhr7/tcreader/internal/domain/report"
	"github.com/vhhr7/tcreader/internal/ports"
	"github.com/vhhr7/tcreader/internal/types"
)

type Deps struct {
	Prober ports.Prober
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	// Paths are the staged media files to inspect, in report order.
	Paths []string
	Kind  types.MediaKind
	Logf  func(format string, args ...any)
}

type Result struct {
	Entries []report.Entry
	Text    string
}

// Run probes every input in order and builds the report. The first
// probe or build failure aborts the batch.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	logf := in.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	files := make([]types.MediaFile, 0, len(in.Paths))
	for _, path := range in.Paths {
		logf("probing %s", filepath.Base(path))
		meta, err := u.d.Prober.Probe(ctx, path)
		if err != nil {
			return Result{}, err
		}
		files = append(files, types.MediaFile{Name: filepath.Base(path), Meta: meta})
	}

	entries, err := report.Build(files, in.Kind)
	if err != nil {
		return Result{}, err
	}
	return Result{Entries: entries, Text: report.Render(entries)}, nil
}
