package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vhhr7/tcreader/internal/domain/report"
	"github.com/vhhr7/tcreader/internal/ports"
	"github.com/vhhr7/tcreader/internal/ports/adapters/ffprobe"
	"github.com/vhhr7/tcreader/internal/types"
	"github.com/vhhr7/tcreader/internal/usecase"
)

type Config struct {
	Inputs []string
	Kind   types.MediaKind
	Logf   func(format string, args ...any)

	// CacheDir is the base directory for staged input copies. If empty,
	// defaults to ".cache".
	CacheDir string

	// OutDir receives the report.txt artifact. Empty disables the file.
	OutDir string

	FFprobePath string

	// Prober overrides the ffprobe adapter; used by tests.
	Prober ports.Prober
}

func (c Config) Validate() error {
	if len(c.Inputs) == 0 {
		return errors.New("no input files")
	}
	if !c.Kind.Valid() {
		return fmt.Errorf("media kind %q: want %s or %s", string(c.Kind), types.KindAudio, types.KindVideo)
	}
	for _, in := range c.Inputs {
		if _, err := os.Stat(in); err != nil {
			return fmt.Errorf("stat input: %w", err)
		}
	}
	return nil
}

type Result struct {
	Entries    []report.Entry
	Text       string
	ReportPath string
}

func Run(ctx context.Context, cfg Config) (Result, error) {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	prober := cfg.Prober
	if prober == nil {
		prober = ffprobe.New(cfg.FFprobePath)
	}

	warnExtensionMismatches(cfg.Inputs, cfg.Kind, logf)

	baseCache := cfg.CacheDir
	if baseCache == "" {
		baseCache = ".cache"
	}
	runID := hash(strings.Join(cfg.Inputs, "|"))
	stageDir := filepath.Join(baseCache, "runs", runID)
	logf("staging %d file(s) to %s", len(cfg.Inputs), stageDir)

	staged, err := stageInputs(cfg.Inputs, stageDir)
	if err != nil {
		return Result{}, err
	}

	uc := usecase.New(usecase.Deps{Prober: prober})
	res, err := uc.Run(ctx, usecase.Input{Paths: staged, Kind: cfg.Kind, Logf: logf})
	if err != nil {
		return Result{}, err
	}

	out := Result{Entries: res.Entries, Text: res.Text}
	if cfg.OutDir != "" {
		runOutDir := buildRunOutDir(cfg.OutDir, cfg.Kind, time.Now().UTC())
		if err := os.MkdirAll(runOutDir, 0o755); err != nil {
			return Result{}, err
		}
		out.ReportPath = filepath.Join(runOutDir, "report.txt")
		if err := os.WriteFile(out.ReportPath, []byte(res.Text), 0o644); err != nil {
			return Result{}, err
		}
		logf("report written: %s", out.ReportPath)
	}
	return out, nil
}

// stageInputs copies every input into its own subdirectory of stageDir
// so probing never touches the caller's files and duplicate base names
// cannot collide. Base names are preserved because they become the
// report's display names.
func stageInputs(inputs []string, stageDir string) ([]string, error) {
	staged := make([]string, 0, len(inputs))
	for i, in := range inputs {
		dir := filepath.Join(stageDir, fmt.Sprintf("%03d", i+1))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		dst := filepath.Join(dir, filepath.Base(in))
		if err := copyFile(in, dst); err != nil {
			return nil, fmt.Errorf("stage %s: %w", in, err)
		}
		staged = append(staged, dst)
	}
	return staged, nil
}

func copyFile(src, dst string) error {
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// extension hints mirror the upload filters of the original UI. A
// mismatch is only worth a warning: containers lie and ffprobe decides.
var kindByExt = map[string]types.MediaKind{
	".wav": types.KindAudio,
	".mp4": types.KindVideo,
	".mov": types.KindVideo,
	".avi": types.KindVideo,
	".mxf": types.KindVideo,
}

func warnExtensionMismatches(inputs []string, kind types.MediaKind, logf func(string, ...any)) {
	for _, in := range inputs {
		ext := strings.ToLower(filepath.Ext(in))
		if hint, ok := kindByExt[ext]; ok && hint != kind {
			logf("warning: %s looks like %s input, processing as %s", filepath.Base(in), hint, kind)
		}
	}
}

func buildRunOutDir(outRoot string, kind types.MediaKind, now time.Time) string {
	ts := now.UTC().Format("20060102-150405Z")
	seed := fmt.Sprintf("%s|%d", kind, now.UTC().UnixNano())
	return filepath.Join(outRoot, fmt.Sprintf("%s-%s-%s", kind, ts, hash(seed)[:6]))
}

func hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:12]
}
