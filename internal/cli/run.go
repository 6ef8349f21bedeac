package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vhhr7/tcreader/internal/config"
	"github.com/vhhr7/tcreader/internal/display"
	"github.com/vhhr7/tcreader/internal/pipeline"
	"github.com/vhhr7/tcreader/internal/types"
)

func run(cmd *cobra.Command, inputs []string, kind types.MediaKind) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	logf := func(format string, args ...any) {
		if !quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
	defer cancel()

	pcfg := pipeline.Config{
		Inputs:      inputs,
		Kind:        kind,
		Logf:        logf,
		CacheDir:    cfg.CacheDir,
		OutDir:      cfg.OutDir,
		FFprobePath: cfg.FFprobe,
	}
	if err := pcfg.Validate(); err != nil {
		return err
	}

	res, err := pipeline.Run(ctx, pcfg)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), res.Text)
	if showTable(cfg.Table) {
		fmt.Fprintln(cmd.OutOrStdout(), display.Summary(res.Entries))
	}
	return nil
}

// loadConfig layers flags over environment over config file over
// defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		path = config.Find()
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadFile(path)
		switch {
		case err == nil:
			cfg = loaded
		case explicit:
			return nil, err
		default:
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: ignoring %s: %v\n", path, err)
		}
	}

	if v := os.Getenv("TCREADER_FFPROBE"); v != "" {
		cfg.FFprobe = v
	}

	if v, _ := cmd.Flags().GetString("ffprobe"); v != "" {
		cfg.FFprobe = v
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir, _ = cmd.Flags().GetString("out")
	}
	if v, _ := cmd.Flags().GetString("cache"); v != "" {
		cfg.CacheDir = v
	}
	if v, _ := cmd.Flags().GetString("table"); v != "" {
		cfg.Table = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func showTable(mode string) bool {
	switch mode {
	case config.TableAlways:
		return true
	case config.TableNever:
		return false
	default:
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}
