package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vhhr7/tcreader/internal/types"
)

const version = "1.2.0"

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "tcreader",
		Short:        "Read embedded timecode metadata from media files",
		Version:      version,
		SilenceUsage: true,
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.PersistentFlags().String("config", "", "Config file (default: search tcreader.yaml)")
	root.PersistentFlags().String("ffprobe", "", "ffprobe binary path")
	root.PersistentFlags().String("out", "", "Output directory for report.txt (empty: stdout only)")
	root.PersistentFlags().String("cache", "", "Cache directory for staged copies")
	root.PersistentFlags().String("table", "", "Summary table: auto, always, never")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress output")

	audio := &cobra.Command{
		Use:   "audio <files...>",
		Short: "Report BWF time reference and start timecode for audio files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, types.KindAudio)
		},
	}
	video := &cobra.Command{
		Use:   "video <files...>",
		Short: "Report start, end and duration timecodes for video files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, types.KindVideo)
		},
	}
	root.AddCommand(audio, video)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
