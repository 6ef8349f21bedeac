// Package config holds tool settings loadable from a YAML file.
// Precedence is flags > environment > config file > defaults; merging
// happens in the CLI layer.
package config

import "fmt"

// Table output modes.
const (
	TableAuto   = "auto"
	TableAlways = "always"
	TableNever  = "never"
)

type Config struct {
	// FFprobe is the probe binary path or name resolved via PATH.
	FFprobe string `yaml:"ffprobe"`
	// OutDir receives the report.txt artifact.
	OutDir string `yaml:"out_dir"`
	// CacheDir is the base directory for staged input copies.
	CacheDir string `yaml:"cache_dir"`
	// Table controls the summary table: auto, always, never.
	Table string `yaml:"table"`
}

func Default() *Config {
	return &Config{
		FFprobe:  "ffprobe",
		OutDir:   "out",
		CacheDir: ".cache",
		Table:    TableAuto,
	}
}

func (c *Config) Validate() error {
	if c.FFprobe == "" {
		return fmt.Errorf("ffprobe path is empty")
	}
	switch c.Table {
	case TableAuto, TableAlways, TableNever:
	default:
		return fmt.Errorf("table mode %q: want %s, %s or %s", c.Table, TableAuto, TableAlways, TableNever)
	}
	return nil
}
