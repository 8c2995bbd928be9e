// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/google/oss-unwrap/pkg/act/cli"
	"github.com/google/oss-unwrap/pkg/destdir"
	"github.com/google/oss-unwrap/pkg/unwrap"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const defaultOutputDir = "."

// Config holds all configuration for the unwrap command.
type Config struct {
	Inputs     []string
	OutputDir  string
	Progress   bool
	ConfigFile string
}

// Validate ensures the configuration is valid.
func (c Config) Validate() error {
	if len(c.Inputs) == 0 {
		return errors.New("at least one input path or base64 string is required")
	}
	if c.OutputDir == "" {
		return errors.New("output-dir must not be empty")
	}
	return nil
}

// fileConfig is the YAML form of the settings in Config.
type fileConfig struct {
	OutputDir string `yaml:"output_dir"`
	Progress  bool   `yaml:"progress"`
}

// Deps holds dependencies for the command.
type Deps struct {
	IO     cli.IO
	Logger *log.Logger
}

// SetIO attaches the command's streams; log lines go to the error stream.
func (d *Deps) SetIO(cio cli.IO) {
	d.IO = cio
	d.Logger = log.New(cio.Err, "", log.LstdFlags)
}

// InitDeps initializes Deps.
func InitDeps(context.Context) (*Deps, error) {
	return &Deps{}, nil
}

func parseArgs(cfg *Config, args []string) error {
	cfg.Inputs = args
	if cfg.ConfigFile == "" {
		return nil
	}
	return loadConfigFile(cfg)
}

// loadConfigFile fills in settings from cfg.ConfigFile that were left at
// their flag defaults.
func loadConfigFile(cfg *Config) error {
	f, err := os.Open(cfg.ConfigFile)
	if err != nil {
		return errors.Wrap(err, "opening config file")
	}
	defer f.Close()
	var fc fileConfig
	if err := yaml.NewDecoder(f).Decode(&fc); err != nil && err != io.EOF {
		return errors.Wrap(err, "reading config file")
	}
	if cfg.OutputDir == defaultOutputDir && fc.OutputDir != "" {
		cfg.OutputDir = fc.OutputDir
	}
	cfg.Progress = cfg.Progress || fc.Progress
	return nil
}

// Report summarizes a run.
type Report struct {
	Results []unwrap.Result
	Failed  int
}

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// Handler unwraps every input and reports the outcome of each.
//
// A non-nil error is returned when any input failed; the Report is still
// returned in that case.
func Handler(ctx context.Context, cfg Config, deps *Deps) (*Report, error) {
	runner := unwrap.NewRunner(unwrap.New(unwrap.WithLogger(deps.Logger)), destdir.New(cfg.OutputDir))
	runner.Logger = deps.Logger
	if cfg.Progress {
		runner.Progress = deps.IO.Err
	}
	report := &Report{Results: runner.Run(ctx, cfg.Inputs)}
	for _, r := range report.Results {
		if r.Err != nil {
			report.Failed++
		}
		writeResult(deps.IO.Out, r)
	}
	if report.Failed > 0 {
		return report, errors.Errorf("%d of %d inputs failed", report.Failed, len(report.Results))
	}
	return report, nil
}

func writeResult(w io.Writer, r unwrap.Result) {
	switch {
	case unwrap.KindOf(r.Err) == unwrap.Unsupported:
		fmt.Fprintf(w, "%s %s\n", yellow("unsupported"), r.Err)
	case r.Err != nil:
		fmt.Fprintf(w, "%s %v\n", red("failed"), r.Err)
	case r.Dest == "":
		fmt.Fprintf(w, "%s %s: %s\n", green("decoded"), r.Input, printable(r.Decoded))
	default:
		fmt.Fprintf(w, "%s %s (%s) -> %s\n", green("extracted"), r.Input, r.Format, r.Dest)
	}
}

// printable renders decoded bytes as text, or as a hex dump if they are not UTF-8.
func printable(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return "\n" + strings.TrimSuffix(hex.Dump(b), "\n")
}

// Command creates a new unwrap command instance.
func Command() *cobra.Command {
	cfg := Config{}
	cmd := &cobra.Command{
		Use:   "unwrap [--output-dir <dir>] [--progress] [--config <file>] <path-or-base64>...",
		Short: "Extract archives and strip compression layers",
		Long: `Extract archives and strip compression layers.

Each argument is either a file path or, when no such file exists, base64 text
to decode. Files are classified by content. zip, tar and rar archives are
unpacked, and xz, gzip and bzip2 streams are decoded; a decoded tar is
unpacked in turn. Each file gets a new directory named after it under
--output-dir, with a numeric suffix when the name is taken.`,
		RunE: cli.RunE(
			&cfg,
			parseArgs,
			InitDeps,
			Handler,
		),
	}
	// Per-input failures already have a report line; usage is printed by the
	// caller for usage errors only.
	cmd.SilenceUsage = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})
	cmd.Flags().AddGoFlagSet(flagSet(cmd.Name(), &cfg))
	return cmd
}

// flagSet returns the command-line flags for the Config struct.
func flagSet(name string, cfg *Config) *flag.FlagSet {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	set.StringVar(&cfg.OutputDir, "output-dir", defaultOutputDir, "the directory in which output directories are created")
	set.BoolVar(&cfg.Progress, "progress", false, "whether to display a progress bar on stderr")
	set.StringVar(&cfg.ConfigFile, "config", "", "a YAML file providing output_dir and progress settings")
	return set
}
