// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/google/oss-unwrap/internal/command/extract"
	"github.com/google/oss-unwrap/pkg/act/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	cmd := extract.Command()
	cmd.SilenceErrors = true
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		if cli.ExitCode(err) == cli.ExitUsage {
			cmd.PrintErrln(cmd.UsageString())
		}
	}
	stop()
	os.Exit(cli.ExitCode(err))
}
