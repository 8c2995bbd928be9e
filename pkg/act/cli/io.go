// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package cli runs act actions as cobra commands and maps their errors to exit
// statuses.
package cli

import "io"

// IO provides input/output streams for CLI commands.
type IO struct {
	In  io.Reader // stdin
	Out io.Writer // stdout
	Err io.Writer // stderr
}
