// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package unwrap

import (
	"context"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/cheggaaa/pb"
	"github.com/google/oss-unwrap/pkg/archive"
	"github.com/pkg/errors"
)

// Allocator creates a fresh directory for a desired name.
type Allocator interface {
	Allocate(name string) (string, error)
}

// Result is the outcome of a single input.
type Result struct {
	Input  string
	Format archive.Format
	// Dest is the directory allocated for the input, if any.
	Dest string
	// Decoded is the payload of a base64 input.
	Decoded []byte
	Err     error
}

// Runner processes a batch of inputs one at a time.
type Runner struct {
	Driver    *Driver
	Allocator Allocator
	Logger    *log.Logger
	// Progress, when set, receives a progress bar over the batch.
	Progress io.Writer
}

// NewRunner returns a Runner logging to the default logger.
func NewRunner(d *Driver, a Allocator) *Runner {
	return &Runner{Driver: d, Allocator: a, Logger: log.Default()}
}

// Run unwraps each input in order.
//
// Each input is either the path of an existing file or, when no such file
// exists, base64 text. A failed input never stops the batch. Cancelling ctx
// stops the batch between inputs; inputs not started report ctx's error.
func (r *Runner) Run(ctx context.Context, inputs []string) []Result {
	var bar *pb.ProgressBar
	if r.Progress != nil {
		bar = pb.New(len(inputs))
		bar.Output = r.Progress
		bar.Start()
	}
	results := make([]Result, 0, len(inputs))
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{Input: input, Err: errors.Wrap(err, "not started")})
			continue
		}
		results = append(results, r.runOne(input))
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return results
}

func (r *Runner) runOne(input string) Result {
	res := Result{Input: input}
	info, err := os.Stat(input)
	switch {
	case errors.Is(err, fs.ErrPermission):
		res.Err = &Error{Kind: SourceIO, Input: input, Err: errors.Wrap(err, "inspecting input")}
		return res
	case err != nil:
		// Any other failure means there is no file by this name.
		res.Format = archive.Base64Format
		res.Decoded, res.Err = DecodeBase64(input)
		return res
	case info.IsDir():
		res.Err = &Error{Kind: Unsupported, Input: input, Err: errors.Wrap(ErrUnsupported, "input is a directory")}
		return res
	}
	res.Format, res.Err = Classify(input)
	if res.Err != nil {
		return res
	}
	dest, err := r.Allocator.Allocate(Stem(input))
	if err != nil {
		res.Err = &Error{Kind: DestinationAllocation, Format: res.Format, Input: input, Err: err}
		return res
	}
	r.Logger.Printf("Unwrapping %s (%s) into %s", input, res.Format, dest)
	res.Dest = dest
	res.Err = r.Driver.UnwrapAs(res.Format, input, dest)
	return res
}
