// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"fmt"
	"io"
)

// Op identifies which side of an adapter failed.
type Op int

const (
	// OpOpenSource means the source could not be opened or read before decoding began.
	OpOpenSource Op = iota + 1
	// OpCreateDestination means an output file or directory could not be created or written.
	OpCreateDestination
	// OpCorruptStream means the codec rejected the data.
	OpCorruptStream
)

func (o Op) String() string {
	switch o {
	case OpOpenSource:
		return "cannot open source"
	case OpCreateDestination:
		return "cannot create destination"
	case OpCorruptStream:
		return "corrupt stream"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Error is returned by the codec adapters.
type Error struct {
	Op     Op
	Format Format
	// Path is the source file or the archive entry involved, if known.
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s: %v", e.Format, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s %s: %v", e.Format, e.Op, e.Path, e.Err)
}

// Cause returns the underlying error for github.com/pkg/errors.
func (e *Error) Cause() error { return e.Err }

func (e *Error) Unwrap() error { return e.Err }

func openErr(f Format, path string, err error) error {
	return &Error{Op: OpOpenSource, Format: f, Path: path, Err: err}
}

func createErr(f Format, path string, err error) error {
	return &Error{Op: OpCreateDestination, Format: f, Path: path, Err: err}
}

func corruptErr(f Format, path string, err error) error {
	return &Error{Op: OpCorruptStream, Format: f, Path: path, Err: err}
}

// trackedReader remembers the last non-EOF read error so a failed copy can be
// attributed to the source rather than the destination.
type trackedReader struct {
	r   io.Reader
	err error
}

func (t *trackedReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF {
		t.err = err
	}
	return n, err
}

// copyStream copies src into dst, classifying any failure.
func copyStream(f Format, path string, dst io.Writer, src io.Reader) error {
	tr := &trackedReader{r: src}
	if _, err := io.Copy(dst, tr); err != nil {
		if tr.err != nil {
			return corruptErr(f, path, err)
		}
		return createErr(f, path, err)
	}
	return nil
}
