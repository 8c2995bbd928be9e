// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package unwrap

import (
	"fmt"

	"github.com/google/oss-unwrap/pkg/archive"
	"github.com/pkg/errors"
)

// Kind classifies why a single input failed.
type Kind int

const (
	// Unsupported means the content matched no known wrapping format.
	Unsupported Kind = iota + 1
	// SourceIO means the input could not be opened or read.
	SourceIO
	// DestinationAllocation means the output directory could not be created.
	DestinationAllocation
	// DestinationWrite means an extracted or decoded file could not be written.
	DestinationWrite
	// Decode means the codec rejected the data.
	Decode
	// NestedUnwrap means decompression succeeded but unpacking the tar it produced failed.
	NestedUnwrap
	// Base64Decode means the input was neither a file nor valid base64.
	Base64Decode
)

func (k Kind) String() string {
	switch k {
	case Unsupported:
		return "unsupported content"
	case SourceIO:
		return "source I/O error"
	case DestinationAllocation:
		return "destination allocation error"
	case DestinationWrite:
		return "destination write error"
	case Decode:
		return "decode error"
	case NestedUnwrap:
		return "nested unwrap error"
	case Base64Decode:
		return "base64 decode error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrUnsupported is the cause of every Unsupported error.
var ErrUnsupported = errors.New("unsupported content type")

// Error describes the failure of a single input.
type Error struct {
	Kind Kind
	// Format is the format being handled when the failure occurred.
	Format archive.Format
	Input  string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case NestedUnwrap:
		return fmt.Sprintf("%s: decompressed %s, but unpacking the nested tar failed: %v", e.Input, e.Format, e.Err)
	case Unsupported, Base64Decode:
		return fmt.Sprintf("%s: %s: %v", e.Input, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s (%s): %v", e.Input, e.Kind, e.Format, e.Err)
	}
}

// Cause returns the underlying error for github.com/pkg/errors.
func (e *Error) Cause() error { return e.Err }

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or zero if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// adapterError attributes a codec adapter failure to a Kind.
func adapterError(f archive.Format, input string, err error) error {
	kind := Decode
	var ae *archive.Error
	if errors.As(err, &ae) {
		switch ae.Op {
		case archive.OpOpenSource:
			kind = SourceIO
		case archive.OpCreateDestination:
			kind = DestinationWrite
		}
	}
	return &Error{Kind: kind, Format: f, Input: input, Err: err}
}
