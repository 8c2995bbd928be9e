// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"compress/bzip2"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
)

// NewDecompressor returns a reader removing the single-stream compression f from r.
func NewDecompressor(f Format, r io.Reader) (io.ReadCloser, error) {
	switch f {
	case XzFormat:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, corruptErr(f, "", errors.Wrap(err, "initializing xz reader"))
		}
		return io.NopCloser(xr), nil
	case GzipFormat:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, corruptErr(f, "", errors.Wrap(err, "initializing gzip reader"))
		}
		return gzr, nil
	case Bzip2Format:
		return io.NopCloser(bzip2.NewReader(r)), nil
	default:
		return nil, errors.Errorf("%s is not a single-stream compressor", f)
	}
}

// Decompress writes the decoded content of src to dst.
func Decompress(dst io.Writer, src io.Reader, f Format) error {
	dr, err := NewDecompressor(f, src)
	if err != nil {
		return err
	}
	defer dr.Close()
	return copyStream(f, "", dst, dr)
}
