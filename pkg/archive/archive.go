// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"archive/tar"
	"archive/zip"
	"io"

	billy "github.com/go-git/go-billy/v5"
	"github.com/pkg/errors"
)

// Unpack extracts the multi-entry archive read from src into fsys.
func Unpack(fsys billy.Filesystem, src io.Reader, f Format, opts ...Option) error {
	switch f {
	case ZipFormat:
		ra, size, err := ZipCompatibleReader(src)
		if err != nil {
			return openErr(f, "", errors.Wrap(err, "converting reader"))
		}
		zr, err := zip.NewReader(ra, size)
		if err != nil {
			return corruptErr(f, "", errors.Wrap(err, "initializing zip reader"))
		}
		return ExtractZip(zr, fsys, opts...)
	case TarFormat:
		return ExtractTar(tar.NewReader(src), fsys, opts...)
	case RarFormat:
		return ExtractRar(src, fsys, opts...)
	default:
		return errors.Errorf("%s is not a multi-entry archive", f)
	}
}
