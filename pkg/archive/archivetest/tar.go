// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package archivetest builds wrapped fixtures for tests.
package archivetest

import (
	"archive/tar"
	"bytes"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

// TarEntry represents an entry in a tar archive.
type TarEntry struct {
	*tar.Header
	Body []byte
}

// TarFile returns a tar of entries. Regular entries have their size set from Body.
func TarFile(entries []TarEntry) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	tw := tar.NewWriter(buf)
	for _, entry := range entries {
		if entry.Header.Typeflag == tar.TypeReg {
			entry.Header.Size = int64(len(entry.Body))
		}
		if err := tw.WriteHeader(entry.Header); err != nil {
			return nil, err
		}
		if _, err := tw.Write(entry.Body); err != nil {
			return nil, err
		}
	}
	if err := tw.Close(); err != nil {
		return nil, err
	}
	return buf, nil
}

// TgzFile returns a gzip-compressed tar of entries.
func TgzFile(entries []TarEntry) (*bytes.Buffer, error) {
	buf, err := TarFile(entries)
	if err != nil {
		return nil, err
	}
	return Gzip(buf.Bytes())
}

// TxzFile returns an xz-compressed tar of entries.
func TxzFile(entries []TarEntry) (*bytes.Buffer, error) {
	buf, err := TarFile(entries)
	if err != nil {
		return nil, err
	}
	return Xz(buf.Bytes())
}

// Gzip compresses b into a single gzip member.
func Gzip(b []byte) (*bytes.Buffer, error) {
	zbuf := new(bytes.Buffer)
	w := gzip.NewWriter(zbuf)
	if _, err := w.Write(b); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return zbuf, nil
}

// Xz compresses b into an xz stream.
func Xz(b []byte) (*bytes.Buffer, error) {
	zbuf := new(bytes.Buffer)
	w, err := xz.NewWriter(zbuf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(b); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return zbuf, nil
}
