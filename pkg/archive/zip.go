// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/pkg/errors"
)

// ExtractZip writes the contents of a zip to a filesystem.
//
// Entry names are sanitized with entryPath and unix modes recorded in the
// archive are preserved. Symlink entries are created only when their target
// stays within the filesystem root.
func ExtractZip(zr *zip.Reader, fsys billy.Filesystem, opts ...Option) error {
	o := newOptions(opts)
	var dirs []dirMode
	for _, zf := range zr.File {
		path, err := entryPath(fsys, zf.Name)
		if err != nil {
			return createErr(ZipFormat, zf.Name, err)
		}
		if path == "" {
			continue
		}
		mode := zf.Mode()
		switch {
		case strings.HasSuffix(zf.Name, "/") || mode.IsDir():
			perm := dirPerm(mode)
			if err := fsys.MkdirAll(path, perm|0700); err != nil {
				return createErr(ZipFormat, path, err)
			}
			dirs = append(dirs, dirMode{path, perm})
		case mode&os.ModeSymlink != 0:
			if err := extractZipSymlink(fsys, zf, path, o.logger); err != nil {
				return err
			}
		default:
			if err := extractZipFile(fsys, zf, path, filePerm(mode)); err != nil {
				return err
			}
		}
	}
	return applyDirModes(fsys, ZipFormat, dirs)
}

func extractZipFile(fsys billy.Filesystem, zf *zip.File, path string, perm os.FileMode) error {
	rc, err := zf.Open()
	if err != nil {
		return corruptErr(ZipFormat, zf.Name, err)
	}
	defer rc.Close()
	return writeFile(fsys, ZipFormat, path, perm, rc)
}

// maxLinkTarget bounds the body read for a symlink entry.
const maxLinkTarget = 4096

func extractZipSymlink(fsys billy.Filesystem, zf *zip.File, path string, logger *log.Logger) error {
	rc, err := zf.Open()
	if err != nil {
		return corruptErr(ZipFormat, zf.Name, err)
	}
	defer rc.Close()
	target, err := io.ReadAll(io.LimitReader(rc, maxLinkTarget))
	if err != nil {
		return corruptErr(ZipFormat, zf.Name, err)
	}
	if !linkInside(path, string(target)) {
		logger.Printf("skipping symlink %s: target %s is outside of the destination", zf.Name, target)
		return nil
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return createErr(ZipFormat, path, err)
	}
	if err := fsys.Symlink(filepath.FromSlash(string(target)), path); err != nil {
		return createErr(ZipFormat, path, err)
	}
	return nil
}

// filePerm returns the permission bits to apply to a regular zip entry.
// Entries carrying no permission bits are written 0644.
func filePerm(mode os.FileMode) os.FileMode {
	if perm := mode.Perm(); perm != 0 {
		return perm
	}
	return 0644
}

func dirPerm(mode os.FileMode) os.FileMode {
	if perm := mode.Perm(); perm != 0 {
		return perm
	}
	return 0755
}

// ZipCompatibleReader coerces an io.Reader into an io.ReaderAt required to construct a zip.Reader.
func ZipCompatibleReader(r io.Reader) (io.ReaderAt, int64, error) {
	seeker, seekerOK := r.(io.Seeker)
	readerAt, readerOK := r.(io.ReaderAt)
	if seekerOK && readerOK {
		pos, err := seeker.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, 0, errors.Wrap(err, "locating reader position")
		}
		size, err := seeker.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, 0, errors.Wrap(err, "retrieving size")
		}
		if _, err := seeker.Seek(pos, io.SeekStart); err != nil {
			return nil, 0, errors.Wrap(err, "restoring reader position")
		}
		return readerAt, size, nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, errors.Wrap(err, "buffering reader")
	}
	return bytes.NewReader(b), int64(len(b)), nil
}
