// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"io"
	"log"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/nwaples/rardecode"
	"github.com/pkg/errors"
)

// ExtractRar writes the contents of a single-volume, unencrypted rar to a filesystem.
//
// Symlinks recorded by unix hosts are created only when their target stays
// within the filesystem root.
func ExtractRar(r io.Reader, fsys billy.Filesystem, opts ...Option) error {
	o := newOptions(opts)
	rr, err := rardecode.NewReader(r, "")
	if err != nil {
		return corruptErr(RarFormat, "", errors.Wrap(err, "initializing rar reader"))
	}
	var dirs []dirMode
	for {
		h, err := rr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return corruptErr(RarFormat, "", errors.Wrap(err, "reading rar header"))
		}
		path, err := entryPath(fsys, h.Name)
		if err != nil {
			return createErr(RarFormat, h.Name, err)
		}
		if path == "" {
			continue
		}
		if h.IsDir {
			perm := dirPerm(h.Mode())
			if err := fsys.MkdirAll(path, perm|0700); err != nil {
				return createErr(RarFormat, path, err)
			}
			dirs = append(dirs, dirMode{path, perm})
			continue
		}
		if h.Mode()&os.ModeSymlink != 0 {
			if err := extractRarSymlink(fsys, h.Name, path, rr, o.logger); err != nil {
				return err
			}
			continue
		}
		if err := writeFile(fsys, RarFormat, path, filePerm(h.Mode()), rr); err != nil {
			return err
		}
	}
	return applyDirModes(fsys, RarFormat, dirs)
}

func extractRarSymlink(fsys billy.Filesystem, name, path string, r io.Reader, logger *log.Logger) error {
	target, err := io.ReadAll(io.LimitReader(r, maxLinkTarget))
	if err != nil {
		return corruptErr(RarFormat, name, err)
	}
	if len(target) == 0 || !linkInside(path, string(target)) {
		logger.Printf("skipping symlink %s: unusable target %q", name, target)
		return nil
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return createErr(RarFormat, path, err)
	}
	if err := fsys.Symlink(filepath.FromSlash(string(target)), path); err != nil {
		return createErr(RarFormat, path, err)
	}
	return nil
}
