// Copyright 2024 The OSS Rebuild Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package archive

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/pkg/errors"
)

// ExtractTar writes the contents of a tar to a filesystem.
//
// Entry names are sanitized with entryPath. Symlinks whose target would leave
// the filesystem root are skipped. Hard links are materialized as copies of the
// previously extracted target. Device, fifo and other special entries are skipped.
// Directory modes are applied once all entries have been written so read-only
// directories can still be populated.
func ExtractTar(tr *tar.Reader, fsys billy.Filesystem, opts ...Option) error {
	o := newOptions(opts)
	var dirs []dirMode
	for {
		h, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return corruptErr(TarFormat, "", errors.Wrap(err, "reading tar header"))
		}
		path, err := entryPath(fsys, h.Name)
		if err != nil {
			return createErr(TarFormat, h.Name, err)
		}
		if path == "" {
			continue
		}
		mode := filePerm(h.FileInfo().Mode())
		switch h.Typeflag {
		case tar.TypeDir:
			perm := dirPerm(h.FileInfo().Mode())
			if err := fsys.MkdirAll(path, perm|0700); err != nil {
				return createErr(TarFormat, path, err)
			}
			dirs = append(dirs, dirMode{path, perm})
		case tar.TypeReg:
			if err := writeFile(fsys, TarFormat, path, mode, tr); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if !linkInside(path, h.Linkname) {
				o.logger.Printf("skipping symlink %s: target %s is outside of the destination", h.Name, h.Linkname)
				continue
			}
			if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return createErr(TarFormat, path, err)
			}
			if err := fsys.Symlink(filepath.FromSlash(h.Linkname), path); err != nil {
				return createErr(TarFormat, path, err)
			}
		case tar.TypeLink:
			target, err := entryPath(fsys, h.Linkname)
			if err != nil || target == "" {
				o.logger.Printf("skipping hard link %s: invalid target %s", h.Name, h.Linkname)
				continue
			}
			if err := copyLink(fsys, path, target, mode); err != nil {
				return err
			}
		default:
			o.logger.Printf("skipping %s: unsupported entry type %q", h.Name, h.Typeflag)
		}
	}
	return applyDirModes(fsys, TarFormat, dirs)
}

type dirMode struct {
	path string
	mode os.FileMode
}

func applyDirModes(fsys billy.Filesystem, f Format, dirs []dirMode) error {
	// Reverse archive order visits children before the parents listed ahead of them.
	for i := len(dirs) - 1; i >= 0; i-- {
		if err := chmod(fsys, f, dirs[i].path, dirs[i].mode); err != nil {
			return err
		}
	}
	return nil
}

func copyLink(fsys billy.Filesystem, path, target string, mode os.FileMode) error {
	src, err := fsys.Open(target)
	if err != nil {
		return createErr(TarFormat, path, errors.Wrapf(err, "opening link target %s", target))
	}
	defer src.Close()
	return writeFile(fsys, TarFormat, path, mode, src)
}
