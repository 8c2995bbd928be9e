// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	billy "github.com/go-git/go-billy/v5"
	"github.com/pkg/errors"
)

// entryPath maps an archive entry name onto a path relative to the root of fsys.
//
// Absolute names and ".." components are rebased beneath the root, and
// directory components that are symlinks already extracted into fsys are
// resolved without leaving it. The final component is not resolved. An empty
// result denotes the root itself.
func entryPath(fsys billy.Filesystem, name string) (string, error) {
	name = filepath.FromSlash(strings.ReplaceAll(name, `\`, "/"))
	clean := filepath.Clean(string(filepath.Separator) + name)
	if clean == string(filepath.Separator) {
		return "", nil
	}
	unsafeDir, file := filepath.Split(clean)
	dir, err := securejoin.SecureJoinVFS(string(filepath.Separator), unsafeDir, rootVFS{fsys})
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", name)
	}
	rel := strings.TrimPrefix(filepath.Join(dir, file), string(filepath.Separator))
	if !filepath.IsLocal(rel) {
		return "", errors.Errorf("entry %s resolves outside of the destination", name)
	}
	return rel, nil
}

// rootVFS presents fsys to securejoin, which passes rooted paths. Some billy
// implementations resolve rooted paths against the host, so they are made
// relative first.
type rootVFS struct {
	fs billy.Filesystem
}

func (v rootVFS) Lstat(name string) (os.FileInfo, error) {
	return v.fs.Lstat(relative(name))
}

func (v rootVFS) Readlink(name string) (string, error) {
	return v.fs.Readlink(relative(name))
}

func relative(name string) string {
	if rel := strings.TrimLeft(name, string(filepath.Separator)); rel != "" {
		return rel
	}
	return "."
}

// linkInside reports whether a symlink at rel pointing to target stays within the root.
func linkInside(rel, target string) bool {
	target = filepath.FromSlash(target)
	if filepath.IsAbs(target) {
		return false
	}
	return filepath.IsLocal(filepath.Join(filepath.Dir(rel), target))
}

// writeFile creates rel in fsys with the given permissions and fills it from src.
func writeFile(fsys billy.Filesystem, f Format, rel string, perm os.FileMode, src io.Reader) error {
	if err := fsys.MkdirAll(filepath.Dir(rel), 0755); err != nil {
		return createErr(f, rel, err)
	}
	out, err := fsys.OpenFile(rel, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return createErr(f, rel, err)
	}
	if err := copyStream(f, rel, out, src); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return createErr(f, rel, err)
	}
	return chmod(fsys, f, rel, perm)
}

// chmod applies perm to rel when fsys supports mode changes. OpenFile and
// MkdirAll are subject to the process umask.
func chmod(fsys billy.Filesystem, f Format, rel string, perm os.FileMode) error {
	ch, ok := fsys.(billy.Change)
	if !ok {
		return nil
	}
	if err := ch.Chmod(rel, perm); err != nil {
		return createErr(f, rel, err)
	}
	return nil
}
