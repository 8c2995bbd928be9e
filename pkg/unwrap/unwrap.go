// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package unwrap peels wrapping layers off files until plain content remains.
package unwrap

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/oss-unwrap/pkg/archive"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Driver unwraps single inputs into existing destination directories.
type Driver struct {
	logger *log.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger used for progress lines.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// New returns a Driver.
func New(opts ...Option) *Driver {
	d := &Driver{logger: log.Default()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Classify detects the wrapping format of the file at path.
//
// Content matching no known format yields an Unsupported error.
func Classify(path string) (archive.Format, error) {
	f, err := archive.DetectFile(path)
	if err != nil {
		return archive.UnsupportedFormat, &Error{Kind: SourceIO, Format: archive.UnsupportedFormat, Input: path, Err: err}
	}
	if f == archive.UnsupportedFormat {
		return f, &Error{Kind: Unsupported, Format: f, Input: path, Err: ErrUnsupported}
	}
	return f, nil
}

// Unwrap classifies src and unwraps it into dst.
func (d *Driver) Unwrap(src, dst string) (archive.Format, error) {
	f, err := Classify(src)
	if err != nil {
		return f, err
	}
	return f, d.UnwrapAs(f, src, dst)
}

// UnwrapAs unwraps src, already classified as f, into dst.
//
// Archives are unpacked into dst. Compressed streams are decoded into a file
// named Stem(src) within dst; when that file is itself a tar it is unpacked
// into dst as well and removed. Partial output is left in place on failure.
func (d *Driver) UnwrapAs(f archive.Format, src, dst string) error {
	fsys, err := destFS(dst)
	if err != nil {
		return &Error{Kind: DestinationWrite, Format: f, Input: src, Err: err}
	}
	switch {
	case f.IsArchive():
		return d.unpack(fsys, f, src)
	case f.IsCompressor():
		name, err := d.decompress(fsys, f, src)
		if err != nil {
			return err
		}
		return d.recheck(fsys, f, src, name)
	default:
		return &Error{Kind: Unsupported, Format: f, Input: src, Err: ErrUnsupported}
	}
}

// destFS returns a filesystem confined to dst.
//
// BoundOS treats a name equal to its base dir as the root and, by default,
// strips a leading copy of the base dir from names, so the base is made
// absolute and deduplication is disabled to keep entry names literal.
func destFS(dst string) (billy.Filesystem, error) {
	root, err := filepath.Abs(dst)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving destination %s", dst)
	}
	return osfs.New(root, osfs.WithBoundOS(), osfs.WithDeduplicatePath(false)), nil
}

func (d *Driver) unpack(fsys billy.Filesystem, f archive.Format, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return &Error{Kind: SourceIO, Format: f, Input: src, Err: errors.Wrap(err, "opening source")}
	}
	defer in.Close()
	if err := archive.Unpack(fsys, in, f, archive.WithLogger(d.logger)); err != nil {
		return adapterError(f, src, err)
	}
	d.logger.Printf("Unpacked %s archive %s into %s", f, src, fsys.Root())
	return nil
}

// decompress writes the decoded content of src into fsys and returns its name.
func (d *Driver) decompress(fsys billy.Filesystem, f archive.Format, src string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", &Error{Kind: SourceIO, Format: f, Input: src, Err: errors.Wrap(err, "opening source")}
	}
	defer in.Close()
	name := Stem(src)
	out, err := fsys.Create(name)
	if err != nil {
		return "", &Error{Kind: DestinationWrite, Format: f, Input: src, Err: errors.Wrapf(err, "creating %s", name)}
	}
	err = archive.Decompress(out, in, f)
	if cerr := out.Close(); err == nil && cerr != nil {
		return "", &Error{Kind: DestinationWrite, Format: f, Input: src, Err: errors.Wrapf(cerr, "closing %s", name)}
	}
	if err != nil {
		return "", adapterError(f, src, err)
	}
	return name, nil
}

// recheck unpacks the decoded file name if it holds a tar.
func (d *Driver) recheck(fsys billy.Filesystem, f archive.Format, src, name string) error {
	nested, err := detectIn(fsys, name)
	if err != nil {
		return &Error{Kind: NestedUnwrap, Format: f, Input: src, Err: err}
	}
	if nested != archive.TarFormat {
		d.logger.Printf("Decompressed %s stream %s into %s", f, src, fsys.Join(fsys.Root(), name))
		return nil
	}
	tmp := intermediateName()
	if err := fsys.Rename(name, tmp); err != nil {
		return &Error{Kind: NestedUnwrap, Format: f, Input: src, Err: errors.Wrap(err, "renaming intermediate tar")}
	}
	err = d.untar(fsys, tmp)
	if rerr := fsys.Remove(tmp); rerr != nil {
		d.logger.Printf("Failed to remove intermediate %s: %v", fsys.Join(fsys.Root(), tmp), rerr)
	}
	if err != nil {
		return &Error{Kind: NestedUnwrap, Format: f, Input: src, Err: err}
	}
	d.logger.Printf("Unpacked %s-compressed tar %s into %s", f, src, fsys.Root())
	return nil
}

func detectIn(fsys billy.Filesystem, name string) (archive.Format, error) {
	r, err := fsys.Open(name)
	if err != nil {
		return archive.UnsupportedFormat, errors.Wrap(err, "reopening decoded output")
	}
	defer r.Close()
	return archive.Detect(r)
}

func (d *Driver) untar(fsys billy.Filesystem, name string) error {
	r, err := fsys.Open(name)
	if err != nil {
		return errors.Wrap(err, "opening intermediate tar")
	}
	defer r.Close()
	return archive.Unpack(fsys, r, archive.TarFormat, archive.WithLogger(d.logger))
}

// intermediateName returns a fresh hidden file name for a decoded tar.
func intermediateName() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return ".unwrap-" + token[:12]
}

// Stem returns the base name of path without its final extension.
//
// Names that would become empty, such as ".xz", are returned unchanged.
func Stem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." {
		return base
	}
	return stem
}
