// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/go-cmp/cmp"
	"github.com/google/oss-unwrap/pkg/archive/archivetest"
	"github.com/pkg/errors"
)

func TestExtractZip(t *testing.T) {
	testCases := []struct {
		test     string
		input    []archivetest.ZipEntry
		expected map[string]string
	}{
		{
			test:     "empty",
			expected: map[string]string{},
		},
		{
			test: "files-and-subdirs",
			input: []archivetest.ZipEntry{
				{FileHeader: &zip.FileHeader{Name: "a.txt"}, Body: []byte("hello")},
				{FileHeader: &zip.FileHeader{Name: "sub/b.txt"}, Body: []byte("world")},
			},
			expected: map[string]string{
				"a.txt":     "hello",
				"sub/":      "",
				"sub/b.txt": "world",
			},
		},
		{
			test: "explicit-dir",
			input: []archivetest.ZipEntry{
				{FileHeader: &zip.FileHeader{Name: "dir/"}, Body: nil},
			},
			expected: map[string]string{
				"dir/": "",
			},
		},
		{
			test: "parent-traversal",
			input: []archivetest.ZipEntry{
				{FileHeader: &zip.FileHeader{Name: "../../evil.txt"}, Body: []byte("evil")},
			},
			expected: map[string]string{
				"evil.txt": "evil",
			},
		},
		{
			test: "absolute",
			input: []archivetest.ZipEntry{
				{FileHeader: &zip.FileHeader{Name: "/etc/evil.txt"}, Body: []byte("evil")},
			},
			expected: map[string]string{
				"etc/":         "",
				"etc/evil.txt": "evil",
			},
		},
		{
			test: "backslash-traversal",
			input: []archivetest.ZipEntry{
				{FileHeader: &zip.FileHeader{Name: `..\..\evil.txt`}, Body: []byte("evil")},
			},
			expected: map[string]string{
				"evil.txt": "evil",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.test, func(t *testing.T) {
			input := must(archivetest.ZipFile(tc.input))
			zr := must(zip.NewReader(bytes.NewReader(input.Bytes()), int64(input.Len())))
			fsys := memfs.New()
			if err := ExtractZip(zr, fsys); err != nil {
				t.Fatalf("ExtractZip(%v) = %v, want nil", tc.test, err)
			}
			got := tree(t, fsys)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Fatalf("ExtractZip(%v) returned diff (-want +got):\n%s", tc.test, diff)
			}
		})
	}
}

func TestExtractZipPermissions(t *testing.T) {
	exe := &zip.FileHeader{Name: "bin/run.sh"}
	exe.SetMode(0755)
	private := &zip.FileHeader{Name: "secret"}
	private.SetMode(0600)
	input := must(archivetest.ZipFile([]archivetest.ZipEntry{
		{FileHeader: exe, Body: []byte("#!/bin/sh\n")},
		{FileHeader: private, Body: []byte("shh")},
	}))
	zr := must(zip.NewReader(bytes.NewReader(input.Bytes()), int64(input.Len())))
	dir := t.TempDir()
	if err := ExtractZip(zr, osfs.New(dir, osfs.WithBoundOS())); err != nil {
		t.Fatalf("ExtractZip() = %v, want nil", err)
	}
	for name, want := range map[string]os.FileMode{"bin/run.sh": 0755, "secret": 0600} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("Stat(%s) = %v", name, err)
		}
		if got := info.Mode().Perm(); got != want {
			t.Errorf("%s mode = %v, want %v", name, got, want)
		}
	}
}

func TestExtractZipSymlink(t *testing.T) {
	inside := &zip.FileHeader{Name: "link"}
	inside.SetMode(os.ModeSymlink | 0777)
	outside := &zip.FileHeader{Name: "escape"}
	outside.SetMode(os.ModeSymlink | 0777)
	input := must(archivetest.ZipFile([]archivetest.ZipEntry{
		{FileHeader: &zip.FileHeader{Name: "target.txt"}, Body: []byte("t")},
		{FileHeader: inside, Body: []byte("target.txt")},
		{FileHeader: outside, Body: []byte("../../etc/passwd")},
	}))
	zr := must(zip.NewReader(bytes.NewReader(input.Bytes()), int64(input.Len())))
	fsys := memfs.New()
	if err := ExtractZip(zr, fsys); err != nil {
		t.Fatalf("ExtractZip() = %v, want nil", err)
	}
	want := map[string]string{
		"target.txt": "t",
		"link":       "-> target.txt",
	}
	if diff := cmp.Diff(want, tree(t, fsys)); diff != "" {
		t.Fatalf("ExtractZip() returned diff (-want +got):\n%s", diff)
	}
}

func TestUnpackCorruptZip(t *testing.T) {
	input := must(archivetest.ZipFile([]archivetest.ZipEntry{
		{FileHeader: &zip.FileHeader{Name: "a.txt", Method: zip.Deflate}, Body: []byte(strings.Repeat("hello", 100))},
	}))
	// Truncate into the central directory.
	b := input.Bytes()[:input.Len()-10]
	err := Unpack(memfs.New(), bytes.NewReader(b), ZipFormat)
	var ae *Error
	if !errors.As(err, &ae) || ae.Op != OpCorruptStream {
		t.Fatalf("Unpack(truncated zip) = %v, want corrupt stream error", err)
	}
}

// tree describes the contents of fsys: directories end in "/", symlinks map
// to "-> target" and files map to their content.
func tree(t *testing.T, fsys billy.Filesystem) map[string]string {
	t.Helper()
	got := make(map[string]string)
	err := util.Walk(fsys, "/", func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(filepath.ToSlash(path), "/")
		if rel == "" {
			return nil
		}
		switch {
		case info.Mode()&os.ModeSymlink != 0:
			target, err := fsys.Readlink(path)
			if err != nil {
				return err
			}
			got[rel] = "-> " + filepath.ToSlash(target)
		case info.IsDir():
			got[rel+"/"] = ""
		default:
			f, err := fsys.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			got[rel] = string(must(io.ReadAll(f)))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walking filesystem: %v", err)
	}
	return got
}

func must[T any](t T, err error) T {
	orDie(err)
	return t
}

func orDie(err error) {
	if err != nil {
		panic(err)
	}
}

func TestZipCompatibleReader(t *testing.T) {
	tests := []struct {
		name       string
		input      io.Reader
		size       int64
		expectRead bool
	}{
		{
			name:  "Test with Seekable ReaderAt",
			input: bytes.NewReader([]byte("test data")),
			size:  9,
		},
		{
			name:       "Test with Non-Seekable ReaderAt",
			input:      &noSeekReaderAt{bytes.NewReader([]byte("test data")), false},
			size:       9,
			expectRead: true,
		},
		{
			name:       "Test with non-ReadAt Reader",
			input:      &noReadAtSeeker{bytes.NewReader([]byte("test data")), false},
			size:       9,
			expectRead: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			readerAt, size, err := ZipCompatibleReader(tc.input)
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if readerAt == nil {
				t.Errorf("Unexpected nil reader")
			}
			if size != tc.size {
				t.Errorf("Expected size %d but got %d", tc.size, size)
			}
			if tc.expectRead && !tc.input.(readSpy).ReadCalled() {
				t.Error("Expected reader to have been read")
			}
		})
	}
}

type readSpy interface {
	io.Reader
	ReadCalled() bool
}

type noSeekReaderAt struct {
	io.ReaderAt
	readCalled bool
}

func (ns *noSeekReaderAt) ReadCalled() bool { return ns.readCalled }

func (ns *noSeekReaderAt) Read(p []byte) (n int, err error) {
	ns.readCalled = true
	return ns.ReaderAt.(io.Reader).Read(p)
}

func (ns *noSeekReaderAt) ReadAt(p []byte, off int64) (int, error) { return ns.ReaderAt.ReadAt(p, off) }

type noReadAtSeeker struct {
	io.ReadSeeker
	readCalled bool
}

func (ns *noReadAtSeeker) ReadCalled() bool { return ns.readCalled }

func (ns *noReadAtSeeker) Read(p []byte) (n int, err error) {
	ns.readCalled = true
	return ns.ReadSeeker.Read(p)
}

func (ns *noReadAtSeeker) Seek(off int64, w int) (int64, error) { return ns.ReadSeeker.Seek(off, w) }
