// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package destdir allocates fresh, collision-free output directories.
//
// An Allocator is meant for one process allocating sequentially. It does not
// coordinate with other processes creating directories under the same root;
// each candidate is claimed by a single mkdir, so a racing process only ever
// causes extra suffix increments.
package destdir

import (
	"io/fs"
	"math/big"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pkg/errors"
)

// Allocator creates directories beneath a root.
type Allocator struct {
	root   string
	perm   os.FileMode
	suffix *regexp.Regexp
}

// New returns an Allocator creating directories beneath root.
func New(root string) *Allocator {
	return &Allocator{
		root:   root,
		perm:   0755,
		suffix: regexp.MustCompile(`_\((\d+)\)$`),
	}
}

// Allocate creates a directory named name beneath the root and returns its path.
//
// If name is taken, the numeric suffix "_(n)" of name is incremented, or "_(1)"
// is appended, until an unused name is created. Errors other than a collision
// are returned immediately.
func (a *Allocator) Allocate(name string) (string, error) {
	if name == "" || name == "." || name == ".." {
		return "", errors.Errorf("invalid directory name %q", name)
	}
	candidate := name
	for {
		path := filepath.Join(a.root, candidate)
		err := os.Mkdir(path, a.perm)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", errors.Wrapf(err, "creating directory %s", path)
		}
		candidate = a.Next(candidate)
	}
}

// Next returns the name following name in the disambiguation sequence.
//
// The counter is arbitrary precision and never wraps.
func (a *Allocator) Next(name string) string {
	m := a.suffix.FindStringSubmatchIndex(name)
	if m == nil {
		return name + "_(1)"
	}
	n, ok := new(big.Int).SetString(name[m[2]:m[3]], 10)
	if !ok {
		return name + "_(1)"
	}
	n.Add(n, big.NewInt(1))
	return name[:m[0]] + "_(" + n.String() + ")"
}
