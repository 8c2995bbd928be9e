// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package archive

import "log"

// Option configures an extraction.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger sets the logger that receives notices about skipped entries.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) options {
	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
