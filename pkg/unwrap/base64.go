// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package unwrap

import (
	"encoding/base64"
	"strings"

	"github.com/google/oss-unwrap/pkg/archive"
	"github.com/pkg/errors"
)

// DecodeBase64 decodes s as standard base64, with or without padding.
// Surrounding whitespace is ignored.
func DecodeBase64(s string) ([]byte, error) {
	text := strings.TrimSpace(s)
	b, err := base64.StdEncoding.DecodeString(text)
	if err == nil {
		return b, nil
	}
	if b, rerr := base64.RawStdEncoding.DecodeString(text); rerr == nil {
		return b, nil
	}
	return nil, &Error{Kind: Base64Decode, Format: archive.Base64Format, Input: s, Err: errors.Wrap(err, "not a file or base64 text")}
}
