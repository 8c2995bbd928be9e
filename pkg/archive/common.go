// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package archive classifies wrapped content and removes single wrapping layers.
package archive

import "fmt"

// Format represents the wrapping format of a file.
type Format int

// Format constants specify the wrapping of a file's content.
const (
	UnsupportedFormat Format = iota
	ZipFormat
	XzFormat
	TarFormat
	GzipFormat
	Bzip2Format
	RarFormat
	Base64Format
)

func (f Format) String() string {
	switch f {
	case UnsupportedFormat:
		return "unsupported"
	case ZipFormat:
		return "zip"
	case XzFormat:
		return "xz"
	case TarFormat:
		return "tar"
	case GzipFormat:
		return "gzip"
	case Bzip2Format:
		return "bzip2"
	case RarFormat:
		return "rar"
	case Base64Format:
		return "base64"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ContentType returns the MIME type of a classified format.
//
// Base64Format and UnsupportedFormat are never produced by content sniffing
// and have no content type.
func (f Format) ContentType() string {
	switch f {
	case ZipFormat:
		return "application/zip"
	case XzFormat:
		return "application/x-xz"
	case TarFormat:
		return "application/x-tar"
	case GzipFormat:
		return "application/gzip"
	case Bzip2Format:
		return "application/x-bzip"
	case RarFormat:
		return "application/vnd.rar"
	default:
		return ""
	}
}

// FormatFromContentType maps a MIME type onto the Format handling it.
func FormatFromContentType(contentType string) Format {
	switch contentType {
	case "application/zip":
		return ZipFormat
	case "application/x-xz":
		return XzFormat
	case "application/x-tar":
		return TarFormat
	case "application/gzip":
		return GzipFormat
	case "application/x-bzip", "application/x-bzip2":
		return Bzip2Format
	case "application/vnd.rar", "application/x-rar-compressed":
		return RarFormat
	default:
		return UnsupportedFormat
	}
}

// IsArchive reports whether f bundles many named entries.
func (f Format) IsArchive() bool {
	return f == ZipFormat || f == TarFormat || f == RarFormat
}

// IsCompressor reports whether f compresses a single stream.
func (f Format) IsCompressor() bool {
	return f == XzFormat || f == GzipFormat || f == Bzip2Format
}
