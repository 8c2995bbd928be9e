// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// tarBlockSize is the size of a tar header block and the most content Detect inspects.
const tarBlockSize = 512

type signature struct {
	format Format
	offset int
	magic  []byte
}

// signatures lists the magic bytes of each format, checked in order.
// References:
//   - zip: APPNOTE.TXT 4.3.7, 4.3.16 and 8.5.3 (local header, empty archive, spanned)
//   - xz: https://tukaani.org/xz/xz-file-format-1.0.4.txt
//   - gzip: RFC 1952 (ID1 ID2 CM=deflate)
//   - bzip2: "BZh" followed by the block size digit
//   - rar: RAR 1.5-4.x and RAR 5.0 marker blocks
var signatures = []signature{
	{ZipFormat, 0, []byte("PK\x03\x04")},
	{ZipFormat, 0, []byte("PK\x05\x06")},
	{ZipFormat, 0, []byte("PK\x07\x08")},
	{XzFormat, 0, []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}},
	{GzipFormat, 0, []byte{0x1F, 0x8B, 0x08}},
	{RarFormat, 0, []byte("Rar!\x1A\x07\x00")},
	{RarFormat, 0, []byte("Rar!\x1A\x07\x01\x00")},
}

// DetectFile classifies the content of the file at path.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return UnsupportedFormat, openErr(UnsupportedFormat, path, err)
	}
	defer f.Close()
	format, err := Detect(f)
	if err != nil {
		return UnsupportedFormat, openErr(UnsupportedFormat, path, err)
	}
	return format, nil
}

// Detect classifies the content read from r.
//
// At most one tar block is consumed from r.
func Detect(r io.Reader) (Format, error) {
	header := make([]byte, tarBlockSize)
	n, err := io.ReadFull(r, header)
	switch err {
	case nil, io.EOF, io.ErrUnexpectedEOF:
	default:
		return UnsupportedFormat, errors.Wrap(err, "reading header")
	}
	return DetectHeader(header[:n]), nil
}

// DetectHeader classifies content from its leading bytes.
func DetectHeader(header []byte) Format {
	for _, sig := range signatures {
		if matches(header, sig.offset, sig.magic) {
			return sig.format
		}
	}
	if isBzip2(header) {
		return Bzip2Format
	}
	if isTar(header) {
		return TarFormat
	}
	return UnsupportedFormat
}

func matches(header []byte, offset int, magic []byte) bool {
	if len(header) < offset+len(magic) {
		return false
	}
	return bytes.Equal(header[offset:offset+len(magic)], magic)
}

func isBzip2(header []byte) bool {
	return len(header) >= 4 && bytes.HasPrefix(header, []byte("BZh")) && header[3] >= '1' && header[3] <= '9'
}

var (
	magicUSTAR = []byte("ustar\x0000")
	magicGNU   = []byte("ustar  \x00")
)

// isTar recognizes POSIX and GNU headers by their magic and pre-POSIX headers
// by a valid header checksum.
func isTar(header []byte) bool {
	if len(header) < tarBlockSize {
		return false
	}
	if matches(header, 257, magicUSTAR) || matches(header, 257, magicGNU) {
		return true
	}
	if header[0] == 0 {
		return false
	}
	want, ok := parseOctal(header[148:156])
	if !ok {
		return false
	}
	var unsigned, signed int64
	for i, b := range header[:tarBlockSize] {
		if i >= 148 && i < 156 {
			b = ' '
		}
		unsigned += int64(b)
		signed += int64(int8(b))
	}
	return want == unsigned || want == signed
}

func parseOctal(field []byte) (int64, bool) {
	s := string(bytes.Trim(field, " \x00"))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 8, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
