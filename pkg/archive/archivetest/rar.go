// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package archivetest

// Go provides no rar encoder, so rar fixtures are precomputed stored
// (uncompressed) archives created on a unix host.

// Rar4 is a RAR 1.5-4.x archive holding the directory "sub" (mode 0750), the
// file "sub/b.txt" ("world", mode 0600), the file "a.txt" ("hello", mode 0644)
// and the traversing entry "../evil.txt" ("evil", mode 0644).
var Rar4 = []byte{
	0x52, 0x61, 0x72, 0x21, 0x1a, 0x07, 0x00, 0xcf, 0x90, 0x73, 0x00, 0x00,
	0x0d, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x34, 0xea, 0x74, 0xe0,
	0x80, 0x23, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x21, 0x58, 0x1d, 0x30, 0x03, 0x00,
	0xe8, 0x41, 0x00, 0x00, 0x73, 0x75, 0x62, 0xd9, 0xd6, 0x74, 0x00, 0x80,
	0x29, 0x00, 0x05, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00, 0x03, 0x43,
	0x11, 0x77, 0x3a, 0x00, 0x00, 0x21, 0x58, 0x1d, 0x30, 0x09, 0x00, 0x80,
	0x81, 0x00, 0x00, 0x73, 0x75, 0x62, 0x5c, 0x62, 0x2e, 0x74, 0x78, 0x74,
	0x77, 0x6f, 0x72, 0x6c, 0x64, 0x8f, 0xa1, 0x74, 0x00, 0x80, 0x25, 0x00,
	0x05, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00, 0x03, 0x86, 0xa6, 0x10,
	0x36, 0x00, 0x00, 0x21, 0x58, 0x1d, 0x30, 0x05, 0x00, 0xa4, 0x81, 0x00,
	0x00, 0x61, 0x2e, 0x74, 0x78, 0x74, 0x68, 0x65, 0x6c, 0x6c, 0x6f, 0x00,
	0x9f, 0x74, 0x00, 0x80, 0x2b, 0x00, 0x04, 0x00, 0x00, 0x00, 0x04, 0x00,
	0x00, 0x00, 0x03, 0x52, 0x31, 0xfb, 0x8d, 0x00, 0x00, 0x21, 0x58, 0x1d,
	0x30, 0x0b, 0x00, 0xa4, 0x81, 0x00, 0x00, 0x2e, 0x2e, 0x5c, 0x65, 0x76,
	0x69, 0x6c, 0x2e, 0x74, 0x78, 0x74, 0x65, 0x76, 0x69, 0x6c, 0xc4, 0x3d,
	0x7b, 0x00, 0x40, 0x07, 0x00,
}

// Rar5 is a RAR 5.0 archive with the same entries as Rar4.
var Rar5 = []byte{
	0x52, 0x61, 0x72, 0x21, 0x1a, 0x07, 0x01, 0x00, 0xc5, 0x1a, 0x33, 0x32,
	0x03, 0x01, 0x00, 0x00, 0x5a, 0xc2, 0xa7, 0x08, 0x0e, 0x02, 0x02, 0x00,
	0x01, 0x00, 0xe8, 0x83, 0x01, 0x00, 0x01, 0x03, 0x73, 0x75, 0x62, 0x35,
	0x65, 0x50, 0x23, 0x18, 0x02, 0x02, 0x05, 0x04, 0x05, 0x80, 0x83, 0x02,
	0x43, 0x11, 0x77, 0x3a, 0x00, 0x01, 0x09, 0x73, 0x75, 0x62, 0x2f, 0x62,
	0x2e, 0x74, 0x78, 0x74, 0x77, 0x6f, 0x72, 0x6c, 0x64, 0xb0, 0xf4, 0x7c,
	0x85, 0x14, 0x02, 0x02, 0x05, 0x04, 0x05, 0xa4, 0x83, 0x02, 0x86, 0xa6,
	0x10, 0x36, 0x00, 0x01, 0x05, 0x61, 0x2e, 0x74, 0x78, 0x74, 0x68, 0x65,
	0x6c, 0x6c, 0x6f, 0x1e, 0xc9, 0x69, 0x1b, 0x1a, 0x02, 0x02, 0x04, 0x04,
	0x04, 0xa4, 0x83, 0x02, 0x52, 0x31, 0xfb, 0x8d, 0x00, 0x01, 0x0b, 0x2e,
	0x2e, 0x2f, 0x65, 0x76, 0x69, 0x6c, 0x2e, 0x74, 0x78, 0x74, 0x65, 0x76,
	0x69, 0x6c, 0x19, 0xb2, 0x3a, 0x35, 0x03, 0x05, 0x00, 0x00,
}

// Rar4Symlinks is a RAR 1.5-4.x archive holding the file "target.txt" ("t"),
// the symlink "link" to "target.txt" and the symlink "escape" to
// "../../etc/passwd".
var Rar4Symlinks = []byte{
	0x52, 0x61, 0x72, 0x21, 0x1a, 0x07, 0x00, 0xcf, 0x90, 0x73, 0x00, 0x00,
	0x0d, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x49, 0xdd, 0x74, 0x00,
	0x80, 0x2a, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x03,
	0xa8, 0x5a, 0x6a, 0x85, 0x00, 0x00, 0x21, 0x58, 0x1d, 0x30, 0x0a, 0x00,
	0xa4, 0x81, 0x00, 0x00, 0x74, 0x61, 0x72, 0x67, 0x65, 0x74, 0x2e, 0x74,
	0x78, 0x74, 0x74, 0x6d, 0x44, 0x74, 0x00, 0x80, 0x24, 0x00, 0x0a, 0x00,
	0x00, 0x00, 0x0a, 0x00, 0x00, 0x00, 0x03, 0x49, 0xba, 0xa4, 0x00, 0x00,
	0x00, 0x21, 0x58, 0x1d, 0x30, 0x04, 0x00, 0xff, 0xa1, 0x00, 0x00, 0x6c,
	0x69, 0x6e, 0x6b, 0x74, 0x61, 0x72, 0x67, 0x65, 0x74, 0x2e, 0x74, 0x78,
	0x74, 0x5a, 0x99, 0x74, 0x00, 0x80, 0x26, 0x00, 0x10, 0x00, 0x00, 0x00,
	0x10, 0x00, 0x00, 0x00, 0x03, 0x03, 0x6b, 0x40, 0xdf, 0x00, 0x00, 0x21,
	0x58, 0x1d, 0x30, 0x06, 0x00, 0xff, 0xa1, 0x00, 0x00, 0x65, 0x73, 0x63,
	0x61, 0x70, 0x65, 0x2e, 0x2e, 0x2f, 0x2e, 0x2e, 0x2f, 0x65, 0x74, 0x63,
	0x2f, 0x70, 0x61, 0x73, 0x73, 0x77, 0x64, 0xc4, 0x3d, 0x7b, 0x00, 0x40,
	0x07, 0x00,
}
