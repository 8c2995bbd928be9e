// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package archivetest

// Go provides no bzip2 encoder, so bzip2 fixtures are precomputed.

// Bzip2Text is the bzip2 compression of Bzip2TextBody.
var Bzip2Text = []byte{
	0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0xab, 0x6b,
	0xa1, 0xf1, 0x00, 0x00, 0x02, 0xd9, 0x80, 0x00, 0x10, 0x40, 0x00, 0x10,
	0x00, 0x12, 0x64, 0xc0, 0x10, 0x20, 0x00, 0x31, 0x00, 0xd3, 0x4d, 0x04,
	0x00, 0x1e, 0xa3, 0xef, 0x4e, 0x51, 0xa2, 0x07, 0x8b, 0xb9, 0x22, 0x9c,
	0x28, 0x48, 0x55, 0xb5, 0xd0, 0xf8, 0x80,
}

// Bzip2TextBody is the payload of Bzip2Text.
const Bzip2TextBody = "hello bzip2\n"

// Bzip2Tar is the bzip2 compression of a ustar archive holding the single
// regular file "x.txt" with content "data" and mode 0644.
var Bzip2Tar = []byte{
	0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0xe6, 0x94,
	0xa3, 0x67, 0x00, 0x00, 0x72, 0xfb, 0x80, 0xc9, 0x80, 0x00, 0x01, 0x40,
	0x01, 0x45, 0x80, 0x00, 0x08, 0x64, 0x00, 0x1e, 0x40, 0x08, 0x08, 0x20,
	0x00, 0x54, 0x34, 0x83, 0x40, 0x00, 0x3d, 0x41, 0x14, 0x88, 0x34, 0x36,
	0xa0, 0x07, 0xdd, 0xe8, 0x51, 0x10, 0xe3, 0x04, 0x44, 0x9e, 0xa6, 0xc4,
	0x6b, 0x6c, 0x90, 0x48, 0x08, 0x3d, 0x9a, 0x8d, 0x60, 0x4e, 0x68, 0x86,
	0xc2, 0xfa, 0xaa, 0xaa, 0xbd, 0xc3, 0x03, 0x87, 0x26, 0xed, 0x3e, 0x26,
	0x74, 0x44, 0x40, 0x3e, 0x2e, 0xe4, 0x8a, 0x70, 0xa1, 0x21, 0xcd, 0x29,
	0x46, 0xce,
}
