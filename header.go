// SPDX-License-Identifier: MIT

package yaz0

import "encoding/binary"

// Yaz0 stream layout constants.
const (
	// HeaderSize is the fixed size, in bytes, of a Yaz0 header.
	HeaderSize = 16

	// minMatchLen is the shortest match length representable in short form.
	minMatchLen = 3
	// minLongMatchLen is the shortest length that must use long form (3+15).
	minLongMatchLen = minMatchLen + 15
	// maxMatchLen is the longest match length a single token can encode (18+255).
	maxMatchLen = minLongMatchLen + 255
	// maxMatchDistance is the largest back-reference distance the format allows.
	maxMatchDistance = 1 << 12

	// flagBits is the number of tokens governed by one flag byte.
	flagBits = 8
)

// magic holds the four bytes every Yaz0 stream must begin with.
var magic = [4]byte{'Y', 'a', 'z', '0'}

// IsYaz0 reports whether b begins with the Yaz0 magic "Yaz0". It requires at
// least 4 bytes; shorter input is reported as not-Yaz0 rather than an error,
// matching the C reference's is_valid, which reads only 4 bytes unconditionally.
func IsYaz0(b []byte) bool {
	if len(b) < 4 {
		return false
	}
	return b[0] == magic[0] && b[1] == magic[1] && b[2] == magic[2] && b[3] == magic[3]
}

// PeekDecompressedSize reads the decompressed size from a Yaz0 header without
// decoding any payload. It requires at least 8 bytes and a valid magic.
func PeekDecompressedSize(b []byte) (uint32, error) {
	if len(b) < 8 {
		return 0, ErrInputTooShort
	}
	if !IsYaz0(b) {
		return 0, ErrBadMagic
	}
	return binary.BigEndian.Uint32(b[4:8]), nil
}

// EncodeBound returns the largest possible size of Encode's output for an
// n-byte input: the 16-byte header, plus n bytes of worst-case all-literal
// payload, plus one flag byte per 8 literals (rounded up), plus one more byte
// of slack for a final partial flag byte.
func EncodeBound(n int) int {
	return HeaderSize + n + (n+flagBits-1)/flagBits + 1
}

// writeHeader writes the 16-byte Yaz0 header (magic, big-endian decompressed
// size, eight reserved zero bytes) to dst[0:16]. dst must have room for it.
func writeHeader(dst []byte, decompressedSize int) {
	dst[0], dst[1], dst[2], dst[3] = magic[0], magic[1], magic[2], magic[3]
	binary.BigEndian.PutUint32(dst[4:8], uint32(decompressedSize)) //nolint:gosec // G115: caller-bounded input size
	for i := 8; i < HeaderSize; i++ {
		dst[i] = 0
	}
}
