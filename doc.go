// SPDX-License-Identifier: MIT

/*
Package yaz0 implements the Yaz0 (a.k.a. SZS) LZ77 compression container used
by Nintendo titles: a 16-byte header (magic, big-endian decompressed size,
8 reserved bytes) followed by a flag-byte/token stream, where each flag byte
governs up to 8 following tokens (1 = literal byte, 0 = 2- or 3-byte match
reference).

Encoding uses a fast, single-candidate hash-table LZ77 match finder over a
4096-byte window — no lazy matching or multi-candidate search, trading ratio
for speed. Decoding performs strict bounds checking on every token and
supports overlapping back-references (distance < length), which are the
normal way runs of a repeated byte are represented.

# Encode

	compressed, err := yaz0.Encode(data)
	if err != nil {
		return err
	}

To reuse caller-managed output memory (no per-call output allocation):

	dst := make([]byte, yaz0.EncodeBound(len(data)))
	n, err := yaz0.EncodeInto(data, dst)
	if err != nil {
		return err
	}
	compressed := dst[:n]

# Decode

	original, err := yaz0.Decode(compressed)
	if err != nil {
		return err
	}

To reuse caller-managed output memory:

	size, err := yaz0.PeekDecompressedSize(compressed)
	if err != nil {
		return err
	}
	dst := make([]byte, size)
	n, err := yaz0.DecodeInto(compressed, dst)

From an io.Reader:

	original, err := yaz0.DecodeReader(r, maxExpectedSize)

# Probing

	if yaz0.IsYaz0(header) {
		size, _ := yaz0.PeekDecompressedSize(header)
		_ = size
	}
*/
package yaz0
