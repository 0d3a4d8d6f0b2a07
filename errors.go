// SPDX-License-Identifier: MIT

package yaz0

import "errors"

// Sentinel errors for encoding and decoding. Use errors.Is to test for these.
var (
	// ErrInputTooShort is returned when an operation is given fewer bytes than
	// it needs to make progress (e.g. a Yaz0 stream shorter than the header).
	ErrInputTooShort = errors.New("yaz0: input too short")
	// ErrBadMagic is returned when the first four bytes are not "Yaz0".
	ErrBadMagic = errors.New("yaz0: bad magic")
	// ErrZeroSize is returned when a header declares a decompressed size of 0,
	// or when Encode is given empty input that would produce one.
	ErrZeroSize = errors.New("yaz0: declared decompressed size is zero")
	// ErrDestTooSmall is returned when a caller-supplied buffer cannot hold the result.
	ErrDestTooSmall = errors.New("yaz0: destination buffer too small")
	// ErrTruncated is returned when the source ends in the middle of a token.
	ErrTruncated = errors.New("yaz0: truncated stream")
	// ErrBadBackref is returned when a match reference points before the start of output.
	ErrBadBackref = errors.New("yaz0: back-reference distance exceeds bytes written")
	// ErrOutputOverrun is returned when a match would write past the output capacity.
	ErrOutputOverrun = errors.New("yaz0: match would overrun output capacity")
	// ErrReaderTooLarge is returned by DecodeReader when the source exceeds its size guard.
	ErrReaderTooLarge = errors.New("yaz0: reader input exceeds maximum allowed size")
)
