// SPDX-License-Identifier: MIT

package yaz0

import "io"

// Decode decodes a Yaz0 stream, reading the decompressed size from its
// header and allocating an appropriately sized output buffer.
func Decode(src []byte) ([]byte, error) {
	size, err := PeekDecompressedSize(src)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, ErrZeroSize
	}

	dst := make([]byte, size)
	n, err := DecodeInto(src, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// DecodeInto decodes src into dst and returns the number of bytes written.
// len(dst) is the maximum output capacity (maxOut); decoding fails if the
// header declares a larger size than dst can hold. src and dst must not
// overlap.
func DecodeInto(src, dst []byte) (int, error) {
	if len(src) < HeaderSize {
		return 0, ErrInputTooShort
	}
	if !IsYaz0(src) {
		return 0, ErrBadMagic
	}

	declared, err := PeekDecompressedSize(src)
	if err != nil {
		return 0, err
	}
	if declared == 0 {
		return 0, ErrZeroSize
	}
	if int(declared) > len(dst) {
		return 0, ErrDestTooSmall
	}
	maxOut := len(dst)

	in := src[HeaderSize:]
	inPos := 0
	written := 0

	var flag byte
	bitsRemaining := 0

	for written < int(declared) {
		if bitsRemaining == 0 {
			if inPos >= len(in) {
				return 0, ErrTruncated
			}
			flag = in[inPos]
			inPos++
			bitsRemaining = 8
		}

		if flag&0x80 != 0 {
			if inPos >= len(in) || written >= maxOut {
				return 0, ErrTruncated
			}
			dst[written] = in[inPos]
			inPos++
			written++
		} else {
			if inPos+2 > len(in) {
				return 0, ErrTruncated
			}
			b0, b1 := in[inPos], in[inPos+1]
			inPos += 2

			distance := (int(b0&0x0F)<<8 | int(b1)) + 1

			var length int
			if b0>>4 == 0 {
				if inPos >= len(in) {
					return 0, ErrTruncated
				}
				length = int(in[inPos]) + minLongMatchLen
				inPos++
			} else {
				length = int(b0>>4) + 2
			}

			if distance > written {
				return 0, ErrBadBackref
			}
			if written+length > maxOut {
				return 0, ErrOutputOverrun
			}

			copyBackRef(dst, written, distance, length)
			written += length
		}

		flag <<= 1
		bitsRemaining--
	}

	return written, nil
}

// DecodeReader reads all of r, then decodes it as a Yaz0 stream. maxOut
// bounds both the accepted decompressed size and, through EncodeBound(maxOut)
// (maxOut plus the worst-case header and flag-byte framing), the number of
// bytes read from r
// — this keeps a hostile or mistaken "size" claim from forcing an unbounded
// read. It is a convenience wrapper, not a true streaming decoder: the core
// codec always operates on a complete, in-memory buffer.
func DecodeReader(r io.Reader, maxOut int) ([]byte, error) {
	limit := int64(EncodeBound(maxOut)) + 1
	src, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return nil, err
	}
	if int64(len(src)) >= limit {
		return nil, ErrReaderTooLarge
	}

	declared, err := PeekDecompressedSize(src)
	if err != nil {
		return nil, err
	}
	if int(declared) > maxOut {
		return nil, ErrDestTooSmall
	}

	return Decode(src)
}
