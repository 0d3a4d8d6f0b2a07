// SPDX-License-Identifier: MIT

package yaz0

// Encode compresses src into a new Yaz0 stream, allocating an output buffer
// of EncodeBound(len(src)) bytes and returning the trimmed result. Encode
// rejects an empty src with ErrZeroSize: a stream declaring decompressed
// size 0 could never itself be decoded, per Decode's own rejection of that
// header field.
func Encode(src []byte) ([]byte, error) {
	dst := make([]byte, EncodeBound(len(src)))
	n, err := EncodeInto(src, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// EncodeInto compresses src into dst, which must be at least
// EncodeBound(len(src)) bytes, and returns the number of bytes written.
// src and dst must not overlap.
func EncodeInto(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, ErrZeroSize
	}

	bound := EncodeBound(len(src))
	if len(dst) < bound {
		return 0, ErrDestTooSmall
	}

	writeHeader(dst, len(src))
	w := newFlagWriter(dst, HeaderSize)

	// Inputs shorter than 16 bytes (and the last 12-byte tail of any input)
	// never satisfy ip < ipLimit below, so they fall straight through to the
	// literal flush after the loop — no separate small-input branch needed.
	m := newMatcher(src)
	ipBound := len(src) - 4
	ipLimit := len(src) - 13

	anchor := 0
	ip := 2

	for ip < ipLimit {
		ref, ok := m.find(ip)
		if !ok {
			ip++
			continue
		}

		if anchor < ip {
			w.emitLiterals(src[anchor:ip], ip-anchor)
		}

		length := m.extend(ip, ref, ipBound)
		distance := ip - ref
		w.emitMatch(length, distance)

		ip += length
		anchor = ip

		// Prime the table at the match boundary so the very next positions
		// are discoverable as match candidates too. A long match can carry ip
		// past the point where a 4-byte read is safe, so both inserts are
		// bounds-checked independently.
		if ip+4 <= len(src) {
			m.insert(ip)
		}
		if ip+1+4 <= len(src) {
			m.insert(ip + 1)
		}
	}

	w.emitLiterals(src[anchor:], len(src)-anchor)
	return w.pos, nil
}
