// SPDX-License-Identifier: MIT

package yaz0

// matchTableSize is the number of slots in the match finder's hash table.
const matchTableSize = 1 << hashBits

// matcher is a greedy, single-candidate LZ77 hash-table match finder over a
// contiguous input buffer. One matcher is created per Encode call and never
// reused across calls or shared between goroutines.
type matcher struct {
	input []byte
	table [matchTableSize]uint32
}

// newMatcher returns a matcher over input with a freshly zeroed hash table.
func newMatcher(input []byte) *matcher {
	return &matcher{input: input}
}

// insert hashes the 3 bytes at position pos and records pos in that bucket,
// overwriting whatever position was stored there before.
func (m *matcher) insert(pos int) {
	seq := readU32LE(m.input[pos:]) & 0xFFFFFF
	m.table[hash3(seq)] = uint32(pos) //nolint:gosec // G115: pos bounded by input length
}

// find looks up the hash bucket for the 3 bytes at ip, inserts ip into that
// bucket, and reports whether the previous occupant is a usable match: within
// maxMatchDistance and byte-identical for 3 bytes. It always inserts, per
// §4.2 step 1 ("immediately overwrite"), regardless of whether a match is
// found.
func (m *matcher) find(ip int) (ref int, ok bool) {
	seq := readU32LE(m.input[ip:]) & 0xFFFFFF
	h := hash3(seq)
	candidate := int(m.table[h])
	m.table[h] = uint32(ip) //nolint:gosec // G115: ip bounded by input length

	distance := ip - candidate
	if distance <= 0 || distance > maxMatchDistance {
		return 0, false
	}
	if readU32LE(m.input[candidate:])&0xFFFFFF != seq {
		return 0, false
	}
	return candidate, true
}

// extend computes the full match length at (ip, ref), given that the first 3
// bytes are already known to be equal. ipBound is the last input index at
// which a 4-byte read is still safe (len(input)-4).
func (m *matcher) extend(ip, ref, ipBound int) int {
	room := ipBound - (ip + minMatchLen)
	if room < 0 {
		room = 0
	}
	return minMatchLen + comparePrefix(m.input[ref+minMatchLen:], m.input[ip+minMatchLen:], room)
}
