package yaz0

import "testing"

func TestMatcherFindsRepeatedSequence(t *testing.T) {
	input := append([]byte("the quick brown fox "), []byte("the quick brown fox jumps")...)
	m := newMatcher(input)

	// prime the table over the first occurrence
	for i := 0; i < 20; i++ {
		if i+4 <= len(input) {
			m.insert(i)
		}
	}

	// the second "the" starts at 20, right after the 20-byte first occurrence
	ref, ok := m.find(20)
	if !ok {
		t.Fatal("expected a match at the second occurrence")
	}
	if ref != 0 {
		t.Fatalf("expected match to reference position 0, got %d", ref)
	}
}

func TestMatcherRejectsTooFarDistance(t *testing.T) {
	input := make([]byte, 5000)
	copy(input[0:4], []byte{0xAA, 0xBB, 0xCC, 0xDD})
	copy(input[4900:4904], []byte{0xAA, 0xBB, 0xCC, 0xDD})

	m := newMatcher(input)
	m.insert(0)

	if _, ok := m.find(4900); ok {
		t.Fatal("expected no match: distance 4900 exceeds maxMatchDistance")
	}
}

func TestMatcherRejectsHashCollisionWithDifferentBytes(t *testing.T) {
	input := make([]byte, 32)
	copy(input[0:4], []byte{0x01, 0x02, 0x03, 0x99})
	copy(input[10:14], []byte{0x04, 0x05, 0x06, 0x99})

	m := newMatcher(input)
	m.insert(0)

	// Different 3-byte prefixes essentially never collide in practice, but
	// find() must verify the bytes anyway rather than trusting the hash.
	if _, ok := m.find(10); ok {
		t.Fatal("expected no match: 3-byte sequences differ")
	}
}

func TestMatcherExtendCountsFullRun(t *testing.T) {
	input := append([]byte("XYZ"), append(make([]byte, 20), []byte("XYZ")...)...)
	for i := range input[3:23] {
		input[3+i] = 'A'
	}
	// input = "XYZ" + 20*'A' + "XYZ"
	m := newMatcher(input)
	ipBound := len(input) - 4
	length := m.extend(23, 0, ipBound)
	if length != 3 {
		t.Fatalf("expected match length 3 (only the XYZ prefix matches), got %d", length)
	}
}

func TestMatcherExtendClampsToBound(t *testing.T) {
	input := bytesRepeat('Z', 300)
	m := newMatcher(input)
	ipBound := len(input) - 4
	length := m.extend(3, 0, ipBound)
	if length != ipBound-3 {
		t.Fatalf("extend did not clamp to ipBound: got %d, want %d", length, ipBound-3)
	}
}

func bytesRepeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
