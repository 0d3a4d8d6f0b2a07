package yaz0

import (
	"encoding/binary"
	"testing"
)

func TestIsYaz0(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want bool
	}{
		{"valid magic", []byte("Yaz0rest"), true},
		{"wrong magic", []byte("Yay0rest"), false},
		{"too short", []byte("Yaz"), false},
		{"empty", nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsYaz0(c.in); got != c.want {
				t.Fatalf("IsYaz0(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestPeekDecompressedSize(t *testing.T) {
	hdr := make([]byte, HeaderSize)
	writeHeader(hdr, 0x1234)

	size, err := PeekDecompressedSize(hdr)
	if err != nil {
		t.Fatalf("PeekDecompressedSize failed: %v", err)
	}
	if size != 0x1234 {
		t.Fatalf("got size %d, want %d", size, 0x1234)
	}
}

func TestPeekDecompressedSizeErrors(t *testing.T) {
	if _, err := PeekDecompressedSize([]byte("Yaz0")); err != ErrInputTooShort {
		t.Fatalf("got %v, want ErrInputTooShort", err)
	}
	if _, err := PeekDecompressedSize([]byte("Yay0\x00\x00\x00\x01")); err != ErrBadMagic {
		t.Fatalf("got %v, want ErrBadMagic", err)
	}
}

func TestWriteHeaderLayout(t *testing.T) {
	dst := make([]byte, HeaderSize)
	writeHeader(dst, 1000)

	if string(dst[0:4]) != "Yaz0" {
		t.Fatalf("bad magic bytes: %v", dst[0:4])
	}
	if got := binary.BigEndian.Uint32(dst[4:8]); got != 1000 {
		t.Fatalf("bad size field: got %d, want 1000", got)
	}
	for i := 8; i < HeaderSize; i++ {
		if dst[i] != 0 {
			t.Fatalf("reserved byte %d not zero: %#x", i, dst[i])
		}
	}
}

func TestEncodeBoundMonotonic(t *testing.T) {
	prev := EncodeBound(0)
	for n := 1; n <= 4096; n++ {
		b := EncodeBound(n)
		if b < prev {
			t.Fatalf("EncodeBound not monotonic at n=%d: %d < %d", n, b, prev)
		}
		if b < n+HeaderSize {
			t.Fatalf("EncodeBound(%d) = %d smaller than input+header", n, b)
		}
		prev = b
	}
}
