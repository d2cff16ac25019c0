package nist //nolint:testpackage // testing internals

import (
	"bytes"
	"testing"
)

func TestLeftEncode(t *testing.T) {
	for _, tc := range []struct {
		value uint64
		want  []byte
	}{
		{0, []byte{0x01, 0x00}},
		{1, []byte{0x01, 0x01}},
		{136, []byte{0x01, 0x88}},
		{168, []byte{0x01, 0xA8}},
		{256, []byte{0x02, 0x01, 0x00}},
		{65536, []byte{0x03, 0x01, 0x00, 0x00}},
	} {
		if got := LeftEncode(tc.value); !bytes.Equal(got, tc.want) {
			t.Errorf("LeftEncode(%d) = %x, want = %x", tc.value, got, tc.want)
		}
	}
}

func TestRightEncode(t *testing.T) {
	for _, tc := range []struct {
		value uint64
		want  []byte
	}{
		{0, []byte{0x00, 0x01}},
		{1, []byte{0x01, 0x01}},
		{136, []byte{0x88, 0x01}},
		{256, []byte{0x01, 0x00, 0x02}},
	} {
		if got := RightEncode(tc.value); !bytes.Equal(got, tc.want) {
			t.Errorf("RightEncode(%d) = %x, want = %x", tc.value, got, tc.want)
		}
	}
}

func TestEncodeString(t *testing.T) {
	if got, want := EncodeString(nil), []byte{0x01, 0x00}; !bytes.Equal(got, want) {
		t.Errorf("EncodeString(nil) = %x, want = %x", got, want)
	}

	if got, want := EncodeString([]byte("KMAC")), []byte{0x01, 0x20, 'K', 'M', 'A', 'C'}; !bytes.Equal(got, want) {
		t.Errorf("EncodeString(KMAC) = %x, want = %x", got, want)
	}
}

func TestBytepad(t *testing.T) {
	got := Bytepad(EncodeString([]byte("KMAC")), 8)
	want := []byte{0x01, 0x08, 0x01, 0x20, 'K', 'M', 'A', 'C'}
	if !bytes.Equal(got, want) {
		t.Errorf("Bytepad = %x, want = %x", got, want)
	}

	for _, w := range []int{8, 136, 168} {
		for n := range 64 {
			z := Bytepad(make([]byte, n), w)
			if len(z)%w != 0 {
				t.Errorf("Bytepad(%d bytes, %d) has length %d", n, w, len(z))
			}
		}
	}
}
