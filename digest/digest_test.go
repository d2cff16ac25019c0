package digest_test

import (
	"bytes"
	"testing"

	"github.com/tidelock/keccakite/digest"
	"github.com/tidelock/keccakite/xof"
)

func TestSum(t *testing.T) {
	m := []byte("yes is a world")

	if got, want := digest.Sum(m), xof.KMACXOF256(nil, m, digest.Size, []byte("D")); !bytes.Equal(got, want) {
		t.Errorf("Sum = %x, want = %x", got, want)
	}

	if len(digest.Sum(m)) != digest.Size {
		t.Errorf("digest length = %d, want = %d", len(digest.Sum(m)), digest.Size)
	}
}

func TestTag(t *testing.T) {
	m := []byte("yes is a world")
	pw := []byte("hunter2")

	if got, want := digest.Tag(pw, m), xof.KMACXOF256(pw, m, digest.Size, []byte("T")); !bytes.Equal(got, want) {
		t.Errorf("Tag = %x, want = %x", got, want)
	}

	if bytes.Equal(digest.Tag(pw, m), digest.Sum(m)) {
		t.Error("tag and hash domains must not collide")
	}
}

func TestHashInterface(t *testing.T) {
	h := digest.New()
	_, _ = h.Write([]byte("yes is "))
	_, _ = h.Write([]byte("a world"))

	if got, want := h.Sum(nil), digest.Sum([]byte("yes is a world")); !bytes.Equal(got, want) {
		t.Errorf("incremental = %x, want = %x", got, want)
	}

	if got, want := h.Size(), digest.Size; got != want {
		t.Errorf("Size() = %d, want = %d", got, want)
	}

	h.Reset()
	if got, want := h.Sum(nil), digest.Sum(nil); !bytes.Equal(got, want) {
		t.Errorf("post-reset = %x, want = %x", got, want)
	}
}
