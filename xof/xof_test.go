package xof_test

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"testing"

	"golang.org/x/crypto/sha3"

	"github.com/tidelock/keccakite/internal/nist"
	"github.com/tidelock/keccakite/internal/testdata"
	"github.com/tidelock/keccakite/xof"
)

func TestSHA3Vectors(t *testing.T) {
	for _, tc := range []struct {
		name string
		sum  func([]byte) []byte
		m    string
		want string
	}{
		{"224/empty", xof.Sum224, "", "6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7"},
		{"256/empty", xof.Sum256, "", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{"384/empty", xof.Sum384, "", "0c63a75b845e4f7d01107d852e4c2485c51a50aaaa94fc61995e71bbee983a2ac3713831264adb47fb6bd1e058d5f004"},
		{"512/empty", xof.Sum512, "", "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"},
		{"256/abc", xof.Sum256, "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := hex.EncodeToString(tc.sum([]byte(tc.m))); got != tc.want {
				t.Errorf("sum = %s, want = %s", got, tc.want)
			}
		})
	}
}

func TestSHAKEVectors(t *testing.T) {
	if got, want := hex.EncodeToString(xof.SHAKE128(nil, 32)), "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26"; got != want {
		t.Errorf("SHAKE128(\"\", 32) = %s, want = %s", got, want)
	}

	if got, want := hex.EncodeToString(xof.SHAKE256(nil, 64)), "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762fd75dc4ddd8c0f200cb05019d67b592f6fc821c49479ab48640292eacb3b7c4be"; got != want {
		t.Errorf("SHAKE256(\"\", 64) = %s, want = %s", got, want)
	}
}

func TestSHA3CrossCheck(t *testing.T) {
	drbg := testdata.New("keccakite sha3 cross-check")

	for _, n := range []int{0, 1, 71, 72, 135, 136, 137, 500} {
		m := drbg.Data(n)

		w224 := sha3.Sum224(m)
		w256 := sha3.Sum256(m)
		w384 := sha3.Sum384(m)
		w512 := sha3.Sum512(m)

		if got := xof.Sum224(m); !bytes.Equal(got, w224[:]) {
			t.Errorf("Sum224(%d bytes) = %x, want = %x", n, got, w224)
		}
		if got := xof.Sum256(m); !bytes.Equal(got, w256[:]) {
			t.Errorf("Sum256(%d bytes) = %x, want = %x", n, got, w256)
		}
		if got := xof.Sum384(m); !bytes.Equal(got, w384[:]) {
			t.Errorf("Sum384(%d bytes) = %x, want = %x", n, got, w384)
		}
		if got := xof.Sum512(m); !bytes.Equal(got, w512[:]) {
			t.Errorf("Sum512(%d bytes) = %x, want = %x", n, got, w512)
		}
	}
}

func TestSHAKECrossCheck(t *testing.T) {
	drbg := testdata.New("keccakite shake cross-check")

	for _, n := range []int{0, 1, 167, 168, 169, 400} {
		m := drbg.Data(n)

		want := make([]byte, 333)
		sha3.ShakeSum128(want, m)
		if got := xof.SHAKE128(m, len(want)); !bytes.Equal(got, want) {
			t.Errorf("SHAKE128(%d bytes) = %x, want = %x", n, got, want)
		}

		sha3.ShakeSum256(want, m)
		if got := xof.SHAKE256(m, len(want)); !bytes.Equal(got, want) {
			t.Errorf("SHAKE256(%d bytes) = %x, want = %x", n, got, want)
		}
	}
}

func TestCSHAKECrossCheck(t *testing.T) {
	drbg := testdata.New("keccakite cshake cross-check")

	for _, tc := range []struct {
		name  string
		fn, s []byte
	}{
		{"both empty", nil, nil},
		{"function name only", []byte("KMAC"), nil},
		{"customization only", nil, []byte("Email Signature")},
		{"both", []byte("KMAC"), []byte("My Tagged Application")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := drbg.Data(300)

			want := make([]byte, 128)
			ref := sha3.NewCShake256(tc.fn, tc.s)
			_, _ = ref.Write(m)
			_, _ = ref.Read(want)

			if got := xof.CSHAKE256(m, len(want), tc.fn, tc.s); !bytes.Equal(got, want) {
				t.Errorf("CSHAKE256 = %x, want = %x", got, want)
			}

			want = want[:64]
			ref128 := sha3.NewCShake128(tc.fn, tc.s)
			_, _ = ref128.Write(m)
			_, _ = ref128.Read(want)

			if got := xof.CSHAKE128(m, len(want), tc.fn, tc.s); !bytes.Equal(got, want) {
				t.Errorf("CSHAKE128 = %x, want = %x", got, want)
			}
		})
	}
}

// TestKMACXOFComposition checks KMACXOF against its SP 800-185 definition,
// composed independently over the reference cSHAKE: newX = bytepad(
// encode_string(K), rate) || m || right_encode(0), function name "KMAC".
func TestKMACXOFComposition(t *testing.T) {
	drbg := testdata.New("keccakite kmac cross-check")

	for _, tc := range []struct {
		name string
		key  []byte
		m    []byte
		s    []byte
	}{
		{"all empty", nil, nil, nil},
		{"keyed", drbg.Data(32), drbg.Data(100), []byte("T")},
		{"long key", drbg.Data(200), drbg.Data(17), []byte("My Tagged Application")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			newX := nist.Bytepad(nist.EncodeString(tc.key), 136)
			newX = append(newX, tc.m...)
			newX = nist.AppendRightEncode(newX, 0)

			want := make([]byte, 64)
			ref := sha3.NewCShake256([]byte("KMAC"), tc.s)
			_, _ = ref.Write(newX)
			_, _ = ref.Read(want)

			if got := xof.KMACXOF256(tc.key, tc.m, 64, tc.s); !bytes.Equal(got, want) {
				t.Errorf("KMACXOF256 = %x, want = %x", got, want)
			}

			newX = nist.Bytepad(nist.EncodeString(tc.key), 168)
			newX = append(newX, tc.m...)
			newX = nist.AppendRightEncode(newX, 0)

			ref = sha3.NewCShake128([]byte("KMAC"), tc.s)
			_, _ = ref.Write(newX)
			_, _ = ref.Read(want)

			if got := xof.KMACXOF128(tc.key, tc.m, 64, tc.s); !bytes.Equal(got, want) {
				t.Errorf("KMACXOF128 = %x, want = %x", got, want)
			}
		})
	}
}

func TestKMACXOFDomainSeparation(t *testing.T) {
	key := []byte("key")
	m := []byte("message")

	a := xof.KMACXOF256(key, m, 64, []byte("SKE"))
	b := xof.KMACXOF256(key, m, 64, []byte("SKA"))
	if bytes.Equal(a, b) {
		t.Error("different customization strings produced identical output")
	}

	if got, want := xof.KMACXOF256(key, m, 64, []byte("SKE")), a; !bytes.Equal(got, want) {
		t.Error("KMACXOF256 not deterministic")
	}
}

func ExampleSum256() {
	fmt.Printf("%x\n", xof.Sum256(nil))
	// Output:
	// a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a
}
