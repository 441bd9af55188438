// Package kat holds known-answer vectors for the sph hash families and the checks shared by their tests.
package kat

import (
	"bytes"
	_ "embed"
	"hash"
	"strconv"
	"testing"

	"git.gammaspectra.live/P2Pool/m7hash/utils"
	fasthex "github.com/tmthrgd/go-hex"
)

//go:embed testdata/vectors.json
var vectorsJSON []byte

//go:embed testdata/bits.json
var bitsJSON []byte

type Vector struct {
	Input  string `json:"input"`
	Repeat int    `json:"repeat"`
	Digest string `json:"digest"`
}

func (v Vector) Message() []byte {
	return bytes.Repeat([]byte(v.Input), v.Repeat)
}

type BitVector struct {
	Family string `json:"family"`
	Input  string `json:"input"`
	UB     byte   `json:"ub"`
	NB     uint   `json:"nb"`
	Digest string `json:"digest"`
}

// BitCloser is a hash that accepts a trailing partial byte
type BitCloser interface {
	hash.Hash
	AddBitsAndClose(ub byte, nb uint, dst []byte)
}

func Vectors(t testing.TB, family string) []Vector {
	t.Helper()
	var all map[string][]Vector
	if err := utils.UnmarshalJSON(vectorsJSON, &all); err != nil {
		t.Fatal(err)
	}
	v, ok := all[family]
	if !ok || len(v) == 0 {
		t.Fatalf("no vectors for %s", family)
	}
	return v
}

func BitVectors(t testing.TB, family string) (out []BitVector) {
	t.Helper()
	var all []BitVector
	if err := utils.UnmarshalJSON(bitsJSON, &all); err != nil {
		t.Fatal(err)
	}
	for _, v := range all {
		if v.Family == family {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		t.Fatalf("no bit vectors for %s", family)
	}
	return out
}

// Run checks newHash against every vector of family, hashing each message in one write,
// in uneven chunks and through Sum
func Run(t *testing.T, family string, newHash func() hash.Hash) {
	for i, v := range Vectors(t, family) {
		if v.Repeat > 1000 && testing.Short() {
			continue
		}
		msg := v.Message()
		t.Run(family+"/"+shortName(v, i), func(t *testing.T) {
			h := newHash()
			if h.Size()*2 != len(v.Digest) {
				t.Fatalf("size %d does not match vector digest %s", h.Size(), v.Digest)
			}

			_, _ = h.Write(msg)
			if r := fasthex.EncodeToString(h.Sum(nil)); r != v.Digest {
				t.Fatalf("one write: expected %s, got %s", v.Digest, r)
			}
			// Sum leaves the running state alone
			if r := fasthex.EncodeToString(h.Sum(nil)); r != v.Digest {
				t.Fatalf("second Sum: expected %s, got %s", v.Digest, r)
			}

			for _, chunk := range []int{1, 3, 7, 63, 65, 129} {
				h.Reset()
				for p := msg; len(p) > 0; {
					n := min(chunk, len(p))
					_, _ = h.Write(p[:n])
					p = p[n:]
				}
				if r := fasthex.EncodeToString(h.Sum(nil)); r != v.Digest {
					t.Fatalf("chunk %d: expected %s, got %s", chunk, v.Digest, r)
				}
			}
		})
	}
}

// RunBits checks partial byte finalization against the bit vectors of family
func RunBits(t *testing.T, family string, newHash func() BitCloser) {
	for i, v := range BitVectors(t, family) {
		t.Run(family+"/bits/"+shortName(Vector{Input: v.Input, Repeat: 1}, i), func(t *testing.T) {
			h := newHash()
			_, _ = h.Write([]byte(v.Input))
			out := make([]byte, h.Size())
			h.AddBitsAndClose(v.UB, v.NB, out)
			if r := fasthex.EncodeToString(out); r != v.Digest {
				t.Fatalf("ub %02x nb %d: expected %s, got %s", v.UB, v.NB, v.Digest, r)
			}

			// the digest resets after closing
			h.AddBitsAndClose(0, 0, out)
			empty := newHash()
			if r, e := fasthex.EncodeToString(out), fasthex.EncodeToString(empty.Sum(nil)); r != e {
				t.Fatalf("after close: expected %s, got %s", e, r)
			}
		})
	}
}

// Oracle compares newHash to a reference implementation over message lengths around the block size
func Oracle(t *testing.T, newHash, reference func() hash.Hash) {
	buf := make([]byte, 1024)
	for i := range buf {
		buf[i] = byte(i*7 + 3)
	}

	h, ref := newHash(), reference()
	for n := 0; n <= len(buf); n++ {
		h.Reset()
		ref.Reset()
		_, _ = h.Write(buf[:n])
		_, _ = ref.Write(buf[:n])
		if a, b := h.Sum(nil), ref.Sum(nil); !bytes.Equal(a, b) {
			t.Fatalf("length %d: expected %x, got %x", n, b, a)
		}
	}
}

func shortName(v Vector, i int) string {
	name := v.Input
	if len(name) > 16 {
		name = name[:16]
	}
	if name == "" {
		name = "empty"
	}
	if v.Repeat > 1 {
		return strconv.Itoa(i) + "_" + name + "_x" + strconv.Itoa(v.Repeat)
	}
	return strconv.Itoa(i) + "_" + name
}
