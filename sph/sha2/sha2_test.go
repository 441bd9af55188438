package sha2

import (
	"crypto/sha512"
	"hash"
	"runtime"
	"testing"

	"git.gammaspectra.live/P2Pool/m7hash/sph/internal/kat"
)

func TestVectors(t *testing.T) {
	kat.Run(t, "sha384", func() hash.Hash { return New384() })
	kat.Run(t, "sha512", func() hash.Hash { return New512() })
}

func TestBits(t *testing.T) {
	kat.RunBits(t, "sha512", func() kat.BitCloser { return New512() })
}

func TestOracle(t *testing.T) {
	t.Run("SHA384", func(t *testing.T) {
		kat.Oracle(t, func() hash.Hash { return New384() }, sha512.New384)
	})
	t.Run("SHA512", func(t *testing.T) {
		kat.Oracle(t, func() hash.Hash { return New512() }, sha512.New)
	})
}

func TestSum(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	if Sum512(data) != sha512.Sum512(data) {
		t.Fatal("Sum512 mismatch")
	}
	if Sum384(data) != sha512.Sum384(data) {
		t.Fatal("Sum384 mismatch")
	}
}

func BenchmarkSum512(b *testing.B) {
	data := make([]byte, 1024)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	d := New512()
	var out [Size512]byte
	for b.Loop() {
		_, _ = d.Write(data)
		d.Close(out[:])
	}
	runtime.KeepAlive(out)
}
