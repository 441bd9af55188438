package scrypt

import (
	"encoding/binary"
	"math/rand/v2"
	"testing"

	fasthex "github.com/tmthrgd/go-hex"
	"golang.org/x/crypto/salsa20/salsa"
)

func salsaFromBytes(buf []byte) (b [16]uint32) {
	for i := range b {
		b[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return b
}

func TestSalsa208(t *testing.T) {
	in, _ := fasthex.DecodeString("7e879a214f3ec9867ca940e641718f26baee555b8c61c1b50df846116dcd3b1dee24f319df9b3d8514121e4b5ac5aa3276021d2909c74829edebc68db8b8c25e")
	out, _ := fasthex.DecodeString("a41f859c6608cc993b81cacb020cef05044b2181a2fd337dfd7b1c6396682f29b4393168e3c9e6bcfe6bc5b7a06d96bae424cc102c91745c24ad673dc7618f81")

	b := salsaFromBytes(in)
	Salsa208(&b)
	if b != salsaFromBytes(out) {
		t.Errorf("got %08x, expected %x", b, out)
	}
}

func TestSalsa208Oracle(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 208))

	var buf, expected [64]byte
	for range 256 {
		for i := range buf {
			buf[i] = byte(rng.Uint32())
		}
		salsa.Core208(&expected, &buf)

		b := salsaFromBytes(buf[:])
		Salsa208(&b)
		if b != salsaFromBytes(expected[:]) {
			t.Fatalf("input %x: got %08x, expected %x", buf, b, expected)
		}
	}
}

func BenchmarkSalsa208(b *testing.B) {
	var x [16]uint32
	b.SetBytes(64)
	for b.Loop() {
		Salsa208(&x)
	}
}
