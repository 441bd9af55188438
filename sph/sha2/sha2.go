// Package sha2 implements SHA-384 and SHA-512 on top of the sph engine.
package sha2

import (
	"git.gammaspectra.live/P2Pool/m7hash/sph"
	"git.gammaspectra.live/P2Pool/m7hash/sph/words"
)

// BlockSize The block size of SHA-384 and SHA-512 in bytes.
const BlockSize = 128

const (
	Size384 = 48
	Size512 = 64
)

var (
	iv384 = [8]uint64{
		0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
		0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
	}
	iv512 = [8]uint64{
		0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
		0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
	}
)

var padding = sph.MDPadding{
	Terminator: sph.TerminatorMSB,
	LengthSize: 16,
	PutLength:  sph.LengthBE,
}

type family struct {
	name string
	iv   *[8]uint64
	size int
}

var (
	SHA384 sph.Family[uint64] = family{name: "sha384", iv: &iv384, size: Size384}
	SHA512 sph.Family[uint64] = family{name: "sha512", iv: &iv512, size: Size512}
)

func (f family) Params() sph.Params {
	return sph.Params{
		Name:       f.name,
		BlockSize:  BlockSize,
		StateWords: 8,
		Size:       f.size,
		Order:      words.BigEndian,
		Padding:    padding,
	}
}

func (f family) Init(state []uint64) {
	copy(state, f.iv[:])
}

func (f family) Compress(state, block []uint64) {
	compress((*[8]uint64)(state), (*[16]uint64)(block))
}

func (f family) Output(dst []byte, state []uint64) {
	words.Encode(words.BigEndian, dst, state[:f.size/8])
}

func New384() *sph.Digest[uint64] {
	return sph.New(SHA384)
}

func New512() *sph.Digest[uint64] {
	return sph.New(SHA512)
}

func Sum384(data []byte) (out [Size384]byte) {
	d := New384()
	_, _ = d.Write(data)
	d.Close(out[:])
	return out
}

func Sum512(data []byte) (out [Size512]byte) {
	d := New512()
	_, _ = d.Write(data)
	d.Close(out[:])
	return out
}
