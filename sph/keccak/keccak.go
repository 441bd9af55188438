// Package keccak implements the Keccak sponge (the pre-FIPS 202 padding, domain byte 0x01)
// with 224, 256, 384 and 512-bit outputs.
package keccak

import (
	"git.gammaspectra.live/P2Pool/m7hash/sph"
	"git.gammaspectra.live/P2Pool/m7hash/sph/words"
)

const StateSize = 200

const (
	Size224 = 28
	Size256 = 32
	Size384 = 48
	Size512 = 64
)

var padding = sph.SpongePadding{Domain: 0x01}

// family is Keccak with capacity twice the digest size
type family struct {
	name string
	size int
}

var (
	Keccak224 sph.Family[uint64] = family{name: "keccak224", size: Size224}
	Keccak256 sph.Family[uint64] = family{name: "keccak256", size: Size256}
	Keccak384 sph.Family[uint64] = family{name: "keccak384", size: Size384}
	Keccak512 sph.Family[uint64] = family{name: "keccak512", size: Size512}
)

func (f family) rate() int {
	return StateSize - 2*f.size
}

func (f family) Params() sph.Params {
	return sph.Params{
		Name:       f.name,
		BlockSize:  f.rate(),
		StateWords: 25,
		Size:       f.size,
		Order:      words.LittleEndian,
		Padding:    padding,
	}
}

func (f family) Init(state []uint64) {
	clear(state)
}

// Compress absorbs one rate-sized block
func (f family) Compress(state, block []uint64) {
	a := (*[25]uint64)(state)
	for i, w := range block {
		a[i] ^= w
	}
	Permute(a)
}

func (f family) Output(dst []byte, state []uint64) {
	var out [StateSize]byte
	words.Encode(words.LittleEndian, out[:], state)
	copy(dst, out[:f.size])
}

func New224() *sph.Digest[uint64] {
	return sph.New(Keccak224)
}

func New256() *sph.Digest[uint64] {
	return sph.New(Keccak256)
}

func New384() *sph.Digest[uint64] {
	return sph.New(Keccak384)
}

func New512() *sph.Digest[uint64] {
	return sph.New(Keccak512)
}

func Sum256(data []byte) (out [Size256]byte) {
	d := New256()
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
