// Package whirlpool implements the Whirlpool hash (ISO/IEC 10118-3, third revision) on top of the sph engine.
package whirlpool

import (
	"git.gammaspectra.live/P2Pool/m7hash/sph"
	"git.gammaspectra.live/P2Pool/m7hash/sph/words"
)

const (
	BlockSize = 64
	Size      = 64
)

type family struct{}

var Whirlpool sph.Family[uint64] = family{}

var padding = sph.MDPadding{
	Terminator: sph.TerminatorMSB,
	LengthSize: 32,
	PutLength:  sph.LengthBE,
}

func (family) Params() sph.Params {
	return sph.Params{
		Name:       "whirlpool",
		BlockSize:  BlockSize,
		StateWords: 8,
		Size:       Size,
		Order:      words.BigEndian,
		Padding:    padding,
	}
}

func (family) Init(state []uint64) {
	clear(state)
}

// Compress is the Miyaguchi-Preneel construction over the W block cipher
func (family) Compress(state, block []uint64) {
	var k, s [8]uint64
	h := (*[8]uint64)(state)
	m := (*[8]uint64)(block)

	k = *h
	for i := range s {
		s[i] = m[i] ^ k[i]
	}

	for r := range Rounds {
		k = round(&k, [8]uint64{roundConstants[r]})
		s = round(&s, k)
	}

	for i := range h {
		h[i] ^= s[i] ^ m[i]
	}
}

func (family) Output(dst []byte, state []uint64) {
	words.Encode(words.BigEndian, dst, state)
}

func New() *sph.Digest[uint64] {
	return sph.New(Whirlpool)
}

func Sum(data []byte) (out [Size]byte) {
	d := New()
	_, _ = d.Write(data)
	d.Close(out[:])
	return out
}
