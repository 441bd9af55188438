// Package tiger implements the Tiger and Tiger2 hashes on top of the sph engine.
// Tiger2 only differs in its padding terminator.
package tiger

import (
	"git.gammaspectra.live/P2Pool/m7hash/sph"
	"git.gammaspectra.live/P2Pool/m7hash/sph/words"
)

const (
	BlockSize = 64
	Size      = 24
)

var iv = [3]uint64{0x0123456789abcdef, 0xfedcba9876543210, 0xf096a5b4c3b2e187}

type family struct {
	name    string
	padding sph.Padding
}

var (
	Tiger sph.Family[uint64] = family{
		name: "tiger",
		padding: sph.MDPadding{
			Terminator: sph.TerminatorLSB,
			LengthSize: 8,
			PutLength:  sph.LengthLE,
		},
	}
	Tiger2 sph.Family[uint64] = family{
		name: "tiger2",
		padding: sph.MDPadding{
			Terminator: sph.TerminatorMSB,
			LengthSize: 8,
			PutLength:  sph.LengthLE,
		},
	}
)

func (f family) Params() sph.Params {
	return sph.Params{
		Name:       f.name,
		BlockSize:  BlockSize,
		StateWords: 3,
		Size:       Size,
		Order:      words.LittleEndian,
		Padding:    f.padding,
	}
}

func (f family) Init(state []uint64) {
	copy(state, iv[:])
}

func (f family) Compress(state, block []uint64) {
	compress((*[3]uint64)(state), (*[8]uint64)(block))
}

func (f family) Output(dst []byte, state []uint64) {
	words.Encode(words.LittleEndian, dst, state)
}

func New() *sph.Digest[uint64] {
	return sph.New(Tiger)
}

func New2() *sph.Digest[uint64] {
	return sph.New(Tiger2)
}

func Sum(data []byte) (out [Size]byte) {
	d := New()
	_, _ = d.Write(data)
	d.Close(out[:])
	return out
}
