// Package ripemd implements RIPEMD-128 and RIPEMD-160 on top of the sph engine.
package ripemd

import (
	"git.gammaspectra.live/P2Pool/m7hash/sph"
	"git.gammaspectra.live/P2Pool/m7hash/sph/words"
)

// BlockSize The block size of RIPEMD in bytes.
const BlockSize = 64

const (
	Size128 = 16
	Size160 = 20
)

var iv = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

var padding = sph.MDPadding{
	Terminator: sph.TerminatorMSB,
	LengthSize: 8,
	PutLength:  sph.LengthLE,
}

type family struct {
	name     string
	size     int
	compress func(s []uint32, x *[16]uint32)
}

var (
	RIPEMD128 sph.Family[uint32] = family{name: "ripemd128", size: Size128, compress: compress128}
	RIPEMD160 sph.Family[uint32] = family{name: "ripemd160", size: Size160, compress: compress160}
)

func (f family) Params() sph.Params {
	return sph.Params{
		Name:       f.name,
		BlockSize:  BlockSize,
		StateWords: f.size / 4,
		Size:       f.size,
		Order:      words.LittleEndian,
		Padding:    padding,
	}
}

func (f family) Init(state []uint32) {
	copy(state, iv[:])
}

func (f family) Compress(state, block []uint32) {
	f.compress(state, (*[16]uint32)(block))
}

func (f family) Output(dst []byte, state []uint32) {
	words.Encode(words.LittleEndian, dst, state)
}

func New128() *sph.Digest[uint32] {
	return sph.New(RIPEMD128)
}

func New160() *sph.Digest[uint32] {
	return sph.New(RIPEMD160)
}

func Sum160(data []byte) (out [Size160]byte) {
	d := New160()
	_, _ = d.Write(data)
	d.Close(out[:])
	return out
}
