// Package haval implements HAVAL with 3, 4 or 5 passes and 128 to 256-bit outputs on top of the sph engine.
package haval

import (
	"encoding/binary"
	"strconv"

	"git.gammaspectra.live/P2Pool/m7hash/sph"
	"git.gammaspectra.live/P2Pool/m7hash/sph/words"
)

// BlockSize The block size of HAVAL in bytes.
const BlockSize = 128

const version = 1

const (
	Size128 = 16
	Size160 = 20
	Size192 = 24
	Size224 = 28
	Size256 = 32
)

type family struct {
	passes int
	size   int
}

// Family returns HAVAL with the given number of passes (3 to 5) and digest size in bytes
func Family(passes, size int) sph.Family[uint32] {
	if passes < 3 || passes > 5 {
		panic("haval: passes must be 3, 4 or 5")
	}
	switch size {
	case Size128, Size160, Size192, Size224, Size256:
	default:
		panic("haval: unsupported digest size")
	}
	return family{passes: passes, size: size}
}

func (f family) Params() sph.Params {
	return sph.Params{
		Name:       "haval" + strconv.Itoa(f.size*8) + "_" + strconv.Itoa(f.passes),
		BlockSize:  BlockSize,
		StateWords: 8,
		Size:       f.size,
		Order:      words.LittleEndian,
		Padding: sph.MDPadding{
			Terminator: sph.TerminatorLSB,
			LengthSize: 10,
			PutLength:  f.putLength,
			ByteLength: true,
		},
	}
}

// putLength writes the version and pass count, the output size and the 64-bit bit length.
// Trailing partial byte bits are not counted.
func (f family) putLength(dst []byte, _, lo uint64) {
	dst[0] = byte(version | f.passes<<3)
	dst[1] = byte(f.size * 8 >> 2)
	binary.LittleEndian.PutUint64(dst[2:], lo)
}

func (f family) Init(state []uint32) {
	copy(state, iv[:])
}

func (f family) Compress(state, block []uint32) {
	compress(f.passes, (*[8]uint32)(state), (*[32]uint32)(block))
}

func (f family) Output(dst []byte, state []uint32) {
	d := fold(f.size/4, (*[8]uint32)(state))
	words.Encode(words.LittleEndian, dst, d[:f.size/4])
}

func New(passes, size int) *sph.Digest[uint32] {
	return sph.New(Family(passes, size))
}

func Sum256_5(data []byte) (out [Size256]byte) {
	d := New(5, Size256)
	_, _ = d.Write(data)
	d.Close(out[:])
	return out
}
