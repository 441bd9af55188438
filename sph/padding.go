package sph

import "encoding/binary"

// Padding finalizes the buffered tail of a message.
//
// buf is the block buffer holding n < len(buf) message bytes, ub holds nb extra message bits
// and count is the number of whole bytes written. flush compresses buf as a full block and
// may be called more than once; buf must be fully written before every call.
type Padding interface {
	Finish(buf []byte, n int, ub byte, nb uint, count Counter, flush func())
}

// LengthFunc writes the 128-bit message bit length hi:lo into the length field dst
type LengthFunc func(dst []byte, hi, lo uint64)

// LengthBE writes the bit length big-endian, right aligned in dst
func LengthBE(dst []byte, hi, lo uint64) {
	clear(dst)
	binary.BigEndian.PutUint64(dst[len(dst)-8:], lo)
	if len(dst) >= 16 {
		binary.BigEndian.PutUint64(dst[len(dst)-16:], hi)
	}
}

// LengthLE writes the low 64 bits of the bit length little-endian at the start of dst
func LengthLE(dst []byte, hi, lo uint64) {
	clear(dst)
	binary.LittleEndian.PutUint64(dst, lo)
	if len(dst) >= 16 {
		binary.LittleEndian.PutUint64(dst[8:], hi)
	}
}

const (
	// TerminatorMSB marks the end of message with a single 1 bit in the highest unused position
	TerminatorMSB = 0x80
	// TerminatorLSB marks the end of message with a single 1 bit in the lowest unused position
	TerminatorLSB = 0x01
)

// terminate returns the final message byte: the top nb bits of ub followed by the terminator bit
func terminate(terminator byte, ub byte, nb uint) byte {
	if terminator == TerminatorLSB {
		return byte((0x100 | uint(ub)) >> (8 - nb))
	}
	z := byte(TerminatorMSB) >> nb
	return (ub & -z) | z
}

// MDPadding is Merkle-Damgard strengthening: a terminator bit, zero fill and the message
// length in the last LengthSize bytes of the final block
type MDPadding struct {
	Terminator byte
	LengthSize int
	PutLength  LengthFunc
	// ByteLength leaves the extra bits of AddBitsAndClose out of the length field
	ByteLength bool
}

func (p MDPadding) Finish(buf []byte, n int, ub byte, nb uint, count Counter, flush func()) {
	buf[n] = terminate(p.Terminator, ub, nb)
	n++

	limit := len(buf) - p.LengthSize
	if n > limit {
		clear(buf[n:])
		flush()
		n = 0
	}
	clear(buf[n:limit])

	hi, lo := count.Bits()
	if !p.ByteLength {
		lo += uint64(nb)
	}
	p.PutLength(buf[limit:], hi, lo)
	flush()
}

// SpongePadding is the multi-rate pad10*1 rule: Domain right after the message,
// zero fill, and 0x80 set in the last byte of the rate
type SpongePadding struct {
	Domain byte
}

func (p SpongePadding) Finish(buf []byte, n int, ub byte, nb uint, _ Counter, flush func()) {
	eb := byte((uint(p.Domain)<<8 | uint(ub)) >> (8 - nb))
	buf[n] = eb
	clear(buf[n+1:])

	last := len(buf) - 1
	if n == last && eb&0x80 != 0 {
		// the domain bits fill the final byte, the closing bit goes into a new block
		flush()
		clear(buf)
	}
	buf[last] |= 0x80
	flush()
}
