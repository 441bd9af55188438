package whirlpool

import "math/bits"

const Rounds = 10

// mini boxes the S-box is assembled from
var (
	miniE = [16]byte{0x1, 0xb, 0x9, 0xc, 0xd, 0x6, 0xf, 0x3, 0xe, 0x8, 0x7, 0x4, 0xa, 0x2, 0x5, 0x0}
	miniR = [16]byte{0x7, 0xc, 0xb, 0xd, 0xe, 0x4, 0x9, 0xf, 0x6, 0x3, 0x8, 0xa, 0x2, 0x5, 0x1, 0x0}
)

// first row of the circulant diffusion matrix
var circulant = [8]byte{1, 1, 4, 1, 8, 5, 2, 9}

var (
	sbox           [256]byte
	tables         [8][256]uint64
	roundConstants [Rounds]uint64
)

// gmul multiplies in GF(2^8) modulo x^8 + x^4 + x^3 + x^2 + 1
func gmul(a, b byte) (p byte) {
	for ; b != 0; b >>= 1 {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1d
		}
	}
	return p
}

//nolint:gochecknoinits
func init() {
	var eInv [16]byte
	for i, e := range miniE {
		eInv[e] = byte(i)
	}

	for u := range sbox {
		a := miniE[u>>4]
		b := eInv[u&0xf]
		r := miniR[a^b]
		sbox[u] = miniE[a^r]<<4 | eInv[b^r]
	}

	for x := range 256 {
		var v uint64
		for _, c := range circulant {
			v = v<<8 | uint64(gmul(sbox[x], c))
		}
		for t := range tables {
			tables[t][x] = bits.RotateLeft64(v, -8*t)
		}
	}

	for r := range roundConstants {
		for _, s := range sbox[8*r : 8*r+8] {
			roundConstants[r] = roundConstants[r]<<8 | uint64(s)
		}
	}
}

// round applies one W round to state: substitution, column shift, mixing, and key addition
func round(state *[8]uint64, key [8]uint64) (out [8]uint64) {
	for i := range out {
		v := key[i]
		for t := range 8 {
			v ^= tables[t][byte(state[(i-t)&7]>>(56-8*t))]
		}
		out[i] = v
	}
	return out
}
