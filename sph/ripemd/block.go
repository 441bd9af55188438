package ripemd

import "math/bits"

// message word selection and rotation amounts for the left (n, r) and right (nPrime, rPrime) lines
var n = [80]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

var r = [80]uint8{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

var nPrime = [80]uint8{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

var rPrime = [80]uint8{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

var (
	k160      = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
	kPrime160 = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}
	kPrime128 = [4]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x00000000}
)

// boolean function of round 0 to 4
func f(round int, x, y, z uint32) uint32 {
	switch round {
	case 0:
		return x ^ y ^ z
	case 1:
		return (x & y) | (^x & z)
	case 2:
		return (x | ^y) ^ z
	case 3:
		return (x & z) | (y &^ z)
	default:
		return x ^ (y | ^z)
	}
}

func compress160(s []uint32, x *[16]uint32) {
	a, b, c, d, e := s[0], s[1], s[2], s[3], s[4]
	aa, bb, cc, dd, ee := a, b, c, d, e

	for j := range 80 {
		round := j / 16

		t := bits.RotateLeft32(a+f(round, b, c, d)+x[n[j]]+k160[round], int(r[j])) + e
		a, e, d, c, b = e, d, bits.RotateLeft32(c, 10), b, t

		t = bits.RotateLeft32(aa+f(4-round, bb, cc, dd)+x[nPrime[j]]+kPrime160[round], int(rPrime[j])) + ee
		aa, ee, dd, cc, bb = ee, dd, bits.RotateLeft32(cc, 10), bb, t
	}

	t := s[1] + c + dd
	s[1] = s[2] + d + ee
	s[2] = s[3] + e + aa
	s[3] = s[4] + a + bb
	s[4] = s[0] + b + cc
	s[0] = t
}

func compress128(s []uint32, x *[16]uint32) {
	a, b, c, d := s[0], s[1], s[2], s[3]
	aa, bb, cc, dd := a, b, c, d

	for j := range 64 {
		round := j / 16

		t := bits.RotateLeft32(a+f(round, b, c, d)+x[n[j]]+k160[round], int(r[j]))
		a, d, c, b = d, c, b, t

		t = bits.RotateLeft32(aa+f(3-round, bb, cc, dd)+x[nPrime[j]]+kPrime128[round], int(rPrime[j]))
		aa, dd, cc, bb = dd, cc, bb, t
	}

	t := s[1] + c + dd
	s[1] = s[2] + d + aa
	s[2] = s[3] + a + bb
	s[3] = s[0] + b + cc
	s[0] = t
}
