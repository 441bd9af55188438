package scrypt

import "git.gammaspectra.live/P2Pool/m7hash/sph/words"

// blockMix runs BlockMix over the 2*r 64-byte sub-blocks of in, writing even outputs to the
// first half of out and odd outputs to the second half
func blockMix(tmp *[16]uint32, in, out []uint32, r int) {
	copy(tmp[:], in[(2*r-1)*16:])
	for i := 0; i < 2*r; i += 2 {
		salsaXOR(tmp, in[i*16:], out[i*8:])
		salsaXOR(tmp, in[i*16+16:], out[i*8+r*16:])
	}
}

// integerify reads the first 64 bits of the last sub-block of b
func integerify(b []uint32, r int) uint64 {
	j := (2*r - 1) * 16
	return uint64(b[j]) | uint64(b[j+1])<<32
}

func decodeLane(x []uint32, b []byte) {
	words.Decode(words.LittleEndian, x, b)
}

func encodeLane(b []byte, x []uint32) {
	words.Encode(words.LittleEndian, b, x)
}

func blockXOR(dst, src []uint32, n int) {
	for i, v := range src[:n] {
		dst[i] ^= v
	}
}

// romix transforms the 128*r byte lane b in place. v holds 32*r*N words and xy 64*r words.
// Every read index in the second loop depends on the state left by the previous step.
func romix(b []byte, r, N int, v, xy []uint32) {
	var tmp [16]uint32
	R := 32 * r
	x := xy[:R]
	y := xy[R : 2*R]

	decodeLane(x, b)

	for i := 0; i < N; i += 2 {
		copy(v[i*R:], x)
		blockMix(&tmp, x, y, r)

		copy(v[(i+1)*R:], y)
		blockMix(&tmp, y, x, r)
	}

	mask := uint64(N - 1)
	for i := 0; i < N; i += 2 {
		j := int(integerify(x, r) & mask)
		blockXOR(x, v[j*R:], R)
		blockMix(&tmp, x, y, r)

		j = int(integerify(y, r) & mask)
		blockXOR(y, v[j*R:], R)
		blockMix(&tmp, y, x, r)
	}

	encodeLane(b, x)
}
