package scrypt

// romixIndexed is romix with the second loop reading V at index(X) mod N
func romixIndexed(b []byte, r, N int, v, xy []uint32, index func(b []uint32, r int) uint64) {
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
		j := int(index(x, r) & mask)
		blockXOR(x, v[j*R:], R)
		blockMix(&tmp, x, y, r)

		j = int(index(y, r) & mask)
		blockXOR(y, v[j*R:], R)
		blockMix(&tmp, y, x, r)
	}

	encodeLane(b, x)
}
