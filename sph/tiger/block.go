package tiger

func round(a, b, c, x, mul uint64) (uint64, uint64, uint64) {
	c ^= x
	a -= sboxes[0][byte(c)] ^ sboxes[1][byte(c>>16)] ^ sboxes[2][byte(c>>32)] ^ sboxes[3][byte(c>>48)]
	b += sboxes[3][byte(c>>8)] ^ sboxes[2][byte(c>>24)] ^ sboxes[1][byte(c>>40)] ^ sboxes[0][byte(c>>56)]
	b *= mul
	return a, b, c
}

func pass(a, b, c uint64, x *[8]uint64, mul uint64) (uint64, uint64, uint64) {
	a, b, c = round(a, b, c, x[0], mul)
	b, c, a = round(b, c, a, x[1], mul)
	c, a, b = round(c, a, b, x[2], mul)
	a, b, c = round(a, b, c, x[3], mul)
	b, c, a = round(b, c, a, x[4], mul)
	c, a, b = round(c, a, b, x[5], mul)
	a, b, c = round(a, b, c, x[6], mul)
	b, c, a = round(b, c, a, x[7], mul)
	return a, b, c
}

func keySchedule(x *[8]uint64) {
	x[0] -= x[7] ^ 0xa5a5a5a5a5a5a5a5
	x[1] ^= x[0]
	x[2] += x[1]
	x[3] -= x[2] ^ (^x[1] << 19)
	x[4] ^= x[3]
	x[5] += x[4]
	x[6] -= x[5] ^ (^x[4] >> 23)
	x[7] ^= x[6]
	x[0] += x[7]
	x[1] -= x[0] ^ (^x[7] << 19)
	x[2] ^= x[1]
	x[3] += x[2]
	x[4] -= x[3] ^ (^x[2] >> 23)
	x[5] ^= x[4]
	x[6] += x[5]
	x[7] -= x[6] ^ 0x0123456789abcdef
}

func compress(s *[3]uint64, block *[8]uint64) {
	x := *block
	a, b, c := s[0], s[1], s[2]

	a, b, c = pass(a, b, c, &x, 5)
	keySchedule(&x)
	c, a, b = pass(c, a, b, &x, 7)
	keySchedule(&x)
	b, c, a = pass(b, c, a, &x, 9)

	s[0] ^= a
	s[1] = b - s[1]
	s[2] += c
}
