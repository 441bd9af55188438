package haval

import "math/bits"

func f1(x6, x5, x4, x3, x2, x1, x0 uint32) uint32 {
	return (x1 & (x0 ^ x4)) ^ (x2 & x5) ^ (x3 & x6) ^ x0
}

func f2(x6, x5, x4, x3, x2, x1, x0 uint32) uint32 {
	return (x2 & ((x1 &^ x3) ^ (x4 & x5) ^ x6 ^ x0)) ^ (x4 & (x1 ^ x5)) ^ (x3 & x5) ^ x0
}

func f3(x6, x5, x4, x3, x2, x1, x0 uint32) uint32 {
	return (x3 & ((x1 & x2) ^ x6 ^ x0)) ^ (x1 & x4) ^ (x2 & x5) ^ x0
}

func f4(x6, x5, x4, x3, x2, x1, x0 uint32) uint32 {
	return (x3 & ((x1 & x2) ^ (x4 | x6) ^ x5)) ^ (x4 & ((^x2 & x5) ^ x1 ^ x6 ^ x0)) ^ (x2 & x6) ^ x0
}

func f5(x6, x5, x4, x3, x2, x1, x0 uint32) uint32 {
	return (x0 &^ ((x1 & x2 & x3) ^ x5)) ^ (x1 & x4) ^ (x2 & x5) ^ (x3 & x6)
}

var functions = [5]func(x6, x5, x4, x3, x2, x1, x0 uint32) uint32{f1, f2, f3, f4, f5}

// phis gives, per pass count and pass, which of x6..x0 feed each argument of the boolean function
var phis = [3][5][7]uint8{
	{
		{1, 0, 3, 5, 6, 2, 4},
		{4, 2, 1, 0, 5, 3, 6},
		{6, 1, 2, 3, 4, 5, 0},
	},
	{
		{2, 6, 1, 4, 5, 3, 0},
		{3, 5, 2, 0, 1, 6, 4},
		{1, 4, 3, 6, 0, 2, 5},
		{6, 4, 0, 5, 2, 1, 3},
	},
	{
		{3, 4, 1, 0, 5, 2, 6},
		{6, 2, 1, 0, 3, 4, 5},
		{2, 6, 0, 4, 3, 1, 5},
		{1, 5, 3, 2, 0, 4, 6},
		{2, 5, 0, 6, 4, 3, 1},
	},
}

// wordOrders is the message word schedule of passes 2 to 5, pass 1 reads words in order
var wordOrders = [4][32]uint8{
	{5, 14, 26, 18, 11, 28, 7, 16, 0, 23, 20, 22, 1, 10, 4, 8, 30, 3, 21, 9, 17, 24, 29, 6, 19, 12, 15, 13, 2, 25, 31, 27},
	{19, 9, 4, 20, 28, 17, 8, 22, 29, 14, 25, 12, 24, 30, 16, 26, 31, 15, 7, 3, 1, 0, 18, 27, 13, 6, 21, 10, 23, 11, 5, 2},
	{24, 4, 0, 14, 2, 7, 28, 23, 26, 6, 30, 20, 18, 25, 19, 3, 22, 11, 31, 21, 8, 27, 12, 9, 1, 29, 5, 15, 17, 10, 16, 13},
	{27, 3, 21, 26, 17, 11, 20, 29, 19, 0, 12, 7, 13, 8, 31, 10, 5, 9, 14, 30, 18, 6, 28, 24, 2, 23, 16, 22, 4, 1, 25, 15},
}

func compress(passes int, s *[8]uint32, w *[32]uint32) {
	x := *s
	var xs [7]uint32

	for p := range passes {
		phi := &phis[passes-3][p]
		fn := functions[p]

		for i := range 32 {
			// the register written this step rotates down by one each step
			k := i & 7
			for m := range xs {
				xs[m] = x[(m-k)&7]
			}
			t := fn(xs[phi[0]], xs[phi[1]], xs[phi[2]], xs[phi[3]], xs[phi[4]], xs[phi[5]], xs[phi[6]])

			var wi, rk uint32
			if p == 0 {
				wi = w[i]
			} else {
				wi = w[wordOrders[p-1][i]]
				rk = roundConstants[p-1][i]
			}

			r := (7 - k) & 7
			x[r] = bits.RotateLeft32(t, 25) + bits.RotateLeft32(x[r], 21) + wi + rk
		}
	}

	for i := range s {
		s[i] += x[i]
	}
}

// fold mixes the upper state words into the first n words for digests shorter than 256 bits
func fold(n int, s *[8]uint32) (d [8]uint32) {
	d = *s
	switch n {
	case 4:
		t := (d[7] & 0x000000ff) | (d[6] & 0xff000000) | (d[5] & 0x00ff0000) | (d[4] & 0x0000ff00)
		d[0] += bits.RotateLeft32(t, -8)
		t = (d[7] & 0x0000ff00) | (d[6] & 0x000000ff) | (d[5] & 0xff000000) | (d[4] & 0x00ff0000)
		d[1] += bits.RotateLeft32(t, -16)
		t = (d[7] & 0x00ff0000) | (d[6] & 0x0000ff00) | (d[5] & 0x000000ff) | (d[4] & 0xff000000)
		d[2] += bits.RotateLeft32(t, -24)
		t = (d[7] & 0xff000000) | (d[6] & 0x00ff0000) | (d[5] & 0x0000ff00) | (d[4] & 0x000000ff)
		d[3] += t
	case 5:
		t := (d[7] & 0x3f) | (d[6] & (0x7f << 25)) | (d[5] & (0x3f << 19))
		d[0] += bits.RotateLeft32(t, -19)
		t = (d[7] & (0x3f << 6)) | (d[6] & 0x3f) | (d[5] & (0x7f << 25))
		d[1] += bits.RotateLeft32(t, -25)
		t = (d[7] & (0x7f << 12)) | (d[6] & (0x3f << 6)) | (d[5] & 0x3f)
		d[2] += t
		t = (d[7] & (0x3f << 19)) | (d[6] & (0x7f << 12)) | (d[5] & (0x3f << 6))
		d[3] += t >> 6
		t = (d[7] & (0x7f << 25)) | (d[6] & (0x3f << 19)) | (d[5] & (0x7f << 12))
		d[4] += t >> 12
	case 6:
		t := (d[7] & 0x1f) | (d[6] & (0x3f << 26))
		d[0] += bits.RotateLeft32(t, -26)
		t = (d[7] & (0x1f << 5)) | (d[6] & 0x1f)
		d[1] += t
		t = (d[7] & (0x3f << 10)) | (d[6] & (0x1f << 5))
		d[2] += t >> 5
		t = (d[7] & (0x1f << 16)) | (d[6] & (0x3f << 10))
		d[3] += t >> 10
		t = (d[7] & (0x1f << 21)) | (d[6] & (0x1f << 16))
		d[4] += t >> 16
		t = (d[7] & (0x3f << 26)) | (d[6] & (0x1f << 21))
		d[5] += t >> 21
	case 7:
		d[0] += (d[7] >> 27) & 0x1f
		d[1] += (d[7] >> 22) & 0x1f
		d[2] += (d[7] >> 18) & 0x0f
		d[3] += (d[7] >> 13) & 0x1f
		d[4] += (d[7] >> 9) & 0x0f
		d[5] += (d[7] >> 4) & 0x1f
		d[6] += d[7] & 0x0f
	}
	return d
}
