package sph

// Counter is the running count of bytes fed to a Digest, kept as two 32-bit halves with carry
type Counter struct {
	lo, hi uint32
}

func (c *Counter) Add(n uint64) {
	lo := uint64(c.lo) + (n & 0xffffffff)
	c.lo = uint32(lo)
	c.hi += uint32(n>>32) + uint32(lo>>32)
}

func (c Counter) Bytes() uint64 {
	return uint64(c.hi)<<32 | uint64(c.lo)
}

// Bits returns the bit count as a 128-bit number split into high and low words
func (c Counter) Bits() (hi, lo uint64) {
	b := c.Bytes()
	return b >> 61, b << 3
}
