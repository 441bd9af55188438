package sph

// SetCount forces the byte counter, simulating a message of n bytes already hashed
func (d *Digest[W]) SetCount(n uint64) {
	d.count = Counter{lo: uint32(n), hi: uint32(n >> 32)}
}

func (d *Digest[W]) Buffered() int {
	return d.nx
}

func Terminate(terminator, ub byte, nb uint) byte {
	return terminate(terminator, ub, nb)
}
