package sph

import (
	"hash"
	"slices"

	"git.gammaspectra.live/P2Pool/m7hash/sph/words"
)

// Digest is a running hash computation over a Family.
// It implements hash.Hash and must not be used from multiple goroutines at once.
type Digest[W Word] struct {
	family Family[W]
	params Params

	state []W
	block []W

	// x holds buffered message bytes, nx of them
	x     []byte
	nx    int
	count Counter
}

var _ hash.Hash = (*Digest[uint32])(nil)
var _ hash.Hash = (*Digest[uint64])(nil)

func New[W Word](f Family[W]) *Digest[W] {
	p := f.Params()
	size := words.Size[W]()
	if p.BlockSize <= 0 || p.BlockSize%size != 0 {
		panic("sph: " + p.Name + ": block size must be a multiple of the word size")
	}
	if p.Padding == nil {
		panic("sph: " + p.Name + ": missing padding")
	}

	d := &Digest[W]{
		family: f,
		params: p,
		state:  make([]W, p.StateWords),
		block:  make([]W, p.BlockSize/size),
		x:      make([]byte, p.BlockSize),
	}
	d.Reset()
	return d
}

func (d *Digest[W]) Name() string {
	return d.params.Name
}

func (d *Digest[W]) Size() int {
	return d.params.Size
}

func (d *Digest[W]) BlockSize() int {
	return d.params.BlockSize
}

// Reset restores the initial chaining value and discards any buffered input
func (d *Digest[W]) Reset() {
	d.family.Init(d.state)
	clear(d.x)
	d.nx = 0
	d.count = Counter{}
}

func (d *Digest[W]) compress(b []byte) {
	words.Decode(d.params.Order, d.block, b)
	d.family.Compress(d.state, d.block)
}

func (d *Digest[W]) flush() {
	d.compress(d.x)
}

// Write absorbs p. It never returns an error.
func (d *Digest[W]) Write(p []byte) (nn int, err error) {
	nn = len(p)
	if nn == 0 {
		return
	}
	d.count.Add(uint64(nn))

	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		p = p[n:]
		if d.nx < len(d.x) {
			return
		}
		d.flush()
		d.nx = 0
	}

	// whole blocks are decoded straight from the input
	for len(p) >= len(d.x) {
		d.compress(p[:len(d.x)])
		p = p[len(d.x):]
	}

	d.nx = copy(d.x, p)
	return
}

// Close pads the message, writes Size() bytes of digest into dst and resets d
func (d *Digest[W]) Close(dst []byte) {
	d.AddBitsAndClose(0, 0, dst)
}

// AddBitsAndClose appends the nb most significant bits of ub to the message, then behaves as Close
func (d *Digest[W]) AddBitsAndClose(ub byte, nb uint, dst []byte) {
	if nb > 7 {
		panic("sph: at most 7 extra bits")
	}
	if len(dst) < d.params.Size {
		panic("sph: digest buffer too short")
	}

	d.params.Padding.Finish(d.x, d.nx, ub, nb, d.count, d.flush)
	d.family.Output(dst[:d.params.Size], d.state)
	d.Reset()
}

// Clone returns an independent copy of the running computation
func (d *Digest[W]) Clone() *Digest[W] {
	return &Digest[W]{
		family: d.family,
		params: d.params,
		state:  slices.Clone(d.state),
		block:  make([]W, len(d.block)),
		x:      slices.Clone(d.x),
		nx:     d.nx,
		count:  d.count,
	}
}

// Sum appends the digest of the data written so far to b without changing d
func (d *Digest[W]) Sum(b []byte) []byte {
	b = slices.Grow(b, d.params.Size)
	d.Clone().Close(b[len(b) : len(b)+d.params.Size])
	return b[:len(b)+d.params.Size]
}

// Sum is a one-shot digest of data
func Sum[W Word](f Family[W], data []byte) []byte {
	d := New(f)
	_, _ = d.Write(data)
	out := make([]byte, d.params.Size)
	d.Close(out)
	return out
}
