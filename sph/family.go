// Package sph is a streaming engine for block hash functions.
//
// Each hash family supplies its parameters, initial value, block transform and output
// encoding through Family. Digest handles buffering, byte counting, padding and output,
// so the families only deal with whole blocks of words.
package sph

import "git.gammaspectra.live/P2Pool/m7hash/sph/words"

type Word = words.Word

type Params struct {
	Name string
	// BlockSize in bytes, a multiple of the word size
	BlockSize int
	// StateWords is the length of the chaining state
	StateWords int
	// Size of the digest in bytes
	Size    int
	Order   words.Order
	Padding Padding
}

// Family is a hash compression function over words of type W.
// Implementations are stateless; all chaining data lives in the state slice.
type Family[W Word] interface {
	Params() Params
	// Init writes the initial chaining value into state
	Init(state []W)
	// Compress absorbs one decoded block into state
	Compress(state, block []W)
	// Output writes exactly Params().Size bytes of digest derived from state into dst
	Output(dst []byte, state []W)
}
