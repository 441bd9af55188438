package scrypt

import (
	"fmt"

	"git.gammaspectra.live/P2Pool/m7hash/utils"
)

const maxInt = int(^uint(0) >> 1)

// Params are the scrypt cost parameters
type Params struct {
	// N is the CPU/memory cost, a power of two greater than 1
	N int
	// R is the block size factor
	R int
	// P is the number of independent lanes
	P int
}

// LitecoinParams are the parameters of the Litecoin family proof of work
var LitecoinParams = Params{N: 1024, R: 1, P: 1}

func (p Params) String() string {
	return fmt.Sprintf("N=%d r=%d p=%d", p.N, p.R, p.P)
}

func (p Params) Validate() error {
	if p.N <= 1 || !utils.IsPowerOfTwo(p.N) {
		return fmt.Errorf("%w: N must be > 1 and a power of 2, got %d", ErrInvalidParameter, p.N)
	}
	if p.R < 1 || p.P < 1 {
		return fmt.Errorf("%w: r and p must be positive, got %s", ErrInvalidParameter, p)
	}
	if uint64(p.R)*uint64(p.P) >= 1<<30 || p.R > maxInt/128/p.P || p.R > maxInt/256 || p.N > maxInt/128/p.R {
		return fmt.Errorf("%w: parameters are too large, %s", ErrInvalidParameter, p)
	}
	return nil
}

// laneMemory is the work area of a single lane in bytes: N blocks of 128*r bytes plus two scratch blocks
func (p Params) laneMemory() uint64 {
	return 128*uint64(p.R)*uint64(p.N) + 256*uint64(p.R)
}

// MemoryRequired is the memory in bytes a derivation running routines lanes at once needs
func (p Params) MemoryRequired(routines int) uint64 {
	routines = max(1, min(routines, p.P))
	return uint64(routines)*p.laneMemory() + 128*uint64(p.R)*uint64(p.P)
}
