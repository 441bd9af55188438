// Package scrypt implements the scrypt memory-hard key derivation function of RFC 7914,
// as used for proof of work by the Litecoin family of coins.
//
// Every derivation fills a work area of 128*r*N bytes per lane. Callers hashing many inputs should
// keep a State around, package level helpers allocate and drop one per call.
package scrypt

import (
	"sync"

	"git.gammaspectra.live/P2Pool/m7hash/pbkdf2"
	"git.gammaspectra.live/P2Pool/m7hash/types"
	"git.gammaspectra.live/P2Pool/m7hash/utils"
)

// Key derives keyLen bytes from password and salt.
//
// N must be a power of two greater than 1, and r*p must stay below 2^30.
// Invalid arguments return ErrInvalidParameter, an oversized work area ErrResourceExhausted.
func Key(password, salt []byte, N, r, p, keyLen int) ([]byte, error) {
	return Derive(password, salt, Params{N: N, R: r, P: p}, keyLen, 1)
}

// Sum returns the 32-byte derivation of password and salt
func Sum(password, salt []byte, N, r, p int) (types.Hash, error) {
	var s State
	defer s.Release()
	return s.Sum(password, salt, Params{N: N, R: r, P: p})
}

var headerStates = sync.Pool{
	New: func() any {
		return new(State)
	},
}

// SumHeader hashes a block header with LitecoinParams, using the header as both password and salt
func SumHeader(header []byte) (types.Hash, error) {
	//nolint:forcetypeassert
	s := headerStates.Get().(*State)
	defer headerStates.Put(s)
	return s.Sum(header, header, LitecoinParams)
}

// Derive is Key with the p lanes spread over up to routines goroutines, each with its own work area.
// routines <= 1 runs the lanes sequentially.
func Derive(password, salt []byte, params Params, keyLen, routines int) ([]byte, error) {
	if routines <= 1 || params.P == 1 {
		var s State
		defer s.Release()
		return s.Key(password, salt, params, keyLen)
	}

	if err := validate(params, keyLen); err != nil {
		return nil, err
	}
	routines = min(routines, params.P)
	if err := checkMemory(params, routines); err != nil {
		return nil, err
	}

	laneSize := 128 * params.R
	b := pbkdf2.Key(password, salt, 1, params.P*laneSize)

	utils.Debugf("Scrypt", "deriving %s over %d routines", params, routines)

	states := make([]State, routines)
	defer func() {
		for i := range states {
			states[i].Release()
		}
	}()

	err := utils.SplitWork(routines, uint64(params.P), func(workIndex uint64, routineIndex int) error {
		s := &states[routineIndex]
		lane := int(workIndex)
		romix(b[lane*laneSize:(lane+1)*laneSize], params.R, params.N, s.v, s.xy)
		return nil
	}, func(routines, routineIndex int) error {
		return states[routineIndex].prepare(params)
	})
	if err != nil {
		return nil, err
	}

	return pbkdf2.Key(password, b, 1, keyLen), nil
}
