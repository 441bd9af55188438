package scrypt

import (
	"fmt"

	"git.gammaspectra.live/P2Pool/m7hash/pbkdf2"
	"git.gammaspectra.live/P2Pool/m7hash/types"
	"git.gammaspectra.live/P2Pool/m7hash/utils"
	"golang.org/x/sys/cpu"
)

// MaxMemory is an optional ceiling in bytes for a single derivation, checked before allocating.
// 0 disables the check.
var MaxMemory uint64

// State scrypt work area, to reuse between derivations. Not thread-safe.
type State struct {
	v  []uint32
	xy []uint32

	_ cpu.CacheLinePad // lanes of Derive live side by side
}

// allocate turns runtime allocation panics (negative or overflowing sizes) into ErrResourceExhausted
func allocate(n uint64) (buf []uint32, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: allocating %d words: %v", ErrResourceExhausted, n, r)
		}
	}()
	return make([]uint32, n), nil
}

// prepare sizes the work area for params, reusing the previous allocation when large enough
func (s *State) prepare(params Params) error {
	vLen := 32 * uint64(params.R) * uint64(params.N)
	xyLen := 64 * uint64(params.R)

	if uint64(cap(s.v)) < vLen {
		s.v = nil
		utils.Debugf("Scrypt", "allocating work area for %s (%d bytes)", params, params.laneMemory())
		v, err := allocate(vLen)
		if err != nil {
			utils.Errorf("Scrypt", "work area for %s: %s", params, err)
			return err
		}
		s.v = v
	}
	if uint64(cap(s.xy)) < xyLen {
		xy, err := allocate(xyLen)
		if err != nil {
			utils.Errorf("Scrypt", "scratch for %s: %s", params, err)
			return err
		}
		s.xy = xy
	}

	s.v = s.v[:vLen]
	s.xy = s.xy[:xyLen]
	return nil
}

// Release drops the work area
func (s *State) Release() {
	s.v = nil
	s.xy = nil
}

func checkMemory(params Params, routines int) error {
	if MaxMemory == 0 {
		return nil
	}
	if need := params.MemoryRequired(routines); need > MaxMemory {
		err := fmt.Errorf("%w: %s needs %d bytes, limit is %d", ErrResourceExhausted, params, need, MaxMemory)
		utils.Errorf("Scrypt", "%s", err)
		return err
	}
	return nil
}

func validate(params Params, keyLen int) error {
	if keyLen < 1 {
		return fmt.Errorf("%w: key length must be positive, got %d", ErrInvalidParameter, keyLen)
	}
	return params.Validate()
}

// Key derives keyLen bytes, running the lanes one after another on this work area
func (s *State) Key(password, salt []byte, params Params, keyLen int) ([]byte, error) {
	if err := validate(params, keyLen); err != nil {
		return nil, err
	}
	if err := checkMemory(params, 1); err != nil {
		return nil, err
	}
	if err := s.prepare(params); err != nil {
		return nil, err
	}

	laneSize := 128 * params.R
	b := pbkdf2.Key(password, salt, 1, params.P*laneSize)

	for lane := range params.P {
		romix(b[lane*laneSize:(lane+1)*laneSize], params.R, params.N, s.v, s.xy)
	}

	return pbkdf2.Key(password, b, 1, keyLen), nil
}

func (s *State) Sum(password, salt []byte, params Params) (types.Hash, error) {
	out, err := s.Key(password, salt, params, types.HashSize)
	if err != nil {
		return types.ZeroHash, err
	}
	return types.HashFromBytes(out), nil
}
