package types

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	fasthex "github.com/tmthrgd/go-hex"
	"lukechampine.com/uint128"
)

// Difficulty is a 128-bit PoW difficulty. A hash h satisfies difficulty d when h * d < 2^256,
// with h read as a little-endian 256-bit number.
type Difficulty uint128.Uint128

var ZeroDifficulty = Difficulty{}
var MaxDifficulty = Difficulty{Lo: math.MaxUint64, Hi: math.MaxUint64}

var maxPoW = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

func NewDifficulty(lo, hi uint64) Difficulty {
	return Difficulty{Lo: lo, Hi: hi}
}

func DifficultyFrom64(v uint64) Difficulty {
	return NewDifficulty(v, 0)
}

// DifficultyFromString parses a big-endian hex string of up to 32 digits
func DifficultyFromString(s string) (Difficulty, error) {
	if len(s) > 32 {
		return ZeroDifficulty, errors.New("difficulty too long")
	}
	var buf [32]byte
	for i := range buf[:32-len(s)] {
		buf[i] = '0'
	}
	copy(buf[32-len(s):], s)

	var b [16]byte
	if _, err := fasthex.Decode(b[:], buf[:]); err != nil {
		return ZeroDifficulty, err
	}
	return NewDifficulty(binary.BigEndian.Uint64(b[8:]), binary.BigEndian.Uint64(b[:8])), nil
}

// DifficultyFromPoW returns the highest difficulty pow satisfies, floor((2^256 - 1) / pow),
// saturated to MaxDifficulty
func DifficultyFromPoW(pow Hash) Difficulty {
	if pow == ZeroHash {
		return ZeroDifficulty
	}

	w := pow.Words()
	h := new(big.Int)
	for i := len(w) - 1; i >= 0; i-- {
		h.Lsh(h, 64)
		h.Or(h, new(big.Int).SetUint64(w[i]))
	}

	q := new(big.Int).Quo(maxPoW, h)
	if q.BitLen() > 128 {
		return MaxDifficulty
	}
	return Difficulty(uint128.FromBig(q))
}

func mulWord(w [4]uint64, m uint64) (r [5]uint64) {
	var carry uint64
	for i, x := range w {
		hi, lo := bits.Mul64(x, m)
		var c uint64
		r[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}
	r[4] = carry
	return r
}

// CheckPoW reports whether pow * d < 2^256
func (d Difficulty) CheckPoW(pow Hash) bool {
	w := pow.Words()

	lo := mulWord(w, d.Lo)
	if lo[4] != 0 {
		return false
	}
	if d.Hi == 0 {
		return true
	}

	hi := mulWord(w, d.Hi)
	if hi[3] != 0 || hi[4] != 0 {
		return false
	}

	// lo[1..3] + hi[0..2] must not carry into the fifth word
	_, c := bits.Add64(lo[1], hi[0], 0)
	_, c = bits.Add64(lo[2], hi[1], c)
	_, c = bits.Add64(lo[3], hi[2], c)
	return c == 0
}

func (d Difficulty) Equals(other Difficulty) bool {
	return uint128.Uint128(d).Equals(uint128.Uint128(other))
}

func (d Difficulty) Cmp(other Difficulty) int {
	return uint128.Uint128(d).Cmp(uint128.Uint128(other))
}

func (d Difficulty) IsZero() bool {
	return uint128.Uint128(d).IsZero()
}

// Div panics when other is zero
func (d Difficulty) Div(other Difficulty) Difficulty {
	return Difficulty(uint128.Uint128(d).Div(uint128.Uint128(other)))
}

func (d Difficulty) Big() *big.Int {
	return uint128.Uint128(d).Big()
}

func (d Difficulty) MarshalJSON() ([]byte, error) {
	if d.Hi == 0 {
		return strconv.AppendUint(nil, d.Lo, 10), nil
	}
	return []byte("\"0x" + strings.TrimLeft(d.String(), "0") + "\""), nil
}

// UnmarshalJSON accepts a decimal number or a quoted hex string with an optional 0x prefix
func (d *Difficulty) UnmarshalJSON(b []byte) error {
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		s := strings.TrimPrefix(string(b[1:len(b)-1]), "0x")
		diff, err := DifficultyFromString(s)
		if err != nil {
			return err
		}
		*d = diff
		return nil
	}

	i, ok := new(big.Int).SetString(string(b), 10)
	if !ok || i.Sign() < 0 || i.BitLen() > 128 {
		return errors.New("invalid difficulty")
	}
	*d = Difficulty(uint128.FromBig(i))
	return nil
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%016x%016x", d.Hi, d.Lo)
}
