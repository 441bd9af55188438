package types

import (
	"math/big"
	"runtime"
	"testing"
)

var (
	powHash             = MustHashFromString("abcf2c2ee4a64a683f24bedb2099dd16ae08c03a1ecc1208bf93a90200000000")
	sidechainDifficulty = DifficultyFrom64(2062136440)
	powDifficulty       = DifficultyFrom64(412975968250)
	networkDifficulty   = DifficultyFrom64(229654626174)
)

// checkPoWBig is the arbitrary precision reference for CheckPoW
func checkPoWBig(d Difficulty, pow Hash) bool {
	var be [HashSize]byte
	for i := range pow {
		be[i] = pow[HashSize-1-i]
	}
	p := new(big.Int).Mul(new(big.Int).SetBytes(be[:]), d.Big())
	return p.BitLen() <= 256
}

func TestDifficultyFromPoW(t *testing.T) {
	diff := DifficultyFromPoW(powHash)

	if !diff.Equals(powDifficulty) {
		t.Errorf("%s does not equal %s", diff, powDifficulty)
	}

	if !DifficultyFromPoW(ZeroHash).IsZero() {
		t.Errorf("zero hash must yield zero difficulty")
	}

	var one Hash
	one[0] = 1
	if !DifficultyFromPoW(one).Equals(MaxDifficulty) {
		t.Errorf("tiny hash must saturate to %s", MaxDifficulty)
	}
}

func TestDifficulty_CheckPoW(t *testing.T) {

	if !networkDifficulty.CheckPoW(powHash) {
		t.Errorf("%s does not pass PoW %s", powHash, networkDifficulty)
	}

	if !sidechainDifficulty.CheckPoW(powHash) {
		t.Errorf("%s does not pass PoW %s", powHash, sidechainDifficulty)
	}

	if !powDifficulty.CheckPoW(powHash) {
		t.Errorf("%s does not pass PoW %s", powHash, powDifficulty)
	}

	powHash2 := powHash
	powHash2[len(powHash2)-1]++

	if networkDifficulty.CheckPoW(powHash2) {
		t.Errorf("%s does pass PoW %s incorrectly", powHash2, networkDifficulty)
	}

	if sidechainDifficulty.CheckPoW(powHash2) {
		t.Errorf("%s does pass PoW %s incorrectly", powHash2, sidechainDifficulty)
	}

	powHash3 := powHash
	powHash3[len(powHash2)-9]++

	if powDifficulty.CheckPoW(powHash3) {
		t.Errorf("%s does pass PoW %s incorrectly", powHash3, powDifficulty)
	}
}

func TestDifficulty_CheckPoW_Big(t *testing.T) {
	hashes := []Hash{ZeroHash, powHash, MustHashFromString("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")}
	diffs := []Difficulty{ZeroDifficulty, DifficultyFrom64(1), powDifficulty, NewDifficulty(0, 1), NewDifficulty(3, 0x10), MaxDifficulty}

	for _, h := range hashes {
		for _, d := range diffs {
			if d.CheckPoW(h) != checkPoWBig(d, h) {
				t.Errorf("%s diff %s result mismatch", h, d)
			}
		}
	}
}

func BenchmarkDifficulty_CheckPoW(b *testing.B) {
	b.ReportAllocs()
	var result bool
	for b.Loop() {
		result = networkDifficulty.CheckPoW(powHash)
	}
	runtime.KeepAlive(result)
}

func FuzzDifficulty_CheckPoW(f *testing.F) {
	f.Add(powHash[:], sidechainDifficulty.Lo, sidechainDifficulty.Hi)
	f.Add(powHash[:], powDifficulty.Lo, powDifficulty.Hi)
	f.Add(powHash[:], networkDifficulty.Lo, networkDifficulty.Hi)
	f.Add(ZeroHash[:], uint64(0), uint64(0))

	f.Fuzz(func(t *testing.T, hash []byte, lo, hi uint64) {
		if len(hash) != HashSize {
			t.SkipNow()
		}

		d := NewDifficulty(lo, hi)

		h := Hash(hash)

		result := d.CheckPoW(h)
		result2 := checkPoWBig(d, h)

		if result != result2 {
			t.Fatalf("%s diff lo,hi = %d, %d result mismatch: %v vs big %v", h.String(), lo, hi, result, result2)
		}
	})
}
