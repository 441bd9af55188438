package types

import (
	"math"
	"testing"

	"git.gammaspectra.live/P2Pool/m7hash/utils"
)

func TestDifficulty(t *testing.T) {
	hexDiff := "000000000000000000000000683a8b1c"
	diff, err := DifficultyFromString(hexDiff)
	if err != nil {
		t.Fatal(err)
	}

	if diff.String() != hexDiff {
		t.Fatalf("expected %s, got %s", hexDiff, diff)
	}

	short, err := DifficultyFromString("683a8b1c")
	if err != nil {
		t.Fatal(err)
	}
	if !short.Equals(diff) {
		t.Fatalf("expected %s, got %s", diff, short)
	}

	if _, err = DifficultyFromString("000000000000000000000000000000000"); err == nil {
		t.Fatal("expected error on oversized difficulty")
	}
}

func TestDifficulty_UnmarshalJSON(t *testing.T) {
	hexDiff := "\"0x4970d\""
	var diff Difficulty
	err := diff.UnmarshalJSON([]byte(hexDiff))
	if err != nil {
		t.Fatal(err)
	}

	if diff.Lo != 0x4970d {
		t.Fatalf("expected %d, got %d", 0x4970d, diff.Lo)
	}

	err = diff.UnmarshalJSON([]byte("300813"))
	if err != nil {
		t.Fatal(err)
	}
	if diff.Lo != 300813 || diff.Hi != 0 {
		t.Fatalf("expected %d, got %s", 300813, diff)
	}
}

func TestDifficulty_MarshalJSON(t *testing.T) {
	for _, d := range []Difficulty{DifficultyFrom64(412975968250), NewDifficulty(7, 1), MaxDifficulty} {
		buf, err := d.MarshalJSON()
		if err != nil {
			t.Fatal(err)
		}
		var d2 Difficulty
		if err = d2.UnmarshalJSON(buf); err != nil {
			t.Fatal(err)
		}
		if !d.Equals(d2) {
			t.Fatalf("expected %s, got %s from %s", d, d2, string(buf))
		}
	}
}

func TestDifficulty_Convergence(t *testing.T) {
	t.Run("Division", func(t *testing.T) {
		check := func(a, b, expected Difficulty) {
			actual := a.Div(b)
			if !actual.Equals(expected) {
				t.Fatalf("expected %s, got %s", expected, actual)
			}
		}

		check(MaxDifficulty, MaxDifficulty, Difficulty{Lo: 1, Hi: 0})
		check(MaxDifficulty, Difficulty{Lo: 0, Hi: 1}, Difficulty{Lo: math.MaxUint64, Hi: 0})
		check(MaxDifficulty, Difficulty{Lo: 1, Hi: 1}, Difficulty{Lo: math.MaxUint64, Hi: 0})
		check(MaxDifficulty, Difficulty{Lo: 2, Hi: 1}, Difficulty{Lo: math.MaxUint64 - 1, Hi: 0})
		check(MaxDifficulty, Difficulty{Lo: 439125228929, Hi: 439125228929}, Difficulty{Lo: 42007935, Hi: 0})
		check(Difficulty{Lo: 0, Hi: math.MaxUint64}, Difficulty{Lo: math.MaxUint64, Hi: 0}, Difficulty{Lo: 0, Hi: 1})
	})
}

func TestDifficulty_MarshalJSONStruct(t *testing.T) {
	type target struct {
		Hash       Hash       `json:"hash"`
		Difficulty Difficulty `json:"difficulty"`
	}

	v := target{Hash: powHash, Difficulty: powDifficulty}
	buf, err := utils.MarshalJSON(v)
	if err != nil {
		t.Fatal(err)
	}
	expected := `{"hash":"` + powHash.String() + `","difficulty":412975968250}`
	if string(buf) != expected {
		t.Fatalf("got %s, expected %s", buf, expected)
	}

	var decoded target
	if err = utils.UnmarshalJSON(buf, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Hash != v.Hash || !decoded.Difficulty.Equals(v.Difficulty) {
		t.Errorf("got %+v, expected %+v", decoded, v)
	}
}
