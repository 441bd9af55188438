package utils

import "testing"

func TestIsPowerOfTwo(t *testing.T) {
	for _, v := range []uint64{1, 2, 4, 1024, 1 << 63} {
		if !IsPowerOfTwo(v) {
			t.Errorf("%d is a power of two", v)
		}
	}
	for _, v := range []uint64{0, 3, 6, 1023, 1<<63 + 1} {
		if IsPowerOfTwo(v) {
			t.Errorf("%d is not a power of two", v)
		}
	}
	if IsPowerOfTwo(-4) {
		t.Errorf("negative values are not powers of two")
	}
}
