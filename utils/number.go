package utils

func IsPowerOfTwo[T ~uint64 | ~uint32 | ~int](x T) bool {
	return x > 0 && x&(x-1) == 0
}
