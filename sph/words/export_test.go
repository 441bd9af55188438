package words

import "unsafe"

func unsafeBytes(w []uint64) []byte {
	// #nosec G103
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(w))), len(w)*8)
}
