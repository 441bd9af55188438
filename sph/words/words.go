// Package words converts between byte streams and the 32 or 64-bit words hash families operate on.
package words

import (
	"encoding/binary"
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

type Word interface {
	~uint32 | ~uint64
}

type Order uint8

const (
	LittleEndian Order = iota
	BigEndian
)

func (o Order) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// Host is the byte order of the running machine
var Host = func() Order {
	if cpu.IsBigEndian {
		return BigEndian
	}
	return LittleEndian
}()

// Size returns the byte length of W
func Size[W Word]() int {
	var zero W
	return int(unsafe.Sizeof(zero))
}

// Aligned reports whether src starts on a size-byte boundary
func Aligned(src []byte, size int) bool {
	// #nosec G103 -- address is only inspected
	return uintptr(unsafe.Pointer(unsafe.SliceData(src)))%uintptr(size) == 0
}

// Decode fills dst with words read from src in the given order.
// src must hold at least len(dst) words.
func Decode[W Word](order Order, dst []W, src []byte) {
	size := Size[W]()
	if len(src) < len(dst)*size {
		panic("words: short source")
	}
	if len(dst) == 0 {
		return
	}

	if order == Host && Aligned(src, size) {
		// #nosec G103 -- length and alignment checked above
		copy(dst, unsafe.Slice((*W)(unsafe.Pointer(unsafe.SliceData(src))), len(dst)))
		runtime.KeepAlive(src)
		return
	}
	decodeBytes(order, dst, src)
}

func decodeBytes[W Word](order Order, dst []W, src []byte) {
	var bo binary.ByteOrder = binary.LittleEndian
	if order == BigEndian {
		bo = binary.BigEndian
	}

	if Size[W]() == 4 {
		for i := range dst {
			dst[i] = W(bo.Uint32(src[i*4:]))
		}
	} else {
		for i := range dst {
			dst[i] = W(bo.Uint64(src[i*8:]))
		}
	}
}

// Encode writes src into dst in the given order. dst must hold at least len(src) words.
func Encode[W Word](order Order, dst []byte, src []W) {
	size := Size[W]()
	if len(dst) < len(src)*size {
		panic("words: short destination")
	}
	if len(src) == 0 {
		return
	}

	if order == Host {
		// #nosec G103 -- word slice viewed as its backing bytes
		copy(dst, unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(src))), len(src)*size))
		runtime.KeepAlive(src)
		return
	}
	encodeBytes(order, dst, src)
}

func encodeBytes[W Word](order Order, dst []byte, src []W) {
	var bo binary.ByteOrder = binary.LittleEndian
	if order == BigEndian {
		bo = binary.BigEndian
	}

	if Size[W]() == 4 {
		for i, w := range src {
			bo.PutUint32(dst[i*4:], uint32(w))
		}
	} else {
		for i, w := range src {
			bo.PutUint64(dst[i*8:], uint64(w))
		}
	}
}
