package words

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sequence(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i + 1)
	}
	return buf
}

func TestDecode(t *testing.T) {
	src := sequence(16)

	t.Run("LittleEndian32", func(t *testing.T) {
		dst := make([]uint32, 4)
		Decode(LittleEndian, dst, src)
		require.Equal(t, []uint32{0x04030201, 0x08070605, 0x0c0b0a09, 0x100f0e0d}, dst)
	})

	t.Run("BigEndian32", func(t *testing.T) {
		dst := make([]uint32, 4)
		Decode(BigEndian, dst, src)
		require.Equal(t, []uint32{0x01020304, 0x05060708, 0x090a0b0c, 0x0d0e0f10}, dst)
	})

	t.Run("LittleEndian64", func(t *testing.T) {
		dst := make([]uint64, 2)
		Decode(LittleEndian, dst, src)
		require.Equal(t, []uint64{0x0807060504030201, 0x100f0e0d0c0b0a09}, dst)
	})

	t.Run("BigEndian64", func(t *testing.T) {
		dst := make([]uint64, 2)
		Decode(BigEndian, dst, src)
		require.Equal(t, []uint64{0x0102030405060708, 0x090a0b0c0d0e0f10}, dst)
	})
}

// TestDecode_Unaligned checks the memory reinterpretation path against byte composition
func TestDecode_Unaligned(t *testing.T) {
	backing := make([]uint64, 17)
	raw := unsafeBytes(backing)
	copy(raw, sequence(len(raw)))

	for _, order := range []Order{LittleEndian, BigEndian} {
		for offset := range 8 {
			src := raw[offset : offset+128]
			require.Equal(t, offset == 0, Aligned(src, 8))

			fast := make([]uint64, 16)
			Decode(order, fast, src)

			slow := make([]uint64, 16)
			decodeBytes(order, slow, src)
			require.Equal(t, slow, fast, "order %s offset %d", order, offset)

			fast32 := make([]uint32, 32)
			Decode(order, fast32, src)
			slow32 := make([]uint32, 32)
			decodeBytes(order, slow32, src)
			require.Equal(t, slow32, fast32, "order %s offset %d", order, offset)
		}
	}
}

func TestEncode(t *testing.T) {
	for _, order := range []Order{LittleEndian, BigEndian} {
		src := sequence(64)

		w64 := make([]uint64, 8)
		Decode(order, w64, src)
		out := make([]byte, 64)
		Encode(order, out, w64)
		require.Equal(t, src, out)

		slow := make([]byte, 64)
		encodeBytes(order, slow, w64)
		require.Equal(t, src, slow)

		w32 := make([]uint32, 16)
		Decode(order, w32, src)
		clear(out)
		Encode(order, out, w32)
		require.Equal(t, src, out)
	}
}

func TestShortBuffers(t *testing.T) {
	require.Panics(t, func() {
		Decode(LittleEndian, make([]uint64, 2), make([]byte, 15))
	})
	require.Panics(t, func() {
		Encode(BigEndian, make([]byte, 7), make([]uint32, 2))
	})
	require.NotPanics(t, func() {
		Decode[uint32](LittleEndian, nil, nil)
		Encode[uint64](BigEndian, nil, nil)
	})
}

func BenchmarkDecode(b *testing.B) {
	src := sequence(129)
	dst := make([]uint64, 16)

	b.Run("Aligned", func(b *testing.B) {
		b.SetBytes(128)
		for b.Loop() {
			Decode(Host, dst, src[:128])
		}
	})

	b.Run("Unaligned", func(b *testing.B) {
		b.SetBytes(128)
		for b.Loop() {
			Decode(Host, dst, src[1:])
		}
	})
}
