package hashes

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
	"golang.org/x/crypto/sha3"
)

func TestNames(t *testing.T) {
	builtin := []string{
		"sha256", "sha384", "sha512",
		"keccak224", "keccak256", "keccak384", "keccak512",
		"whirlpool", "ripemd128", "ripemd160", "tiger", "tiger2",
	}
	for passes := 3; passes <= 5; passes++ {
		for _, bits := range []int{128, 160, 192, 224, 256} {
			builtin = append(builtin, fmt.Sprintf("haval%d_%d", bits, passes))
		}
	}

	names := Names()
	require.Subset(t, names, builtin)
	require.IsIncreasing(t, names)
	for _, name := range M7 {
		require.Contains(t, names, name)
	}
	require.Contains(t, names, "haval128_3")
	require.Contains(t, names, "tiger2")
}

func TestRegistry(t *testing.T) {
	for _, name := range Names() {
		h, err := New(name)
		require.NoError(t, err, name)

		size, err := Size(name)
		require.NoError(t, err)
		require.Equal(t, size, h.Size(), name)

		sum, err := Sum(name, []byte("abc"))
		require.NoError(t, err)
		require.Len(t, sum, size, name)
	}
}

func TestUnsupported(t *testing.T) {
	_, err := New("md4")
	require.True(t, errors.Is(err, ErrUnsupported))

	_, err = Size("md4")
	require.ErrorIs(t, err, ErrUnsupported)

	_, err = Sum("md4", nil)
	require.ErrorIs(t, err, ErrUnsupported)

	_, err = NewMultiHasher("sha512", "md4")
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestRegister(t *testing.T) {
	Register("crc32", crc32.Size, func() hash.Hash { return crc32.NewIEEE() })

	sum, err := Sum("crc32", []byte("abc"))
	require.NoError(t, err)
	require.Equal(t, []byte{0x35, 0x24, 0x41, 0xc2}, sum)
	require.Contains(t, Names(), "crc32")
}

func TestMultiHasher(t *testing.T) {
	data := bytes.Repeat([]byte("m7 header "), 8)

	sums, err := Stream(bytes.NewReader(data), M7...)
	require.NoError(t, err)
	require.Len(t, sums, len(M7))

	s256 := sha256.Sum256(data)
	require.Equal(t, s256[:], sums[0])

	s512 := sha512.Sum512(data)
	require.Equal(t, s512[:], sums[1])

	k := sha3.NewLegacyKeccak512()
	_, _ = k.Write(data)
	require.Equal(t, k.Sum(nil), sums[2])

	r := ripemd160.New()
	_, _ = r.Write(data)
	require.Equal(t, r.Sum(nil), sums[5])

	m, err := NewMultiHasher("tiger", "whirlpool")
	require.NoError(t, err)
	_, _ = m.Write(data[:7])
	_, _ = m.Write(data[7:])
	require.Equal(t, int64(len(data)), m.Size())

	tigerSum, err := m.Sum("tiger")
	require.NoError(t, err)
	require.Equal(t, sums[4], tigerSum)

	_, err = m.Sum("sha256")
	require.ErrorIs(t, err, ErrUnsupported)
}
