// Package hashes is a registry of the available hash families by name, with one-shot
// and multi-family helpers for hashing the same input with several of them.
package hashes

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"io"
	"slices"
	"sync"

	"git.gammaspectra.live/P2Pool/m7hash/sph/haval"
	"git.gammaspectra.live/P2Pool/m7hash/sph/keccak"
	"git.gammaspectra.live/P2Pool/m7hash/sph/ripemd"
	"git.gammaspectra.live/P2Pool/m7hash/sph/sha2"
	"git.gammaspectra.live/P2Pool/m7hash/sph/tiger"
	"git.gammaspectra.live/P2Pool/m7hash/sph/whirlpool"
	"git.gammaspectra.live/P2Pool/m7hash/utils"
	"github.com/dolthub/swiss"
)

// ErrUnsupported is returned when a hash name is not registered
var ErrUnsupported = errors.New("hash type not supported")

type definition struct {
	name    string
	size    int
	newFunc func() hash.Hash
}

var (
	registryLock sync.RWMutex
	registry     = swiss.NewMap[string, *definition](32)
)

// M7 lists the families whose digests of a block header feed the m7m proof of work
var M7 = []string{"sha256", "sha512", "keccak512", "haval256_5", "tiger", "ripemd160", "whirlpool"}

// Register adds newFunc under name, replacing any previous registration
func Register(name string, size int, newFunc func() hash.Hash) {
	registryLock.Lock()
	defer registryLock.Unlock()
	registry.Put(name, &definition{
		name:    name,
		size:    size,
		newFunc: newFunc,
	})
	utils.Debugf("Hashes", "registered %s (%d bytes)", name, size)
}

func lookup(name string) (*definition, error) {
	registryLock.RLock()
	defer registryLock.RUnlock()
	if d, ok := registry.Get(name); ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, name)
}

// New returns a fresh hash for name
func New(name string) (hash.Hash, error) {
	d, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return d.newFunc(), nil
}

// Size returns the digest size of name in bytes
func Size(name string) (int, error) {
	d, err := lookup(name)
	if err != nil {
		return 0, err
	}
	return d.size, nil
}

// Sum returns the digest of data under name
func Sum(name string, data []byte) ([]byte, error) {
	h, err := New(name)
	if err != nil {
		return nil, err
	}
	_, _ = h.Write(data)
	return h.Sum(nil), nil
}

// Names returns all registered names, sorted
func Names() (names []string) {
	registryLock.RLock()
	defer registryLock.RUnlock()
	names = make([]string, 0, registry.Count())
	registry.Iter(func(name string, _ *definition) (stop bool) {
		names = append(names, name)
		return false
	})
	slices.Sort(names)
	return names
}

// MultiHasher writes the same input to several hashes at once
type MultiHasher struct {
	names  []string
	hashes []hash.Hash
	w      io.Writer
	size   int64
}

func NewMultiHasher(names ...string) (*MultiHasher, error) {
	m := &MultiHasher{
		names:  slices.Clone(names),
		hashes: make([]hash.Hash, 0, len(names)),
	}
	writers := make([]io.Writer, 0, len(names))
	for _, name := range names {
		h, err := New(name)
		if err != nil {
			return nil, err
		}
		m.hashes = append(m.hashes, h)
		writers = append(writers, h)
	}
	m.w = io.MultiWriter(writers...)
	return m, nil
}

func (m *MultiHasher) Write(p []byte) (n int, err error) {
	n, err = m.w.Write(p)
	m.size += int64(n)
	return n, err
}

// Sums returns the digests in the order the names were given
func (m *MultiHasher) Sums() [][]byte {
	out := make([][]byte, len(m.hashes))
	for i, h := range m.hashes {
		out[i] = h.Sum(nil)
	}
	return out
}

// Sum returns the digest of a single name
func (m *MultiHasher) Sum(name string) ([]byte, error) {
	if i := slices.Index(m.names, name); i >= 0 {
		return m.hashes[i].Sum(nil), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, name)
}

// Size returns the number of bytes written
func (m *MultiHasher) Size() int64 {
	return m.size
}

// Stream reads r to the end and returns its digests under names
func Stream(r io.Reader, names ...string) ([][]byte, error) {
	m, err := NewMultiHasher(names...)
	if err != nil {
		return nil, err
	}
	if _, err = io.Copy(m, r); err != nil {
		return nil, err
	}
	return m.Sums(), nil
}

//nolint:gochecknoinits
func init() {
	Register("sha256", sha256.Size, sha256.New)
	Register("sha384", sha2.Size384, func() hash.Hash { return sha2.New384() })
	Register("sha512", sha2.Size512, func() hash.Hash { return sha2.New512() })

	Register("keccak224", keccak.Size224, func() hash.Hash { return keccak.New224() })
	Register("keccak256", keccak.Size256, func() hash.Hash { return keccak.New256() })
	Register("keccak384", keccak.Size384, func() hash.Hash { return keccak.New384() })
	Register("keccak512", keccak.Size512, func() hash.Hash { return keccak.New512() })

	Register("whirlpool", whirlpool.Size, func() hash.Hash { return whirlpool.New() })

	Register("ripemd128", ripemd.Size128, func() hash.Hash { return ripemd.New128() })
	Register("ripemd160", ripemd.Size160, func() hash.Hash { return ripemd.New160() })

	Register("tiger", tiger.Size, func() hash.Hash { return tiger.New() })
	Register("tiger2", tiger.Size, func() hash.Hash { return tiger.New2() })

	for passes := 3; passes <= 5; passes++ {
		for _, size := range []int{haval.Size128, haval.Size160, haval.Size192, haval.Size224, haval.Size256} {
			name := haval.Family(passes, size).Params().Name
			Register(name, size, func() hash.Hash { return haval.New(passes, size) })
		}
	}
}
