// Package sampling implements deterministic generation of random sample
// values, used to produce reproducible interpolation node sets in tests and
// benchmarks.
package sampling

import (
	"io"

	"golang.org/x/crypto/blake2b"
)

// PRNG is a source of pseudo-random bytes.
type PRNG interface {
	io.Reader
}

// KeyedPRNG generates a deterministic sequence of pseudo-random bytes from a
// key, using the blake2b XOF. Two KeyedPRNG instances created with the same
// key produce the same stream. It is not safe for concurrent use.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG from the given key. A nil key is
// treated as an empty key.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &KeyedPRNG{key: k, xof: xof}, nil
}

// Key returns a copy of the key used to seed the PRNG. The key can be passed
// to NewKeyedPRNG to reproduce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read fills sum with pseudo-random bytes.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// Reset rewinds the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}
