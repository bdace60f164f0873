package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Shuffle permutes s in place with Fisher-Yates.
// The result is reproducible only when rng was built from a fixed seed.
func Shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("core: read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRand returns a PRNG for the given seed. Seed 0 draws a fresh seed
// from the OS entropy source.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		if s, err := NewSeed(); err == nil {
			seed = s
		}
	}
	return rand.New(rand.NewSource(seed))
}
