// Package randctx - seed derivation and parsing.
//
// This file centralizes how raw seeds become generator state:
//   - splitmix64 diffuses a single int64 seed into the two PCG state words,
//     so adjacent seeds produce uncorrelated streams.
//   - entropySeed supplies the one-time system-entropy fallback for unseeded
//     contexts.
//   - ParseSeed is the boundary where textual seeds (YAML, CLI) are checked;
//     a non-integer seed is the only seed-shaped input the library rejects.
package randctx

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	mathrand "math/rand/v2"
	"strconv"
)

// ErrInvalidSeed is returned by ParseSeed when the input is not an integer.
var ErrInvalidSeed = errors.New("randctx: seed is not an integer")

// defaultSeed is the fixed fallback used only if system entropy is
// unreadable. The value is arbitrary but stable.
const defaultSeed int64 = 1

// splitmix64 is the canonical SplitMix64 finalizer (Vigna 2014). It provides
// strong bit diffusion: small input changes yield large, well-distributed
// output changes, which keeps derived streams uncorrelated.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// newGenerator builds the deterministic PCG generator for a seed.
// Both PCG state words are derived from the seed through splitmix64 so the
// full 128-bit state depends on every seed bit.
//
// Complexity: O(1).
func newGenerator(seed int64) *mathrand.Rand {
	s := uint64(seed)

	return mathrand.New(mathrand.NewPCG(splitmix64(s), splitmix64(s^0x9e3779b97f4a7c15)))
}

// mixSeed folds a parent value and a stream identifier into a fresh seed.
// Used by Fork to give each child stream an independent deterministic state.
//
// Complexity: O(1).
func mixSeed(parent int64, stream uint64) int64 {
	return int64(splitmix64(uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)))
}

// entropySeed reads one int64 of system entropy. If the read fails (which
// crypto/rand documents as effectively impossible on supported platforms),
// defaultSeed is used so the library stays panic-free.
func entropySeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return defaultSeed
	}

	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// ParseSeed converts a textual seed into an int64.
// Returns ErrInvalidSeed (wrapped with the offending input) for anything that
// is not a base-10 integer.
func ParseSeed(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeed, s)
	}

	return v, nil
}
