package obf

import (
	"github.com/spaolacci/murmur3"
)

// Seed passed to murmur3 for every element hash.
const hashSeed = 0

// roundHasher holds the two 64-bit halves of an element's 128-bit murmur3
// hash. Each hash round is derived from them by double hashing, so a filter
// hashes an element once per Add or Contains call regardless of its number of
// rounds.
type roundHasher struct {
	hashA uint64
	hashB uint64
}

func newRoundHasher(data []byte) roundHasher {
	hashA, hashB := murmur3.Sum128WithSeed(data, hashSeed)
	return roundHasher{hashA: hashA, hashB: hashB}
}

// at returns the array index of round n for an array of size cells. The
// arithmetic wraps modulo 2^64 before the final reduction.
func (h roundHasher) at(n uint64, size uint64) uint64 {
	return (h.hashA + n*h.hashB) % size
}
