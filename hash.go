package hamt

import (
	"github.com/cespare/xxhash/v2"
)

const (
	chunkBits = 5
	chunkMask = 1<<chunkBits - 1

	// maxDepth bounds descent: chunks 0..maxDepth-1 cover all 64 hash
	// bits, so two distinct hashes diverge within maxDepth levels.
	maxDepth = (64 + chunkBits - 1) / chunkBits
)

// Hasher supplies hashing and equality for the stored value type. Equal
// values must hash equally; unequal values sharing a hash end up in the
// same leaf bucket.
type Hasher[T any] interface {
	Hash(T) uint64
	Equal(a, b T) bool
}

// IdentityHasher hashes a uint64 to itself, so the value's bit pattern is
// the chunk sequence and trie shapes are predictable.
type IdentityHasher struct{}

func (IdentityHasher) Hash(v uint64) uint64   { return v }
func (IdentityHasher) Equal(a, b uint64) bool { return a == b }

// Mix64Hasher runs a uint64 through a finalizing mixer so that dense
// values scatter across chunks.
type Mix64Hasher struct{}

func (Mix64Hasher) Hash(v uint64) uint64   { return mix64(v) }
func (Mix64Hasher) Equal(a, b uint64) bool { return a == b }

// StringHasher hashes strings with xxhash.
type StringHasher struct{}

func (StringHasher) Hash(s string) uint64   { return xxhash.Sum64String(s) }
func (StringHasher) Equal(a, b string) bool { return a == b }

// mix64 is a splitmix64-style finalizer. It doubles as the rehash hook
// for chaining hashes past maxDepth; today collisions deeper than the
// chunk sequence land in a leaf bucket instead.
func mix64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// chunkedHash is a cursor over the 5-bit chunks of a hash, low bits
// first. Descent threads the cursor along so nothing masks by hand.
type chunkedHash struct {
	hash    uint64
	shifted uint64
	chunk   uint64
}

func newChunkedHash(hash uint64) chunkedHash {
	return chunkedHash{hash: hash, shifted: hash, chunk: hash & chunkMask}
}

// next advances the cursor one level down.
func (ch *chunkedHash) next() {
	ch.shifted >>= chunkBits
	ch.chunk = ch.shifted & chunkMask
}

// advance moves the cursor the given number of levels down.
func (ch *chunkedHash) advance(chunks int) {
	ch.shifted >>= uint(chunks) * chunkBits
	ch.chunk = ch.shifted & chunkMask
}

// plus returns an advanced copy, leaving the receiver in place.
func (ch chunkedHash) plus(chunks int) chunkedHash {
	ch.advance(chunks)
	return ch
}
