// Package hamt implements a persistent hash array-mapped trie used as an
// in-memory set, plus a lock-free container that publishes new versions of
// the set through compare-and-swap.
//
// A trie version is immutable. Adding a value builds a new root by rewriting
// only the branches along one root-to-leaf path; every untouched subtree is
// shared between the old and the new version. Sharing is tracked with atomic
// reference counts, so cloning a handle or taking a snapshot costs a single
// increment no matter how large the set is.
//
// Structure:
//
//	- Each level of the trie consumes 5 bits of the value's 64-bit hash,
//	  low bits first, so descent is at most 13 levels deep.
//	- A branch holds up to 32 children in a compact array addressed by a
//	  32-bit bitmap: bit i is set iff sparse slot i is populated, and the
//	  physical position of slot i is the popcount of the bits below it.
//	- A leaf holds every value sharing one full 64-bit hash; values beyond
//	  the first are collision-bucket entries found by linear scan.
//
// Example trie (3-bit chunks for brevity):
//
//	[branch 0b0101] --+-- slot 0: [leaf hash=..000 {8}]
//	                  |
//	                  `-- slot 2: [branch 0b0011] --+-- slot 0: [leaf {2}]
//	                                                `-- slot 1: [leaf {10}]
//
// HashTrie is a value-typed handle on one version: Clone shares the root,
// Add swaps in a new root locally, Release drops the handle's reference.
// A single handle is not safe for concurrent use.
//
// SharedHashTrie is the concurrent entry point. It holds an atomic pointer
// to the published (root, size) pair; Snapshot observes it, Begin starts an
// optimistic transaction, and UpdateWith retries a caller-supplied update
// until its commit lands. Writers never block each other; a losing committer
// is rebased onto the latest published version and retries.
package hamt
