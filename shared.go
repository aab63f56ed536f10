package hamt

import (
	"sync/atomic"
)

// trieData is one published version: an immutable (root, size) pair. The
// container swaps whole pairs, so the root and the size always change
// together.
type trieData[T any] struct {
	root *branchNode[T]
	size uint64
}

// SharedHashTrie publishes trie versions to any number of goroutines.
// Readers take snapshots; writers race through compare-and-swap. There
// are no locks anywhere.
type SharedHashTrie[T any] struct {
	hasher Hasher[T]
	data   atomic.Pointer[trieData[T]]
}

// NewShared returns a container publishing an empty set.
func NewShared[T any](hasher Hasher[T]) *SharedHashTrie[T] {
	s := &SharedHashTrie[T]{hasher: hasher}
	s.data.Store(&trieData[T]{root: newEmptyBranch[T]()})
	return s
}

// NewSharedFrom publishes the trie's current version. The container takes
// a reference of its own; the handle stays with the caller.
func NewSharedFrom[T any](trie *HashTrie[T]) *SharedHashTrie[T] {
	s := &SharedHashTrie[T]{hasher: trie.hasher}
	addref(&trie.root.head)
	s.data.Store(&trieData[T]{root: trie.root, size: trie.size})
	return s
}

// Snapshot returns a handle on the currently published version. A commit
// landing later does not affect it.
func (s *SharedHashTrie[T]) Snapshot() HashTrie[T] {
	return newFromData(s.hasher, s.data.Load())
}

// Begin starts a transaction based on the currently published version.
// The transaction holds a reference on its base until released.
func (s *SharedHashTrie[T]) Begin() *Txn[T] {
	base := s.data.Load()
	addref(&base.root.head)
	return &Txn[T]{base: base, shared: s}
}

// UpdateWith applies update optimistically, retrying on conflict until a
// commit lands or update makes no change.
func (s *SharedHashTrie[T]) UpdateWith(update func(trie *HashTrie[T])) {
	txn := s.Begin()
	defer txn.Release()
	txn.UpdateWith(update)
}

// IsLockFree reports whether publication avoids locking. Swapping a
// pointer to the immutable (root, size) pair always does.
func (s *SharedHashTrie[T]) IsLockFree() bool {
	return true
}

// Release drops the container's reference on the published version. The
// container must not be used afterwards.
func (s *SharedHashTrie[T]) Release() {
	if data := s.data.Swap(nil); data != nil {
		release(&data.root.head)
	}
}

// tryReset swaps the published pair. On success the container takes a
// reference on the new root and lets go of the old one.
func (s *SharedHashTrie[T]) tryReset(old, new *trieData[T]) bool {
	if !s.data.CompareAndSwap(old, new) {
		return false
	}
	addref(&new.root.head)
	release(&old.root.head)
	return true
}

// Txn is an optimistic transaction: a base version to compare against
// plus the container to publish through.
type Txn[T any] struct {
	base   *trieData[T]
	shared *SharedHashTrie[T]
}

// Get returns a handle on the transaction's base version.
func (tx *Txn[T]) Get() HashTrie[T] {
	return newFromData(tx.shared.hasher, tx.base)
}

// TryCommit publishes modified if the container still holds the
// transaction's base. On conflict it rebases the transaction onto the
// currently published version and reports false; the caller rebuilds its
// modification from Get and tries again.
func (tx *Txn[T]) TryCommit(modified *HashTrie[T]) bool {
	if tx.shared.tryReset(tx.base, &trieData[T]{root: modified.root, size: modified.size}) {
		return true
	}

	current := tx.shared.data.Load()
	addref(&current.root.head)
	release(&tx.base.root.head)
	tx.base = current
	return false
}

// UpdateWith runs update on a copy of the base until a commit lands or
// update leaves the copy untouched. Every retry observes a newer
// published version, so progress stalls only under unbounded contention.
func (tx *Txn[T]) UpdateWith(update func(trie *HashTrie[T])) {
	for {
		draft := tx.Get()
		update(&draft)

		if draft.root == tx.base.root {
			draft.Release()
			return
		}

		committed := tx.TryCommit(&draft)
		draft.Release()
		if committed {
			return
		}
	}
}

// Release drops the transaction's base reference. The transaction must
// not be used afterwards.
func (tx *Txn[T]) Release() {
	if tx.base != nil {
		release(&tx.base.root.head)
		tx.base = nil
	}
}
