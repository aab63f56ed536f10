package hamt

import (
	"github.com/hideo55/go-popcount"
)

// branchNode is a sparse 32-way branch: bit i of the bitmap is set iff
// sparse slot i is populated, and children holds the populated slots in
// ascending sparse order.
type branchNode[T any] struct {
	head     node[T]
	bitmap   uint32
	children []*node[T]
}

func newBranch[T any](bitmap uint32, children []*node[T]) *branchNode[T] {
	br := &branchNode[T]{bitmap: bitmap, children: children}
	initNode(&br.head, kindBranch)
	return br
}

// newEmptyBranch makes the root of an empty trie - the only branch
// allowed to have no children.
func newEmptyBranch[T any]() *branchNode[T] {
	return newBranch[T](0, nil)
}

func newSingleBranch[T any](idx sparseIndex, child *node[T]) *branchNode[T] {
	return newBranch(idx.bit(), []*node[T]{child})
}

// newPairBranch builds a branch holding two leaves in ascending sparse
// order. The indices must differ.
func newPairBranch[T any](idx1 sparseIndex, leaf1 *leafNode[T], idx2 sparseIndex, leaf2 *leafNode[T]) *branchNode[T] {
	children := make([]*node[T], 2)
	if idx1 > idx2 {
		children[0], children[1] = &leaf2.head, &leaf1.head
	} else {
		children[0], children[1] = &leaf1.head, &leaf2.head
	}
	return newBranch(idx1.bit()|idx2.bit(), children)
}

// withInserted returns a branch with child added at a currently unset
// sparse slot. Shared children gain a reference; the new child's single
// reference transfers to the result.
func (b *branchNode[T]) withInserted(idx sparseIndex, child *node[T]) *branchNode[T] {
	if b.bitmap&idx.bit() != 0 {
		panic("hamt: inserting into a populated slot")
	}

	var (
		split    = int(idx.compact(b.bitmap))
		children = make([]*node[T], len(b.children)+1)
	)
	copy(children[:split], b.children[:split])
	children[split] = child
	copy(children[split+1:], b.children[split:])

	for _, shared := range b.children {
		addref(shared)
	}
	return newBranch(b.bitmap|idx.bit(), children)
}

// withReplaced returns a branch of the same arity with the child at a
// populated sparse slot substituted. The bitmap does not change.
func (b *branchNode[T]) withReplaced(idx sparseIndex, child *node[T]) *branchNode[T] {
	if b.bitmap&idx.bit() == 0 {
		panic("hamt: replacing an empty slot")
	}

	var (
		split    = int(idx.compact(b.bitmap))
		children = make([]*node[T], len(b.children))
	)
	copy(children, b.children)
	children[split] = child

	for i, shared := range b.children {
		if i != split {
			addref(shared)
		}
	}
	return newBranch(b.bitmap, children)
}

// width is the child count, which always equals the bitmap population.
func (b *branchNode[T]) width() int {
	if n := int(popcount.Count(uint64(b.bitmap))); n != len(b.children) {
		panic("hamt: branch bitmap out of step with its children")
	}
	return len(b.children)
}

func (b *branchNode[T]) childAt(idx compactIndex) *node[T] {
	return b.children[idx]
}

// lookup returns the child at a sparse slot, or nil when the slot is
// empty.
func (b *branchNode[T]) lookup(idx sparseIndex) *node[T] {
	if b.bitmap&idx.bit() == 0 {
		return nil
	}
	return b.children[idx.compact(b.bitmap)]
}
