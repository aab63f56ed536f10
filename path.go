package hamt

// path traces one descent: the branches and chunks visited, ending at
// either the leaf whose slot the hash selects or the last branch before
// an empty slot.
type path[T any] struct {
	branches [maxDepth]*branchNode[T]
	chunks   [maxDepth]uint64
	depth    int

	last *branchNode[T]
	leaf *leafNode[T]
	ch   chunkedHash
}

func newPath[T any](hash uint64, root *branchNode[T]) path[T] {
	p := path[T]{ch: newChunkedHash(hash), last: root}

	next := root.lookup(sparseIndex(p.ch.chunk))
	for next != nil && !next.isLeaf() {
		p.branches[p.depth] = p.last
		p.chunks[p.depth] = p.ch.chunk
		p.depth++

		p.last = next.asBranch()
		p.ch.next()
		next = p.last.lookup(sparseIndex(p.ch.chunk))
	}
	if next != nil {
		p.leaf = next.asLeaf()
	}
	return p
}

// rewrite folds the recorded branches back up to the root, substituting
// the freshly built branch at the stopping level. Each fresh branch's
// single reference transfers to its new parent; untouched subtrees stay
// shared with the original trie.
func (p *path[T]) rewrite(fresh *branchNode[T]) *branchNode[T] {
	current := fresh
	for i := p.depth; i > 0; i-- {
		current = p.branches[i-1].withReplaced(sparseIndex(p.chunks[i-1]), &current.head)
	}
	return current
}
