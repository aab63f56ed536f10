package hamt

// inserted builds a new root containing value, sharing everything off the
// mutation path with the old root. A nil result means the value was
// already present.
func inserted[T any](root *branchNode[T], value T, hasher Hasher[T]) *branchNode[T] {
	p := newPath(hasher.Hash(value), root)
	if p.leaf == nil {
		return addAtEmptySlot(&p, newLeaf(value, p.ch.hash))
	}
	return addAtLeaf(&p, value, hasher)
}

// addAtEmptySlot hangs a fresh leaf off the unpopulated slot the descent
// stopped at.
func addAtEmptySlot[T any](p *path[T], leaf *leafNode[T]) *branchNode[T] {
	fresh := p.last.withInserted(sparseIndex(p.ch.chunk), &leaf.head)
	return p.rewrite(fresh)
}

func addAtLeaf[T any](p *path[T], value T, hasher Hasher[T]) *branchNode[T] {
	existing := p.leaf
	if existing.contains(value, hasher) {
		return nil
	}

	// Same full hash: the value joins the leaf's collision bucket.
	if existing.hash == p.ch.hash {
		grown := existing.withAppendedValue(value)
		fresh := p.last.withReplaced(sparseIndex(p.ch.chunk), &grown.head)
		return p.rewrite(fresh)
	}

	// The hashes agree on every chunk consumed so far but differ further
	// down. Align the existing leaf's cursor with the stopping depth,
	// then branch both leaves out to the level where they diverge.
	existingHash := newChunkedHash(existing.hash)
	existingHash.advance(p.depth)

	chain := extend(existingHash.plus(1), existing, p.ch.plus(1), newLeaf(value, p.ch.hash))
	fresh := p.last.withReplaced(sparseIndex(p.ch.chunk), &chain.head)
	return p.rewrite(fresh)
}

// extend builds the branch chain routing two leaves down to the first
// chunk where their hashes diverge: single-child branches while the
// chunks keep matching, a pair branch at the split. Distinct hashes
// diverge within maxDepth chunks, which bounds the recursion.
func extend[T any](existing chunkedHash, existingLeaf *leafNode[T], fresh chunkedHash, freshLeaf *leafNode[T]) *branchNode[T] {
	if existing.chunk == fresh.chunk {
		child := extend(existing.plus(1), existingLeaf, fresh.plus(1), freshLeaf)
		return newSingleBranch(sparseIndex(fresh.chunk), &child.head)
	}

	// The original trie keeps its reference to the existing leaf; the
	// pair branch takes one of its own. The fresh leaf's single
	// reference just moves in.
	addref(&existingLeaf.head)
	return newPairBranch(sparseIndex(existing.chunk), existingLeaf, sparseIndex(fresh.chunk), freshLeaf)
}
